package listing

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// DefaultAuthor is substituted when a stored record omits the author.
const DefaultAuthor = "Community member"

// MaxImages caps the number of image handles a listing may carry.
const MaxImages = 6

// Listing is a single marketplace post, user- or sample-authored.
// Records are immutable after creation; edits replace the whole value.
type Listing struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        string    `json:"price"`
	Category     string    `json:"category"`
	Location     string    `json:"location"`
	AuthorName   string    `json:"author_name"`
	ImageHandles []string  `json:"image_handles"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

var lastID atomic.Int64

// NewID allocates a process-unique, roughly monotonic listing ID.
// Millisecond timestamps collide when posts land in the same tick, so
// allocation bumps past the previous value instead of reusing it.
func NewID() int64 {
	now := time.Now().UnixMilli()
	for {
		prev := lastID.Load()
		id := now
		if id <= prev {
			id = prev + 1
		}
		if lastID.CompareAndSwap(prev, id) {
			return id
		}
	}
}

// Validate checks the fields required on submission. Title and price
// are mandatory; everything else may be blank.
func Validate(l Listing) error {
	if strings.TrimSpace(l.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(l.Price) == "" {
		return fmt.Errorf("price is required")
	}
	if len(l.ImageHandles) > MaxImages {
		return fmt.Errorf("at most %d images per listing (got %d)", MaxImages, len(l.ImageHandles))
	}
	return nil
}

// Normalize applies the documented defaults for optional fields read
// from storage.
func Normalize(l Listing) Listing {
	if strings.TrimSpace(l.AuthorName) == "" {
		l.AuthorName = DefaultAuthor
	}
	if l.ImageHandles == nil {
		l.ImageHandles = []string{}
	}
	return l
}

// Clone returns a deep copy safe to hand across store boundaries.
func Clone(l Listing) Listing {
	l.ImageHandles = append([]string(nil), l.ImageHandles...)
	return l
}

// CloneAll deep-copies a slice of listings.
func CloneAll(ls []Listing) []Listing {
	if len(ls) == 0 {
		return nil
	}
	dup := make([]Listing, len(ls))
	for i, l := range ls {
		dup[i] = Clone(l)
	}
	return dup
}
