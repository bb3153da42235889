package events

import "github.com/unibazaar/unibazaar-tui/internal/logging"

type PostTracer struct{}

var Post = PostTracer{}

func (PostTracer) Created(id int64, category string) {
	logging.Trace("post.created", map[string]interface{}{"id": id, "category": category})
}

func (PostTracer) Rejected(reason string) {
	logging.Trace("post.rejected", map[string]interface{}{"reason": reason})
}

func (PostTracer) SaveToggled(id int64, saved bool, count uint) {
	logging.Trace("post.save-toggled", map[string]interface{}{"id": id, "saved": saved, "count": count})
}

func (PostTracer) ImageAttached(handle string) {
	logging.Trace("post.image-attached", map[string]interface{}{"handle": handle})
}

func (PostTracer) ImageDeclined() {
	logging.Trace("post.image-declined", nil)
}

func (PostTracer) ProfileEdited(handle string) {
	logging.Trace("post.profile-edited", map[string]interface{}{"handle": handle})
}
