package backend

import (
	"context"
	"sync"
	"time"

	"github.com/unibazaar/unibazaar-tui/internal/listing"
	"github.com/unibazaar/unibazaar-tui/internal/storage"
)

// Kind represents the type of event emitted by the persister.
type Kind int

const (
	KindLoad Kind = iota
	KindSave
)

// Event conveys the outcome of a background storage operation. Save
// events carry the generation assigned when the save was requested so
// stale completions can be told apart from the newest one.
type Event struct {
	Kind Kind
	Data interface{}
	Gen  uint64
	Err  error
}

// LoadResult is the Data payload of a KindLoad event.
type LoadResult struct {
	Listings []listing.Listing
}

type saveRequest struct {
	listings []listing.Listing
	gen      uint64
}

// Persister owns all storage I/O. On construction it reads the
// persisted listings once; afterwards it consumes save requests on a
// worker goroutine, coalescing bursts so only the newest snapshot is
// written (whole-document overwrite makes that safe: last write wins).
type Persister struct {
	repo *storage.Repository

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	saves  chan saveRequest
	wg     sync.WaitGroup

	mu  sync.Mutex
	gen uint64
}

// NewPersister starts the initial load and the save worker. The
// interval sets a minimum spacing between successive disk writes.
func NewPersister(repo *storage.Repository, interval time.Duration) *Persister {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Persister{
		repo:   repo,
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 16),
		saves:  make(chan saveRequest, 16),
	}

	p.startLoader()
	p.startSaveWorker(newThrottle(interval))

	go func() {
		p.wg.Wait()
		close(p.events)
	}()

	return p
}

// Events returns the channel of storage completions.
func (p *Persister) Events() <-chan Event {
	return p.events
}

// Save enqueues a snapshot for persistence and returns its
// generation. The call never blocks the UI goroutine: if the queue is
// full the snapshot replaces the pending request, which is the same
// last-write-wins outcome coalescing produces.
func (p *Persister) Save(listings []listing.Listing) uint64 {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.mu.Unlock()

	req := saveRequest{listings: listing.CloneAll(listings), gen: gen}
	for {
		select {
		case p.saves <- req:
			return gen
		default:
			select {
			case <-p.saves: // drop the stale pending snapshot
			default:
			}
		}
	}
}

// Generation returns the most recently assigned save generation.
func (p *Persister) Generation() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gen
}

// Stop cancels the workers. Pending saves are abandoned; the next
// session reloads whatever reached disk.
func (p *Persister) Stop() {
	p.cancel()
}

// Wait blocks until the workers have exited and the events channel is
// closed. Call after Stop when a clean drain is required (e.g. tests).
func (p *Persister) Wait() {
	p.wg.Wait()
}

func (p *Persister) startLoader() {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		listings := p.repo.Load()
		evt := Event{Kind: KindLoad, Data: LoadResult{Listings: listings}}
		select {
		case <-p.ctx.Done():
		case p.events <- evt:
		}
	}()
}

func (p *Persister) startSaveWorker(gate *throttle) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		for {
			select {
			case <-p.ctx.Done():
				return
			case req := <-p.saves:
				// Coalesce any requests that queued up behind this one.
				for {
					select {
					case next := <-p.saves:
						req = next
						continue
					default:
					}
					break
				}
				gate.wait()
				err := p.repo.Save(req.listings)
				evt := Event{Kind: KindSave, Gen: req.gen, Err: err}
				select {
				case <-p.ctx.Done():
					return
				case p.events <- evt:
				}
			}
		}
	}()
}
