package catalog

import (
	"context"
	"sync"

	"github.com/jkorri/openshelf/internal/openlibrary"
)

// State is the orchestrator's lifecycle state.
type State int

const (
	// StateIdle means no search has run since creation or the last clear.
	StateIdle State = iota
	// StateSearching means an invocation is in flight.
	StateSearching
	// StateReady means the published snapshot holds the latest results.
	StateReady
	// StateFailed means the latest invocation failed; results are cleared.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSearching:
		return "searching"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot is the published outcome of the most recent search invocation.
// Consumers read snapshots; they never mutate orchestrator state directly.
type Snapshot struct {
	State State
	Books []*openlibrary.Book
	Total int
	Err   error
}

// Orchestrator sequences query building, the catalog search, availability
// resolution and the availability post-filter for one invocation at a time,
// and publishes the outcome. The published snapshot has exactly one writer;
// overlapping invocations are resolved by a monotonic sequence number so the
// last request wins rather than the last to finish.
type Orchestrator struct {
	client *openlibrary.Client
	limit  int

	mu    sync.Mutex
	seq   uint64
	state State
	books []*openlibrary.Book
	total int
	err   error
}

// NewOrchestrator creates an Orchestrator in the idle state. A limit of zero
// or less falls back to the client's default result cap.
func NewOrchestrator(client *openlibrary.Client, limit int) *Orchestrator {
	if limit <= 0 {
		limit = openlibrary.DefaultLimit
	}
	return &Orchestrator{
		client: client,
		limit:  limit,
		state:  StateIdle,
	}
}

// Search runs the full pipeline for one (text, filters) pair and publishes
// the outcome. An empty pair is a no-op: nothing runs, state is untouched
// and the current snapshot is returned.
//
// Only the catalog search itself can fail the invocation; availability
// lookups are absorbed. A fatal failure clears results, never leaving stale
// ones behind. The returned snapshot is the latest published one, which
// belongs to a newer invocation if this one was superseded while resolving.
func (o *Orchestrator) Search(ctx context.Context, text string, filters Filters) (Snapshot, error) {
	if IsNoOp(text, filters) {
		return o.Snapshot(), nil
	}

	o.mu.Lock()
	o.seq++
	seq := o.seq
	o.state = StateSearching
	o.mu.Unlock()

	books, total, err := o.run(ctx, text, filters)
	return o.publish(seq, books, total, err)
}

func (o *Orchestrator) run(ctx context.Context, text string, filters Filters) ([]*openlibrary.Book, int, error) {
	query := BuildQuery(text, filters)

	page, err := o.client.Search(ctx, query, filters.Availability == AvailabilityFulltext, o.limit)
	if err != nil {
		return nil, 0, err
	}

	o.client.ResolveAvailability(ctx, page.Books)

	filtered := FilterByAvailability(page.Books, filters.Availability)
	return filtered, TotalCount(filtered, page.NumFound, filters.Availability), nil
}

func (o *Orchestrator) publish(seq uint64, books []*openlibrary.Book, total int, err error) (Snapshot, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if seq != o.seq {
		// A newer invocation superseded this one; discard its outcome.
		return o.snapshotLocked(), nil
	}

	if err != nil {
		o.state = StateFailed
		o.books = nil
		o.total = 0
		o.err = err
	} else {
		o.state = StateReady
		o.books = books
		o.total = total
		o.err = nil
	}
	return o.snapshotLocked(), err
}

// Snapshot returns the currently published outcome.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked()
}

// Clear resets the orchestrator to idle and drops published results.
func (o *Orchestrator) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = StateIdle
	o.books = nil
	o.total = 0
	o.err = nil
}

func (o *Orchestrator) snapshotLocked() Snapshot {
	return Snapshot{
		State: o.state,
		Books: o.books,
		Total: o.total,
		Err:   o.err,
	}
}
