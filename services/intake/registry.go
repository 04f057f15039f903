package intake

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultIdleTTL is how long an untouched form instance is kept
const DefaultIdleTTL = 2 * time.Hour

// Registry tracks live form instances. Every Open creates an independent
// instance, so an inline form and a modal form on the same page never share
// a lead or a state.
type Registry struct {
	submitter Submitter
	opts      Options
	idleTTL   time.Duration

	mu    sync.Mutex
	forms map[string]*Form
}

// NewRegistry creates a registry whose forms submit through submitter
func NewRegistry(submitter Submitter, opts Options, idleTTL time.Duration) *Registry {
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	return &Registry{
		submitter: submitter,
		opts:      opts.withDefaults(),
		idleTTL:   idleTTL,
		forms:     make(map[string]*Form),
	}
}

// Open creates a blank form instance for the surface
func (r *Registry) Open(surface Surface) *Form {
	f := NewForm(uuid.New().String(), surface, r.submitter, r.opts)

	r.mu.Lock()
	r.forms[f.ID()] = f
	r.mu.Unlock()
	return f
}

// Get looks up a form instance, closed ones included until they are swept
func (r *Registry) Get(id string) (*Form, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.forms[id]
	return f, ok
}

// Discard tears down and forgets a form instance
func (r *Registry) Discard(id string) bool {
	r.mu.Lock()
	f, ok := r.forms[id]
	delete(r.forms, id)
	r.mu.Unlock()

	if ok {
		f.Teardown()
	}
	return ok
}

// Sweep tears down instances that are closed or have been idle longer than
// the TTL. An instance with a submission in flight is never swept.
func (r *Registry) Sweep(now time.Time) int {
	var expired []*Form

	r.mu.Lock()
	for id, f := range r.forms {
		lastActive, state, closed := f.idleSince()
		if state == StateSubmitting {
			continue
		}
		if closed || now.Sub(lastActive) > r.idleTTL {
			expired = append(expired, f)
			delete(r.forms, id)
		}
	}
	r.mu.Unlock()

	for _, f := range expired {
		f.Teardown()
	}
	return len(expired)
}

// Len returns the number of tracked instances
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}

// Shutdown tears down every instance
func (r *Registry) Shutdown() {
	r.mu.Lock()
	forms := r.forms
	r.forms = make(map[string]*Form)
	r.mu.Unlock()

	for _, f := range forms {
		f.Teardown()
	}
}
