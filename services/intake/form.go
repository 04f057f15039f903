package intake

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"binarybyte_site/models"
)

// State of a form instance
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Surface is where a form instance is presented
type Surface string

const (
	SurfaceInline Surface = "inline"
	SurfaceModal  Surface = "modal"
)

// IsValid checks if the surface is one of the known presentations
func (s Surface) IsValid() bool {
	return s == SurfaceInline || s == SurfaceModal
}

// Ack is the intake collaborator's acknowledgement of a lead
type Ack struct {
	Reference  string
	ReceivedAt time.Time
}

// Submitter transmits a validated lead to the external intake service.
// Implementations are not expected to be idempotent.
type Submitter interface {
	SubmitLead(ctx context.Context, lead models.LeadSubmission) (Ack, error)
}

// SubmitterFunc adapts a function to Submitter
type SubmitterFunc func(ctx context.Context, lead models.LeadSubmission) (Ack, error)

func (f SubmitterFunc) SubmitLead(ctx context.Context, lead models.LeadSubmission) (Ack, error) {
	return f(ctx, lead)
}

var (
	ErrInvalid              = errors.New("intake: lead failed validation")
	ErrBusy                 = errors.New("intake: form is not editable while a submission is in flight or acknowledged")
	ErrAlreadySubmitted     = errors.New("intake: lead already submitted")
	ErrClosed               = errors.New("intake: form is closed")
	ErrCloseWhileSubmitting = errors.New("intake: cannot close while submitting")
	ErrNotDismissible       = errors.New("intake: inline form cannot be closed")
)

// TransportError wraps a failure reported by the intake collaborator
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "intake: submit lead: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

const (
	DefaultResetDelay    = 3 * time.Second
	DefaultSubmitTimeout = 15 * time.Second
)

// Options tune a form instance
type Options struct {
	// ResetDelay is how long the success confirmation stays before the form resets
	ResetDelay time.Duration
	// SubmitTimeout bounds a single collaborator call
	SubmitTimeout time.Duration
	// OnReset is called after the deferred post-success reset ran
	OnReset func(Snapshot)
	// Now is the clock used for activity tracking
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.ResetDelay <= 0 {
		o.ResetDelay = DefaultResetDelay
	}
	if o.SubmitTimeout <= 0 {
		o.SubmitTimeout = DefaultSubmitTimeout
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Form is one contact form instance: the lead being edited plus the submission
// state machine (Idle -> Submitting -> Success, or back to Idle on failure).
// All methods are safe for concurrent use.
type Form struct {
	id        string
	surface   Surface
	submitter Submitter
	opts      Options

	mu         sync.Mutex
	state      State
	lead       models.LeadSubmission
	errs       FieldErrors
	touched    map[Field]bool
	failure    error
	ack        *Ack
	resetTimer *time.Timer
	closed     bool
	lastActive time.Time
}

// NewForm creates a blank Idle form
func NewForm(id string, surface Surface, submitter Submitter, opts Options) *Form {
	opts = opts.withDefaults()
	f := &Form{
		id:        id,
		surface:   surface,
		submitter: submitter,
		opts:      opts,
	}
	f.clearLocked()
	f.lastActive = opts.Now()
	return f
}

func (f *Form) ID() string {
	return f.id
}

func (f *Form) Surface() Surface {
	return f.surface
}

// Update replaces the lead with the latest field values and re-validates it.
// Only an Idle form is editable.
func (f *Form) Update(lead models.LeadSubmission) (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return f.snapshotLocked(), ErrClosed
	}
	if f.state != StateIdle {
		return f.snapshotLocked(), ErrBusy
	}

	f.lead = lead.Normalize()
	f.errs = Validate(f.lead)
	f.markTouchedLocked()
	f.lastActive = f.opts.Now()
	return f.snapshotLocked(), nil
}

// Submit transmits the current lead once. Invalid leads never reach the
// collaborator. While a transmission is in flight every other Submit gets ErrBusy.
// The collaborator call ignores cancellation of ctx so a dropped request cannot
// abandon a half-sent lead; it is bounded by Options.SubmitTimeout instead.
func (f *Form) Submit(ctx context.Context) (Snapshot, error) {
	f.mu.Lock()
	switch {
	case f.closed:
		defer f.mu.Unlock()
		return f.snapshotLocked(), ErrClosed
	case f.state == StateSubmitting:
		defer f.mu.Unlock()
		return f.snapshotLocked(), ErrBusy
	case f.state == StateSuccess:
		defer f.mu.Unlock()
		return f.snapshotLocked(), ErrAlreadySubmitted
	}

	f.lastActive = f.opts.Now()
	for _, field := range Fields {
		f.touched[field] = true
	}
	f.errs = Validate(f.lead)
	if !f.errs.Valid() {
		defer f.mu.Unlock()
		return f.snapshotLocked(), ErrInvalid
	}

	f.state = StateSubmitting
	f.failure = nil
	payload := f.lead
	f.mu.Unlock()

	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.opts.SubmitTimeout)
	ack, err := f.submitter.SubmitLead(callCtx, payload)
	cancel()

	f.mu.Lock()
	defer f.mu.Unlock()

	f.lastActive = f.opts.Now()
	if f.closed {
		// Torn down while the call was in flight; nobody is left to show the result
		return f.snapshotLocked(), ErrClosed
	}
	if err != nil {
		f.state = StateIdle
		f.failure = err
		return f.snapshotLocked(), &TransportError{Err: err}
	}

	f.state = StateSuccess
	f.ack = &ack
	f.resetTimer = time.AfterFunc(f.opts.ResetDelay, f.reset)
	return f.snapshotLocked(), nil
}

// reset runs when the success confirmation has been shown long enough
func (f *Form) reset() {
	f.mu.Lock()
	if f.closed || f.state != StateSuccess {
		f.mu.Unlock()
		return
	}
	f.resetTimer = nil
	f.clearLocked()
	if f.surface == SurfaceModal {
		f.closed = true
	}
	snap := f.snapshotLocked()
	hook := f.opts.OnReset
	f.mu.Unlock()

	if hook != nil {
		hook(snap)
	}
}

// Close dismisses a modal form. Entered data is discarded immediately; a
// pending post-success reset is cancelled. Closing mid-submission is refused.
func (f *Form) Close() error {
	if f.surface != SurfaceModal {
		return ErrNotDismissible
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	if f.state == StateSubmitting {
		return ErrCloseWhileSubmitting
	}
	f.stopTimerLocked()
	f.clearLocked()
	f.closed = true
	return nil
}

// Teardown releases the instance: the pending reset is cancelled and any
// result still in flight is dropped. Safe to call in any state, more than once.
func (f *Form) Teardown() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopTimerLocked()
	f.closed = true
}

// Snapshot returns a copy of the current form state
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// Touch records activity without changing state
func (f *Form) Touch() {
	f.mu.Lock()
	f.lastActive = f.opts.Now()
	f.mu.Unlock()
}

func (f *Form) idleSince() (time.Time, State, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastActive, f.state, f.closed
}

func (f *Form) stopTimerLocked() {
	if f.resetTimer != nil {
		f.resetTimer.Stop()
		f.resetTimer = nil
	}
}

func (f *Form) clearLocked() {
	f.state = StateIdle
	f.lead = models.LeadSubmission{}
	f.errs = Validate(f.lead)
	f.touched = make(map[Field]bool, len(Fields))
	f.failure = nil
	f.ack = nil
}

func (f *Form) markTouchedLocked() {
	l := f.lead
	set := map[Field]bool{
		FieldName:           l.Name != "",
		FieldEmail:          l.Email != "",
		FieldCompanyURL:     l.CompanyURL != "",
		FieldBudget:         l.Budget != "",
		FieldProjectDetails: l.ProjectDetails != "",
		FieldPrivacyConsent: l.PrivacyConsent,
	}
	for field, filled := range set {
		if filled {
			f.touched[field] = true
		}
	}
}

func (f *Form) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:              f.id,
		Surface:         f.surface,
		State:           f.state,
		Lead:            f.lead,
		Errors:          make(FieldErrors, len(f.errs)),
		Touched:         make(map[Field]bool, len(f.touched)),
		TransportFailed: f.failure != nil,
		Closed:          f.closed,
	}
	for k, v := range f.errs {
		snap.Errors[k] = v
	}
	for k, v := range f.touched {
		snap.Touched[k] = v
	}
	if f.ack != nil {
		ack := *f.ack
		snap.Ack = &ack
	}
	return snap
}

// Snapshot is an immutable view of a form instance used for rendering
type Snapshot struct {
	ID              string
	Surface         Surface
	State           State
	Lead            models.LeadSubmission
	Errors          FieldErrors
	Touched         map[Field]bool
	TransportFailed bool
	Ack             *Ack
	Closed          bool
}

// CanSubmit is true when the submit control should be enabled
func (s Snapshot) CanSubmit() bool {
	return !s.Closed && s.State == StateIdle && s.Errors.Valid()
}

// Busy is true while the form is non-interactive
func (s Snapshot) Busy() bool {
	return s.State == StateSubmitting
}

// VisibleError returns the reason to show next to a field. Errors stay hidden
// until the user filled the field or attempted a submit.
func (s Snapshot) VisibleError(field Field) (Reason, bool) {
	if !s.Touched[field] {
		return "", false
	}
	reason, ok := s.Errors[field]
	return reason, ok
}
