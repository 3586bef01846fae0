package form

import (
	"context"
	"sync"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/scholarsync/core"
)

var (
	ErrBusy   = errors.New("dialog is busy")
	ErrClosed = errors.New("dialog is closed")
)

type State int

const (
	Closed State = iota
	Open
	Submitting
	OpenWithErrors
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Submitting:
		return "submitting"
	case OpenWithErrors:
		return "open-with-errors"
	default:
		return "closed"
	}
}

type (
	// Form is the payload of a dialog.
	Form interface {
		// Messages overrides validation messages, keyed "<field>.<tag>" or "<field>".
		Messages() map[string]string
		Success() core.Notification
		Failure() core.Notification
	}

	// Cleaner is implemented by forms that normalize their input before validation.
	Cleaner interface {
		Clean()
	}

	// Checker is implemented by forms with rules the validator cannot express.
	Checker interface {
		Check(ctx context.Context) []core.FieldError
	}
)

type Deps struct {
	Validate   *validator.Validate
	Translator ut.Translator
	Notifier   core.Notifier
	// Delay simulates the remote call of a submission.
	Delay time.Duration
}

// Dialog runs the submission flow of a form:
// Closed -> Open -> Submitting -> Closed | OpenWithErrors.
type Dialog struct {
	deps Deps

	mu     sync.Mutex
	state  State
	errs   []core.FieldError
	values Form
}

func NewDialog(deps Deps) *Dialog {
	return &Dialog{deps: deps}
}

func (d *Dialog) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Errors returns the field errors of the last rejected submission.
func (d *Dialog) Errors() []core.FieldError {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.errs
}

// Values returns the last submitted form, nil if none.
func (d *Dialog) Values() Form {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.values
}

// Open shows the dialog with a blank slate. Opening an open dialog is a no-op.
func (d *Dialog) Open() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == Closed {
		d.state = Open
		d.errs = nil
		d.values = nil
	}
}

// Close dismisses the dialog. A submitting dialog cannot be closed.
func (d *Dialog) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == Submitting {
		return ErrBusy
	}
	d.state = Closed
	d.errs = nil
	return nil
}

// Submit validates f and simulates its remote call.
// Invalid input keeps the dialog open with field errors and returns a *core.ValidationError.
// A successful call closes the dialog and notifies success; a cancelled one keeps it open and
// notifies failure.
func (d *Dialog) Submit(ctx context.Context, f Form) error {
	d.mu.Lock()
	switch d.state {
	case Closed:
		d.mu.Unlock()
		return ErrClosed
	case Submitting:
		d.mu.Unlock()
		return ErrBusy
	}

	d.values = f
	if err := d.validate(ctx, f); err != nil {
		d.state = OpenWithErrors
		if vErr, ok := errors.Cause(err).(*core.ValidationError); ok {
			d.errs = vErr.Fields
		}
		d.mu.Unlock()
		return err
	}
	d.state = Submitting
	d.errs = nil
	d.mu.Unlock()

	err := core.Delay(ctx, d.deps.Delay)

	d.mu.Lock()
	if err != nil {
		d.state = Open
	} else {
		d.state = Closed
	}
	d.mu.Unlock()

	if err != nil {
		d.notify(f.Failure())
		return errors.Wrap(err, "submitting form")
	}
	d.notify(f.Success())
	return nil
}

func (d *Dialog) validate(ctx context.Context, f Form) error {
	if c, ok := f.(Cleaner); ok {
		c.Clean()
	}
	err := core.ValidateStruct(d.deps.Validate, d.deps.Translator, f, f.Messages())
	if err != nil {
		if _, ok := err.(*core.ValidationError); !ok {
			return err
		}
	}
	if c, ok := f.(Checker); ok && err == nil {
		if flds := c.Check(ctx); len(flds) > 0 {
			return core.NewValidationError(errors.New("invalid data"), flds...)
		}
	}
	return err
}

func (d *Dialog) notify(n core.Notification) {
	if d.deps.Notifier != nil {
		d.deps.Notifier.Notify(n)
	}
}
