package submitter

import (
	"context"
	"errors"
	"sync"

	"wealth-site/domain"
)

type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

var ErrInFlight = errors.New("a submission is already in progress")

// Form is the client-side contact form: idle -> submitting -> success|error.
// While submitting further submits are refused; success clears the lead and
// error keeps it along with the last message.
type Form struct {
	mu        sync.Mutex
	submitter LeadSubmitter
	lead      domain.Lead
	status    Status
	lastError string
	receipt   domain.Receipt
}

func NewForm(submitter LeadSubmitter) *Form {
	return &Form{submitter: submitter, status: StatusIdle}
}

// SetLead replaces the form contents.
func (f *Form) SetLead(lead domain.Lead) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lead = lead
}

func (f *Form) Lead() domain.Lead {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lead
}

// State returns the current status and, in the error state, the last message.
func (f *Form) State() (Status, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status, f.lastError
}

func (f *Form) Receipt() domain.Receipt {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.receipt
}

// Submit sends the current lead. The submitter is called without holding the
// lock so State stays readable while the request is in flight.
func (f *Form) Submit(ctx context.Context) (domain.Receipt, error) {
	f.mu.Lock()
	if f.status == StatusSubmitting {
		f.mu.Unlock()
		return domain.Receipt{}, ErrInFlight
	}
	f.status = StatusSubmitting
	lead := f.lead
	f.mu.Unlock()

	receipt, err := f.submitter.Submit(ctx, lead)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.status = StatusError
		f.lastError = err.Error()
		return domain.Receipt{}, err
	}

	f.status = StatusSuccess
	f.lastError = ""
	f.lead = domain.Lead{}
	f.receipt = receipt
	return receipt, nil
}
