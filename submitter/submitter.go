// Package submitter delivers leads from a client to one of the interchangeable
// intake paths: the site's own /api/contact endpoint or the hosted form.
package submitter

import (
	"context"
	"fmt"

	"wealth-site/domain"
)

// LeadSubmitter hands a lead to an intake path.
type LeadSubmitter interface {
	Submit(ctx context.Context, lead domain.Lead) (domain.Receipt, error)
}

// SubmitError is returned when the intake path rejected the lead.
type SubmitError struct {
	Status  int
	Message string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("submission failed (%d): %s", e.Status, e.Message)
}
