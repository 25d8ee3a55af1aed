package submitter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"wealth-site/domain"
	"wealth-site/service"
)

// Opener presents a URL to the user, typically by launching a browser.
type Opener interface {
	Open(url string) error
}

type OpenerFunc func(url string) error

func (f OpenerFunc) Open(url string) error { return f(url) }

// WriterOpener prints the URL for the user to follow.
type WriterOpener struct {
	W io.Writer
}

func (o WriterOpener) Open(u string) error {
	_, err := fmt.Fprintf(o.W, "Continue your inquiry at:\n%s\n", u)
	return err
}

// HostedFormSubmitter bypasses the site endpoint and opens the third-party
// form with the lead pre-filled.
type HostedFormSubmitter struct {
	formURL string
	opener  Opener
}

func NewHostedFormSubmitter(formURL string, opener Opener) *HostedFormSubmitter {
	return &HostedFormSubmitter{formURL: formURL, opener: opener}
}

func trimLead(lead domain.Lead) domain.Lead {
	return domain.Lead{
		FirstName: strings.TrimSpace(lead.FirstName),
		LastName:  strings.TrimSpace(lead.LastName),
		Email:     strings.TrimSpace(lead.Email),
		Phone:     strings.TrimSpace(lead.Phone),
		Message:   strings.TrimSpace(lead.Message),
	}
}

// BuildHostedFormURL appends the trimmed lead fields as query parameters.
func BuildHostedFormURL(formURL string, lead domain.Lead) (string, error) {
	u, err := url.Parse(formURL)
	if err != nil {
		return "", fmt.Errorf("invalid hosted form url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid hosted form url: %q", formURL)
	}

	l := trimLead(lead)
	q := u.Query()
	q.Set("first_name", l.FirstName)
	q.Set("last_name", l.LastName)
	q.Set("email", l.Email)
	q.Set("phone", l.Phone)
	q.Set("message", l.Message)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (s *HostedFormSubmitter) Submit(ctx context.Context, lead domain.Lead) (domain.Receipt, error) {
	if err := service.ValidateLead(trimLead(lead)); err != nil {
		return domain.Receipt{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Receipt{}, err
	}

	target, err := BuildHostedFormURL(s.formURL, lead)
	if err != nil {
		return domain.Receipt{}, err
	}

	if err := s.opener.Open(target); err != nil {
		return domain.Receipt{}, fmt.Errorf("failed to open hosted form: %w", err)
	}

	return domain.Receipt{RedirectURL: target}, nil
}
