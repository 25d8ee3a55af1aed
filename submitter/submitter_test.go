package submitter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealth-site/domain"
	"wealth-site/service"
)

func sampleLead() domain.Lead {
	return domain.Lead{
		FirstName: " Ada ",
		LastName:  "Lovelace",
		Email:     "ada@example.com ",
		Message:   "Plan & review?",
	}
}

func TestEndpointSubmitter_Success(t *testing.T) {
	var got domain.Lead
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/contact", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	s := NewEndpointSubmitter(srv.URL+"/", srv.Client())
	_, err := s.Submit(context.Background(), sampleLead())

	require.NoError(t, err)
	assert.Equal(t, "Lovelace", got.LastName)
}

func TestEndpointSubmitter_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Missing required fields."}`))
	}))
	defer srv.Close()

	_, err := NewEndpointSubmitter(srv.URL, srv.Client()).Submit(context.Background(), domain.Lead{})

	var submitErr *SubmitError
	require.ErrorAs(t, err, &submitErr)
	assert.Equal(t, http.StatusBadRequest, submitErr.Status)
	assert.Equal(t, "Missing required fields.", submitErr.Message)
}

func TestEndpointSubmitter_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewEndpointSubmitter(srv.URL, srv.Client()).Submit(context.Background(), sampleLead())

	var submitErr *SubmitError
	require.ErrorAs(t, err, &submitErr)
	assert.Equal(t, "rate limit exceeded", submitErr.Message)
}

func TestEndpointSubmitter_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	_, err := NewEndpointSubmitter(srv.URL, nil).Submit(context.Background(), sampleLead())
	assert.Error(t, err)
}

func TestBuildHostedFormURL(t *testing.T) {
	raw, err := BuildHostedFormURL("https://forms.example.com/t/abc", sampleLead())
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "forms.example.com", u.Host)

	q := u.Query()
	assert.Equal(t, "Ada", q.Get("first_name"))
	assert.Equal(t, "Lovelace", q.Get("last_name"))
	assert.Equal(t, "ada@example.com", q.Get("email"))
	assert.Equal(t, "", q.Get("phone"))
	assert.True(t, q.Has("phone"))
	assert.Equal(t, "Plan & review?", q.Get("message"))
}

func TestBuildHostedFormURL_Invalid(t *testing.T) {
	_, err := BuildHostedFormURL("not a url", sampleLead())
	assert.Error(t, err)
}

func TestHostedFormSubmitter_OpensURL(t *testing.T) {
	var opened string
	s := NewHostedFormSubmitter("https://forms.example.com/t/abc", OpenerFunc(func(u string) error {
		opened = u
		return nil
	}))

	receipt, err := s.Submit(context.Background(), sampleLead())
	require.NoError(t, err)
	assert.Equal(t, opened, receipt.RedirectURL)
	assert.Contains(t, opened, "first_name=Ada")
}

func TestHostedFormSubmitter_RequiresFields(t *testing.T) {
	called := false
	s := NewHostedFormSubmitter("https://forms.example.com/t/abc", OpenerFunc(func(string) error {
		called = true
		return nil
	}))

	lead := sampleLead()
	lead.Message = "   "
	_, err := s.Submit(context.Background(), lead)

	assert.ErrorIs(t, err, service.ErrValidation)
	assert.False(t, called)
}

func TestWriterOpener(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriterOpener{W: &b}.Open("https://x.test/?a=1"))
	assert.Contains(t, b.String(), "https://x.test/?a=1")
}

// both transports are interchangeable behind the interface
var (
	_ LeadSubmitter = (*EndpointSubmitter)(nil)
	_ LeadSubmitter = (*HostedFormSubmitter)(nil)
)

type blockingSubmitter struct {
	started chan struct{}
	release chan struct{}
	err     error
	calls   int
	mu      sync.Mutex
}

func newBlockingSubmitter() *blockingSubmitter {
	return &blockingSubmitter{started: make(chan struct{}, 1), release: make(chan struct{})}
}

func (b *blockingSubmitter) Submit(ctx context.Context, lead domain.Lead) (domain.Receipt, error) {
	b.mu.Lock()
	b.calls++
	b.mu.Unlock()
	select {
	case b.started <- struct{}{}:
	default:
	}
	<-b.release
	return domain.Receipt{Reference: "ref"}, b.err
}

func TestForm_SuccessClearsLead(t *testing.T) {
	sub := newBlockingSubmitter()
	close(sub.release)
	f := NewForm(sub)
	f.SetLead(sampleLead())

	status, _ := f.State()
	assert.Equal(t, StatusIdle, status)

	receipt, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ref", receipt.Reference)

	status, msg := f.State()
	assert.Equal(t, StatusSuccess, status)
	assert.Empty(t, msg)
	assert.Equal(t, domain.Lead{}, f.Lead())
	assert.Equal(t, "ref", f.Receipt().Reference)
}

func TestForm_ErrorKeepsLeadAndAllowsRetry(t *testing.T) {
	sub := newBlockingSubmitter()
	sub.err = errors.New("Unable to send message.")
	close(sub.release)
	f := NewForm(sub)
	f.SetLead(sampleLead())

	_, err := f.Submit(context.Background())
	require.Error(t, err)

	status, msg := f.State()
	assert.Equal(t, StatusError, status)
	assert.Equal(t, "Unable to send message.", msg)
	assert.Equal(t, sampleLead(), f.Lead())

	sub.err = nil
	_, err = f.Submit(context.Background())
	require.NoError(t, err)
	status, _ = f.State()
	assert.Equal(t, StatusSuccess, status)
}

func TestForm_RejectsResubmitWhileInFlight(t *testing.T) {
	sub := newBlockingSubmitter()
	f := NewForm(sub)
	f.SetLead(sampleLead())

	done := make(chan error, 1)
	go func() {
		_, err := f.Submit(context.Background())
		done <- err
	}()

	<-sub.started
	status, _ := f.State()
	assert.Equal(t, StatusSubmitting, status)

	_, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrInFlight)

	close(sub.release)
	require.NoError(t, <-done)

	sub.mu.Lock()
	defer sub.mu.Unlock()
	assert.Equal(t, 1, sub.calls)
}
