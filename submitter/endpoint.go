package submitter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"wealth-site/domain"
)

const defaultClientTimeout = 30 * time.Second

// EndpointSubmitter posts leads as JSON to <baseURL>/api/contact.
type EndpointSubmitter struct {
	endpoint string
	client   *http.Client
}

// NewEndpointSubmitter creates an EndpointSubmitter. A nil client gets a 30s timeout.
func NewEndpointSubmitter(baseURL string, client *http.Client) *EndpointSubmitter {
	if client == nil {
		client = &http.Client{Timeout: defaultClientTimeout}
	}
	return &EndpointSubmitter{
		endpoint: strings.TrimRight(baseURL, "/") + "/api/contact",
		client:   client,
	}
}

type endpointResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *EndpointSubmitter) Submit(ctx context.Context, lead domain.Lead) (domain.Receipt, error) {
	body, err := json.Marshal(lead)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("failed to encode lead: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("failed to reach contact endpoint: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("failed to read response: %w", err)
	}

	var out endpointResponse
	_ = json.Unmarshal(raw, &out)

	if resp.StatusCode != http.StatusOK || !out.Success {
		msg := out.Error
		if msg == "" {
			msg = strings.TrimSpace(string(raw))
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return domain.Receipt{}, &SubmitError{Status: resp.StatusCode, Message: msg}
	}

	return domain.Receipt{}, nil
}
