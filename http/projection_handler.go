package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"wealth-site/domain"
	"wealth-site/service"
)

type ProjectionHandler struct {
	service  *service.ProjectionService
	firmName string
	logger   *zap.Logger
	now      func() time.Time
}

func NewProjectionHandler(service *service.ProjectionService, firmName string, logger *zap.Logger) *ProjectionHandler {
	return &ProjectionHandler{
		service:  service,
		firmName: firmName,
		logger:   logger,
		now:      time.Now,
	}
}

type formattedProjection struct {
	FutureValue        string `json:"futureValue"`
	TotalContributions string `json:"totalContributions"`
	Growth             string `json:"growth"`
}

type projectionResponse struct {
	Input      domain.ProjectionInput `json:"input"`
	AnnualRate float64                `json:"annualRate"`
	domain.ProjectionResult
	Formatted  formattedProjection `json:"formatted"`
	Disclaimer string              `json:"disclaimer"`
}

const maxProjectionBody = 16 << 10

// rawProjectionInput keeps each field raw so strings, fractions and out-of-range
// numbers reach the same coercion as query values.
type rawProjectionInput struct {
	StartingBalance     json.RawMessage `json:"startingBalance"`
	MonthlyContribution json.RawMessage `json:"monthlyContribution"`
	HorizonYears        json.RawMessage `json:"horizonYears"`
}

// numberText renders a JSON value the way Number() reads it: strings by
// content, null and false as blank, true as 1, numbers verbatim.
func numberText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	switch text := strings.TrimSpace(string(raw)); text {
	case "null", "false":
		return ""
	case "true":
		return "1"
	default:
		return text
	}
}

// readInput accepts query values on GET and a JSON body on POST. A body that
// is not a JSON object projects the lower bounds.
func (h *ProjectionHandler) readInput(r *http.Request) domain.ProjectionInput {
	if r.Method != http.MethodPost {
		q := r.URL.Query()
		return service.ParseProjectionInput(q.Get("balance"), q.Get("monthly"), q.Get("years"))
	}

	var body rawProjectionInput
	if err := json.NewDecoder(io.LimitReader(r.Body, maxProjectionBody)).Decode(&body); err != nil {
		h.logger.Debug("unreadable projection body", zap.Error(err))
		body = rawProjectionInput{}
	}
	return service.ParseProjectionInput(
		numberText(body.StartingBalance),
		numberText(body.MonthlyContribution),
		numberText(body.HorizonYears),
	)
}

// Calculate handles GET and POST /api/projection.
func (h *ProjectionHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	in := service.ClampInput(h.readInput(r))
	result := h.service.Calculate(in)

	writeJSON(w, h.logger, http.StatusOK, projectionResponse{
		Input:      in,
		AnnualRate: in.AnnualRate,
		ProjectionResult: domain.ProjectionResult{
			FutureValue:        service.RoundCents(result.FutureValue),
			TotalContributions: service.RoundCents(result.TotalContributions),
			Growth:             service.RoundCents(result.Growth),
			HorizonYears:       result.HorizonYears,
		},
		Formatted: formattedProjection{
			FutureValue:        service.FormatUSD(result.FutureValue),
			TotalContributions: service.FormatUSD(result.TotalContributions),
			Growth:             service.FormatUSD(result.Growth),
		},
		Disclaimer: service.Disclaimer,
	})
}

// Illustration handles GET /api/projection/illustration.pdf.
func (h *ProjectionHandler) Illustration(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	in := service.ParseProjectionInput(q.Get("balance"), q.Get("monthly"), q.Get("years"))
	result := h.service.Calculate(in)

	data, err := service.RenderIllustrationPDF(h.firmName, in, result, h.now())
	if err != nil {
		h.logger.Error("failed to render illustration", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="wealth-illustration.pdf"`)
	w.Header().Set("Content-Length", fmt.Sprint(len(data)))
	if _, err := w.Write(data); err != nil {
		h.logger.Warn("failed to write illustration", zap.Error(err))
	}
}
