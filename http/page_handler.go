package http

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"wealth-site/domain"
	"wealth-site/page"
	"wealth-site/service"
)

type PageHandler struct {
	site       page.Site
	projection *service.ProjectionService
	logger     *zap.Logger
}

func NewPageHandler(site page.Site, projection *service.ProjectionService, logger *zap.Logger) *PageHandler {
	return &PageHandler{site: site, projection: projection, logger: logger}
}

// Landing handles GET /.
func (h *PageHandler) Landing(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	in := domain.ProjectionInput{
		StartingBalance:     service.DefaultBalance,
		MonthlyContribution: service.DefaultContribution,
		HorizonYears:        service.DefaultHorizonYears,
	}
	calc := page.Calculator{Input: in, Result: h.projection.Calculate(in)}

	var buf bytes.Buffer
	if err := page.Render(&buf, h.site, calc); err != nil {
		h.logger.Error("failed to render landing page", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write landing page", zap.Error(err))
	}
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
