package service

import (
	"bytes"
	"testing"
	"time"

	"wealth-site/domain"
)

func TestRenderIllustrationPDF(t *testing.T) {
	in := domain.ProjectionInput{StartingBalance: 180000, MonthlyContribution: 550, HorizonYears: 20}

	data, err := RenderIllustrationPDF("Trupath Wealth", in, Project(in), time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output is not a PDF")
	}
}
