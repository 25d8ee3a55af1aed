package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"wealth-site/domain"
	"wealth-site/repository"
)

// clamp keeps value inside [min, max]; NaN maps to min.
func clamp(value, min, max float64) float64 {
	if math.IsNaN(value) {
		return min
	}
	return math.Min(math.Max(value, min), max)
}

// annualToMonthly converts an annual rate to the equivalent monthly compounding rate.
func annualToMonthly(rate float64) float64 {
	return math.Pow(1+rate, 1.0/MonthsPerYear) - 1
}

func futureValue(principal, monthly float64, years int, rate float64) float64 {
	n := float64(years * MonthsPerYear)
	rm := annualToMonthly(rate)
	if rm == 0 {
		return principal + monthly*n
	}
	growth := math.Pow(1+rm, n)
	return principal*growth + monthly*((growth-1)/rm)
}

// ClampInput returns input with every field forced into its allowed range and
// the illustrative rate applied.
func ClampInput(input domain.ProjectionInput) domain.ProjectionInput {
	return domain.ProjectionInput{
		StartingBalance:     clamp(input.StartingBalance, 0, MaxStartingBalance),
		MonthlyContribution: clamp(input.MonthlyContribution, 0, MaxMonthlyContribution),
		HorizonYears:        int(clamp(float64(input.HorizonYears), MinHorizonYears, MaxHorizonYears)),
		AnnualRate:          IllustrativeAnnualRate,
	}
}

// Project computes the future value illustration. It never fails: out of range
// inputs are clamped.
func Project(input domain.ProjectionInput) domain.ProjectionResult {
	in := ClampInput(input)

	fv := futureValue(in.StartingBalance, in.MonthlyContribution, in.HorizonYears, in.AnnualRate)
	total := in.StartingBalance + in.MonthlyContribution*float64(in.HorizonYears*MonthsPerYear)

	return domain.ProjectionResult{
		FutureValue:        fv,
		TotalContributions: total,
		Growth:             fv - total,
		HorizonYears:       in.HorizonYears,
	}
}

// parseNumber mirrors the browser's Number(value): blank is 0, garbage is NaN.
func parseNumber(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v
}

// ParseProjectionInput builds an input from raw form values. Unparsable values
// end up at the lower bound once clamped.
func ParseProjectionInput(balance, monthly, years string) domain.ProjectionInput {
	y := clamp(parseNumber(years), MinHorizonYears, MaxHorizonYears)
	return domain.ProjectionInput{
		StartingBalance:     clamp(parseNumber(balance), 0, MaxStartingBalance),
		MonthlyContribution: clamp(parseNumber(monthly), 0, MaxMonthlyContribution),
		HorizonYears:        int(math.Trunc(y)),
		AnnualRate:          IllustrativeAnnualRate,
	}
}

type ProjectionService struct {
	cache  repository.CacheRepository
	logger *zap.Logger
}

// NewProjectionService creates a ProjectionService backed by the given cache.
func NewProjectionService(cache repository.CacheRepository, logger *zap.Logger) *ProjectionService {
	return &ProjectionService{cache: cache, logger: logger}
}

func cacheKey(in domain.ProjectionInput) string {
	return fmt.Sprintf("%s%g:%g:%d:%g",
		projectionCachePrefix, in.StartingBalance, in.MonthlyContribution, in.HorizonYears, in.AnnualRate)
}

// Calculate returns the projection for input, served from cache when possible.
// Cache errors are logged and never affect the result.
func (s *ProjectionService) Calculate(input domain.ProjectionInput) domain.ProjectionResult {
	in := ClampInput(input)
	key := cacheKey(in)

	if cached, ok := s.cache.Get(key); ok {
		var result domain.ProjectionResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result
		}
		s.logger.Warn("discarding unreadable cached projection", zap.String("key", key))
	}

	result := Project(in)

	data, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn("failed to encode projection for cache", zap.Error(err))
		return result
	}
	if err := s.cache.Set(key, string(data)); err != nil {
		s.logger.Warn("failed to cache projection", zap.String("key", key), zap.Error(err))
	}

	return result
}
