package service

const (
	MaxStartingBalance     = 50_000_000.0
	MaxMonthlyContribution = 50_000.0
	MinHorizonYears        = 1
	MaxHorizonYears        = 40
	MonthsPerYear          = 12

	// Illustrative industry-average assumption.
	IllustrativeAnnualRate = 0.06

	DefaultBalance      = 180_000.0
	DefaultContribution = 550.0
	DefaultHorizonYears = 20

	projectionCachePrefix = "projection:"
)
