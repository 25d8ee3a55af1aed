package domain

// ProjectionInput holds the wealth illustration inputs. AnnualRate is fixed by
// the service and ignored when decoded from a request.
type ProjectionInput struct {
	StartingBalance     float64 `json:"startingBalance"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	HorizonYears        int     `json:"horizonYears"`
	AnnualRate          float64 `json:"-"`
}

type ProjectionResult struct {
	FutureValue        float64 `json:"futureValue"`
	TotalContributions float64 `json:"totalContributions"`
	Growth             float64 `json:"growth"`
	HorizonYears       int     `json:"horizonYears"`
}
