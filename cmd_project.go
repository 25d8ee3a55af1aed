package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"wealth-site/domain"
	"wealth-site/service"
)

var (
	projectBalance float64
	projectMonthly float64
	projectYears   int
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Print a wealth illustration for the given inputs",
	RunE: func(cmd *cobra.Command, args []string) error {
		input := domain.ProjectionInput{
			StartingBalance:     projectBalance,
			MonthlyContribution: projectMonthly,
			HorizonYears:        projectYears,
		}
		printProjection(cmd.OutOrStdout(), service.ClampInput(input), service.Project(input))
		return nil
	},
}

func printProjection(w io.Writer, in domain.ProjectionInput, result domain.ProjectionResult) {
	fmt.Fprintf(w, "Starting balance:     %s\n", service.FormatUSD(in.StartingBalance))
	fmt.Fprintf(w, "Monthly contribution: %s\n", service.FormatUSD(in.MonthlyContribution))
	fmt.Fprintf(w, "Horizon:              %d years at %g%%\n", result.HorizonYears, service.IllustrativeAnnualRate*100)
	fmt.Fprintf(w, "Future value:         %s\n", service.FormatUSD(result.FutureValue))
	fmt.Fprintf(w, "Total contributions:  %s\n", service.FormatUSD(result.TotalContributions))
	fmt.Fprintf(w, "Growth:               %s\n", service.FormatUSD(result.Growth))
	fmt.Fprintf(w, "\n%s\n", service.Disclaimer)
}

func init() {
	projectCmd.Flags().Float64Var(&projectBalance, "balance", service.DefaultBalance, "current balance")
	projectCmd.Flags().Float64Var(&projectMonthly, "monthly", service.DefaultContribution, "monthly contribution")
	projectCmd.Flags().IntVar(&projectYears, "years", service.DefaultHorizonYears, "years to grow")
}
