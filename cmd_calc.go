package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"wealth-site/domain"
	"wealth-site/service"
	"wealth-site/tui"
)

var reducedMotion bool

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Interactive wealth illustration calculator",
	RunE: func(cmd *cobra.Command, args []string) error {
		model := tui.NewModel(cfg.Site.FirmName, domain.ProjectionInput{
			StartingBalance:     service.DefaultBalance,
			MonthlyContribution: service.DefaultContribution,
			HorizonYears:        service.DefaultHorizonYears,
		}, reducedMotion)

		_, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
		return err
	},
}

func init() {
	calcCmd.Flags().BoolVar(&reducedMotion, "reduced-motion", false, "show a static headline")
}
