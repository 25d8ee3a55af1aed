package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wealth-site/domain"
	"wealth-site/submitter"
)

var (
	contactLead   domain.Lead
	contactHosted bool
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Submit an inquiry to the site or through the hosted form",
	RunE: func(cmd *cobra.Command, args []string) error {
		var s submitter.LeadSubmitter
		if contactHosted {
			s = submitter.NewHostedFormSubmitter(cfg.HostedForm.URL, submitter.WriterOpener{W: cmd.OutOrStdout()})
		} else {
			s = submitter.NewEndpointSubmitter(cfg.Site.BaseURL, nil)
		}

		form := submitter.NewForm(s)
		form.SetLead(contactLead)

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		receipt, err := form.Submit(ctx)
		if err != nil {
			logger.Debug("inquiry failed", zap.Error(err))
			return err
		}

		if receipt.RedirectURL == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "Thank you. We'll be in touch shortly.")
		}
		return nil
	},
}

func init() {
	f := contactCmd.Flags()
	f.StringVar(&contactLead.FirstName, "first-name", "", "first name")
	f.StringVar(&contactLead.LastName, "last-name", "", "last name")
	f.StringVar(&contactLead.Email, "email", "", "email address")
	f.StringVar(&contactLead.Phone, "phone", "", "phone number (optional)")
	f.StringVar(&contactLead.Message, "message", "", "how can we help")
	f.BoolVar(&contactHosted, "hosted", false, "open the hosted form instead of posting to the site")
}
