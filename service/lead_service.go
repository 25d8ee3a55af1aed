package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wealth-site/config"
	"wealth-site/domain"
)

// Email is a single plain-text message handed to a Mailer.
type Email struct {
	FromName string
	From     string
	To       string
	ReplyTo  string
	Subject  string
	Body     string
}

// Mailer delivers one message. Implementations must be safe for concurrent use.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

type LeadService struct {
	mail     config.MailConfig
	firmName string
	mailer   Mailer
	logger   *zap.Logger
}

// NewLeadService creates a LeadService. The mail configuration is checked on
// every submission so an unconfigured relay is reported to the caller instead
// of failing at startup.
func NewLeadService(mail config.MailConfig, firmName string, mailer Mailer, logger *zap.Logger) *LeadService {
	return &LeadService{
		mail:     mail,
		firmName: firmName,
		mailer:   mailer,
		logger:   logger,
	}
}

// ValidateLead checks the required fields. Phone is optional.
func ValidateLead(lead domain.Lead) error {
	for _, field := range []string{lead.FirstName, lead.LastName, lead.Email, lead.Message} {
		if field == "" {
			return ErrValidation
		}
	}
	return nil
}

// BuildMessageBody renders the plain-text notification sent to the inbox.
func BuildMessageBody(lead domain.Lead) string {
	phone := lead.Phone
	if phone == "" {
		phone = "N/A"
	}

	lines := []string{
		"Name: " + lead.FullName(),
		"Email: " + lead.Email,
		"Phone: " + phone,
		"",
		lead.Message,
	}
	return strings.Join(lines, "\n")
}

// Submit validates lead and relays it to the inbox. Transport failures are
// logged and collapsed into ErrDelivery.
func (s *LeadService) Submit(ctx context.Context, lead domain.Lead) (domain.Receipt, error) {
	if err := ValidateLead(lead); err != nil {
		return domain.Receipt{}, err
	}

	if !s.mail.Configured() || s.mailer == nil {
		s.logger.Error("lead received but email service is not configured")
		return domain.Receipt{}, ErrNotConfigured
	}

	receipt := domain.Receipt{Reference: uuid.NewString()}

	email := Email{
		FromName: s.firmName,
		From:     s.mail.From,
		To:       s.mail.To,
		ReplyTo:  lead.Email,
		Subject:  s.mail.Subject,
		Body:     BuildMessageBody(lead),
	}

	if err := s.mailer.Send(ctx, email); err != nil {
		s.logger.Error("failed to relay lead",
			zap.String("reference", receipt.Reference),
			zap.String("smtp_host", s.mail.Host),
			zap.Error(err))
		return domain.Receipt{}, ErrDelivery
	}

	s.logger.Info("lead relayed", zap.String("reference", receipt.Reference))

	return receipt, nil
}
