// Package notify tells the ops team about new submissions over email and
// SMS. Delivery is best-effort; failures are logged and never block intake.
package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"venture-intake/internal/common/config"
	apperrors "venture-intake/internal/common/errors"
	"venture-intake/internal/common/logger"
	"venture-intake/internal/intake"
)

// SESService is the email operation used by the notifier.
type SESService interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SNSService is the SMS operation used by the notifier.
type SNSService interface {
	Publish(ctx context.Context, input *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Notifier sends the ops alerts configured in the notifications section.
type Notifier struct {
	ses    SESService
	sns    SNSService
	cfg    config.NotificationConfig
	logger logger.Logger
}

func New(sesSvc SESService, snsSvc SNSService, cfg config.NotificationConfig, log logger.Logger) *Notifier {
	return &Notifier{ses: sesSvc, sns: snsSvc, cfg: cfg, logger: log}
}

// ApplicationReceived alerts ops about a new startup application.
func (n *Notifier) ApplicationReceived(ctx context.Context, applicationID string, p *intake.ApplicationPayload) {
	subject := fmt.Sprintf("New application: %s", p.Company.Name)
	body := fmt.Sprintf(
		"Application %s\n\nCompany: %s\nFounder: %s %s <%s>\nRegion: %s\nStage: %s\nPartners: %s\n",
		applicationID,
		p.Company.Name,
		p.Founder.FirstName, p.Founder.LastName, p.Founder.Email,
		p.Company.Region,
		p.Financials.FundraisingStage,
		strings.Join(p.PartnersSelected, ", "),
	)
	n.sendEmail(ctx, subject, body)
	n.sendSMS(ctx, fmt.Sprintf("New application from %s (%s)", p.Company.Name, p.Company.Region))
}

// NetworkSignupReceived alerts ops about a new network signup.
func (n *Notifier) NetworkSignupReceived(ctx context.Context, role, id string) {
	n.sendEmail(ctx,
		fmt.Sprintf("New network signup (%s)", role),
		fmt.Sprintf("Signup %s joined the network as %s.\n", id, role))
}

func (n *Notifier) sendEmail(ctx context.Context, subject, body string) {
	if !n.cfg.Email.Enabled || n.ses == nil {
		return
	}
	_, err := n.ses.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(n.cfg.Email.FromEmail),
		Destination: &sestypes.Destination{
			ToAddresses: []string{n.cfg.Email.OpsEmail},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: aws.String(subject)},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: aws.String(body)},
			},
		},
	})
	if err != nil {
		stdErr := apperrors.NewNotificationSendFailedError("email", err)
		n.logger.Warn(stdErr.Message, map[string]interface{}{
			"code":    string(stdErr.Code),
			"subject": subject,
			"details": stdErr.Details,
		})
	}
}

func (n *Notifier) sendSMS(ctx context.Context, message string) {
	if !n.cfg.SMS.Enabled || n.sns == nil {
		return
	}
	_, err := n.sns.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(n.cfg.SMS.OpsPhone),
		Message:     aws.String(message),
	})
	if err != nil {
		stdErr := apperrors.NewNotificationSendFailedError("sms", err)
		n.logger.Warn(stdErr.Message, map[string]interface{}{
			"code":    string(stdErr.Code),
			"details": stdErr.Details,
		})
	}
}
