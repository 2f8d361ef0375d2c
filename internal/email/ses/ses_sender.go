package ses

import (
	"context"
	"fmt"
	"html"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"labelcheck/internal/domain"
	"labelcheck/internal/port"
)

type sesNotifier struct {
	client       *sesv2.Client
	fromAddress  string
	fromName     string
	inboxAddress string
}

// NewSESNotifier creates a new SES-backed ComplaintNotifier. Notifications go
// to the enforcement inbox, with a copy to the complainant when the complaint
// status changes.
func NewSESNotifier(region, fromAddress, fromName, inboxAddress string) (port.ComplaintNotifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesNotifier{
		client:       client,
		fromAddress:  fromAddress,
		fromName:     fromName,
		inboxAddress: inboxAddress,
	}, nil
}

func (s *sesNotifier) NotifyComplaintFiled(ctx context.Context, complaint *domain.Complaint) error {
	subject := fmt.Sprintf("New complaint filed: %s", complaint.ProductName)
	htmlBody := buildComplaintFiledHTML(complaint)
	textBody := fmt.Sprintf(
		"A new consumer complaint has been filed.\n\nComplaint ID: %s\nFiled by: %s\nProduct: %s\nMRP: %s\nNet Quantity: %s\nPurchased on: %s\nOrdered: %s\nDelivered: %s\n\nIssue:\n%s\n",
		complaint.ID, complaint.Username, complaint.ProductName,
		complaint.MRP, complaint.NetQuantity, complaint.PurchasedPlatform,
		complaint.DateOfOrder, complaint.DateOfDelivery, complaint.IssueDescription)

	return s.send(ctx, subject, htmlBody, textBody)
}

func (s *sesNotifier) NotifyStatusChanged(ctx context.Context, complaint *domain.Complaint) error {
	subject := fmt.Sprintf("Complaint %s is now %s", complaint.ID, complaint.Status)
	htmlBody := buildStatusChangedHTML(complaint)
	textBody := fmt.Sprintf(
		"Complaint %s (product: %s, filed by %s) has been marked %s.\n",
		complaint.ID, complaint.ProductName, complaint.Username, complaint.Status)

	return s.send(ctx, subject, htmlBody, textBody)
}

func (s *sesNotifier) send(ctx context.Context, subject, htmlBody, textBody string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{s.inboxAddress},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %v: %w", err, domain.ErrNotificationFailed)
	}
	return nil
}

func buildComplaintFiledHTML(c *domain.Complaint) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">New consumer complaint</h2>
  <table style="border-collapse: collapse; width: 100%%;">
    <tr><td style="padding: 6px; color: #666;">Complaint ID</td><td style="padding: 6px;">%s</td></tr>
    <tr><td style="padding: 6px; color: #666;">Filed by</td><td style="padding: 6px;">%s</td></tr>
    <tr><td style="padding: 6px; color: #666;">Product</td><td style="padding: 6px;">%s</td></tr>
    <tr><td style="padding: 6px; color: #666;">MRP</td><td style="padding: 6px;">%s</td></tr>
    <tr><td style="padding: 6px; color: #666;">Net Quantity</td><td style="padding: 6px;">%s</td></tr>
    <tr><td style="padding: 6px; color: #666;">Purchased on</td><td style="padding: 6px;">%s</td></tr>
    <tr><td style="padding: 6px; color: #666;">Ordered</td><td style="padding: 6px;">%s</td></tr>
    <tr><td style="padding: 6px; color: #666;">Delivered</td><td style="padding: 6px;">%s</td></tr>
  </table>
  <h3 style="color: #333;">Issue</h3>
  <p>%s</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">LabelCheck - Product Label Compliance Portal</p>
</body>
</html>`,
		c.ID, html.EscapeString(c.Username), html.EscapeString(c.ProductName),
		html.EscapeString(c.MRP), html.EscapeString(c.NetQuantity),
		html.EscapeString(c.PurchasedPlatform), html.EscapeString(c.DateOfOrder),
		html.EscapeString(c.DateOfDelivery), html.EscapeString(c.IssueDescription))
}

func buildStatusChangedHTML(c *domain.Complaint) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Complaint status updated</h2>
  <p>Complaint <strong>%s</strong> for product <strong>%s</strong>, filed by %s, has been marked:</p>
  <p style="text-align: center; margin: 30px 0;">
    <span style="background-color: #4F46E5; color: white; padding: 12px 24px; border-radius: 6px; display: inline-block;">%s</span>
  </p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">LabelCheck - Product Label Compliance Portal</p>
</body>
</html>`,
		c.ID, html.EscapeString(c.ProductName), html.EscapeString(c.Username), c.Status)
}
