package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"instaquote/internal/domain/entities"
	"instaquote/internal/usecase/interfaces"
)

const defaultSendTimeout = 10 * time.Second

// EmailNotifier delivers the "quote sent" email through a transactional mail
// HTTP API (Resend-style JSON endpoint).
//
// It is strictly best-effort: the use case calls it after the record is
// persisted and only logs failures. In mock mode (or with no MAIL_API_URL)
// the email is logged instead of sent, which keeps local runs quiet.

type EmailNotifier struct {
	apiURL   string
	apiKey   string
	from     string
	operator string
	client   *http.Client
	mockMode bool
}

var _ interfaces.INotifier = (*EmailNotifier)(nil)

// NewEmailNotifierFromEnv builds the notifier from environment variables:
//   - MAIL_API_URL: mail API endpoint, e.g. https://api.resend.com/emails
//   - MAIL_API_KEY: bearer token
//   - MAIL_FROM: sender address (default: quotes@localhost)
//   - MAIL_OPERATOR_EMAIL: optional internal copy recipient
//   - MAIL_MOCK: log instead of sending
func NewEmailNotifierFromEnv() *EmailNotifier {
	if isMailMockEnabled() {
		log.Printf("[notify][mail] mock mode enabled")
		return &EmailNotifier{mockMode: true}
	}

	apiURL := strings.TrimSpace(os.Getenv("MAIL_API_URL"))
	if apiURL == "" {
		log.Printf("[notify][mail] MAIL_API_URL not set; quote emails will be logged only")
		return &EmailNotifier{mockMode: true}
	}

	from := strings.TrimSpace(os.Getenv("MAIL_FROM"))
	if from == "" {
		from = "quotes@localhost"
	}

	return &EmailNotifier{
		apiURL:   apiURL,
		apiKey:   strings.TrimSpace(os.Getenv("MAIL_API_KEY")),
		from:     from,
		operator: strings.TrimSpace(os.Getenv("MAIL_OPERATOR_EMAIL")),
		client:   &http.Client{Timeout: defaultSendTimeout},
	}
}

type mailMessage struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

func (n *EmailNotifier) NotifyQuoteCreated(ctx context.Context, q entities.InstantQuote) error {
	if n.mockMode {
		log.Printf("[notify][mail] mock send quote_number=%s to=%s total=%s", q.QuoteNumber, q.Contact.Email, renderAmount(q))
		return nil
	}

	recipients := []string{q.Contact.Email}
	if n.operator != "" {
		recipients = append(recipients, n.operator)
	}

	msg := mailMessage{
		From:    n.from,
		To:      recipients,
		Subject: fmt.Sprintf("Your instant quote %s", q.QuoteNumber),
		Text:    renderBody(q),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if n.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+n.apiKey)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send mail request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("mail API returned status %d", resp.StatusCode)
	}

	log.Printf("[notify][mail] quote email sent quote_number=%s to=%s", q.QuoteNumber, q.Contact.Email)
	return nil
}

// renderBody formats the stored full-precision values to two decimals for the
// email. Rounding here is presentation only; the record keeps full precision.
func renderBody(q entities.InstantQuote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Thanks for requesting a quote. Reference: %s\n\n", q.QuoteNumber)
	fmt.Fprintf(&b, "Project: %s, %d page(s)\n", q.Category.Title, q.Pages)
	if q.Breakdown.DeliverableLabel != "" {
		fmt.Fprintf(&b, "Deliverables: %s\n", q.Breakdown.DeliverableLabel)
	}
	if q.Breakdown.TimelineLabel != "" {
		fmt.Fprintf(&b, "Timeline: %s", q.Breakdown.TimelineLabel)
		if q.Breakdown.TimelineETA != "" {
			fmt.Fprintf(&b, " (%s)", q.Breakdown.TimelineETA)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nSubtotal: %s %.2f\n", q.Currency, q.Subtotal)
	fmt.Fprintf(&b, "VAT (%.1f%%): %s %.2f\n", q.VATRate, q.Currency, q.VAT)
	fmt.Fprintf(&b, "Total: %s\n", renderAmount(q))
	return b.String()
}

func renderAmount(q entities.InstantQuote) string {
	return fmt.Sprintf("%s %.2f", q.Currency, q.Total)
}

func isMailMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("MAIL_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
