package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/Ansh1vohra/edublog-server/config"
)

const gmailSendURL = "https://gmail.googleapis.com/gmail/v1/users/me/messages/send"

// Mailer sends mail through the Gmail API on behalf of the configured
// sender. The oauth2 client refreshes the access token from the refresh
// token as needed.
type Mailer struct {
	sender string
	client *http.Client
}

func New(cfg config.MailConfig) (*Mailer, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RefreshToken == "" || cfg.Sender == "" {
		return nil, fmt.Errorf("mail env not set: MAIL_CLIENT_ID/MAIL_CLIENT_SECRET/MAIL_REFRESH_TOKEN and EMAIL_USER are required")
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       []string{"https://www.googleapis.com/auth/gmail.send"},
		Endpoint:     google.Endpoint,
	}
	tokenSource := oauthCfg.TokenSource(context.Background(), &oauth2.Token{
		RefreshToken: cfg.RefreshToken,
	})

	return &Mailer{
		sender: cfg.Sender,
		client: oauth2.NewClient(context.Background(), tokenSource),
	}, nil
}

// SendEmail delivers a plain-text message to a single recipient.
func (m *Mailer) SendEmail(ctx context.Context, to, subject, body string) error {
	raw := base64.RawURLEncoding.EncodeToString([]byte(BuildMessage(m.sender, to, subject, body)))
	payload, err := json.Marshal(map[string]string{"raw": raw})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, gmailSendURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("gmail send request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("gmail send failed with status %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}

// BuildMessage assembles the RFC 2822 text the Gmail API expects in the
// raw field.
func BuildMessage(from, to, subject, body string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: \"EduBlog\" <%s>\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return b.String()
}
