package services

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"houdeapp/model"

	"github.com/joho/godotenv"
)

func LoadEmailConfig() (*model.EmailConfig, error) {
	// Load .env only when running local (hosted env vars are set directly)
	if os.Getenv("RENDER") == "" {
		if err := godotenv.Load(); err != nil {
			fmt.Println("Warning: .env file not loaded, fallback to OS env vars")
		}
	}

	config := &model.EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
	}

	if config.Host == "" || config.Port == "" || config.Username == "" || config.Password == "" {
		return nil, fmt.Errorf("missing required SMTP environment variables")
	}

	return config, nil
}

// SendingEmail delivers one HTML email. An empty replyTo leaves the header
// out; many SMTP servers require From to be the authenticated mailbox, so the
// sender's address only ever appears in Reply-To.
func SendingEmail(to, subject, body, replyTo string) error {
	config, err := LoadEmailConfig()
	if err != nil {
		return fmt.Errorf("config loading error: %w", err)
	}

	addr := config.Host + ":" + config.Port
	auth := smtp.PlainAuth("", config.Username, config.Password, config.Host)

	from := config.Username
	mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	message := "From: " + from + "\n" +
		"To: " + to + "\n"
	if replyTo != "" {
		message += "Reply-To: " + replyTo + "\n"
	}
	message += "Subject: " + subject + "\n" +
		mime + "\n" +
		body

	err = smtp.SendMail(addr, auth, from, []string{to}, []byte(message))
	if err != nil {
		return fmt.Errorf("SMTP send error: %w", err)
	}
	return nil
}

func EscapeHTML(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#039;",
	)
	return replacer.Replace(s)
}

// GenerateInquiryEmailContent builds the admin notification body. Inputs are
// escaped before they reach the template.
func GenerateInquiryEmailContent(name, email, inquiry string) string {
	return `
        <div style="font-family:Arial,sans-serif;padding:16px;background:#f6f6f6">
          <div style="background:#fff;border-radius:10px;padding:16px">
            <h2 style="margin:0 0 10px;color:#d97706">New Inquiry</h2>
            <p><b>Name:</b> ` + EscapeHTML(name) + `</p>
            <p><b>Email:</b> ` + EscapeHTML(email) + `</p>
            <hr style="border:0;border-top:1px solid #eee;margin:12px 0"/>
            <div style="white-space:pre-wrap;line-height:1.55">` + EscapeHTML(inquiry) + `</div>
          </div>
        </div>
        `
}

// GenerateAutoReplyContent builds the confirmation sent back to the visitor,
// quoting at most the first 200 characters of the inquiry. Truncation counts
// runes, not bytes, so CJK inquiries never end up as broken UTF-8.
func GenerateAutoReplyContent(name, inquiry, fromName string) string {
	preview := EscapeHTML(inquiry)
	if runes := []rune(preview); len(runes) > 200 {
		preview = string(runes[:200]) + "..."
	}

	return `
        <div style="font-family:Arial,sans-serif;padding:16px;color:#111827">
          <p>Dear ` + EscapeHTML(name) + `,</p>
          <p>Thanks for reaching out. We received your message and will reply within 24 hours.</p>
          <div style="background:#fffbeb;border-left:4px solid #d97706;padding:12px;margin:12px 0;white-space:pre-wrap">
            ` + preview + `
          </div>
          <p>Best regards,<br/><b>` + EscapeHTML(fromName) + ` Team</b></p>
        </div>
        `
}
