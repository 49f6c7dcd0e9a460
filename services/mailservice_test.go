package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmailConfig(t *testing.T) {
	t.Setenv("RENDER", "true") // skip .env lookup

	t.Run("missing vars", func(t *testing.T) {
		t.Setenv("SMTP_HOST", "")
		t.Setenv("SMTP_PORT", "")
		t.Setenv("SMTP_USERNAME", "")
		t.Setenv("SMTP_PASSWORD", "")

		_, err := LoadEmailConfig()
		assert.Error(t, err)
	})

	t.Run("complete", func(t *testing.T) {
		t.Setenv("SMTP_HOST", "smtp.example.com")
		t.Setenv("SMTP_PORT", "587")
		t.Setenv("SMTP_USERNAME", "mailer@example.com")
		t.Setenv("SMTP_PASSWORD", "secret")

		config, err := LoadEmailConfig()
		require.NoError(t, err)
		assert.Equal(t, "smtp.example.com", config.Host)
		assert.Equal(t, "587", config.Port)
	})
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;hi&lt;/b&gt;", EscapeHTML("<b>hi</b>"))
	assert.Equal(t, "a &amp; b", EscapeHTML("a & b"))
	assert.Equal(t, "&quot;quoted&quot; &#039;single&#039;", EscapeHTML(`"quoted" 'single'`))
}

func TestGenerateInquiryEmailContent(t *testing.T) {
	body := GenerateInquiryEmailContent("Eve <script>", "eve@example.com", "Need 500 tote bags")
	assert.Contains(t, body, "Eve &lt;script&gt;")
	assert.Contains(t, body, "eve@example.com")
	assert.Contains(t, body, "Need 500 tote bags")
	assert.NotContains(t, body, "<script>")
}

func TestGenerateAutoReplyContentPreview(t *testing.T) {
	long := strings.Repeat("x", 300)
	body := GenerateAutoReplyContent("Bob", long, "Houde Handbag")
	assert.Contains(t, body, strings.Repeat("x", 200)+"...")
	assert.NotContains(t, body, strings.Repeat("x", 201))
	assert.Contains(t, body, "Houde Handbag")

	short := GenerateAutoReplyContent("Bob", "short note", "Houde Handbag")
	assert.Contains(t, short, "short note")
	assert.NotContains(t, short, "...")
}

func TestGenerateAutoReplyContentPreviewCJK(t *testing.T) {
	// Truncation must land on a rune boundary, not a byte offset.
	body := GenerateAutoReplyContent("Bob", strings.Repeat("你", 100), "Houde Handbag")
	assert.True(t, utf8.ValidString(body))
	assert.Contains(t, body, strings.Repeat("你", 100))

	long := GenerateAutoReplyContent("Bob", strings.Repeat("你", 250), "Houde Handbag")
	assert.True(t, utf8.ValidString(long))
	assert.Contains(t, long, strings.Repeat("你", 200)+"...")
	assert.NotContains(t, long, strings.Repeat("你", 201))
}
