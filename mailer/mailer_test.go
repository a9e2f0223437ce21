package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ansh1vohra/edublog-server/config"
)

func TestBuildMessage(t *testing.T) {
	msg := BuildMessage("noreply@edublog.example", "a@x.com", "Your OTP Code", "Your OTP code is 483921")

	headerPart, bodyPart, found := strings.Cut(msg, "\r\n\r\n")
	assert.True(t, found, "message must separate headers from body with a blank line")

	assert.Contains(t, headerPart, `From: "EduBlog" <noreply@edublog.example>`)
	assert.Contains(t, headerPart, "To: a@x.com")
	assert.Contains(t, headerPart, "Subject: Your OTP Code")
	assert.Contains(t, headerPart, "Content-Type: text/plain")
	assert.Equal(t, "Your OTP code is 483921", bodyPart)
}

func TestNewRequiresCredentials(t *testing.T) {
	testCases := []struct {
		name string
		cfg  config.MailConfig
	}{
		{name: "empty"},
		{
			name: "missing refresh token",
			cfg: config.MailConfig{
				ClientID:     "id",
				ClientSecret: "secret",
				Sender:       "noreply@edublog.example",
			},
		},
		{
			name: "missing sender",
			cfg: config.MailConfig{
				ClientID:     "id",
				ClientSecret: "secret",
				RefreshToken: "token",
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := New(testCase.cfg)
			assert.Error(t, err)
		})
	}
}

func TestNewWithFullConfig(t *testing.T) {
	m, err := New(config.MailConfig{
		ClientID:     "id",
		ClientSecret: "secret",
		RedirectURL:  "https://developers.google.com/oauthplayground",
		RefreshToken: "token",
		Sender:       "noreply@edublog.example",
	})
	assert.NoError(t, err)
	assert.NotNil(t, m)
}
