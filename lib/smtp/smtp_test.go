package smtp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("no-reply@jobboard.local", "hr@acme.io", "Новый отклик", "Jane откликнулась")
	require.True(t, strings.HasPrefix(msg, "From: no-reply@jobboard.local\r\nTo: hr@acme.io\r\n"))
	require.Contains(t, msg, "Subject: Job Board - Новый отклик\r\n")
	require.Contains(t, msg, "charset=\"UTF-8\"\r\n\r\nJane откликнулась")
}

func TestSendEMailNotConfigured(t *testing.T) {
	require.Nil(t, Connect("", "", "", "", "no-reply@jobboard.local", true))
	require.Nil(t, Instance.SendEMail("hr@acme.io", "subject", "body"))
}
