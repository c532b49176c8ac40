package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramCredentials(t *testing.T) {
	t.Setenv(EnvBotToken, " tok123 ")
	t.Setenv(EnvChatID, "@channel")

	c, err := TelegramCredentials()
	require.NoError(t, err)
	assert.Equal(t, "tok123", c.BotToken)
	assert.Equal(t, "@channel", c.ChatID)
}

func TestTelegramCredentials_Missing(t *testing.T) {
	t.Setenv(EnvBotToken, "")
	t.Setenv(EnvChatID, "   ")

	_, err := TelegramCredentials()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvBotToken)
	assert.Contains(t, err.Error(), EnvChatID)
}
