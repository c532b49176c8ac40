package secrets

import (
	"errors"
	"os"
	"strings"
)

const (
	EnvBotToken = "TELEGRAM_BOT_TOKEN"
	EnvChatID   = "TELEGRAM_CHAT_ID"
)

type Credentials struct {
	BotToken string
	ChatID   string
}

// TelegramCredentials reads the channel credentials from the environment.
// The scheduler (or a .env file loaded earlier) is expected to inject them;
// an empty value is treated the same as an unset one.
func TelegramCredentials() (Credentials, error) {
	c := Credentials{
		BotToken: strings.TrimSpace(os.Getenv(EnvBotToken)),
		ChatID:   strings.TrimSpace(os.Getenv(EnvChatID)),
	}

	var missing []string
	if c.BotToken == "" {
		missing = append(missing, EnvBotToken)
	}
	if c.ChatID == "" {
		missing = append(missing, EnvChatID)
	}
	if len(missing) > 0 {
		return Credentials{}, errors.New("missing credentials: " + strings.Join(missing, ", "))
	}
	return c, nil
}
