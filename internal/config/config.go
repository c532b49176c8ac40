package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Feed struct {
		URL            string `yaml:"url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		Timezone       string `yaml:"timezone"`
	} `yaml:"feed"`

	Posting struct {
		PaceSeconds int      `yaml:"pace_seconds"`
		SiteName    string   `yaml:"site_name"`
		PromoLine   string   `yaml:"promo_line"`
		Hashtags    []string `yaml:"hashtags"`
	} `yaml:"posting"`

	Telegram struct {
		APIBase        string `yaml:"api_base"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"telegram"`

	Render struct {
		Width              int `yaml:"width"`
		Height             int `yaml:"height"`
		LogoTimeoutSeconds int `yaml:"logo_timeout_seconds"`
	} `yaml:"render"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

func (c Config) FeedTimeout() time.Duration {
	return time.Duration(c.Feed.TimeoutSeconds) * time.Second
}

func (c Config) TelegramTimeout() time.Duration {
	return time.Duration(c.Telegram.TimeoutSeconds) * time.Second
}

func (c Config) LogoTimeout() time.Duration {
	return time.Duration(c.Render.LogoTimeoutSeconds) * time.Second
}

func (c Config) PaceInterval() time.Duration {
	return time.Duration(c.Posting.PaceSeconds) * time.Second
}
