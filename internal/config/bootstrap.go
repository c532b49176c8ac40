package config

import (
	"errors"
	"os"
	"path/filepath"
)

// defaultYAML is written on first run when no packaged config is available,
// so the binary works standalone under cron.
const defaultYAML = `feed:
  url: "https://www.firstjobtech.in/feeds/posts/default?alt=json"
  timeout_seconds: 15
  timezone: "Asia/Kolkata"

posting:
  pace_seconds: 300
  site_name: "firstjobtech.in"
  promo_line: "More jobs at firstjobtech.in"
  hashtags: ["JobOpening", "Hiring", "Careers"]

telegram:
  api_base: "https://api.telegram.org"
  timeout_seconds: 20

render:
  width: 1200
  height: 900
  logo_timeout_seconds: 10
`

// EnsureUserConfig makes sure a config file exists in the data dir and
// returns its path. Seeds from the packaged default when present, else
// from built-in defaults.
func EnsureUserConfig(dataDir string, defaultPath string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	seed := []byte(defaultYAML)
	if b, rerr := os.ReadFile(defaultPath); rerr == nil {
		seed = b
	}

	if err := os.WriteFile(userPath, seed, 0o644); err != nil {
		return "", err
	}
	return userPath, nil
}
