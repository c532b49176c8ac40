package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"jobcast-engine/internal/config"
	"jobcast-engine/internal/feed"
	"jobcast-engine/internal/fetch"
	"jobcast-engine/internal/pipeline"
	"jobcast-engine/internal/poster"
	"jobcast-engine/internal/secrets"
	"jobcast-engine/internal/store"
	"jobcast-engine/internal/telegram"

	"github.com/joho/godotenv"
)

func main() {
	// Pull in a .env if present (non-fatal if missing); cron setups often
	// keep the bot token there instead of the crontab.
	_ = godotenv.Load()

	log.Printf("jobcast: blog feed -> telegram channel, one pass")

	// Data dir: use env if provided (cron can pass one), else local folder.
	dataDir := os.Getenv("JOBCAST_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	userCfgPath, err := config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}

	cfg, res := config.NormalizeAndValidate(cfg)
	for _, w := range res.Warnings {
		log.Printf("[config] warn: %s", w)
	}
	if !res.OK() {
		for _, e := range res.Errors {
			log.Printf("[config] error: %s", e)
		}
		log.Fatalf("config invalid: %s", userCfgPath)
	}

	// Credentials gate everything: bail out cleanly before any network
	// activity when they are not set.
	creds, err := secrets.TelegramCredentials()
	if err != nil {
		log.Printf("%v", err)
		log.Printf("nothing posted; set %s and %s and rerun", secrets.EnvBotToken, secrets.EnvChatID)
		return
	}

	release, err := store.AcquireRunLock(dataDir)
	if err != nil {
		log.Printf("[store] run lock not acquired (%v); exiting", err)
		return
	}
	defer release()

	db, err := store.Open(filepath.Join(dataDir, "jobcast.db"))
	if err != nil {
		log.Fatalf("open logo cache db: %v", err)
	}
	defer db.Close()

	posted := store.LoadPosted(filepath.Join(dataDir, "posted_jobs.txt"))
	log.Printf("[store] %d previously posted ids", posted.Len())

	limiter := fetch.NewHostLimiter(1.0, 2)
	zone := feed.LoadZone(cfg.Feed.Timezone)

	renderer, err := poster.NewRenderer(
		cfg.Render.Width, cfg.Render.Height, cfg.Posting.SiteName,
		store.NewLogoCache(db, cfg.LogoTimeout(), limiter),
	)
	if err != nil {
		log.Fatalf("renderer init: %v", err)
	}

	p := &pipeline.Pipeline{
		Ingester:  feed.NewClient(cfg.Feed.URL, cfg.FeedTimeout(), zone, limiter),
		Renderer:  renderer,
		Publisher: telegram.NewClient(cfg.Telegram.APIBase, creds, cfg.TelegramTimeout()),
		Posted:    posted,
		Caption: pipeline.CaptionOptions{
			PromoLine: cfg.Posting.PromoLine,
			Hashtags:  cfg.Posting.Hashtags,
		},
		Pace: cfg.PaceInterval(),
	}

	rep := p.RunOnce(context.Background())
	log.Printf("run complete: posted=%d skipped=%d failed=%d (today=%d)",
		rep.Posted, rep.Skipped, rep.Failed, rep.Today)
}
