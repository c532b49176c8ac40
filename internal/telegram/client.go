package telegram

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"jobcast-engine/internal/secrets"
)

// Client posts to a Telegram channel through the two Bot API endpoints the
// pipeline needs: sendPhoto and sendMessage. Everything is HTML parse mode.
type Client struct {
	apiBase string
	creds   secrets.Credentials
	hc      *http.Client
}

func NewClient(apiBase string, creds secrets.Credentials, timeout time.Duration) *Client {
	return &Client{
		apiBase: strings.TrimRight(apiBase, "/"),
		creds:   creds,
		hc:      &http.Client{Timeout: timeout},
	}
}

func (c *Client) endpoint(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.apiBase, c.creds.BotToken, method)
}

// Publish sends caption to the channel, as a photo post when artifactPath
// names an existing file, falling back to a text-only post on any photo
// failure. Returns nil once either endpoint accepts the message.
func (c *Client) Publish(ctx context.Context, caption string, artifactPath string) error {
	if c.creds.BotToken == "" || c.creds.ChatID == "" {
		return errors.New("telegram credentials not set")
	}

	if artifactPath != "" {
		if _, err := os.Stat(artifactPath); err != nil {
			log.Printf("[telegram] artifact missing, posting text only: %s", artifactPath)
		} else if err := c.sendPhoto(ctx, caption, artifactPath); err == nil {
			return nil
		} else {
			log.Printf("[telegram] photo post failed, falling back to text: %v", err)
		}
	}

	return c.sendText(ctx, caption)
}

func (c *Client) sendPhoto(ctx context.Context, caption, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open artifact: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("chat_id", c.creds.ChatID)
	_ = mw.WriteField("caption", caption)
	_ = mw.WriteField("parse_mode", "HTML")

	part, err := mw.CreateFormFile("photo", filepath.Base(path))
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("read artifact: %w", err)
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("sendPhoto"), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.do(req)
}

func (c *Client) sendText(ctx context.Context, caption string) error {
	form := url.Values{
		"chat_id":                  {c.creds.ChatID},
		"text":                     {caption},
		"parse_mode":               {"HTML"},
		"disable_web_page_preview": {"false"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint("sendMessage"), strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req)
}

func (c *Client) do(req *http.Request) error {
	res, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("telegram status %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
