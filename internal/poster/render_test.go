package poster

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"jobcast-engine/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLogos struct {
	data []byte
	err  error
}

func (s stubLogos) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	return s.data, "image/png", s.err
}

func job() domain.Job {
	return domain.Job{
		ID:             "1002",
		Title:          "Backend Engineer with a fairly long title that needs wrapping",
		CompanyName:    "Acme",
		CompanyLogoURL: "https://cdn.example/acme.png",
	}
}

func renderTo(t *testing.T, r *Renderer, j domain.Job) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poster.png")
	require.NoError(t, r.Render(context.Background(), j, path))
	return path
}

func assertPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, w, cfg.Width)
	assert.Equal(t, h, cfg.Height)
}

func TestRender_WithLogo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 64, 32))))

	r, err := NewRenderer(600, 450, "firstjobtech.in", stubLogos{data: buf.Bytes()})
	require.NoError(t, err)

	assertPNG(t, renderTo(t, r, job()), 600, 450)
}

func TestRender_LogoFetchFailureStillRenders(t *testing.T) {
	r, err := NewRenderer(600, 450, "firstjobtech.in", stubLogos{err: errors.New("cdn down")})
	require.NoError(t, err)

	assertPNG(t, renderTo(t, r, job()), 600, 450)
}

func TestRender_LogoDecodeFailureStillRenders(t *testing.T) {
	r, err := NewRenderer(600, 450, "firstjobtech.in", stubLogos{data: []byte("not an image")})
	require.NoError(t, err)

	assertPNG(t, renderTo(t, r, job()), 600, 450)
}

func TestRender_NoLogoURL(t *testing.T) {
	r, err := NewRenderer(600, 450, "firstjobtech.in", stubLogos{})
	require.NoError(t, err)

	j := job()
	j.CompanyLogoURL = ""
	assertPNG(t, renderTo(t, r, j), 600, 450)
}
