package poster

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"

	"jobcast-engine/internal/domain"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// LogoSource supplies logo bytes for a URL. Implemented by the sqlite
// logo cache; any error just means the poster renders without a logo.
type LogoSource interface {
	Fetch(ctx context.Context, url string) ([]byte, string, error)
}

type Renderer struct {
	width    int
	height   int
	siteName string
	logos    LogoSource

	titleFace font.Face
	bodyFace  font.Face
	noteFace  font.Face
}

func NewRenderer(width, height int, siteName string, logos LogoSource) (*Renderer, error) {
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	italic, err := truetype.Parse(goitalic.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse italic font: %w", err)
	}

	scale := float64(height) / 900

	return &Renderer{
		width:     width,
		height:    height,
		siteName:  siteName,
		logos:     logos,
		titleFace: truetype.NewFace(bold, &truetype.Options{Size: 44 * scale}),
		bodyFace:  truetype.NewFace(regular, &truetype.Options{Size: 34 * scale}),
		noteFace:  truetype.NewFace(italic, &truetype.Options{Size: 28 * scale}),
	}, nil
}

// Render draws the promo poster for job and writes it as PNG to path.
// The logo is optional; everything else is text on a white canvas.
func (r *Renderer) Render(ctx context.Context, job domain.Job, path string) error {
	w := float64(r.width)
	h := float64(r.height)

	dc := gg.NewContext(r.width, r.height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetHexColor("#1a1a1a")
	dc.SetFontFace(r.titleFace)
	dc.DrawStringWrapped(job.Title, w/2, h*0.13, 0.5, 0.5, w*0.85, 1.3, gg.AlignCenter)

	dc.SetHexColor("#555555")
	dc.SetFontFace(r.bodyFace)
	dc.DrawStringAnchored("at "+job.CompanyName, w/2, h*0.27, 0.5, 0.5)

	if job.CompanyLogoURL != "" {
		if im := r.fetchLogo(ctx, job.CompanyLogoURL); im != nil {
			drawFitted(dc, im, w/2, h*0.58, w*0.5, h*0.33)
		}
	}

	dc.SetHexColor("#1a1a1a")
	dc.SetFontFace(r.noteFace)
	dc.DrawStringAnchored("New Opportunity! Apply Now", w/2, h*0.85, 0.5, 0.5)

	dc.SetHexColor("#0066cc")
	dc.DrawStringAnchored(r.siteName, w/2, h*0.92, 0.5, 0.5)

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save poster: %w", err)
	}
	return nil
}

func (r *Renderer) fetchLogo(ctx context.Context, url string) image.Image {
	b, _, err := r.logos.Fetch(ctx, url)
	if err != nil {
		log.Printf("[poster] logo fetch skipped url=%s err=%v", url, err)
		return nil
	}
	im, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		log.Printf("[poster] logo decode skipped url=%s err=%v", url, err)
		return nil
	}
	return im
}

// drawFitted scales im to fit a maxW x maxH box centered on (cx, cy),
// preserving aspect ratio and never distorting.
func drawFitted(dc *gg.Context, im image.Image, cx, cy, maxW, maxH float64) {
	b := im.Bounds()
	iw := float64(b.Dx())
	ih := float64(b.Dy())
	if iw <= 0 || ih <= 0 {
		return
	}

	s := maxW / iw
	if hs := maxH / ih; hs < s {
		s = hs
	}

	dc.Push()
	dc.Translate(cx-iw*s/2, cy-ih*s/2)
	dc.Scale(s, s)
	dc.DrawImage(im, 0, 0)
	dc.Pop()
}
