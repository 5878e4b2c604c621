package qrcode

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"

	"parkingpro/internal/domain/delivery"

	"github.com/disintegration/imaging"
	skip2 "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Renderer turns a payload into PNG bytes. An error means the tier is unusable for this payload.
type Renderer interface {
	Tier() delivery.Tier
	Render(payload string) ([]byte, error)
}

// EncoderRenderer produces a scannable QR code.
type EncoderRenderer struct {
	size int
}

func NewEncoderRenderer(size int) *EncoderRenderer {
	return &EncoderRenderer{size: size}
}

func (r *EncoderRenderer) Tier() delivery.Tier { return delivery.TierQRCode }

func (r *EncoderRenderer) Render(payload string) ([]byte, error) {
	return skip2.Encode(payload, skip2.Medium, r.size)
}

const (
	rasterSize  = 240
	placeholder = "QR"
)

var (
	rasterBackground = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	rasterForeground = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
)

// RasterRenderer draws a labelled placeholder tile. It ignores the payload.
type RasterRenderer struct{}

func NewRasterRenderer() *RasterRenderer {
	return &RasterRenderer{}
}

func (r *RasterRenderer) Tier() delivery.Tier { return delivery.TierRaster }

func (r *RasterRenderer) Render(_ string) ([]byte, error) {
	img := imaging.New(rasterSize, rasterSize, rasterBackground)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(rasterForeground),
		Face: face,
	}
	width := d.MeasureString(placeholder).Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	d.Dot = fixed.P((rasterSize-width)/2, (rasterSize+ascent)/2)
	d.DrawString(placeholder)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// 1x1 transparent PNG.
const staticPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR4nGNgYAAAAAMAAbitOmMAAAAASUVORK5CYII="

// StaticRenderer always succeeds with a fixed image.
type StaticRenderer struct {
	data []byte
}

func NewStaticRenderer() *StaticRenderer {
	data, err := base64.StdEncoding.DecodeString(staticPNG)
	if err != nil {
		panic("qrcode: invalid static image: " + err.Error())
	}
	return &StaticRenderer{data: data}
}

func (r *StaticRenderer) Tier() delivery.Tier { return delivery.TierStatic }

func (r *StaticRenderer) Render(_ string) ([]byte, error) {
	out := make([]byte, len(r.data))
	copy(out, r.data)
	return out, nil
}
