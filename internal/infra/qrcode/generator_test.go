//go:build unit

package qrcode

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"parkingpro/internal/domain/delivery"
	"parkingpro/internal/pkg/config"
	"parkingpro/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	tier  delivery.Tier
	data  []byte
	err   error
	calls int
}

func (s *stubRenderer) Tier() delivery.Tier { return s.tier }

func (s *stubRenderer) Render(string) ([]byte, error) {
	s.calls++
	return s.data, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestGenerator_FirstSuccessWins(t *testing.T) {
	failing := &stubRenderer{tier: delivery.TierQRCode, err: assert.AnError}
	working := &stubRenderer{tier: delivery.TierRaster, data: []byte("raster")}
	unused := &stubRenderer{tier: delivery.TierStatic, data: []byte("static")}
	gen := NewGenerator([]Renderer{failing, working, unused}, discardLogger())

	dest := filepath.Join(t.TempDir(), "nested", "deeper", "INV-1.png")
	tier, err := gen.Render(context.Background(), "INV=1", dest)

	require.NoError(t, err)
	assert.Equal(t, delivery.TierRaster, tier)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, working.calls)
	assert.Zero(t, unused.calls)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "raster", string(got))
}

func TestGenerator_NoUsableTier(t *testing.T) {
	gen := NewGenerator([]Renderer{&stubRenderer{tier: delivery.TierQRCode, err: assert.AnError}}, discardLogger())

	dest := filepath.Join(t.TempDir(), "INV-1.png")
	tier, err := gen.Render(context.Background(), "INV=1", dest)

	assert.Equal(t, delivery.TierNone, tier)
	assert.True(t, errs.Is(err, errs.ErrNoRendererFound))
	assert.NoFileExists(t, dest)
}

func TestGenerator_DirectoryCreationFails(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), 0o644))

	static := &stubRenderer{tier: delivery.TierStatic, data: []byte("x")}
	gen := NewGenerator([]Renderer{static}, discardLogger())

	tier, err := gen.Render(context.Background(), "INV=1", filepath.Join(blocker, "sub", "INV-1.png"))

	assert.Equal(t, delivery.TierNone, tier)
	assert.True(t, errs.Is(err, errs.ErrArtifactWrite))
	assert.Zero(t, static.calls)
}

func TestGenerator_OversizedPayloadFallsBackToRaster(t *testing.T) {
	gen := NewGenerator([]Renderer{NewEncoderRenderer(256), NewRasterRenderer(), NewStaticRenderer()}, discardLogger())

	dest := filepath.Join(t.TempDir(), "INV-big.png")
	tier, err := gen.Render(context.Background(), strings.Repeat("x", 5000), dest)

	require.NoError(t, err)
	assert.Equal(t, delivery.TierRaster, tier)
	assert.Equal(t, image.Rect(0, 0, 240, 240), decodePNG(t, dest).Bounds())
}

func TestNewGeneratorFromConfig(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.QR.Tiers = []string{"static", "bogus", "qrcode"}

	gen := NewGeneratorFromConfig(cfg, discardLogger())

	require.Len(t, gen.renderers, 2)
	assert.Equal(t, delivery.TierStatic, gen.renderers[0].Tier())
	assert.Equal(t, delivery.TierQRCode, gen.renderers[1].Tier())
}

func TestEncoderRenderer(t *testing.T) {
	data, err := NewEncoderRenderer(256).Render("INV=INV-1;AMT=250.00")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestRasterRenderer(t *testing.T) {
	data, err := NewRasterRenderer().Render("ignored")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 240, 240), img.Bounds())

	assert.Equal(t, rasterBackground, color.NRGBAModel.Convert(img.At(0, 0)))

	var ink int
	for y := 100; y < 140; y++ {
		for x := 100; x < 140; x++ {
			if color.NRGBAModel.Convert(img.At(x, y)) == rasterForeground {
				ink++
			}
		}
	}
	assert.Positive(t, ink, "label should be drawn near the centre")
}

func TestStaticRenderer(t *testing.T) {
	r := NewStaticRenderer()
	data, err := r.Render("anything")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 1, 1), img.Bounds())
	_, _, _, alpha := img.At(0, 0).RGBA()
	assert.Zero(t, alpha, "pixel should be transparent")

	data[0] = 0
	again, _ := r.Render("")
	assert.NotEqual(t, byte(0), again[0])
}

func TestGenerator_StaticTierWritesDecodablePNG(t *testing.T) {
	gen := NewGenerator([]Renderer{NewStaticRenderer()}, discardLogger())

	dest := filepath.Join(t.TempDir(), "nested", "INV-static.png")
	tier, err := gen.Render(context.Background(), "INV=1", dest)

	require.NoError(t, err)
	assert.Equal(t, delivery.TierStatic, tier)
	assert.Equal(t, image.Rect(0, 0, 1, 1), decodePNG(t, dest).Bounds())
}
