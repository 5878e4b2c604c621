package qrcode

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"parkingpro/internal/domain/delivery"
	"parkingpro/internal/pkg/config"
	"parkingpro/internal/pkg/errs"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Generator tries each renderer in order and writes the first image produced.
type Generator struct {
	renderers []Renderer
	logger    *slog.Logger
}

func NewGenerator(renderers []Renderer, logger *slog.Logger) *Generator {
	return &Generator{
		renderers: renderers,
		logger:    logger,
	}
}

// NewGeneratorFromConfig enables the tiers listed in QR_TIERS, in that order.
func NewGeneratorFromConfig(cfg config.Config, logger *slog.Logger) *Generator {
	renderers := make([]Renderer, 0, len(cfg.QR.Tiers))
	for _, name := range cfg.QR.Tiers {
		switch delivery.Tier(name) {
		case delivery.TierQRCode:
			renderers = append(renderers, NewEncoderRenderer(cfg.QR.Size))
		case delivery.TierRaster:
			renderers = append(renderers, NewRasterRenderer())
		case delivery.TierStatic:
			renderers = append(renderers, NewStaticRenderer())
		default:
			logger.Warn("qr: ignoring unknown tier", "tier", name)
		}
	}
	return NewGenerator(renderers, logger)
}

// Render writes the artifact to destPath. The returned error covers only
// directory creation and file writes, or every tier being unusable.
func (g *Generator) Render(ctx context.Context, payload, destPath string) (delivery.Tier, error) {
	if err := os.MkdirAll(filepath.Dir(destPath), dirPerm); err != nil {
		return delivery.TierNone, errs.Mark(errs.Wrapf(err, "qr: create directory for %s", destPath), errs.ErrArtifactWrite)
	}

	for _, r := range g.renderers {
		data, err := r.Render(payload)
		if err != nil {
			g.logger.WarnContext(ctx, "qr: renderer failed, falling back", "tier", r.Tier(), "error", err)
			continue
		}

		if err := os.WriteFile(destPath, data, filePerm); err != nil {
			return delivery.TierNone, errs.Mark(errs.Wrapf(err, "qr: write %s", destPath), errs.ErrArtifactWrite)
		}
		return r.Tier(), nil
	}

	return delivery.TierNone, errs.ErrNoRendererFound
}
