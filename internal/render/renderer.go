// Package render turns the aggregated CV view model into a printable PDF.
// The document is produced as HTML and printed by headless Chrome, so the
// exported file matches what the CV page shows.
package render

import (
	"context"

	"github.com/gepres/portafolio-2025-sub000/internal/models"
)

type Renderer interface {
	RenderCV(ctx context.Context, cv *models.CVData, lang models.Lang) ([]byte, error)
}
