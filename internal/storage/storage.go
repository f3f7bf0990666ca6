// Package storage holds the object-store boundary for uploaded assets:
// project images, experience logos and the published CV PDF.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

type Uploader interface {
	// Upload stores the object and returns its public download URL.
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (publicURL string, err error)
}

// Object name conventions. Timestamps keep re-uploads from colliding and
// bust any CDN caching on the old URL.

func ProjectImageName(projectID string, index int) string {
	return fmt.Sprintf("projects/%s/image-%d-%d", projectID, index, time.Now().UnixMilli())
}

func ExperienceLogoName(companyName string) string {
	return fmt.Sprintf("experience/%s-%d", slug(companyName), time.Now().UnixMilli())
}

func CVResumeName() string {
	return fmt.Sprintf("cv/resume-%d.pdf", time.Now().UnixMilli())
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	out := b.String()
	if out == "" {
		out = "company"
	}
	return out
}
