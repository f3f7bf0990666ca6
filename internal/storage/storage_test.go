package storage

import (
	"strings"
	"testing"
)

func TestProjectImageName(t *testing.T) {
	name := ProjectImageName("abc123", 2)
	if !strings.HasPrefix(name, "projects/abc123/image-2-") {
		t.Errorf("unexpected object name %q", name)
	}
}

func TestExperienceLogoName(t *testing.T) {
	cases := []struct {
		company string
		prefix  string
	}{
		{"Acme Corp", "experience/acme-corp-"},
		{"  Tienda Ñandú  ", "experience/tienda-and-"},
		{"", "experience/company-"},
		{"!!!", "experience/company-"},
	}
	for _, tc := range cases {
		t.Run(tc.company, func(t *testing.T) {
			name := ExperienceLogoName(tc.company)
			if !strings.HasPrefix(name, tc.prefix) {
				t.Errorf("ExperienceLogoName(%q) = %q, want prefix %q", tc.company, name, tc.prefix)
			}
		})
	}
}

func TestCVResumeName(t *testing.T) {
	name := CVResumeName()
	if !strings.HasPrefix(name, "cv/resume-") || !strings.HasSuffix(name, ".pdf") {
		t.Errorf("unexpected object name %q", name)
	}
}
