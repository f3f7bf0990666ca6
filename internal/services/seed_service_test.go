package services

import (
	"context"
	"testing"
)

func TestSeedCV(t *testing.T) {
	edu := &fakeEducationRepo{}
	langs := &fakeLanguageRepo{}
	svc := NewSeedService(edu, langs)

	seeded, err := svc.SeedCV(context.Background())
	if err != nil {
		t.Fatalf("SeedCV: %v", err)
	}
	if !seeded {
		t.Fatal("first seed against empty collections should report seeded")
	}
	if len(edu.items) == 0 || len(langs.items) == 0 {
		t.Fatal("seed inserted no records")
	}

	seeded, err = svc.SeedCV(context.Background())
	if err != nil {
		t.Fatalf("second SeedCV: %v", err)
	}
	if seeded {
		t.Error("second seed should be a no-op")
	}
}
