package dates

import (
	"testing"
	"time"
)

func TestParseToSortKey(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  int64
	}{
		{
			name:  "spanish month year",
			token: "Abril 2021",
			want:  time.Date(2021, time.April, 1, 0, 0, 0, 0, time.UTC).UnixMilli(),
		},
		{
			name:  "english month year",
			token: "april 2021",
			want:  time.Date(2021, time.April, 1, 0, 0, 0, 0, time.UTC).UnixMilli(),
		},
		{
			name:  "numeric",
			token: "2021-04",
			want:  time.Date(2021, time.April, 1, 0, 0, 0, 0, time.UTC).UnixMilli(),
		},
		{
			name:  "unparseable sorts earliest",
			token: "hace tiempo",
			want:  0,
		},
		{
			name:  "empty",
			token: "",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseToSortKey(tt.token); got != tt.want {
				t.Errorf("ParseToSortKey(%q) = %d, want %d", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseToSortKeySentinel(t *testing.T) {
	for _, token := range []string{"Presente", "presente", "Present", "PRESENT"} {
		before := time.Now().UnixMilli()
		got := ParseToSortKey(token)
		after := time.Now().UnixMilli()
		if got < before || got > after {
			t.Errorf("ParseToSortKey(%q) = %d, want a current timestamp", token, got)
		}
	}
}

func TestFormatForDisplay(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"Presente", "Presente"},
		{"present", "Presente"},
		{"2021-04", "Abr 2021"},
		{"2019-12", "Dic 2019"},
		{"Abril 2021", "Abril 2021"},
		{"whatever", "whatever"},
	}

	for _, tt := range tests {
		if got := FormatForDisplay(tt.token); got != tt.want {
			t.Errorf("FormatForDisplay(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestDurationLabel(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       string
	}{
		{"year plus months", "Enero 2020", "Marzo 2021", "1 año 2 meses"},
		{"exact years", "Enero 2020", "Enero 2022", "2 años"},
		{"single year", "Enero 2020", "Enero 2021", "1 año"},
		{"months only", "Enero 2020", "Abril 2020", "3 meses"},
		{"single month", "Enero 2020", "Febrero 2020", "1 mes"},
		{"same month floors to one", "Enero 2020", "Enero 2020", "1 mes"},
		{"reversed range floors to one", "Marzo 2021", "Enero 2020", "1 mes"},
		{"numeric tokens", "2020-01", "2021-03", "1 año 2 meses"},
		{"unparseable start", "nunca", "Enero 2020", ""},
		{"unparseable end", "Enero 2020", "nunca", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DurationLabel(tt.start, tt.end); got != tt.want {
				t.Errorf("DurationLabel(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestDurationLabelPresent(t *testing.T) {
	got := DurationLabel("Enero 2020", "Presente")
	if got == "" {
		t.Fatal("DurationLabel with Presente end returned empty string")
	}
}
