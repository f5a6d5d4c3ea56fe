package decl

import (
	"errors"
	"testing"

	"github.com/gogpu/layout"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    layout.Sizing
		wantErr error
	}{
		{"", layout.Sizing{}, nil},
		{"fit", layout.Fit(0, 0), nil},
		{"Fit(10)", layout.Fit(10, 0), nil},
		{"fit(10, 200)", layout.Fit(10, 200), nil},
		{" grow ", layout.Grow(0, 0), nil},
		{"grow(0, 300)", layout.Grow(0, 300), nil},
		{"fixed(120)", layout.Fixed(120), nil},
		{"percent(0.5)", layout.Percent(0.5), nil},
		{"fixed", layout.Sizing{}, ErrBadSize},
		{"fixed(1, 2)", layout.Sizing{}, ErrBadSize},
		{"percent(half)", layout.Sizing{}, ErrBadSize},
		{"grow(1", layout.Sizing{}, ErrBadSize},
		{"stretch", layout.Sizing{}, ErrUnknownValue},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSize(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("parseSize(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseSize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
