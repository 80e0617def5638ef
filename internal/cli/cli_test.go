package cli

import (
	"strings"
	"testing"

	"github.com/swatchgrab/swatchgrab/internal/colour"
	"github.com/swatchgrab/swatchgrab/internal/region"
)

func TestParseRect(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    region.DisplayRect
		wantErr bool
	}{
		{
			name:  "integers",
			input: "100,50,400,300",
			want:  region.DisplayRect{X: 100, Y: 50, W: 400, H: 300},
		},
		{
			name:  "floats with spaces",
			input: "10.5, 20.25, 30, 40",
			want:  region.DisplayRect{X: 10.5, Y: 20.25, W: 30, H: 40},
		},
		{
			name:    "too few fields",
			input:   "10,20,30",
			wantErr: true,
		},
		{
			name:    "not a number",
			input:   "a,b,c,d",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRect(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseRect() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRect() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseRect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseDisplaySize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    region.DisplaySize
		wantErr bool
	}{
		{
			name:  "integers",
			input: "640x360",
			want:  region.DisplaySize{W: 640, H: 360},
		},
		{
			name:  "floats",
			input: "640.5x360.25",
			want:  region.DisplaySize{W: 640.5, H: 360.25},
		},
		{
			name:    "missing separator",
			input:   "640",
			wantErr: true,
		},
		{
			name:    "zero dimension",
			input:   "0x360",
			wantErr: true,
		},
		{
			name:    "negative dimension",
			input:   "640x-360",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDisplaySize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseDisplaySize() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDisplaySize() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseDisplaySize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFormatPalette(t *testing.T) {
	palette := colour.NewPalette([]colour.RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 0, B: 255},
	})

	t.Run("hex", func(t *testing.T) {
		got, err := formatPalette(palette, "hex", false)
		if err != nil {
			t.Fatalf("formatPalette() unexpected error: %v", err)
		}
		if got != "#ff0000\n#0000ff\n" {
			t.Errorf("formatPalette() = %q", got)
		}
	})

	t.Run("rgb", func(t *testing.T) {
		got, err := formatPalette(palette, "rgb", false)
		if err != nil {
			t.Fatalf("formatPalette() unexpected error: %v", err)
		}
		if got != "rgb(255, 0, 0)\nrgb(0, 0, 255)\n" {
			t.Errorf("formatPalette() = %q", got)
		}
	})

	t.Run("json", func(t *testing.T) {
		got, err := formatPalette(palette, "json", false)
		if err != nil {
			t.Fatalf("formatPalette() unexpected error: %v", err)
		}
		if !strings.Contains(got, `"count": 2`) {
			t.Errorf("json output missing count: %q", got)
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		if _, err := formatPalette(palette, "yaml", false); err == nil {
			t.Error("formatPalette() expected error for unsupported format")
		}
	})
}
