package imaging

import (
	"image/color"
	"testing"
)

func TestDescribeColor_Stroke(t *testing.T) {
	got, err := DescribeColor("#BFEFF2", 1)
	if err != nil {
		t.Fatalf("DescribeColor failed: %v", err)
	}

	if got.Hex != "#BFEFF2" {
		t.Errorf("Hex: got %s, want #BFEFF2", got.Hex)
	}
	if got.RGB != (RGBColor{R: 191, G: 239, B: 242}) {
		t.Errorf("RGB: got %+v", got.RGB)
	}
	if got.RGBA.A != 255 {
		t.Errorf("alpha: got %d, want 255", got.RGBA.A)
	}
	if abs(got.HSL.H-184) > 1 || abs(got.HSL.S-66) > 1 || abs(got.HSL.L-85) > 1 {
		t.Errorf("HSL: got %+v, want about {184 66 85}", got.HSL)
	}
}

func TestDescribeColor_KnownColors(t *testing.T) {
	tests := []struct {
		hex  string
		want HSLColor
	}{
		{"#FF0000", HSLColor{H: 0, S: 100, L: 50}},
		{"#00ff00", HSLColor{H: 120, S: 100, L: 50}},
		{"#0000FF", HSLColor{H: 240, S: 100, L: 50}},
		{"#FFFFFF", HSLColor{H: 0, S: 0, L: 100}},
		{"#000000", HSLColor{H: 0, S: 0, L: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got, err := DescribeColor(tt.hex, 0.5)
			if err != nil {
				t.Fatalf("DescribeColor failed: %v", err)
			}
			if got.HSL != tt.want {
				t.Errorf("HSL: got %+v, want %+v", got.HSL, tt.want)
			}
			if got.RGBA.A != 128 {
				t.Errorf("alpha: got %d, want 128", got.RGBA.A)
			}
		})
	}
}

func TestDescribeColor_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		opacity float64
	}{
		{"no hash", "BFEFF2", 1},
		{"bad digits", "#GGGGGG", 1},
		{"empty", "", 1},
		{"opacity high", "#BFEFF2", 1.5},
		{"opacity negative", "#BFEFF2", -0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DescribeColor(tt.hex, tt.opacity); err == nil {
				t.Errorf("DescribeColor(%q, %v) should fail", tt.hex, tt.opacity)
			}
		})
	}
}

func TestStrokeColor(t *testing.T) {
	got, err := StrokeColor()
	if err != nil {
		t.Fatalf("StrokeColor failed: %v", err)
	}
	want := color.NRGBA{R: 191, G: 239, B: 242, A: 255}
	if got != want {
		t.Errorf("StrokeColor: got %+v, want %+v", got, want)
	}
}

func TestParseBackground(t *testing.T) {
	tests := []struct {
		hex     string
		want    color.NRGBA
		wantErr bool
	}{
		{"", color.NRGBA{255, 255, 255, 255}, false},
		{"#000000", color.NRGBA{0, 0, 0, 255}, false},
		{"#FF000080", color.NRGBA{255, 0, 0, 128}, false},
		{"#FF0000ZZ", color.NRGBA{}, true},
		{"red", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got, err := ParseBackground(tt.hex)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseBackground(%q) should fail", tt.hex)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBackground(%q) failed: %v", tt.hex, err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
