package diff

import (
	"image/color"
	"testing"
)

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{"defaults", func(o *Options) {}, false},
		{"threshold low edge", func(o *Options) { o.Threshold = 0 }, false},
		{"threshold high edge", func(o *Options) { o.Threshold = 1 }, false},
		{"threshold negative", func(o *Options) { o.Threshold = -0.1 }, true},
		{"threshold above one", func(o *Options) { o.Threshold = 1.5 }, true},
		{"alpha negative", func(o *Options) { o.Alpha = -1 }, true},
		{"alpha above one", func(o *Options) { o.Alpha = 2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate: got err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"ff00ff", color.NRGBA{R: 255, G: 0, B: 255, A: 255}, false},
		{"#ffff00", color.NRGBA{R: 255, G: 255, B: 0, A: 255}, false},
		{"#00FF7F", color.NRGBA{R: 0, G: 255, B: 127, A: 255}, false},
		{"banana", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q): err=%v, wantErr=%v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseHexColor(%q): got %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
