package cli

import (
	"testing"

	"github.com/muesli/termenv"

	"github.com/k0ral/rainbox/pkg/rainbox"
)

func TestParseHorizAlign(t *testing.T) {
	tests := []struct {
		input   string
		want    rainbox.HorizAlign
		wantErr bool
	}{
		{input: "left", want: rainbox.Left},
		{input: "center", want: rainbox.CenterH},
		{input: "right", want: rainbox.Right},
		{input: "middle", wantErr: true},
		{input: "", wantErr: true},
		{input: "top", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseHorizAlign(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseHorizAlign(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseHorizAlign(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseVertAlign(t *testing.T) {
	tests := []struct {
		input   string
		want    rainbox.VertAlign
		wantErr bool
	}{
		{input: "top", want: rainbox.Top},
		{input: "center", want: rainbox.CenterV},
		{input: "bottom", want: rainbox.Bottom},
		{input: "left", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseVertAlign(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseVertAlign(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseVertAlign(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input      string
		want       termenv.Profile
		wantDetect bool
		wantErr    bool
	}{
		{input: "auto", wantDetect: true},
		{input: "", wantDetect: true},
		{input: "never", want: termenv.Ascii},
		{input: "16", want: termenv.ANSI},
		{input: "256", want: termenv.ANSI256},
		{input: "always", want: termenv.TrueColor},
		{input: "rainbow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, detect, err := parseColorMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseColorMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if detect != tt.wantDetect {
				t.Errorf("detect = %v, want %v", detect, tt.wantDetect)
			}
			if !detect && got != tt.want {
				t.Errorf("profile = %v, want %v", got, tt.want)
			}
		})
	}
}
