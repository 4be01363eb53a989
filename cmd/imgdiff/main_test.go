package main

import (
	"image/color"
	"testing"
)

func TestParseArgs_Defaults(t *testing.T) {
	req, jsonOutput, err := parseArgs([]string{"a.png", "b.png"})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	if jsonOutput {
		t.Error("json output should default to off")
	}
	if req.PathA != "a.png" || req.PathB != "b.png" {
		t.Errorf("paths: got %q, %q", req.PathA, req.PathB)
	}
	if req.Options.Threshold != 0.1 {
		t.Errorf("threshold: got %v, want 0.1", req.Options.Threshold)
	}
	if req.Options.Alpha != 0.1 {
		t.Errorf("alpha: got %v, want 0.1", req.Options.Alpha)
	}
	if req.Options.IncludeAA {
		t.Error("include-aa should default to off")
	}
	if req.OutputPath != "" {
		t.Errorf("output path: got %q, want empty", req.OutputPath)
	}
}

func TestParseArgs_AllFlags(t *testing.T) {
	req, jsonOutput, err := parseArgs([]string{
		"a.png", "b.png",
		"--json",
		"--threshold=0.25",
		"--alpha=0.5",
		"--include-aa",
		"--output=/tmp/diff.png",
		"--aa-color=00ff00",
		"--diff-color=#ff0000",
		"--diff-color-alt=0000ff",
		"--blur=1.5",
		"--workers=4",
		"--regions",
	})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}

	if !jsonOutput {
		t.Error("json flag not honored")
	}
	if req.Options.Threshold != 0.25 {
		t.Errorf("threshold: got %v, want 0.25", req.Options.Threshold)
	}
	if req.Options.Alpha != 0.5 {
		t.Errorf("alpha: got %v, want 0.5", req.Options.Alpha)
	}
	if !req.Options.IncludeAA {
		t.Error("include-aa flag not honored")
	}
	if req.OutputPath != "/tmp/diff.png" {
		t.Errorf("output path: got %q", req.OutputPath)
	}
	if want := (color.NRGBA{G: 255, A: 255}); req.Options.AAColor != want {
		t.Errorf("aa color: got %v, want %v", req.Options.AAColor, want)
	}
	if want := (color.NRGBA{R: 255, A: 255}); req.Options.DiffColor != want {
		t.Errorf("diff color: got %v, want %v", req.Options.DiffColor, want)
	}
	if req.Options.DiffColorAlt == nil || *req.Options.DiffColorAlt != (color.NRGBA{B: 255, A: 255}) {
		t.Errorf("diff color alt: got %v", req.Options.DiffColorAlt)
	}
	if req.BlurRadius != 1.5 {
		t.Errorf("blur: got %v, want 1.5", req.BlurRadius)
	}
	if req.Options.Workers != 4 {
		t.Errorf("workers: got %d, want 4", req.Options.Workers)
	}
	if !req.ReportRegions {
		t.Error("regions flag not honored")
	}
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no paths", []string{}},
		{"one path", []string{"a.png"}},
		{"three paths", []string{"a.png", "b.png", "c.png"}},
		{"bad threshold", []string{"a.png", "b.png", "--threshold=abc"}},
		{"bad workers", []string{"a.png", "b.png", "--workers=many"}},
		{"bad color", []string{"a.png", "b.png", "--diff-color=chartreuse"}},
		{"unknown flag", []string{"a.png", "b.png", "--frobnicate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := parseArgs(tt.args); err == nil {
				t.Errorf("parseArgs(%v) should fail", tt.args)
			}
		})
	}
}

func TestParseArgs_JSONReportedEvenOnError(t *testing.T) {
	_, jsonOutput, err := parseArgs([]string{"only-one.png", "--json"})
	if err == nil {
		t.Fatal("expected an argument error")
	}
	if !jsonOutput {
		t.Error("json flag must be detected before argument validation fails")
	}
}
