package main

import (
	"testing"

	"github.com/dunamismax/imageops/internal/config"
	"github.com/dunamismax/imageops/internal/domain"
)

func testConfig() config.Config {
	return config.Config{
		Resize:    config.ResizeConfig{MaxSide: 1024, Quality: 85, WithoutEnlargement: true},
		Thumbnail: config.ThumbnailConfig{Size: 256, Quality: 80},
	}
}

func TestBuildRequestResizeDefaults(t *testing.T) {
	req, verbose, err := buildRequest("resize", []string{"in.png", "out.jpg"}, testConfig())
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if verbose {
		t.Fatal("expected verbose off by default")
	}
	if req.Op != domain.OpResize || req.Input != "in.png" || req.Output != "out.jpg" {
		t.Fatalf("unexpected request %+v", req)
	}
	want := domain.ResizeRequest{MaxSide: 1024, Quality: 85, WithoutEnlargement: true}
	if req.Resize != want {
		t.Fatalf("resize request %+v, want %+v", req.Resize, want)
	}
}

func TestBuildRequestFlagsAfterPositionals(t *testing.T) {
	req, verbose, err := buildRequest("resize",
		[]string{"in.png", "out.jpg", "--max-side", "640", "--quality", "92", "--without-enlargement=false", "--verbose"},
		testConfig())
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if !verbose {
		t.Fatal("expected verbose on")
	}
	want := domain.ResizeRequest{MaxSide: 640, Quality: 92, WithoutEnlargement: false}
	if req.Resize != want {
		t.Fatalf("resize request %+v, want %+v", req.Resize, want)
	}
}

func TestBuildRequestStreamPaths(t *testing.T) {
	req, _, err := buildRequest("thumbnail", []string{"-", "-", "--size", "128"}, testConfig())
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if req.Input != "-" || req.Output != "-" {
		t.Fatalf("expected stream paths, got input=%q output=%q", req.Input, req.Output)
	}
	if req.Thumbnail.Size != 128 || req.Thumbnail.Quality != 80 {
		t.Fatalf("thumbnail request %+v", req.Thumbnail)
	}
}

func TestBuildRequestMetadata(t *testing.T) {
	req, _, err := buildRequest("metadata", []string{"photo.jpg"}, testConfig())
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if req.Op != domain.OpMetadata || req.Input != "photo.jpg" || req.Output != "" {
		t.Fatalf("unexpected request %+v", req)
	}
}

func TestBuildRequestArgCountErrors(t *testing.T) {
	if _, _, err := buildRequest("metadata", nil, testConfig()); err == nil {
		t.Fatal("expected error for missing input")
	}
	if _, _, err := buildRequest("resize", []string{"in.png"}, testConfig()); err == nil {
		t.Fatal("expected error for missing output")
	}
	if _, _, err := buildRequest("thumbnail", []string{"a", "b", "c"}, testConfig()); err == nil {
		t.Fatal("expected error for extra argument")
	}
}

func TestSplitArgs(t *testing.T) {
	pos, rest := splitArgs([]string{"in.png", "out.jpg", "--max-side", "640"}, 2)
	if len(pos) != 2 || len(rest) != 2 {
		t.Fatalf("got pos=%v rest=%v", pos, rest)
	}

	pos, rest = splitArgs([]string{"--max-side", "640", "in.png", "out.jpg"}, 2)
	if len(pos) != 0 || len(rest) != 4 {
		t.Fatalf("got pos=%v rest=%v", pos, rest)
	}

	pos, _ = splitArgs([]string{"-", "-"}, 2)
	if len(pos) != 2 {
		t.Fatalf("dash must count as a positional, got %v", pos)
	}
}
