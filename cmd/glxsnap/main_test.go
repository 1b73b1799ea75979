package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"glxform/internal/config"
)

func snap(t *testing.T, cfg config.Config) image.Image {
	t.Helper()
	if err := run(cfg); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestRunWritesPNG(t *testing.T) {
	dir := t.TempDir()
	at := func(sec float64) config.Config {
		cfg := config.Config{
			Demo:        "rotated-triangle",
			Output:      filepath.Join(dir, "out", "tri.png"),
			Width:       128,
			Height:      96,
			Supersample: 2,
			Time:        &sec,
		}
		cfg.Resolve(config.Flags{})
		return cfg
	}

	first := snap(t, at(0))
	if b := first.Bounds(); b.Dx() != 128 || b.Dy() != 96 {
		t.Fatalf("bounds = %v, want 128x96 after downsampling", b)
	}
	red := 0
	for y := 0; y < 96; y++ {
		for x := 0; x < 128; x++ {
			r, g, _, _ := first.At(x, y).RGBA()
			if r>>8 > 150 && g>>8 < 80 {
				red++
			}
		}
	}
	if red == 0 {
		t.Fatal("no triangle pixels in snapshot")
	}

	// Half a second at 100°/s turns the triangle by 50°.
	later := snap(t, at(0.5))
	same := true
	for y := 0; y < 96 && same; y++ {
		for x := 0; x < 128; x++ {
			if first.At(x, y) != later.At(x, y) {
				same = false
				break
			}
		}
	}
	if same {
		t.Fatal("scene did not advance with time")
	}
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	cfg := config.Config{Output: filepath.Join(t.TempDir(), "tri.jpg")}
	cfg.Resolve(config.Flags{Width: 8, Height: 8})
	if err := run(cfg); err == nil {
		t.Fatal("expected error for .jpg output")
	}
}
