package render

import (
	"context"
	"testing"

	"github.com/matzehuels/barchart3d/pkg/errors"
)

const tinySVG = `<svg xmlns="http://www.w3.org/2000/svg" width="4" height="4"><rect width="4" height="4" fill="red"/></svg>`

func TestMissingConverter(t *testing.T) {
	old := Converter
	Converter = "barchart3d-no-such-rsvg-convert"
	t.Cleanup(func() { Converter = old })

	if Available() {
		t.Fatal("Available() = true for a missing binary")
	}
	for name, fn := range map[string]func() ([]byte, error){
		"pdf": func() ([]byte, error) { return ToPDF(context.Background(), []byte(tinySVG)) },
		"png": func() ([]byte, error) { return ToPNG(context.Background(), []byte(tinySVG), 2) },
	} {
		t.Run(name, func(t *testing.T) {
			_, err := fn()
			if !errors.Is(err, errors.ErrCodeUnsupported) {
				t.Errorf("error = %v, want %s", err, errors.ErrCodeUnsupported)
			}
		})
	}
}

func TestToPNG(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	png, err := ToPNG(context.Background(), []byte(tinySVG), 1)
	if err != nil {
		t.Fatalf("ToPNG: %v", err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Errorf("output is not a PNG: % x", png[:min(8, len(png))])
	}
}

func TestToPDF(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	pdf, err := ToPDF(context.Background(), []byte(tinySVG))
	if err != nil {
		t.Fatalf("ToPDF: %v", err)
	}
	if len(pdf) < 4 || string(pdf[:4]) != "%PDF" {
		t.Errorf("output is not a PDF")
	}
}
