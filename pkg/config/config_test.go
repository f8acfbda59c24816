package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/barchart3d/pkg/cache"
	"github.com/matzehuels/barchart3d/pkg/chart"
	"github.com/matzehuels/barchart3d/pkg/errors"
	"github.com/matzehuels/barchart3d/pkg/pipeline"
)

const tomlFile = `
sheet = "results"

[columns]
x = "features"
y = "neighbours"
z = "accuracy"

[chart]
x_min = 2.0
z_min = 0.5
step = 0.5
color = "x+y"
z_legend = ["low", "high"]
flat_shading = false
title = "Grid search"
sort = true

[render]
formats = ["html", "svg"]
width = 1200
height = 800

[cache]
backend = "none"
`

const yamlFile = `
sheet: results
columns:
  x: features
  y: neighbours
  z: accuracy
chart:
  x_min: 2
  z_min: 0.5
  step: 0.5
  color: x+y
  z_legend: [low, high]
  flat_shading: false
  title: Grid search
  sort: true
render:
  formats: [html, svg]
  width: 1200
  height: 800
cache:
  backend: none
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	for _, path := range []string{
		writeFile(t, dir, "a.toml", tomlFile),
		writeFile(t, dir, "a.yaml", yamlFile),
		writeFile(t, dir, "a.yml", yamlFile),
	} {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			f, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}

			opts := pipeline.Options{Chart: chart.DefaultOptions()}
			f.Apply(&opts)

			if opts.Sheet != "results" || opts.XCol != "features" || opts.ZCol != "accuracy" {
				t.Errorf("load options = %+v", opts)
			}
			c := opts.Chart
			if c.XMin != 2 || c.Step != 0.5 || c.Color != chart.ColorXY || c.FlatShading || !c.Sort {
				t.Errorf("chart options = %+v", c)
			}
			if c.ZMin.IsAuto() || c.ZMin.Value() != 0.5 {
				t.Errorf("ZMin = %v, want 0.5", c.ZMin)
			}
			if diff := cmp.Diff([]string{"low", "high"}, c.ZLegend.Values()); diff != "" {
				t.Errorf("z legend mismatch (-want +got):\n%s", diff)
			}
			if !c.XLegend.IsAuto() {
				t.Error("unset x legend should stay auto")
			}
			if c.HoverInfo != chart.DefaultHoverInfo {
				t.Errorf("unset hover info changed to %q", c.HoverInfo)
			}
			if diff := cmp.Diff([]string{"html", "svg"}, opts.Formats); diff != "" {
				t.Errorf("formats mismatch (-want +got):\n%s", diff)
			}
			if opts.Width != 1200 || opts.Height != 800 {
				t.Errorf("size = %dx%d", opts.Width, opts.Height)
			}
			if f.Cache.Backend != BackendNone {
				t.Errorf("cache backend = %q", f.Cache.Backend)
			}
		})
	}
}

func TestLoadAutoBound(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"auto.toml": "[chart]\nz_min = \"auto\"\n",
		"auto.yaml": "chart:\n  z_min: auto\n",
	} {
		f, err := Load(writeFile(t, dir, name, body))
		if err != nil {
			t.Fatalf("Load(%s) error: %v", name, err)
		}
		opts := pipeline.Options{Chart: chart.Options{ZMin: chart.Fixed(3)}}
		f.Apply(&opts)
		if !opts.Chart.ZMin.IsAuto() {
			t.Errorf("%s: ZMin = %v, want auto", name, opts.Chart.ZMin)
		}
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	f, err := Load(writeFile(t, t.TempDir(), "empty.yaml", ""))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	opts := pipeline.Options{Chart: chart.DefaultOptions()}
	f.Apply(&opts)
	if diff := cmp.Diff(chart.DefaultOptions(), opts.Chart, cmp.AllowUnexported(chart.Bound{}, chart.Legend{})); diff != "" {
		t.Errorf("empty file changed options (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		file string
		body string
		code errors.Code
	}{
		{"unknown toml key", "a.toml", "[chart]\nhieght = 3\n", errors.ErrCodeInvalidInput},
		{"unknown yaml key", "a.yaml", "chart:\n  hieght: 3\n", errors.ErrCodeInvalidInput},
		{"bad toml", "b.toml", "[chart\n", errors.ErrCodeInvalidInput},
		{"bad bound", "c.toml", "[chart]\nz_min = \"low\"\n", errors.ErrCodeInvalidInput},
		{"bad color", "d.toml", "[chart]\ncolor = \"z\"\n", errors.ErrCodeInvalidColorMode},
		{"bad step", "e.yaml", "chart:\n  step: 0\n", errors.ErrCodeInvalidOption},
		{"bad format", "f.yaml", "render:\n  formats: [gif]\n", errors.ErrCodeInvalidFormat},
		{"redis without addr", "g.toml", "[cache]\nbackend = \"redis\"\n", errors.ErrCodeInvalidOption},
		{"unknown backend", "h.toml", "[cache]\nbackend = \"s3\"\n", errors.ErrCodeInvalidOption},
		{"unsupported extension", "i.json", "{}", errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, dir, tt.file, tt.body))
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	if _, ok := Discover(dir); ok {
		t.Fatal("Discover found a file in an empty directory")
	}

	writeFile(t, dir, "barchart3d.yaml", "")
	path, ok := Discover(dir)
	if !ok || filepath.Base(path) != "barchart3d.yaml" {
		t.Errorf("Discover = %q, %v", path, ok)
	}

	writeFile(t, dir, "barchart3d.toml", "")
	if path, _ := Discover(dir); filepath.Base(path) != "barchart3d.toml" {
		t.Errorf("Discover = %q, want the toml file first", path)
	}
}

func TestCacheKeyer(t *testing.T) {
	sk := cache.SeriesKeyOpts{XCol: "a", YCol: "b", ZCol: "c"}
	ak := cache.ArtifactKeyOpts{Format: "html"}
	plain := cache.NewDefaultKeyer()

	tests := []struct {
		name       string
		namespace  string
		wantPrefix string
	}{
		{"no namespace", "", ""},
		{"namespace", "team-a", "team-a:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := Cache{Namespace: tt.namespace}.Keyer()
			if diff := cmp.Diff(tt.wantPrefix+plain.SeriesKey("f", sk), k.SeriesKey("f", sk)); diff != "" {
				t.Errorf("SeriesKey mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantPrefix+plain.ArtifactKey("s", ak), k.ArtifactKey("s", ak)); diff != "" {
				t.Errorf("ArtifactKey mismatch (-want +got):\n%s", diff)
			}
		})
	}

	a := Cache{Namespace: "a"}.Keyer().SeriesKey("f", sk)
	b := Cache{Namespace: "b"}.Keyer().SeriesKey("f", sk)
	if a == b {
		t.Errorf("namespaces share key %q", a)
	}
}

func TestCacheOpen(t *testing.T) {
	ctx := context.Background()

	c, err := Cache{Backend: BackendNone}.Open(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("none backend = %T", c)
	}

	dir := t.TempDir()
	c, err = Cache{Dir: dir}.Open(ctx)
	if err != nil {
		t.Fatal(err)
	}
	fc, ok := c.(*cache.FileCache)
	if !ok || fc.Dir() != dir {
		t.Errorf("default backend = %T", c)
	}
}
