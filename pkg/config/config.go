// Package config reads option files for barchart3d.
//
// An option file holds the same settings as the render command's flags, so
// a chart can be reproduced without a long command line:
//
//	# barchart3d.toml
//	[columns]
//	x = "features"
//	y = "neighbours"
//	z = "accuracy"
//
//	[chart]
//	z_min = "auto"
//	color = "x+y"
//	title = "Grid search"
//
//	[render]
//	formats = ["html", "png"]
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//
// TOML and YAML are supported; the keys are the same in both.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/barchart3d/pkg/errors"
)

// Names are the file names Discover looks for, in order.
var Names = []string{"barchart3d.toml", "barchart3d.yaml", "barchart3d.yml"}

// File is the content of an option file. Unset fields leave the
// corresponding option alone.
type File struct {
	Sheet   string  `toml:"sheet" yaml:"sheet"`
	Columns Columns `toml:"columns" yaml:"columns"`
	Chart   Chart   `toml:"chart" yaml:"chart"`
	Render  Render  `toml:"render" yaml:"render"`
	Cache   Cache   `toml:"cache" yaml:"cache"`
}

// Columns selects the data columns.
type Columns struct {
	X string `toml:"x" yaml:"x"`
	Y string `toml:"y" yaml:"y"`
	Z string `toml:"z" yaml:"z"`
}

// Chart mirrors chart.Options.
type Chart struct {
	XMin *float64 `toml:"x_min" yaml:"x_min"`
	YMin *float64 `toml:"y_min" yaml:"y_min"`
	ZMin *Bound   `toml:"z_min" yaml:"z_min"`
	Step *float64 `toml:"step" yaml:"step"`

	Color string `toml:"color" yaml:"color"`

	XLegend []string `toml:"x_legend" yaml:"x_legend"`
	YLegend []string `toml:"y_legend" yaml:"y_legend"`
	ZLegend []string `toml:"z_legend" yaml:"z_legend"`

	FlatShading *bool  `toml:"flat_shading" yaml:"flat_shading"`
	HoverInfo   string `toml:"hover_info" yaml:"hover_info"`

	XTitle string `toml:"x_title" yaml:"x_title"`
	YTitle string `toml:"y_title" yaml:"y_title"`
	ZTitle string `toml:"z_title" yaml:"z_title"`
	Title  string `toml:"title" yaml:"title"`

	Sort *bool `toml:"sort" yaml:"sort"`
}

// Render holds output settings.
type Render struct {
	Formats []string `toml:"formats" yaml:"formats"`
	Width   int      `toml:"width" yaml:"width"`
	Height  int      `toml:"height" yaml:"height"`
	Output  string   `toml:"output" yaml:"output"`
}

// Load reads an option file. The format follows the extension: .toml, or
// .yaml / .yml. Unknown keys are rejected.
func Load(path string) (*File, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read option file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read option file %s", path)
	}

	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, errors.New(errors.ErrCodeInvalidInput, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported option file %q (use .toml, .yaml or .yml)", path)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Discover returns the first option file from Names found in dir.
func Discover(dir string) (string, bool) {
	for _, name := range Names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}
