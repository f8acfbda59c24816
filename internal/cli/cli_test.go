package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/barchart3d/pkg/cache"
	"github.com/matzehuels/barchart3d/pkg/config"
	bcerrors "github.com/matzehuels/barchart3d/pkg/errors"
)

const (
	// sparseCSV has 2 x values, 3 y values and 6 heights, two of them missing.
	sparseCSV = "features,k,accuracy\n1,2,10\n10,4,30\n,8,20\n,,45\n,,nan\n,,nan\n"

	// denseCSV has one row per point covering every (x, y) pair.
	denseCSV = "x,y,z\n1,2,10\n1,4,30\n10,2,20\n10,4,45\n"
)

// runCLI executes the root command with args and returns its stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// writeFile writes content to dir/name and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRootCommand(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	if root.Use != appName {
		t.Errorf("Use = %q, want %q", root.Use, appName)
	}

	want := map[string]bool{"render": false, "inspect": false, "cache": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("--config flag not registered")
	}
}

func TestLoadConfigMissing(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.configPath = filepath.Join(t.TempDir(), "nope.toml")
	if _, err := c.loadConfig(); err == nil {
		t.Error("loadConfig() with a missing explicit file: expected error")
	}
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    string
		notWant string
	}{
		{
			name:    "coded",
			err:     bcerrors.New(bcerrors.ErrCodeShapeMismatch, "3 x values, 2 y values, 5 heights"),
			want:    "3 x values, 2 y values, 5 heights [SHAPE_MISMATCH]",
			notWant: "SHAPE_MISMATCH: ",
		},
		{
			name: "wrapped in plain error",
			err:  fmt.Errorf("render: %w", bcerrors.Wrap(bcerrors.ErrCodeFileNotFound, os.ErrNotExist, "open a.csv")),
			want: "open a.csv: file does not exist [FILE_NOT_FOUND]",
		},
		{
			name:    "uncoded",
			err:     fmt.Errorf("interrupted"),
			want:    "interrupted",
			notWant: "[",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintError(&buf, tt.err)
			out := buf.String()
			if !strings.Contains(out, tt.want) {
				t.Errorf("PrintError() = %q, want %q", out, tt.want)
			}
			if tt.notWant != "" && strings.Contains(out, tt.notWant) {
				t.Errorf("PrintError() = %q, should not contain %q", out, tt.notWant)
			}
		})
	}
}

func TestNewRunnerNamespace(t *testing.T) {
	c := New(io.Discard, LogInfo)
	f := &config.File{Cache: config.Cache{Namespace: "ci"}}
	r, err := c.newRunner(context.Background(), true, f)
	if err != nil {
		t.Fatal(err)
	}
	want := "ci:" + cache.NewDefaultKeyer().SeriesKey("f", cache.SeriesKeyOpts{Format: "csv"})
	if got := r.Keyer.SeriesKey("f", cache.SeriesKeyOpts{Format: "csv"}); got != want {
		t.Errorf("SeriesKey = %q, want %q", got, want)
	}
}

func TestCompletion(t *testing.T) {
	out, err := runCLI(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !bytes.Contains([]byte(out), []byte("barchart3d")) {
		t.Error("completion script does not mention the command")
	}
}
