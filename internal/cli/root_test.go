package cli

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"

	imageutil "github.com/jmylchreest/spritesize/internal/image"
)

// setupSpriteDir points the root command at a temporary sprite directory.
func setupSpriteDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	original := resolveDir
	resolveDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { resolveDir = original })

	return dir
}

func writePNG(t *testing.T, path string, width, height int) {
	t.Helper()

	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, image.NewNRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("Failed to encode %s: %v", path, err)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommandRunsBatch(t *testing.T) {
	dir := setupSpriteDir(t)
	writePNG(t, filepath.Join(dir, "001.png"), 256, 256)
	if err := os.WriteFile(filepath.Join(dir, "003.png"), []byte("plain text"), 0o600); err != nil {
		t.Fatalf("Failed to write corrupt sprite: %v", err)
	}

	output, err := execute(t)
	if err != nil {
		t.Fatalf("Expected per-file failures not to fail the command, got %v", err)
	}

	for _, want := range []string{"resized", "file not found", "002.png", "failed to resize", "003.png", "batch complete"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, output)
		}
	}

	w, h, err := imageutil.GetImageDimensions(filepath.Join(dir, "001.png"))
	if err != nil {
		t.Fatalf("Failed to read dimensions: %v", err)
	}
	if w != 128 || h != 128 {
		t.Errorf("Expected 128x128, got %dx%d", w, h)
	}
}

func TestRootCommandEngines(t *testing.T) {
	for _, engine := range []string{"imaging", "gift", "nfnt"} {
		t.Run(engine, func(t *testing.T) {
			dir := setupSpriteDir(t)
			writePNG(t, filepath.Join(dir, "042.png"), 90, 300)

			if _, err := execute(t, "--engine", engine, "--quiet"); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			w, h, err := imageutil.GetImageDimensions(filepath.Join(dir, "042.png"))
			if err != nil {
				t.Fatalf("Failed to read dimensions: %v", err)
			}
			if w != 128 || h != 128 {
				t.Errorf("Expected 128x128, got %dx%d", w, h)
			}
		})
	}
}

func TestRootCommandQuiet(t *testing.T) {
	setupSpriteDir(t)

	output, err := execute(t, "-q")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if strings.Contains(output, "file not found") {
		t.Errorf("Expected quiet mode to suppress not-found lines, got:\n%s", output)
	}
}

func TestRootCommandVerboseReport(t *testing.T) {
	dir := setupSpriteDir(t)
	writePNG(t, filepath.Join(dir, "005.png"), 10, 10)

	output, err := execute(t, "--verbose")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(output, "scanning sprites") {
		t.Errorf("Expected debug line in verbose mode, got:\n%s", output)
	}
	if !strings.Contains(output, "1 resized, 49 missing, 0 failed") {
		t.Errorf("Expected report totals, got:\n%s", output)
	}
}

func TestRootCommandRejectsInput(t *testing.T) {
	setupSpriteDir(t)

	tests := []struct {
		name string
		args []string
	}{
		{"positional argument", []string{"sprites"}},
		{"unknown engine", []string{"--engine", "bicubic"}},
		{"verbose and quiet", []string{"-v", "-q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Errorf("Expected error for args %v", tt.args)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	output, err := execute(t, "version")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasPrefix(output, "spritesize version") {
		t.Errorf("Unexpected version output %q", output)
	}
}

func TestExecutableDir(t *testing.T) {
	dir, err := ExecutableDir()
	if err != nil {
		t.Fatalf("ExecutableDir failed: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Executable directory does not exist: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("Expected %s to be a directory", dir)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer

	if l := newLogger(&buf, true, false); !l.IsDebug() {
		t.Error("Expected verbose logger to enable debug")
	}
	if l := newLogger(&buf, false, true); l.IsInfo() {
		t.Error("Expected quiet logger to suppress info")
	}
	if l := newLogger(&buf, false, false); !l.IsInfo() || l.IsDebug() {
		t.Error("Expected default logger at info level")
	}
	if colorOption(&buf) != hclog.ColorOff {
		t.Error("Expected colour to be off for non-terminal output")
	}
}
