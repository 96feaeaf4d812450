// Package batch resizes the fixed set of numbered sprites that live next to
// the executable.
//
// Indices FirstIndex..LastIndex map to zero-padded filenames (001.png ..
// 050.png). Each existing file is decoded, resampled to TargetWidth x
// TargetHeight and written back over itself. Missing files and per-file
// failures are logged and never stop the batch.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/spritesize/internal/image"
	"github.com/jmylchreest/spritesize/internal/resample"
)

const (
	// FirstIndex is the first sprite number processed.
	FirstIndex = 1
	// LastIndex is the last sprite number processed.
	LastIndex = 50

	// TargetWidth is the output width in pixels.
	TargetWidth = 128
	// TargetHeight is the output height in pixels.
	TargetHeight = 128

	extension = ".png"
)

// Status describes what happened to a single index.
type Status int

const (
	// StatusResized means the file was resized and written back.
	StatusResized Status = iota
	// StatusNotFound means no file existed for the index.
	StatusNotFound
	// StatusFailed means decoding, resampling or encoding failed.
	StatusFailed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusResized:
		return "resized"
	case StatusNotFound:
		return "not found"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome for one index.
type Result struct {
	Index    int
	Filename string
	Path     string
	Status   Status
	Err      error
}

// Summary collects the results of a run in index order.
type Summary struct {
	Results []Result
}

func (s *Summary) count(status Status) int {
	n := 0
	for _, r := range s.Results {
		if r.Status == status {
			n++
		}
	}
	return n
}

// Resized returns the number of files resized.
func (s *Summary) Resized() int { return s.count(StatusResized) }

// NotFound returns the number of missing files.
func (s *Summary) NotFound() int { return s.count(StatusNotFound) }

// Failed returns the number of files that could not be processed.
func (s *Summary) Failed() int { return s.count(StatusFailed) }

// Filename returns the sprite filename for index i, e.g. 7 -> "007.png".
func Filename(i int) string {
	return fmt.Sprintf("%03d%s", i, extension)
}

// Targets returns the absolute paths of every sprite in dir, in index order.
func Targets(dir string) []string {
	paths := make([]string, 0, LastIndex-FirstIndex+1)
	for i := FirstIndex; i <= LastIndex; i++ {
		paths = append(paths, filepath.Join(dir, Filename(i)))
	}
	return paths
}

// Resizer drives the batch over a single directory.
type Resizer struct {
	dir       string
	resampler resample.Resampler
	loader    image.Loader
	logger    hclog.Logger
}

// Option configures a Resizer.
type Option func(*Resizer)

// WithResampler sets the resample engine.
func WithResampler(r resample.Resampler) Option {
	return func(rz *Resizer) {
		rz.resampler = r
	}
}

// WithLogger sets the logger used for per-file status lines.
func WithLogger(l hclog.Logger) Option {
	return func(rz *Resizer) {
		rz.logger = l
	}
}

// NewResizer creates a Resizer for dir. Without options it uses the default
// engine and discards log output.
func NewResizer(dir string, opts ...Option) *Resizer {
	rz := &Resizer{
		dir:       dir,
		resampler: resample.ImagingResampler{},
		loader:    image.NewFileLoader(),
		logger:    hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(rz)
	}
	return rz
}

// Run visits every index in ascending order, one file at a time.
// It stops early only if ctx is cancelled between files.
func (rz *Resizer) Run(ctx context.Context) Summary {
	var summary Summary

	for n, path := range Targets(rz.dir) {
		i := FirstIndex + n
		if ctx.Err() != nil {
			rz.logger.Warn("batch cancelled", "next", Filename(i), "error", ctx.Err())
			break
		}
		summary.Results = append(summary.Results, rz.processIndex(i, path))
	}

	return summary
}

func (rz *Resizer) processIndex(i int, path string) Result {
	filename := filepath.Base(path)
	result := Result{Index: i, Filename: filename, Path: path}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			rz.logger.Info("file not found", "file", filename)
			result.Status = StatusNotFound
			return result
		}
		// Any other stat failure is treated like a processing error.
		rz.logger.Error("failed to resize", "path", path, "error", err)
		result.Status = StatusFailed
		result.Err = err
		return result
	}

	if err := rz.ResizeFile(path); err != nil {
		rz.logger.Error("failed to resize", "path", path, "error", err)
		result.Status = StatusFailed
		result.Err = err
		return result
	}

	rz.logger.Info("resized", "path", path)
	result.Status = StatusResized
	return result
}

// ResizeFile resizes the image at path to TargetWidth x TargetHeight and
// overwrites it. A panic raised while decoding or resampling is returned as
// an error so that one bad file cannot take down the batch.
func (rz *Resizer) ResizeFile(path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while processing %s: %v", filepath.Base(path), r)
		}
	}()

	img, err := rz.loader.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	if rz.logger.IsDebug() {
		b := img.Bounds()
		rz.logger.Debug("decoded", "path", path, "width", b.Dx(), "height", b.Dy(), "engine", rz.resampler.Name())
	}

	resized, err := rz.resampler.Resize(img, TargetWidth, TargetHeight)
	if err != nil {
		return fmt.Errorf("failed to resample image: %w", err)
	}

	if err := image.Save(path, resized); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}

	if rz.logger.IsDebug() {
		w, h, err := image.GetImageDimensions(path)
		if err != nil {
			return fmt.Errorf("failed to verify written image: %w", err)
		}
		rz.logger.Debug("wrote", "path", path, "width", w, "height", h)
	}

	return nil
}
