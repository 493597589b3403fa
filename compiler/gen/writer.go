package gen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// WriteFile generates the module of s and writes it to path, creating parent
// directories. When formatting fails, the unformatted source is written to
// path+".error" for debugging and path is left untouched. A stale ".error"
// file is removed after a successful run.
func WriteFile(ctx context.Context, s *Schema, path string, opts ...Option) (*Result, error) {
	res, err := Generate(ctx, s, opts...)
	debugPath := path + ".error"
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) && fe.Source != "" {
			// Errors intentionally ignored as we're already in error state.
			_ = os.MkdirAll(filepath.Dir(debugPath), 0o755)
			_ = os.WriteFile(debugPath, []byte(fe.Source), 0o644)
		}
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, NewGenerationError("write", path, "create directory", err)
	}
	if err := os.WriteFile(path, []byte(res.Source), 0o644); err != nil {
		return nil, NewGenerationError("write", path, "write file", err)
	}
	if err := os.Remove(debugPath); err != nil && !os.IsNotExist(err) {
		return nil, NewGenerationError("write", debugPath, "remove stale debug file", err)
	}
	return res, nil
}

// Job is a single output file of a Writer run.
type Job struct {
	Schema  *Schema
	Output  string
	Options []Option
}

// WriterMetrics tracks generation performance.
type WriterMetrics struct {
	FilesGenerated int
	TotalBytes     int64
	Warnings       int
	Duration       time.Duration
}

// Writer runs generation jobs in parallel. Every job is itself a single
// synchronous generation run.
type Writer struct {
	workers int

	mu      sync.Mutex
	metrics WriterMetrics
}

// NewWriter creates a writer bounded by GOMAXPROCS workers.
func NewWriter() *Writer {
	return &Writer{workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers sets the number of parallel workers.
func (w *Writer) WithWorkers(n int) *Writer {
	if n > 0 {
		w.workers = n
	}
	return w
}

// Metrics returns a snapshot of the generation metrics.
func (w *Writer) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// WriteAll writes every job and returns the first error. Jobs that have not
// started when an error occurs are skipped.
func (w *Writer) WriteAll(ctx context.Context, jobs ...Job) error {
	start := time.Now()
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for _, j := range jobs {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			res, err := WriteFile(ctx, j.Schema, j.Output, j.Options...)
			if err != nil {
				return err
			}
			w.mu.Lock()
			w.metrics.FilesGenerated++
			w.metrics.TotalBytes += int64(len(res.Source))
			w.metrics.Warnings += len(res.Warnings)
			w.mu.Unlock()
			return nil
		})
	}
	err := eg.Wait()
	w.mu.Lock()
	w.metrics.Duration += time.Since(start)
	w.mu.Unlock()
	return err
}
