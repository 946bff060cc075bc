package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dunamismax/imageops/internal/id"
)

// FileFetcher materializes the whole input file in memory before decode.
// Memory use is bounded by file size plus the decoded pixel buffer; an
// accepted tradeoff for a per-image tool.
type FileFetcher struct{}

func (FileFetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read input file %s: %w", source, err)
	}
	return data, nil
}

// StreamFetcher drains standard input to a buffer.
type StreamFetcher struct {
	Reader io.Reader
}

func (f StreamFetcher) Fetch(ctx context.Context, _ string) ([]byte, error) {
	if f.Reader == nil {
		return nil, errors.New("stream reader is required")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := io.ReadAll(f.Reader)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

// FileEmitter writes to a temporary file in the destination directory and
// renames it into place, so a failed write never leaves a partial output at
// the destination path.
type FileEmitter struct{}

func (FileEmitter) Emit(ctx context.Context, dest string, data []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	dir := filepath.Dir(dest)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(dest), id.New()))

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("finalize output file: %w", err)
	}
	return nil
}

// StreamEmitter writes the encoded bytes to standard output.
type StreamEmitter struct {
	Writer io.Writer
}

func (e StreamEmitter) Emit(ctx context.Context, _ string, data []byte) error {
	if e.Writer == nil {
		return errors.New("stream writer is required")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if _, err := e.Writer.Write(data); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	return nil
}
