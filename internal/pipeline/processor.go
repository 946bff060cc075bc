package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dunamismax/imageops/internal/domain"
	"github.com/dunamismax/imageops/internal/format"
)

// StreamPath is the CLI convention for standard input or output.
const StreamPath = "-"

var ErrUnsupportedOp = errors.New("unsupported operation")

type Request struct {
	Op        string
	Input     string
	Output    string
	Resize    domain.ResizeRequest
	Thumbnail domain.ThumbnailRequest
}

type Result struct {
	Metadata *domain.Metadata
	Render   *domain.RenderResult
	Path     string
	Bytes    int
}

type Fetcher interface {
	Fetch(ctx context.Context, source string) ([]byte, error)
}

type Emitter interface {
	Emit(ctx context.Context, dest string, data []byte) error
}

// Processor runs one operation end to end: fetch bytes, transform, emit.
// Each invocation is a pure function of the input bytes and request
// parameters; nothing is shared across calls.
type Processor struct {
	logger      *log.Logger
	transformer Transformer
	stdin       io.Reader
	stdout      io.Writer
	diag        io.Writer
}

func NewProcessor(logger *log.Logger, diag io.Writer) (*Processor, error) {
	transformer, err := newTransformer()
	if err != nil {
		return nil, fmt.Errorf("build transformer: %w", err)
	}

	return &Processor{
		logger:      logger,
		transformer: transformer,
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		diag:        diag,
	}, nil
}

func (p *Processor) Process(ctx context.Context, req Request) (Result, error) {
	if err := validateRequest(req); err != nil {
		return Result{}, err
	}

	input, err := p.fetcherFor(req.Input).Fetch(ctx, req.Input)
	if err != nil {
		return Result{}, fmt.Errorf("fetch stage: %w", err)
	}

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	default:
	}

	switch req.Op {
	case domain.OpMetadata:
		return p.processMetadata(ctx, req, input)
	case domain.OpResize:
		return p.processResize(ctx, req, input)
	case domain.OpThumbnail:
		return p.processThumbnail(ctx, req, input)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedOp, req.Op)
	}
}

func (p *Processor) processMetadata(ctx context.Context, req Request, input []byte) (Result, error) {
	hint := format.TagUnknown
	if req.Input != StreamPath {
		hint = format.FromExtension(req.Input)
	}

	meta, err := p.transformer.Metadata(ctx, input, hint)
	if err != nil {
		return Result{}, fmt.Errorf("metadata stage: %w", err)
	}

	p.logf("metadata input=%s width=%d height=%d format=%s", req.Input, meta.Width, meta.Height, meta.Format)
	return Result{Metadata: &meta}, nil
}

func (p *Processor) processResize(ctx context.Context, req Request, input []byte) (Result, error) {
	data, render, err := p.transformer.Resize(ctx, input, req.Resize)
	if err != nil {
		return Result{}, fmt.Errorf("resize stage: %w", err)
	}

	if err := p.emitterFor(req.Output).Emit(ctx, req.Output, data); err != nil {
		return Result{}, fmt.Errorf("emit stage: %w", err)
	}

	p.writeDiag(render)
	p.logf("resize input=%s output=%s %dx%d -> %dx%d bytes=%d",
		req.Input, req.Output, render.OriginalWidth, render.OriginalHeight, render.Width, render.Height, len(data))

	return Result{Render: &render, Path: req.Output, Bytes: len(data)}, nil
}

func (p *Processor) processThumbnail(ctx context.Context, req Request, input []byte) (Result, error) {
	data, render, err := p.transformer.Thumbnail(ctx, input, req.Thumbnail)
	if err != nil {
		return Result{}, fmt.Errorf("thumbnail stage: %w", err)
	}

	if err := p.emitterFor(req.Output).Emit(ctx, req.Output, data); err != nil {
		return Result{}, fmt.Errorf("emit stage: %w", err)
	}

	p.logf("thumbnail input=%s output=%s %dx%d -> %dx%d bytes=%d",
		req.Input, req.Output, render.OriginalWidth, render.OriginalHeight, render.Width, render.Height, len(data))

	return Result{Render: &render, Path: req.Output, Bytes: len(data)}, nil
}

func (p *Processor) fetcherFor(source string) Fetcher {
	if source == StreamPath {
		return StreamFetcher{Reader: p.stdin}
	}
	return FileFetcher{}
}

func (p *Processor) emitterFor(dest string) Emitter {
	if dest == StreamPath {
		return StreamEmitter{Writer: p.stdout}
	}
	return FileEmitter{}
}

// writeDiag emits the resize render record as one JSON line on the
// diagnostic channel. Callers may assert on it; failures to write it are
// not fatal to the operation.
func (p *Processor) writeDiag(render domain.RenderResult) {
	if p.diag == nil {
		return
	}
	line, err := json.Marshal(render)
	if err != nil {
		p.logf("marshal render record: %v", err)
		return
	}
	fmt.Fprintf(p.diag, "%s\n", line)
}

func (p *Processor) logf(msg string, args ...any) {
	if p.logger == nil {
		return
	}
	p.logger.Printf(msg, args...)
}

func validateRequest(req Request) error {
	if strings.TrimSpace(req.Input) == "" {
		return fmt.Errorf("%w: input is required", domain.ErrInvalidRequest)
	}

	switch req.Op {
	case domain.OpMetadata:
		return nil
	case domain.OpResize:
		if strings.TrimSpace(req.Output) == "" {
			return fmt.Errorf("%w: output is required", domain.ErrInvalidRequest)
		}
		return req.Resize.Validate()
	case domain.OpThumbnail:
		if strings.TrimSpace(req.Output) == "" {
			return fmt.Errorf("%w: output is required", domain.ErrInvalidRequest)
		}
		return req.Thumbnail.Validate()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOp, req.Op)
	}
}
