package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dunamismax/imageops/internal/config"
	"github.com/dunamismax/imageops/internal/domain"
	"github.com/dunamismax/imageops/internal/pipeline"
)

const version = "1.0.0"

const usageText = `imageops - per-image metadata, resize and thumbnail tool

Usage:
  imageops metadata <input>
  imageops resize <input> <output> [--max-side N] [--quality Q] [--without-enlargement=BOOL]
  imageops thumbnail <input> <output> [--size S] [--quality Q]
  imageops version

Use "-" as <input> or <output> for standard input / standard output.
Add --verbose to any command for diagnostic logging on stderr.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usageText)
		return 2
	}

	command, rest := args[0], args[1:]

	switch command {
	case "version", "--version":
		fmt.Println(version)
		return 0
	case "help", "-h", "--help":
		fmt.Print(usageText)
		return 0
	case "metadata", "resize", "thumbnail":
		// handled below
	default:
		fmt.Fprintf(os.Stderr, "imageops: unknown command %q\n\n", command)
		fmt.Fprint(os.Stderr, usageText)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "imageops: %v\n", err)
		return 1
	}

	req, verbose, err := buildRequest(command, rest, cfg)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Print(usageText)
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "imageops: %v\n\n", err)
		fmt.Fprint(os.Stderr, usageText)
		return 2
	}

	var logger *log.Logger
	if verbose {
		logger = log.New(os.Stderr, "[imageops] ", log.LstdFlags|log.Lmsgprefix)
	}

	if err := pipeline.Startup(); err != nil {
		fmt.Fprintf(os.Stderr, "imageops: runtime startup: %v\n", err)
		return 1
	}
	defer pipeline.Shutdown()

	processor, err := pipeline.NewProcessor(logger, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "imageops: %v\n", err)
		return 1
	}

	result, err := processor.Process(context.Background(), req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "imageops: %s: %v\n", command, err)
		return 1
	}

	if result.Metadata != nil {
		line, err := json.Marshal(result.Metadata)
		if err != nil {
			fmt.Fprintf(os.Stderr, "imageops: marshal metadata: %v\n", err)
			return 1
		}
		fmt.Println(string(line))
	}

	return 0
}

func buildRequest(command string, args []string, cfg config.Config) (pipeline.Request, bool, error) {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	verbose := fs.Bool("verbose", false, "Diagnostic logging on stderr")

	var (
		maxSide            *int
		size               *int
		quality            *int
		withoutEnlargement *bool
	)

	switch command {
	case domain.OpResize:
		maxSide = fs.Int("max-side", cfg.Resize.MaxSide, "Maximum dimension for the longest side")
		quality = fs.Int("quality", cfg.Resize.Quality, "JPEG quality (1-100)")
		withoutEnlargement = fs.Bool("without-enlargement", cfg.Resize.WithoutEnlargement, "Do not enlarge images smaller than max-side")
	case domain.OpThumbnail:
		size = fs.Int("size", cfg.Thumbnail.Size, "Thumbnail bounding box side")
		quality = fs.Int("quality", cfg.Thumbnail.Quality, "JPEG quality (1-100)")
	}

	positionals, flagArgs := splitArgs(args, positionalCount(command))
	if err := fs.Parse(flagArgs); err != nil {
		return pipeline.Request{}, false, err
	}
	positionals = append(positionals, fs.Args()...)

	if len(positionals) != positionalCount(command) {
		return pipeline.Request{}, false, fmt.Errorf("%s expects %d argument(s), got %d", command, positionalCount(command), len(positionals))
	}

	req := pipeline.Request{Op: command, Input: positionals[0]}
	switch command {
	case domain.OpResize:
		req.Output = positionals[1]
		req.Resize = domain.ResizeRequest{
			MaxSide:            *maxSide,
			Quality:            *quality,
			WithoutEnlargement: *withoutEnlargement,
		}
	case domain.OpThumbnail:
		req.Output = positionals[1]
		req.Thumbnail = domain.ThumbnailRequest{
			Size:    *size,
			Quality: *quality,
		}
	}

	return req, *verbose, nil
}

func positionalCount(command string) int {
	if command == domain.OpMetadata {
		return 1
	}
	return 2
}

// splitArgs peels leading positional arguments off so flags may follow them,
// matching the documented "imageops resize in.png out.jpg --max-side 640"
// call shape.
func splitArgs(args []string, maxPositionals int) (positionals, rest []string) {
	i := 0
	for i < len(args) && len(positionals) < maxPositionals {
		if len(args[i]) > 1 && args[i][0] == '-' {
			break
		}
		positionals = append(positionals, args[i])
		i++
	}
	return positionals, args[i:]
}
