package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	ideagen "github.com/alnah/go-ideagen"
	"github.com/alnah/go-ideagen/internal/config"
)

// stdinArg selects standard input as the render source.
const stdinArg = "-"

// runRenderCmd renders a file, a directory of files, or stdin.
func runRenderCmd(ctx context.Context, args []string, env *Environment) error {
	flags, rest, err := parseRenderFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(rest) > 1 {
		return fmt.Errorf("%w: render takes one input, got %d", ErrUsage, len(rest))
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	s, err := loadSettings(&flags.common, env, func(cfg *config.Config) {
		mergeOutputFlags(&flags.out, cfg)
	})
	if err != nil {
		return err
	}
	renderer, err := s.newRenderer()
	if err != nil {
		return err
	}

	input := stdinArg
	if len(rest) == 1 {
		input = rest[0]
	}
	if input == stdinArg {
		return renderStdin(ctx, renderer, flags, env)
	}
	return renderPath(ctx, renderer, input, flags, s, env)
}

// renderStdin renders standard input to stdout or to chunk files.
func renderStdin(ctx context.Context, r *ideagen.Renderer, flags *renderFlags, env *Environment) error {
	content, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
	}

	doc := string(content)
	chunks := r.Render(doc)

	if flags.out.dir == "" {
		printChunks(env.Stdout, chunks)
	} else {
		paths, err := writeChunks(flags.out.dir, "stdin", chunks)
		if err != nil {
			return err
		}
		if !flags.common.quiet {
			for _, p := range paths {
				fmt.Fprintf(env.Stdout, "Created %s\n", p)
			}
		}
	}

	if flags.out.preview != "" {
		return writePreview(ctx, flags.out.preview, "stdin", doc, chunks)
	}
	return nil
}

// renderPath renders a file or every document under a directory.
// A single file without --output prints its chunks to stdout.
func renderPath(ctx context.Context, r *ideagen.Renderer, input string, flags *renderFlags, s *settings, env *Environment) error {
	files, err := discoverFiles(input, flags.out.dir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoInput, input)
	}
	if flags.out.preview != "" && len(files) > 1 {
		return fmt.Errorf("%w: --preview needs a single input file", ErrUsage)
	}

	single := len(files) == 1 && files[0].InputPath == input
	if single && flags.out.dir == "" {
		result := renderToStdout(r, files[0], env.Stdout)
		if result.Err != nil {
			return result.Err
		}
		return previewResult(ctx, flags.out.preview, result)
	}

	workers := flags.workers
	if workers == 0 {
		workers = s.workers
	}
	poolSize := ideagen.ResolvePoolSize(workers)
	s.logger.Debug("rendering", "files", len(files), "workers", poolSize)

	results := renderBatch(ctx, r, files, poolSize)

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env.Stdout, env.Stderr)
	if failed > 0 {
		return fmt.Errorf("%d render(s) failed", failed)
	}
	if single {
		return previewResult(ctx, flags.out.preview, results[0])
	}
	return nil
}

// renderToStdout renders one file and prints its chunks.
func renderToStdout(r *ideagen.Renderer, f FileToRender, w io.Writer) RenderResult {
	result := RenderResult{InputPath: f.InputPath}
	content, err := readInput(f.InputPath)
	if err != nil {
		result.Err = err
		return result
	}
	result.Markdown = content
	result.Chunks = r.Render(content)
	printChunks(w, result.Chunks)
	return result
}

// previewResult writes the preview of a render result when path is set.
func previewResult(ctx context.Context, path string, r RenderResult) error {
	if path == "" {
		return nil
	}
	return writePreview(ctx, path, baseName(r.InputPath), r.Markdown, r.Chunks)
}
