package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-ideagen/internal/fileutil"
	"github.com/alnah/go-ideagen/internal/preview"
)

// Sentinel errors for CLI I/O.
var (
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")
	ErrNoInput     = errors.New("no input files")
)

const (
	dirPermissions  = 0o750
	filePermissions = 0o644
	chunkExtension  = ".html"
)

// chunkPath returns the file name of chunk i (0-based) for base.
func chunkPath(dir, base string, i int) string {
	return filepath.Join(dir, fmt.Sprintf("%s.%02d%s", base, i+1, chunkExtension))
}

// printChunks writes chunks to w. Multiple chunks are preceded by a
// "<!-- chunk i/n -->" marker line so the output stays valid HTML.
func printChunks(w io.Writer, chunks []string) {
	if len(chunks) == 1 {
		fmt.Fprintln(w, chunks[0])
		return
	}
	for i, c := range chunks {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "<!-- chunk %d/%d -->\n%s\n", i+1, len(chunks), c)
	}
}

// writeChunks writes every chunk to its own file under dir and returns
// the paths written.
func writeChunks(dir, base string, chunks []string) ([]string, error) {
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return nil, fmt.Errorf("%w: creating output directory: %v", ErrWriteOutput, err)
	}

	paths := make([]string, 0, len(chunks))
	for i, c := range chunks {
		p := chunkPath(dir, base, i)
		if err := fileutil.WriteFileAtomic(p, []byte(c), filePermissions); err != nil {
			return paths, fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// writePreview writes the side-by-side HTML preview of markdown and its
// chunks to path.
func writePreview(ctx context.Context, path, title, markdown string, chunks []string) error {
	page, err := preview.NewConverter().Page(ctx, title, markdown, chunks)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, []byte(page), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// readInput reads a document from disk.
func readInput(path string) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return string(content), nil
}

// baseName returns the file name of path without its extension.
func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
