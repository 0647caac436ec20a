package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	ideagen "github.com/alnah/go-ideagen"
	"github.com/alnah/go-ideagen/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension = errors.New("file must have .md, .markdown or .txt extension")
	ErrInvalidWorkers   = errors.New("invalid worker count")
)

// documentExtensions are the file types render accepts.
var documentExtensions = []string{".md", ".markdown", ".txt"}

// FileToRender represents a single document to process.
type FileToRender struct {
	InputPath string
	OutputDir string // chunk files go here
	Base      string // chunk file name prefix
}

// discoverFiles finds all documents to render under inputPath.
// An empty outputDir writes chunks next to each input.
func discoverFiles(inputPath, outputDir string) ([]FileToRender, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	if !info.IsDir() {
		if !fileutil.HasExtension(inputPath, documentExtensions...) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		return []FileToRender{newFileToRender(inputPath, outputDir, "")}, nil
	}

	var files []FileToRender
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.HasExtension(path, documentExtensions...) {
			return nil
		}
		files = append(files, newFileToRender(path, outputDir, inputPath))
		return nil
	})

	return files, err
}

// newFileToRender resolves where the chunks of inputPath are written.
// Under a directory input, the relative layout is mirrored in outputDir.
func newFileToRender(inputPath, outputDir, baseInputDir string) FileToRender {
	f := FileToRender{InputPath: inputPath, Base: baseName(inputPath)}

	switch {
	case outputDir == "":
		f.OutputDir = filepath.Dir(inputPath)
	case baseInputDir != "":
		f.OutputDir = outputDir
		if rel, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			f.OutputDir = filepath.Join(outputDir, filepath.Dir(rel))
		}
	default:
		f.OutputDir = outputDir
	}
	return f
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkers, n)
	}
	if n > ideagen.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkers, n, ideagen.MaxPoolSize)
	}
	return nil
}
