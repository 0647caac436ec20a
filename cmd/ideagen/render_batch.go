package main

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	ideagen "github.com/alnah/go-ideagen"
)

// RenderResult holds the outcome of rendering a single file.
type RenderResult struct {
	InputPath   string
	OutputPaths []string
	Markdown    string
	Chunks      []string
	Err         error
	Duration    time.Duration
}

// renderBatch renders files concurrently with at most workers goroutines.
// Results keep the order of files. The Renderer holds no per-call state,
// so all workers share it.
func renderBatch(ctx context.Context, r *ideagen.Renderer, files []FileToRender, workers int) []RenderResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(files))

	results := make([]RenderResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = RenderResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = renderFile(r, files[idx])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// renderFile renders a single file and writes its chunks.
func renderFile(r *ideagen.Renderer, f FileToRender) RenderResult {
	start := time.Now()
	result := RenderResult{InputPath: f.InputPath}

	content, err := readInput(f.InputPath)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	result.Markdown = content
	result.Chunks = r.Render(result.Markdown)

	result.OutputPaths, err = writeChunks(f.OutputDir, f.Base, result.Chunks)
	if err != nil {
		result.Err = err
	}
	result.Duration = time.Since(start)
	return result
}

// printResults outputs render results and returns the number of failures.
func printResults(results []RenderResult, quiet, verbose bool, stdout, stderr io.Writer) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(stdout, "%s -> %d chunk(s) (%v)\n", r.InputPath, len(r.OutputPaths), r.Duration.Round(time.Millisecond))
		}
		for _, p := range r.OutputPaths {
			fmt.Fprintf(stdout, "Created %s\n", p)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
