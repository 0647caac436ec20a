package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	ideagen "github.com/alnah/go-ideagen"
	"github.com/alnah/go-ideagen/internal/llm"
)

// testEnv is an Environment with captured output and a fake process
// environment.
type testEnv struct {
	*Environment
	stdout bytes.Buffer
	stderr bytes.Buffer
}

// newTestEnv returns an environment reading stdin from input and vars as
// its environment variables. gen answers generate requests; nil uses the
// real model client, which fails without an API key.
func newTestEnv(t *testing.T, input string, vars map[string]string, gen ideagen.Generator) *testEnv {
	t.Helper()

	te := &testEnv{}
	te.Environment = &Environment{
		Now:     func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
		Stdin:   strings.NewReader(input),
		Stdout:  &te.stdout,
		Stderr:  &te.stderr,
		Getenv:  func(k string) string { return vars[k] },
		Environ: func() []string { return environ(vars) },
		NewGenerator: func(cfg llm.Config, l *log.Logger) (ideagen.Generator, error) {
			if gen == nil {
				return newLLMGenerator(cfg, l)
			}
			return gen, nil
		},
	}
	return te
}

func environ(vars map[string]string) []string {
	out := make([]string, 0, len(vars))
	for k, v := range vars {
		out = append(out, k+"="+v)
	}
	return out
}

// staticGenerator answers every request with the same text and error.
func staticGenerator(text string, err error) ideagen.Generator {
	return ideagen.GeneratorFunc(func(context.Context, string, string) (string, error) {
		return text, err
	})
}
