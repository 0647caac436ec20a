package main

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	ideagen "github.com/alnah/go-ideagen"
	"github.com/alnah/go-ideagen/internal/llm"
)

// GeneratorFactory builds the generation collaborator from client settings.
type GeneratorFactory func(cfg llm.Config, logger *log.Logger) (ideagen.Generator, error)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, process environment, and the generator factory.
type Environment struct {
	Now          func() time.Time
	Stdin        io.Reader
	Stdout       io.Writer
	Stderr       io.Writer
	Getenv       func(string) string
	Environ      func() []string
	NewGenerator GeneratorFactory
}

// DefaultEnv returns the production environment backed by the model API.
func DefaultEnv() *Environment {
	return &Environment{
		Now:          time.Now,
		Stdin:        os.Stdin,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Getenv:       os.Getenv,
		Environ:      os.Environ,
		NewGenerator: newLLMGenerator,
	}
}

func newLLMGenerator(cfg llm.Config, logger *log.Logger) (ideagen.Generator, error) {
	client, err := llm.NewClient(cfg, logger)
	if err != nil {
		return nil, err
	}
	return client, nil
}
