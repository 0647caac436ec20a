package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-ideagen/internal/assets"
	"github.com/alnah/go-ideagen/internal/config"
)

// runExampleCmd renders the bundled example report.
func runExampleCmd(ctx context.Context, args []string, env *Environment) error {
	flags, rest, err := parseExampleFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, rest[0])
	}

	raw := false
	switch strings.ToLower(flags.format) {
	case "", "html":
	case "markdown", "md":
		raw = true
	default:
		return fmt.Errorf("%w: --format %q (html or markdown)", ErrUsage, flags.format)
	}

	s, err := loadSettings(&flags.common, env, func(cfg *config.Config) {
		mergeOutputFlags(&flags.out, cfg)
	})
	if err != nil {
		return err
	}
	resolver, err := assets.NewResolver(s.cfg.Assets.BasePath)
	if err != nil {
		return err
	}
	sample, err := resolver.LoadSample(assets.SampleExample)
	if err != nil {
		return err
	}

	if raw {
		fmt.Fprintln(env.Stdout, strings.TrimRight(sample, "\n"))
		return nil
	}

	renderer, err := s.newRenderer()
	if err != nil {
		return err
	}
	chunks := renderer.Render(sample)
	if err := emitChunks(chunks, assets.SampleExample, &flags.out, flags.common.quiet, env.Stdout); err != nil {
		return err
	}
	if flags.out.preview != "" {
		return writePreview(ctx, flags.out.preview, assets.SampleExample, sample, chunks)
	}
	return nil
}
