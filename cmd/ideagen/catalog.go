package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-ideagen/internal/assets"
)

// runCatalogCmd lists the niche, budget and market keys.
func runCatalogCmd(args []string, env *Environment) error {
	flags, rest, err := parseCatalogFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, rest[0])
	}

	kinds := assets.Kinds
	if flags.kind != "" {
		kind, err := parseKind(flags.kind)
		if err != nil {
			return err
		}
		kinds = []assets.Kind{kind}
	}

	s, err := loadSettings(&flags.common, env, nil)
	if err != nil {
		return err
	}
	resolver, err := assets.NewResolver(s.cfg.Assets.BasePath)
	if err != nil {
		return err
	}
	catalog, err := resolver.LoadCatalog()
	if err != nil {
		return err
	}

	printCatalog(env.Stdout, catalog, kinds)
	return nil
}

// parseKind accepts a kind in singular or plural form.
func parseKind(s string) (assets.Kind, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	for _, k := range assets.Kinds {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: unknown catalog kind %q (niches, budgets, markets)", ErrUsage, s)
}

// printCatalog writes one aligned section per kind.
func printCatalog(w io.Writer, c *assets.Catalog, kinds []assets.Kind) {
	for i, kind := range kinds {
		if i > 0 {
			fmt.Fprintln(w)
		}
		opts := c.Options(kind)
		width := 0
		for _, o := range opts {
			width = max(width, len(o.Key))
		}
		fmt.Fprintf(w, "%ss:\n", kind)
		for _, o := range opts {
			fmt.Fprintf(w, "  %-*s  %s\n", width, o.Key, o.Label)
		}
	}
}

// optionKeys returns the keys of one kind, in catalog order.
func optionKeys(c *assets.Catalog, kind assets.Kind) []string {
	opts := c.Options(kind)
	keys := make([]string, len(opts))
	for i, o := range opts {
		keys[i] = o.Key
	}
	return keys
}
