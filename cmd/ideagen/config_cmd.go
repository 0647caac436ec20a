package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-ideagen/internal/yamlutil"
)

// runConfigCmd prints the effective configuration as YAML.
// The API key is never part of it.
func runConfigCmd(args []string, env *Environment) error {
	flags, rest, err := parseConfigFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, rest[0])
	}

	s, err := loadSettings(flags, env, nil)
	if err != nil {
		return err
	}
	out, err := yamlutil.Encode(s.cfg)
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(out)
	return err
}
