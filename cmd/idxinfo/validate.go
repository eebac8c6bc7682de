package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/scigolib/idx"
)

func validateCmd() *cli.Command {
	var quiet bool

	return &cli.Command{
		Name:      "validate",
		Usage:     "Check that each file is a structurally well-formed IDX array",
		ArgsUsage: "<file>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "suppress per-file output, report via exit code only", Destination: &quiet},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = ctx

			files := c.Args().Slice()
			if len(files) == 0 {
				return cli.Exit("error: no files given", 1)
			}

			failures := 0
			for _, path := range files {
				_, err := idx.Open(path)
				if err != nil {
					failures++
					if !quiet {
						fmt.Printf("%s: INVALID: %v\n", path, err)
					}
					continue
				}
				if !quiet {
					fmt.Printf("%s: OK\n", path)
				}
			}

			if failures > 0 {
				return cli.Exit(fmt.Sprintf("%d of %d files invalid", failures, len(files)), 1)
			}
			return nil
		},
	}
}
