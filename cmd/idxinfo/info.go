package main

import (
	"context"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/scigolib/idx"
)

type headerJSON struct {
	File         string   `json:"file"`
	Type         string   `json:"type"`
	TypeCode     byte     `json:"type_code"`
	ElementWidth uint64   `json:"element_width"`
	Rank         int      `json:"rank"`
	Dims         []uint32 `json:"dims"`
	ElementCount uint64   `json:"element_count"`
	PayloadBytes uint64   `json:"payload_bytes"`
}

func infoCmd() *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:      "info",
		Usage:     "Print the header summary of a validated IDX file",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "emit the summary as JSON", Destination: &asJSON},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = ctx

			if c.Args().Len() != 1 {
				return cli.Exit("error: exactly one file expected", 1)
			}
			path := c.Args().First()

			f, err := idx.Open(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: open idx: %v", err), 1)
			}

			summary := headerJSON{
				File:         path,
				Type:         f.TypeCode().String(),
				TypeCode:     byte(f.TypeCode()),
				ElementWidth: f.ElementWidth(),
				Rank:         f.Rank(),
				Dims:         f.Dims(),
				ElementCount: f.ElementCount(),
				PayloadBytes: uint64(len(f.Payload())),
			}

			if asJSON {
				out, err := json.MarshalIndent(summary, "", "  ")
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: marshal summary: %v", err), 1)
				}
				fmt.Println(string(out))
				return nil
			}

			fmt.Printf("File:          %s\n", summary.File)
			fmt.Printf("Type:          %s (0x%02x, %d bytes/element)\n", summary.Type, summary.TypeCode, summary.ElementWidth)
			fmt.Printf("Rank:          %d\n", summary.Rank)
			fmt.Printf("Dims:          %s\n", formatDims(summary.Dims))
			fmt.Printf("Elements:      %d\n", summary.ElementCount)
			fmt.Printf("Payload bytes: %d\n", summary.PayloadBytes)
			return nil
		},
	}
}

func formatDims(dims []uint32) string {
	if len(dims) == 0 {
		return "(scalar)"
	}
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return strings.Join(parts, " x ")
}
