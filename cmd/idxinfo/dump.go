package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/urfave/cli/v3"
)

func dumpCmd() *cli.Command {
	var (
		offset int64
		length int64
	)

	return &cli.Command{
		Name:      "dump",
		Usage:     "Hex dump raw bytes of an IDX file (gzip-aware)",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "offset", Usage: "offset to start dumping from", Destination: &offset},
			&cli.IntFlag{Name: "length", Usage: "number of bytes to dump", Value: 128, Destination: &length},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = ctx

			if c.Args().Len() != 1 {
				return cli.Exit("error: exactly one file expected", 1)
			}
			path := c.Args().First()

			buf, err := readAllMaybeGzip(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: read file: %v", err), 1)
			}

			size := int64(len(buf))
			if offset < 0 || offset >= size {
				return cli.Exit(fmt.Sprintf("error: invalid offset %d (decompressed size: %d)", offset, size), 1)
			}
			if length < 1 {
				return cli.Exit(fmt.Sprintf("error: invalid length %d", length), 1)
			}

			end := offset + length
			if end > size {
				end = size
				fmt.Printf("Warning: requested length %d exceeds available bytes (%d). Dumping %d bytes.\n",
					length, size-offset, end-offset)
			}

			fmt.Printf("Dumping %d bytes at offset 0x%x (%d) of %s (size: %d bytes):\n",
				end-offset, offset, offset, path, size)
			hexDump(buf[offset:end], offset)
			return nil
		},
	}
}

func readAllMaybeGzip(path string) ([]byte, error) {
	//nolint:gosec // G304: user-provided filename is the point of the tool
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	magic := make([]byte, 2)
	if n, _ := f.ReadAt(magic, 0); n == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer func() { _ = gz.Close() }()
		return io.ReadAll(gz)
	}

	return io.ReadAll(f)
}

func hexDump(buf []byte, base int64) {
	for i := 0; i < len(buf); i += 16 {
		end := i + 16
		if end > len(buf) {
			end = len(buf)
		}
		chunk := buf[i:end]

		fmt.Printf("%08x: ", base+int64(i))
		for j := 0; j < 16; j++ {
			if j < len(chunk) {
				fmt.Printf("%02x ", chunk[j])
			} else {
				fmt.Print("   ")
			}
			if j == 7 {
				fmt.Print(" ")
			}
		}
		fmt.Print(" |")

		for _, b := range chunk {
			if b >= 32 && b <= 126 {
				fmt.Printf("%c", b)
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println("|")
	}
}
