// SPDX-License-Identifier: MIT
package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hearthcode/playerpack/lzw"
)

func newInspectCmd() *cobra.Command {
	var base64In bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print a compressed blob's version tag, sizes, and ratio without decoding its value",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}

			blob := raw
			if base64In {
				blob, err = base64.StdEncoding.DecodeString(strings.TrimSpace(string(raw)))
				if err != nil {
					return fmt.Errorf("decode base64: %w", err)
				}
			}

			if len(blob) == 0 {
				return fmt.Errorf("empty input")
			}

			versionTag, rest := blob[0], blob[1:]
			mp, matched, err := lzw.DecodeFramed(rest)
			if err != nil {
				return fmt.Errorf("lzw decode: %w", err)
			}
			if !matched {
				mp = rest
			}

			ratio := float64(len(blob)) / float64(len(mp))
			if !matched {
				ratio = 1.0
			}

			fmt.Fprintf(cmd.OutOrStdout(), "version tag:     %d\n", versionTag)
			fmt.Fprintf(cmd.OutOrStdout(), "compressed size: %d\n", len(blob))
			fmt.Fprintf(cmd.OutOrStdout(), "raw size:        %d\n", len(mp))
			fmt.Fprintf(cmd.OutOrStdout(), "lzw compressed:  %t\n", matched)
			fmt.Fprintf(cmd.OutOrStdout(), "ratio:           %.3f\n", ratio)
			return nil
		},
	}

	cmd.Flags().BoolVar(&base64In, "base64", false, "read the blob as base64 text instead of raw bytes")
	return cmd
}
