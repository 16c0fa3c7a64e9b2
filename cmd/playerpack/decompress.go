// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hearthcode/playerpack"
)

func newDecompressCmd() *cobra.Command {
	var base64In bool

	cmd := &cobra.Command{
		Use:   "decompress",
		Short: "Read a compressed blob from stdin and write its value as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}

			var value any
			if base64In {
				value, err = playerpack.DecompressBase64(strings.TrimSpace(string(raw)))
			} else {
				value, err = playerpack.Decompress(raw)
			}
			if err != nil {
				return err
			}

			out, err := json.Marshal(jsonSafe(value))
			if err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&base64In, "base64", false, "read the blob as base64 text instead of raw bytes")
	return cmd
}

// jsonSafe recursively converts the decoder's map[any]any results (which
// encoding/json can't marshal directly) into map[string]any.
func jsonSafe(v any) any {
	switch t := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = jsonSafe(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = jsonSafe(val)
		}
		return out
	default:
		return v
	}
}
