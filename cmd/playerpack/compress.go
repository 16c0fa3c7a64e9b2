// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hearthcode/playerpack"
)

func newCompressCmd() *cobra.Command {
	var base64Out bool

	cmd := &cobra.Command{
		Use:   "compress",
		Short: "Read a JSON value from stdin and write a compressed blob",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}

			var value any
			if err := json.Unmarshal(raw, &value); err != nil {
				return fmt.Errorf("parse json: %w", err)
			}

			if base64Out {
				encoded, err := playerpack.CompressToBase64(value)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), encoded)
				return nil
			}

			result, err := playerpack.Compress(value)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(result.Bytes)
			return err
		},
	}

	cmd.Flags().BoolVar(&base64Out, "base64", false, "write the blob as base64 text instead of raw bytes")
	return cmd
}
