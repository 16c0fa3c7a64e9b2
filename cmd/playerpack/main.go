// SPDX-License-Identifier: MIT

// Command playerpack is a small CLI around the playerpack façade: compress
// and decompress player-data blobs, or inspect one without fully decoding
// it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "playerpack",
		Short:         "Compress and decompress player-data blobs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCompressCmd())
	root.AddCommand(newDecompressCmd())
	root.AddCommand(newInspectCmd())

	return root
}
