package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var blocksCmd = &cobra.Command{
	Use:   "blocks FILE",
	Short: "List the blocks in an SLHA file",
	Long: `List the block names in an SLHA file, with the occurrence count,
the scale of each occurrence, and the number of data lines.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := parseFile(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, name := range doc.BlockNames() {
			occ := doc.RawBlocks(name)
			var scales []string
			lines := 0
			for _, raw := range occ {
				lines += len(raw.Lines)
				if raw.Scale != nil {
					scales = append(scales, "Q="+strconv.FormatFloat(*raw.Scale, 'g', -1, 64))
				}
			}
			fmt.Fprintf(out, "%-16s occurrences=%d lines=%d", occ[0].Name, len(occ), lines)
			if len(scales) > 0 {
				fmt.Fprintf(out, " %s", strings.Join(scales, " "))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}
