package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var decayPDG int64

var decaysCmd = &cobra.Command{
	Use:   "decays FILE",
	Short: "List the decay tables in an SLHA file",
	Long: `List the decay tables in an SLHA file. Without --pdg, prints one
line per decaying particle with its total width; with --pdg, prints the
full decay table of that particle.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := parseFile(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !cmd.Flags().Changed("pdg") {
			for _, id := range doc.DecayIDs() {
				raw := doc.RawDecay(id)
				fmt.Fprintf(out, "%-12d width=%g channels=%d\n", id, raw.Width, len(raw.Lines))
			}
			return nil
		}

		table, err := doc.Decay(decayPDG)
		if err != nil {
			return err
		}
		if table == nil {
			return fmt.Errorf("no decay table for particle %d", decayPDG)
		}
		fmt.Fprintf(out, "DECAY %d width=%g\n", decayPDG, table.Width)
		for _, d := range table.Decays {
			fmt.Fprintf(out, "  BR=%-14g ->", d.BranchingRatio)
			for _, id := range d.Daughters {
				fmt.Fprintf(out, " %d", id)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	decaysCmd.Flags().Int64Var(&decayPDG, "pdg", 0, "print the full decay table of this particle")
}
