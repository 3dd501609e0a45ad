package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/golangslha/goslha/slha"
)

var dumpJSON bool

// dumpDoc is the serialization view of a raw document.
type dumpDoc struct {
	Blocks []dumpBlock `yaml:"blocks" json:"blocks"`
	Decays []dumpDecay `yaml:"decays,omitempty" json:"decays,omitempty"`
}

type dumpBlock struct {
	Name  string     `yaml:"name" json:"name"`
	Scale *float64   `yaml:"scale,omitempty" json:"scale,omitempty"`
	Lines []dumpLine `yaml:"lines,omitempty" json:"lines,omitempty"`
}

type dumpDecay struct {
	PDGID int64      `yaml:"pdgid" json:"pdgid"`
	Width float64    `yaml:"width" json:"width"`
	Lines []dumpLine `yaml:"lines,omitempty" json:"lines,omitempty"`
}

type dumpLine struct {
	Data    string `yaml:"data" json:"data"`
	Comment string `yaml:"comment,omitempty" json:"comment,omitempty"`
}

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Dump the raw parsed document as YAML or JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := parseFile(args[0])
		if err != nil {
			return err
		}

		view := dumpDoc{}
		for _, name := range doc.BlockNames() {
			for _, raw := range doc.RawBlocks(name) {
				view.Blocks = append(view.Blocks, dumpBlock{
					Name:  raw.Name,
					Scale: raw.Scale,
					Lines: dumpLines(raw.Lines),
				})
			}
		}
		for _, id := range doc.DecayIDs() {
			raw := doc.RawDecay(id)
			view.Decays = append(view.Decays, dumpDecay{
				PDGID: raw.PDGID,
				Width: raw.Width,
				Lines: dumpLines(raw.Lines),
			})
		}

		out := cmd.OutOrStdout()
		if dumpJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(view)
		}
		data, err := yaml.Marshal(view)
		if err != nil {
			return err
		}
		fmt.Fprint(out, string(data))
		return nil
	},
}

func dumpLines(lines []slha.RawLine) []dumpLine {
	out := make([]dumpLine, len(lines))
	for i, ln := range lines {
		out[i] = dumpLine{Data: ln.Data, Comment: ln.Comment}
	}
	return out
}

func init() {
	dumpCmd.Flags().BoolVar(&dumpJSON, "json", false, "output JSON instead of YAML")
}
