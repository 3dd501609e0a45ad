package slha

import "strconv"

// Decay is one channel of a decay table.
type Decay struct {
	BranchingRatio float64
	Daughters      []int64 // pdg ids of the daughter particles, in source order
}

// DecayTable is the decoded decay information of one particle: its total
// width and its channels in source order.
type DecayTable struct {
	Width  float64
	Decays []Decay
}

// decodeDecayTable converts a raw decay record into a DecayTable.
// Each data line reads: branching ratio, declared daughter count, then
// exactly that many daughter ids.
func decodeDecayTable(raw *RawDecayRecord) (*DecayTable, error) {
	table := &DecayTable{
		Width:  raw.Width,
		Decays: make([]Decay, 0, len(raw.Lines)),
	}
	name := "DECAY " + strconv.FormatInt(raw.PDGID, 10)
	for _, ln := range raw.Lines {
		sc := newScanner(ln.Data)
		br, derr := scanFloat(sc)
		if derr != nil {
			derr.Block = name
			derr.Line = ln.Number
			return nil, derr
		}
		declared, derr := scanInt(sc)
		if derr != nil {
			derr.Block = name
			derr.Line = ln.Number
			return nil, derr
		}

		var tokens []string
		for {
			tok, ok := sc.next()
			if !ok {
				break
			}
			tokens = append(tokens, tok)
		}
		if int64(len(tokens)) != declared {
			return nil, &DecodeError{
				Kind:   DaughterCountMismatch,
				Block:  name,
				Line:   ln.Number,
				Detail: "declared " + strconv.FormatInt(declared, 10) + " daughters, found " + strconv.Itoa(len(tokens)),
			}
		}

		daughters := make([]int64, len(tokens))
		for i, tok := range tokens {
			id, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, &DecodeError{
					Kind:  UnparsableScalar,
					Block: name,
					Line:  ln.Number,
					Token: tok,
					Err:   err,
				}
			}
			daughters[i] = id
		}
		table.Decays = append(table.Decays, Decay{BranchingRatio: br, Daughters: daughters})
	}
	return table, nil
}
