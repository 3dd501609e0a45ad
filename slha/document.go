// Package slha provides the parsed document model and typed query engine
// for SUSY Les Houches Accord (SLHA) data.
//
// A Document is built once from source text and is read-only afterwards.
// It stores blocks and decay tables in their raw line-level form; typed
// values are decoded on demand through the Get functions, which never
// mutate the Document and may be called concurrently.
package slha

import "strings"

// RawLine is one data line of a block or decay section: the data portion
// and the trailing comment, if any.
type RawLine struct {
	Data    string // data text with surrounding whitespace and comment removed
	Comment string // comment text verbatim, including the leading '#'; empty if none
	Number  int    // 1-based line number in the source text
}

// RawBlock is one occurrence of a named block, before typed decoding.
type RawBlock struct {
	Name       string   // name as spelled in the source
	Scale      *float64 // Q= scale from the header; nil if absent
	Lines      []RawLine
	HeaderLine int // 1-based line number of the BLOCK header
}

// RawDecayRecord is a decay table before typed decoding: the header values
// plus the raw daughter lines.
type RawDecayRecord struct {
	PDGID      int64   // id of the decaying particle
	Width      float64 // total decay width
	Lines      []RawLine
	HeaderLine int // 1-based line number of the DECAY header
}

// Document is a fully parsed SLHA file. Block names are compared
// case-insensitively but each occurrence keeps its source spelling.
type Document struct {
	blocks   map[string][]*RawBlock // key: case-folded name
	names    []string               // folded names in order of first appearance
	decays   map[int64]*RawDecayRecord
	decayIDs []int64 // in order of appearance
}

func newDocument() *Document {
	return &Document{
		blocks: make(map[string][]*RawBlock),
		decays: make(map[int64]*RawDecayRecord),
	}
}

// foldName is the canonical lookup form of a block name.
func foldName(name string) string {
	return strings.ToLower(name)
}

// BlockNames returns the case-folded block names in order of first
// appearance in the source.
func (d *Document) BlockNames() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// HasBlock reports whether at least one occurrence of name exists.
// The name is matched case-insensitively.
func (d *Document) HasBlock(name string) bool {
	return len(d.blocks[foldName(name)]) > 0
}

// RawBlocks returns the undecoded occurrences of name in source order,
// for callers needing custom parsing. The name is matched
// case-insensitively. The result is empty if the name is absent.
func (d *Document) RawBlocks(name string) []*RawBlock {
	occ := d.blocks[foldName(name)]
	out := make([]*RawBlock, len(occ))
	copy(out, occ)
	return out
}

// SingleRawBlock resolves name to its only occurrence. It returns
// (nil, nil) if the name is absent and a QueryError if the block is
// repeated.
func (d *Document) SingleRawBlock(name string) (*RawBlock, error) {
	occ := d.blocks[foldName(name)]
	switch len(occ) {
	case 0:
		return nil, nil
	case 1:
		return occ[0], nil
	default:
		return nil, &QueryError{
			Kind:  MultipleOccurrencesForSingleGet,
			Block: name,
			Count: len(occ),
		}
	}
}

// DecayIDs returns the particle ids with decay tables, in order of
// appearance in the source.
func (d *Document) DecayIDs() []int64 {
	out := make([]int64, len(d.decayIDs))
	copy(out, d.decayIDs)
	return out
}

// RawDecay returns the undecoded decay record for a particle id, or nil
// if the document has none.
func (d *Document) RawDecay(pdgID int64) *RawDecayRecord {
	return d.decays[pdgID]
}

// Decay decodes the decay table for a particle id. It returns (nil, nil)
// if the document records no decay for the id, and a DecodeError if a
// daughter line is malformed.
func (d *Document) Decay(pdgID int64) (*DecayTable, error) {
	raw := d.decays[pdgID]
	if raw == nil {
		return nil, nil
	}
	return decodeDecayTable(raw)
}

// Builder constructs a Document incrementally.
//
// This type is intended for internal use by the parser. Most users should
// use goslha.Parse instead.
type Builder struct {
	doc *Document
}

// NewBuilder creates a Builder with an empty Document.
func NewBuilder() *Builder {
	return &Builder{doc: newDocument()}
}

// Document returns the constructed Document.
// After calling this, the Builder should not be used further.
func (b *Builder) Document() *Document {
	return b.doc
}

// AddBlock appends a block occurrence under its case-folded name.
func (b *Builder) AddBlock(rb *RawBlock) {
	key := foldName(rb.Name)
	if _, seen := b.doc.blocks[key]; !seen {
		b.doc.names = append(b.doc.names, key)
	}
	b.doc.blocks[key] = append(b.doc.blocks[key], rb)
}

// HasDecay reports whether a decay record already exists for the id.
func (b *Builder) HasDecay(pdgID int64) bool {
	_, ok := b.doc.decays[pdgID]
	return ok
}

// AddDecay records a decay table. A second record for the same particle
// id is a StructuralError.
func (b *Builder) AddDecay(rd *RawDecayRecord) error {
	if _, ok := b.doc.decays[rd.PDGID]; ok {
		return &StructuralError{
			Kind:  DuplicateDecayRecord,
			Line:  rd.HeaderLine,
			PDGID: rd.PDGID,
		}
	}
	b.doc.decays[rd.PDGID] = rd
	b.doc.decayIDs = append(b.doc.decayIDs, rd.PDGID)
	return nil
}
