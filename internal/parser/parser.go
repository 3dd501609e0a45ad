// Package parser groups classified SLHA lines into a Document.
//
// The parser walks the classified line stream top to bottom, keeping the
// currently open section (none, a block, or a decay table). Headers close
// the previous section and open a new one; data lines accumulate into the
// open section; end of input closes the last section.
package parser

import (
	"log/slog"

	"github.com/golangslha/goslha/internal/lexer"
	"github.com/golangslha/goslha/internal/types"
	"github.com/golangslha/goslha/slha"
)

// Parser builds a Document from classified lines.
type Parser struct {
	builder *slha.Builder

	// Currently open section, at most one of these is non-nil.
	block *slha.RawBlock
	decay *slha.RawDecayRecord

	types.Logger
}

// New returns a Parser writing into a fresh Document.
func New(logger *slog.Logger) *Parser {
	return &Parser{
		builder: slha.NewBuilder(),
		Logger:  types.Logger{L: logger},
	}
}

// Parse consumes the classified lines and returns the completed Document,
// or the first structural error encountered. Data lines appearing before
// any header are tolerated and ignored, mirroring the permissiveness of
// real-world SLHA files.
func (p *Parser) Parse(lines []lexer.Line) (*slha.Document, error) {
	for _, line := range lines {
		switch line.Kind {
		case lexer.KindBlank:
			// Blank and comment-only lines do not close the section.
		case lexer.KindBlockHeader:
			if err := p.openBlock(line); err != nil {
				return nil, err
			}
		case lexer.KindDecayHeader:
			if err := p.openDecay(line); err != nil {
				return nil, err
			}
		case lexer.KindData:
			p.appendData(line)
		}
	}
	if err := p.closeSection(); err != nil {
		return nil, err
	}

	doc := p.builder.Document()
	p.Log(slog.LevelDebug, "document complete",
		slog.Int("blocks", len(doc.BlockNames())),
		slog.Int("decays", len(doc.DecayIDs())))
	return doc, nil
}

func (p *Parser) openBlock(line lexer.Line) error {
	if err := p.closeSection(); err != nil {
		return err
	}
	p.block = &slha.RawBlock{
		Name:       line.Name,
		Scale:      line.Scale,
		HeaderLine: line.Number,
	}
	p.Log(slog.LevelDebug, "block opened",
		slog.String("name", line.Name),
		slog.Int("line", line.Number))
	return nil
}

func (p *Parser) openDecay(line lexer.Line) error {
	if err := p.closeSection(); err != nil {
		return err
	}
	// Duplicate decay records are fatal at parse time, however far apart
	// the two headers are.
	if p.builder.HasDecay(line.PDGID) {
		return &slha.StructuralError{
			Kind:  slha.DuplicateDecayRecord,
			Line:  line.Number,
			PDGID: line.PDGID,
		}
	}
	p.decay = &slha.RawDecayRecord{
		PDGID:      line.PDGID,
		Width:      line.Width,
		HeaderLine: line.Number,
	}
	p.Log(slog.LevelDebug, "decay opened",
		slog.Int64("pdgid", line.PDGID),
		slog.Int("line", line.Number))
	return nil
}

func (p *Parser) appendData(line lexer.Line) {
	raw := slha.RawLine{
		Data:    line.Data,
		Comment: line.Comment,
		Number:  line.Number,
	}
	switch {
	case p.block != nil:
		p.block.Lines = append(p.block.Lines, raw)
	case p.decay != nil:
		p.decay.Lines = append(p.decay.Lines, raw)
	default:
		// Preamble data before the first header is ignored.
		p.Log(slog.LevelDebug, "data outside any section ignored",
			slog.Int("line", line.Number))
	}
}

func (p *Parser) closeSection() error {
	switch {
	case p.block != nil:
		p.builder.AddBlock(p.block)
		p.block = nil
	case p.decay != nil:
		err := p.builder.AddDecay(p.decay)
		p.decay = nil
		if err != nil {
			return err
		}
	}
	return nil
}
