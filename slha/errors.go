package slha

import (
	"fmt"
	"strings"
)

// StructuralKind identifies a document-build failure.
type StructuralKind int

const (
	// MalformedHeader means a BLOCK or DECAY header line could not be parsed.
	MalformedHeader StructuralKind = iota
	// DuplicateDecayRecord means two DECAY headers named the same particle.
	DuplicateDecayRecord
	// UnterminatedSection is reserved for grammars that require explicit
	// section terminators. The SLHA grammar closes sections at the next
	// header or end of input, so the current parser never emits it.
	UnterminatedSection
)

func (k StructuralKind) String() string {
	switch k {
	case MalformedHeader:
		return "malformed header"
	case DuplicateDecayRecord:
		return "duplicate decay record"
	case UnterminatedSection:
		return "unterminated section"
	default:
		return fmt.Sprintf("structural error %d", int(k))
	}
}

// StructuralError is a fatal error found while building a Document.
// No partial Document is produced when one is returned.
type StructuralError struct {
	Kind  StructuralKind
	Line  int    // 1-based source line number
	Name  string // block name, if known
	PDGID int64  // decaying particle id, for decay-related errors
	Msg   string // what went wrong with the line
	Err   error  // underlying cause, e.g. a strconv error
}

func (e *StructuralError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "line %d: %s", e.Line, e.Kind)
	if e.Name != "" {
		fmt.Fprintf(&b, " %q", e.Name)
	}
	if e.Kind == DuplicateDecayRecord {
		fmt.Fprintf(&b, " for particle %d", e.PDGID)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *StructuralError) Unwrap() error { return e.Err }

// DecodeKind identifies a typed-decode failure.
type DecodeKind int

const (
	// MissingField means a data line had fewer tokens than the target shape needs.
	MissingField DecodeKind = iota
	// ExtraField means a data line had tokens left over after the value.
	ExtraField
	// UnparsableScalar means a token did not satisfy its scalar syntax.
	UnparsableScalar
	// DuplicateKeyInBlock means two lines in one block produced the same key.
	DuplicateKeyInBlock
	// WrongLineCountForSingleValue means a single-value block did not have
	// exactly one data line.
	WrongLineCountForSingleValue
	// DaughterCountMismatch means a decay line's declared daughter count
	// disagrees with the ids actually present.
	DaughterCountMismatch
)

func (k DecodeKind) String() string {
	switch k {
	case MissingField:
		return "missing field"
	case ExtraField:
		return "extra field"
	case UnparsableScalar:
		return "unparsable scalar"
	case DuplicateKeyInBlock:
		return "duplicate key in block"
	case WrongLineCountForSingleValue:
		return "wrong line count for single-value block"
	case DaughterCountMismatch:
		return "daughter count mismatch"
	default:
		return fmt.Sprintf("decode error %d", int(k))
	}
}

// DecodeError is a failure converting one raw block or decay record into a
// typed value. It is scoped to the single value requested; the Document
// itself stays valid.
type DecodeError struct {
	Kind       DecodeKind
	Block      string // display name of the block, or "DECAY <id>" for decay tables
	Occurrence int    // 0-based index among the name's occurrences
	Line       int    // 1-based source line number, 0 if not line-specific
	Token      string // offending token, if any
	Detail     string // extra context, e.g. declared vs found counts
	Err        error  // underlying cause, e.g. a strconv error
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString(e.Block)
	if e.Occurrence > 0 {
		fmt.Fprintf(&b, " (occurrence %d)", e.Occurrence+1)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, ":%d", e.Line)
	}
	b.WriteString(": ")
	b.WriteString(e.Kind.String())
	if e.Token != "" {
		fmt.Fprintf(&b, " %q", e.Token)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// QueryKind identifies a query-resolution failure.
type QueryKind int

const (
	// MultipleOccurrencesForSingleGet means a singular lookup found a
	// repeated block. Use GetBlocks or GetBlocksUnchecked instead.
	MultipleOccurrencesForSingleGet QueryKind = iota
	// DuplicateScaleAmongRepeats means two occurrences of a repeated block
	// carry the same scale (or both carry none).
	DuplicateScaleAmongRepeats
)

func (k QueryKind) String() string {
	switch k {
	case MultipleOccurrencesForSingleGet:
		return "multiple occurrences for single get"
	case DuplicateScaleAmongRepeats:
		return "duplicate scale among repeats"
	default:
		return fmt.Sprintf("query error %d", int(k))
	}
}

// QueryError is a failure resolving which occurrences of a block a lookup
// should decode.
type QueryError struct {
	Kind  QueryKind
	Block string   // name as requested by the caller
	Count int      // number of occurrences found
	Scale *float64 // offending scale; nil means two scaleless occurrences
}

func (e *QueryError) Error() string {
	switch e.Kind {
	case MultipleOccurrencesForSingleGet:
		return fmt.Sprintf("block %q: %s: found %d occurrences", e.Block, e.Kind, e.Count)
	case DuplicateScaleAmongRepeats:
		if e.Scale == nil {
			return fmt.Sprintf("block %q: %s: two occurrences without a scale", e.Block, e.Kind)
		}
		return fmt.Sprintf("block %q: %s: scale %v", e.Block, e.Kind, *e.Scale)
	default:
		return fmt.Sprintf("block %q: %s", e.Block, e.Kind)
	}
}
