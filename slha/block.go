package slha

import (
	"strconv"
	"strings"
)

// Key is the closed family of supported block key shapes: scalar integer
// keys, fixed-arity integer tuples (as comparable arrays), and a single
// string token. Tuple keys cover matrix-style blocks such as Yukawa or
// mixing matrices.
type Key interface {
	int | int64 | [2]int | [2]int64 | [3]int | [3]int64 | string
}

// Value is the set of supported block value types. A string value consumes
// the whole remainder of the data line.
type Value interface {
	int | int64 | float64 | string
}

// BlockUnmarshaler is implemented by the block shapes. It decodes one raw
// occurrence into the receiver, leaving the raw block untouched.
// Non-generic consumers (such as the bind package) decode through this
// interface instead of the generic Get functions.
type BlockUnmarshaler interface {
	UnmarshalBlock(raw *RawBlock) error
}

// Block is the decoded form of a fixed-key block: an optional scale plus a
// key to value mapping. Keys are unique; a repeated key within one block
// occurrence is a DecodeError, never a silent overwrite.
type Block[K Key, V Value] struct {
	Scale *float64
	Map   map[K]V
}

// Get is a convenience lookup on the decoded map.
func (b *Block[K, V]) Get(key K) (V, bool) {
	v, ok := b.Map[key]
	return v, ok
}

// UnmarshalBlock decodes the raw occurrence into b.
func (b *Block[K, V]) UnmarshalBlock(raw *RawBlock) error {
	m := make(map[K]V, len(raw.Lines))
	for _, ln := range raw.Lines {
		sc := newScanner(ln.Data)
		var k K
		if derr := scanKey(&k, sc); derr != nil {
			return anchor(derr, raw, ln)
		}
		var v V
		if derr := scanValue(&v, sc); derr != nil {
			return anchor(derr, raw, ln)
		}
		if rest := sc.remainder(); rest != "" {
			tok, _ := sc.next()
			return anchor(&DecodeError{Kind: ExtraField, Token: tok}, raw, ln)
		}
		if _, dup := m[k]; dup {
			return anchor(&DecodeError{Kind: DuplicateKeyInBlock, Token: ln.Data}, raw, ln)
		}
		m[k] = v
	}
	b.Scale = cloneScale(raw.Scale)
	b.Map = m
	return nil
}

// BlockSingle is the decoded form of a block holding exactly one value and
// no key, such as the ALPHA block.
type BlockSingle[V Value] struct {
	Scale *float64
	Value V
}

// UnmarshalBlock decodes the raw occurrence into b. The occurrence must
// have exactly one data line.
func (b *BlockSingle[V]) UnmarshalBlock(raw *RawBlock) error {
	if len(raw.Lines) != 1 {
		return &DecodeError{
			Kind:   WrongLineCountForSingleValue,
			Block:  raw.Name,
			Line:   raw.HeaderLine,
			Detail: "expected 1 data line, found " + strconv.Itoa(len(raw.Lines)),
		}
	}
	ln := raw.Lines[0]
	sc := newScanner(ln.Data)
	var v V
	if derr := scanValue(&v, sc); derr != nil {
		return anchor(derr, raw, ln)
	}
	if rest := sc.remainder(); rest != "" {
		tok, _ := sc.next()
		return anchor(&DecodeError{Kind: ExtraField, Token: tok}, raw, ln)
	}
	b.Scale = cloneScale(raw.Scale)
	b.Value = v
	return nil
}

// BlockStr is the decoded form of a block whose key shape is not known at
// decode time. The key is the ordered sequence of leading tokens, as many
// as must be consumed before the remainder parses as a V; it is stored
// joined by single spaces (see StrKey).
type BlockStr[V Value] struct {
	Scale *float64
	Map   map[string]V
}

// StrKey builds the canonical map key of a BlockStr from key tokens.
func StrKey(tokens ...string) string {
	return strings.Join(tokens, " ")
}

// Get looks up the value stored under the given key tokens.
func (b *BlockStr[V]) Get(tokens ...string) (V, bool) {
	v, ok := b.Map[StrKey(tokens...)]
	return v, ok
}

// UnmarshalBlock decodes the raw occurrence into b. For each line the
// shortest token prefix whose remainder parses as a V becomes the key; a
// string-valued BlockStr therefore always has empty keys, since the whole
// line parses as the value.
func (b *BlockStr[V]) UnmarshalBlock(raw *RawBlock) error {
	m := make(map[string]V, len(raw.Lines))
	for _, ln := range raw.Lines {
		var keys []string
		rest := ln.Data
		for {
			trial := newScanner(rest)
			var v V
			if derr := scanValue(&v, trial); derr == nil && trial.remainder() == "" {
				key := StrKey(keys...)
				if _, dup := m[key]; dup {
					return anchor(&DecodeError{Kind: DuplicateKeyInBlock, Token: ln.Data}, raw, ln)
				}
				m[key] = v
				break
			}
			sc := newScanner(rest)
			word, ok := sc.next()
			if !ok {
				return anchor(&DecodeError{
					Kind:   UnparsableScalar,
					Detail: "no trailing value of the requested type",
				}, raw, ln)
			}
			keys = append(keys, word)
			rest = sc.remainder()
		}
	}
	b.Scale = cloneScale(raw.Scale)
	b.Map = m
	return nil
}

func cloneScale(s *float64) *float64 {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// anchor fills in the location fields of a decode error found on a
// specific line of a raw block.
func anchor(derr *DecodeError, raw *RawBlock, ln RawLine) *DecodeError {
	derr.Block = raw.Name
	derr.Line = ln.Number
	return derr
}

// scanner walks a data line token by token, preserving the untouched
// remainder so string values can consume the rest of the line verbatim.
type scanner struct {
	rest string
}

func newScanner(data string) *scanner {
	return &scanner{rest: data}
}

// next returns the next whitespace-delimited token, or ok=false if the
// remainder is blank.
func (s *scanner) next() (string, bool) {
	trimmed := strings.TrimSpace(s.rest)
	if trimmed == "" {
		s.rest = ""
		return "", false
	}
	if i := strings.IndexFunc(trimmed, isSpace); i >= 0 {
		s.rest = trimmed[i:]
		return trimmed[:i], true
	}
	s.rest = ""
	return trimmed, true
}

// remainder returns the unconsumed text with surrounding whitespace removed.
func (s *scanner) remainder() string {
	return strings.TrimSpace(s.rest)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// scanInt consumes one token and parses it as a signed integer.
func scanInt(sc *scanner) (int64, *DecodeError) {
	tok, ok := sc.next()
	if !ok {
		return 0, &DecodeError{Kind: MissingField, Detail: "expected an integer"}
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, &DecodeError{Kind: UnparsableScalar, Token: tok, Err: err}
	}
	return n, nil
}

// scanFloat consumes one token and parses it as a float.
func scanFloat(sc *scanner) (float64, *DecodeError) {
	tok, ok := sc.next()
	if !ok {
		return 0, &DecodeError{Kind: MissingField, Detail: "expected a float"}
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &DecodeError{Kind: UnparsableScalar, Token: tok, Err: err}
	}
	return f, nil
}

// scanKey parses the components of a key shape from the scanner.
// The closed set of shapes mirrors the Key constraint.
func scanKey(dst any, sc *scanner) *DecodeError {
	switch p := dst.(type) {
	case *int:
		n, derr := scanInt(sc)
		if derr != nil {
			return derr
		}
		*p = int(n)
	case *int64:
		n, derr := scanInt(sc)
		if derr != nil {
			return derr
		}
		*p = n
	case *[2]int:
		for i := range p {
			n, derr := scanInt(sc)
			if derr != nil {
				return derr
			}
			p[i] = int(n)
		}
	case *[2]int64:
		for i := range p {
			n, derr := scanInt(sc)
			if derr != nil {
				return derr
			}
			p[i] = n
		}
	case *[3]int:
		for i := range p {
			n, derr := scanInt(sc)
			if derr != nil {
				return derr
			}
			p[i] = int(n)
		}
	case *[3]int64:
		for i := range p {
			n, derr := scanInt(sc)
			if derr != nil {
				return derr
			}
			p[i] = n
		}
	case *string:
		tok, ok := sc.next()
		if !ok {
			return &DecodeError{Kind: MissingField, Detail: "expected a key token"}
		}
		*p = tok
	default:
		return &DecodeError{Kind: UnparsableScalar, Detail: "unsupported key shape"}
	}
	return nil
}

// scanValue parses a value from the scanner. Numeric values consume one
// token; a string value consumes the whole remainder of the line.
func scanValue(dst any, sc *scanner) *DecodeError {
	switch p := dst.(type) {
	case *int:
		n, derr := scanInt(sc)
		if derr != nil {
			return derr
		}
		*p = int(n)
	case *int64:
		n, derr := scanInt(sc)
		if derr != nil {
			return derr
		}
		*p = n
	case *float64:
		f, derr := scanFloat(sc)
		if derr != nil {
			return derr
		}
		*p = f
	case *string:
		rest := sc.remainder()
		if rest == "" {
			return &DecodeError{Kind: MissingField, Detail: "expected a value"}
		}
		sc.rest = ""
		*p = rest
	default:
		return &DecodeError{Kind: UnparsableScalar, Detail: "unsupported value type"}
	}
	return nil
}
