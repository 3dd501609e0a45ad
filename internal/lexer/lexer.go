// Package lexer classifies SLHA source text line by line.
//
// Each physical line is split into a data portion and an optional trailing
// comment, then classified as a block header, a decay header, a data line,
// or a blank line. Header lines are parsed eagerly so a malformed header
// aborts the build with the offending line number.
package lexer

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/golangslha/goslha/internal/types"
	"github.com/golangslha/goslha/slha"
)

// Kind classifies one source line.
type Kind int

const (
	// KindBlank is an empty or fully commented line. Blank lines do not
	// close the current section.
	KindBlank Kind = iota
	// KindBlockHeader is a line whose first token is BLOCK.
	KindBlockHeader
	// KindDecayHeader is a line whose first token is DECAY.
	KindDecayHeader
	// KindData is any other non-blank line.
	KindData
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindBlockHeader:
		return "block-header"
	case KindDecayHeader:
		return "decay-header"
	case KindData:
		return "data"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Line is one classified source line.
type Line struct {
	Kind    Kind
	Number  int    // 1-based line number
	Data    string // trimmed data portion (data lines)
	Comment string // trailing comment verbatim, including '#'; empty if none

	// Block header fields.
	Name  string   // block name as spelled in the source
	Scale *float64 // Q= scale; nil if the header carries none

	// Decay header fields.
	PDGID int64
	Width float64
}

// Lexer classifies SLHA source text.
type Lexer struct {
	source string
	types.Logger
}

// New returns a Lexer for the given source text.
func New(source string, logger *slog.Logger) *Lexer {
	l := &Lexer{
		source: source,
		Logger: types.Logger{L: logger},
	}
	l.Log(slog.LevelDebug, "lexer initialized", slog.Int("bytes", len(source)))
	return l
}

// Classify splits the source into lines and classifies each one. The first
// malformed header aborts with a StructuralError naming the line.
func (l *Lexer) Classify() ([]Line, error) {
	rawLines := strings.Split(l.source, "\n")
	lines := make([]Line, 0, len(rawLines))
	for i, text := range rawLines {
		line, err := l.classifyLine(strings.TrimSuffix(text, "\r"), i+1)
		if err != nil {
			return nil, err
		}
		if l.TraceEnabled() {
			l.Trace("line",
				slog.Int("number", line.Number),
				slog.String("kind", line.Kind.String()))
		}
		lines = append(lines, line)
	}
	l.Log(slog.LevelDebug, "classification complete", slog.Int("lines", len(lines)))
	return lines, nil
}

func (l *Lexer) classifyLine(text string, number int) (Line, error) {
	data, comment := splitComment(text)
	data = strings.TrimSpace(data)
	line := Line{Number: number, Data: data, Comment: comment}
	if data == "" {
		line.Kind = KindBlank
		return line, nil
	}

	keyword, rest := nextWord(data)
	switch strings.ToLower(keyword) {
	case "block":
		return l.classifyBlockHeader(line, rest)
	case "decay":
		return l.classifyDecayHeader(line, rest)
	default:
		line.Kind = KindData
		return line, nil
	}
}

func (l *Lexer) classifyBlockHeader(line Line, rest string) (Line, error) {
	line.Kind = KindBlockHeader
	name, rest := nextWord(rest)
	if name == "" {
		return line, headerError(line.Number, "", "missing block name", nil)
	}
	line.Name = name

	scale, err := parseScale(line.Number, name, rest)
	if err != nil {
		return line, err
	}
	line.Scale = scale
	return line, nil
}

// parseScale reads the optional Q= annotation after the block name.
// Accepted spellings: "Q= 1.0", "Q = 1.0" and the attached "Q=1.0".
func parseScale(number int, name, rest string) (*float64, error) {
	word, rest := nextWord(rest)
	if word == "" {
		return nil, nil
	}

	var scaleText string
	lower := strings.ToLower(word)
	switch {
	case lower == "q=":
		scaleText, rest = nextWord(rest)
	case lower == "q":
		eq, after := nextWord(rest)
		if eq != "=" {
			return nil, headerError(number, name, "expected Q= after block name", nil)
		}
		scaleText, rest = nextWord(after)
	case strings.HasPrefix(lower, "q="):
		scaleText = word[len("q="):]
	default:
		return nil, headerError(number, name, "unexpected token "+strconv.Quote(word)+" after block name", nil)
	}

	if scaleText == "" {
		return nil, headerError(number, name, "missing scale after Q=", nil)
	}
	scale, err := strconv.ParseFloat(scaleText, 64)
	if err != nil {
		return nil, headerError(number, name, "invalid scale "+strconv.Quote(scaleText), err)
	}
	if trailing, _ := nextWord(rest); trailing != "" {
		return nil, headerError(number, name, "unexpected token "+strconv.Quote(trailing)+" after scale", nil)
	}
	return &scale, nil
}

func (l *Lexer) classifyDecayHeader(line Line, rest string) (Line, error) {
	line.Kind = KindDecayHeader
	idText, rest := nextWord(rest)
	if idText == "" {
		return line, headerError(line.Number, "", "missing pdg id in decay header", nil)
	}
	pdgID, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		return line, headerError(line.Number, "", "invalid pdg id "+strconv.Quote(idText), err)
	}
	line.PDGID = pdgID

	widthText, rest := nextWord(rest)
	if widthText == "" {
		return line, headerError(line.Number, "", "missing width in decay header", nil)
	}
	width, err := strconv.ParseFloat(widthText, 64)
	if err != nil {
		return line, headerError(line.Number, "", "invalid width "+strconv.Quote(widthText), err)
	}
	line.Width = width

	if trailing, _ := nextWord(rest); trailing != "" {
		return line, headerError(line.Number, "", "unexpected token "+strconv.Quote(trailing)+" after width", nil)
	}
	return line, nil
}

func headerError(number int, name, msg string, cause error) error {
	return &slha.StructuralError{
		Kind: slha.MalformedHeader,
		Line: number,
		Name: name,
		Msg:  msg,
		Err:  cause,
	}
}

// splitComment cuts the line at the first '#'. The comment keeps the
// marker and everything after it, verbatim.
func splitComment(text string) (data, comment string) {
	if i := strings.IndexByte(text, '#'); i >= 0 {
		return text[:i], text[i:]
	}
	return text, ""
}

// nextWord returns the first whitespace-delimited token and the remainder.
func nextWord(text string) (word, rest string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ""
	}
	if i := strings.IndexAny(text, " \t"); i >= 0 {
		return text[:i], text[i:]
	}
	return text, ""
}
