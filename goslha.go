// Package goslha parses the SUSY Les Houches Accord (SLHA) text format.
//
// Parse reads a whole SLHA document into an immutable slha.Document; typed
// values are then decoded on demand through the query functions re-exported
// here (GetBlock, GetBlocks, ...) or through the slha package directly.
package goslha

import (
	"log/slog"

	"github.com/golangslha/goslha/internal/lexer"
	"github.com/golangslha/goslha/internal/parser"
	"github.com/golangslha/goslha/internal/types"
	"github.com/golangslha/goslha/slha"
)

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-line classification logging.
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = types.LevelTrace

// Option configures Parse.
type Option func(*parseConfig)

type parseConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(c *parseConfig) { c.logger = logger }
}

// Parse reads an SLHA document from the given text.
//
// The returned Document is complete and read-only; a structural error
// (malformed header, duplicate decay record) aborts parsing and no partial
// Document is returned. Decoding problems inside individual blocks are not
// detected here; they surface when the block is requested.
//
// Example:
//
//	doc, err := goslha.Parse(text)
//	if err != nil {
//	    return err
//	}
//	mass, err := goslha.GetBlock[int, float64](doc, "mass")
func Parse(text string, opts ...Option) (*slha.Document, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	lines, err := lexer.New(text, componentLogger(cfg.logger, "lexer")).Classify()
	if err != nil {
		return nil, err
	}
	return parser.New(componentLogger(cfg.logger, "parser")).Parse(lines)
}

func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("component", component))
}
