package goslha

import "github.com/golangslha/goslha/slha"

// Type aliases for the public API - all types come from the slha subpackage.

// Document is a fully parsed SLHA file.
type Document = slha.Document

// RawLine is one data line of a block or decay section.
type RawLine = slha.RawLine

// RawBlock is one undecoded occurrence of a named block.
type RawBlock = slha.RawBlock

// RawDecayRecord is a decay table before typed decoding.
type RawDecayRecord = slha.RawDecayRecord

// Block is a decoded fixed-key block.
type Block[K slha.Key, V slha.Value] = slha.Block[K, V]

// BlockSingle is a decoded single-value block.
type BlockSingle[V slha.Value] = slha.BlockSingle[V]

// BlockStr is a decoded block keyed by raw string tokens.
type BlockStr[V slha.Value] = slha.BlockStr[V]

// DecayTable is a decoded decay table.
type DecayTable = slha.DecayTable

// Decay is one channel of a decay table.
type Decay = slha.Decay

// BlockUnmarshaler is implemented by the block shapes.
type BlockUnmarshaler = slha.BlockUnmarshaler

// StructuralError is a fatal document-build error.
type StructuralError = slha.StructuralError

// DecodeError is a typed-decode failure scoped to one requested value.
type DecodeError = slha.DecodeError

// QueryError is a block-resolution failure.
type QueryError = slha.QueryError

// StructuralError kinds.
const (
	MalformedHeader      = slha.MalformedHeader
	DuplicateDecayRecord = slha.DuplicateDecayRecord
	UnterminatedSection  = slha.UnterminatedSection
)

// DecodeError kinds.
const (
	MissingField                 = slha.MissingField
	ExtraField                   = slha.ExtraField
	UnparsableScalar             = slha.UnparsableScalar
	DuplicateKeyInBlock          = slha.DuplicateKeyInBlock
	WrongLineCountForSingleValue = slha.WrongLineCountForSingleValue
	DaughterCountMismatch        = slha.DaughterCountMismatch
)

// QueryError kinds.
const (
	MultipleOccurrencesForSingleGet = slha.MultipleOccurrencesForSingleGet
	DuplicateScaleAmongRepeats      = slha.DuplicateScaleAmongRepeats
)

// StrKey builds the canonical BlockStr map key from key tokens.
var StrKey = slha.StrKey

// GetBlock decodes the single occurrence of a fixed-key block.
func GetBlock[K slha.Key, V slha.Value](d *Document, name string) (*Block[K, V], error) {
	return slha.GetBlock[K, V](d, name)
}

// GetBlocks decodes every occurrence of a fixed-key block, requiring
// pairwise distinct scales.
func GetBlocks[K slha.Key, V slha.Value](d *Document, name string) ([]*Block[K, V], error) {
	return slha.GetBlocks[K, V](d, name)
}

// GetBlocksUnchecked decodes every occurrence of a fixed-key block without
// the scale-uniqueness check.
func GetBlocksUnchecked[K slha.Key, V slha.Value](d *Document, name string) ([]*Block[K, V], error) {
	return slha.GetBlocksUnchecked[K, V](d, name)
}

// GetBlockSingle decodes the single occurrence of a single-value block.
func GetBlockSingle[V slha.Value](d *Document, name string) (*BlockSingle[V], error) {
	return slha.GetBlockSingle[V](d, name)
}

// GetBlockSingles decodes every occurrence of a single-value block,
// requiring pairwise distinct scales.
func GetBlockSingles[V slha.Value](d *Document, name string) ([]*BlockSingle[V], error) {
	return slha.GetBlockSingles[V](d, name)
}

// GetBlockSinglesUnchecked decodes every occurrence of a single-value
// block without the scale-uniqueness check.
func GetBlockSinglesUnchecked[V slha.Value](d *Document, name string) ([]*BlockSingle[V], error) {
	return slha.GetBlockSinglesUnchecked[V](d, name)
}

// GetBlockStr decodes the single occurrence of a string-keyed block.
func GetBlockStr[V slha.Value](d *Document, name string) (*BlockStr[V], error) {
	return slha.GetBlockStr[V](d, name)
}

// GetBlockStrs decodes every occurrence of a string-keyed block, requiring
// pairwise distinct scales.
func GetBlockStrs[V slha.Value](d *Document, name string) ([]*BlockStr[V], error) {
	return slha.GetBlockStrs[V](d, name)
}

// GetBlockStrsUnchecked decodes every occurrence of a string-keyed block
// without the scale-uniqueness check.
func GetBlockStrsUnchecked[V slha.Value](d *Document, name string) ([]*BlockStr[V], error) {
	return slha.GetBlockStrsUnchecked[V](d, name)
}
