package slha

import "errors"

// The Get functions resolve a block name against a Document and decode the
// matching occurrences. They are pure: repeated calls with the same
// arguments yield equal results and never mutate the Document, so a
// Document may be queried from multiple goroutines without locking.
//
// Singular lookups return (nil, nil) when the name is absent, so callers
// can distinguish a missing optional block from a malformed one.

// GetBlock decodes the single occurrence of a fixed-key block. It returns
// (nil, nil) if the name is absent and a QueryError if the block is
// repeated; repeated blocks must be read with GetBlocks.
func GetBlock[K Key, V Value](d *Document, name string) (*Block[K, V], error) {
	return getSingle[Block[K, V]](d, name)
}

// GetBlocks decodes every occurrence of a fixed-key block, in source
// order. Occurrences must carry pairwise distinct scales; two equal scales,
// or two occurrences both lacking one, are a QueryError. Use
// GetBlocksUnchecked for formats that repeat a block without distinguishing
// scales.
func GetBlocks[K Key, V Value](d *Document, name string) ([]*Block[K, V], error) {
	return getRepeated[Block[K, V]](d, name, true)
}

// GetBlocksUnchecked decodes every occurrence of a fixed-key block without
// the scale-uniqueness check.
func GetBlocksUnchecked[K Key, V Value](d *Document, name string) ([]*Block[K, V], error) {
	return getRepeated[Block[K, V]](d, name, false)
}

// GetBlockSingle decodes the single occurrence of a single-value block.
func GetBlockSingle[V Value](d *Document, name string) (*BlockSingle[V], error) {
	return getSingle[BlockSingle[V]](d, name)
}

// GetBlockSingles decodes every occurrence of a single-value block, with
// the scale-uniqueness check.
func GetBlockSingles[V Value](d *Document, name string) ([]*BlockSingle[V], error) {
	return getRepeated[BlockSingle[V]](d, name, true)
}

// GetBlockSinglesUnchecked decodes every occurrence of a single-value
// block without the scale-uniqueness check.
func GetBlockSinglesUnchecked[V Value](d *Document, name string) ([]*BlockSingle[V], error) {
	return getRepeated[BlockSingle[V]](d, name, false)
}

// GetBlockStr decodes the single occurrence of a string-keyed block.
func GetBlockStr[V Value](d *Document, name string) (*BlockStr[V], error) {
	return getSingle[BlockStr[V]](d, name)
}

// GetBlockStrs decodes every occurrence of a string-keyed block, with the
// scale-uniqueness check.
func GetBlockStrs[V Value](d *Document, name string) ([]*BlockStr[V], error) {
	return getRepeated[BlockStr[V]](d, name, true)
}

// GetBlockStrsUnchecked decodes every occurrence of a string-keyed block
// without the scale-uniqueness check.
func GetBlockStrsUnchecked[V Value](d *Document, name string) ([]*BlockStr[V], error) {
	return getRepeated[BlockStr[V]](d, name, false)
}

// ScaleUniqueness checks that the occurrences carry pairwise distinct
// scales, treating an absent scale as one more value that may appear at
// most once. Used by GetBlocks and by raw-level consumers such as the bind
// package.
func ScaleUniqueness(name string, raws []*RawBlock) error {
	for i := range raws {
		for j := range i {
			if sameScale(raws[i].Scale, raws[j].Scale) {
				return &QueryError{
					Kind:  DuplicateScaleAmongRepeats,
					Block: name,
					Count: len(raws),
					Scale: cloneScale(raws[i].Scale),
				}
			}
		}
	}
	return nil
}

func sameScale(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// blockPtr ties a shape value to its pointer-receiver unmarshaler so the
// shared resolution helpers can allocate and decode any shape.
type blockPtr[T any] interface {
	*T
	BlockUnmarshaler
}

func getSingle[T any, PT blockPtr[T]](d *Document, name string) (*T, error) {
	raw, err := d.SingleRawBlock(name)
	if err != nil || raw == nil {
		return nil, err
	}
	var out T
	if err := PT(&out).UnmarshalBlock(raw); err != nil {
		return nil, err
	}
	return &out, nil
}

func getRepeated[T any, PT blockPtr[T]](d *Document, name string, checkScales bool) ([]*T, error) {
	raws := d.RawBlocks(name)
	if checkScales {
		if err := ScaleUniqueness(name, raws); err != nil {
			return nil, err
		}
	}
	out := make([]*T, 0, len(raws))
	for i, raw := range raws {
		var t T
		if err := PT(&t).UnmarshalBlock(raw); err != nil {
			var derr *DecodeError
			if errors.As(err, &derr) {
				derr.Occurrence = i
			}
			return nil, err
		}
		out = append(out, &t)
	}
	return out, nil
}
