// Package bind populates Go structs from a parsed SLHA document.
//
// Each exported struct field maps to one block lookup. The block name comes
// from the `slha` struct tag, defaulting to the lowercased field name. The
// field type selects the lookup: a plain shape value is a required single
// block, a pointer makes the block optional, and a slice reads every
// occurrence of a repeated block (scale-checked unless the tag carries the
// "unchecked" option).
//
//	type Point struct {
//	    ModSel  slha.Block[int, int]               // required
//	    MinPar  *slha.Block[int, float64]          // optional
//	    Yu      []slha.Block[[2]int, float64]      `slha:"yu"`
//	    SPInfo  *slha.Block[int, string]           `slha:"spinfo"`
//	    Scales  []slha.Block[int, float64]         `slha:"msoft,unchecked"`
//	}
//
//	var p Point
//	if err := bind.Fill(doc, &p); err != nil { ... }
package bind

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/golangslha/goslha/slha"
)

// ErrMissingBlock is returned (wrapped) when a required block has no
// occurrence in the document.
var ErrMissingBlock = errors.New("required block not found")

var unmarshalerType = reflect.TypeOf((*slha.BlockUnmarshaler)(nil)).Elem()

// Fill populates target, which must be a non-nil pointer to a struct, from
// the document. Errors are tagged with the field and block name; the first
// failing field aborts.
func Fill(doc *slha.Document, target any) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("bind: target must be a non-nil pointer to a struct, got %T", target)
	}

	structVal := v.Elem()
	structType := structVal.Type()
	for i := range structType.NumField() {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}
		name, unchecked, skip := fieldBlockName(field)
		if skip {
			continue
		}
		if err := fillField(doc, structVal.Field(i), field, name, unchecked); err != nil {
			return fmt.Errorf("bind: field %s (block %q): %w", field.Name, name, err)
		}
	}
	return nil
}

// fieldBlockName resolves the block name and options for a struct field.
func fieldBlockName(field reflect.StructField) (name string, unchecked, skip bool) {
	tag := field.Tag.Get("slha")
	if tag == "-" {
		return "", false, true
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = strings.ToLower(field.Name)
	}
	for opt := range strings.SplitSeq(opts, ",") {
		if opt == "unchecked" {
			unchecked = true
		}
	}
	return name, unchecked, false
}

func fillField(doc *slha.Document, val reflect.Value, field reflect.StructField, name string, unchecked bool) error {
	switch {
	case isShape(field.Type):
		return fillRequired(doc, val, name)
	case field.Type.Kind() == reflect.Pointer && isShape(field.Type.Elem()):
		return fillOptional(doc, val, name)
	case field.Type.Kind() == reflect.Slice && isShape(field.Type.Elem()):
		return fillRepeated(doc, val, name, unchecked)
	default:
		return fmt.Errorf("unsupported field type %s", field.Type)
	}
}

// isShape reports whether *T implements slha.BlockUnmarshaler.
func isShape(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && reflect.PointerTo(t).Implements(unmarshalerType)
}

func fillRequired(doc *slha.Document, val reflect.Value, name string) error {
	raw, err := doc.SingleRawBlock(name)
	if err != nil {
		return err
	}
	if raw == nil {
		return ErrMissingBlock
	}
	return decodeInto(val.Addr(), raw)
}

func fillOptional(doc *slha.Document, val reflect.Value, name string) error {
	raw, err := doc.SingleRawBlock(name)
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	out := reflect.New(val.Type().Elem())
	if err := decodeInto(out, raw); err != nil {
		return err
	}
	val.Set(out)
	return nil
}

func fillRepeated(doc *slha.Document, val reflect.Value, name string, unchecked bool) error {
	raws := doc.RawBlocks(name)
	if !unchecked {
		if err := slha.ScaleUniqueness(name, raws); err != nil {
			return err
		}
	}
	if len(raws) == 0 {
		return nil
	}
	out := reflect.MakeSlice(val.Type(), 0, len(raws))
	for i, raw := range raws {
		elem := reflect.New(val.Type().Elem())
		if err := decodeInto(elem, raw); err != nil {
			var derr *slha.DecodeError
			if errors.As(err, &derr) {
				derr.Occurrence = i
			}
			return err
		}
		out = reflect.Append(out, elem.Elem())
	}
	val.Set(out)
	return nil
}

func decodeInto(ptr reflect.Value, raw *slha.RawBlock) error {
	return ptr.Interface().(slha.BlockUnmarshaler).UnmarshalBlock(raw)
}
