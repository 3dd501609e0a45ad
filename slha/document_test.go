package slha

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuilderBlockOrder(t *testing.T) {
	b := NewBuilder()
	b.AddBlock(rawBlock("MASS", nil, "6 173.2"))
	b.AddBlock(rawBlock("SMINPUTS", nil, "1 127.9"))
	b.AddBlock(rawBlock("mass", scaleOf(1.0), "6 172.0"))
	doc := b.Document()

	if want := []string{"mass", "sminputs"}; !reflect.DeepEqual(doc.BlockNames(), want) {
		t.Errorf("names: got %v, want %v", doc.BlockNames(), want)
	}
	occ := doc.RawBlocks("MASS")
	if len(occ) != 2 {
		t.Fatalf("occurrences: got %d", len(occ))
	}
	if occ[0].Name != "MASS" || occ[1].Name != "mass" {
		t.Errorf("spellings: got %q, %q", occ[0].Name, occ[1].Name)
	}
}

func TestBuilderDuplicateDecay(t *testing.T) {
	b := NewBuilder()
	if err := b.AddDecay(rawDecay(6, 1.35)); err != nil {
		t.Fatalf("first AddDecay: %v", err)
	}
	err := b.AddDecay(rawDecay(6, 1.40))
	var serr *StructuralError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *StructuralError, got %T", err)
	}
	if serr.Kind != DuplicateDecayRecord || serr.PDGID != 6 {
		t.Errorf("got kind %v, pdgid %d", serr.Kind, serr.PDGID)
	}
}

func TestSingleRawBlock(t *testing.T) {
	doc := buildDoc(t, rawBlock("alpha", nil, "-0.1"))

	raw, err := doc.SingleRawBlock("ALPHA")
	if err != nil || raw == nil {
		t.Fatalf("present block: got %v, %v", raw, err)
	}

	raw, err = doc.SingleRawBlock("missing")
	if err != nil || raw != nil {
		t.Errorf("absent block: got %v, %v", raw, err)
	}
}

func TestDocumentDecay(t *testing.T) {
	b := NewBuilder()
	if err := b.AddDecay(rawDecay(6, 1.35, "1.0 2 5 24")); err != nil {
		t.Fatalf("AddDecay: %v", err)
	}
	doc := b.Document()

	table, err := doc.Decay(6)
	if err != nil {
		t.Fatalf("Decay(6): %v", err)
	}
	if table.Width != 1.35 {
		t.Errorf("width: got %v", table.Width)
	}

	table, err = doc.Decay(25)
	if err != nil || table != nil {
		t.Errorf("absent decay: got %v, %v", table, err)
	}
}

func TestAccessorsCopy(t *testing.T) {
	doc := buildDoc(t, rawBlock("mass", nil, "6 173.2"))
	names := doc.BlockNames()
	names[0] = "tampered"
	if doc.BlockNames()[0] != "mass" {
		t.Error("BlockNames returned an aliased slice")
	}

	occ := doc.RawBlocks("mass")
	occ[0] = nil
	if doc.RawBlocks("mass")[0] == nil {
		t.Error("RawBlocks returned an aliased slice")
	}
}
