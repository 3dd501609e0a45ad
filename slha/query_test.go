package slha

import (
	"errors"
	"testing"
)

func buildDoc(t *testing.T, blocks ...*RawBlock) *Document {
	t.Helper()
	b := NewBuilder()
	for _, rb := range blocks {
		b.AddBlock(rb)
	}
	return b.Document()
}

func queryErr(t *testing.T, err error) *QueryError {
	t.Helper()
	if err == nil {
		t.Fatal("expected a query error, got nil")
	}
	var qerr *QueryError
	if !errors.As(err, &qerr) {
		t.Fatalf("expected *QueryError, got %T: %v", err, err)
	}
	return qerr
}

func TestGetBlockAbsent(t *testing.T) {
	doc := buildDoc(t)
	b, err := GetBlock[int, float64](doc, "mass")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if b != nil {
		t.Errorf("expected nil for an absent block, got %v", b)
	}
}

func TestGetBlockSingleOccurrence(t *testing.T) {
	doc := buildDoc(t, rawBlock("MASS", nil, "6 173.2"))
	b, err := GetBlock[int, float64](doc, "Mass")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if v, ok := b.Get(6); !ok || v != 173.2 {
		t.Errorf("Get(6): got %v, %v", v, ok)
	}
}

func TestGetBlockRejectsRepeats(t *testing.T) {
	doc := buildDoc(t,
		rawBlock("ye", scaleOf(1.0), "3 3 0.1"),
		rawBlock("ye", scaleOf(2.0), "3 3 0.2"))
	_, err := GetBlock[[2]int, float64](doc, "ye")
	qerr := queryErr(t, err)
	if qerr.Kind != MultipleOccurrencesForSingleGet {
		t.Errorf("kind: got %v", qerr.Kind)
	}
	if qerr.Count != 2 {
		t.Errorf("count: got %d", qerr.Count)
	}
}

func TestGetBlocksDistinctScales(t *testing.T) {
	doc := buildDoc(t,
		rawBlock("ye", scaleOf(1.0), "3 3 0.1"),
		rawBlock("ye", scaleOf(2.0), "3 3 0.2"))
	occ, err := GetBlocks[[2]int, float64](doc, "ye")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(occ) != 2 {
		t.Fatalf("occurrences: got %d", len(occ))
	}
	if v, _ := occ[0].Get([2]int{3, 3}); v != 0.1 {
		t.Errorf("first occurrence: got %v", v)
	}
	if v, _ := occ[1].Get([2]int{3, 3}); v != 0.2 {
		t.Errorf("second occurrence: got %v", v)
	}
}

func TestGetBlocksDuplicateScale(t *testing.T) {
	doc := buildDoc(t,
		rawBlock("ye", scaleOf(1.0), "3 3 0.1"),
		rawBlock("ye", scaleOf(1.0), "3 3 0.2"))
	_, err := GetBlocks[[2]int, float64](doc, "ye")
	qerr := queryErr(t, err)
	if qerr.Kind != DuplicateScaleAmongRepeats {
		t.Errorf("kind: got %v", qerr.Kind)
	}
	if qerr.Scale == nil || *qerr.Scale != 1.0 {
		t.Errorf("scale: got %v", qerr.Scale)
	}
}

func TestGetBlocksTwoScaleless(t *testing.T) {
	doc := buildDoc(t,
		rawBlock("dup", nil, "1 0.1"),
		rawBlock("dup", nil, "1 0.2"))
	_, err := GetBlocks[int, float64](doc, "dup")
	qerr := queryErr(t, err)
	if qerr.Kind != DuplicateScaleAmongRepeats {
		t.Errorf("kind: got %v", qerr.Kind)
	}
	if qerr.Scale != nil {
		t.Errorf("scale: got %v, want nil", *qerr.Scale)
	}
}

func TestGetBlocksMixedScalePresence(t *testing.T) {
	// One occurrence with a scale and one without are distinguishable.
	doc := buildDoc(t,
		rawBlock("mix", nil, "1 0.1"),
		rawBlock("mix", scaleOf(1.0), "1 0.2"))
	occ, err := GetBlocks[int, float64](doc, "mix")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(occ) != 2 {
		t.Errorf("occurrences: got %d", len(occ))
	}
}

func TestGetBlocksUnchecked(t *testing.T) {
	doc := buildDoc(t,
		rawBlock("dup", nil, "1 0.1"),
		rawBlock("dup", nil, "1 0.2"))
	occ, err := GetBlocksUnchecked[int, float64](doc, "dup")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(occ) != 2 {
		t.Fatalf("occurrences: got %d", len(occ))
	}
}

func TestGetBlocksReportsOccurrence(t *testing.T) {
	doc := buildDoc(t,
		rawBlock("ye", scaleOf(1.0), "3 3 0.1"),
		rawBlock("ye", scaleOf(2.0), "3 3 broken"))
	_, err := GetBlocks[[2]int, float64](doc, "ye")
	derr := decodeErr(t, err)
	if derr.Occurrence != 1 {
		t.Errorf("occurrence: got %d, want 1", derr.Occurrence)
	}
}

func TestGetBlockSingle(t *testing.T) {
	doc := buildDoc(t, rawBlock("alpha", nil, "-1.13e-01"))
	b, err := GetBlockSingle[float64](doc, "ALPHA")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if b.Value != -1.13e-01 {
		t.Errorf("value: got %v", b.Value)
	}
}

func TestGetBlockStr(t *testing.T) {
	doc := buildDoc(t, rawBlock("flavour", nil, "particle mass 173.2"))
	b, err := GetBlockStr[float64](doc, "flavour")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if v, ok := b.Get("particle", "mass"); !ok || v != 173.2 {
		t.Errorf("Get: got %v, %v", v, ok)
	}
}

func TestGetBlockStrsUnchecked(t *testing.T) {
	doc := buildDoc(t,
		rawBlock("spinfo", nil, "1 SoftSUSY"),
		rawBlock("spinfo", nil, "2 3.7.4"))
	occ, err := GetBlockStrsUnchecked[string](doc, "spinfo")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(occ) != 2 {
		t.Errorf("occurrences: got %d", len(occ))
	}
}

func TestScaleUniquenessOrderIndependent(t *testing.T) {
	raws := []*RawBlock{
		rawBlock("q", scaleOf(2.0)),
		rawBlock("q", scaleOf(1.0)),
		rawBlock("q", scaleOf(2.0)),
	}
	if err := ScaleUniqueness("q", raws); err == nil {
		t.Error("expected a duplicate-scale error")
	}
	if err := ScaleUniqueness("q", raws[:2]); err != nil {
		t.Errorf("distinct scales rejected: %v", err)
	}
}
