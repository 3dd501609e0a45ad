package goslha_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangslha/goslha"
)

const spectrum = `# SUSY Les Houches Accord - example spectrum
BLOCK MODSEL  # Select model
 1 1   # mSUGRA
BLOCK SMINPUTS   # Standard Model inputs
 1 1.279340000e+02   # alpha^(-1) SM MSbar(MZ)
 5 4.250000000e+00   # mb(mb) SM MSbar
 6 1.732000000e+02   # mtop(pole)
BLOCK MINPAR  # Input parameters
 3 1.000000000e+01   # tanb
BLOCK MASS   # Mass spectrum
#  PDG code      mass
        25  1.251000000e+02   # h
        35  3.935270000e+02   # H
      1000021  6.077137030e+02   # ~g
BLOCK ALPHA   # Effective Higgs mixing angle
          -1.138252240e-01   # alpha
BLOCK ye Q=  4.64649125e+02
 3  3 1.00434e-01   # Ytau(Q)MSSM
BLOCK ye Q=  1.00000000e+03
 3  3 9.97405e-02
BLOCK SPINFO  # Program information
 1 SoftSUSY      # spectrum calculator
 2 3.7.4         # version number
DECAY 6 1.35
 1.000000000e+00 2 5 24   # t -> b W+
DECAY 25 4.100000000e-03
 5.770000000e-01 2 5 -5
 2.150000000e-01 2 24 -24
`

func parseSpectrum(t *testing.T) *goslha.Document {
	t.Helper()
	doc, err := goslha.Parse(spectrum)
	require.NoError(t, err)
	return doc
}

func TestParseIsDeterministic(t *testing.T) {
	a := parseSpectrum(t)
	b := parseSpectrum(t)
	require.Equal(t, a.BlockNames(), b.BlockNames())
	require.Equal(t, a.DecayIDs(), b.DecayIDs())
	for _, name := range a.BlockNames() {
		require.Equal(t, a.RawBlocks(name), b.RawBlocks(name), "block %s", name)
	}
}

func TestMassBlock(t *testing.T) {
	doc := parseSpectrum(t)
	mass, err := goslha.GetBlock[int64, float64](doc, "MASS")
	require.NoError(t, err)
	require.NotNil(t, mass)
	assert.Nil(t, mass.Scale)
	assert.Len(t, mass.Map, 3)

	h, ok := mass.Get(25)
	require.True(t, ok)
	assert.Equal(t, 125.1, h)

	gluino, ok := mass.Get(1000021)
	require.True(t, ok)
	assert.InDelta(t, 607.7137030, gluino, 1e-9)
}

func TestRepeatedBlockWithScales(t *testing.T) {
	doc := parseSpectrum(t)

	// A singular lookup refuses the repeated block.
	_, err := goslha.GetBlock[[2]int, float64](doc, "ye")
	var qerr *goslha.QueryError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, goslha.MultipleOccurrencesForSingleGet, qerr.Kind)
	assert.Equal(t, 2, qerr.Count)

	occ, err := goslha.GetBlocks[[2]int, float64](doc, "ye")
	require.NoError(t, err)
	require.Len(t, occ, 2)
	assert.InDelta(t, 464.649125, *occ[0].Scale, 1e-6)
	assert.InDelta(t, 1000.0, *occ[1].Scale, 1e-6)

	ytau, ok := occ[0].Get([2]int{3, 3})
	require.True(t, ok)
	assert.InDelta(t, 0.100434, ytau, 1e-9)
}

func TestAlphaBlockSingle(t *testing.T) {
	doc := parseSpectrum(t)
	alpha, err := goslha.GetBlockSingle[float64](doc, "alpha")
	require.NoError(t, err)
	require.NotNil(t, alpha)
	assert.InDelta(t, -0.113825224, alpha.Value, 1e-12)
}

func TestSpinfoAsStrings(t *testing.T) {
	doc := parseSpectrum(t)
	info, err := goslha.GetBlock[int, string](doc, "spinfo")
	require.NoError(t, err)
	name, ok := info.Get(1)
	require.True(t, ok)
	assert.Equal(t, "SoftSUSY", name)
}

func TestDecayTables(t *testing.T) {
	doc := parseSpectrum(t)
	require.Equal(t, []int64{6, 25}, doc.DecayIDs())

	top, err := doc.Decay(6)
	require.NoError(t, err)
	require.NotNil(t, top)
	assert.Equal(t, 1.35, top.Width)
	require.Len(t, top.Decays, 1)
	assert.Equal(t, 1.0, top.Decays[0].BranchingRatio)
	assert.Equal(t, []int64{5, 24}, top.Decays[0].Daughters)

	higgs, err := doc.Decay(25)
	require.NoError(t, err)
	require.Len(t, higgs.Decays, 2)
	assert.Equal(t, []int64{5, -5}, higgs.Decays[0].Daughters)

	absent, err := doc.Decay(37)
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestDaughterCountMismatch(t *testing.T) {
	doc, err := goslha.Parse("DECAY 6 1.35\n 1.0 3 5 24\n")
	require.NoError(t, err)
	_, err = doc.Decay(6)
	var derr *goslha.DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, goslha.DaughterCountMismatch, derr.Kind)
}

func TestDuplicateDecayIsFatal(t *testing.T) {
	_, err := goslha.Parse("DECAY 6 1.35\nDECAY 25 0.004\nDECAY 6 1.40\n")
	var serr *goslha.StructuralError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, goslha.DuplicateDecayRecord, serr.Kind)
	assert.Equal(t, int64(6), serr.PDGID)
}

func TestMalformedHeaderIsFatal(t *testing.T) {
	_, err := goslha.Parse("BLOCK MASS\n 6 173.2\nBLOCK\n")
	var serr *goslha.StructuralError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, goslha.MalformedHeader, serr.Kind)
	assert.Equal(t, 3, serr.Line)
}

func TestEmptyDocument(t *testing.T) {
	doc, err := goslha.Parse("")
	require.NoError(t, err)
	assert.Empty(t, doc.BlockNames())
	assert.Empty(t, doc.DecayIDs())

	mass, err := goslha.GetBlock[int, float64](doc, "mass")
	require.NoError(t, err)
	assert.Nil(t, mass)
}

func TestScalelessRepeats(t *testing.T) {
	doc, err := goslha.Parse("BLOCK dup\n 1 0.1\nBLOCK dup\n 1 0.2\n")
	require.NoError(t, err)

	_, err = goslha.GetBlocks[int, float64](doc, "dup")
	var qerr *goslha.QueryError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, goslha.DuplicateScaleAmongRepeats, qerr.Kind)

	occ, err := goslha.GetBlocksUnchecked[int, float64](doc, "dup")
	require.NoError(t, err)
	require.Len(t, occ, 2)
	first, _ := occ[0].Get(1)
	second, _ := occ[1].Get(1)
	assert.Equal(t, 0.1, first)
	assert.Equal(t, 0.2, second)
}

func TestDecodeErrorsAreLazy(t *testing.T) {
	// A broken data line does not fail Parse; it surfaces when the block
	// is decoded with an incompatible shape.
	doc, err := goslha.Parse("BLOCK SPINFO\n 1 SoftSUSY\n")
	require.NoError(t, err)

	_, err = goslha.GetBlock[int, float64](doc, "spinfo")
	var derr *goslha.DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, goslha.UnparsableScalar, derr.Kind)

	// The same document still decodes with the right value type.
	info, err := goslha.GetBlock[int, string](doc, "spinfo")
	require.NoError(t, err)
	require.NotNil(t, info)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: goslha.LevelTrace,
	}))
	_, err := goslha.Parse(spectrum, goslha.WithLogger(logger))
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "component=lexer")
	assert.Contains(t, out, "component=parser")
}
