package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molbridge/molbridge/pubchem"
)

var testRows = []pubchem.PropertyRecord{
	{"CID": float64(2244), "MolecularWeight": "180.16", "IUPACName": "2-acetyloxybenzoic acid", "HBondDonorCount": float64(1)},
	{"CID": float64(962), "MolecularWeight": "18.015", "IUPACName": "oxidane", "HBondDonorCount": float64(1)},
	{"CID": float64(702), "MolecularWeight": "46.07", "IUPACName": "ethanol", "HBondDonorCount": float64(1)},
}

func TestCompileRejectsBadInput(t *testing.T) {
	_, err := Compile("")
	assert.Error(t, err)

	_, err = Compile("   ")
	assert.Error(t, err)

	_, err = Compile("num(MolecularWeight <")
	assert.Error(t, err)
}

func TestMatchNumericComparison(t *testing.T) {
	f, err := Compile("num(MolecularWeight) < 100")
	require.NoError(t, err)

	ok, err := f.Match(testRows[0])
	require.NoError(t, err)
	assert.False(t, ok, "aspirin is heavier than 100")

	ok, err = f.Match(testRows[1])
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMatchStringHelpers(t *testing.T) {
	f, err := Compile(`contains(IUPACName, "BENZOIC")`)
	require.NoError(t, err)

	ok, err := f.Match(testRows[0])
	require.NoError(t, err)
	assert.True(t, ok, "contains is case insensitive")

	ok, err = f.Match(testRows[2])
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatchUndefinedVariableIsNil(t *testing.T) {
	f, err := Compile("XLogP == nil")
	require.NoError(t, err)

	ok, err := f.Match(testRows[0])
	require.NoError(t, err)
	assert.True(t, ok, "unrequested properties are undefined")
}

func TestMatchRequiresBooleanResult(t *testing.T) {
	f, err := Compile("num(MolecularWeight)")
	require.NoError(t, err)

	_, err = f.Match(testRows[0])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must evaluate to a boolean")
}

func TestApplyPreservesOrder(t *testing.T) {
	f, err := Compile("num(MolecularWeight) < 100")
	require.NoError(t, err)

	out, err := f.Apply(testRows)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, uint32(962), out[0].CID())
	assert.Equal(t, uint32(702), out[1].CID())
}
