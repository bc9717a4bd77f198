package pubchem

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexUintsAcceptsScalarAndArray(t *testing.T) {
	var scalar struct {
		CID FlexUints `json:"CID"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"CID":2244}`), &scalar))
	assert.Equal(t, FlexUints{2244}, scalar.CID)

	var array struct {
		CID FlexUints `json:"CID"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"CID":[2244,962]}`), &array))
	assert.Equal(t, FlexUints{2244, 962}, array.CID)

	var bad struct {
		CID FlexUints `json:"CID"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"CID":"aspirin"}`), &bad))
}

func TestDecodePropertyTable(t *testing.T) {
	body := []byte(`{"PropertyTable":{"Properties":[
		{"CID":2244,"MolecularWeight":"180.16","IUPACName":"2-acetyloxybenzoic acid","HBondDonorCount":1},
		{"CID":962,"MolecularWeight":"18.015","IUPACName":"oxidane","HBondDonorCount":1}
	]}}`)

	rows, err := DecodePropertyTable(body)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, uint32(2244), rows[0].CID())
	assert.Equal(t, "180.16", rows[0]["MolecularWeight"])
	assert.Equal(t, float64(1), rows[0]["HBondDonorCount"])
	assert.Equal(t, "oxidane", rows[1]["IUPACName"])

	_, err = DecodePropertyTable([]byte("not json"))
	assert.Error(t, err)
}

func TestDecodeInformationListShapes(t *testing.T) {
	syns, err := DecodeInformationList([]byte(`{"InformationList":{"Information":[{"CID":2244,"Synonym":["aspirin"]}]}}`))
	require.NoError(t, err)
	require.Len(t, syns.Information, 1)
	assert.Equal(t, FlexUints{2244}, syns.Information[0].CID)
	assert.Empty(t, syns.SourceName)

	sources, err := DecodeInformationList([]byte(`{"InformationList":{"SourceName":["ChemIDplus"]}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"ChemIDplus"}, sources.SourceName)
	assert.Empty(t, sources.Information)
}

func TestDecodeIdentifierList(t *testing.T) {
	list, err := DecodeIdentifierList([]byte(`{"IdentifierList":{"CID":[2244,962]}}`))
	require.NoError(t, err)
	assert.Equal(t, []uint32{2244, 962}, list.CID)
	assert.Empty(t, list.SID)
}

func TestDecodeWaiting(t *testing.T) {
	w := DecodeWaiting([]byte(`{"Waiting":{"ListKey":"2424271748649388479"}}`))
	require.NotNil(t, w)
	assert.Equal(t, ListKey("2424271748649388479"), w.ListKey)

	w = DecodeWaiting([]byte(`{"Waiting":{"ListKey":12345}}`))
	require.NotNil(t, w)
	assert.Equal(t, ListKey("12345"), w.ListKey)

	assert.Nil(t, DecodeWaiting([]byte(`{"IdentifierList":{"CID":[1]}}`)))
	assert.Nil(t, DecodeWaiting([]byte(`garbage`)))
}

func TestFaultErrorFormatting(t *testing.T) {
	err := &FaultError{
		Code:    "PUGREST.BadRequest",
		Message: "Unable to standardize the given structure",
		Details: []string{"error on line 1"},
	}
	assert.Equal(t, "pubchem fault PUGREST.BadRequest: Unable to standardize the given structure (error on line 1)", err.Error())

	assert.Nil(t, sniffFault([]byte(`{"IdentifierList":{"CID":[1]}}`)))
	assert.Nil(t, sniffFault([]byte(`<xml/>`)))
}
