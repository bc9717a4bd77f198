package pugrest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDomainRoundTrip(t *testing.T) {
	for d := DomainCompound; d <= DomainPeriodicTable; d++ {
		got, err := ParseDomain(d.String())
		require.NoError(t, err, d.String())
		assert.Equal(t, d, got)
	}
	_, err := ParseDomain("molecule")
	assert.ErrorIs(t, err, ErrUnknownVariant)

	_, err = ParseDomain("Compound")
	assert.ErrorIs(t, err, ErrUnknownVariant, "matching is case sensitive")
}

func TestParseNamespace(t *testing.T) {
	tests := []struct {
		domain Domain
		in     string
		want   Namespace
	}{
		{DomainCompound, "cid", CompoundCID},
		{DomainCompound, "smiles", CompoundSMILES},
		{DomainCompound, "inchikey", CompoundInChIKey},
		{DomainCompound, "xref/rn", CompoundXRef{Type: XRefRN}},
		{DomainCompound, "similarity/smiles", StructureSearch{Kind: Similarity, Input: StructureSMILES}},
		{DomainCompound, "fastsubstructure/smarts", FastSearch{Kind: FastSubstructure, Input: FastSMARTS}},
		{DomainCompound, "fastformula", FastSearch{Kind: FastFormula, Input: FastNone}},
		{DomainSubstance, "sid", SubstanceSID},
		{DomainSubstance, "xref/patentid", SubstanceXRef{Type: XRefPatentID}},
		{DomainSubstance, "sourceid/DTP.NCI", SourceID{Source: "DTP.NCI"}},
		{DomainSubstance, "sourceall/ChemIDplus", SourceAll{Source: "ChemIDplus"}},
		{DomainAssay, "aid", AssayAID},
		{DomainAssay, "type/confirmatory", AssayTypeConfirmatory},
		{DomainAssay, "target/genesymbol", AssayTarget{Kind: TargetGeneSymbol}},
		{DomainAssay, "activity/EC50", AssayActivity{Column: "EC50"}},
		{DomainGene, "geneid", GeneID},
		{DomainProtein, "gi", ProteinGI},
		{DomainPathway, "pwacc", PathwayAccession},
		{DomainTaxonomy, "taxid", TaxonomyTaxID},
		{DomainCell, "cellacc", CellAccession},
	}
	for _, tt := range tests {
		t.Run(tt.domain.String()+"/"+tt.in, func(t *testing.T) {
			got, err := ParseNamespace(tt.domain, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String(), "round trip")
			assert.True(t, got.CompatibleWith(tt.domain))
		})
	}

	_, err := ParseNamespace(DomainCompound, "sid")
	assert.ErrorIs(t, err, ErrUnknownVariant, "namespaces do not cross domains")

	got, err := ParseNamespace(DomainSourcesAssay, "")
	require.NoError(t, err)
	assert.Equal(t, NoNamespace{}, got)
}

func TestParseOperation(t *testing.T) {
	tests := []struct {
		domain Domain
		in     string
		want   Operation
	}{
		{DomainCompound, "record", CompoundRecord},
		{DomainCompound, "synonyms", CompoundSynonyms},
		{DomainCompound, "conformers", CompoundConformers},
		{DomainCompound, "property/MolecularWeight,XLogP", Properties(MolecularWeight, XLogP)},
		{DomainCompound, "xrefs/registryid,rn", XRefs{Types: []XRef{XRefRegistryID, XRefRN}}},
		{DomainSubstance, "assaysummary", SubstanceAssaySummary},
		{DomainSubstance, "xrefs/sourcename", XRefs{Types: []XRef{XRefSourceName}}},
		{DomainAssay, "concise", AssayConcise},
		{DomainAssay, "doseresponse/sid", AssayDoseResponse},
		{DomainAssay, "targets/proteingi", AssayTargets{Kind: TargetGI}},
		{DomainGene, "pwaccs", GenePathwayAccessions},
		{DomainProtein, "summary", ProteinSummary},
		{DomainPathway, "cids", PathwayCIDs},
		{DomainTaxonomy, "aids", TaxonomyAIDs},
		{DomainCell, "summary", CellSummary},
	}
	for _, tt := range tests {
		t.Run(tt.domain.String()+"/"+tt.in, func(t *testing.T) {
			got, err := ParseOperation(tt.domain, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String(), "round trip")
		})
	}

	op, err := ParseOperation(DomainCompound, "")
	require.NoError(t, err)
	assert.Equal(t, NoOperation{}, op)

	_, err = ParseOperation(DomainCompound, "concise")
	assert.ErrorIs(t, err, ErrUnknownVariant)

	_, err = ParseOperation(DomainCompound, "RECORD")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestParsePropertyTagAliases(t *testing.T) {
	assert.Equal(t, MolecularWeight, ParsePropertyTag("molecular_weight"))
	assert.Equal(t, SMILES, ParsePropertyTag("smiles"))
	assert.Equal(t, TPSA, ParsePropertyTag("tpsa"))
	assert.Equal(t, ConformerModelRMSD3D, ParsePropertyTag("conformer_model_rmsd_3_d"))

	// Unknown tags pass through so future API additions keep working.
	assert.Equal(t, PropertyTag("BrandNewProperty"), ParsePropertyTag("BrandNewProperty"))
}

func TestParseOutputFormat(t *testing.T) {
	for f := JSON; f <= TXT; f++ {
		got, err := ParseOutputFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseOutputFormat("json")
	assert.ErrorIs(t, err, ErrUnknownVariant)

	var zero OutputFormat
	assert.Equal(t, JSON, zero, "JSON is the default output")
}

func TestParseXRefList(t *testing.T) {
	types, err := parseXRefList("registryid,rn,pubmedid")
	require.NoError(t, err)
	assert.Equal(t, []XRef{XRefRegistryID, XRefRN, XRefPubMedID}, types)

	_, err = parseXRefList("registryid,bogus")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}
