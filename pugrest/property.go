package pugrest

import "strings"

// PropertyTag names a compound property in a property-table request.
// The constants cover every property the API documents today; any
// other string passes through verbatim so newly added upstream
// properties work without a release.
type PropertyTag string

const (
	MolecularFormula         PropertyTag = "MolecularFormula"
	MolecularWeight          PropertyTag = "MolecularWeight"
	SMILES                   PropertyTag = "SMILES"
	ConnectivitySMILES       PropertyTag = "ConnectivitySMILES"
	CanonicalSMILES          PropertyTag = "CanonicalSMILES"
	IsomericSMILES           PropertyTag = "IsomericSMILES"
	InChI                    PropertyTag = "InChI"
	InChIKey                 PropertyTag = "InChIKey"
	IUPACName                PropertyTag = "IUPACName"
	XLogP                    PropertyTag = "XLogP"
	ExactMass                PropertyTag = "ExactMass"
	MonoisotopicMass         PropertyTag = "MonoisotopicMass"
	TPSA                     PropertyTag = "TPSA"
	Complexity               PropertyTag = "Complexity"
	Charge                   PropertyTag = "Charge"
	HBondDonorCount          PropertyTag = "HBondDonorCount"
	HBondAcceptorCount       PropertyTag = "HBondAcceptorCount"
	RotatableBondCount       PropertyTag = "RotatableBondCount"
	HeavyAtomCount           PropertyTag = "HeavyAtomCount"
	IsotopeAtomCount         PropertyTag = "IsotopeAtomCount"
	AtomStereoCount          PropertyTag = "AtomStereoCount"
	DefinedAtomStereoCount   PropertyTag = "DefinedAtomStereoCount"
	UndefinedAtomStereoCount PropertyTag = "UndefinedAtomStereoCount"
	BondStereoCount          PropertyTag = "BondStereoCount"
	DefinedBondStereoCount   PropertyTag = "DefinedBondStereoCount"
	UndefinedBondStereoCount PropertyTag = "UndefinedBondStereoCount"
	CovalentUnitCount        PropertyTag = "CovalentUnitCount"
	Volume3D                 PropertyTag = "Volume3D"
	ConformerModelRMSD3D     PropertyTag = "ConformerModelRMSD3D"
	XStericQuadrupole3D      PropertyTag = "XStericQuadrupole3D"
	YStericQuadrupole3D      PropertyTag = "YStericQuadrupole3D"
	ZStericQuadrupole3D      PropertyTag = "ZStericQuadrupole3D"
	FeatureCount3D           PropertyTag = "FeatureCount3D"
	FeatureAcceptorCount3D   PropertyTag = "FeatureAcceptorCount3D"
	FeatureDonorCount3D      PropertyTag = "FeatureDonorCount3D"
	FeatureAnionCount3D      PropertyTag = "FeatureAnionCount3D"
	FeatureCationCount3D     PropertyTag = "FeatureCationCount3D"
	FeatureRingCount3D       PropertyTag = "FeatureRingCount3D"
	FeatureHydrophobeCount3D PropertyTag = "FeatureHydrophobeCount3D"
	EffectiveRotorCount3D    PropertyTag = "EffectiveRotorCount3D"
	ConformerCount3D         PropertyTag = "ConformerCount3D"
	Fingerprint2D            PropertyTag = "Fingerprint2D"
)

// knownPropertyTags maps lower-cased and snake_case spellings to the
// canonical API name, so callers can write "molecular_weight" or
// "molecularweight" interchangeably.
var knownPropertyTags = func() map[string]PropertyTag {
	all := []PropertyTag{
		MolecularFormula, MolecularWeight, SMILES, ConnectivitySMILES,
		CanonicalSMILES, IsomericSMILES, InChI, InChIKey, IUPACName,
		XLogP, ExactMass, MonoisotopicMass, TPSA, Complexity, Charge,
		HBondDonorCount, HBondAcceptorCount, RotatableBondCount,
		HeavyAtomCount, IsotopeAtomCount, AtomStereoCount,
		DefinedAtomStereoCount, UndefinedAtomStereoCount,
		BondStereoCount, DefinedBondStereoCount,
		UndefinedBondStereoCount, CovalentUnitCount, Volume3D,
		ConformerModelRMSD3D, XStericQuadrupole3D, YStericQuadrupole3D,
		ZStericQuadrupole3D, FeatureCount3D, FeatureAcceptorCount3D,
		FeatureDonorCount3D, FeatureAnionCount3D, FeatureCationCount3D,
		FeatureRingCount3D, FeatureHydrophobeCount3D,
		EffectiveRotorCount3D, ConformerCount3D, Fingerprint2D,
	}
	m := make(map[string]PropertyTag, len(all))
	for _, tag := range all {
		m[strings.ToLower(string(tag))] = tag
	}
	return m
}()

// ParsePropertyTag normalizes a property name to its canonical API
// spelling. Known tags match case-insensitively with underscores
// ignored; unknown names pass through unchanged.
func ParsePropertyTag(s string) PropertyTag {
	key := strings.ToLower(strings.ReplaceAll(s, "_", ""))
	if tag, ok := knownPropertyTags[key]; ok {
		return tag
	}
	return PropertyTag(s)
}

// ParsePropertyTags parses a comma-separated list of property names.
func ParsePropertyTags(s string) ([]PropertyTag, error) {
	fields := strings.Split(s, ",")
	tags := make([]PropertyTag, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		tags = append(tags, ParsePropertyTag(f))
	}
	if len(tags) == 0 {
		return nil, ErrUnknownVariant
	}
	return tags, nil
}

// joinPropertyTags comma-joins tags in the given order.
func joinPropertyTags(tags []PropertyTag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}
