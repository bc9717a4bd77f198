package pugrest

import "strings"

// SubstanceNamespace is a parameterless substance-domain lookup kind.
type SubstanceNamespace int

const (
	// SubstanceSID looks up by PubChem substance id.
	SubstanceSID SubstanceNamespace = iota
	// SubstanceName looks up by deposited name.
	SubstanceName
	// SubstanceListKey resumes an asynchronous result set. Forces POST.
	SubstanceListKey
)

var substanceNamespaceNames = [...]string{
	SubstanceSID:     "sid",
	SubstanceName:    "name",
	SubstanceListKey: "listkey",
}

func (n SubstanceNamespace) String() string {
	if int(n) < len(substanceNamespaceNames) {
		return substanceNamespaceNames[n]
	}
	return ""
}

func (n SubstanceNamespace) Segments() []string { return []string{n.String()} }

func (n SubstanceNamespace) Search() bool { return n == SubstanceListKey }

func (SubstanceNamespace) CompatibleWith(d Domain) bool { return d == DomainSubstance }

func (n SubstanceNamespace) shape() idShape {
	if n == SubstanceSID {
		return shapeNumeric
	}
	return shapeText
}

func (SubstanceNamespace) sealed() {}

// SubstanceXRef looks up substances by a cross-reference value
// (API path: xref/<type>). Forces POST.
type SubstanceXRef struct {
	Type XRef
}

func (n SubstanceXRef) String() string             { return "xref/" + n.Type.String() }
func (n SubstanceXRef) Segments() []string         { return []string{"xref", n.Type.String()} }
func (SubstanceXRef) Search() bool                 { return true }
func (SubstanceXRef) CompatibleWith(d Domain) bool { return d == DomainSubstance }
func (SubstanceXRef) shape() idShape               { return shapeText }
func (SubstanceXRef) sealed()                      {}

// SourceID looks up substances by a depositor's own external id
// (API path: sourceid/<source>). Forces POST because depositor names
// routinely contain spaces and punctuation.
type SourceID struct {
	Source string
}

func (n SourceID) String() string             { return "sourceid/" + n.Source }
func (n SourceID) Segments() []string         { return []string{"sourceid", n.Source} }
func (SourceID) Search() bool                 { return true }
func (SourceID) CompatibleWith(d Domain) bool { return d == DomainSubstance }
func (SourceID) shape() idShape               { return shapeText }
func (SourceID) sealed()                      {}

// SourceAll selects every substance deposited by a source
// (API path: sourceall/<source>). Takes no identifiers.
type SourceAll struct {
	Source string
}

func (n SourceAll) String() string             { return "sourceall/" + n.Source }
func (n SourceAll) Segments() []string         { return []string{"sourceall", n.Source} }
func (SourceAll) Search() bool                 { return false }
func (SourceAll) CompatibleWith(d Domain) bool { return d == DomainSubstance }
func (SourceAll) shape() idShape               { return shapeNone }
func (SourceAll) sealed()                      {}

// AssayNamespace is a parameterless assay-domain lookup kind.
type AssayNamespace int

const (
	// AssayAID looks up by PubChem assay id.
	AssayAID AssayNamespace = iota
	// AssayListKey resumes an asynchronous result set. Forces POST.
	AssayListKey
)

var assayNamespaceNames = [...]string{
	AssayAID:     "aid",
	AssayListKey: "listkey",
}

func (n AssayNamespace) String() string {
	if int(n) < len(assayNamespaceNames) {
		return assayNamespaceNames[n]
	}
	return ""
}

func (n AssayNamespace) Segments() []string { return []string{n.String()} }

func (n AssayNamespace) Search() bool { return n == AssayListKey }

func (AssayNamespace) CompatibleWith(d Domain) bool { return d == DomainAssay }

func (n AssayNamespace) shape() idShape {
	if n == AssayAID {
		return shapeNumeric
	}
	return shapeText
}

func (AssayNamespace) sealed() {}

// AssayType selects assays by screening stage
// (API path: type/<type>). Takes no identifiers.
type AssayType int

const (
	AssayTypeAll AssayType = iota
	AssayTypeConfirmatory
	AssayTypeDoseResponse
	AssayTypeOnHold
	AssayTypePanel
	AssayTypeRNAi
	AssayTypeScreening
	AssayTypeSummary
	AssayTypeCellBased
	AssayTypeBiochemical
	AssayTypeInVivo
	AssayTypeInVitro
	AssayTypeActiveConcentration
)

var assayTypeNames = [...]string{
	AssayTypeAll:                 "all",
	AssayTypeConfirmatory:        "confirmatory",
	AssayTypeDoseResponse:        "doseresponse",
	AssayTypeOnHold:              "onhold",
	AssayTypePanel:               "panel",
	AssayTypeRNAi:                "rnai",
	AssayTypeScreening:           "screening",
	AssayTypeSummary:             "summary",
	AssayTypeCellBased:           "cellbased",
	AssayTypeBiochemical:         "biochemical",
	AssayTypeInVivo:              "invivo",
	AssayTypeInVitro:             "invitro",
	AssayTypeActiveConcentration: "activeconcentrationspecified",
}

func (n AssayType) String() string {
	if int(n) < len(assayTypeNames) {
		return "type/" + assayTypeNames[n]
	}
	return ""
}

func (n AssayType) Segments() []string         { return []string{"type", assayTypeNames[n]} }
func (AssayType) Search() bool                 { return false }
func (AssayType) CompatibleWith(d Domain) bool { return d == DomainAssay }
func (AssayType) shape() idShape               { return shapeNone }
func (AssayType) sealed()                      {}

// AssaySourceAll selects every assay deposited by a source
// (API path: sourceall/<source>). Takes no identifiers.
type AssaySourceAll struct {
	Source string
}

func (n AssaySourceAll) String() string             { return "sourceall/" + n.Source }
func (n AssaySourceAll) Segments() []string         { return []string{"sourceall", n.Source} }
func (AssaySourceAll) Search() bool                 { return false }
func (AssaySourceAll) CompatibleWith(d Domain) bool { return d == DomainAssay }
func (AssaySourceAll) shape() idShape               { return shapeNone }
func (AssaySourceAll) sealed()                      {}

// AssayTargetKind selects what kind of target value the identifiers
// carry in an assay target lookup.
type AssayTargetKind int

const (
	TargetGI AssayTargetKind = iota
	TargetProteinName
	TargetGeneID
	TargetGeneSymbol
	TargetAccession
)

var assayTargetKindNames = [...]string{
	TargetGI:          "gi",
	TargetProteinName: "proteinname",
	TargetGeneID:      "geneid",
	TargetGeneSymbol:  "genesymbol",
	TargetAccession:   "accession",
}

func (k AssayTargetKind) String() string {
	if int(k) < len(assayTargetKindNames) {
		return assayTargetKindNames[k]
	}
	return ""
}

// AssayTarget looks up assays by biological target
// (API path: target/<kind>).
type AssayTarget struct {
	Kind AssayTargetKind
}

func (n AssayTarget) String() string             { return "target/" + n.Kind.String() }
func (n AssayTarget) Segments() []string         { return []string{"target", n.Kind.String()} }
func (AssayTarget) Search() bool                 { return false }
func (AssayTarget) CompatibleWith(d Domain) bool { return d == DomainAssay }

func (n AssayTarget) shape() idShape {
	switch n.Kind {
	case TargetGI, TargetGeneID:
		return shapeNumeric
	}
	return shapeText
}

func (AssayTarget) sealed() {}

// AssayActivity selects assays by activity column name
// (API path: activity/<column>). Takes no identifiers.
type AssayActivity struct {
	Column string
}

func (n AssayActivity) String() string             { return "activity/" + n.Column }
func (n AssayActivity) Segments() []string         { return []string{"activity", n.Column} }
func (AssayActivity) Search() bool                 { return false }
func (AssayActivity) CompatibleWith(d Domain) bool { return d == DomainAssay }
func (AssayActivity) shape() idShape               { return shapeNone }
func (AssayActivity) sealed()                      {}

// GeneNamespace is a gene-domain lookup kind.
type GeneNamespace int

const (
	GeneID GeneNamespace = iota
	GeneSymbol
	GeneAccession
)

var geneNamespaceNames = [...]string{
	GeneID:        "geneid",
	GeneSymbol:    "genesymbol",
	GeneAccession: "accession",
}

func (n GeneNamespace) String() string {
	if int(n) < len(geneNamespaceNames) {
		return geneNamespaceNames[n]
	}
	return ""
}

func (n GeneNamespace) Segments() []string         { return []string{n.String()} }
func (GeneNamespace) Search() bool                 { return false }
func (GeneNamespace) CompatibleWith(d Domain) bool { return d == DomainGene }

func (n GeneNamespace) shape() idShape {
	if n == GeneID {
		return shapeNumeric
	}
	return shapeText
}

func (GeneNamespace) sealed() {}

// ProteinNamespace is a protein-domain lookup kind.
type ProteinNamespace int

const (
	ProteinAccession ProteinNamespace = iota
	ProteinGI
	ProteinSynonym
)

var proteinNamespaceNames = [...]string{
	ProteinAccession: "accession",
	ProteinGI:        "gi",
	ProteinSynonym:   "synonym",
}

func (n ProteinNamespace) String() string {
	if int(n) < len(proteinNamespaceNames) {
		return proteinNamespaceNames[n]
	}
	return ""
}

func (n ProteinNamespace) Segments() []string         { return []string{n.String()} }
func (ProteinNamespace) Search() bool                 { return false }
func (ProteinNamespace) CompatibleWith(d Domain) bool { return d == DomainProtein }

func (n ProteinNamespace) shape() idShape {
	if n == ProteinGI {
		return shapeNumeric
	}
	return shapeText
}

func (ProteinNamespace) sealed() {}

// PathwayNamespace is a pathway-domain lookup kind.
type PathwayNamespace int

const (
	PathwayAccession PathwayNamespace = iota
)

func (n PathwayNamespace) String() string {
	if n == PathwayAccession {
		return "pwacc"
	}
	return ""
}

func (n PathwayNamespace) Segments() []string         { return []string{n.String()} }
func (PathwayNamespace) Search() bool                 { return false }
func (PathwayNamespace) CompatibleWith(d Domain) bool { return d == DomainPathway }
func (PathwayNamespace) shape() idShape               { return shapeText }
func (PathwayNamespace) sealed()                      {}

// TaxonomyNamespace is a taxonomy-domain lookup kind.
type TaxonomyNamespace int

const (
	TaxonomyTaxID TaxonomyNamespace = iota
	TaxonomySynonym
)

var taxonomyNamespaceNames = [...]string{
	TaxonomyTaxID:   "taxid",
	TaxonomySynonym: "synonym",
}

func (n TaxonomyNamespace) String() string {
	if int(n) < len(taxonomyNamespaceNames) {
		return taxonomyNamespaceNames[n]
	}
	return ""
}

func (n TaxonomyNamespace) Segments() []string         { return []string{n.String()} }
func (TaxonomyNamespace) Search() bool                 { return false }
func (TaxonomyNamespace) CompatibleWith(d Domain) bool { return d == DomainTaxonomy }

func (n TaxonomyNamespace) shape() idShape {
	if n == TaxonomyTaxID {
		return shapeNumeric
	}
	return shapeText
}

func (TaxonomyNamespace) sealed() {}

// CellNamespace is a cell-line-domain lookup kind.
type CellNamespace int

const (
	CellAccession CellNamespace = iota
	CellSynonym
)

var cellNamespaceNames = [...]string{
	CellAccession: "cellacc",
	CellSynonym:   "synonym",
}

func (n CellNamespace) String() string {
	if int(n) < len(cellNamespaceNames) {
		return cellNamespaceNames[n]
	}
	return ""
}

func (n CellNamespace) Segments() []string         { return []string{n.String()} }
func (CellNamespace) Search() bool                 { return false }
func (CellNamespace) CompatibleWith(d Domain) bool { return d == DomainCell }
func (CellNamespace) shape() idShape               { return shapeText }
func (CellNamespace) sealed()                      {}

// ParseNamespace parses the wire form of a namespace for the given
// domain. Parameterized forms carry their parameter after a slash,
// e.g. "xref/rn" or "similarity/smiles".
func ParseNamespace(d Domain, s string) (Namespace, error) {
	if d.System() {
		if s == "" {
			return NoNamespace{}, nil
		}
		return nil, ErrUnknownVariant
	}
	switch d {
	case DomainCompound:
		return parseCompoundNamespace(s)
	case DomainSubstance:
		return parseSubstanceNamespace(s)
	case DomainAssay:
		return parseAssayNamespace(s)
	case DomainGene:
		return parseEnumNamespace(s, GeneID, GeneAccession)
	case DomainProtein:
		return parseEnumNamespace(s, ProteinAccession, ProteinSynonym)
	case DomainPathway:
		return parseEnumNamespace(s, PathwayAccession, PathwayAccession)
	case DomainTaxonomy:
		return parseEnumNamespace(s, TaxonomyTaxID, TaxonomySynonym)
	case DomainCell:
		return parseEnumNamespace(s, CellAccession, CellSynonym)
	}
	return nil, ErrUnknownVariant
}

// parseEnumNamespace scans a contiguous enum namespace range for a
// matching wire form.
func parseEnumNamespace[T interface {
	Namespace
	~int
}](s string, lo, hi T) (Namespace, error) {
	for n := lo; n <= hi; n++ {
		if n.String() == s {
			return n, nil
		}
	}
	return nil, ErrUnknownVariant
}

func parseSubstanceNamespace(s string) (Namespace, error) {
	if inner, ok := strings.CutPrefix(s, "xref/"); ok {
		x, err := ParseXRef(inner)
		if err != nil {
			return nil, err
		}
		return SubstanceXRef{Type: x}, nil
	}
	if src, ok := strings.CutPrefix(s, "sourceid/"); ok && src != "" {
		return SourceID{Source: src}, nil
	}
	if src, ok := strings.CutPrefix(s, "sourceall/"); ok && src != "" {
		return SourceAll{Source: src}, nil
	}
	return parseEnumNamespace(s, SubstanceSID, SubstanceListKey)
}

func parseAssayNamespace(s string) (Namespace, error) {
	if t, ok := strings.CutPrefix(s, "type/"); ok {
		for i, name := range assayTypeNames {
			if name == t {
				return AssayType(i), nil
			}
		}
		return nil, ErrUnknownVariant
	}
	if kind, ok := strings.CutPrefix(s, "target/"); ok {
		for i, name := range assayTargetKindNames {
			if name == kind {
				return AssayTarget{Kind: AssayTargetKind(i)}, nil
			}
		}
		return nil, ErrUnknownVariant
	}
	if src, ok := strings.CutPrefix(s, "sourceall/"); ok && src != "" {
		return AssaySourceAll{Source: src}, nil
	}
	if col, ok := strings.CutPrefix(s, "activity/"); ok && col != "" {
		return AssayActivity{Column: col}, nil
	}
	return parseEnumNamespace(s, AssayAID, AssayListKey)
}
