package pugrest

import "strings"

// SubstanceOperation is a parameterless substance-domain verb.
type SubstanceOperation int

const (
	SubstanceRecord SubstanceOperation = iota
	SubstanceSynonyms
	SubstanceSIDs
	SubstanceCIDs
	SubstanceAIDs
	SubstanceAssaySummary
	SubstanceClassification
	SubstanceDescription
)

var substanceOperationNames = [...]string{
	SubstanceRecord:         "record",
	SubstanceSynonyms:       "synonyms",
	SubstanceSIDs:           "sids",
	SubstanceCIDs:           "cids",
	SubstanceAIDs:           "aids",
	SubstanceAssaySummary:   "assaysummary",
	SubstanceClassification: "classification",
	SubstanceDescription:    "description",
}

func (op SubstanceOperation) String() string {
	if int(op) < len(substanceOperationNames) {
		return substanceOperationNames[op]
	}
	return ""
}

func (op SubstanceOperation) Segments() []string          { return []string{op.String()} }
func (SubstanceOperation) CompatibleWith(d Domain) bool   { return d == DomainSubstance }
func (SubstanceOperation) sealed()                        {}

// AssayOperation is a parameterless assay-domain verb.
type AssayOperation int

const (
	AssayRecord AssayOperation = iota
	AssayConcise
	AssayAIDs
	AssayCIDs
	AssaySIDs
	AssayDescription
	// AssayDoseResponse retrieves per-substance dose-response data
	// (API path: doseresponse/sid).
	AssayDoseResponse
	AssaySummary
	AssayClassification
)

var assayOperationNames = [...]string{
	AssayRecord:         "record",
	AssayConcise:        "concise",
	AssayAIDs:           "aids",
	AssayCIDs:           "cids",
	AssaySIDs:           "sids",
	AssayDescription:    "description",
	AssayDoseResponse:   "doseresponse/sid",
	AssaySummary:        "summary",
	AssayClassification: "classification",
}

func (op AssayOperation) String() string {
	if int(op) < len(assayOperationNames) {
		return assayOperationNames[op]
	}
	return ""
}

func (op AssayOperation) Segments() []string {
	if op == AssayDoseResponse {
		return []string{"doseresponse", "sid"}
	}
	return []string{op.String()}
}

func (AssayOperation) CompatibleWith(d Domain) bool { return d == DomainAssay }
func (AssayOperation) sealed()                      {}

// AssayTargets retrieves assay targets of one type
// (API path: targets/<type>).
type AssayTargets struct {
	Kind AssayTargetKind
}

func (op AssayTargets) String() string             { return "targets/" + op.Kind.String() }
func (op AssayTargets) Segments() []string         { return []string{"targets", op.Kind.String()} }
func (AssayTargets) CompatibleWith(d Domain) bool  { return d == DomainAssay }
func (AssayTargets) sealed()                       {}

// GeneOperation is a gene-domain verb.
type GeneOperation int

const (
	GeneSummary GeneOperation = iota
	GeneAIDs
	GeneConcise
	GenePathwayAccessions
)

var geneOperationNames = [...]string{
	GeneSummary:           "summary",
	GeneAIDs:              "aids",
	GeneConcise:           "concise",
	GenePathwayAccessions: "pwaccs",
}

func (op GeneOperation) String() string {
	if int(op) < len(geneOperationNames) {
		return geneOperationNames[op]
	}
	return ""
}

func (op GeneOperation) Segments() []string         { return []string{op.String()} }
func (GeneOperation) CompatibleWith(d Domain) bool  { return d == DomainGene }
func (GeneOperation) sealed()                       {}

// ProteinOperation is a protein-domain verb.
type ProteinOperation int

const (
	ProteinSummary ProteinOperation = iota
	ProteinAIDs
	ProteinConcise
	ProteinPathwayAccessions
)

var proteinOperationNames = [...]string{
	ProteinSummary:           "summary",
	ProteinAIDs:              "aids",
	ProteinConcise:           "concise",
	ProteinPathwayAccessions: "pwaccs",
}

func (op ProteinOperation) String() string {
	if int(op) < len(proteinOperationNames) {
		return proteinOperationNames[op]
	}
	return ""
}

func (op ProteinOperation) Segments() []string         { return []string{op.String()} }
func (ProteinOperation) CompatibleWith(d Domain) bool  { return d == DomainProtein }
func (ProteinOperation) sealed()                       {}

// PathwayOperation is a pathway-domain verb.
type PathwayOperation int

const (
	PathwaySummary PathwayOperation = iota
	PathwayCIDs
	PathwayConcise
	PathwayAccessions
)

var pathwayOperationNames = [...]string{
	PathwaySummary:    "summary",
	PathwayCIDs:       "cids",
	PathwayConcise:    "concise",
	PathwayAccessions: "pwaccs",
}

func (op PathwayOperation) String() string {
	if int(op) < len(pathwayOperationNames) {
		return pathwayOperationNames[op]
	}
	return ""
}

func (op PathwayOperation) Segments() []string         { return []string{op.String()} }
func (PathwayOperation) CompatibleWith(d Domain) bool  { return d == DomainPathway }
func (PathwayOperation) sealed()                       {}

// TaxonomyOperation is a taxonomy-domain verb.
type TaxonomyOperation int

const (
	TaxonomySummary TaxonomyOperation = iota
	TaxonomyAIDs
)

var taxonomyOperationNames = [...]string{
	TaxonomySummary: "summary",
	TaxonomyAIDs:    "aids",
}

func (op TaxonomyOperation) String() string {
	if int(op) < len(taxonomyOperationNames) {
		return taxonomyOperationNames[op]
	}
	return ""
}

func (op TaxonomyOperation) Segments() []string         { return []string{op.String()} }
func (TaxonomyOperation) CompatibleWith(d Domain) bool  { return d == DomainTaxonomy }
func (TaxonomyOperation) sealed()                       {}

// CellOperation is a cell-line-domain verb.
type CellOperation int

const (
	CellSummary CellOperation = iota
	CellAIDs
)

var cellOperationNames = [...]string{
	CellSummary: "summary",
	CellAIDs:    "aids",
}

func (op CellOperation) String() string {
	if int(op) < len(cellOperationNames) {
		return cellOperationNames[op]
	}
	return ""
}

func (op CellOperation) Segments() []string         { return []string{op.String()} }
func (CellOperation) CompatibleWith(d Domain) bool  { return d == DomainCell }
func (CellOperation) sealed()                       {}

// ParseOperation parses the wire form of an operation for the given
// domain. An empty string yields NoOperation.
func ParseOperation(d Domain, s string) (Operation, error) {
	if s == "" {
		return NoOperation{}, nil
	}
	switch d {
	case DomainCompound:
		return parseCompoundOperation(s)
	case DomainSubstance:
		return parseSubstanceOperation(s)
	case DomainAssay:
		return parseAssayOperation(s)
	case DomainGene:
		return parseEnumOperation(s, GeneSummary, GenePathwayAccessions)
	case DomainProtein:
		return parseEnumOperation(s, ProteinSummary, ProteinPathwayAccessions)
	case DomainPathway:
		return parseEnumOperation(s, PathwaySummary, PathwayAccessions)
	case DomainTaxonomy:
		return parseEnumOperation(s, TaxonomySummary, TaxonomyAIDs)
	case DomainCell:
		return parseEnumOperation(s, CellSummary, CellAIDs)
	}
	return nil, ErrUnknownVariant
}

func parseEnumOperation[T interface {
	Operation
	~int
}](s string, lo, hi T) (Operation, error) {
	for op := lo; op <= hi; op++ {
		if op.String() == s {
			return op, nil
		}
	}
	return nil, ErrUnknownVariant
}

func parseSubstanceOperation(s string) (Operation, error) {
	if inner, ok := strings.CutPrefix(s, "xrefs/"); ok {
		types, err := parseXRefList(inner)
		if err != nil {
			return nil, err
		}
		return XRefs{Types: types}, nil
	}
	return parseEnumOperation(s, SubstanceRecord, SubstanceDescription)
}

func parseAssayOperation(s string) (Operation, error) {
	if kind, ok := strings.CutPrefix(s, "targets/"); ok {
		for i, name := range assayTargetKindNames {
			if name == kind {
				return AssayTargets{Kind: AssayTargetKind(i)}, nil
			}
		}
		return nil, ErrUnknownVariant
	}
	return parseEnumOperation(s, AssayRecord, AssayClassification)
}
