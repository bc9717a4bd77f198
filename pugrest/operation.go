package pugrest

import "strings"

// Operation selects what to retrieve for the resolved records. The
// zero-ish NoOperation returns the full record for record domains and
// is the only operation system domains accept.
//
// Like Namespace, Operation is a closed union over the verbs each
// domain documents.
type Operation interface {
	// String returns the operation's wire form including any
	// parameters, e.g. "synonyms" or "property/MolecularWeight".
	String() string
	// Segments returns the operation's URL path segments.
	Segments() []string
	// CompatibleWith reports whether the operation may be paired
	// with the given domain.
	CompatibleWith(d Domain) bool

	sealed()
}

// NoOperation requests the default record view.
type NoOperation struct{}

func (NoOperation) String() string              { return "" }
func (NoOperation) Segments() []string          { return nil }
func (NoOperation) CompatibleWith(Domain) bool  { return true }
func (NoOperation) sealed()                     {}

// CompoundOperation is a parameterless compound-domain verb.
type CompoundOperation int

const (
	// CompoundRecord retrieves the full compound record.
	CompoundRecord CompoundOperation = iota
	// CompoundSynonyms retrieves the deposited name list.
	CompoundSynonyms
	// CompoundSIDs retrieves associated substance ids.
	CompoundSIDs
	// CompoundCIDs retrieves compound ids.
	CompoundCIDs
	// CompoundAIDs retrieves associated assay ids.
	CompoundAIDs
	// CompoundAssaySummary retrieves a bioassay activity summary.
	CompoundAssaySummary
	// CompoundClassification retrieves the classification hierarchy.
	CompoundClassification
	// CompoundDescription retrieves the compound description.
	CompoundDescription
	// CompoundConformers retrieves 3D conformer ids.
	CompoundConformers
)

var compoundOperationNames = [...]string{
	CompoundRecord:         "record",
	CompoundSynonyms:       "synonyms",
	CompoundSIDs:           "sids",
	CompoundCIDs:           "cids",
	CompoundAIDs:           "aids",
	CompoundAssaySummary:   "assaysummary",
	CompoundClassification: "classification",
	CompoundDescription:    "description",
	CompoundConformers:     "conformers",
}

func (op CompoundOperation) String() string {
	if int(op) < len(compoundOperationNames) {
		return compoundOperationNames[op]
	}
	return ""
}

func (op CompoundOperation) Segments() []string           { return []string{op.String()} }
func (CompoundOperation) CompatibleWith(d Domain) bool    { return d == DomainCompound }
func (CompoundOperation) sealed()                         {}

// Property retrieves a property table for the selected compounds
// (API path: property/<tags>). Tag order is preserved; the response
// columns follow it.
type Property struct {
	Tags []PropertyTag
}

// Properties is a convenience constructor for Property.
func Properties(tags ...PropertyTag) Property {
	return Property{Tags: tags}
}

func (op Property) String() string { return "property/" + joinPropertyTags(op.Tags) }

func (op Property) Segments() []string {
	return []string{"property", joinPropertyTags(op.Tags)}
}

func (Property) CompatibleWith(d Domain) bool { return d == DomainCompound }
func (Property) sealed()                      {}

// XRefs retrieves the named cross-reference types
// (API path: xrefs/<types>). Valid for compounds and substances.
type XRefs struct {
	Types []XRef
}

func (op XRefs) String() string { return "xrefs/" + joinXRefs(op.Types) }

func (op XRefs) Segments() []string {
	return []string{"xrefs", joinXRefs(op.Types)}
}

func (XRefs) CompatibleWith(d Domain) bool {
	return d == DomainCompound || d == DomainSubstance
}

func (XRefs) sealed() {}

// parseCompoundOperation parses compound-domain operation wire forms.
func parseCompoundOperation(s string) (Operation, error) {
	if inner, ok := strings.CutPrefix(s, "property/"); ok {
		tags, err := ParsePropertyTags(inner)
		if err != nil {
			return nil, err
		}
		return Property{Tags: tags}, nil
	}
	if inner, ok := strings.CutPrefix(s, "xrefs/"); ok {
		types, err := parseXRefList(inner)
		if err != nil {
			return nil, err
		}
		return XRefs{Types: types}, nil
	}
	for op := CompoundRecord; op <= CompoundConformers; op++ {
		if op.String() == s {
			return op, nil
		}
	}
	return nil, ErrUnknownVariant
}
