package pugrest

import "strings"

// XRef identifies a cross-reference type used both as a lookup
// namespace (xref/<type>) and as an operation parameter (xrefs/<types>).
type XRef int

const (
	XRefRegistryID XRef = iota
	XRefRN
	XRefPubMedID
	XRefMMDBID
	XRefDBURL
	XRefSBURL
	XRefProteinGI
	XRefNucleotideGI
	XRefTaxonomyID
	XRefMIMID
	XRefGeneID
	XRefProbeID
	XRefPatentID
	XRefSourceName
	XRefSourceCategory
)

var xrefNames = [...]string{
	XRefRegistryID:     "registryid",
	XRefRN:             "rn",
	XRefPubMedID:       "pubmedid",
	XRefMMDBID:         "mmdbid",
	XRefDBURL:          "dburl",
	XRefSBURL:          "sburl",
	XRefProteinGI:      "proteingi",
	XRefNucleotideGI:   "nucleotidegi",
	XRefTaxonomyID:     "taxonomyid",
	XRefMIMID:          "mimid",
	XRefGeneID:         "geneid",
	XRefProbeID:        "probeid",
	XRefPatentID:       "patentid",
	XRefSourceName:     "sourcename",
	XRefSourceCategory: "sourcecategory",
}

// String returns the cross-reference type's wire form.
func (x XRef) String() string {
	if int(x) < len(xrefNames) {
		return xrefNames[x]
	}
	return ""
}

// ParseXRef parses the wire form of a cross-reference type.
func ParseXRef(s string) (XRef, error) {
	for i, name := range xrefNames {
		if name == s {
			return XRef(i), nil
		}
	}
	return 0, ErrUnknownVariant
}

// joinXRefs comma-joins cross-reference types in the given order.
func joinXRefs(types []XRef) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return strings.Join(parts, ",")
}

// parseXRefList parses a comma-separated list of cross-reference types.
func parseXRefList(s string) ([]XRef, error) {
	fields := strings.Split(s, ",")
	types := make([]XRef, 0, len(fields))
	for _, f := range fields {
		x, err := ParseXRef(f)
		if err != nil {
			return nil, err
		}
		types = append(types, x)
	}
	return types, nil
}
