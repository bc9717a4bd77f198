package pugrest

// Domain selects the top-level PUG REST record family. Record domains
// (compound, substance, ...) take a namespace and identifiers; system
// domains (sources, sourcetable, periodictable, ...) stand alone.
type Domain int

const (
	DomainCompound Domain = iota
	DomainSubstance
	DomainAssay
	DomainGene
	DomainProtein
	DomainPathway
	DomainTaxonomy
	DomainCell

	// System domains. These pair with NoNamespace and NoOperation.
	DomainSourcesSubstance
	DomainSourcesAssay
	DomainSourceTable
	DomainConformers
	DomainAnnotations
	DomainClassification
	DomainStandardize
	DomainPeriodicTable
)

// String returns the domain's wire form.
func (d Domain) String() string {
	switch d {
	case DomainCompound:
		return "compound"
	case DomainSubstance:
		return "substance"
	case DomainAssay:
		return "assay"
	case DomainGene:
		return "gene"
	case DomainProtein:
		return "protein"
	case DomainPathway:
		return "pathway"
	case DomainTaxonomy:
		return "taxonomy"
	case DomainCell:
		return "cell"
	case DomainSourcesSubstance:
		return "sources/substance"
	case DomainSourcesAssay:
		return "sources/assay"
	case DomainSourceTable:
		return "sourcetable"
	case DomainConformers:
		return "conformers"
	case DomainAnnotations:
		return "annotations"
	case DomainClassification:
		return "classification"
	case DomainStandardize:
		return "standardize"
	case DomainPeriodicTable:
		return "periodictable"
	}
	return ""
}

// Segments returns the URL path segments for the domain. The sources
// domains occupy two segments; everything else one.
func (d Domain) Segments() []string {
	switch d {
	case DomainSourcesSubstance:
		return []string{"sources", "substance"}
	case DomainSourcesAssay:
		return []string{"sources", "assay"}
	default:
		return []string{d.String()}
	}
}

// System reports whether the domain is a standalone system domain that
// carries no namespace or identifiers.
func (d Domain) System() bool {
	return d >= DomainSourcesSubstance
}

// PostOnly reports whether the domain itself forces POST. The two
// depositor listing endpoints accept only POST, independent of the
// namespace.
func (d Domain) PostOnly() bool {
	return d == DomainSourcesSubstance || d == DomainSourcesAssay
}

// ParseDomain parses the wire form of a domain. Matching is case
// sensitive, as in the upstream API.
func ParseDomain(s string) (Domain, error) {
	for d := DomainCompound; d <= DomainPeriodicTable; d++ {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, ErrUnknownVariant
}
