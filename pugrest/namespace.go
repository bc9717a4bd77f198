package pugrest

import "strings"

// idShape is the identifier cardinality a namespace expects.
type idShape int

const (
	shapeAny idShape = iota
	shapeNumeric
	shapeText
	shapeNone
)

// Namespace determines how a request's identifiers are interpreted.
// It is a closed union: every variant lives in this package and every
// consumer switches exhaustively over the known kinds.
//
// Each variant fixes two request properties: the URL path segments it
// contributes, and whether the request must be sent as POST. Structure
// payloads (SMILES, InChI, SDF, formulas, search inputs) contain
// characters that are unsafe in path segments and may exceed URL
// length limits, so those namespaces always force POST, no matter how
// short the actual payload is.
type Namespace interface {
	// String returns the namespace's wire form including any
	// parameters, e.g. "cid" or "xref/rn".
	String() string
	// Segments returns the namespace's URL path segments.
	Segments() []string
	// Search reports whether the namespace forces POST, moving the
	// identifier payload into the request body.
	Search() bool
	// CompatibleWith reports whether the namespace may be paired
	// with the given domain.
	CompatibleWith(d Domain) bool

	shape() idShape
	sealed()
}

// CompoundNamespace is a parameterless compound-domain lookup kind.
type CompoundNamespace int

const (
	// CompoundCID looks up by PubChem compound id.
	CompoundCID CompoundNamespace = iota
	// CompoundName looks up by chemical name.
	CompoundName
	// CompoundSMILES looks up by SMILES notation. Forces POST.
	CompoundSMILES
	// CompoundInChI looks up by InChI notation. Forces POST.
	CompoundInChI
	// CompoundSDF looks up by an SDF block. Forces POST.
	CompoundSDF
	// CompoundInChIKey looks up by InChIKey.
	CompoundInChIKey
	// CompoundFormula searches by molecular formula. Forces POST.
	CompoundFormula
	// CompoundMass looks up by molecular mass.
	CompoundMass
	// CompoundListKey resumes an asynchronous result set. Forces POST.
	CompoundListKey
)

var compoundNamespaceNames = [...]string{
	CompoundCID:      "cid",
	CompoundName:     "name",
	CompoundSMILES:   "smiles",
	CompoundInChI:    "inchi",
	CompoundSDF:      "sdf",
	CompoundInChIKey: "inchikey",
	CompoundFormula:  "formula",
	CompoundMass:     "mass",
	CompoundListKey:  "listkey",
}

func (n CompoundNamespace) String() string {
	if int(n) < len(compoundNamespaceNames) {
		return compoundNamespaceNames[n]
	}
	return ""
}

func (n CompoundNamespace) Segments() []string { return []string{n.String()} }

func (n CompoundNamespace) Search() bool {
	switch n {
	case CompoundSMILES, CompoundInChI, CompoundSDF, CompoundFormula, CompoundListKey:
		return true
	}
	return false
}

func (n CompoundNamespace) CompatibleWith(d Domain) bool { return d == DomainCompound }

func (n CompoundNamespace) shape() idShape {
	if n == CompoundCID {
		return shapeNumeric
	}
	return shapeText
}

func (CompoundNamespace) sealed() {}

// CompoundXRef looks up compounds by a cross-reference value
// (API path: xref/<type>). Forces POST.
type CompoundXRef struct {
	Type XRef
}

func (n CompoundXRef) String() string            { return "xref/" + n.Type.String() }
func (n CompoundXRef) Segments() []string        { return []string{"xref", n.Type.String()} }
func (CompoundXRef) Search() bool                { return true }
func (CompoundXRef) CompatibleWith(d Domain) bool { return d == DomainCompound }
func (CompoundXRef) shape() idShape              { return shapeText }
func (CompoundXRef) sealed()                     {}

// StructureSearchKind is the structure-search flavor.
type StructureSearchKind int

const (
	Substructure StructureSearchKind = iota
	Superstructure
	Similarity
	Identity
)

var structureSearchKindNames = [...]string{
	Substructure:   "substructure",
	Superstructure: "superstructure",
	Similarity:     "similarity",
	Identity:       "identity",
}

func (k StructureSearchKind) String() string {
	if int(k) < len(structureSearchKindNames) {
		return structureSearchKindNames[k]
	}
	return ""
}

// StructureInput is the query encoding of a structure search.
type StructureInput int

const (
	StructureSMILES StructureInput = iota
	StructureInChI
	StructureSDF
	StructureCID
)

var structureInputNames = [...]string{
	StructureSMILES: "smiles",
	StructureInChI:  "inchi",
	StructureSDF:    "sdf",
	StructureCID:    "cid",
}

func (v StructureInput) String() string {
	if int(v) < len(structureInputNames) {
		return structureInputNames[v]
	}
	return ""
}

// StructureSearch is an asynchronous structure-based compound search
// (API path: <kind>/<input>). Forces POST.
type StructureSearch struct {
	Kind  StructureSearchKind
	Input StructureInput
}

func (n StructureSearch) String() string {
	return n.Kind.String() + "/" + n.Input.String()
}

func (n StructureSearch) Segments() []string {
	return []string{n.Kind.String(), n.Input.String()}
}

func (StructureSearch) Search() bool                { return true }
func (StructureSearch) CompatibleWith(d Domain) bool { return d == DomainCompound }

func (n StructureSearch) shape() idShape {
	if n.Input == StructureCID {
		return shapeNumeric
	}
	return shapeText
}

func (StructureSearch) sealed() {}

// FastSearchKind is the synchronous fast-search flavor.
type FastSearchKind int

const (
	FastIdentity FastSearchKind = iota
	FastSimilarity2D
	FastSimilarity3D
	FastSubstructure
	FastSuperstructure
	FastFormula
)

var fastSearchKindNames = [...]string{
	FastIdentity:       "fastidentity",
	FastSimilarity2D:   "fastsimilarity_2d",
	FastSimilarity3D:   "fastsimilarity_3d",
	FastSubstructure:   "fastsubstructure",
	FastSuperstructure: "fastsuperstructure",
	FastFormula:        "fastformula",
}

func (k FastSearchKind) String() string {
	if int(k) < len(fastSearchKindNames) {
		return fastSearchKindNames[k]
	}
	return ""
}

// FastInput is the query encoding of a fast search.
type FastInput int

const (
	FastSMILES FastInput = iota
	FastSMARTS
	FastInChI
	FastSDF
	FastCID
	// FastNone is used only with FastFormula, whose query is the
	// formula itself rather than an encoded structure.
	FastNone
)

var fastInputNames = [...]string{
	FastSMILES: "smiles",
	FastSMARTS: "smarts",
	FastInChI:  "inchi",
	FastSDF:    "sdf",
	FastCID:    "cid",
	FastNone:   "none",
}

func (v FastInput) String() string {
	if int(v) < len(fastInputNames) {
		return fastInputNames[v]
	}
	return ""
}

// FastSearch is a synchronous structure search (API path:
// <kind>/<input>, or just "fastformula"). Forces POST.
type FastSearch struct {
	Kind  FastSearchKind
	Input FastInput
}

func (n FastSearch) String() string {
	if n.Kind == FastFormula {
		return n.Kind.String()
	}
	return n.Kind.String() + "/" + n.Input.String()
}

func (n FastSearch) Segments() []string {
	if n.Kind == FastFormula {
		return []string{n.Kind.String()}
	}
	return []string{n.Kind.String(), n.Input.String()}
}

func (FastSearch) Search() bool                { return true }
func (FastSearch) CompatibleWith(d Domain) bool { return d == DomainCompound }

func (n FastSearch) shape() idShape {
	if n.Input == FastCID {
		return shapeNumeric
	}
	return shapeText
}

func (FastSearch) sealed() {}

// NoNamespace is the empty namespace used with system domains.
type NoNamespace struct{}

func (NoNamespace) String() string            { return "" }
func (NoNamespace) Segments() []string        { return nil }
func (NoNamespace) Search() bool              { return false }
func (NoNamespace) CompatibleWith(d Domain) bool { return d.System() }
func (NoNamespace) shape() idShape            { return shapeNone }
func (NoNamespace) sealed()                   {}

// parseCompoundNamespace parses compound-domain namespace wire forms.
func parseCompoundNamespace(s string) (Namespace, error) {
	if inner, ok := strings.CutPrefix(s, "xref/"); ok {
		x, err := ParseXRef(inner)
		if err != nil {
			return nil, err
		}
		return CompoundXRef{Type: x}, nil
	}
	for n := CompoundCID; n <= CompoundListKey; n++ {
		if n.String() == s {
			return n, nil
		}
	}
	if ns, err := parseStructureSearch(s); err == nil {
		return ns, nil
	}
	return parseFastSearch(s)
}

func parseStructureSearch(s string) (Namespace, error) {
	kind, input, ok := strings.Cut(s, "/")
	if !ok {
		return nil, ErrUnknownVariant
	}
	var search StructureSearch
	found := false
	for k := Substructure; k <= Identity; k++ {
		if k.String() == kind {
			search.Kind = k
			found = true
			break
		}
	}
	if !found {
		return nil, ErrUnknownVariant
	}
	for v := StructureSMILES; v <= StructureCID; v++ {
		if v.String() == input {
			search.Input = v
			return search, nil
		}
	}
	return nil, ErrUnknownVariant
}

func parseFastSearch(s string) (Namespace, error) {
	kind, input, _ := strings.Cut(s, "/")
	var search FastSearch
	found := false
	for k := FastIdentity; k <= FastFormula; k++ {
		if k.String() == kind {
			search.Kind = k
			found = true
			break
		}
	}
	if !found {
		return nil, ErrUnknownVariant
	}
	if search.Kind == FastFormula {
		search.Input = FastNone
		return search, nil
	}
	for v := FastSMILES; v <= FastNone; v++ {
		if v.String() == input {
			search.Input = v
			return search, nil
		}
	}
	return nil, ErrUnknownVariant
}
