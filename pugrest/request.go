package pugrest

// Request is a complete declarative request specification. Fill in the
// axes, then call Resolve to turn it into a concrete HTTP method, URL
// and body.
//
// Namespace and Operation may be left nil; they default to NoNamespace
// and NoOperation, which is the correct pairing for system domains and
// the full-record default for everything else.
type Request struct {
	Domain      Domain
	Namespace   Namespace
	Identifiers Identifiers
	Operation   Operation
	Output      OutputFormat

	// Options are extra query arguments appended verbatim, e.g.
	// similarity Threshold, listkey paging, or a JSONP callback.
	Options Params
}

// namespace returns the effective namespace.
func (r Request) namespace() Namespace {
	if r.Namespace == nil {
		return NoNamespace{}
	}
	return r.Namespace
}

// operation returns the effective operation.
func (r Request) operation() Operation {
	if r.Operation == nil {
		return NoOperation{}
	}
	return r.Operation
}

// Validate checks the request for structural errors before any network
// traffic: axis compatibility, identifier cardinality, and non-empty
// parameter lists. It returns an *InvalidInputError describing the
// first violation found.
func (r Request) Validate() error {
	ns := r.namespace()
	op := r.operation()

	if !ns.CompatibleWith(r.Domain) {
		return invalidInput("namespace %q is not valid in domain %q", ns, r.Domain)
	}
	if _, isNone := op.(NoOperation); !isNone && !op.CompatibleWith(r.Domain) {
		return invalidInput("operation %q is not valid in domain %q", op, r.Domain)
	}

	switch ns.shape() {
	case shapeNumeric:
		if r.Identifiers.Empty() {
			return invalidInput("namespace %q requires identifiers", ns)
		}
		if !r.Identifiers.Numeric() {
			return invalidInput("namespace %q requires numeric identifiers", ns)
		}
	case shapeText:
		if r.Identifiers.Empty() {
			return invalidInput("namespace %q requires an identifier", ns)
		}
		if r.Identifiers.Numeric() {
			return invalidInput("namespace %q requires a string identifier", ns)
		}
	case shapeNone:
		if !r.Identifiers.Empty() {
			return invalidInput("namespace %q takes no identifiers", ns)
		}
	}

	switch v := op.(type) {
	case Property:
		if len(v.Tags) == 0 {
			return invalidInput("property operation requires at least one tag")
		}
	case XRefs:
		if len(v.Types) == 0 {
			return invalidInput("xrefs operation requires at least one type")
		}
	}
	return nil
}

// UsePost reports whether the request must be sent as POST with the
// identifier payload in the body. This depends on the namespace kind
// and the domain (the sources domains accept only POST), never on
// payload size.
func (r Request) UsePost() bool {
	return r.namespace().Search() || r.Domain.PostOnly()
}
