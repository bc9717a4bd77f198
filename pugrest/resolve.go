package pugrest

import (
	"net/http"
	"net/url"
	"strings"
)

// BaseURL is the production PUG REST endpoint.
const BaseURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"

// ResolvedRequest is the concrete wire form of a validated Request:
// a method, percent-encoded path segments, an optional form body and
// the ordered query parameters.
type ResolvedRequest struct {
	Method string
	// Path holds the percent-encoded URL path segments below the
	// API prefix, in order.
	Path []string
	// Body is the form-encoded POST payload, empty for GET.
	Body  string
	Query Params
}

// URL joins the resolved request onto a base endpoint.
func (rr *ResolvedRequest) URL(base string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	for _, seg := range rr.Path {
		b.WriteByte('/')
		b.WriteString(seg)
	}
	if q := rr.Query.Encode(); q != "" {
		b.WriteByte('?')
		b.WriteString(q)
	}
	return b.String()
}

// Resolve validates the request and lowers it to its wire form.
//
// Path order is always domain, namespace, identifiers, operation,
// output; empty components drop out. When the namespace or domain
// forces POST the identifiers move into the body as a single form
// field named after the namespace, and the path skips them.
func (r Request) Resolve() (*ResolvedRequest, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	ns := r.namespace()
	op := r.operation()

	var path []string
	add := func(segs ...string) {
		for _, s := range segs {
			if s == "" {
				continue
			}
			path = append(path, url.PathEscape(s))
		}
	}

	add(r.Domain.Segments()...)
	add(ns.Segments()...)

	rr := &ResolvedRequest{Method: http.MethodGet, Query: r.Options.Clone()}
	if r.UsePost() {
		rr.Method = http.MethodPost
		// The sources domains post with no identifiers and get an
		// empty body.
		if !r.Identifiers.Empty() {
			rr.Body = ns.String() + "=" + r.Identifiers.encode(url.QueryEscape)
		}
	} else if !r.Identifiers.Empty() {
		path = append(path, r.Identifiers.encode(url.PathEscape))
	}

	add(op.Segments()...)
	add(r.Output.String())

	rr.Path = path
	return rr, nil
}
