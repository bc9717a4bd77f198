// Package pugrest models PubChem PUG REST requests as typed values.
//
// A request is assembled from five axes: Domain (which record family),
// Namespace (how identifiers are interpreted), Identifiers (the lookup
// values), Operation (what to fetch) and OutputFormat (wire encoding).
// Resolve turns a validated Request into the final URL path segments,
// the HTTP method and, for structure-bearing namespaces, a
// form-encoded POST body.
//
// # Usage
//
//	ids, err := pugrest.Query("aspirin")
//	if err != nil {
//	    return err
//	}
//	req := pugrest.Request{
//	    Domain:      pugrest.DomainCompound,
//	    Namespace:   pugrest.CompoundName,
//	    Identifiers: ids,
//	    Operation:   pugrest.Properties(pugrest.MolecularWeight),
//	}
//	resolved, err := req.Resolve()
//	if err != nil {
//	    return err
//	}
//	// resolved.URL(pugrest.BaseURL) → full request URL
package pugrest
