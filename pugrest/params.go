package pugrest

import (
	"net/url"
	"strings"
)

// Params is an ordered set of query parameters. Unlike url.Values it
// encodes keys in insertion order, keeping built URLs stable and
// directly comparable in logs and tests.
type Params struct {
	keys   []string
	values map[string]string
}

// Set stores a parameter, replacing any previous value for the key.
func (p *Params) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value for key, or "" when absent.
func (p *Params) Get(key string) string {
	return p.values[key]
}

// Len returns the number of parameters.
func (p *Params) Len() int { return len(p.keys) }

// Clone returns an independent copy.
func (p *Params) Clone() Params {
	var out Params
	for _, k := range p.keys {
		out.Set(k, p.values[k])
	}
	return out
}

// Encode renders the parameters as a query string in insertion order,
// without a leading "?".
func (p *Params) Encode() string {
	if len(p.keys) == 0 {
		return ""
	}
	var b strings.Builder
	for i, k := range p.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.values[k]))
	}
	return b.String()
}
