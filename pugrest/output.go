package pugrest

// OutputFormat is the response encoding requested via the final URL
// path segment. The zero value is JSON.
type OutputFormat int

const (
	JSON OutputFormat = iota
	XML
	ASNT
	ASNB
	JSONP
	SDF
	CSV
	PNG
	TXT
)

var outputFormatNames = [...]string{
	JSON:  "JSON",
	XML:   "XML",
	ASNT:  "ASNT",
	ASNB:  "ASNB",
	JSONP: "JSONP",
	SDF:   "SDF",
	CSV:   "CSV",
	PNG:   "PNG",
	TXT:   "TXT",
}

// String returns the format's wire form.
func (f OutputFormat) String() string {
	if int(f) < len(outputFormatNames) {
		return outputFormatNames[f]
	}
	return ""
}

// ParseOutputFormat parses the wire form of an output format.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for i, name := range outputFormatNames {
		if name == s {
			return OutputFormat(i), nil
		}
	}
	return 0, ErrUnknownVariant
}
