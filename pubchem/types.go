package pubchem

import (
	"encoding/json"
	"fmt"
)

// FlexUints decodes a JSON field that the API serves either as a
// single number or as an array of numbers, depending on the endpoint.
type FlexUints []uint32

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexUints) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, (*[]uint32)(f))
	}
	var single uint32
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*f = FlexUints{single}
	return nil
}

// PropertyRecord is one row of a property table. Keys are the
// canonical property tag names plus "CID"; values are whatever JSON
// type the API chose for that property (numbers, strings, bools).
type PropertyRecord map[string]any

// CID returns the row's compound id, or 0 when absent.
func (r PropertyRecord) CID() uint32 {
	if v, ok := r["CID"].(float64); ok {
		return uint32(v)
	}
	return 0
}

// propertyTableEnvelope mirrors {"PropertyTable": {"Properties": [...]}}.
type propertyTableEnvelope struct {
	PropertyTable struct {
		Properties []PropertyRecord `json:"Properties"`
	} `json:"PropertyTable"`
}

// DecodePropertyTable parses a property-table response body.
func DecodePropertyTable(body []byte) ([]PropertyRecord, error) {
	var env propertyTableEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to parse property table: %w", err)
	}
	return env.PropertyTable.Properties, nil
}

// Information is one entry of an information list: a record id with
// its synonyms, names or cross-references.
type Information struct {
	CID     FlexUints `json:"CID,omitempty"`
	SID     FlexUints `json:"SID,omitempty"`
	AID     FlexUints `json:"AID,omitempty"`
	Name    string    `json:"Name,omitempty"`
	Synonym []string  `json:"Synonym,omitempty"`
}

// InformationList is the response envelope shared by the synonyms,
// description and source listing endpoints. Exactly one of the fields
// is populated per response.
type InformationList struct {
	SourceName  []string      `json:"SourceName,omitempty"`
	Information []Information `json:"Information,omitempty"`
}

type informationListEnvelope struct {
	InformationList InformationList `json:"InformationList"`
}

// DecodeInformationList parses an information-list response body.
func DecodeInformationList(body []byte) (*InformationList, error) {
	var env informationListEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to parse information list: %w", err)
	}
	return &env.InformationList, nil
}

// IdentifierList is the response envelope of the cids, sids and aids
// operations.
type IdentifierList struct {
	CID []uint32 `json:"CID,omitempty"`
	SID []uint32 `json:"SID,omitempty"`
	AID []uint32 `json:"AID,omitempty"`
}

type identifierListEnvelope struct {
	IdentifierList IdentifierList `json:"IdentifierList"`
}

// DecodeIdentifierList parses an identifier-list response body.
func DecodeIdentifierList(body []byte) (*IdentifierList, error) {
	var env identifierListEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to parse identifier list: %w", err)
	}
	return &env.IdentifierList, nil
}

// Waiting is the interim response of asynchronous searches. The list
// key must be polled via a listkey namespace request until the result
// is ready.
type Waiting struct {
	ListKey ListKey `json:"ListKey"`
	Message string  `json:"Message,omitempty"`
}

// ListKey is the polling token of an asynchronous search. Different
// endpoints serve it as a JSON number or as a string.
type ListKey string

// UnmarshalJSON implements json.Unmarshaler.
func (k *ListKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*k = ListKey(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*k = ListKey(n.String())
	return nil
}

type waitingEnvelope struct {
	Waiting *Waiting `json:"Waiting"`
}

// DecodeWaiting extracts a polling key from an asynchronous search
// response. It returns nil when the body is a final result instead.
func DecodeWaiting(body []byte) *Waiting {
	var env waitingEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil
	}
	return env.Waiting
}
