package pubchem

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/molbridge/molbridge/pugrest"
)

// propertyChunkSize bounds how many compound ids go into a single
// property request. The API rejects very long identifier lists, and
// smaller chunks keep individual requests cheap to retry.
const propertyChunkSize = 100

// propertyFetchConcurrency bounds parallel chunk requests so a large
// batch does not trip the per-user throttling limits.
const propertyFetchConcurrency = 3

var defaultClient = sync.OnceValue(func() *Client {
	return NewClient(zerolog.Nop())
})

// Default returns a lazily constructed shared client with stock
// settings and no logging.
func Default() *Client {
	return defaultClient()
}

// Properties fetches a property table for the given compounds,
// chunking large id lists and issuing chunks concurrently. Row order
// follows the input id order across chunk boundaries.
func (c *Client) Properties(ctx context.Context, cids []uint32, tags ...pugrest.PropertyTag) ([]PropertyRecord, error) {
	if len(cids) == 0 {
		return nil, nil
	}

	var chunks [][]uint32
	for start := 0; start < len(cids); start += propertyChunkSize {
		end := min(start+propertyChunkSize, len(cids))
		chunks = append(chunks, cids[start:end])
	}

	results := make([][]PropertyRecord, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(propertyFetchConcurrency)

	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			ids, err := pugrest.IDs(chunk...)
			if err != nil {
				return err
			}
			body, err := c.Do(gctx, pugrest.Request{
				Domain:      pugrest.DomainCompound,
				Namespace:   pugrest.CompoundCID,
				Identifiers: ids,
				Operation:   pugrest.Properties(tags...),
			})
			if err != nil {
				return err
			}
			rows, err := DecodePropertyTable(body)
			if err != nil {
				return err
			}
			results[i] = rows
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]PropertyRecord, 0, len(cids))
	for _, rows := range results {
		out = append(out, rows...)
	}
	return out, nil
}

// Synonyms returns the deposited synonyms of a compound.
func (c *Client) Synonyms(ctx context.Context, cid uint32) ([]string, error) {
	ids, err := pugrest.ID(cid)
	if err != nil {
		return nil, err
	}
	body, err := c.Do(ctx, pugrest.Request{
		Domain:      pugrest.DomainCompound,
		Namespace:   pugrest.CompoundCID,
		Identifiers: ids,
		Operation:   pugrest.CompoundSynonyms,
	})
	if err != nil {
		return nil, err
	}
	list, err := DecodeInformationList(body)
	if err != nil {
		return nil, err
	}
	if len(list.Information) == 0 {
		return nil, nil
	}
	return list.Information[0].Synonym, nil
}

// CIDsByName resolves a chemical name to compound ids.
func (c *Client) CIDsByName(ctx context.Context, name string) ([]uint32, error) {
	ids, err := pugrest.Query(name)
	if err != nil {
		return nil, err
	}
	body, err := c.Do(ctx, pugrest.Request{
		Domain:      pugrest.DomainCompound,
		Namespace:   pugrest.CompoundName,
		Identifiers: ids,
		Operation:   pugrest.CompoundCIDs,
	})
	if err != nil {
		return nil, err
	}
	list, err := DecodeIdentifierList(body)
	if err != nil {
		return nil, err
	}
	return list.CID, nil
}

// CIDsBySMILES resolves a SMILES structure to compound ids.
func (c *Client) CIDsBySMILES(ctx context.Context, smiles string) ([]uint32, error) {
	ids, err := pugrest.Query(smiles)
	if err != nil {
		return nil, err
	}
	body, err := c.Do(ctx, pugrest.Request{
		Domain:      pugrest.DomainCompound,
		Namespace:   pugrest.CompoundSMILES,
		Identifiers: ids,
		Operation:   pugrest.CompoundCIDs,
	})
	if err != nil {
		return nil, err
	}
	list, err := DecodeIdentifierList(body)
	if err != nil {
		return nil, err
	}
	return list.CID, nil
}

// Record returns the full record of a compound in the requested
// output format.
func (c *Client) Record(ctx context.Context, cid uint32, output pugrest.OutputFormat) ([]byte, error) {
	ids, err := pugrest.ID(cid)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, pugrest.Request{
		Domain:      pugrest.DomainCompound,
		Namespace:   pugrest.CompoundCID,
		Identifiers: ids,
		Output:      output,
	})
}

// SDF returns the structure-data file of a compound.
func (c *Client) SDF(ctx context.Context, cid uint32) ([]byte, error) {
	return c.Record(ctx, cid, pugrest.SDF)
}

// SourceNames lists the depositor names for the given sources domain
// (DomainSourcesSubstance or DomainSourcesAssay).
func (c *Client) SourceNames(ctx context.Context, domain pugrest.Domain) ([]string, error) {
	body, err := c.Do(ctx, pugrest.Request{Domain: domain})
	if err != nil {
		return nil, err
	}
	list, err := DecodeInformationList(body)
	if err != nil {
		return nil, err
	}
	return list.SourceName, nil
}

// Top-level helpers on the shared Default client, for callers that do
// not need their own configuration.

// Do resolves and executes a request on the shared client.
func Do(ctx context.Context, req pugrest.Request) ([]byte, error) {
	return Default().Do(ctx, req)
}

// Properties fetches a property table on the shared client.
func Properties(ctx context.Context, cids []uint32, tags ...pugrest.PropertyTag) ([]PropertyRecord, error) {
	return Default().Properties(ctx, cids, tags...)
}

// Synonyms returns a compound's synonyms via the shared client.
func Synonyms(ctx context.Context, cid uint32) ([]string, error) {
	return Default().Synonyms(ctx, cid)
}

// CIDsByName resolves a chemical name via the shared client.
func CIDsByName(ctx context.Context, name string) ([]uint32, error) {
	return Default().CIDsByName(ctx, name)
}

// CIDsBySMILES resolves a SMILES structure via the shared client.
func CIDsBySMILES(ctx context.Context, smiles string) ([]uint32, error) {
	return Default().CIDsBySMILES(ctx, smiles)
}

// Record fetches a full compound record via the shared client.
func Record(ctx context.Context, cid uint32, output pugrest.OutputFormat) ([]byte, error) {
	return Default().Record(ctx, cid, output)
}

// SDF fetches a compound's structure-data file via the shared client.
func SDF(ctx context.Context, cid uint32) ([]byte, error) {
	return Default().SDF(ctx, cid)
}

// SourceNames lists depositor names via the shared client.
func SourceNames(ctx context.Context, domain pugrest.Domain) ([]string, error) {
	return Default().SourceNames(ctx, domain)
}
