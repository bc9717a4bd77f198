// Package pubchem executes pugrest request specifications against the
// PubChem PUG REST API.
//
// The client retries throttled and temporarily unavailable responses
// (429, 503, 504) with linear backoff and surfaces structured fault
// documents as *FaultError values, even when they arrive under a 2xx
// status. All other failures are returned immediately.
//
//	client := pubchem.NewClient(logger, pubchem.WithMaxRetries(5))
//	props, err := client.Properties(ctx, []uint32{2244, 962},
//		pugrest.MolecularWeight, pugrest.IUPACName)
//
// For one-off calls a shared zero-configuration client is available
// via Default.
package pubchem
