// Package faucet provides a best-effort client for the network's test
// fund faucet.
//
// The faucet is an external collaborator: the application asks it to top
// up an address before minting or purchasing on a test network. Responses
// fall into three distinct statuses:
//
//   - Granted: funds are on their way.
//   - RateLimited: the address asked too recently; try later or use a
//     manual faucet. This is not a failure.
//   - Failed: the faucet rejected the request or is unreachable.
//
// Keeping RateLimited separate from Failed lets callers present the right
// guidance to the user instead of a generic error.
package faucet
