// Package utils provides common utility functions for the marketplace
// application. It includes helper functions for loose-typed conversion of
// ledger event and object fields, which arrive as strings, numbers, or
// byte slices depending on the node version.
package utils
