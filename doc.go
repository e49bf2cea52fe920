// Package jsonrpc provides the error layer of a JSON-RPC 2.0 client:
// a unified Error taxonomy covering every way a round-trip can fail,
// the wire-level error object, and the lossless conversions between
// the two. All operations are pure value transformations, safe for
// concurrent use without coordination.
package jsonrpc
