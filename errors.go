package jsonrpc

import "fmt"

// ErrorKind identifies one way a JSON-RPC round-trip can fail.
type ErrorKind string

const (
	// ErrorKindDecode means the payload bytes were not valid JSON.
	ErrorKindDecode ErrorKind = "decode"
	// ErrorKindTransport means the byte stream could not be read or written.
	ErrorKindTransport ErrorKind = "transport"
	// ErrorKindRPC means the remote peer returned a JSON-RPC error object.
	ErrorKindRPC ErrorKind = "rpc"
	// ErrorKindMissingOutcome means a response had neither result nor error.
	ErrorKindMissingOutcome ErrorKind = "missing-outcome"
	// ErrorKindNonceMismatch means the response id did not match the request id.
	ErrorKindNonceMismatch ErrorKind = "nonce-mismatch"
	// ErrorKindVersionMismatch means the response declared a jsonrpc version
	// other than "2.0".
	ErrorKindVersionMismatch ErrorKind = "version-mismatch"
)

// Error is the unified failure value of the client. Exactly one kind is
// active: Err carries the underlying cause for the decode and transport
// kinds, RPC carries the wire payload for the rpc kind, and both are nil
// for the remaining kinds.
type Error struct {
	Kind ErrorKind
	Err  error
	RPC  *RpcError
}

// Predefined errors for the kinds that carry no payload.
var (
	ErrMissingOutcome  = &Error{Kind: ErrorKindMissingOutcome}
	ErrNonceMismatch   = &Error{Kind: ErrorKindNonceMismatch}
	ErrVersionMismatch = &Error{Kind: ErrorKindVersionMismatch}
)

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrorKindDecode:
		return fmt.Sprintf("JSON decode error: %v", e.Err)
	case ErrorKindTransport:
		return fmt.Sprintf("IO error response: %v", e.Err)
	case ErrorKindRPC:
		return fmt.Sprintf("RPC error response: %+v", *e.RPC)
	case ErrorKindMissingOutcome:
		return "Malformed RPC response"
	case ErrorKindNonceMismatch:
		return "Nonce of response did not match nonce of request"
	case ErrorKindVersionMismatch:
		return "`jsonrpc` field set to non-\"2.0\""
	}
	return string(e.Kind)
}

// Unwrap exposes the underlying cause for the decode kind only. The
// transport kind retains its cause in Err but does not chain it.
func (e *Error) Unwrap() error {
	if e.Kind == ErrorKindDecode {
		return e.Err
	}
	return nil
}

// DecodeError wraps a JSON decoding failure.
func DecodeError(err error) *Error {
	return &Error{Kind: ErrorKindDecode, Err: err}
}

// TransportError wraps a read or write failure from the I/O layer.
func TransportError(err error) *Error {
	return &Error{Kind: ErrorKindTransport, Err: err}
}

// FromRPCError wraps an error object decoded from a response envelope.
func FromRPCError(e RpcError) *Error {
	return &Error{Kind: ErrorKindRPC, RPC: &e}
}

// WrapError folds an arbitrary failure into the taxonomy. A *RpcError
// keeps its code and data; anything else becomes a code -1 error object
// carrying the failure's message. Failure sources need only implement
// the error interface.
func WrapError(err error) *Error {
	if rpcErr, ok := err.(*RpcError); ok {
		return FromRPCError(*rpcErr)
	}
	return &Error{Kind: ErrorKindRPC, RPC: &RpcError{Code: -1, Message: err.Error()}}
}

// RPCError converts the error to a wire-level error object, for answering
// a peer's request with a failure. The rpc kind yields a copy of its
// payload; every other kind degrades to code -1 with the display text as
// message and no data. The receiver remains usable.
func (e *Error) RPCError() RpcError {
	if e.Kind == ErrorKindRPC && e.RPC != nil {
		return *e.RPC
	}
	return RpcError{Code: -1, Message: e.Error()}
}
