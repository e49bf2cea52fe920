package jsonrpc

import (
	"bytes"
	"encoding/json"
)

// RpcError represents a standard JSON-RPC 2.0 error object.
type RpcError struct {
	Code    int32           `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Standard JSON-RPC error codes
const (
	ParseError     = -32700
	InvalidRequest = -32600
	MethodNotFound = -32601
	InvalidParams  = -32602
	InternalError  = -32603
)

// Error implements the error interface.
func (e *RpcError) Error() string {
	return e.Message
}

// Equal reports whether two error objects have the same code, message,
// and data. Data compares by wire bytes; absent equals absent.
func (e RpcError) Equal(other RpcError) bool {
	return e.Code == other.Code &&
		e.Message == other.Message &&
		bytes.Equal(e.Data, other.Data)
}
