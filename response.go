package jsonrpc

import "encoding/json"

// Version is the only protocol version a response may declare.
const Version = "2.0"

// Response represents a standard JSON-RPC 2.0 response envelope.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RpcError       `json:"error,omitempty"`
}

// DecodeResponse unmarshals a response envelope from raw bytes.
func DecodeResponse(data []byte) (*Response, *Error) {
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, DecodeError(err)
	}
	return &resp, nil
}

// ResultFor validates the envelope against the id of the outstanding
// request and returns the raw result. Checks run in order: protocol
// version, id match, peer-reported error, result presence.
func (r *Response) ResultFor(id any) (json.RawMessage, *Error) {
	if r.JSONRPC != Version {
		return nil, ErrVersionMismatch
	}
	if !idsEqual(r.ID, id) {
		return nil, ErrNonceMismatch
	}
	if r.Error != nil {
		return nil, FromRPCError(*r.Error)
	}
	if r.Result == nil {
		return nil, ErrMissingOutcome
	}
	return r.Result, nil
}

// idsEqual compares request ids across the numeric widening that
// encoding/json applies (numbers decode as float64). Only numbers,
// strings, and null are valid JSON-RPC ids; anything else never matches.
func idsEqual(a, b any) bool {
	if na, ok := numericID(a); ok {
		nb, ok := numericID(b)
		return ok && na == nb
	}
	if sa, ok := a.(string); ok {
		sb, ok := b.(string)
		return ok && sa == sb
	}
	return a == nil && b == nil
}

func numericID(id any) (float64, bool) {
	switch v := id.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}
