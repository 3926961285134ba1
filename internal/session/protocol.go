// Package session serves path completions to an editor over stdio.
// Messages are JSON-RPC 2.0 objects, one per line.
package session

import (
	"encoding/json"

	"github.com/atinylittleshell/pathintel/internal/completion"
)

// JSON-RPC 2.0 protocol types

// JSONRPCVersion is the JSON-RPC version spoken by the server.
const JSONRPCVersion = "2.0"

// JSONRPCRequest represents a JSON-RPC 2.0 request. A nil ID marks a notification.
type JSONRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      *int            `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// JSONRPCResponse represents a JSON-RPC 2.0 response.
type JSONRPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      *int            `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *JSONRPCError   `json:"error,omitempty"`
}

// JSONRPCError represents a JSON-RPC 2.0 error.
type JSONRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Standard JSON-RPC error codes
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
)

// Method names
const (
	MethodInitialize = "initialize"
	MethodComplete   = "completion/complete"
	MethodStats      = "completion/stats"
	MethodDidOpen    = "document/didOpen"
	MethodShutdown   = "shutdown"
	MethodExit       = "exit"
)

const (
	ServerName      = "pathintel"
	ProtocolVersion = 1
)

// InitializeResult represents the result of the initialize request.
type InitializeResult struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	ProtocolVersion int    `json:"protocolVersion"`
	CacheCapacity   int    `json:"cacheCapacity"`
}

// CompleteParams are the parameters of completion/complete.
type CompleteParams = completion.Request

// CompleteResult is the result of completion/complete.
type CompleteResult struct {
	Suggestions []completion.Suggestion `json:"suggestions"`
}

// DidOpenParams are the parameters of the document/didOpen notification.
type DidOpenParams struct {
	FileURI string `json:"fileUri"`
}
