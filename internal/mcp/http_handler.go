package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewHTTPHandler creates a plain JSON-RPC HTTP handler backed by the SDK
// server. Each request runs on a fresh in-memory session; unless the caller is
// itself initializing, the handler performs the initialize handshake so a
// single POSTed tools/call is enough.
func NewHTTPHandler(server *sdkmcp.Server, logger *slog.Logger) http.Handler {
	return &httpHandler{
		server: server,
		logger: logger,
	}
}

type httpHandler struct {
	server *sdkmcp.Server
	logger *slog.Logger
}

type jsonrpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      any             `json:"id,omitempty"`
}

type jsonrpcResponse struct {
	JSONRPC string        `json:"jsonrpc"`
	Result  any           `json:"result,omitempty"`
	Error   *jsonrpcError `json:"error,omitempty"`
	ID      any           `json:"id,omitempty"`
}

type jsonrpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, -32700, "Parse error", nil)
		return
	}

	var req jsonrpcRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.writeError(w, -32700, "Parse error", nil)
		return
	}

	t1, t2 := sdkmcp.NewInMemoryTransports()

	session, err := h.server.Connect(r.Context(), t1, nil)
	if err != nil {
		h.writeError(w, -32603, fmt.Sprintf("Internal error: %v", err), req.ID)
		return
	}
	defer session.Close()

	conn, err := t2.Connect(r.Context())
	if err != nil {
		h.writeError(w, -32603, fmt.Sprintf("Internal error: %v", err), req.ID)
		return
	}
	defer conn.Close()

	if req.Method != "initialize" {
		if err := h.handshake(r.Context(), conn); err != nil {
			h.writeError(w, -32603, fmt.Sprintf("Internal error: %v", err), req.ID)
			return
		}
	}

	id, err := jsonrpc.MakeID(req.ID)
	if err != nil {
		h.writeError(w, -32600, fmt.Sprintf("Invalid request: %v", err), req.ID)
		return
	}
	if err := conn.Write(r.Context(), &jsonrpc.Request{
		ID:     id,
		Method: req.Method,
		Params: req.Params,
	}); err != nil {
		h.writeError(w, -32603, fmt.Sprintf("Internal error: %v", err), req.ID)
		return
	}

	for {
		msg, err := conn.Read(r.Context())
		if err != nil {
			h.writeError(w, -32603, fmt.Sprintf("Internal error: %v", err), req.ID)
			return
		}
		// Skip server-initiated requests and notifications.
		resp, ok := msg.(*jsonrpc.Response)
		if !ok {
			continue
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(jsonrpcResponse{
			JSONRPC: "2.0",
			Result:  resp.Result,
			Error:   convertSDKError(resp.Error),
			ID:      resp.ID.Raw(),
		})
		return
	}
}

// handshake runs the initialize exchange on a fresh session so the forwarded
// request is accepted.
func (h *httpHandler) handshake(ctx context.Context, conn sdkmcp.Connection) error {
	params, err := json.Marshal(map[string]any{
		"protocolVersion": "2025-06-18",
		"capabilities":    map[string]any{},
		"clientInfo": map[string]any{
			"name":    "repolens-http",
			"version": "0.1.0",
		},
	})
	if err != nil {
		return err
	}

	id, err := jsonrpc.MakeID("bootstrap")
	if err != nil {
		return err
	}
	if err := conn.Write(ctx, &jsonrpc.Request{
		ID:     id,
		Method: "initialize",
		Params: params,
	}); err != nil {
		return err
	}

	for {
		msg, err := conn.Read(ctx)
		if err != nil {
			return err
		}
		resp, ok := msg.(*jsonrpc.Response)
		if !ok {
			continue
		}
		if resp.Error != nil {
			return fmt.Errorf("initialize failed: %s", resp.Error.Error())
		}
		break
	}

	return conn.Write(ctx, &jsonrpc.Request{
		Method: "notifications/initialized",
	})
}

func (h *httpHandler) writeError(w http.ResponseWriter, code int, message string, id any) {
	if h.logger != nil {
		h.logger.Debug("jsonrpc error", "code", code, "message", message)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK) // JSON-RPC errors are still 200 OK
	json.NewEncoder(w).Encode(jsonrpcResponse{
		JSONRPC: "2.0",
		Error: &jsonrpcError{
			Code:    code,
			Message: message,
		},
		ID: id,
	})
}

func convertSDKError(err error) *jsonrpcError {
	if err == nil {
		return nil
	}
	var wireErr *jsonrpc.Error
	if errors.As(err, &wireErr) {
		return &jsonrpcError{
			Code:    int(wireErr.Code),
			Message: wireErr.Message,
			Data:    wireErr.Data,
		}
	}
	return &jsonrpcError{
		Code:    -32603,
		Message: err.Error(),
	}
}
