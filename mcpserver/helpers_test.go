package mcpserver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/0xalexb/activenote/obsidian"

	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	file  obsidian.ActiveFile
	err   error
	panic any
	calls atomic.Int32
}

func (f *fakeSource) ActiveFile(context.Context) (obsidian.ActiveFile, error) {
	f.calls.Add(1)

	if f.panic != nil {
		panic(f.panic)
	}

	return f.file, f.err
}

type rpcResponse struct {
	Result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		IsError bool `json:"isError"`
		Tools   []struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Annotations struct {
				ReadOnlyHint *bool `json:"readOnlyHint"`
			} `json:"annotations"`
		} `json:"tools"`
		ServerInfo struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"serverInfo"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeResponse(t *testing.T, data []byte) rpcResponse {
	t.Helper()

	var resp rpcResponse

	require.NoError(t, json.Unmarshal(data, &resp))

	return resp
}

func handle(t *testing.T, srv *Server, payload string) rpcResponse {
	t.Helper()

	msg := srv.mcp.HandleMessage(context.Background(), json.RawMessage(payload))

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	return decodeResponse(t, data)
}

const toolsCallRequest = `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"get_active_file","arguments":{}}}`
