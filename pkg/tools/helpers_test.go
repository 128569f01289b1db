package tools

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"github.com/amaptools/amapmcp/pkg/amap"
	"github.com/amaptools/amapmcp/pkg/testutil"
)

// fakeUpstream serves canned JSON per path and records what it saw.
type fakeUpstream struct {
	mu        sync.Mutex
	paths     []string
	lastQuery map[string]string
	responses map[string]string
}

func newFakeUpstream() *fakeUpstream {
	return &fakeUpstream{responses: make(map[string]string)}
}

func (f *fakeUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.paths = append(f.paths, r.URL.Path)
	f.lastQuery = make(map[string]string)
	for k, v := range r.URL.Query() {
		f.lastQuery[k] = v[0]
	}
	f.mu.Unlock()

	body, ok := f.responses[r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	fmt.Fprint(w, body)
}

func (f *fakeUpstream) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.paths)
}

func (f *fakeUpstream) query(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastQuery[key]
}

// newTestRegistry wires a registry to a fake upstream server.
func newTestRegistry(t *testing.T, f *fakeUpstream) *Registry {
	t.Helper()
	ts := httptest.NewServer(f)
	t.Cleanup(ts.Close)

	client := amap.NewClient(amap.Config{Key: "test-key", HostV3: ts.URL, HostV4: ts.URL})
	client.SetLogger(testutil.DiscardLogger())
	return NewRegistry(testutil.DiscardLogger(), client)
}

// newKeylessRegistry wires a registry with no API key configured.
func newKeylessRegistry(t *testing.T, f *fakeUpstream) *Registry {
	t.Helper()
	ts := httptest.NewServer(f)
	t.Cleanup(ts.Close)

	client := amap.NewClient(amap.Config{HostV3: ts.URL, HostV4: ts.URL})
	client.SetLogger(testutil.DiscardLogger())
	return NewRegistry(testutil.DiscardLogger(), client)
}

// callReq builds a CallToolRequest with the given arguments.
func callReq(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

// resultText extracts the text content of a tool result.
func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}
