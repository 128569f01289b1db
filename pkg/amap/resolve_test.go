package amap

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaptools/amapmcp/pkg/testutil"
)

// recordingHandler serves canned JSON per path and records the order of
// requests it saw.
type recordingHandler struct {
	mu        sync.Mutex
	paths     []string
	lastQuery map[string]string
	responses map[string]string
	status    map[string]int
}

func newRecordingHandler() *recordingHandler {
	return &recordingHandler{
		responses: make(map[string]string),
		status:    make(map[string]int),
	}
}

func (h *recordingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.paths = append(h.paths, r.URL.Path)
	h.lastQuery = make(map[string]string)
	for k, v := range r.URL.Query() {
		h.lastQuery[k] = v[0]
	}
	h.mu.Unlock()

	if code, ok := h.status[r.URL.Path]; ok {
		w.WriteHeader(code)
		return
	}
	body, ok := h.responses[r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	fmt.Fprint(w, body)
}

func (h *recordingHandler) requestCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.paths)
}

func (h *recordingHandler) seenPaths() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.paths...)
}

func (h *recordingHandler) query(key string) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastQuery[key]
}

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	c := NewClient(Config{Key: "test-key", HostV3: ts.URL, HostV4: ts.URL})
	c.SetLogger(testutil.DiscardLogger())
	return c
}

func TestIsCoordinate(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"116.41,39.92", true},
		{"-116.41,-39.92", true},
		{"116,39", true},
		{"5,10", true}, // permissive matching is part of the contract
		{" 116.41,39.92 ", true},
		{"116.41, 39.92", false},
		{"116.41", false},
		{"1,2,3", false},
		{"北京站", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCoordinate(tt.input))
		})
	}
}

func TestResolveLocationCoordinateLiteral(t *testing.T) {
	h := newRecordingHandler()
	c := newTestClient(t, h)

	loc := c.ResolveLocation(context.Background(), "116.41,39.92", "")

	assert.True(t, loc.Resolved())
	assert.Equal(t, "116.41,39.92", loc.Coordinate)
	assert.Empty(t, loc.AdminCode)
	assert.Equal(t, "116.41,39.92", loc.Name)
	assert.Zero(t, h.requestCount(), "coordinate literals must not reach upstream")
}

func TestResolveLocationTrimsLiteral(t *testing.T) {
	h := newRecordingHandler()
	c := newTestClient(t, h)

	loc := c.ResolveLocation(context.Background(), "  116.41,39.92  ", "")

	assert.Equal(t, "116.41,39.92", loc.Coordinate)
	assert.Zero(t, h.requestCount())
}

func TestResolveLocationGeocodeFirst(t *testing.T) {
	h := newRecordingHandler()
	h.responses["/geocode/geo"] = `{
		"status": "1", "info": "OK",
		"geocodes": [
			{"location": "116.397428,39.90923", "adcode": "110101", "formatted_address": "北京市东城区天安门"},
			{"location": "0,0", "adcode": "999999", "formatted_address": "错误匹配"}
		]
	}`
	c := newTestClient(t, h)

	loc := c.ResolveLocation(context.Background(), "天安门", "北京")

	require.True(t, loc.Resolved())
	assert.Equal(t, "116.397428,39.90923", loc.Coordinate)
	assert.Equal(t, "110101", loc.AdminCode)
	assert.Equal(t, "北京市东城区天安门", loc.Name)
	assert.Equal(t, []string{"/geocode/geo"}, h.seenPaths(), "POI fallback must not run after a geocode hit")
	assert.Equal(t, "北京", h.query("city"))
}

func TestResolveLocationFallsBackToPOI(t *testing.T) {
	h := newRecordingHandler()
	h.responses["/geocode/geo"] = `{"status": "0", "info": "INVALID_PARAMS", "geocodes": []}`
	h.responses["/place/text"] = `{
		"status": "1", "info": "OK",
		"pois": [{"location": "116.403963,39.915119", "adcode": "110101", "name": "故宫博物院"}]
	}`
	c := newTestClient(t, h)

	loc := c.ResolveLocation(context.Background(), "故宫", "北京")

	require.True(t, loc.Resolved())
	assert.Equal(t, "116.403963,39.915119", loc.Coordinate)
	assert.Equal(t, "故宫博物院", loc.Name)
	assert.Equal(t, []string{"/geocode/geo", "/place/text"}, h.seenPaths())
	assert.Equal(t, "true", h.query("citylimit"))
	assert.Equal(t, "1", h.query("offset"))
}

func TestResolveLocationTransportFaultFallsThrough(t *testing.T) {
	h := newRecordingHandler()
	h.status["/geocode/geo"] = http.StatusInternalServerError
	h.responses["/place/text"] = `{
		"status": "1", "info": "OK",
		"pois": [{"location": "121.499718,31.239703", "adcode": "310101", "name": "外滩"}]
	}`
	c := newTestClient(t, h)

	loc := c.ResolveLocation(context.Background(), "外滩", "")

	require.True(t, loc.Resolved())
	assert.Equal(t, "外滩", loc.Name)
	assert.Equal(t, "false", h.query("citylimit"))
}

func TestResolveLocationBothFail(t *testing.T) {
	h := newRecordingHandler()
	h.responses["/geocode/geo"] = `{"status": "0", "info": "NO_MATCH"}`
	h.responses["/place/text"] = `{"status": "1", "info": "OK", "pois": []}`
	c := newTestClient(t, h)

	loc := c.ResolveLocation(context.Background(), "某不存在的地点xyz123", "")

	assert.False(t, loc.Resolved())
	assert.Empty(t, loc.Coordinate)
	assert.Empty(t, loc.AdminCode)
	assert.Equal(t, "某不存在的地点xyz123", loc.Name)
	assert.Equal(t, []string{"/geocode/geo", "/place/text"}, h.seenPaths())
}

func TestResolveLocationEmptyInput(t *testing.T) {
	h := newRecordingHandler()
	c := newTestClient(t, h)

	loc := c.ResolveLocation(context.Background(), "", "")

	assert.False(t, loc.Resolved())
	assert.Zero(t, h.requestCount())
}
