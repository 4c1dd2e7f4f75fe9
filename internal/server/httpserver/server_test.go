package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/dmitrijs2005/ejcdigital/internal/logging"
	"github.com/dmitrijs2005/ejcdigital/internal/server/documents"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, store *documents.Store) (*Server, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return New("127.0.0.1:0", store, logging.New(&buf, "debug", "json"), time.Second, time.Second), &buf
}

func do(t *testing.T, s *Server, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestServer_Health(t *testing.T) {
	s, _ := newTestServer(t, documents.Embedded())

	resp, _ := do(t, s, "/healthz")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestServer_ServesEveryDocument(t *testing.T) {
	s, _ := newTestServer(t, documents.Embedded())

	for _, name := range documents.Names {
		t.Run(name, func(t *testing.T) {
			resp, body := do(t, s, "/"+name)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.True(t, strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON))
			assert.Equal(t, "no-store", resp.Header.Get(fiber.HeaderCacheControl))

			var items []json.RawMessage
			require.NoError(t, json.Unmarshal(body, &items))
			assert.NotEmpty(t, items)
		})
	}
}

func TestServer_UnknownDocument(t *testing.T) {
	s, _ := newTestServer(t, documents.Embedded())

	resp, body := do(t, s, "/passwords.json")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"document not found"}`, string(body))
}

func TestServer_ServesDocumentsVerbatim(t *testing.T) {
	raw := `{"broken": true}`
	s, _ := newTestServer(t, documents.New(fstest.MapFS{
		"events.json": {Data: []byte(raw)},
	}))

	resp, body := do(t, s, "/events.json")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, raw, string(body))

	resp, _ = do(t, s, "/members.json")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestServer_LogsRequests(t *testing.T) {
	s, buf := newTestServer(t, documents.Embedded())

	req := httptest.NewRequest(http.MethodGet, "/relics.json", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-42")
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "http", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/relics.json", entry["path"])
	assert.EqualValues(t, 200, entry["status"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "http_server", entry["component"])
}

func TestServer_LogsNotFoundStatus(t *testing.T) {
	s, buf := newTestServer(t, documents.Embedded())

	do(t, s, "/nope.json")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.EqualValues(t, 404, entry["status"])
	id, _ := entry["request_id"].(string)
	_, err := uuid.Parse(id)
	assert.NoError(t, err, "generated request ids are UUIDs")
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	s := New(addr, documents.Embedded(), logging.Discard(), time.Second, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
