package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/ejcdigital/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPLiturgyClient_URL(t *testing.T) {
	c := NewHTTPLiturgyClient("https://liturgia.up.railway.app/", nil, logging.Discard())
	got := c.URL(time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "https://liturgia.up.railway.app/v2/?dia=01&mes=06&ano=2025", got)
}

func TestHTTPLiturgyClient_Liturgy(t *testing.T) {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/", r.URL.Path)
		query = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"cor":"Verde","liturgia":"Domingo","leituras":{"evangelho":[{"referencia":"Mc 1","texto":"..."}]}}`))
	}))
	defer srv.Close()

	c := NewHTTPLiturgyClient(srv.URL, nil, logging.Discard())
	doc, err := c.Liturgy(context.Background(), time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "dia=02&mes=06&ano=2025", query)
	assert.Equal(t, "Verde", doc.Color)
	g, ok := doc.First("evangelho")
	require.True(t, ok)
	assert.Equal(t, "Mc 1", g.Reference)
}

func TestHTTPLiturgyClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	doc, err := NewHTTPLiturgyClient(srv.URL, nil, logging.Discard()).Liturgy(context.Background(), time.Now())
	require.ErrorIs(t, err, ErrServer)
	assert.Nil(t, doc)
	code, _ := StatusCode(err)
	assert.Equal(t, 500, code)
}

func TestHTTPLiturgyClient_ListIsSchemaError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := NewHTTPLiturgyClient(srv.URL, nil, logging.Discard()).Liturgy(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrSchema)
}
