package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/ejcdigital/internal/client/models"
	"github.com/dmitrijs2005/ejcdigital/internal/logging"
)

// Fixture document names.
const (
	ResourceUsers   = "users.json"
	ResourceMembers = "members.json"
	ResourceEvents  = "events.json"
	ResourceRelics  = "relics.json"
)

// FixtureClient reads the static JSON documents. Every call is a full
// document fetch; nothing is cached.
type FixtureClient interface {
	Users(ctx context.Context) ([]models.Credential, error)
	Members(ctx context.Context) ([]models.Member, error)
	Events(ctx context.Context) ([]models.Event, error)
	Relics(ctx context.Context) ([]models.Relic, error)
}

// HTTPFixtureClient fetches fixtures relative to a base URL.
type HTTPFixtureClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewHTTPFixtureClient returns a client for the documents under baseURL.
// A nil hc uses http.DefaultClient.
func NewHTTPFixtureClient(baseURL string, hc *http.Client, log logging.Logger) *HTTPFixtureClient {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTPFixtureClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		log:     log.With("component", "fixtures"),
	}
}

func (c *HTTPFixtureClient) url(resource string) string {
	u, err := url.JoinPath(c.baseURL, resource)
	if err != nil {
		return c.baseURL + "/" + resource
	}
	return u
}

func (c *HTTPFixtureClient) Users(ctx context.Context) ([]models.Credential, error) {
	return getJSON[[]models.Credential](ctx, c.http, c.log, c.url(ResourceUsers), ResourceUsers, ShapeArray)
}

func (c *HTTPFixtureClient) Members(ctx context.Context) ([]models.Member, error) {
	return getJSON[[]models.Member](ctx, c.http, c.log, c.url(ResourceMembers), ResourceMembers, ShapeArray)
}

func (c *HTTPFixtureClient) Events(ctx context.Context) ([]models.Event, error) {
	return getJSON[[]models.Event](ctx, c.http, c.log, c.url(ResourceEvents), ResourceEvents, ShapeArray)
}

func (c *HTTPFixtureClient) Relics(ctx context.Context) ([]models.Relic, error) {
	return getJSON[[]models.Relic](ctx, c.http, c.log, c.url(ResourceRelics), ResourceRelics, ShapeArray)
}
