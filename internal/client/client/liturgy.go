package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/ejcdigital/internal/client/models"
	"github.com/dmitrijs2005/ejcdigital/internal/logging"
)

const liturgyResource = "liturgia"

// LiturgyClient fetches the readings for one calendar day. Only the year,
// month and day of date are used.
type LiturgyClient interface {
	Liturgy(ctx context.Context, date time.Time) (*models.LiturgyDocument, error)
}

// HTTPLiturgyClient talks to the liturgy provider's v2 endpoint.
type HTTPLiturgyClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewHTTPLiturgyClient returns a client for the provider at baseURL. A nil hc
// uses http.DefaultClient.
func NewHTTPLiturgyClient(baseURL string, hc *http.Client, log logging.Logger) *HTTPLiturgyClient {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTPLiturgyClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		log:     log.With("component", "liturgy"),
	}
}

// URL builds the request URL for date: {base}/v2/?dia=DD&mes=MM&ano=YYYY.
func (c *HTTPLiturgyClient) URL(date time.Time) string {
	return fmt.Sprintf("%s/v2/?dia=%02d&mes=%02d&ano=%04d", c.baseURL, date.Day(), int(date.Month()), date.Year())
}

func (c *HTTPLiturgyClient) Liturgy(ctx context.Context, date time.Time) (*models.LiturgyDocument, error) {
	doc, err := getJSON[models.LiturgyDocument](ctx, c.http, c.log, c.URL(date), liturgyResource, ShapeObject)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
