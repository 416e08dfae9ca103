// Package geo resolves a visitor IP to a coarse location through hosted HTTP
// providers. Lookups are best effort: each provider gets a bounded timeout,
// the fallback only runs after the primary fails, and a total failure
// degrades to an unknown location instead of an error.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/herizorandria/go-link-gate/internal/metrics"
	"github.com/herizorandria/go-link-gate/internal/rules"
)

// Location is the resolved geography of a visitor.
type Location struct {
	IP      string
	Country string
	City    string
}

// Unknown is the degraded location used when every provider failed.
func Unknown(ip string) Location {
	return Location{IP: ip, Country: rules.UnknownCountry}
}

// Resolver is the lookup contract the access controller depends on.
type Resolver interface {
	Locate(ctx context.Context, ip string) Location
}

type provider struct {
	name        string
	urlTemplate string // fmt template receiving the IP
	parse       func([]byte) (Location, error)
}

// Client queries a primary provider and one fallback, sequentially.
type Client struct {
	http      *http.Client
	providers []provider
	logger    *zap.Logger
}

// NewClient builds a client for the given provider endpoints. Templates must
// contain a single %s receiving the IP, e.g. "http://ip-api.com/json/%s".
func NewClient(primaryTemplate, fallbackTemplate string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		http:   &http.Client{Timeout: timeout},
		logger: logger,
		providers: []provider{
			{name: "ip-api", urlTemplate: primaryTemplate, parse: parseIPAPI},
			{name: "ipapi.co", urlTemplate: fallbackTemplate, parse: parseIPAPICo},
		},
	}
}

// Locate resolves the IP, degrading to Unknown when both providers fail.
func (c *Client) Locate(ctx context.Context, ip string) Location {
	if ip == "" {
		return Unknown(ip)
	}

	for _, p := range c.providers {
		location, err := c.query(ctx, p, ip)
		if err != nil {
			c.logger.Warn("geo provider failed",
				zap.String("provider", p.name),
				zap.String("ip", ip),
				zap.Error(err),
			)
			continue
		}
		location.IP = ip
		return location
	}

	metrics.GeoFailures.Inc()
	return Unknown(ip)
}

func (c *Client) query(ctx context.Context, p provider, ip string) (Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(p.urlTemplate, ip), nil)
	if err != nil {
		return Location{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Location{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return Location{}, err
	}
	return p.parse(body)
}

func parseIPAPI(body []byte) (Location, error) {
	var payload struct {
		Status  string `json:"status"`
		Country string `json:"country"`
		City    string `json:"city"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return Location{}, err
	}
	if payload.Status != "success" || payload.Country == "" {
		return Location{}, fmt.Errorf("lookup status %q", payload.Status)
	}
	return Location{Country: payload.Country, City: payload.City}, nil
}

func parseIPAPICo(body []byte) (Location, error) {
	var payload struct {
		CountryName string `json:"country_name"`
		City        string `json:"city"`
		Error       bool   `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return Location{}, err
	}
	if payload.Error || payload.CountryName == "" {
		return Location{}, fmt.Errorf("lookup failed")
	}
	return Location{Country: payload.CountryName, City: payload.City}, nil
}
