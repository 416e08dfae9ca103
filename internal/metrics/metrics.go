// Package metrics registers the engine's prometheus counters.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Resolutions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "link_resolutions_total",
		Help: "Resolutions by terminal outcome.",
	}, []string{"outcome"})
	BotDiversions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_diversions_total",
		Help: "Silent bot diversions by bot type.",
	}, []string{"bot_type"})
	ClicksDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "clicks_dropped_total",
		Help: "Click records dropped because the recorder buffer was full.",
	})
	ClickFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "click_record_failures_total",
		Help: "Click records that could not be persisted.",
	})
	GeoFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geo_lookup_failures_total",
		Help: "Geolocation lookups where every provider failed.",
	})
	BotCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bot_cache_hits_total",
		Help: "Bot classification cache hits.",
	})
	BotCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bot_cache_misses_total",
		Help: "Bot classification cache misses.",
	})
)

func init() {
	prometheus.MustRegister(Resolutions, BotDiversions, ClicksDropped, ClickFailures, GeoFailures, BotCacheHits, BotCacheMisses)
}

// Handler serves the prometheus scrape endpoint.
func Handler(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}
