// Package metrics defines the Prometheus counters for the data service.
//
// There is no HTTP exposition endpoint: the service is in-process, so the
// counters are gathered directly (see the CLI stats command) or read in
// tests with the prometheus testutil helpers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreResets counts TTL expirations that wiped the collections.
	StoreResets = promauto.NewCounter(prometheus.CounterOpts{
		Name: "invoicepad_store_resets_total",
		Help: "Number of times the TTL guard wiped the expired collections.",
	})

	// CollectionReads counts repository reads per collection.
	CollectionReads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "invoicepad_collection_reads_total",
		Help: "Number of collection reads, by collection key.",
	}, []string{"collection"})

	// CollectionWrites counts repository writes per collection.
	CollectionWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "invoicepad_collection_writes_total",
		Help: "Number of collection writes, by collection key.",
	}, []string{"collection"})
)
