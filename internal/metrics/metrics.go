// Package metrics exposes Prometheus counters for the persistence fallback
// chain. The host application decides whether and where to serve them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BoardLoads counts loadBoard resolutions by the tier that satisfied
	// them: remote, cache, seed or default.
	BoardLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "board_loads_total",
			Help: "Board loads by the fallback tier that produced the board",
		},
		[]string{"source"},
	)

	// BoardSaves counts persistence round-trips: remote means the API
	// accepted the write (and the cache was updated), local_only means the
	// API failed and only the cache holds the change, failed means neither
	// store accepted it.
	BoardSaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "board_saves_total",
			Help: "Board saves by outcome",
		},
		[]string{"outcome"},
	)
)

const (
	SourceRemote  = "remote"
	SourceCache   = "cache"
	SourceSeed    = "seed"
	SourceDefault = "default"

	OutcomeRemote    = "remote"
	OutcomeLocalOnly = "local_only"
	OutcomeFailed    = "failed"
)
