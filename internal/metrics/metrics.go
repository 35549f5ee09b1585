package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Mutations counts create/update/delete/increment/decrement calls by outcome.
	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "homestock_mutations_total",
		Help: "Item mutations by operation and outcome.",
	}, []string{"op", "outcome"})

	// Items tracks the store size, refreshed on every snapshot reload.
	Items = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "homestock_items",
		Help: "Number of items currently in the store.",
	})
)

func Handler() http.Handler { return promhttp.Handler() }
