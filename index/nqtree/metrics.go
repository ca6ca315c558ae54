package nqtree

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/viant/nqtree/geom"
)

var (
	insertsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nqtree_inserts_total",
			Help: "Insert calls by outcome (stored or rejected)",
		},
		[]string{"tree", "result"},
	)

	subdivisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nqtree_subdivisions_total",
			Help: "Nodes that divided into orthant children",
		},
		[]string{"tree"},
	)

	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nqtree_searches_total",
			Help: "Region searches by region kind",
		},
		[]string{"tree", "region"},
	)

	itemsGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "nqtree_items",
			Help: "Items currently stored",
		},
		[]string{"tree"},
	)
)

func regionKind(region geom.Region) string {
	switch region.(type) {
	case *geom.Box:
		return "box"
	case *geom.Sphere:
		return "sphere"
	default:
		return "other"
	}
}
