package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checkoutsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "library",
		Name:      "checkouts_total",
		Help:      "Checkout attempts by result.",
	}, []string{"result"})

	returnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "library",
		Name:      "returns_total",
		Help:      "Return attempts by result.",
	}, []string{"result"})

	reviewsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "library",
		Name:      "reviews_total",
		Help:      "Reviews accepted.",
	})
)
