package relation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var changesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "filmorate_relation_changes_total",
		Help: "Applied friendship and like mutations.",
	},
	[]string{"relation", "op"},
)

const (
	relationFriendship = "friendship"
	relationLike       = "like"

	opAdd    = "add"
	opRemove = "remove"
)
