package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var authEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "tekiro_client",
		Name:      "auth_events_total",
		Help:      "Login, logout and token validation outcomes.",
	},
	[]string{"event"},
)

// Values of the event label.
const (
	eventLoginSucceeded   = "login_succeeded"
	eventLoginFailed      = "login_failed"
	eventLogout           = "logout"
	eventTokenValid       = "token_valid"
	eventTokenInvalidated = "token_invalidated"
)
