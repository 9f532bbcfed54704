/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

var (
	// connectsTotal counts gateway connects by result
	connectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fabric_gateway",
			Name:      "connects_total",
			Help:      "Total number of gateway connects",
		},
		[]string{"result"},
	)

	// networkBuildsTotal counts network handle constructions by result
	networkBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fabric_gateway",
			Name:      "network_builds_total",
			Help:      "Total number of network handles built",
		},
		[]string{"result"},
	)

	// networkBuildDuration tracks how long opening a channel takes
	networkBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "fabric_gateway",
			Name:      "network_build_duration_seconds",
			Help:      "Network handle construction duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// networksOpen tracks the network handles currently cached by all gateways
	networksOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "fabric_gateway",
			Name:      "networks_open",
			Help:      "Number of network handles currently open",
		},
	)
)

func resultLabel(err error) string {
	if err != nil {
		return resultFailure
	}
	return resultSuccess
}
