// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"github.com/prometheus/client_golang/prometheus"
)

const outcomeSuccess = "success"

var (
	fetchCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "weather",
			Subsystem: "fetch",
			Name:      "requests_total",
			Help:      "Counts outbound requests by outcome.",
		},
		[]string{"outcome"},
	)
	toolCallCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "weather",
			Subsystem: "tool",
			Name:      "calls_total",
			Help:      "Counts tool calls by tool and outcome.",
		},
		[]string{"tool", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		fetchCounter,
		toolCallCounter,
	)
}

//counterfeiter:generate -o ../mocks/metrics.go --fake-name Metrics . Metrics
type Metrics interface {
	FetchSuccess()
	FetchFailure(kind FailureKind)
	ToolCall(tool string, isError bool)
}

func NewMetrics() Metrics {
	return &metrics{}
}

type metrics struct{}

func (m *metrics) FetchSuccess() {
	fetchCounter.With(prometheus.Labels{"outcome": outcomeSuccess}).Inc()
}

func (m *metrics) FetchFailure(kind FailureKind) {
	fetchCounter.With(prometheus.Labels{"outcome": string(kind)}).Inc()
}

func (m *metrics) ToolCall(tool string, isError bool) {
	outcome := outcomeSuccess
	if isError {
		outcome = "error"
	}
	toolCallCounter.With(prometheus.Labels{"tool": tool, "outcome": outcome}).Inc()
}
