// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bborbe/weather_mcp_server/pkg"
)

func counterValue(name string, labels map[string]string) float64 {
	families, err := prometheus.DefaultGatherer.Gather()
	Expect(err).To(BeNil())
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
	metricLoop:
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if labels[label.GetName()] != label.GetValue() {
					continue metricLoop
				}
			}
			return metric.GetCounter().GetValue()
		}
	}
	return 0
}

var _ = Describe("Metrics", func() {
	var metrics pkg.Metrics

	BeforeEach(func() {
		metrics = pkg.NewMetrics()
	})

	It("counts fetch outcomes", func() {
		before := counterValue("weather_fetch_requests_total", map[string]string{"outcome": "success"})
		metrics.FetchSuccess()
		Expect(counterValue("weather_fetch_requests_total", map[string]string{"outcome": "success"})).To(Equal(before + 1))
	})

	It("counts fetch failures by kind", func() {
		before := counterValue("weather_fetch_requests_total", map[string]string{"outcome": "http_status"})
		metrics.FetchFailure(pkg.HTTPStatusFailure)
		Expect(counterValue("weather_fetch_requests_total", map[string]string{"outcome": "http_status"})).To(Equal(before + 1))
	})

	It("counts tool calls", func() {
		labels := map[string]string{"tool": "get_alerts", "outcome": "error"}
		before := counterValue("weather_tool_calls_total", labels)
		metrics.ToolCall("get_alerts", true)
		Expect(counterValue("weather_tool_calls_total", labels)).To(Equal(before + 1))
	})
})
