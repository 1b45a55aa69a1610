// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg_test

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/weather_mcp_server/mocks"
	"github.com/bborbe/weather_mcp_server/pkg"
)

var _ = Describe("WeatherTools", func() {
	var ctx context.Context
	var fetcher *mocks.Fetcher
	var weather *pkg.Weather
	var tool server.ServerTool
	var request mcp.CallToolRequest
	var result *mcp.CallToolResult
	var err error

	BeforeEach(func() {
		ctx = context.Background()
		fetcher = &mocks.Fetcher{}
		weather = pkg.NewWeather(pkg.NewConfig(), fetcher)
		request = mcp.CallToolRequest{}
	})

	JustBeforeEach(func() {
		result, err = tool.Handler(ctx, request)
	})

	Context("get_alerts", func() {
		BeforeEach(func() {
			tool = pkg.NewGetAlertsTool(weather)
		})

		It("creates tool with correct name", func() {
			Expect(tool.Tool.Name).To(Equal("get_alerts"))
		})

		Context("with lower case state", func() {
			BeforeEach(func() {
				request = callToolRequest("get_alerts", map[string]interface{}{"state": "ny"})
				fetcher.FetchJSONStub = respondWith(map[string]string{
					"https://api.weather.gov/alerts/active/area/NY": `{"features":[]}`,
				})
			})

			It("returns no active alerts", func() {
				Expect(err).To(BeNil())
				Expect(result.IsError).To(BeFalse())
				Expect(getTextContent(result.Content[0])).To(Equal("No active alerts found."))
			})
		})

		Context("with invalid state", func() {
			BeforeEach(func() {
				request = callToolRequest("get_alerts", map[string]interface{}{"state": "California"})
			})

			It("returns error result without fetching", func() {
				Expect(result.IsError).To(BeTrue())
				Expect(getTextContent(result.Content[0])).To(Equal("state must be a two-letter code"))
				Expect(fetcher.FetchJSONCallCount()).To(Equal(0))
			})
		})

		Context("when fetch fails", func() {
			BeforeEach(func() {
				request = callToolRequest("get_alerts", map[string]interface{}{"state": "TX"})
				fetcher.FetchJSONReturns(&pkg.FetchError{Kind: pkg.TransportFailure, Err: errors.New("timeout")})
			})

			It("returns unable message as error result", func() {
				Expect(err).To(BeNil())
				Expect(result.IsError).To(BeTrue())
				Expect(getTextContent(result.Content[0])).To(Equal("Unable to fetch alerts."))
			})
		})
	})

	Context("get_forecast", func() {
		BeforeEach(func() {
			tool = pkg.NewGetForecastTool(weather)
		})

		It("creates tool with correct name", func() {
			Expect(tool.Tool.Name).To(Equal("get_forecast"))
		})

		Context("with valid coordinates", func() {
			BeforeEach(func() {
				request = callToolRequest("get_forecast", map[string]interface{}{
					"latitude":  40.0,
					"longitude": -105.5,
				})
				fetcher.FetchJSONStub = respondWith(map[string]string{
					"https://api.weather.gov/points/40,-105.5": `{"properties":{"forecast":"https://x/forecast"}}`,
					"https://x/forecast":                       periodsJSON(1),
				})
			})

			It("returns the forecast", func() {
				Expect(err).To(BeNil())
				Expect(result.IsError).To(BeFalse())
				Expect(getTextContent(result.Content[0])).To(Equal("\nPeriod 1:\nTemperature: 61°F\nWind: 1 mph NW\nForecast: Forecast 1\n"))
			})
		})

		Context("with zero coordinates", func() {
			BeforeEach(func() {
				request = callToolRequest("get_forecast", map[string]interface{}{
					"latitude":  0.0,
					"longitude": 0.0,
				})
				fetcher.FetchJSONReturns(&pkg.FetchError{Kind: pkg.HTTPStatusFailure, StatusCode: 404})
			})

			It("queries the point", func() {
				_, url, _ := fetcher.FetchJSONArgsForCall(0)
				Expect(url).To(Equal("https://api.weather.gov/points/0,0"))
				Expect(getTextContent(result.Content[0])).To(Equal("Unable to fetch forecast data for this location."))
			})
		})

		Context("with missing longitude", func() {
			BeforeEach(func() {
				request = callToolRequest("get_forecast", map[string]interface{}{
					"latitude": 40.0,
				})
			})

			It("returns error result", func() {
				Expect(result.IsError).To(BeTrue())
				Expect(getTextContent(result.Content[0])).To(Equal("latitude and longitude are required"))
				Expect(fetcher.FetchJSONCallCount()).To(Equal(0))
			})
		})

		Context("with latitude out of range", func() {
			BeforeEach(func() {
				request = callToolRequest("get_forecast", map[string]interface{}{
					"latitude":  91.0,
					"longitude": 0.0,
				})
			})

			It("returns error result", func() {
				Expect(result.IsError).To(BeTrue())
				Expect(getTextContent(result.Content[0])).To(Equal("latitude must be between -90 and 90"))
			})
		})
	})

	Context("fetch_weather", func() {
		BeforeEach(func() {
			tool = pkg.NewFetchWeatherTool(weather)
		})

		Context("with city", func() {
			BeforeEach(func() {
				request = callToolRequest("fetch_weather", map[string]interface{}{"city": "New York"})
				fetcher.FetchTextReturns("cloudy", nil)
			})

			It("returns the body", func() {
				Expect(err).To(BeNil())
				Expect(getTextContent(result.Content[0])).To(Equal("cloudy"))
			})

			It("escapes the city in the url", func() {
				_, url := fetcher.FetchTextArgsForCall(0)
				Expect(url).To(Equal("https://api.weather.com/New%20York"))
			})
		})

		Context("when fetch fails", func() {
			BeforeEach(func() {
				request = callToolRequest("fetch_weather", map[string]interface{}{"city": "Paris"})
				fetcher.FetchTextReturns("", &pkg.FetchError{Kind: pkg.HTTPStatusFailure, StatusCode: 404})
			})

			It("returns error result", func() {
				Expect(result.IsError).To(BeTrue())
				Expect(getTextContent(result.Content[0])).To(Equal("Unable to fetch weather for Paris."))
			})
		})

		Context("without city", func() {
			BeforeEach(func() {
				request = callToolRequest("fetch_weather", map[string]interface{}{})
			})

			It("returns error result", func() {
				Expect(result.IsError).To(BeTrue())
				Expect(getTextContent(result.Content[0])).To(Equal("city is required"))
			})
		})
	})
})
