// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/golang/glog"
)

const geoJSONContentType = "application/geo+json"

//counterfeiter:generate -o ../mocks/fetcher.go --fake-name Fetcher . Fetcher

// Fetcher issues GET requests. Every failure is a *FetchError.
type Fetcher interface {
	// FetchJSON decodes the body of a 2xx response into target.
	FetchJSON(ctx context.Context, url string, target interface{}) error
	// FetchText returns the body of a 2xx response.
	FetchText(ctx context.Context, url string) (string, error)
}

// NewHTTPFetcher owns a dedicated http.Client. Callers must Close it.
func NewHTTPFetcher(config Config, metrics Metrics) *HTTPFetcher {
	maxBodySize := config.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodySize
	}
	return &HTTPFetcher{
		maxBodySize: maxBodySize,
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
		},
		userAgent: config.UserAgent,
		metrics:   metrics,
	}
}

type HTTPFetcher struct {
	httpClient  *http.Client
	userAgent   string
	maxBodySize int64
	metrics     Metrics
}

func (f *HTTPFetcher) FetchJSON(ctx context.Context, url string, target interface{}) error {
	body, err := f.get(ctx, url, geoJSONContentType)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, target); err != nil {
		return f.fail(&FetchError{Kind: DecodeFailure, URL: url, Err: err})
	}
	f.metrics.FetchSuccess()
	return nil
}

func (f *HTTPFetcher) FetchText(ctx context.Context, url string) (string, error) {
	body, err := f.get(ctx, url, "")
	if err != nil {
		return "", err
	}
	f.metrics.FetchSuccess()
	return string(body), nil
}

// Close releases idle connections held by the client.
func (f *HTTPFetcher) Close() {
	f.httpClient.CloseIdleConnections()
}

func (f *HTTPFetcher) get(ctx context.Context, url string, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, f.fail(&FetchError{Kind: TransportFailure, URL: url, Err: err})
	}
	req.Header.Set("User-Agent", f.userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	glog.V(2).Infof("GET %s", url)
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, f.fail(&FetchError{Kind: TransportFailure, URL: url, Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, f.fail(&FetchError{Kind: HTTPStatusFailure, URL: url, StatusCode: resp.StatusCode})
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return nil, f.fail(&FetchError{Kind: TransportFailure, URL: url, Err: err})
	}
	if int64(len(body)) > f.maxBodySize {
		return nil, f.fail(&FetchError{
			Kind: TransportFailure,
			URL:  url,
			Err:  fmt.Errorf("response body exceeds %d bytes", f.maxBodySize),
		})
	}
	glog.V(3).Infof("GET %s completed with status %d (%d bytes)", url, resp.StatusCode, len(body))
	return body, nil
}

func (f *HTTPFetcher) fail(err *FetchError) error {
	f.metrics.FetchFailure(err.Kind)
	glog.V(2).Infof("%v", err)
	return err
}
