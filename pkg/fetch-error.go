// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	stderrors "errors"
	"fmt"
)

// FailureKind classifies why a fetch did not produce usable data.
type FailureKind string

const (
	TransportFailure  FailureKind = "transport"
	HTTPStatusFailure FailureKind = "http_status"
	DecodeFailure     FailureKind = "decode"
	ShapeFailure      FailureKind = "shape"
)

var (
	ErrTransport  = stderrors.New("transport failure")
	ErrHTTPStatus = stderrors.New("http status failure")
	ErrDecode     = stderrors.New("decode failure")
	ErrShape      = stderrors.New("shape failure")
)

func (k FailureKind) sentinel() error {
	switch k {
	case TransportFailure:
		return ErrTransport
	case HTTPStatusFailure:
		return ErrHTTPStatus
	case DecodeFailure:
		return ErrDecode
	case ShapeFailure:
		return ErrShape
	default:
		return nil
	}
}

// FetchError is returned for every request that could not be turned into data.
// errors.Is matches it against the sentinel of its Kind.
type FetchError struct {
	Kind       FailureKind
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.Kind == HTTPStatusFailure:
		return fmt.Sprintf("get %s failed with status %d", e.URL, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("get %s failed (%s): %v", e.URL, e.Kind, e.Err)
	default:
		return fmt.Sprintf("get %s failed (%s)", e.URL, e.Kind)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	sentinel := e.Kind.sentinel()
	return sentinel != nil && target == sentinel
}

// FailureKindOf returns the kind of the first FetchError in err's chain.
func FailureKindOf(err error) (FailureKind, bool) {
	var fetchErr *FetchError
	if stderrors.As(err, &fetchErr) {
		return fetchErr.Kind, true
	}
	return "", false
}

func newShapeError(url string, format string, args ...interface{}) *FetchError {
	return &FetchError{
		Kind: ShapeFailure,
		URL:  url,
		Err:  fmt.Errorf(format, args...),
	}
}
