// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package testhelper provides test doubles shared by the package tests.
package testhelper

import (
	"io"
	"net/http"
	"os"
	"testing"
)

// MockRoundTripper is a http.RoundTripper that hands every request to Fn.
type MockRoundTripper struct {
	Fn func(*http.Request) (*http.Response, error)
}

func (m MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.Fn(req)
}

// FileResponder returns a MockRoundTripper that answers every request with the given status
// code and the content of file. The last request is stored in lastReq if it is not nil.
func FileResponder(t *testing.T, status int, file string, lastReq **http.Request) MockRoundTripper {
	t.Helper()
	return MockRoundTripper{Fn: func(req *http.Request) (*http.Response, error) {
		if lastReq != nil {
			*lastReq = req
		}
		data, err := os.Open(file)
		if err != nil {
			t.Fatalf("failed to open JSON response file: %s", err)
		}
		return &http.Response{
			StatusCode: status,
			Body:       data,
			Header:     make(http.Header),
		}, nil
	}}
}

// BodyResponder returns a MockRoundTripper that answers every request with the given status
// code and body.
func BodyResponder(status int, body io.Reader) MockRoundTripper {
	return MockRoundTripper{Fn: func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(body),
			Header:     make(http.Header),
		}, nil
	}}
}
