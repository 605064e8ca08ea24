// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"net"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultRetryCount   = 2
	defaultRetryWait    = 200 * time.Millisecond
	defaultRetryMaxWait = 2 * time.Second
)

// HTTPClient wraps [resty.Client] with the client's transport defaults.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that retries requests failing with a
// network error or a 502/503/504 answer. Requests that reached the server
// and got any other status are never repeated.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(defaultRetryWait).
		SetRetryMaxWaitTime(defaultRetryMaxWait).
		AddRetryCondition(isTransientFailure)

	return &HTTPClient{Client: client}
}

func isTransientFailure(resp *resty.Response, err error) bool {
	if err != nil {
		var netErr net.Error
		return errors.As(err, &netErr)
	}
	if resp == nil {
		return false
	}
	switch resp.StatusCode() {
	case 502, 503, 504:
		return true
	}
	return false
}
