package transport

import "time"

const (
	defaultIdleConnTimeout       = 90 * time.Second
	defaultMaxIdleConns          = 100
	defaultMaxIdleConnsPerHost   = 10
	defaultTLSHandshakeTimeout   = 10 * time.Second
	defaultExpectContinueTimeout = 1 * time.Second
	defaultForceAttemptHTTP2     = false
	defaultDialTimeout           = 30 * time.Second
	defaultKeepAlive             = 30 * time.Second
)
