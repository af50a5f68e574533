// Package timeouts defines the HTTP server timeouts shared by portfolio
// processes.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// Idle closes keep-alive connections that stay quiet this long.
const Idle = 2 * time.Minute
