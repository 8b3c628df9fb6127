package httpserver

import "errors"

var (
	// ErrStart wraps listen and serve failures returned by Run.
	ErrStart = errors.New("httpserver: cannot serve")
	// ErrShutdown wraps a drain that did not finish within the shutdown timeout.
	ErrShutdown = errors.New("httpserver: requests still in flight at shutdown deadline")
	// ErrAlreadyRunning is returned by a second Run on the same Server.
	ErrAlreadyRunning = errors.New("httpserver: Run called twice")
)
