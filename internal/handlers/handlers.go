package handlers

import "github.com/bujo-app/bujo-backend/internal/config"

var cfg *config.Config

// Init wires the loaded configuration into the handlers package.
func Init(c *config.Config) {
	cfg = c
}

// degradeOnReadError reports whether list reads should answer an empty
// result instead of surfacing a store failure. Defaults to true, matching
// the availability-first behavior the frontend expects.
func degradeOnReadError() bool {
	return cfg == nil || cfg.DegradeOnReadError
}
