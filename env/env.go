//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the secret sharing
// system.
package env

import (
	"crypto/rand"
	"io"
)

// Config defines the global system configuration. It configures
// system operation for all protocol modules. Config must not be
// modified after being passed to any module. It is safe for
// concurrent use by multiple modules as they do not modify it.
type Config struct {
	Rand    io.Reader
	Verbose bool
}

// GetRandom returns the source of entropy for share and Beaver triple
// generation. It defaults to the cryptographically secure system
// source; tests and benchmarks can plug in a deterministic generator.
func (config *Config) GetRandom() io.Reader {
	if config != nil && config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GetVerbose returns the verbose debugging flag.
func (config *Config) GetVerbose() bool {
	return config != nil && config.Verbose
}
