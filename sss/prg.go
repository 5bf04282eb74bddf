//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sss

import (
	"golang.org/x/crypto/chacha20"
)

// PRG implements a deterministic pseudo-random generator as an
// io.Reader. Plugged into env.Config.Rand it makes share and triple
// generation reproducible across runs, which benchmarks and
// regression tests use in place of the system entropy source. The
// output is the ChaCha20 keystream for the seed; it must never be
// used for production dealing.
type PRG struct {
	stream *chacha20.Cipher
}

// NewPRG creates a deterministic generator for the argument seed.
func NewPRG(seed [32]byte) *PRG {
	var nonce [chacha20.NonceSize]byte
	stream, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// The key and nonce sizes are correct by construction.
		panic(err)
	}
	return &PRG{
		stream: stream,
	}
}

// Read fills buf with pseudo-random bytes. It never fails.
func (prg *PRG) Read(buf []byte) (int, error) {
	for i := range buf {
		buf[i] = 0
	}
	prg.stream.XORKeyStream(buf, buf)
	return len(buf), nil
}
