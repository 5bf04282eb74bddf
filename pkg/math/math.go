// -*- go -*-
//
// Copyright (c) 2020-2025 Markku Rossi
//
// All rights reserved.
//

// Package math implements the modular arithmetic helpers for the
// secret sharing domains.
package math

const (
	MaxUint8  = 0xff
	MaxUint16 = 0xffff
	MaxUint32 = 0xffffffff
	MaxUint64 = 0xffffffffffffffff
)

// Mask returns the bit mask for values modulo 2^bits. The argument
// bits must be in the range [1,32].
func Mask(bits int) uint32 {
	return uint32((uint64(1) << bits) - 1)
}

// Mod reduces the argument value modulo 2^bits. Since uint32
// arithmetic wraps modulo 2^32, reducing the wrapped result gives the
// correct sum, difference, and product modulo 2^bits.
func Mod(v uint32, bits int) uint32 {
	return v & Mask(bits)
}
