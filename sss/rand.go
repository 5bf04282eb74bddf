//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sss

import (
	"encoding/binary"
	"io"
)

// randUint32 reads one uniform 32-bit value from the entropy source.
func randUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// randBit reads one uniform bit from the entropy source.
func randBit(r io.Reader) (uint32, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return uint32(buf[0] & 1), nil
}
