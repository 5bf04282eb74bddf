//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sss

import (
	"fmt"
)

// Triple implements a Beaver multiplication triple. For arithmetic
// triples C = A*B modulo 2^bits; for boolean triples C = A AND B.
// A triple is a one-time resource: each secure multiplication, AND,
// or OR consumes one triple and reusing a triple leaks information
// about the operands. The type does not enforce this; it is a caller
// obligation.
type Triple struct {
	A uint32
	B uint32
	C uint32
}

func (t Triple) String() string {
	return fmt.Sprintf("(%d, %d, %d)", t.A, t.B, t.C)
}
