//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sss

import (
	"errors"
	"fmt"
	"io"

	"github.com/markkurossi/beaver/env"
	"github.com/markkurossi/beaver/pkg/math"
)

// ErrBitsize is returned when a sharing instance is created with a
// bit size outside the range [2,32].
var ErrBitsize = errors.New("sss: bit size must be in range [2,32]")

// Additive implements additive secret sharing modulo 2^bits. The
// shares of a secret x satisfy x0 + x1 = x (mod 2^bits). Both
// parties must use the same bit size; the protocol does not
// negotiate it.
type Additive struct {
	bits int
	rand io.Reader
}

// NewAdditive creates an additive secret sharing instance for the
// argument bit size and configuration.
func NewAdditive(bits int, config *env.Config) (*Additive, error) {
	if bits < 2 || bits > 32 {
		return nil, ErrBitsize
	}
	return &Additive{
		bits: bits,
		rand: config.GetRandom(),
	}, nil
}

// Bits returns the bit size of the sharing domain.
func (ss *Additive) Bits() int {
	return ss.bits
}

func (ss *Additive) mod(v uint32) uint32 {
	return math.Mod(v, ss.bits)
}

// Share splits the secret x into two additive shares: x0 is uniformly
// random and x1 = x - x0 (mod 2^bits).
func (ss *Additive) Share(x uint32) (x0, x1 uint32, err error) {
	x0, err = randUint32(ss.rand)
	if err != nil {
		return 0, 0, err
	}
	x0 = ss.mod(x0)
	x1 = ss.mod(x - x0)
	return x0, x1, nil
}

// ShareVec splits the secrets element-wise into two share vectors.
func (ss *Additive) ShareVec(xs []uint32) (xs0, xs1 []uint32, err error) {
	xs0 = make([]uint32, len(xs))
	xs1 = make([]uint32, len(xs))
	for i, x := range xs {
		xs0[i], xs1[i], err = ss.Share(x)
		if err != nil {
			return nil, nil, err
		}
	}
	return xs0, xs1, nil
}

// Reconst reveals a shared value to both parties with one exchange.
// Each party passes its own share in the slot matching its
// identifier; the other slot is overwritten by the exchange. This is
// the only operation of the sharing scheme that touches the network.
func (ss *Additive) Reconst(party *Party, x0, x1 uint32) (uint32, error) {
	if err := party.SendRecv(&x0, &x1); err != nil {
		return 0, err
	}
	return ss.mod(x0 + x1), nil
}

// ReconstPair reveals two shared values in one exchange.
func (ss *Additive) ReconstPair(party *Party, x0, x1 [2]uint32) (
	[2]uint32, error) {

	var result [2]uint32
	if err := party.SendRecvPair(&x0, &x1); err != nil {
		return result, err
	}
	for i := range result {
		result[i] = ss.mod(x0[i] + x1[i])
	}
	return result, nil
}

// ReconstQuad reveals four shared values in one exchange.
func (ss *Additive) ReconstQuad(party *Party, x0, x1 [4]uint32) (
	[4]uint32, error) {

	var result [4]uint32
	if err := party.SendRecvQuad(&x0, &x1); err != nil {
		return result, err
	}
	for i := range result {
		result[i] = ss.mod(x0[i] + x1[i])
	}
	return result, nil
}

// ReconstVec reveals a vector of shared values in one exchange.
func (ss *Additive) ReconstVec(party *Party, x0, x1 []uint32) (
	[]uint32, error) {

	if len(x0) != len(x1) {
		return nil, fmt.Errorf("sss: share length mismatch: %v vs %v",
			len(x0), len(x1))
	}
	if err := party.SendRecvVec(x0, x1); err != nil {
		return nil, err
	}
	result := make([]uint32, len(x0))
	for i := range result {
		result[i] = ss.mod(x0[i] + x1[i])
	}
	return result, nil
}

// GenTriples generates n Beaver triples with C = A*B (mod 2^bits).
// The caller learns the full triples; they must be split with
// ShareTriples and distributed by a dealer that is trusted not to
// take part in the online protocol. See the package documentation
// for the trust assumption.
func (ss *Additive) GenTriples(n int) ([]Triple, error) {
	triples := make([]Triple, n)
	for i := 0; i < n; i++ {
		a, err := randUint32(ss.rand)
		if err != nil {
			return nil, err
		}
		b, err := randUint32(ss.rand)
		if err != nil {
			return nil, err
		}
		a = ss.mod(a)
		b = ss.mod(b)
		triples[i] = Triple{
			A: a,
			B: b,
			C: ss.mod(a * b),
		}
	}
	return triples, nil
}

// ShareTriples splits each triple component-wise into additive
// shares, exactly as Share does for single values.
func (ss *Additive) ShareTriples(triples []Triple) ([]Triple, []Triple, error) {
	ts0 := make([]Triple, len(triples))
	ts1 := make([]Triple, len(triples))
	for i, t := range triples {
		var err error
		ts0[i].A, ts1[i].A, err = ss.Share(t.A)
		if err != nil {
			return nil, nil, err
		}
		ts0[i].B, ts1[i].B, err = ss.Share(t.B)
		if err != nil {
			return nil, nil, err
		}
		ts0[i].C, ts1[i].C, err = ss.Share(t.C)
		if err != nil {
			return nil, nil, err
		}
	}
	return ts0, ts1, nil
}

// Mult runs Beaver's secure multiplication protocol for one pair of
// shares. Both parties mask their shares with the triple, jointly
// open the masked values d = x-a and e = y-b with one exchange, and
// compute their share of x*y locally. Only party 0 adds the public
// d*e term so that the sum of the result shares contains it exactly
// once. The triple is consumed.
func (ss *Additive) Mult(party *Party, t Triple, x, y uint32) (uint32, error) {
	var de0, de1 [2]uint32
	if party.ID() == Party0 {
		de0[0] = ss.mod(x - t.A)
		de0[1] = ss.mod(y - t.B)
	} else {
		de1[0] = ss.mod(x - t.A)
		de1[1] = ss.mod(y - t.B)
	}
	de, err := ss.ReconstPair(party, de0, de1)
	if err != nil {
		return 0, err
	}
	z := ss.mod(de[1]*t.A + de[0]*t.B + t.C)
	if party.ID() == Party0 {
		z = ss.mod(z + de[0]*de[1])
	}
	return z, nil
}

// Mult2 runs two independent secure multiplications in a single
// exchange, halving the round-trip count for paired operations.
func (ss *Additive) Mult2(party *Party, t1, t2 Triple,
	x1, y1, x2, y2 uint32) ([2]uint32, error) {

	var z [2]uint32
	var de0, de1 [4]uint32
	if party.ID() == Party0 {
		de0[0] = ss.mod(x1 - t1.A)
		de0[1] = ss.mod(y1 - t1.B)
		de0[2] = ss.mod(x2 - t2.A)
		de0[3] = ss.mod(y2 - t2.B)
	} else {
		de1[0] = ss.mod(x1 - t1.A)
		de1[1] = ss.mod(y1 - t1.B)
		de1[2] = ss.mod(x2 - t2.A)
		de1[3] = ss.mod(y2 - t2.B)
	}
	de, err := ss.ReconstQuad(party, de0, de1)
	if err != nil {
		return z, err
	}
	z[0] = ss.mod(de[1]*t1.A + de[0]*t1.B + t1.C)
	z[1] = ss.mod(de[3]*t2.A + de[2]*t2.B + t2.C)
	if party.ID() == Party0 {
		z[0] = ss.mod(z[0] + de[0]*de[1])
		z[1] = ss.mod(z[1] + de[2]*de[3])
	}
	return z, nil
}

// MultVec runs n independent secure multiplications with a single
// exchange carrying the 2n masked values. Network latency dominates
// the per-exchange cost, so batched multiplications should always use
// this form.
func (ss *Additive) MultVec(party *Party, triples []Triple,
	xs, ys []uint32) ([]uint32, error) {

	num := len(xs)
	if len(ys) != num || len(triples) != num {
		return nil, fmt.Errorf(
			"sss: argument length mismatch: %v triples, %v xs, %v ys",
			len(triples), num, len(ys))
	}
	de0 := make([]uint32, num*2)
	de1 := make([]uint32, num*2)
	for i := 0; i < num; i++ {
		if party.ID() == Party0 {
			de0[2*i] = ss.mod(xs[i] - triples[i].A)
			de0[2*i+1] = ss.mod(ys[i] - triples[i].B)
		} else {
			de1[2*i] = ss.mod(xs[i] - triples[i].A)
			de1[2*i+1] = ss.mod(ys[i] - triples[i].B)
		}
	}
	de, err := ss.ReconstVec(party, de0, de1)
	if err != nil {
		return nil, err
	}
	zs := make([]uint32, num)
	for i := 0; i < num; i++ {
		zs[i] = ss.mod(de[2*i+1]*triples[i].A + de[2*i]*triples[i].B +
			triples[i].C)
		if party.ID() == Party0 {
			zs[i] = ss.mod(zs[i] + de[2*i]*de[2*i+1])
		}
	}
	return zs, nil
}
