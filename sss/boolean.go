//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sss

import (
	"fmt"
	"io"

	"github.com/markkurossi/beaver/env"
)

// Boolean implements XOR based secret sharing over the bit domain
// {0,1}. The shares of a bit x satisfy x0 XOR x1 = x. Secure AND uses
// boolean Beaver triples with C = A AND B; OR is derived from AND via
// De Morgan's law without extra exchanges.
type Boolean struct {
	rand io.Reader
}

// NewBoolean creates a boolean secret sharing instance.
func NewBoolean(config *env.Config) *Boolean {
	return &Boolean{
		rand: config.GetRandom(),
	}
}

// Share splits the secret bit x into two XOR shares: x0 is a
// uniformly random bit and x1 = x XOR x0.
func (ss *Boolean) Share(x uint32) (x0, x1 uint32, err error) {
	x0, err = randBit(ss.rand)
	if err != nil {
		return 0, 0, err
	}
	x1 = x ^ x0
	return x0, x1, nil
}

// ShareVec splits the secret bits element-wise into two share
// vectors.
func (ss *Boolean) ShareVec(xs []uint32) (xs0, xs1 []uint32, err error) {
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

// Reconst reveals a shared bit to both parties with one exchange.
// The slot contract is the same as for additive sharing.
func (ss *Boolean) Reconst(party *Party, x0, x1 uint32) (uint32, error) {
	if err := party.SendRecv(&x0, &x1); err != nil {
		return 0, err
	}
	return x0 ^ x1, nil
}

// ReconstPair reveals two shared bits in one exchange.
func (ss *Boolean) ReconstPair(party *Party, x0, x1 [2]uint32) (
	[2]uint32, error) {

	var result [2]uint32
	if err := party.SendRecvPair(&x0, &x1); err != nil {
		return result, err
	}
	for i := range result {
		result[i] = x0[i] ^ x1[i]
	}
	return result, nil
}

// ReconstVec reveals a vector of shared bits in one exchange.
func (ss *Boolean) ReconstVec(party *Party, x0, x1 []uint32) (
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
		result[i] = x0[i] ^ x1[i]
	}
	return result, nil
}

// GenTriples generates n boolean Beaver triples with C = A AND B.
// The dealer trust assumption of the arithmetic GenTriples applies.
func (ss *Boolean) GenTriples(n int) ([]Triple, error) {
	triples := make([]Triple, n)
	for i := 0; i < n; i++ {
		a, err := randBit(ss.rand)
		if err != nil {
			return nil, err
		}
		b, err := randBit(ss.rand)
		if err != nil {
			return nil, err
		}
		triples[i] = Triple{
			A: a,
			B: b,
			C: a & b,
		}
	}
	return triples, nil
}

// ShareTriples splits each triple component-wise into XOR shares.
func (ss *Boolean) ShareTriples(triples []Triple) ([]Triple, []Triple, error) {
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

// And runs the secure AND protocol for one pair of shared bits. It is
// Beaver's multiplication with XOR as addition and AND as
// multiplication: the parties open d = x XOR a and e = y XOR b with
// one exchange and compute their result share locally. Only party 0
// XORs in the public d AND e term. The triple is consumed.
func (ss *Boolean) And(party *Party, t Triple, x, y uint32) (uint32, error) {
	var de0, de1 [2]uint32
	if party.ID() == Party0 {
		de0[0] = x ^ t.A
		de0[1] = y ^ t.B
	} else {
		de1[0] = x ^ t.A
		de1[1] = y ^ t.B
	}
	de, err := ss.ReconstPair(party, de0, de1)
	if err != nil {
		return 0, err
	}
	z := (de[1] & t.A) ^ (de[0] & t.B) ^ t.C
	if party.ID() == Party0 {
		z ^= de[0] & de[1]
	}
	return z, nil
}

// AndVec runs n independent secure ANDs with a single exchange
// carrying the 2n masked bits.
func (ss *Boolean) AndVec(party *Party, triples []Triple,
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
			de0[2*i] = xs[i] ^ triples[i].A
			de0[2*i+1] = ys[i] ^ triples[i].B
		} else {
			de1[2*i] = xs[i] ^ triples[i].A
			de1[2*i+1] = ys[i] ^ triples[i].B
		}
	}
	de, err := ss.ReconstVec(party, de0, de1)
	if err != nil {
		return nil, err
	}
	zs := make([]uint32, num)
	for i := 0; i < num; i++ {
		zs[i] = (de[2*i+1] & triples[i].A) ^ (de[2*i] & triples[i].B) ^
			triples[i].C
		if party.ID() == Party0 {
			zs[i] ^= de[2*i] & de[2*i+1]
		}
	}
	return zs, nil
}

// Or runs the secure OR protocol via De Morgan's law: x OR y equals
// NOT(NOT x AND NOT y). Complementing a two-party XOR shared bit
// means flipping exactly one party's share, so party 0 flips its
// input shares, runs And, and flips the result; party 1 runs And
// unchanged. No extra exchange is needed beyond the one inside And.
func (ss *Boolean) Or(party *Party, t Triple, x, y uint32) (uint32, error) {
	if party.ID() == Party0 {
		z, err := ss.And(party, t, x^1, y^1)
		if err != nil {
			return 0, err
		}
		return z ^ 1, nil
	}
	return ss.And(party, t, x, y)
}

// OrVec runs n independent secure ORs with a single exchange.
func (ss *Boolean) OrVec(party *Party, triples []Triple,
	xs, ys []uint32) ([]uint32, error) {

	if party.ID() != Party0 {
		return ss.AndVec(party, triples, xs, ys)
	}
	nxs := make([]uint32, len(xs))
	nys := make([]uint32, len(ys))
	for i := range xs {
		nxs[i] = xs[i] ^ 1
	}
	for i := range ys {
		nys[i] = ys[i] ^ 1
	}
	zs, err := ss.AndVec(party, triples, nxs, nys)
	if err != nil {
		return nil, err
	}
	for i := range zs {
		zs[i] ^= 1
	}
	return zs, nil
}
