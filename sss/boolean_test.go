//
// boolean_test.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sss

import (
	"testing"
)

func TestBooleanShare(t *testing.T) {
	ss := NewBoolean(nil)
	for _, x := range []uint32{0, 1} {
		x0, x1, err := ss.Share(x)
		if err != nil {
			t.Fatalf("Share: %v", err)
		}
		if x0 > 1 || x1 > 1 {
			t.Errorf("shares of %v not bits: %v, %v", x, x0, x1)
		}
		if x0^x1 != x {
			t.Errorf("shares of %v XOR to %v", x, x0^x1)
		}
	}
}

func TestBooleanReconst(t *testing.T) {
	ss := NewBoolean(nil)
	for _, x := range []uint32{0, 1} {
		x0, x1, err := ss.Share(x)
		if err != nil {
			t.Fatalf("Share: %v", err)
		}

		p0, p1 := pipeParties()
		done := make(chan error)
		var result0 uint32

		go func() {
			var err error
			result0, err = ss.Reconst(p0, x0, 0)
			done <- err
		}()

		result1, err := ss.Reconst(p1, 0, x1)
		if err != nil {
			t.Fatalf("P1.Reconst: %v", err)
		}
		if err := <-done; err != nil {
			t.Fatalf("P0.Reconst: %v", err)
		}
		if result0 != x || result1 != x {
			t.Errorf("Reconst: got %v and %v, expected %v",
				result0, result1, x)
		}
	}
}

func TestBooleanTriples(t *testing.T) {
	ss := NewBoolean(nil)
	triples, err := ss.GenTriples(50)
	if err != nil {
		t.Fatalf("GenTriples: %v", err)
	}
	for _, triple := range triples {
		if triple.A > 1 || triple.B > 1 || triple.C != triple.A&triple.B {
			t.Errorf("invalid triple %v", triple)
		}
	}
	ts0, ts1, err := ss.ShareTriples(triples)
	if err != nil {
		t.Fatalf("ShareTriples: %v", err)
	}
	for i, triple := range triples {
		if a := ts0[i].A ^ ts1[i].A; a != triple.A {
			t.Errorf("shared A: got %v, expected %v", a, triple.A)
		}
		if b := ts0[i].B ^ ts1[i].B; b != triple.B {
			t.Errorf("shared B: got %v, expected %v", b, triple.B)
		}
		if c := ts0[i].C ^ ts1[i].C; c != triple.C {
			t.Errorf("shared C: got %v, expected %v", c, triple.C)
		}
	}
}

// bitOp runs the full two-party protocol for one gate and returns the
// XOR of the result shares.
func bitOp(t *testing.T, ss *Boolean, x, y uint32,
	op func(*Party, Triple, uint32, uint32) (uint32, error)) uint32 {

	x0, x1, err := ss.Share(x)
	if err != nil {
		t.Fatalf("Share: %v", err)
	}
	y0, y1, err := ss.Share(y)
	if err != nil {
		t.Fatalf("Share: %v", err)
	}
	triples, err := ss.GenTriples(1)
	if err != nil {
		t.Fatalf("GenTriples: %v", err)
	}
	ts0, ts1, err := ss.ShareTriples(triples)
	if err != nil {
		t.Fatalf("ShareTriples: %v", err)
	}

	p0, p1 := pipeParties()
	done := make(chan error)
	var z0 uint32

	go func() {
		var err error
		z0, err = op(p0, ts0[0], x0, y0)
		done <- err
	}()

	z1, err := op(p1, ts1[0], x1, y1)
	if err != nil {
		t.Fatalf("P1: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("P0: %v", err)
	}
	return z0 ^ z1
}

func TestAnd(t *testing.T) {
	ss := NewBoolean(nil)
	for _, x := range []uint32{0, 1} {
		for _, y := range []uint32{0, 1} {
			if z := bitOp(t, ss, x, y, ss.And); z != x&y {
				t.Errorf("%v AND %v: got %v, expected %v", x, y, z, x&y)
			}
		}
	}
}

func TestOr(t *testing.T) {
	ss := NewBoolean(nil)
	for _, x := range []uint32{0, 1} {
		for _, y := range []uint32{0, 1} {
			if z := bitOp(t, ss, x, y, ss.Or); z != x|y {
				t.Errorf("%v OR %v: got %v, expected %v", x, y, z, x|y)
			}
		}
	}
}

// TestOrScenario runs the reference scenario: x=1, y=1, triple
// (1,1,1) shared; the OR must reconstruct to 1.
func TestOrScenario(t *testing.T) {
	ss := NewBoolean(nil)

	x0, x1, err := ss.Share(1)
	if err != nil {
		t.Fatalf("Share: %v", err)
	}
	y0, y1, err := ss.Share(1)
	if err != nil {
		t.Fatalf("Share: %v", err)
	}
	ts0, ts1, err := ss.ShareTriples([]Triple{{A: 1, B: 1, C: 1}})
	if err != nil {
		t.Fatalf("ShareTriples: %v", err)
	}

	p0, p1 := pipeParties()
	done := make(chan error)
	var z0 uint32

	go func() {
		var err error
		z0, err = ss.Or(p0, ts0[0], x0, y0)
		done <- err
	}()

	z1, err := ss.Or(p1, ts1[0], x1, y1)
	if err != nil {
		t.Fatalf("P1.Or: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("P0.Or: %v", err)
	}
	if z0^z1 != 1 {
		t.Errorf("1 OR 1: got %v, expected 1", z0^z1)
	}
}

func TestAndOrVec(t *testing.T) {
	ss := NewBoolean(nil)

	// All four input combinations in one batch.
	xs := []uint32{0, 0, 1, 1}
	ys := []uint32{0, 1, 0, 1}

	for _, test := range []struct {
		name string
		op   func(*Party, []Triple, []uint32, []uint32) ([]uint32, error)
		fn   func(x, y uint32) uint32
	}{
		{"AndVec", ss.AndVec, func(x, y uint32) uint32 { return x & y }},
		{"OrVec", ss.OrVec, func(x, y uint32) uint32 { return x | y }},
	} {
		xs0, xs1, err := ss.ShareVec(xs)
		if err != nil {
			t.Fatalf("ShareVec: %v", err)
		}
		ys0, ys1, err := ss.ShareVec(ys)
		if err != nil {
			t.Fatalf("ShareVec: %v", err)
		}
		triples, err := ss.GenTriples(len(xs))
		if err != nil {
			t.Fatalf("GenTriples: %v", err)
		}
		ts0, ts1, err := ss.ShareTriples(triples)
		if err != nil {
			t.Fatalf("ShareTriples: %v", err)
		}

		p0, p1 := pipeParties()
		done := make(chan error)
		var zs0 []uint32

		go func() {
			var err error
			zs0, err = test.op(p0, ts0, xs0, ys0)
			done <- err
		}()

		zs1, err := test.op(p1, ts1, xs1, ys1)
		if err != nil {
			t.Fatalf("%s P1: %v", test.name, err)
		}
		if err := <-done; err != nil {
			t.Fatalf("%s P0: %v", test.name, err)
		}

		for i := range xs {
			expected := test.fn(xs[i], ys[i])
			if z := zs0[i] ^ zs1[i]; z != expected {
				t.Errorf("%s: %v op %v: got %v, expected %v",
					test.name, xs[i], ys[i], z, expected)
			}
		}
	}
}
