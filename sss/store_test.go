//
// store_test.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sss

import (
	"path/filepath"
	"testing"

	"github.com/markkurossi/beaver/pkg/math"
)

func TestShareFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "share.dat")

	if err := WriteShareFile(path, 12345); err != nil {
		t.Fatalf("WriteShareFile: %v", err)
	}
	val, err := ReadShareFile(path)
	if err != nil {
		t.Fatalf("ReadShareFile: %v", err)
	}
	if val != 12345 {
		t.Errorf("got %v, expected 12345", val)
	}
}

func TestShareVecFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shares.dat")

	vals := []uint32{0, 1, 42, math.MaxUint32}
	if err := WriteShareVecFile(path, vals); err != nil {
		t.Fatalf("WriteShareVecFile: %v", err)
	}
	read, err := ReadShareVecFile(path)
	if err != nil {
		t.Fatalf("ReadShareVecFile: %v", err)
	}
	if len(read) != len(vals) {
		t.Fatalf("got %v values, expected %v", len(read), len(vals))
	}
	for i, val := range vals {
		if read[i] != val {
			t.Errorf("value %v: got %v, expected %v", i, read[i], val)
		}
	}
}

func TestTripleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triples.dat")

	triples := []Triple{
		{A: 1, B: 2, C: 3},
		{A: 0, B: 0, C: 0},
		{A: math.MaxUint32, B: 1, C: math.MaxUint32},
	}
	if err := WriteTripleFile(path, triples); err != nil {
		t.Fatalf("WriteTripleFile: %v", err)
	}
	read, err := ReadTripleFile(path)
	if err != nil {
		t.Fatalf("ReadTripleFile: %v", err)
	}
	if len(read) != len(triples) {
		t.Fatalf("got %v triples, expected %v", len(read), len(triples))
	}
	for i, triple := range triples {
		if read[i] != triple {
			t.Errorf("triple %v: got %v, expected %v", i, read[i], triple)
		}
	}
}

func TestExportTriples(t *testing.T) {
	dir := t.TempDir()
	path0 := filepath.Join(dir, "bt0.dat")
	path1 := filepath.Join(dir, "bt1.dat")

	ss, err := NewAdditive(8, nil)
	if err != nil {
		t.Fatalf("NewAdditive: %v", err)
	}
	triples, err := ss.GenTriples(10)
	if err != nil {
		t.Fatalf("GenTriples: %v", err)
	}
	ts0, ts1, err := ss.ShareTriples(triples)
	if err != nil {
		t.Fatalf("ShareTriples: %v", err)
	}
	if err := ExportTriples(path0, path1, ts0, ts1); err != nil {
		t.Fatalf("ExportTriples: %v", err)
	}

	read0, err := ReadTripleFile(path0)
	if err != nil {
		t.Fatalf("ReadTripleFile: %v", err)
	}
	read1, err := ReadTripleFile(path1)
	if err != nil {
		t.Fatalf("ReadTripleFile: %v", err)
	}
	for i, triple := range triples {
		if a := math.Mod(read0[i].A+read1[i].A, 8); a != triple.A {
			t.Errorf("triple %v A: got %v, expected %v", i, a, triple.A)
		}
		if b := math.Mod(read0[i].B+read1[i].B, 8); b != triple.B {
			t.Errorf("triple %v B: got %v, expected %v", i, b, triple.B)
		}
		if c := math.Mod(read0[i].C+read1[i].C, 8); c != triple.C {
			t.Errorf("triple %v C: got %v, expected %v", i, c, triple.C)
		}
	}
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := ReadTripleFile(filepath.Join(dir, "missing.dat")); err == nil {
		t.Errorf("ReadTripleFile: expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.dat")
	if err := WriteShareFile(bad, 1); err != nil {
		t.Fatalf("WriteShareFile: %v", err)
	}
	// A share file is not a valid triple file: count 1 but no triple
	// line follows.
	if _, err := ReadTripleFile(bad); err == nil {
		t.Errorf("ReadTripleFile: expected error for malformed file")
	}
}
