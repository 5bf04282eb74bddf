//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sss

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// File persistence for shares and Beaver triples. The formats are
// plain text so that dealt values can be inspected and edited by
// hand: a share file holds the value on one line; a share vector file
// holds the count on the first line and the comma-separated values on
// the second; a triple file holds the count on the first line and one
// "a,b,c" line per triple. The core protocol does not interpret these
// files; they exist so that a dealer process can precompute triples
// offline and the parties can load their halves before the online
// phase.

// WriteShareFile writes a single share to the argument file.
func WriteShareFile(path string, val uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%d\n", val)
	return err
}

// ReadShareFile reads a single share from the argument file.
func ReadShareFile(path string) (uint32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	val, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("sss: malformed share file %s: %w", path, err)
	}
	return uint32(val), nil
}

// WriteShareVecFile writes a share vector to the argument file.
func WriteShareVecFile(path string, vals []uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", len(vals))
	for i, val := range vals {
		if i > 0 {
			w.WriteByte(',')
		}
		fmt.Fprintf(w, "%d", val)
	}
	w.WriteByte('\n')
	return w.Flush()
}

// ReadShareVecFile reads a share vector from the argument file.
func ReadShareVecFile(path string) ([]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024), 64*1024*1024)
	count, err := readCount(scanner, path)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return []uint32{}, nil
	}
	if !scanner.Scan() {
		return nil, fmt.Errorf("sss: truncated share file %s", path)
	}
	vals, err := splitUint32s(scanner.Text())
	if err != nil {
		return nil, fmt.Errorf("sss: malformed share file %s: %w", path, err)
	}
	if len(vals) != count {
		return nil, fmt.Errorf("sss: share file %s: count %d, got %d values",
			path, count, len(vals))
	}
	return vals, nil
}

// WriteTripleFile writes Beaver triples to the argument file.
func WriteTripleFile(path string, triples []Triple) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", len(triples))
	for _, t := range triples {
		fmt.Fprintf(w, "%d,%d,%d\n", t.A, t.B, t.C)
	}
	return w.Flush()
}

// ReadTripleFile reads Beaver triples from the argument file.
func ReadTripleFile(path string) ([]Triple, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	count, err := readCount(scanner, path)
	if err != nil {
		return nil, err
	}
	triples := make([]Triple, 0, count)
	for i := 0; i < count; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("sss: truncated triple file %s", path)
		}
		vals, err := splitUint32s(scanner.Text())
		if err != nil || len(vals) != 3 {
			return nil, fmt.Errorf("sss: malformed triple file %s: line %d",
				path, i+2)
		}
		triples = append(triples, Triple{
			A: vals[0],
			B: vals[1],
			C: vals[2],
		})
	}
	return triples, nil
}

// ExportShares splits the secrets and writes the party halves to the
// two argument files.
func ExportShares(ss *Additive, path0, path1 string, xs []uint32) error {
	xs0, xs1, err := ss.ShareVec(xs)
	if err != nil {
		return err
	}
	if err := WriteShareVecFile(path0, xs0); err != nil {
		return err
	}
	return WriteShareVecFile(path1, xs1)
}

// ExportTriples writes the party halves of shared triples to the two
// argument files.
func ExportTriples(path0, path1 string, ts0, ts1 []Triple) error {
	if err := WriteTripleFile(path0, ts0); err != nil {
		return err
	}
	return WriteTripleFile(path1, ts1)
}

func readCount(scanner *bufio.Scanner, path string) (int, error) {
	if !scanner.Scan() {
		return 0, fmt.Errorf("sss: empty file %s", path)
	}
	count, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || count < 0 {
		return 0, fmt.Errorf("sss: malformed count in %s", path)
	}
	return count, nil
}

func splitUint32s(line string) ([]uint32, error) {
	parts := strings.Split(strings.TrimSpace(line), ",")
	vals := make([]uint32, 0, len(parts))
	for _, part := range parts {
		val, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, err
		}
		vals = append(vals, uint32(val))
	}
	return vals, nil
}
