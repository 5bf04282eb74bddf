//
// main.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Command beaver runs the two-party secret sharing protocol. The
// -deal mode acts as the trusted dealer: it precomputes Beaver
// triples and writes the party halves to files. The online mode runs
// one party: it loads its triple file, secret shares the inputs with
// the peer, and runs scalar and vectorized secure multiplications and
// boolean gates, printing a protocol cost report.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/markkurossi/beaver/env"
	"github.com/markkurossi/beaver/p2p"
	"github.com/markkurossi/beaver/sss"
)

var (
	bitsize    = flag.Int("b", 32, "share bit size")
	batch      = flag.Int("n", 1000, "batched multiplication count")
	dir        = flag.String("dir", ".", "triple file directory")
	fDeal      = flag.Bool("deal", false, "dealer mode: precompute triples")
	id         = flag.Int("id", 0, "party ID (0=listener, 1=connector)")
	addr       = flag.String("addr", "localhost:8080", "peer address")
	input      = flag.Uint64("i", 0, "party input value")
	seed       = flag.Int64("seed", 0, "deterministic RNG seed (0=secure)")
	fVerbose   = flag.Bool("v", false, "verbose output")
	numBoolean = 10
)

func main() {
	flag.Parse()

	config := &env.Config{
		Verbose: *fVerbose,
	}
	if *seed != 0 {
		var s [32]byte
		for i := 0; i < 8; i++ {
			s[i] = byte(*seed >> (8 * i))
		}
		config.Rand = sss.NewPRG(s)
	}

	var err error
	if *fDeal {
		err = deal(config)
	} else {
		err = online(config)
	}
	if err != nil {
		fmt.Printf("beaver: %s\n", err)
		os.Exit(1)
	}
}

// deal precomputes the triples both online phases consume and writes
// the party halves to the triple directory.
func deal(config *env.Config) error {
	arith, err := sss.NewAdditive(*bitsize, config)
	if err != nil {
		return err
	}
	boolean := sss.NewBoolean(config)

	triples, err := arith.GenTriples(*batch + 1)
	if err != nil {
		return err
	}
	ts0, ts1, err := arith.ShareTriples(triples)
	if err != nil {
		return err
	}
	err = sss.ExportTriples(tripleFile(0), tripleFile(1), ts0, ts1)
	if err != nil {
		return err
	}

	btriples, err := boolean.GenTriples(numBoolean)
	if err != nil {
		return err
	}
	bts0, bts1, err := boolean.ShareTriples(btriples)
	if err != nil {
		return err
	}
	err = sss.ExportTriples(booleanFile(0), booleanFile(1), bts0, bts1)
	if err != nil {
		return err
	}

	fmt.Printf("dealt %d arithmetic and %d boolean triples to %s\n",
		len(triples), len(btriples), *dir)
	return nil
}

func online(config *env.Config) error {
	arith, err := sss.NewAdditive(*bitsize, config)
	if err != nil {
		return err
	}
	boolean := sss.NewBoolean(config)

	triples, err := sss.ReadTripleFile(tripleFile(*id))
	if err != nil {
		return err
	}
	if len(triples) < *batch+1 {
		return fmt.Errorf("%d triples dealt, %d needed: run -deal first",
			len(triples), *batch+1)
	}
	btriples, err := sss.ReadTripleFile(booleanFile(*id))
	if err != nil {
		return err
	}
	if len(btriples) < numBoolean {
		return fmt.Errorf("%d boolean triples dealt, %d needed",
			len(btriples), numBoolean)
	}

	party, err := sss.NewParty(*id, *addr)
	if err != nil {
		return err
	}
	party.Verbose = config.GetVerbose()
	defer party.Close()

	timing := p2p.NewTiming()

	if err := party.Start(); err != nil {
		return err
	}
	timing.Sample("Connect", nil)

	// Secret share the inputs: party 0 owns x, party 1 owns y. Each
	// party splits its own input and hands the peer its half in the
	// one exchange; both end up holding one share of x and one of y.
	mine0, mine1, err := arith.Share(uint32(*input))
	if err != nil {
		return err
	}
	var xShare, yShare uint32
	if party.ID() == sss.Party0 {
		xShare = mine0
		out, in := mine1, uint32(0)
		if err := party.SendRecv(&out, &in); err != nil {
			return err
		}
		yShare = in
	} else {
		yShare = mine1
		in, out := uint32(0), mine0
		if err := party.SendRecv(&in, &out); err != nil {
			return err
		}
		xShare = in
	}
	timing.Sample("Share inputs", nil)

	// One scalar multiplication: reveal x*y as a correctness check.
	zShare, err := arith.Mult(party, triples[0], xShare, yShare)
	if err != nil {
		return err
	}
	var z uint32
	if party.ID() == sss.Party0 {
		z, err = arith.Reconst(party, zShare, 0)
	} else {
		z, err = arith.Reconst(party, 0, zShare)
	}
	if err != nil {
		return err
	}
	timing.Sample("Mult", nil)
	fmt.Printf("x*y = %d (mod 2^%d)\n", z, *bitsize)

	// Batched multiplications: the throughput measurement.
	xs := make([]uint32, *batch)
	ys := make([]uint32, *batch)
	for i := range xs {
		xs[i] = xShare
		ys[i] = yShare
	}
	if _, err := arith.MultVec(party, triples[1:*batch+1], xs, ys); err != nil {
		return err
	}
	timing.Sample(fmt.Sprintf("MultVec n=%d", *batch),
		[]string{p2p.FileSize(party.TotalBytesSent()).String()})

	// Boolean gates on the low bits of the inputs. The low bit of an
	// additive share is an XOR share of the secret's low bit: the low
	// bit of a sum has no carry-in.
	xb := xShare & 1
	yb := yShare & 1
	andShare, err := boolean.And(party, btriples[0], xb, yb)
	if err != nil {
		return err
	}
	orShare, err := boolean.Or(party, btriples[1], xb, yb)
	if err != nil {
		return err
	}
	var gates [2]uint32
	shares := [2]uint32{andShare, orShare}
	for i, share := range shares {
		if party.ID() == sss.Party0 {
			gates[i], err = boolean.Reconst(party, share, 0)
		} else {
			gates[i], err = boolean.Reconst(party, 0, share)
		}
		if err != nil {
			return err
		}
	}
	timing.Sample("And/Or", nil)
	fmt.Printf("x&y = %d, x|y = %d (low bits)\n", gates[0], gates[1])

	fmt.Printf("total bytes sent: %d\n", party.TotalBytesSent())
	timing.Print(party.Stats())

	return nil
}

func tripleFile(id int) string {
	return filepath.Join(*dir, fmt.Sprintf("bt%d.dat", id))
}

func booleanFile(id int) string {
	return filepath.Join(*dir, fmt.Sprintf("btb%d.dat", id))
}
