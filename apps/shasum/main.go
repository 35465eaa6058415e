//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/markkurossi/text/superscript"
	"github.com/pkg/errors"

	"github.com/markkurossi/fips180/digest"
	"github.com/markkurossi/fips180/prg"
	"github.com/markkurossi/fips180/selftest"
	"github.com/markkurossi/fips180/timing"
)

var (
	verbose = false
	words   = false
)

func main() {
	fAlg := flag.String("a", "sha256", "Hash algorithm: sha1, sha256, sha512")
	fString := flag.String("s", "", "Hash the argument string")
	fWords := flag.Bool("w", false, "Print digest state words")
	fVerbose := flag.Bool("v", false, "Verbose output")
	fTest := flag.Bool("t", false, "Run self test")
	fBench := flag.Int("b", 0, "Benchmark algorithms with messages of size bytes")
	flag.Parse()

	log.SetFlags(0)

	verbose = *fVerbose
	words = *fWords

	if *fTest {
		if err := selfTest(); err != nil {
			log.Fatal(err)
		}
		return
	}
	if *fBench > 0 {
		benchmark(*fBench)
		return
	}

	alg, err := digest.Parse(*fAlg)
	if err != nil {
		log.Fatal(err)
	}

	if len(*fString) > 0 {
		output(alg, []byte(*fString), fmt.Sprintf("%q", *fString))
		return
	}
	if len(flag.Args()) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(errors.Wrap(err, "failed to read stdin"))
		}
		output(alg, data, "-")
		return
	}

	var failed bool
	for _, arg := range flag.Args() {
		data, err := os.ReadFile(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "shasum: %s\n", err)
			failed = true
			continue
		}
		output(alg, data, arg)
	}
	if failed {
		os.Exit(1)
	}
}

func output(alg digest.Algorithm, data []byte, name string) {
	if verbose {
		chain := digest.Chain(alg, data)
		fmt.Printf("%s: %d bytes, %d blocks\n", alg, len(data), len(chain)-1)
		for idx, state := range chain {
			fmt.Printf("H⁽%s⁾\t%s\n", superscript.Itoa(idx),
				digest.FormatWords(alg, state))
		}
	}
	if words {
		fmt.Printf("%s  %s\n", digest.FormatWords(alg, digest.Words(alg, data)),
			name)
	} else {
		fmt.Printf("%s  %s\n", digest.Hex(alg, data), name)
	}
}

func selfTest() error {
	results := selftest.Run(selftest.Vectors())
	selftest.Print(os.Stdout, results)
	if n := selftest.Failed(results); n > 0 {
		return fmt.Errorf("%d known-answer tests failed", n)
	}

	rand := prg.New([]byte("shasum self test"))
	for _, alg := range digest.Algorithms() {
		if err := selftest.CrossCheck(alg, rand, 100, 4096); err != nil {
			return err
		}
		ratio, err := selftest.Avalanche(alg, rand, 100, 64)
		if err != nil {
			return err
		}
		if verbose {
			fmt.Printf("%s: avalanche %.4f\n", alg, ratio)
		}
	}
	fmt.Println("Self test passed")
	return nil
}

func benchmark(size int) {
	data := prg.New([]byte("shasum benchmark")).Message(size)

	t := timing.NewTiming()
	for _, alg := range digest.Algorithms() {
		start := time.Now()
		sum := digest.Sum(alg, data)
		end := time.Now()

		ref := digest.Reference(alg)
		ref.Write(data)
		ref.Sum(nil)
		refEnd := time.Now()

		sample := t.Sample(alg.String(), nil)
		sample.AbsSubSample("fips180", end.Sub(start))
		sample.AbsSubSample("crypto", refEnd.Sub(end))

		if verbose {
			fmt.Printf("%s: %x\n", alg, sum)
		}
	}
	// Each sample hashes the data twice.
	t.Print(os.Stdout, timing.FileSize(2*size))
}
