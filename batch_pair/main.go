package main

import (
	"fmt"
	"os"

	"github.com/jgbaldwinbrown/fqpair/pkg"
)

// batch_pair pairs many left/right file pairs in one go. It reads a
// tab-separated list of path pairs from stdin (or a file given as the one
// positional argument) and runs the pairs concurrently.
func main() {
	opt, args := fqpair.GetFlags()

	in := os.Stdin
	if len(args) == 1 {
		f, e := os.Open(args[0])
		if e != nil {
			fmt.Fprintln(os.Stderr, e)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	} else if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "usage: batch_pair [options] [pairlist.tsv]")
		os.Exit(1)
	}

	pairs, e := fqpair.ReadPairList(in)
	if e != nil {
		fmt.Fprintln(os.Stderr, e)
		os.Exit(1)
	}

	sts, e := fqpair.PairAll(pairs, opt)
	if e != nil {
		fmt.Fprintln(os.Stderr, e)
		os.Exit(1)
	}

	for i, st := range sts {
		fmt.Printf("%v\t%v:\n", pairs[i].Left, pairs[i].Right)
		if e := fqpair.FprintSummary(os.Stdout, st, opt.Deduplicate); e != nil {
			fmt.Fprintln(os.Stderr, e)
			os.Exit(1)
		}
	}
}
