package main

import (
	"fmt"
	"os"

	"github.com/jgbaldwinbrown/fqpair/pkg"
)

func main() {
	opt, args := fqpair.GetFlags()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: fqpair [options] left.fastq right.fastq")
		os.Exit(1)
	}

	st, e := fqpair.PairFiles(args[0], args[1], opt)
	if e != nil {
		fmt.Fprintln(os.Stderr, e)
		os.Exit(1)
	}

	if e := fqpair.FprintSummary(os.Stdout, st, opt.Deduplicate); e != nil {
		fmt.Fprintln(os.Stderr, e)
		os.Exit(1)
	}
}
