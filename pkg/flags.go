package fqpair

import (
	"flag"
)

// GetFlags parses the command line into run Options plus the positional
// input paths (left file, right file).
func GetFlags() (Options, []string) {
	var opt Options
	flag.IntVar(&opt.TableSize, "t", DefaultTableSize, "Hash table bucket count. Larger is faster for big files but uses more memory.")
	flag.BoolVar(&opt.Deduplicate, "d", false, "Suppress duplicate identifiers in both files.")
	flag.BoolVar(&opt.SplitSpace, "s", false, "Truncate identifiers at the first space or tab.")
	flag.BoolVar(&opt.FormatID, "f", false, "Rewrite emitted identifier lines to normalized-key plus mate number.")
	flag.BoolVar(&opt.PrintTableCounts, "p", false, "Print per-bucket occupancy counts after indexing.")
	flag.BoolVar(&opt.Verbose, "v", false, "Trace each identifier as it is processed.")
	flag.Parse()
	return opt, flag.Args()
}
