package fqpair

import (
	"strings"
)

// Suffixes recognized on input filenames, longest first so .fastq.gz wins
// over .fastq.
var fastqSuffixes = []string{".fastq.gz", ".fq.gz", ".fastq", ".fq"}

// StripFastqSuffix returns path with its recognized fastq suffix removed,
// the suffix that was removed, and whether one was recognized. Unrecognized
// paths come back unchanged.
func StripFastqSuffix(path string) (stem string, suffix string, ok bool) {
	for _, s := range fastqSuffixes {
		if strings.HasSuffix(path, s) {
			return path[:len(path)-len(s)], s, true
		}
	}
	return path, "", false
}

// OutputNames derives the four output paths from the two input paths. If
// either input is gzipped all four outputs are gzipped.
type OutputNames struct {
	LeftPaired  string
	RightPaired string
	LeftSingle  string
	RightSingle string
}

func MakeOutputNames(left, right string, gzout bool) OutputNames {
	paired, single := ".paired.fastq", ".single.fastq"
	if gzout {
		paired += ".gz"
		single += ".gz"
	}

	lstem, _, _ := StripFastqSuffix(left)
	rstem, _, _ := StripFastqSuffix(right)

	return OutputNames{
		LeftPaired:  lstem + paired,
		RightPaired: rstem + paired,
		LeftSingle:  lstem + single,
		RightSingle: rstem + single,
	}
}
