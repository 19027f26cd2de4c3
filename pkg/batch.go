package fqpair

import (
	"fmt"
	"io"

	"github.com/jgbaldwinbrown/fasttsv"
	"golang.org/x/sync/errgroup"
)

// PathPair names one left/right input pair to reconcile.
type PathPair struct {
	Left  string
	Right string
}

// ReadPairList parses a tab-separated list of left/right path pairs, one
// pair per line. Blank lines and lines starting with # are skipped.
func ReadPairList(r io.Reader) ([]PathPair, error) {
	h := handle("ReadPairList: %w")

	var pairs []PathPair
	s := fasttsv.NewScanner(r)
	for s.Scan() {
		line := s.Line()
		if len(line) < 1 || line[0] == "" || line[0][0] == '#' {
			continue
		}
		if len(line) < 2 {
			return nil, h(fmt.Errorf("line %v: need two paths, got %v", len(pairs)+1, len(line)))
		}
		pairs = append(pairs, PathPair{Left: line[0], Right: line[1]})
	}
	return pairs, nil
}

// PairAll runs PairFiles for every listed pair, each pair concurrently with
// the others. Each run is still a self-contained two-file pass; only
// independent runs overlap.
func PairAll(pairs []PathPair, opt Options) ([]PairStats, error) {
	var g errgroup.Group
	sts := make([]PairStats, len(pairs))
	for i, p := range pairs {
		i := i
		p := p
		g.Go(func() error {
			var e error
			sts[i], e = PairFiles(p.Left, p.Right, opt)
			return e
		})
	}
	if e := g.Wait(); e != nil {
		return nil, e
	}
	return sts, nil
}
