package fqpair

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jgbaldwinbrown/csvh"
)

func handle(format string) func(...any) error {
	return func(args ...any) error {
		return fmt.Errorf(format, args...)
	}
}

// DefaultTableSize is a prime big enough that typical runs see short
// chains; -t tunes it for very large files.
const DefaultTableSize = 100003

// Options configures one pairing run. It is read-only to the library; the
// command layer owns building it.
type Options struct {
	TableSize        int
	Deduplicate      bool
	SplitSpace       bool
	FormatID         bool
	PrintTableCounts bool
	Verbose          bool
}

type PairStats struct {
	LeftPaired      int64
	RightPaired     int64
	LeftSingle      int64
	RightSingle     int64
	LeftDuplicates  int64
	RightDuplicates int64
}

func FprintSummary(w io.Writer, st PairStats, dedup bool) error {
	_, e := fmt.Fprintf(w, "Left paired: %-14d Right paired: %d \nLeft single: %-14d Right single: %d\n",
		st.LeftPaired, st.RightPaired, st.LeftSingle, st.RightSingle)
	if e != nil {
		return e
	}
	if dedup {
		_, e = fmt.Fprintf(w, "Left duplicates: %-10d Right duplicates: %d\n",
			st.LeftDuplicates, st.RightDuplicates)
	}
	return e
}

func formatID(opt Options, id, mate string) string {
	if !opt.FormatID {
		return ""
	}
	return id + mate
}

// buildIndex reads every record of the left file in order and indexes its
// normalized identifier at the record's start position. With dedup on,
// repeats of an already-indexed identifier are counted and dropped.
func buildIndex(lr *Reader, tab *IdTable, opt Options) (int64, error) {
	h := handle("buildIndex: %w")

	var dups int64
	e := PosRecords(lr).Iterate(func(pr PosRecord) error {
		id := NormalizeID(pr.Rec.Header, opt.SplitSpace)
		if opt.Verbose {
			log.Printf("first file id: |%v|", id)
		}
		if opt.Deduplicate && tab.Contains(id) {
			if opt.Verbose {
				log.Printf("duplicate id in first file, skipping: %v", id)
			}
			dups++
			return nil
		}
		tab.Insert(id, pr.Pos)
		return nil
	})
	if e != nil {
		return dups, h(e)
	}
	return dups, nil
}

func rereadAt(r *Reader, pos int64) (Record, error) {
	if e := r.Seek(pos); e != nil {
		return Record{}, e
	}
	return ReadRecord(r)
}

type Outputs struct {
	LeftPaired  io.WriteCloser
	RightPaired io.WriteCloser
	LeftSingle  io.WriteCloser
	RightSingle io.WriteCloser
}

func createOutputs(n OutputNames) (*Outputs, error) {
	h := handle("createOutputs %v: %w")

	var out Outputs
	var e error
	if out.LeftPaired, e = csvh.CreateMaybeGz(n.LeftPaired); e != nil {
		return nil, h(n.LeftPaired, e)
	}
	if out.RightPaired, e = csvh.CreateMaybeGz(n.RightPaired); e != nil {
		out.LeftPaired.Close()
		return nil, h(n.RightPaired, e)
	}
	if out.LeftSingle, e = csvh.CreateMaybeGz(n.LeftSingle); e != nil {
		out.LeftPaired.Close()
		out.RightPaired.Close()
		return nil, h(n.LeftSingle, e)
	}
	if out.RightSingle, e = csvh.CreateMaybeGz(n.RightSingle); e != nil {
		out.LeftPaired.Close()
		out.RightPaired.Close()
		out.LeftSingle.Close()
		return nil, h(n.RightSingle, e)
	}
	return &out, nil
}

func (o *Outputs) Close() error {
	var err error
	for _, c := range []io.Closer{o.LeftPaired, o.RightPaired, o.LeftSingle, o.RightSingle} {
		if e := c.Close(); err == nil {
			err = e
		}
	}
	return err
}

func removeOutputs(n OutputNames) {
	os.Remove(n.LeftPaired)
	os.Remove(n.RightPaired)
	os.Remove(n.LeftSingle)
	os.Remove(n.RightSingle)
}

// matchRecords makes the single pass over the right file. Each right record
// is matched against the left index regardless of dedup mode; dedup only
// gates whether the right-side presence table is consulted and grown. On a
// match the left record is re-read by seeking to its indexed position and
// both records go to the paired outputs; otherwise the right record goes to
// its single output. When duplicate keys coexist in the index (dedup off),
// the oldest entry is the one matched and marked, so its newer twins still
// flush as singles later.
func matchRecords(lr, rr *Reader, ltab, rtab *IdTable, out *Outputs, opt Options, st *PairStats) error {
	h := handle("matchRecords: %w")

	e := PosRecords(rr).Iterate(func(pr PosRecord) error {
		id := NormalizeID(pr.Rec.Header, opt.SplitSpace)
		if opt.Verbose {
			log.Printf("second file id: |%v|", id)
		}

		if rtab != nil {
			if rtab.Contains(id) {
				if opt.Verbose {
					log.Printf("duplicate id in second file, skipping: %v", id)
				}
				st.RightDuplicates++
				return nil
			}
			rtab.Insert(id, pr.Pos)
		}

		ent := ltab.LookupLast(id)
		if ent == nil {
			if e := pr.Rec.Fprint(out.RightSingle, formatID(opt, id, "2")); e != nil {
				return e
			}
			st.RightSingle++
			return nil
		}

		lrec, e := rereadAt(lr, ent.Pos)
		if e != nil {
			return e
		}
		if e := lrec.Fprint(out.LeftPaired, formatID(opt, id, "1")); e != nil {
			return e
		}
		if e := pr.Rec.Fprint(out.RightPaired, formatID(opt, id, "2")); e != nil {
			return e
		}
		ent.Printed = true
		st.LeftPaired++
		st.RightPaired++
		return nil
	})
	if e != nil {
		return h(e)
	}
	return nil
}

// flushSingles emits every indexed left record never matched. Emission
// order is bucket order then chain order, not input order.
func flushSingles(lr *Reader, tab *IdTable, w io.Writer, opt Options, st *PairStats) error {
	h := handle("flushSingles: %w")

	e := tab.Each(func(ent *IdEntry) error {
		if ent.Printed {
			return nil
		}
		rec, e := rereadAt(lr, ent.Pos)
		if e != nil {
			return e
		}
		id := ""
		if opt.FormatID {
			id = ent.Id + "1"
		}
		if e := rec.Fprint(w, id); e != nil {
			return e
		}
		st.LeftSingle++
		return nil
	})
	if e != nil {
		return h(e)
	}
	return nil
}

// PairFiles reconstructs the pairing between the two files: it indexes the
// left file, streams the right file once against that index, and flushes
// leftover left records. On any error the four output files are removed
// rather than left looking complete.
func PairFiles(left, right string, opt Options) (st PairStats, err error) {
	h := handle("PairFiles: %w")

	if opt.TableSize == 0 {
		opt.TableSize = DefaultTableSize
	}
	ltab, e := NewIdTable(opt.TableSize)
	if e != nil {
		return st, h(e)
	}
	var rtab *IdTable
	if opt.Deduplicate {
		if rtab, e = NewIdTable(opt.TableSize); e != nil {
			return st, h(e)
		}
	}

	lr, e := OpenSeq(left)
	if e != nil {
		return st, h(e)
	}
	defer func() { csvh.DeferE(&err, lr.Close()) }()

	rr, e := OpenSeq(right)
	if e != nil {
		return st, h(e)
	}
	defer func() { csvh.DeferE(&err, rr.Close()) }()

	gzout := lr.Gzipped() || rr.Gzipped()
	fmt.Fprintf(os.Stderr, "First file is gzipped: %v\n", lr.Gzipped())
	fmt.Fprintf(os.Stderr, "Second file is gzipped: %v\n", rr.Gzipped())
	fmt.Fprintf(os.Stderr, "Output files will be gzipped: %v\n", gzout)

	if st.LeftDuplicates, e = buildIndex(lr, ltab, opt); e != nil {
		return st, h(e)
	}

	if opt.PrintTableCounts {
		if e := ltab.FprintBucketCounts(os.Stdout); e != nil {
			return st, h(e)
		}
		ts, e := ltab.OccupancyStats()
		if e != nil {
			return st, h(e)
		}
		fmt.Fprintf(os.Stderr, "table occupancy: %v entries; chain length mean %.2f median %v max %v stdev %.2f\n",
			ts.Entries, ts.Mean, ts.Median, ts.Max, ts.Stdev)
	}

	names := MakeOutputNames(left, right, gzout)
	fmt.Printf("Writing the paired reads to %v and %v\nWriting the single reads to %v and %v\n",
		names.LeftPaired, names.RightPaired, names.LeftSingle, names.RightSingle)

	defer func() {
		if err != nil {
			removeOutputs(names)
		}
	}()
	out, e := createOutputs(names)
	if e != nil {
		return st, h(e)
	}
	defer func() { csvh.DeferE(&err, out.Close()) }()

	if e := matchRecords(lr, rr, ltab, rtab, out, opt, &st); e != nil {
		return st, h(e)
	}
	if e := flushSingles(lr, ltab, out.LeftSingle, opt, &st); e != nil {
		return st, h(e)
	}

	return st, nil
}
