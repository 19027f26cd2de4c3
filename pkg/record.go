package fqpair

import (
	"fmt"
	"io"

	"github.com/jgbaldwinbrown/iter"
)

// Record is one 4-line entry: identifier line, sequence, separator, and
// quality. Lines 2-4 are carried verbatim; only the identifier line is ever
// parsed or rewritten.
type Record struct {
	Header string
	Seq    string
	Plus   string
	Qual   string
}

// ReadRecord reads the next 4-line record. It returns io.EOF at a clean end
// of stream; a truncated trailing record is returned best-effort with its
// missing lines empty rather than rejected.
func ReadRecord(r *Reader) (Record, error) {
	var rec Record

	header, e := r.ReadLine()
	if e != nil {
		return rec, e
	}
	rec.Header = header

	for i, p := range []*string{&rec.Seq, &rec.Plus, &rec.Qual} {
		line, e := r.ReadLine()
		if e == io.EOF {
			break
		}
		if e != nil {
			return rec, fmt.Errorf("ReadRecord: line %v: %w", i+2, e)
		}
		*p = line
	}
	return rec, nil
}

// Fprint writes the record's 4 lines. If id is non-empty it replaces the
// identifier line, which is how paired/single emission rewrites headers to
// normalized-key-plus-mate-number form.
func (rec Record) Fprint(w io.Writer, id string) error {
	if id == "" {
		id = rec.Header
	}
	_, e := fmt.Fprintf(w, "%s\n%s\n%s\n%s\n", id, rec.Seq, rec.Plus, rec.Qual)
	return e
}

// PosRecord is a record plus the stream position of the start of its
// identifier line, as needed for later seek-and-reread.
type PosRecord struct {
	Rec Record
	Pos int64
}

// PosRecords iterates the stream's records in order, tagging each with the
// position it starts at.
func PosRecords(r *Reader) *iter.Iterator[PosRecord] {
	return &iter.Iterator[PosRecord]{Iteratef: func(yield func(PosRecord) error) error {
		for {
			pos := r.Tell()
			rec, e := ReadRecord(r)
			if e == io.EOF {
				return nil
			}
			if e != nil {
				return e
			}
			if e := yield(PosRecord{Rec: rec, Pos: pos}); e != nil {
				return e
			}
		}
	}}
}
