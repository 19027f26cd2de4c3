package fqpair

import (
	"io"
	"strings"
	"testing"

	"github.com/jgbaldwinbrown/iter"
)

func TestReadRecord(t *testing.T) {
	dir := t.TempDir()
	path := writePlain(t, dir, "r.fastq", "@a/1\nACGT\n+\nIIII\n@b/1\nGGGG\n+\nJJJJ\n")

	r, e := OpenSeq(path)
	if e != nil {
		t.Fatal(e)
	}
	defer r.Close()

	rec, e := ReadRecord(r)
	if e != nil {
		t.Fatal(e)
	}
	want := Record{Header: "@a/1", Seq: "ACGT", Plus: "+", Qual: "IIII"}
	if rec != want {
		t.Errorf("rec %v != %v", rec, want)
	}

	rec, e = ReadRecord(r)
	if e != nil {
		t.Fatal(e)
	}
	if rec.Header != "@b/1" || rec.Qual != "JJJJ" {
		t.Errorf("second rec %v", rec)
	}

	if _, e = ReadRecord(r); e != io.EOF {
		t.Errorf("e %v != io.EOF", e)
	}
}

func TestReadRecordTruncated(t *testing.T) {
	dir := t.TempDir()
	path := writePlain(t, dir, "r.fastq", "@a/1\nACGT\n")

	r, e := OpenSeq(path)
	if e != nil {
		t.Fatal(e)
	}
	defer r.Close()

	rec, e := ReadRecord(r)
	if e != nil {
		t.Fatal(e)
	}
	if rec.Header != "@a/1" || rec.Seq != "ACGT" || rec.Plus != "" || rec.Qual != "" {
		t.Errorf("truncated rec %v", rec)
	}
}

func TestRecordFprint(t *testing.T) {
	rec := Record{Header: "@a/1", Seq: "ACGT", Plus: "+", Qual: "IIII"}

	var b strings.Builder
	if e := rec.Fprint(&b, ""); e != nil {
		t.Fatal(e)
	}
	if b.String() != "@a/1\nACGT\n+\nIIII\n" {
		t.Errorf("verbatim print:\n%v", b.String())
	}

	b.Reset()
	if e := rec.Fprint(&b, "@a/2"); e != nil {
		t.Fatal(e)
	}
	if b.String() != "@a/2\nACGT\n+\nIIII\n" {
		t.Errorf("rewritten print:\n%v", b.String())
	}
}

func TestPosRecords(t *testing.T) {
	dir := t.TempDir()
	path := writePlain(t, dir, "r.fastq", "@a/1\nACGT\n+\nIIII\n@b/1\nGGGG\n+\nJJJJ\n")

	r, e := OpenSeq(path)
	if e != nil {
		t.Fatal(e)
	}
	defer r.Close()

	prs, e := iter.Collect[PosRecord](PosRecords(r))
	if e != nil {
		t.Fatal(e)
	}
	if len(prs) != 2 {
		t.Fatalf("len(prs) %v != 2", len(prs))
	}
	if prs[0].Pos != 0 || prs[1].Pos != 17 {
		t.Errorf("positions %v %v != 0 17", prs[0].Pos, prs[1].Pos)
	}

	// positions round-trip back to the records they index
	if e := r.Seek(prs[1].Pos); e != nil {
		t.Fatal(e)
	}
	rec, e := ReadRecord(r)
	if e != nil {
		t.Fatal(e)
	}
	if rec.Header != "@b/1" {
		t.Errorf("seeked header %v != @b/1", rec.Header)
	}
}
