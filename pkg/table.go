package fqpair

import (
	"fmt"
	"io"

	"github.com/montanaflynn/stats"
)

// Hash is the bucket hash over normalized identifiers: a 31-polynomial over
// the key's bytes with wrapping unsigned arithmetic.
func Hash(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = uint32(s[i]) + 31*h
	}
	return h
}

type IdEntry struct {
	Id      string
	Pos     int64
	Printed bool
}

// IdTable maps normalized identifiers to file positions. The bucket count
// is fixed at construction and never grows; memory use is bounded by the
// number of entries, not by table sizing. Within a bucket, entries are kept
// in head-insertion order: the most recently inserted entry is scanned
// first.
type IdTable struct {
	buckets [][]IdEntry
}

const maxTableSize = 1 << 30

func NewIdTable(size int) (*IdTable, error) {
	if size < 1 || size >= maxTableSize {
		return nil, fmt.Errorf("NewIdTable: bad table size %v; try a smaller -t", size)
	}
	return &IdTable{buckets: make([][]IdEntry, size)}, nil
}

func (t *IdTable) bucket(id string) []IdEntry {
	return t.buckets[int(Hash(id)%uint32(len(t.buckets)))]
}

func (t *IdTable) Insert(id string, pos int64) {
	i := int(Hash(id) % uint32(len(t.buckets)))
	t.buckets[i] = append(t.buckets[i], IdEntry{Id: id, Pos: pos})
}

// Contains reports whether an entry with exactly this identifier exists.
func (t *IdTable) Contains(id string) bool {
	for _, e := range t.bucket(id) {
		if e.Id == id {
			return true
		}
	}
	return false
}

// LookupLast scans the identifier's full bucket chain from the most recent
// insertion to the oldest and returns the last exact match scanned, i.e.
// the oldest same-key entry. The returned pointer stays valid until the
// next Insert.
func (t *IdTable) LookupLast(id string) *IdEntry {
	i := int(Hash(id) % uint32(len(t.buckets)))
	b := t.buckets[i]
	var found *IdEntry
	for j := len(b) - 1; j >= 0; j-- {
		if b[j].Id == id {
			found = &b[j]
		}
	}
	return found
}

// Each visits every entry in bucket order, and within a bucket from the
// most recent insertion to the oldest. This order is deterministic for a
// given table size but depends on the hash, not on file order.
func (t *IdTable) Each(f func(*IdEntry) error) error {
	for i := range t.buckets {
		b := t.buckets[i]
		for j := len(b) - 1; j >= 0; j-- {
			if e := f(&b[j]); e != nil {
				return e
			}
		}
	}
	return nil
}

// FprintBucketCounts dumps one "bucket index, chain length" row per bucket,
// a tuning aid for choosing -t.
func (t *IdTable) FprintBucketCounts(w io.Writer) error {
	if _, e := fmt.Fprintln(w, "Bucket sizes"); e != nil {
		return e
	}
	for i, b := range t.buckets {
		if _, e := fmt.Fprintf(w, "%d\t%d\n", i, len(b)); e != nil {
			return e
		}
	}
	return nil
}

type TableStats struct {
	Entries int64
	Mean    float64
	Median  float64
	Max     float64
	Stdev   float64
}

// OccupancyStats summarizes chain lengths across all buckets.
func (t *IdTable) OccupancyStats() (TableStats, error) {
	h := handle("OccupancyStats: %w")

	lens := make([]float64, len(t.buckets))
	var s TableStats
	for i, b := range t.buckets {
		lens[i] = float64(len(b))
		s.Entries += int64(len(b))
	}

	var e error
	if s.Mean, e = stats.Mean(lens); e != nil {
		return s, h(e)
	}
	if s.Median, e = stats.Median(lens); e != nil {
		return s, h(e)
	}
	if s.Max, e = stats.Max(lens); e != nil {
		return s, h(e)
	}
	if s.Stdev, e = stats.StandardDeviation(lens); e != nil {
		return s, h(e)
	}
	return s, nil
}
