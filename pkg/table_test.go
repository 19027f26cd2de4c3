package fqpair

import (
	"strings"
	"testing"
)

func TestHash(t *testing.T) {
	if Hash("") != 0 {
		t.Errorf("Hash(\"\") != 0")
	}
	if Hash("a") != uint32('a') {
		t.Errorf("Hash(\"a\") == %v != %v", Hash("a"), uint32('a'))
	}
	if Hash("ab") != 31*uint32('a')+uint32('b') {
		t.Errorf("Hash(\"ab\") == %v", Hash("ab"))
	}
}

func TestTableBadSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, e := NewIdTable(size); e == nil {
			t.Errorf("NewIdTable(%v) did not fail", size)
		}
	}
}

func TestTableLookup(t *testing.T) {
	tab, e := NewIdTable(1)
	if e != nil {
		t.Fatal(e)
	}

	tab.Insert("@a/", 0)
	tab.Insert("@b/", 100)

	if !tab.Contains("@a/") || !tab.Contains("@b/") {
		t.Errorf("missing inserted ids")
	}
	if tab.Contains("@c/") {
		t.Errorf("found id never inserted")
	}

	ent := tab.LookupLast("@b/")
	if ent == nil || ent.Pos != 100 {
		t.Errorf("LookupLast(@b/) == %v", ent)
	}
	ent.Printed = true
	if tab.LookupLast("@b/").Printed != true {
		t.Errorf("Printed mark did not stick")
	}
}

func TestTableLookupLastDuplicates(t *testing.T) {
	tab, e := NewIdTable(1)
	if e != nil {
		t.Fatal(e)
	}

	tab.Insert("@dup/", 0)
	tab.Insert("@other/", 50)
	tab.Insert("@dup/", 100)

	ent := tab.LookupLast("@dup/")
	if ent == nil || ent.Pos != 0 {
		t.Errorf("LookupLast on duplicate keys == %v; want the oldest entry at 0", ent)
	}
}

func TestTableEachOrder(t *testing.T) {
	tab, e := NewIdTable(1)
	if e != nil {
		t.Fatal(e)
	}
	tab.Insert("@a/", 0)
	tab.Insert("@b/", 1)
	tab.Insert("@c/", 2)

	var seen []string
	if e := tab.Each(func(ent *IdEntry) error {
		seen = append(seen, ent.Id)
		return nil
	}); e != nil {
		t.Fatal(e)
	}

	want := "@c/ @b/ @a/"
	if strings.Join(seen, " ") != want {
		t.Errorf("Each order %v != %v", strings.Join(seen, " "), want)
	}
}

func TestTableOccupancyStats(t *testing.T) {
	tab, e := NewIdTable(2)
	if e != nil {
		t.Fatal(e)
	}
	tab.Insert("@a/", 0)
	tab.Insert("@b/", 1)
	tab.Insert("@c/", 2)
	tab.Insert("@d/", 3)

	s, e := tab.OccupancyStats()
	if e != nil {
		t.Fatal(e)
	}
	if s.Entries != 4 {
		t.Errorf("Entries == %v != 4", s.Entries)
	}
	if s.Mean != 2 {
		t.Errorf("Mean == %v != 2", s.Mean)
	}
}

func TestFprintBucketCounts(t *testing.T) {
	tab, e := NewIdTable(2)
	if e != nil {
		t.Fatal(e)
	}
	tab.Insert("@a/", 0)

	var b strings.Builder
	if e := tab.FprintBucketCounts(&b); e != nil {
		t.Fatal(e)
	}
	out := b.String()
	if !strings.HasPrefix(out, "Bucket sizes\n") || strings.Count(out, "\n") != 3 {
		t.Errorf("bad bucket dump:\n%v", out)
	}
}
