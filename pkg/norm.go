package fqpair

import (
	"github.com/jgbaldwinbrown/lscan/pkg"
)

var spaceSplit = lscan.ByByte(' ')
var tabSplit = lscan.ByByte('\t')

func firstField(s string) string {
	fields := lscan.SplitByFunc(nil, s, spaceSplit)
	if len(fields) > 0 {
		s = fields[0]
	}
	fields = lscan.SplitByFunc(fields[:0], s, tabSplit)
	if len(fields) > 0 {
		s = fields[0]
	}
	return s
}

func mateSep(c byte) bool {
	return c == '/' || c == '_' || c == '.'
}

func mateChar(c byte) bool {
	return c == '1' || c == '2' || c == 'f' || c == 'r'
}

// NormalizeID derives the pairing key from a raw identifier line. A
// recognized mate suffix (separator one of / _ . followed by 1, 2, f or r)
// is stripped down to the separator, so id/1 and id/2 both key as id/. An
// identifier with no mate suffix gets a trailing / appended so whole-name
// pairing produces the same key shape. Normalization is idempotent: a key
// already ending in / is returned unchanged. Identifiers shorter than two
// bytes are returned as-is.
func NormalizeID(id string, splitspace bool) string {
	if splitspace {
		id = firstField(id)
	}
	if len(id) < 2 {
		return id
	}
	if mateSep(id[len(id)-2]) && mateChar(id[len(id)-1]) {
		return id[:len(id)-1]
	}
	if id[len(id)-1] == '/' {
		return id
	}
	return id + "/"
}
