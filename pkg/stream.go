package fqpair

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// Reader is a line reader over a plain or gzipped file that supports
// repositioning to any previously Tell()ed point. Positions are logical
// offsets into the uncompressed byte stream; callers should only round-trip
// values obtained from Tell on the same Reader.
type Reader struct {
	f   *os.File
	gz  *gzip.Reader
	br  *bufio.Reader
	pos int64
}

// IsGzipped reports whether the file at path starts with the gzip magic
// bytes.
func IsGzipped(path string) (bool, error) {
	h := handle("IsGzipped %v: %w")

	f, e := os.Open(path)
	if e != nil {
		return false, h(path, e)
	}
	defer f.Close()

	var magic [2]byte
	n, e := io.ReadFull(f, magic[:])
	if e != nil && n < 2 {
		return false, nil
	}
	return magic[0] == 0x1f && magic[1] == 0x8b, nil
}

// OpenSeq opens path for sequential line reading with seek support,
// transparently decompressing gzip input.
func OpenSeq(path string) (*Reader, error) {
	h := handle("OpenSeq %v: %w")

	gzipped, e := IsGzipped(path)
	if e != nil {
		return nil, h(path, e)
	}

	f, e := os.Open(path)
	if e != nil {
		return nil, h(path, e)
	}

	r := &Reader{f: f}
	if gzipped {
		gz, e := gzip.NewReader(f)
		if e != nil {
			f.Close()
			return nil, h(path, e)
		}
		r.gz = gz
		r.br = bufio.NewReader(gz)
	} else {
		r.br = bufio.NewReader(f)
	}
	return r, nil
}

func (r *Reader) Gzipped() bool {
	return r.gz != nil
}

// ReadLine returns the next line with its trailing newline stripped. It
// returns io.EOF only when no bytes remain; a final line with no newline is
// still returned.
func (r *Reader) ReadLine() (string, error) {
	s, e := r.br.ReadString('\n')
	r.pos += int64(len(s))
	if len(s) == 0 {
		if e == nil {
			e = io.EOF
		}
		return "", e
	}
	s = strings.TrimSuffix(s, "\n")
	return s, nil
}

// Tell returns the current logical position, suitable for a later Seek on
// this Reader.
func (r *Reader) Tell() int64 {
	return r.pos
}

// Seek repositions the Reader to a position previously returned by Tell.
// For gzip input, seeking backward rewinds to the start of the stream and
// re-decompresses up to the target, the way gzseek does.
func (r *Reader) Seek(pos int64) error {
	h := handle("Seek %v: %w")

	if r.gz == nil {
		if _, e := r.f.Seek(pos, io.SeekStart); e != nil {
			return h(pos, e)
		}
		r.br.Reset(r.f)
		r.pos = pos
		return nil
	}

	if pos < r.pos {
		if _, e := r.f.Seek(0, io.SeekStart); e != nil {
			return h(pos, e)
		}
		if e := r.gz.Reset(r.f); e != nil {
			return h(pos, e)
		}
		r.br.Reset(r.gz)
		r.pos = 0
	}
	if pos > r.pos {
		if _, e := io.CopyN(io.Discard, r.br, pos-r.pos); e != nil {
			return h(pos, e)
		}
		r.pos = pos
	}
	return nil
}

func (r *Reader) Close() error {
	var err error
	if r.gz != nil {
		if e := r.gz.Close(); err == nil {
			err = e
		}
	}
	if e := r.f.Close(); err == nil {
		err = e
	}
	return err
}
