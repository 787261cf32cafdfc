package event

import (
	"encoding/json"
	"io"
	"os"
)

// Reader streams events from a JSON-lines file, one event object per
// line, decoding lazily so arbitrarily long runs can be processed with
// constant memory.
type Reader struct {
	dec   *json.Decoder
	close io.Closer
	evt   Event
	err   error
}

// Open opens the named event file.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := NewReader(f)
	r.close = f
	return r, nil
}

// NewReader reads events from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: json.NewDecoder(r)}
}

// Next advances to the next event. It returns false at end of stream or
// on the first decoding error; Err tells the two apart.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}
	r.evt = Event{}
	err := r.dec.Decode(&r.evt)
	switch {
	case err == io.EOF:
		return false
	case err != nil:
		r.err = err
		return false
	}
	return true
}

// Event returns the current event. Valid until the next call to Next.
func (r *Reader) Event() *Event { return &r.evt }

// Err returns the first error encountered while streaming, if any.
func (r *Reader) Err() error { return r.err }

// Close closes the underlying file, if the reader owns one.
func (r *Reader) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close.Close()
}
