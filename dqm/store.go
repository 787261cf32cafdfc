package dqm

import (
	"fmt"
	"io"
	"os"
	"sort"

	"go-hep.org/x/hep/hbook/yodacnv"
)

// Store owns every monitor element booked for the current run. A new run
// starts from an empty store (Reset) followed by a fresh booking cycle.
type Store struct {
	elements map[string][]*Element // folder -> elements in booking order
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{elements: make(map[string][]*Element)}
}

// Booker returns a booking handle on the store, initially rooted at the
// store's top folder.
func (s *Store) Booker() *Booker {
	return &Booker{store: s}
}

// Reset drops every booked element, readying the store for the next
// run's booking cycle.
func (s *Store) Reset() {
	s.elements = make(map[string][]*Element)
}

// Get returns the named element in the given folder, or nil.
func (s *Store) Get(folder, name string) *Element {
	for _, e := range s.elements[folder] {
		if e.name == name {
			return e
		}
	}
	return nil
}

// Folders returns the booked folder paths in sorted order.
func (s *Store) Folders() []string {
	folders := make([]string, 0, len(s.elements))
	for f := range s.elements {
		folders = append(folders, f)
	}
	sort.Strings(folders)
	return folders
}

// Elements returns the elements booked under folder, in booking order.
func (s *Store) Elements(folder string) []*Element {
	return s.elements[folder]
}

// WriteYODA writes every booked element to w in YODA text format,
// folders sorted, elements in booking order within a folder.
func (s *Store) WriteYODA(w io.Writer) error {
	var grids []yodacnv.Marshaler
	for _, folder := range s.Folders() {
		for _, e := range s.Elements(folder) {
			grids = append(grids, e)
		}
	}
	return yodacnv.Write(w, grids...)
}

// SaveYODA writes the store to the named file.
func (s *Store) SaveYODA(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := s.WriteYODA(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func (s *Store) add(e *Element) {
	s.elements[e.folder] = append(s.elements[e.folder], e)
}
