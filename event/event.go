// Package event models the reconstructed-event content the monitor
// consumes: per-event object collections keyed by collection label,
// trigger-path decisions and detector-partition status, plus a
// stream reader and string-cut selectors over the objects.
package event

import "razordqm/razor"

// Jet is a reconstructed particle-flow jet.
type Jet struct {
	razor.FourVec
}

// Event carries the reconstructed content of one event. Collections are
// keyed by their collection label; a label missing from the map models an
// invalid handle, distinct from a present-but-empty collection.
type Event struct {
	Run    int   `json:"run"`
	Lumi   int   `json:"lumi"`
	Number int64 `json:"event"`

	MET         map[string][]razor.Vec3    `json:"met"`
	Jets        map[string][]Jet           `json:"jets"`
	Hemispheres map[string][]razor.FourVec `json:"hemispheres,omitempty"`

	// HLT maps versioned trigger-path names to their decision for this
	// event. DCS lists the detector partitions in a ready state.
	HLT map[string]bool `json:"hlt,omitempty"`
	DCS []int           `json:"dcs,omitempty"`
}

// METCollection returns the MET collection with the given label.
func (e *Event) METCollection(label string) ([]razor.Vec3, bool) {
	c, ok := e.MET[label]
	return c, ok
}

// JetCollection returns the jet collection with the given label.
func (e *Event) JetCollection(label string) ([]Jet, bool) {
	c, ok := e.Jets[label]
	return c, ok
}

// HemisphereCollection returns the hemisphere collection with the given
// label. ok is false when the collection was never produced for this
// event (invalid handle); an empty slice with ok true means the upstream
// hemisphere maker ran and produced nothing.
func (e *Event) HemisphereCollection(label string) ([]razor.FourVec, bool) {
	c, ok := e.Hemispheres[label]
	return c, ok
}

// HLTAccept reports the decision of the named trigger path and whether
// the path was recorded at all for this event.
func (e *Event) HLTAccept(path string) (accept, known bool) {
	accept, known = e.HLT[path]
	return accept, known
}

// DCSReady reports whether the given detector partition was ready.
func (e *Event) DCSReady(partition int) bool {
	for _, p := range e.DCS {
		if p == partition {
			return true
		}
	}
	return false
}

// Run describes one run of data taking: its number and the HLT menu, the
// set of versioned trigger-path names active for the run.
type Run struct {
	Number  int      `json:"run"`
	HLTMenu []string `json:"hlt_menu"`
}
