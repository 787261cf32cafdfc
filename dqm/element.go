// Package dqm provides the histogram booking and storage substrate for
// monitoring modules: folder-scoped booking of monitor elements backed
// by hbook histograms, and YODA export of everything booked.
package dqm

import (
	"github.com/sirupsen/logrus"
	"go-hep.org/x/hep/hbook"
)

// Kind discriminates the histogram type backing an Element.
type Kind int

const (
	Kind1D Kind = iota
	Kind2D
	KindProfile
)

// Element is one booked monitor element. It wraps exactly one hbook
// histogram and is mutated only by Fill calls for the remainder of the
// run it was booked in.
type Element struct {
	kind   Kind
	h1     *hbook.H1D
	h2     *hbook.H2D
	p1     *hbook.P1D
	folder string
	name   string
	title  string
}

// Name returns the element name within its folder.
func (e *Element) Name() string { return e.name }

// Path returns the full folder-qualified element path.
func (e *Element) Path() string { return e.folder + "/" + e.name }

// Title returns the element title.
func (e *Element) Title() string { return e.title }

// Kind returns the histogram kind backing the element.
func (e *Element) Kind() Kind { return e.kind }

// SetAxisTitle sets the title of the given axis (1 = x, 2 = y).
func (e *Element) SetAxisTitle(title string, axis int) {
	var key string
	switch axis {
	case 1:
		key = "XLabel"
	case 2:
		key = "YLabel"
	default:
		logrus.Errorf("dqm: element %s: no axis %d", e.Path(), axis)
		return
	}
	e.annotation()[key] = title
}

// AxisTitle returns the title of the given axis, if set.
func (e *Element) AxisTitle(axis int) string {
	var key string
	switch axis {
	case 1:
		key = "XLabel"
	case 2:
		key = "YLabel"
	default:
		return ""
	}
	if t, ok := e.annotation()[key].(string); ok {
		return t
	}
	return ""
}

func (e *Element) annotation() hbook.Annotation {
	switch e.kind {
	case Kind1D:
		return e.h1.Annotation()
	case Kind2D:
		return e.h2.Annotation()
	default:
		return e.p1.Annotation()
	}
}

// Fill adds an entry to a 1-dimensional element with unit weight.
func (e *Element) Fill(x float64) {
	if e.kind != Kind1D {
		logrus.Errorf("dqm: 1-dim fill on %s element %s", kindName(e.kind), e.Path())
		return
	}
	e.h1.Fill(x, 1)
}

// FillXY adds an entry to a 2-dimensional or profile element with unit
// weight.
func (e *Element) FillXY(x, y float64) {
	switch e.kind {
	case Kind2D:
		e.h2.Fill(x, y, 1)
	case KindProfile:
		e.p1.Fill(x, y, 1)
	default:
		logrus.Errorf("dqm: 2-dim fill on 1-dim element %s", e.Path())
	}
}

// Entries returns the number of fills.
func (e *Element) Entries() int64 {
	switch e.kind {
	case Kind1D:
		return e.h1.Entries()
	case Kind2D:
		return e.h2.Entries()
	default:
		return e.p1.Entries()
	}
}

// H1D exposes the underlying 1-dim histogram, nil for other kinds.
func (e *Element) H1D() *hbook.H1D { return e.h1 }

// H2D exposes the underlying 2-dim histogram, nil for other kinds.
func (e *Element) H2D() *hbook.H2D { return e.h2 }

// P1D exposes the underlying profile, nil for other kinds.
func (e *Element) P1D() *hbook.P1D { return e.p1 }

// MarshalYODA implements yodacnv.Marshaler.
func (e *Element) MarshalYODA() ([]byte, error) {
	switch e.kind {
	case Kind1D:
		return e.h1.MarshalYODA()
	case Kind2D:
		return e.h2.MarshalYODA()
	default:
		return e.p1.MarshalYODA()
	}
}

func kindName(k Kind) string {
	switch k {
	case Kind1D:
		return "1-dim"
	case Kind2D:
		return "2-dim"
	default:
		return "profile"
	}
}
