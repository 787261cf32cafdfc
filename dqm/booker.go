package dqm

import (
	"go-hep.org/x/hep/hbook"
)

// Booker books monitor elements into a store under the current folder.
// Booking happens once per run, at the run-begin transition; elements
// are only filled afterwards.
type Booker struct {
	store  *Store
	folder string
}

// SetCurrentFolder sets the folder subsequent bookings go into.
func (b *Booker) SetCurrentFolder(path string) {
	b.folder = path
}

// Book1D books a fixed-width 1-dim element.
func (b *Booker) Book1D(name, title string, nbins int, lo, hi float64) *Element {
	e := &Element{
		kind: Kind1D,
		h1:   hbook.NewH1D(nbins, lo, hi),
	}
	return b.register(e, name, title)
}

// Book1DFromEdges books a variable-width 1-dim element. Edges must be
// sorted and at least two; hbook panics otherwise, as booking happens
// once from validated configuration.
func (b *Booker) Book1DFromEdges(name, title string, edges []float64) *Element {
	e := &Element{
		kind: Kind1D,
		h1:   hbook.NewH1DFromEdges(edges),
	}
	return b.register(e, name, title)
}

// BookProfile books a fixed-width profile element.
func (b *Booker) BookProfile(name, title string, nbins int, lo, hi float64) *Element {
	e := &Element{
		kind: KindProfile,
		p1:   hbook.NewP1D(nbins, lo, hi),
	}
	return b.register(e, name, title)
}

// Book2D books a fixed-width 2-dim element.
func (b *Booker) Book2D(name, title string, nx int, xlo, xhi float64, ny int, ylo, yhi float64) *Element {
	e := &Element{
		kind: Kind2D,
		h2:   hbook.NewH2D(nx, xlo, xhi, ny, ylo, yhi),
	}
	return b.register(e, name, title)
}

// Book2DFromEdges books a variable-width 2-dim element.
func (b *Booker) Book2DFromEdges(name, title string, xedges, yedges []float64) *Element {
	e := &Element{
		kind: Kind2D,
		h2:   hbook.NewH2DFromEdges(xedges, yedges),
	}
	return b.register(e, name, title)
}

func (b *Booker) register(e *Element, name, title string) *Element {
	e.folder = b.folder
	e.name = name
	e.title = title

	ann := e.annotation()
	ann["name"] = name
	ann["title"] = title
	ann["path"] = e.Path()

	b.store.add(e)
	return e
}
