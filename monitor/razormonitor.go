// Package monitor implements the razor-trigger DQM module. It measures
// razor trigger efficiency as a function of the razor variables M_R and
// R^2 and additionally monitors dPhi_R, used offline for QCD and
// detector-related MET tail rejection. Events entering the denominator
// come from an orthogonal baseline trigger; the numerator is the subset
// also accepted by the razor trigger under study.
package monitor

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"razordqm/dqm"
	"razordqm/event"
	"razordqm/razor"
	"razordqm/trigger"
)

// razorME is a numerator/denominator monitor-element pair.
type razorME struct {
	numerator   *dqm.Element
	denominator *dqm.Element
}

// RazorMonitor accumulates razor-variable histograms gated by the
// numerator and denominator trigger flags. Construct with New, book at
// each run-begin transition with BookHistograms, then feed events to
// Analyze. The monitor holds no per-event state between calls.
type RazorMonitor struct {
	cfg Config

	metSelection *event.Selector
	jetSelection *event.Selector
	numFlag      *trigger.Flag
	denFlag      *trigger.Flag

	mrME      razorME
	rsqME     razorME
	dphiRME   razorME
	mrVsRsqME razorME
	booked    bool

	metrics Metrics
	log     *logrus.Entry
}

// New builds a monitor from its configuration, compiling both selection
// predicates and both trigger flags.
func New(cfg Config) (*RazorMonitor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	metSel, err := event.NewSelector(cfg.METSelection)
	if err != nil {
		return nil, fmt.Errorf("met selection: %w", err)
	}
	jetSel, err := event.NewSelector(cfg.JetSelection)
	if err != nil {
		return nil, fmt.Errorf("jet selection: %w", err)
	}

	return &RazorMonitor{
		cfg:          cfg,
		metSelection: metSel,
		jetSelection: jetSel,
		numFlag:      trigger.New("numerator", cfg.NumTrigger),
		denFlag:      trigger.New("denominator", cfg.DenTrigger),
		log:          logrus.WithField("module", "RazorMonitor"),
	}, nil
}

func bookME(b *dqm.Booker, me *razorME, histname, histtitle string, edges []float64) {
	me.numerator = b.Book1DFromEdges(histname+"_numerator", histtitle+" (numerator)", edges)
	me.denominator = b.Book1DFromEdges(histname+"_denominator", histtitle+" (denominator)", edges)
}

func bookME2D(b *dqm.Booker, me *razorME, histname, histtitle string, xedges, yedges []float64) {
	me.numerator = b.Book2DFromEdges(histname+"_numerator", histtitle+" (numerator)", xedges, yedges)
	me.denominator = b.Book2DFromEdges(histname+"_denominator", histtitle+" (denominator)", xedges, yedges)
}

func setMETitle(me *razorME, titleX, titleY string) {
	me.numerator.SetAxisTitle(titleX, 1)
	me.numerator.SetAxisTitle(titleY, 2)
	me.denominator.SetAxisTitle(titleX, 1)
	me.denominator.SetAxisTitle(titleY, 2)
}

// BookHistograms books the five numerator/denominator pairs under the
// configured folder and initializes the trigger flags for the run.
// Invoked once per run; the histogram store must have been reset if a
// previous run was processed.
func (m *RazorMonitor) BookHistograms(b *dqm.Booker, run *event.Run) {
	b.SetCurrentFolder(m.cfg.FolderName)

	bookME(b, &m.mrME, "MR", "PF MR", m.cfg.Histograms.MRBins)
	setMETitle(&m.mrME, "PF M_{R} [GeV]", "events / [GeV]")

	bookME(b, &m.rsqME, "Rsq", "PF Rsq", m.cfg.Histograms.RsqBins)
	setMETitle(&m.rsqME, "PF R^{2}", "events")

	bookME(b, &m.dphiRME, "dPhiR", "dPhiR", m.cfg.Histograms.DPhiRBins)
	setMETitle(&m.dphiRME, "dPhi_{R}", "events")

	bookME2D(b, &m.mrVsRsqME, "MRVsRsq", "PF MR vs PF Rsq",
		m.cfg.Histograms.MRBins, m.cfg.Histograms.RsqBins)
	setMETitle(&m.mrVsRsqME, "M_{R} [GeV]", "R^{2}")

	if m.numFlag.On() {
		m.numFlag.InitRun(run)
	}
	if m.denFlag.On() {
		m.denFlag.InitRun(run)
	}

	m.booked = true
}

// Analyze processes one event: baseline trigger gate, MET and jet
// selection, hemisphere validity, razor-variable computation, offline
// razor cut, then denominator and numerator fills. Every unmet
// precondition exits before any histogram is touched.
func (m *RazorMonitor) Analyze(evt *event.Event) {
	m.metrics.Events++

	if !m.booked {
		m.log.Error("analyze called before histogram booking")
		return
	}

	// filter out events if trigger filtering is requested
	if m.denFlag.On() && !m.denFlag.Accept(evt) {
		m.metrics.FailDenTrigger++
		return
	}

	// met collection
	metColl, ok := evt.METCollection(m.cfg.MET)
	if !ok || len(metColl) == 0 {
		m.metrics.FailMET++
		return
	}
	pfmet := metColl[0]
	pass, err := m.metSelection.Accept(event.METVars(pfmet))
	if err != nil {
		m.log.Errorf("event %d: %v", evt.Number, err)
		m.metrics.FailMET++
		return
	}
	if !pass {
		m.metrics.FailMET++
		return
	}

	// jet collection, track # of jets passing the working point
	jetColl, ok := evt.JetCollection(m.cfg.Jets)
	if !ok || len(jetColl) < m.cfg.NJets {
		m.metrics.FailJets++
		return
	}
	njets := 0
	for _, j := range jetColl {
		pass, err := m.jetSelection.Accept(event.JetVars(j))
		if err != nil {
			m.log.Errorf("event %d: %v", evt.Number, err)
			m.metrics.FailJets++
			return
		}
		if pass {
			njets++
		}
	}
	if njets < m.cfg.NJets {
		m.metrics.FailJets++
		return
	}

	// razor hemisphere clustering from the previous step
	hemis, ok := evt.HemisphereCollection(m.cfg.Hemispheres)
	if !ok {
		m.metrics.FailHemispheres++
		return
	}

	// the hemisphere maker produces an empty collection when the jet
	// multiplicity is too high
	if len(hemis) == 0 {
		m.log.Error("cannot calculate M_R and R^2 because there are too many jets! (trigger passed automatically without forming the hemispheres)")
		m.metrics.FailHemispheres++
		return
	}

	// two hemispheres expected; sizes 5 and 10 correspond to the one
	// and two muon case, retained for possible future use
	if len(hemis) != 2 && len(hemis) != 5 && len(hemis) != 10 {
		m.log.Errorf("invalid hemisphere collection! len = %d", len(hemis))
		m.metrics.FailHemispheres++
		return
	}

	vars := razor.Compute(hemis, pfmet)

	// apply offline selection cuts
	if vars.Rsq < m.cfg.RsqCut && vars.MR < m.cfg.MRCut {
		m.metrics.FailRazorCut++
		return
	}

	// applying selection for denominator
	if m.denFlag.On() && !m.denFlag.Accept(evt) {
		m.metrics.FailDenTrigger++
		return
	}

	// filling histograms (denominator)
	if vars.Rsq >= m.cfg.RsqCut {
		m.mrME.denominator.Fill(vars.MR)
	}
	if vars.MR >= m.cfg.MRCut {
		m.rsqME.denominator.Fill(vars.Rsq)
	}
	m.dphiRME.denominator.Fill(vars.DPhiR)
	m.mrVsRsqME.denominator.FillXY(vars.MR, vars.Rsq)
	m.metrics.DenFills++

	// applying selection for numerator
	if m.numFlag.On() && !m.numFlag.Accept(evt) {
		m.metrics.FailNumTrigger++
		return
	}

	// filling histograms (numerator)
	if vars.Rsq >= m.cfg.RsqCut {
		m.mrME.numerator.Fill(vars.MR)
	}
	if vars.MR >= m.cfg.MRCut {
		m.rsqME.numerator.Fill(vars.Rsq)
	}
	m.dphiRME.numerator.Fill(vars.DPhiR)
	m.mrVsRsqME.numerator.FillXY(vars.MR, vars.Rsq)
	m.metrics.NumFills++
}

// Metrics returns the cutflow counters accumulated so far.
func (m *RazorMonitor) Metrics() Metrics { return m.metrics }
