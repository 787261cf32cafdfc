package monitor

import "github.com/sirupsen/logrus"

// Metrics counts events per cutflow exit for end-of-job reporting.
type Metrics struct {
	Events          int // events seen
	FailDenTrigger  int // rejected by the denominator trigger flag
	FailMET         int // missing/empty MET collection or failed MET cut
	FailJets        int // too few jets passing the jet selection
	FailHemispheres int // invalid, empty or wrong-sized hemisphere collection
	FailRazorCut    int // below both offline razor cuts
	FailNumTrigger  int // entered denominator, rejected by numerator flag
	DenFills        int // denominator fills
	NumFills        int // numerator fills
}

// Log reports the cutflow at the end of processing.
func (m Metrics) Log() {
	log := logrus.WithField("module", "RazorMonitor")
	log.Infof("events processed      : %d", m.Events)
	log.Infof("fail baseline trigger : %d", m.FailDenTrigger)
	log.Infof("fail MET selection    : %d", m.FailMET)
	log.Infof("fail jet selection    : %d", m.FailJets)
	log.Infof("fail hemispheres      : %d", m.FailHemispheres)
	log.Infof("fail razor cuts       : %d", m.FailRazorCut)
	log.Infof("denominator fills     : %d", m.DenFills)
	log.Infof("numerator fills       : %d", m.NumFills)
	if m.DenFills > 0 {
		log.Infof("overall efficiency    : %.3f", float64(m.NumFills)/float64(m.DenFills))
	}
}
