// Package trigger evaluates configurable event-accept flags combining
// detector-status (DCS) and trigger-path (HLT) conditions, the gate used
// to define numerator and denominator samples for trigger-efficiency
// measurements.
package trigger

import (
	"strings"

	"github.com/sirupsen/logrus"

	"razordqm/event"
)

// Config is the full configuration surface of one event flag. The two
// condition categories are combined with AndOr (false = AND, true = OR);
// each category has its own AND/OR switch and its own reply for the case
// where the condition cannot be evaluated on a given event.
type Config struct {
	AndOr         bool     `yaml:"and_or"`
	AndOrDcs      bool     `yaml:"and_or_dcs"`
	ErrorReplyDcs bool     `yaml:"error_reply_dcs"`
	DcsPartitions []int    `yaml:"dcs_partitions"`
	AndOrHlt      bool     `yaml:"and_or_hlt"`
	HltPaths      []string `yaml:"hlt_paths"`
	ErrorReplyHlt bool     `yaml:"error_reply_hlt"`
	Verbosity     int      `yaml:"verbosity_level"`
}

// Flag is a configured event gate. A category is active only when its
// condition list is non-empty; a flag with no active category is "off"
// and accepts everything.
type Flag struct {
	cfg   Config
	onDcs bool
	onHlt bool

	// resolved per run by InitRun
	run   int
	paths []string

	log *logrus.Entry
}

// New builds a flag from its configuration.
func New(name string, cfg Config) *Flag {
	return &Flag{
		cfg:   cfg,
		onDcs: len(cfg.DcsPartitions) > 0,
		onHlt: len(cfg.HltPaths) > 0,
		log:   logrus.WithField("flag", name),
	}
}

// On reports whether any condition category is configured.
func (f *Flag) On() bool { return f.onDcs || f.onHlt }

// InitRun resolves the configured HLT path patterns against the run's
// menu. A trailing "_v*" matches any version of the path; patterns with
// no match in the menu are kept and answer with the configured error
// reply at Accept time.
func (f *Flag) InitRun(run *event.Run) {
	f.run = run.Number
	f.paths = f.paths[:0]

	for _, pattern := range f.cfg.HltPaths {
		resolved := resolvePath(pattern, run.HLTMenu)
		if resolved == "" {
			if f.cfg.Verbosity > 0 {
				f.log.Warnf("run %d: HLT path %q not in menu, using error reply %v",
					run.Number, pattern, f.cfg.ErrorReplyHlt)
			}
			resolved = pattern
		}
		f.paths = append(f.paths, resolved)
	}
}

func resolvePath(pattern string, menu []string) string {
	if base, ok := strings.CutSuffix(pattern, "*"); ok {
		for _, p := range menu {
			if strings.HasPrefix(p, base) {
				return p
			}
		}
		return ""
	}
	for _, p := range menu {
		if p == pattern {
			return p
		}
	}
	return ""
}

// Accept evaluates the flag for one event. Flags that are off accept
// unconditionally.
func (f *Flag) Accept(evt *event.Event) bool {
	if !f.On() {
		return true
	}
	if f.onHlt && evt.Run != f.run && f.cfg.Verbosity > 0 {
		f.log.Warnf("event from run %d but paths resolved for run %d", evt.Run, f.run)
	}

	switch {
	case f.onDcs && f.onHlt:
		dcs := f.acceptDcs(evt)
		hlt := f.acceptHlt(evt)
		if f.cfg.AndOr {
			return dcs || hlt
		}
		return dcs && hlt
	case f.onDcs:
		return f.acceptDcs(evt)
	default:
		return f.acceptHlt(evt)
	}
}

func (f *Flag) acceptDcs(evt *event.Event) bool {
	if evt.DCS == nil {
		if f.cfg.Verbosity > 1 {
			f.log.Warnf("event %d: no DCS record, using error reply %v",
				evt.Number, f.cfg.ErrorReplyDcs)
		}
		return f.cfg.ErrorReplyDcs
	}

	for _, part := range f.cfg.DcsPartitions {
		ready := evt.DCSReady(part)
		if f.cfg.AndOrDcs && ready {
			return true
		}
		if !f.cfg.AndOrDcs && !ready {
			return false
		}
	}
	return !f.cfg.AndOrDcs
}

func (f *Flag) acceptHlt(evt *event.Event) bool {
	paths := f.paths
	if len(paths) == 0 {
		paths = f.cfg.HltPaths
	}

	for _, path := range paths {
		accept, known := evt.HLTAccept(path)
		if !known {
			accept = f.cfg.ErrorReplyHlt
		}
		if f.cfg.AndOrHlt && accept {
			return true
		}
		if !f.cfg.AndOrHlt && !accept {
			return false
		}
	}
	return !f.cfg.AndOrHlt
}
