package cmd

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"razordqm/dqm"
	"razordqm/effplot"
	"razordqm/event"
	"razordqm/monitor"
)

var (
	configPath string
	eventsPath string
	outputPath string
	plotPrefix string
	cpuProfile bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Accumulate razor trigger-efficiency histograms over an event stream",
	Run: func(cmd *cobra.Command, args []string) {
		if cpuProfile {
			defer profile.Start().Stop()
		}

		cfg := monitor.DefaultConfig()
		if configPath != "" {
			var err error
			cfg, err = monitor.LoadConfig(configPath)
			if err != nil {
				logrus.Fatalf("loading config: %v", err)
			}
		}

		mon, err := monitor.New(cfg)
		if err != nil {
			logrus.Fatalf("building monitor: %v", err)
		}

		reader, err := event.Open(eventsPath)
		if err != nil {
			logrus.Fatalf("opening events: %v", err)
		}
		defer reader.Close()

		store := dqm.NewStore()
		currentRun := -1
		for reader.Next() {
			evt := reader.Event()
			if evt.Run != currentRun {
				if currentRun >= 0 {
					flushRun(store, cfg, currentRun)
				}
				store.Reset()
				mon.BookHistograms(store.Booker(), runFromEvent(evt))
				currentRun = evt.Run
				logrus.Infof("run %d: histograms booked under %s", currentRun, cfg.FolderName)
			}
			mon.Analyze(evt)
		}
		if err := reader.Err(); err != nil {
			logrus.Fatalf("reading events: %v", err)
		}
		if currentRun < 0 {
			logrus.Fatal("event stream is empty")
		}
		flushRun(store, cfg, currentRun)

		mon.Metrics().Log()
	},
}

// runFromEvent derives the run description from the first event of a
// run; the HLT menu is the set of paths recorded on the event.
func runFromEvent(evt *event.Event) *event.Run {
	menu := make([]string, 0, len(evt.HLT))
	for path := range evt.HLT {
		menu = append(menu, path)
	}
	sort.Strings(menu)
	return &event.Run{Number: evt.Run, HLTMenu: menu}
}

// flushRun writes the run's histograms and optional efficiency plots.
func flushRun(store *dqm.Store, cfg monitor.Config, run int) {
	out := runOutputPath(outputPath, run)
	if err := store.SaveYODA(out); err != nil {
		logrus.Fatalf("run %d: %v", run, err)
	}
	logrus.Infof("run %d: wrote %s", run, out)

	if plotPrefix == "" {
		return
	}
	for _, v := range []struct{ name, xLabel string }{
		{"MR", "PF M_{R} [GeV]"},
		{"Rsq", "PF R^{2}"},
		{"dPhiR", "dPhi_{R}"},
	} {
		num := store.Get(cfg.FolderName, v.name+"_numerator")
		den := store.Get(cfg.FolderName, v.name+"_denominator")
		if num == nil || den == nil {
			continue
		}
		p, err := effplot.Efficiency(num.H1D(), den.H1D(),
			v.name+" trigger efficiency", v.xLabel)
		if err != nil {
			logrus.Fatalf("run %d: plotting %s: %v", run, v.name, err)
		}
		path := fmt.Sprintf("%s_run%d_%s.png", plotPrefix, run, v.name)
		if err := effplot.Save(p, path); err != nil {
			logrus.Fatalf("run %d: saving %s: %v", run, path, err)
		}
		logrus.Infof("run %d: wrote %s", run, path)
	}
}

// runOutputPath appends the run number to the configured output name,
// keeping its extension.
func runOutputPath(path string, run int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_run%d%s", strings.TrimSuffix(path, ext), run, ext)
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "monitor configuration YAML (defaults when omitted)")
	runCmd.Flags().StringVar(&eventsPath, "events", "", "JSON-lines event stream to process")
	runCmd.Flags().StringVar(&outputPath, "output", "razor.yoda", "output YODA file; the run number is appended to the name")
	runCmd.Flags().StringVar(&plotPrefix, "plot-prefix", "", "when set, write per-run efficiency plots with this prefix")
	runCmd.Flags().BoolVar(&cpuProfile, "profile", false, "profile the event loop")
	runCmd.MarkFlagRequired("events")
}
