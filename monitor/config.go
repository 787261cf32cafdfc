package monitor

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"razordqm/trigger"
)

// HistoConfig carries the variable-width bin edges of the booked
// histograms.
type HistoConfig struct {
	MRBins    []float64 `yaml:"mr_bins"`
	RsqBins   []float64 `yaml:"rsq_bins"`
	DPhiRBins []float64 `yaml:"dphi_r_bins"`
}

// Config is the full parameter set of the razor monitor.
type Config struct {
	FolderName string `yaml:"folder_name"`

	// input collection labels
	MET         string `yaml:"met"`
	Jets        string `yaml:"jets"`
	Hemispheres string `yaml:"hemispheres"`

	// offline selection
	METSelection string  `yaml:"met_selection"`
	JetSelection string  `yaml:"jet_selection"`
	NJets        int     `yaml:"njets"`
	MRCut        float64 `yaml:"mr_cut"`
	RsqCut       float64 `yaml:"rsq_cut"`

	NumTrigger trigger.Config `yaml:"num_trigger"`
	DenTrigger trigger.Config `yaml:"den_trigger"`

	Histograms HistoConfig `yaml:"histograms"`
}

// DefaultConfig returns the stock configuration: collection labels and
// cuts of the razor trigger monitoring, with the binning of the 2016
// offline razor analysis.
func DefaultConfig() Config {
	return Config{
		FolderName:   "HLT/SUSY/Razor",
		MET:          "pfMet",
		Jets:         "ak4PFJetsCHS",
		Hemispheres:  "hemispheresDQM",
		METSelection: "pt > 0",
		JetSelection: "pt > 80",
		NJets:        2,
		MRCut:        300,
		RsqCut:       0.15,
		Histograms: HistoConfig{
			MRBins:    []float64{0, 100, 200, 300, 400, 500, 575, 650, 750, 900, 1200, 1600, 2500, 4000},
			RsqBins:   []float64{0, 0.05, 0.1, 0.15, 0.2, 0.25, 0.30, 0.41, 0.52, 0.64, 0.8, 1.5},
			DPhiRBins: []float64{0, 0.5, 1.0, 1.5, 2.0, 2.5, 2.8, 3.0, 3.2},
		},
	}
}

// LoadConfig reads a YAML configuration file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the parameter set before construction.
func (c Config) Validate() error {
	if c.NJets < 0 {
		return fmt.Errorf("njets must be non-negative, got %d", c.NJets)
	}
	for _, bins := range []struct {
		name  string
		edges []float64
	}{
		{"mr_bins", c.Histograms.MRBins},
		{"rsq_bins", c.Histograms.RsqBins},
		{"dphi_r_bins", c.Histograms.DPhiRBins},
	} {
		if len(bins.edges) < 2 {
			return fmt.Errorf("%s needs at least two edges, got %d", bins.name, len(bins.edges))
		}
		if !sort.Float64sAreSorted(bins.edges) {
			return fmt.Errorf("%s edges must be ascending", bins.name)
		}
	}
	return nil
}
