package monitor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_MatchesStockMonitoring(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "HLT/SUSY/Razor", cfg.FolderName)
	assert.Equal(t, "pfMet", cfg.MET)
	assert.Equal(t, "ak4PFJetsCHS", cfg.Jets)
	assert.Equal(t, "hemispheresDQM", cfg.Hemispheres)
	assert.Equal(t, "pt > 0", cfg.METSelection)
	assert.Equal(t, "pt > 80", cfg.JetSelection)
	assert.Equal(t, 2, cfg.NJets)
	assert.Equal(t, 300.0, cfg.MRCut)
	assert.Equal(t, 0.15, cfg.RsqCut)

	assert.Len(t, cfg.Histograms.MRBins, 14)
	assert.Len(t, cfg.Histograms.RsqBins, 12)
	assert.Len(t, cfg.Histograms.DPhiRBins, 9)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "razor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
folder_name: HLT/SUSY/RazorTight
jet_selection: "pt > 100 && abs(eta) < 2.4"
mr_cut: 400
num_trigger:
  and_or_hlt: true
  hlt_paths:
    - HLT_RsqMR300_Rsq0p09_MR200_v*
histograms:
  dphi_r_bins: [0, 1.0, 2.0, 3.2]
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// overridden
	assert.Equal(t, "HLT/SUSY/RazorTight", cfg.FolderName)
	assert.Equal(t, "pt > 100 && abs(eta) < 2.4", cfg.JetSelection)
	assert.Equal(t, 400.0, cfg.MRCut)
	assert.Equal(t, []string{"HLT_RsqMR300_Rsq0p09_MR200_v*"}, cfg.NumTrigger.HltPaths)
	assert.Equal(t, []float64{0, 1.0, 2.0, 3.2}, cfg.Histograms.DPhiRBins)

	// untouched defaults survive
	assert.Equal(t, "pfMet", cfg.MET)
	assert.Equal(t, 0.15, cfg.RsqCut)
	assert.Len(t, cfg.Histograms.MRBins, 14)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("njets: -1\n"), 0o644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)
}

func TestValidate_BinEdges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Histograms.RsqBins = []float64{0.5}
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Histograms.MRBins = []float64{0, 300, 200}
	assert.Error(t, cfg.Validate())
}
