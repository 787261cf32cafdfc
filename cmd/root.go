package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "razordqm",
	Short: "Offline DQM for razor triggers",
	Long: `Offline DQM for razor triggers. Measures trigger efficiency as a 2D
function of the razor variables M_R and R^2 in events selected by an
orthogonal baseline trigger, and monitors dPhi_R for QCD and
detector-related MET tail rejection.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log verbosity: debug, info, warn, error")
	rootCmd.AddCommand(runCmd)
}
