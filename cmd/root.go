package cmd

import (
	"fmt"
	"github.com/meysamhadeli/snapseed/config"
	"github.com/meysamhadeli/snapseed/constants/lipgloss"
	"github.com/meysamhadeli/snapseed/corpus_generator"
	"github.com/meysamhadeli/snapseed/corpus_generator/contracts"
	"github.com/meysamhadeli/snapseed/corpus_report"
	contracts2 "github.com/meysamhadeli/snapseed/corpus_report/contracts"
	"github.com/spf13/cobra"
	"os"
)

// RootDependencies holds the dependencies shared by all subcommands
type RootDependencies struct {
	Config    *config.Config
	Generator contracts.ICorpusGenerator
	Report    contracts2.IReportManager
	Cwd       string
}

// rootCmd: the base command of the snapseed CLI
var rootCmd = &cobra.Command{
	Use:   "snapseed",
	Short: "snapseed builds a fuzzing seed corpus from snapshot test files.",
	Long: `snapseed scans a source tree for '.snap' snapshot test files, extracts the
recorded source expression from each one and writes every snippet to the
output folder as a numbered seed file, ready to be handed to a fuzzer as its
starting corpus.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
			fmt.Println("snapseed version " + config.DefaultConfig.Version)
			return
		}
		_ = cmd.Help()
	},
}

// Execute runs the root command and exits non-zero when any subcommand fails.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}
}

// handleRootCommand wires up the configuration and the shared services.
func handleRootCommand(cmd *cobra.Command) *RootDependencies {
	rootDependencies := &RootDependencies{}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error getting current directory: %v", err)))
		os.Exit(1)
	}
	rootDependencies.Cwd = cwd

	rootDependencies.Config = config.LoadConfigs(cmd.Root(), cwd)
	rootDependencies.Report = corpus_report.NewReportManager()
	rootDependencies.Generator = corpus_generator.NewCorpusGenerator(cwd, rootDependencies.Config.EnableCache)

	return rootDependencies
}

func init() {
	config.InitFlags(rootCmd)
}
