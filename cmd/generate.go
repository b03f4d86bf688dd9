package cmd

import (
	"context"
	"fmt"
	"github.com/meysamhadeli/snapseed/constants/lipgloss"
	"github.com/meysamhadeli/snapseed/corpus_generator/models"
	"github.com/meysamhadeli/snapseed/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"os"
	"os/signal"
	"strconv"
	"syscall"
)

// GenerateCmd: snapseed generate
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Scan snapshot files and write the numbered seed corpus.",
	Long: `The 'generate' subcommand walks the root folder recursively, extracts the
recorded source expression from every '.snap' snapshot file that has one, and
writes each snippet to the output folder as a file named by its position
(0, 1, 2, ...). The output folder must already exist. Existing seed files are
overwritten, so re-running against an unchanged tree reproduces the corpus
byte for byte.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		showSeedTable, _ := cmd.Flags().GetBool("stats")

		rootDependencies := handleRootCommand(cmd)
		return handleGenerateCommand(rootDependencies, showSeedTable)
	},
}

func init() {
	// Define command-specific flags
	generateCmd.Flags().BoolP("stats", "s", false, "Show a per-seed table after the run")

	// Add the generate command to the root command
	rootCmd.AddCommand(generateCmd)
}

func handleGenerateCommand(rootDependencies *RootDependencies, showSeedTable bool) error {

	// Create a context with cancel function
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").WithDelay(100).WithRemoveWhenDone(true)

	spinnerScan, _ := spinner.Start("Scanning snapshot files...")

	// Collect one snippet per matching snapshot file, in traversal order
	scanResult, err := rootDependencies.Generator.ScanSnapshots(ctx, rootDependencies.Config.RootFolder)

	spinnerScan.Stop()
	fmt.Print("\r")

	if err != nil {
		return err
	}

	rootDependencies.Report.RecordScan(scanResult.FilesScanned, scanResult.FilesMatched)
	rootDependencies.Report.RecordCacheActivity(scanResult.CacheHits, scanResult.CacheMisses)

	if len(scanResult.Snippets) == 0 {
		fmt.Println(lipgloss.Yellow.Render("No snapshot file contained an extractable expression."))
		rootDependencies.Report.DisplayReport()
		return nil
	}

	interactive := utils.IsTerminal()
	var seedRows [][]string

	emitResult, err := rootDependencies.Generator.EmitSeeds(scanResult.Snippets, rootDependencies.Config.OutFolder, func(index int, snippet models.Snippet) {
		seedRows = append(seedRows, []string{strconv.Itoa(index), snippet.SourcePath, strconv.Itoa(len(snippet.Text))})

		if rootDependencies.Config.Quiet {
			return
		}

		fmt.Println(lipgloss.BlueSky.Render(fmt.Sprintf("Seed %d <- %s", index, snippet.SourcePath)))
		if interactive {
			if renderErr := utils.RenderSnippet(os.Stdout, snippet.Text, "rust", rootDependencies.Config.Theme); renderErr == nil {
				return
			}
		}
		fmt.Println(snippet.Text)
	})

	if emitResult != nil {
		rootDependencies.Report.RecordEmission(emitResult.FilesWritten, emitResult.BytesWritten)
	}

	if err != nil {
		return err
	}

	if showSeedTable {
		rootDependencies.Report.DisplaySeedTable(seedRows)
	}

	rootDependencies.Report.DisplayReport()

	return nil
}
