package cmd

import (
	"fmt"
	"github.com/meysamhadeli/snapseed/constants/lipgloss"
	"github.com/meysamhadeli/snapseed/utils"
	"github.com/spf13/cobra"
	"os"
)

// InspectCmd: snapseed inspect
var inspectCmd = &cobra.Command{
	Use:   "inspect [snapshot-file]",
	Short: "Show what a single snapshot file would contribute to the corpus.",
	Long: `The 'inspect' subcommand reads one '.snap' snapshot file and reports its
header metadata, whether an expression can be extracted from it, the exact
snippet that 'generate' would write, and a short outline of the snippet's
structure.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rootDependencies := handleRootCommand(cmd)
		return handleInspectCommand(rootDependencies, args[0])
	},
}

func init() {
	// Add the inspect command to the root command
	rootCmd.AddCommand(inspectCmd)
}

func handleInspectCommand(rootDependencies *RootDependencies, path string) error {
	report, err := rootDependencies.Generator.InspectSnapshot(path)
	if err != nil {
		return err
	}

	fmt.Println(lipgloss.BoxStyle.Render(report.Path))

	if report.HasMeta {
		fmt.Println(lipgloss.Info.Render("Snapshot Metadata:"))
		if report.Meta.Created != "" {
			fmt.Printf("  Created: %s\n", report.Meta.Created)
		}
		if report.Meta.Creator != "" {
			fmt.Printf("  Creator: %s\n", report.Meta.Creator)
		}
		if report.Meta.Source != "" {
			fmt.Printf("  Source: %s\n", report.Meta.Source)
		}
	} else {
		fmt.Println(lipgloss.Yellow.Render("No snapshot metadata header found."))
	}

	if !report.Matched {
		fmt.Println(lipgloss.Yellow.Render("No extractable expression; 'generate' would skip this file."))
		return nil
	}

	fmt.Println(lipgloss.Green.Render("✓ Extractable expression:"))

	rendered := false
	if utils.IsTerminal() {
		if renderErr := utils.RenderSnippet(os.Stdout, report.Snippet, "rust", rootDependencies.Config.Theme); renderErr == nil {
			rendered = true
		}
	}
	if !rendered {
		fmt.Println(report.Snippet)
	}

	if report.Structure != "" {
		fmt.Println(lipgloss.Info.Render("Structure:"))
		fmt.Println(lipgloss.BlueSky.Render(report.Structure))
	}

	return nil
}
