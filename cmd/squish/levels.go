package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/michelv/squish/internal/levels"
)

var flagListLevelDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `List the built-in campaign levels, or the levels found in a custom
directory when --level-dir is given.

Examples:
  squish levels
  squish levels --level-dir ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagListLevelDir, "level-dir", "", "List levels from a directory instead of the built-in campaign")
}

func runLevels(cmd *cobra.Command, args []string) {
	var list []levels.Level
	if flagListLevelDir != "" {
		loaded, err := levels.NewLoader(flagListLevelDir).LoadAll()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
			os.Exit(1)
		}
		list = loaded
		fmt.Printf("Levels in %s:\n\n", flagListLevelDir)
	} else {
		list = levels.Builtin()
		fmt.Println("Built-in campaign:")
		fmt.Println()
	}

	if len(list) == 0 {
		fmt.Println("  (no levels found)")
		return
	}

	fmt.Printf("  %-3s %-20s %-8s %-8s %-6s %-8s\n", "#", "Name", "Size", "Regular", "Eggs", "Pushers")
	fmt.Println("  " + strings.Repeat("-", 58))

	for i, lv := range list {
		w := 0
		if len(lv.Layout) > 0 {
			w = len([]rune(lv.Layout[0]))
		}
		h := len(lv.Layout)

		var regular, eggs, pushers int
		for _, row := range lv.Layout {
			for _, r := range row {
				switch r {
				case levels.GlyphRegular:
					regular++
				case levels.GlyphEgg:
					eggs++
				case levels.GlyphPusher:
					pushers++
				}
			}
		}

		fmt.Printf("  %-3d %-20s %-8s %-8d %-6d %-8d\n",
			i+1, lv.Name, fmt.Sprintf("%dx%d", w, h), regular, eggs, pushers)
	}

	fmt.Println()
	fmt.Printf("Total: %d level(s)\n", len(list))
}
