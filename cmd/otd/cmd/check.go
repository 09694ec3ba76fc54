package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceASCII/internal/textdiff"
	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/asc"
)

var checkDiff bool

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Verify files regenerate unchanged",
	Long: `Parse each DipTrace ASCII file and write it back out. A file passes when
the regenerated text is byte-for-byte identical to the input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVarP(&checkDiff, "diff", "d", false, "show a diff for files that change")
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	st := newStatus()
	failed := 0

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		f, err := asc.ParseString(string(data))
		if err != nil {
			fmt.Fprintf(out, "%s %s: %v\n", st.fail("FAIL"), path, err)
			failed++
			continue
		}
		log.Printf("Parsed %s: %d items", path, f.Root.Count())

		regenerated := f.String()
		if regenerated == string(data) {
			fmt.Fprintf(out, "%s %s\n", st.ok("OK"), path)
			continue
		}

		failed++
		lines := textdiff.Lines(string(data), regenerated)
		ins, del := textdiff.Stats(lines)
		fmt.Fprintf(out, "%s %s (+%d -%d lines)\n", st.warn("CHANGED"), path, ins, del)
		if checkDiff || cfg.Diff {
			if err := newDiffPrinter().Write(out, path, path+" (regenerated)", lines); err != nil {
				return err
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files did not round-trip", failed, len(args))
	}
	return nil
}
