package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceASCII/internal/textdiff"
	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/project"
	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/script"
)

var (
	applyDocs         documentFlags
	applyOutSchematic string
	applyOutBoard     string
	applyDiff         bool
	applyDryRun       bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <script>",
	Short: "Run an edit script against a project",
	Long: `Apply an edit script to a schematic and board pair and write the edited
documents. Outputs default to the input names with the configured suffix.

Script statements:
  duplicate component "D1" as "D2"
  duplicate net "GND" as "AGND"
  rename component|net "OLD" to "NEW"
  move component "D2" on schematic|board to|by X Y
  rotate component "D2" on schematic|board to|by DEGREES

Lines starting with # are comments.`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyDocs.register(applyCmd)
	applyCmd.Flags().StringVar(&applyOutSchematic, "out-schematic", "", "edited schematic file")
	applyCmd.Flags().StringVar(&applyOutBoard, "out-board", "", "edited board file")
	applyCmd.Flags().BoolVarP(&applyDiff, "diff", "d", false, "show a diff of each edited document")
	applyCmd.Flags().BoolVarP(&applyDryRun, "dry-run", "n", false, "do not write output files")
}

func runApply(cmd *cobra.Command, args []string) error {
	parser, err := script.NewParser()
	if err != nil {
		return err
	}
	s, err := parser.ParseFile(args[0])
	if err != nil {
		return err
	}
	log.Printf("Parsed %s: %d statements", args[0], len(s.Statements))

	p, err := applyDocs.load()
	if err != nil {
		return err
	}
	before := map[project.Document]string{
		project.Schematic: p.File(project.Schematic).String(),
		project.Board:     p.File(project.Board).String(),
	}

	ex := script.NewExecutor(p)
	ex.Logf = log.Printf
	n, err := ex.Run(s)
	if err != nil {
		return fmt.Errorf("script stopped after %d statements: %w", n, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Applied %d statements\n", n)

	outputs := []struct {
		doc      project.Document
		input    string
		explicit string
		fallback string
	}{
		{project.Schematic, applyDocs.schematic, applyOutSchematic, cfg.Output.Schematic},
		{project.Board, applyDocs.board, applyOutBoard, cfg.Output.Board},
	}
	for _, o := range outputs {
		if o.input == "" {
			continue
		}
		explicit := o.explicit
		if explicit == "" {
			explicit = o.fallback
		}
		path := cfg.OutputPath(o.input, explicit)
		if path == o.input {
			return fmt.Errorf("refusing to overwrite input %s", o.input)
		}

		var buf bytes.Buffer
		if err := writeDocument(p, o.doc, &buf); err != nil {
			return err
		}
		if applyDiff || cfg.Diff {
			lines := textdiff.Lines(before[o.doc], buf.String())
			if err := newDiffPrinter().Write(out, o.input, path, lines); err != nil {
				return err
			}
		}
		if applyDryRun {
			continue
		}
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", o.doc, err)
		}
		fmt.Fprintf(out, "Wrote %s %s\n", o.doc, path)
	}
	return nil
}

func writeDocument(p *project.Project, doc project.Document, w io.Writer) error {
	if doc == project.Board {
		return p.WriteBoard(w)
	}
	return p.WriteSchematic(w)
}
