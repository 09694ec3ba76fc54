package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceASCII/internal/textdiff"
	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/project"
)

// documentFlags names the schematic and board files of a project command.
type documentFlags struct {
	schematic string
	board     string
}

func (d *documentFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&d.schematic, "schematic", "s", "", "schematic file (default from config)")
	c.Flags().StringVarP(&d.board, "board", "b", "", "board file (default from config)")
}

// resolve fills unset paths from the config file.
func (d *documentFlags) resolve() error {
	if d.schematic == "" {
		d.schematic = cfg.Schematic
	}
	if d.board == "" {
		d.board = cfg.Board
	}
	if d.schematic == "" && d.board == "" {
		return fmt.Errorf("no schematic or board given (use --schematic/--board or the config file)")
	}
	return nil
}

// load parses the documents that are set.
func (d *documentFlags) load() (*project.Project, error) {
	if err := d.resolve(); err != nil {
		return nil, err
	}
	p := project.New()
	if d.schematic != "" {
		if err := parseInto(d.schematic, p.ParseSchematic); err != nil {
			return nil, err
		}
		log.Printf("Loaded schematic: %s", d.schematic)
	}
	if d.board != "" {
		if err := parseInto(d.board, p.ParseBoard); err != nil {
			return nil, err
		}
		log.Printf("Loaded board: %s", d.board)
	}
	return p, nil
}

func parseInto(path string, parse func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	if err := parse(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// status colours short result words on stdout.
type status struct {
	ok, warn, fail func(format string, a ...any) string
}

func newStatus() status {
	mk := func(attr color.Attribute) func(format string, a ...any) string {
		c := color.New(attr)
		if cfg.UseColor(os.Stdout) {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintfFunc()
	}
	return status{
		ok:   mk(color.FgGreen),
		warn: mk(color.FgYellow),
		fail: mk(color.FgRed),
	}
}

func newDiffPrinter() *textdiff.Printer {
	return textdiff.NewPrinter(cfg.UseColor(os.Stdout))
}
