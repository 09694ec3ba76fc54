package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/asc"
	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/ops"
	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/project"
)

var infoDocs documentFlags

var infoCmd = &cobra.Command{
	Use:   "info [component]",
	Short: "Show project information",
	Long: `Display information about a DipTrace project.

Without component argument: shows project summary
With component argument: shows details for that specific component`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoDocs.register(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	p, err := infoDocs.load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		return showComponent(out, p, args[0])
	}
	showProjectSummary(out, p)
	return nil
}

func showProjectSummary(w io.Writer, p *project.Project) {
	if infoDocs.schematic != "" {
		fmt.Fprintf(w, "Schematic: %s\n", infoDocs.schematic)
	}
	if infoDocs.board != "" {
		fmt.Fprintf(w, "Board: %s\n", infoDocs.board)
	}
	fmt.Fprintln(w)

	// Statistics
	fmt.Fprintln(w, "Statistics:")
	fmt.Fprintf(w, "  Schematic components: %d\n", len(p.Components(project.Schematic)))
	fmt.Fprintf(w, "  Board components: %d\n", len(p.Components(project.Board)))
	fmt.Fprintf(w, "  Schematic nets: %d\n", len(p.Nets(project.Schematic)))
	fmt.Fprintf(w, "  Board nets: %d\n", len(p.Nets(project.Board)))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Numbering:")
	fmt.Fprintf(w, "  Last component number: %d\n", p.ComponentNumbers().Last())
	fmt.Fprintf(w, "  Last hidden id: %d\n", p.HiddenIDs().Last())
	fmt.Fprintf(w, "  Last net number: %d\n", p.NetNumbers().Last())
	if u := p.ComponentPresence().Unpaired(); len(u) > 0 {
		fmt.Fprintf(w, "  Components in one document only: %s\n", joinInts(u))
	}
	if u := p.NetPresence().Unpaired(); len(u) > 0 {
		fmt.Fprintf(w, "  Nets in one document only: %s\n", joinInts(u))
	}
	fmt.Fprintln(w)

	// Component list
	refs := make(map[string]bool)
	for _, doc := range []project.Document{project.Schematic, project.Board} {
		for _, it := range p.Components(doc) {
			if ref, ok := it.ValueAt(ops.ComponentNameSlot); ok {
				refs[ref] = true
			}
		}
	}
	if len(refs) > 0 {
		fmt.Fprintln(w, "Components:")
		byPrefix := make(map[string][]string)
		for ref := range refs {
			prefix := refPrefix(ref)
			byPrefix[prefix] = append(byPrefix[prefix], ref)
		}
		var prefixes []string
		for prefix := range byPrefix {
			prefixes = append(prefixes, prefix)
		}
		sort.Strings(prefixes)
		for _, prefix := range prefixes {
			list := byPrefix[prefix]
			sort.Strings(list)
			fmt.Fprintf(w, "  %s: %s\n", prefix, strings.Join(list, ", "))
		}
		fmt.Fprintln(w)
	}

	if layers := p.SignalLayers(); len(layers) > 0 {
		fmt.Fprintln(w, "Signal Layers:")
		for _, l := range layers {
			name, _ := l.Name()
			n, _ := l.Number()
			fmt.Fprintf(w, "  %d: %s\n", n, name)
		}
		fmt.Fprintln(w)
	}

	if layers := p.NonSignalLayers(); len(layers) > 0 {
		fmt.Fprintln(w, "Non-signal Layers:")
		for _, l := range layers {
			name, _ := l.Name()
			n, _ := l.Number()
			side, _ := l.SideCode()
			c, err := l.Color()
			if err != nil {
				fmt.Fprintf(w, "  %d: %s (side %d)\n", n, name, side)
				continue
			}
			fmt.Fprintf(w, "  %d: %s (side %d, #%02x%02x%02x)\n", n, name, side, c.R, c.G, c.B)
		}
	}
}

func showComponent(w io.Writer, p *project.Project, ref string) error {
	c, err := p.Component(ref)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Component: %s\n", c.Reference())
	if n, err := c.Number(); err == nil {
		fmt.Fprintf(w, "Number: %d\n", n)
	}
	for i, part := range c.Parts {
		fmt.Fprintf(w, "Schematic part %d:%s\n", i+1, placement(part))
	}
	if c.Footprint != nil {
		fmt.Fprintf(w, "Board footprint:%s\n", placement(c.Footprint))
	} else {
		fmt.Fprintln(w, "Board footprint: none")
	}
	return nil
}

func placement(it *asc.Item) string {
	var b strings.Builder
	for _, name := range []string{ops.FieldX, ops.FieldY, ops.FieldAngle} {
		if v, err := it.Field(name); err == nil {
			fmt.Fprintf(&b, " %s=%s", name, v)
		}
	}
	return b.String()
}

func refPrefix(ref string) string {
	i := strings.IndexFunc(ref, func(r rune) bool { return r >= '0' && r <= '9' })
	if i <= 0 {
		return ref
	}
	return ref[:i]
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
