package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chewxy/sexp"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/asc"
	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/project"
	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/render"
)

var (
	inspectAttrs        bool
	inspectDepth        int
	inspectShapes       bool
	inspectGeneric      bool
	inspectFocus        string
	inspectTransparency string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file> [identifier...]",
	Short: "Dump the item tree of a file",
	Long: `Print the item tree of a DipTrace ASCII file, or of the item reached by
following the given identifiers from the top level.

With --shapes, list the shapes below that item instead, with their drawing
pass and colour on a board.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVarP(&inspectAttrs, "attrs", "a", false, "print attribute values")
	inspectCmd.Flags().IntVar(&inspectDepth, "depth", 0, "maximum depth (0 = unlimited)")
	inspectCmd.Flags().BoolVar(&inspectShapes, "shapes", false, "list shapes with their layer and colour")
	inspectCmd.Flags().BoolVar(&inspectGeneric, "generic", false, "cross-check the structure with a generic S-expression reader")
	inspectCmd.Flags().StringVar(&inspectFocus, "focus", "top", "board side in focus: top or bottom")
	inspectCmd.Flags().StringVar(&inspectTransparency, "transparency", "part", "other side: none, part or full")
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	out := cmd.OutOrStdout()

	// Any document loads in the board slot so user layers resolve on boards.
	p := project.New()
	if err := p.ParseBoard(bytes.NewReader(data)); err != nil {
		return err
	}
	f := p.File(project.Board)

	node := f.Root
	if len(args) > 1 {
		node = f.Root.Path(args[1:]...)
		if node == nil {
			return fmt.Errorf("item %s not found", strings.Join(args[1:], "/"))
		}
	}

	if inspectGeneric {
		crossCheck(out, string(data), f)
	}
	if inspectShapes {
		return listShapes(out, node, p)
	}
	return asc.Dump(out, node, asc.DumpOptions{Attributes: inspectAttrs, MaxDepth: inspectDepth})
}

// crossCheck reads the text with a general S-expression parser and compares
// the top-level item count.
func crossCheck(w io.Writer, data string, f *asc.File) {
	exprs, err := sexp.ParseString(data)
	if err != nil {
		fmt.Fprintf(w, "Generic reader: %v\n", err)
		return
	}
	leaves := 0
	for _, e := range exprs {
		if e.IsLeaf() {
			leaves++
			continue
		}
		leaves += e.LeafCount()
	}
	fmt.Fprintf(w, "Generic reader: %d top-level expressions, %d leaves\n", len(exprs), leaves)
	if n := len(f.Root.Children()); n != len(exprs) {
		fmt.Fprintf(w, "Top-level count differs: %d items parsed\n", n)
	}
	fmt.Fprintf(w, "Items parsed: %d\n\n", f.Root.Count())
}

func listShapes(w io.Writer, node *asc.Item, layers render.NonSignalLayers) error {
	view, err := inspectView()
	if err != nil {
		return err
	}

	// owner is the nearest enclosing component; its size scales the shapes
	// listed under it.
	var walk func(it, owner *asc.Item) error
	walk = func(it, owner *asc.Item) error {
		if s, ok := asc.AsShape(it); ok {
			desc, err := describeShape(s, owner)
			if err != nil {
				fmt.Fprintf(w, "%s: %v\n", it.Identifier, err)
				return nil
			}
			fmt.Fprintf(w, "%s  %s\n", desc, paintSummary(s, layers, view))
		}
		if it.Identifier == "Component" {
			owner = it
		}
		for _, child := range it.Children() {
			if err := walk(child, owner); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(node, nil)
}

func describeShape(s asc.Shape, owner *asc.Item) (string, error) {
	if owner != nil {
		if _, err := asc.ComponentGeometryOf(owner); err == nil {
			return s.DescriptionIn(owner)
		}
	}
	return s.Description()
}

// paintSummary resolves the shape for both drawing passes.
func paintSummary(s asc.Shape, layers render.NonSignalLayers, view render.View) string {
	for _, pass := range []int{render.TopLayer, render.BottomLayer} {
		view.LayerToDraw = pass
		paint, err := render.Resolve(s, layers, view)
		if err != nil {
			return "[" + err.Error() + "]"
		}
		if paint.Visible {
			c := paint.Color
			return fmt.Sprintf("[layer %d #%02x%02x%02x]", paint.Layer, c.R, c.G, c.B)
		}
	}
	return "[hidden]"
}

func inspectView() (render.View, error) {
	var v render.View
	switch strings.ToLower(inspectFocus) {
	case "top":
		v.LayerInFocus = render.TopLayer
	case "bottom":
		v.LayerInFocus = render.BottomLayer
	default:
		return v, fmt.Errorf("invalid focus %q (want top or bottom)", inspectFocus)
	}
	switch strings.ToLower(inspectTransparency) {
	case "none":
		v.Transparency = render.TransparencyNone
	case "part":
		v.Transparency = render.TransparencyPart
	case "full":
		v.Transparency = render.TransparencyFull
	default:
		return v, fmt.Errorf("invalid transparency %q (want none, part or full)", inspectTransparency)
	}
	return v, nil
}
