package script

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/project"
)

const testSchematic = `(Source "DipTrace-Schematic")
(Schematic
  (Components
    (Part "Diode" "D1" "1N4148"
      (Number 3)
      (HiddenId 7)
      (X 10.000)
      (Y 20.000)
      (Angle 0)
    )
  )
  (Nets
    (Net "GND"
      (Number 1)
    )
  )
)
`

const testBoard = `(Source "DipTrace-PCB")
(Board
  (Components
    (Component "Diode" "D1" SOD-123
      (Number 3)
      (X 5.000)
      (Y 5.000)
      (Angle 0)
    )
  )
  (Nets
    (Net "GND"
      (Number 1)
    )
  )
)
`

func mustParser(t *testing.T) *Parser {
	t.Helper()
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	return parser
}

func TestParseStatements(t *testing.T) {
	input := `
# make a second diode
duplicate component "D1" as "D2"
DUPLICATE NET "GND" AS "AGND"
rename component "D2" to "D3"
move component "D3" on board to 10 -2.5
move component "D3" on schematic by .5 0
rotate component "D3" on board by -90
`
	s, err := mustParser(t).ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	want := &Script{Statements: []*Statement{
		{Duplicate: &Duplicate{Object: "component", Name: "D1", As: "D2"}},
		{Duplicate: &Duplicate{Object: "NET", Name: "GND", As: "AGND"}},
		{Rename: &Rename{Object: "component", Name: "D2", To: "D3"}},
		{Move: &Move{Name: "D3", Document: "board", Mode: "to", X: 10, Y: -2.5}},
		{Move: &Move{Name: "D3", Document: "schematic", Mode: "by", X: 0.5, Y: 0}},
		{Rotate: &Rotate{Name: "D3", Document: "board", Mode: "by", Degrees: -90}},
	}}
	if diff := cmp.Diff(want, s, cmpopts.IgnoreFields(Statement{}, "Pos")); diff != "" {
		t.Errorf("ParseString() mismatch (-want +got):\n%s", diff)
	}
	if s.Statements[0].Pos.Line != 3 {
		t.Errorf("first statement line = %d, want 3", s.Statements[0].Pos.Line)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown verb", `delete component "D1"`},
		{"unquoted name", `rename component D1 to "D2"`},
		{"missing document", `move component "D1" to 1 2`},
		{"fractional angle", `rotate component "D1" on board to 45.5`},
		{"move net", `move net "GND" on board to 1 2`},
	}

	parser := mustParser(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parser.ParseString(tt.input); err == nil {
				t.Errorf("ParseString(%q) should fail", tt.input)
			}
		})
	}
}

func loadProject(t *testing.T) *project.Project {
	t.Helper()
	p, err := project.Load(strings.NewReader(testSchematic), strings.NewReader(testBoard))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return p
}

func TestExecute(t *testing.T) {
	p := loadProject(t)
	s, err := mustParser(t).ParseString(`
duplicate component "D1" as "D2"
move component "D2" on board to 10 0
rotate component "D2" on schematic by 90
duplicate net "GND" as "AGND"
rename net "AGND" to "PGND"
`)
	if err != nil {
		t.Fatal(err)
	}

	var logged []string
	ex := NewExecutor(p)
	ex.Logf = func(format string, args ...any) { logged = append(logged, format) }

	n, err := ex.Run(s)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if n != 5 || len(logged) != 5 {
		t.Errorf("Run() applied %d statements, logged %d, want 5", n, len(logged))
	}

	d2, err := p.Component("D2")
	if err != nil {
		t.Fatal(err)
	}
	x, err := d2.Footprint.Field("X")
	if err != nil || x.Text() != "10.000" {
		t.Errorf("board X = %v, %v, want 10.000", x, err)
	}
	if a, _ := d2.Parts[0].FieldInt("Angle"); a != 90 {
		t.Errorf("schematic Angle = %d, want 90", a)
	}
	if num, _ := d2.Number(); num != 4 {
		t.Errorf("Number() = %d, want 4", num)
	}
	if !p.IsNetNameInUse("PGND") || p.IsNetNameInUse("AGND") {
		t.Error("net rename not applied")
	}
}

func TestExecuteStopsAtFailure(t *testing.T) {
	p := loadProject(t)
	s, err := mustParser(t).ParseString(`
duplicate component "D1" as "D2"
duplicate component "D1" as "D2"
rename component "D1" to "D9"
`)
	if err != nil {
		t.Fatal(err)
	}

	n, err := NewExecutor(p).Run(s)
	if !errors.Is(err, project.ErrReferenceAlreadyExists) {
		t.Fatalf("Run() error = %v, want ErrReferenceAlreadyExists", err)
	}
	if n != 1 {
		t.Errorf("Run() applied %d statements, want 1", n)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q should name line 3", err)
	}
	if p.IsReferenceInUse("D9") {
		t.Error("statements after the failure must not run")
	}
}

func TestExecuteUnknownComponent(t *testing.T) {
	p := loadProject(t)
	s, err := mustParser(t).ParseString(`move component "Q7" on board by 1 1`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewExecutor(p).Run(s); err == nil {
		t.Error("Run() should fail for an unknown component")
	}
}
