package script

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/project"
)

// Executor applies scripts to a project.
type Executor struct {
	project *project.Project

	// Logf, when set, receives one line per applied statement.
	Logf func(format string, args ...any)
}

// NewExecutor creates an executor for p.
func NewExecutor(p *project.Project) *Executor {
	return &Executor{project: p}
}

// Run applies the statements in order and stops at the first failure.
// Statements before the failing one stay applied.
func (e *Executor) Run(s *Script) (int, error) {
	for i, st := range s.Statements {
		if err := e.exec(st); err != nil {
			return i, fmt.Errorf("line %d: %w", st.Pos.Line, err)
		}
	}
	return len(s.Statements), nil
}

func (e *Executor) exec(st *Statement) error {
	switch {
	case st.Duplicate != nil:
		return e.duplicate(st.Duplicate)
	case st.Rename != nil:
		return e.rename(st.Rename)
	case st.Move != nil:
		return e.move(st.Move)
	case st.Rotate != nil:
		return e.rotate(st.Rotate)
	}
	return fmt.Errorf("empty statement")
}

func (e *Executor) logf(format string, args ...any) {
	if e.Logf != nil {
		e.Logf(format, args...)
	}
}

func (e *Executor) duplicate(d *Duplicate) error {
	p := e.project
	if isNet(d.Object) {
		n, err := p.Net(d.Name)
		if err != nil {
			return err
		}
		dup, err := p.DuplicateNet(n, d.As)
		if err != nil {
			return fmt.Errorf("failed to duplicate net %q: %w", d.Name, err)
		}
		e.logf("Duplicated net %s as %s", d.Name, dup.Name())
		return nil
	}

	c, err := p.Component(d.Name)
	if err != nil {
		return err
	}
	dup, err := p.DuplicateComponent(c, d.As)
	if err != nil {
		return fmt.Errorf("failed to duplicate component %q: %w", d.Name, err)
	}
	n, _ := dup.Number()
	e.logf("Duplicated component %s as %s (number %d)", d.Name, dup.Reference(), n)
	return nil
}

func (e *Executor) rename(r *Rename) error {
	p := e.project
	if isNet(r.Object) {
		n, err := p.Net(r.Name)
		if err != nil {
			return err
		}
		if err := p.RenameNet(n, r.To); err != nil {
			return fmt.Errorf("failed to rename net %q: %w", r.Name, err)
		}
		e.logf("Renamed net %s to %s", r.Name, r.To)
		return nil
	}

	c, err := p.Component(r.Name)
	if err != nil {
		return err
	}
	if err := p.RenameComponent(c, r.To); err != nil {
		return fmt.Errorf("failed to rename component %q: %w", r.Name, err)
	}
	e.logf("Renamed component %s to %s", r.Name, r.To)
	return nil
}

func (e *Executor) move(m *Move) error {
	c, err := e.project.Component(m.Name)
	if err != nil {
		return err
	}
	doc := document(m.Document)
	if err := e.project.MoveComponent(c, doc, m.X, m.Y, isRelative(m.Mode)); err != nil {
		return fmt.Errorf("failed to move component %q on %s: %w", m.Name, doc, err)
	}
	e.logf("Moved component %s on %s %s %g %g", m.Name, doc, m.Mode, m.X, m.Y)
	return nil
}

func (e *Executor) rotate(r *Rotate) error {
	c, err := e.project.Component(r.Name)
	if err != nil {
		return err
	}
	doc := document(r.Document)
	if err := e.project.RotateComponent(c, doc, r.Degrees, isRelative(r.Mode)); err != nil {
		return fmt.Errorf("failed to rotate component %q on %s: %w", r.Name, doc, err)
	}
	e.logf("Rotated component %s on %s %s %d", r.Name, doc, r.Mode, r.Degrees)
	return nil
}

func document(name string) project.Document {
	if isBoard(name) {
		return project.Board
	}
	return project.Schematic
}
