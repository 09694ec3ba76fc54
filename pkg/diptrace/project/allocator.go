package project

import "sort"

// Document selects one of the two trees of a project.
type Document int

const (
	Schematic Document = iota
	Board
)

func (d Document) String() string {
	if d == Board {
		return "board"
	}
	return "schematic"
}

// NumberAllocator hands out numbers above the highest one observed.
type NumberAllocator struct {
	last int
}

// Observe records a number that is already taken.
func (a *NumberAllocator) Observe(n int) {
	if n > a.last {
		a.last = n
	}
}

// Next returns a fresh number and reserves it.
func (a *NumberAllocator) Next() int {
	a.last++
	return a.last
}

// Peek returns the number the next call to Next will return.
func (a *NumberAllocator) Peek() int {
	return a.last + 1
}

// Last returns the highest number observed or handed out.
func (a *NumberAllocator) Last() int {
	return a.last
}

// Presence tells in which documents a number occurs.
type Presence struct {
	InSchematic bool
	InBoard     bool
}

// PresenceMap tracks component or net numbers per document.
type PresenceMap map[int]Presence

// Mark records that number occurs in doc.
func (m PresenceMap) Mark(number int, doc Document) {
	p := m[number]
	if doc == Board {
		p.InBoard = true
	} else {
		p.InSchematic = true
	}
	m[number] = p
}

// Lookup returns the presence of a number.
func (m PresenceMap) Lookup(number int) (Presence, bool) {
	p, ok := m[number]
	return p, ok
}

// Unpaired returns, in ascending order, the numbers present in only one
// document.
func (m PresenceMap) Unpaired() []int {
	var out []int
	for n, p := range m {
		if p.InSchematic != p.InBoard {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}
