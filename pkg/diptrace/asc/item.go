package asc

import "strconv"

// ItemKind selects the accessors available on an item.
type ItemKind int

const (
	KindGeneric ItemKind = iota
	KindRoot
	KindShape
)

func (k ItemKind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindShape:
		return "shape"
	default:
		return "generic"
	}
}

// itemKinds maps identifiers to item kinds. Anything not listed is generic.
var itemKinds = map[string]ItemKind{
	"Shape": KindShape,
}

// KindOf returns the kind of item created for an identifier.
func KindOf(identifier string) ItemKind {
	if k, ok := itemKinds[identifier]; ok {
		return k
	}
	return KindGeneric
}

// Item is a node of the document tree: one parenthesized group.
//
// Items do not know their parent. Operations that splice items into the tree
// take the parent as an argument.
type Item struct {
	Identifier string
	Attributes []Attribute

	// MayHaveSubItems records that the source opened a sub-item list, possibly
	// empty, so the closing parenthesis goes on its own line.
	MayHaveSubItems bool

	kind     ItemKind
	children []*Item
	index    map[string]int
}

// NewItem creates an item whose kind is taken from the identifier registry.
func NewItem(identifier string, attrs ...Attribute) *Item {
	return &Item{
		Identifier: identifier,
		Attributes: attrs,
		kind:       KindOf(identifier),
	}
}

// NewRoot creates the unnamed item that holds the top-level items of a file.
func NewRoot() *Item {
	return &Item{kind: KindRoot}
}

func (it *Item) Kind() ItemKind {
	return it.kind
}

// Children returns the sub-items in source order. The slice must not be
// modified; use AddChild.
func (it *Item) Children() []*Item {
	return it.children
}

// Child returns the first sub-item with the given identifier, or nil.
func (it *Item) Child(identifier string) *Item {
	if i, ok := it.index[identifier]; ok {
		return it.children[i]
	}
	return nil
}

// Path follows a chain of identifiers through first-match children.
func (it *Item) Path(identifiers ...string) *Item {
	cur := it
	for _, id := range identifiers {
		if cur = cur.Child(id); cur == nil {
			return nil
		}
	}
	return cur
}

// AddChild appends a sub-item.
func (it *Item) AddChild(child *Item) {
	it.children = append(it.children, child)
	if it.index == nil {
		it.index = make(map[string]int)
	}
	if _, exists := it.index[child.Identifier]; !exists {
		it.index[child.Identifier] = len(it.children) - 1
	}
}

// Attr returns the attribute at position i.
func (it *Item) Attr(i int) (Attribute, bool) {
	if i < 0 || i >= len(it.Attributes) {
		return nil, false
	}
	return it.Attributes[i], true
}

// ValueAt returns the unquoted value of the attribute at position i whatever
// its type. Bare names such as a net called 5 read back as integers.
func (it *Item) ValueAt(i int) (string, bool) {
	a, ok := it.Attr(i)
	if !ok {
		return "", false
	}
	return a.String(), true
}

// StringAt returns the string attribute at position i.
func (it *Item) StringAt(i int) (string, error) {
	a, ok := it.Attr(i)
	if !ok {
		return "", &NotFoundError{What: it.describe() + " attribute " + strconv.Itoa(i)}
	}
	s, ok := a.(*StringAttr)
	if !ok {
		return "", &TypeMismatchError{Item: it.describe(), Expected: "string", Found: a.TypeName()}
	}
	return s.Value, nil
}

// IntAt returns the integer attribute at position i.
func (it *Item) IntAt(i int) (int, error) {
	a, ok := it.Attr(i)
	if !ok {
		return 0, &NotFoundError{What: it.describe() + " attribute " + strconv.Itoa(i)}
	}
	v, ok := a.(*IntegerAttr)
	if !ok {
		return 0, &TypeMismatchError{Item: it.describe(), Expected: "integer", Found: a.TypeName()}
	}
	return v.Int(), nil
}

// FloatAt returns the numeric attribute at position i as a float.
func (it *Item) FloatAt(i int) (float64, error) {
	a, ok := it.Attr(i)
	if !ok {
		return 0, &NotFoundError{What: it.describe() + " attribute " + strconv.Itoa(i)}
	}
	v, ok := Numeric(a)
	if !ok {
		return 0, &TypeMismatchError{Item: it.describe(), Expected: "number", Found: a.TypeName()}
	}
	return v, nil
}

// Field returns the first attribute of the named sub-item, as in (Number 3).
func (it *Item) Field(name string) (Attribute, error) {
	child := it.Child(name)
	if child == nil || len(child.Attributes) == 0 {
		return nil, &FieldError{Item: it.describe(), Field: name}
	}
	return child.Attributes[0], nil
}

// FieldInt returns the integer value of the named sub-item.
func (it *Item) FieldInt(name string) (int, error) {
	a, err := it.Field(name)
	if err != nil {
		return 0, err
	}
	v, ok := a.(*IntegerAttr)
	if !ok {
		return 0, &TypeMismatchError{Item: it.describe() + "/" + name, Expected: "integer", Found: a.TypeName()}
	}
	return v.Int(), nil
}

// FieldFloat returns the numeric value of the named sub-item.
func (it *Item) FieldFloat(name string) (float64, error) {
	a, err := it.Field(name)
	if err != nil {
		return 0, err
	}
	v, ok := Numeric(a)
	if !ok {
		return 0, &TypeMismatchError{Item: it.describe() + "/" + name, Expected: "number", Found: a.TypeName()}
	}
	return v, nil
}

// FieldString returns the string value of the named sub-item.
func (it *Item) FieldString(name string) (string, error) {
	a, err := it.Field(name)
	if err != nil {
		return "", err
	}
	v, ok := a.(*StringAttr)
	if !ok {
		return "", &TypeMismatchError{Item: it.describe() + "/" + name, Expected: "string", Found: a.TypeName()}
	}
	return v.Value, nil
}

// Clone returns a deep copy of the item and its sub-items.
func (it *Item) Clone() *Item {
	c := &Item{
		Identifier:      it.Identifier,
		MayHaveSubItems: it.MayHaveSubItems,
		kind:            it.kind,
	}
	if it.Attributes != nil {
		c.Attributes = make([]Attribute, len(it.Attributes))
		for i, a := range it.Attributes {
			c.Attributes[i] = a.clone()
		}
	}
	for _, child := range it.children {
		c.AddChild(child.Clone())
	}
	return c
}

// Count returns the number of items in the subtree, including it.
func (it *Item) Count() int {
	n := 1
	for _, child := range it.children {
		n += child.Count()
	}
	return n
}

func (it *Item) describe() string {
	if it.kind == KindRoot {
		return "root"
	}
	return it.Identifier
}
