// Package types models the vane type system: primitive numeric types,
// pointers, fixed-size arrays, and references to user-declared class types,
// plus the registry that tracks primitives, type aliases, intdef constants
// and class declarations across a compilation.
package types

import "strconv"

// Type is the closed set of type-expression variants. Exactly four
// concrete kinds implement it: Primitive, Pointer, Array, ClassRef.
type Type interface {
	// Signed reports whether values of this type participate in signed
	// arithmetic and comparisons. Every concrete Type answers this
	// directly; for Pointer, Array and ClassRef it is always false, matching
	// the source system (only numeric primitives carry real signedness).
	Signed() bool
	// String renders the type the way it would appear in source.
	String() string
}

// Primitive is a built-in scalar type.
type Primitive struct {
	Kind   PrimitiveKind
	signed bool
}

// PrimitiveKind enumerates the built-in scalar kinds.
type PrimitiveKind int

const (
	Void PrimitiveKind = iota
	Bool
	Char
	UChar
	Short
	UShort
	Int
	UInt
	Long
	ULong
	Half
	Float
	Double
	Quad
)

var primitiveNames = map[PrimitiveKind]string{
	Void: "void", Bool: "bool", Char: "char", UChar: "uchar",
	Short: "short", UShort: "ushort", Int: "int", UInt: "uint",
	Long: "long", ULong: "ulong", Half: "half", Float: "float",
	Double: "double", Quad: "quad",
}

func (p *Primitive) Signed() bool { return p.signed }
func (p *Primitive) String() string { return primitiveNames[p.Kind] }

// Pointer is an opaque pointer to a Target type. Target is retained only so
// element-type computations (dereference, pointer indexing) know what they
// address — it plays no role in the lowered LLVM pointer representation,
// which is always an opaque ptr.
type Pointer struct {
	Target Type
}

func (p *Pointer) Signed() bool   { return false }
func (p *Pointer) String() string { return "ptr " + p.Target.String() }

// Array is a fixed-length sequence of Target.
type Array struct {
	Target Type
	Length int
}

func (a *Array) Signed() bool { return false }
func (a *Array) String() string {
	return a.Target.String() + "[" + strconv.Itoa(a.Length) + "]"
}

// ClassRef names a user-declared class type by reference to its shared
// Decl. Multiple ClassRef values across the AST point at the same *Decl,
// so adding members during two-pass class parsing is visible everywhere.
type ClassRef struct {
	Name string
	Decl *Decl
}

func (c *ClassRef) Signed() bool   { return false }
func (c *ClassRef) String() string { return c.Name }

// Member is one field of a class, in declaration order.
type Member struct {
	Name string
	Type Type
}

// Decl is a class declaration: an ordered list of data members. Order is
// significant — it is the struct's field layout, and a member's position
// in Members is exactly its GEP index during codegen.
type Decl struct {
	Name    string
	Members []Member
	index   map[string]int
}

// NewDecl creates an empty class declaration. Members are added with
// AddMembers, preserving the order they are first added in (two-pass class
// parsing may append to an already-registered Decl from multiple blocks of
// the same class name).
func NewDecl(name string) *Decl {
	return &Decl{Name: name, index: make(map[string]int)}
}

// AddMembers appends members to the declaration in the order given,
// skipping any name already present (so re-parsing the same class body
// twice, or a class reopened across imports, does not duplicate fields).
func (d *Decl) AddMembers(members []Member) {
	for _, m := range members {
		if _, exists := d.index[m.Name]; exists {
			continue
		}
		d.index[m.Name] = len(d.Members)
		d.Members = append(d.Members, m)
	}
}

// MemberType returns the type of the named member, or nil if no such
// member exists.
func (d *Decl) MemberType(name string) Type {
	if i, ok := d.index[name]; ok {
		return d.Members[i].Type
	}
	return nil
}

// MemberIndex returns the member's position (its GEP field index), or -1
// if it is not a member of this class.
func (d *Decl) MemberIndex(name string) int {
	if i, ok := d.index[name]; ok {
		return i
	}
	return -1
}
