package types

// Registry is the compilation-wide table of named types (primitives,
// aliases, class declarations), intdef constants, and function return
// types, mirroring the private `types_`/`intDefs_` maps and the
// function-return-type lookup the original parser carries alongside its
// scope stack.
type Registry struct {
	named      map[string]Type
	intDefs    map[string]int
	funcReturn map[string]Type
	classes    []*Decl
}

// NewRegistry returns a Registry pre-seeded with every primitive type
// keyword, matching the constructor-time registration the parser performs
// before reading any source.
func NewRegistry() *Registry {
	r := &Registry{
		named:      make(map[string]Type),
		intDefs:    make(map[string]int),
		funcReturn: make(map[string]Type),
	}
	r.registerPrimitive("void", Void, false)
	r.registerPrimitive("bool", Bool, false)
	r.registerPrimitive("char", Char, true)
	r.registerPrimitive("uchar", UChar, false)
	r.registerPrimitive("short", Short, true)
	r.registerPrimitive("ushort", UShort, false)
	r.registerPrimitive("int", Int, true)
	r.registerPrimitive("uint", UInt, false)
	r.registerPrimitive("long", Long, true)
	r.registerPrimitive("ulong", ULong, false)
	r.registerPrimitive("half", Half, true)
	r.registerPrimitive("float", Float, true)
	r.registerPrimitive("double", Double, true)
	r.registerPrimitive("quad", Quad, true)
	return r
}

func (r *Registry) registerPrimitive(name string, kind PrimitiveKind, signed bool) {
	r.named[name] = &Primitive{Kind: kind, signed: signed}
}

// Lookup returns the Type registered under name (primitive, alias, or
// class), or nil if name is not a known type identifier. It does not
// consume any input — callers decide whether absence means "not a type".
func (r *Registry) Lookup(name string) Type {
	return r.named[name]
}

// InsertAlias registers alias as another name for the type already
// registered under target (typedef alias target;).
func (r *Registry) InsertAlias(alias, target string) {
	if t, ok := r.named[target]; ok {
		r.named[alias] = t
	}
}

// InsertIntDef records alias as a compile-time integer constant
// (intdef alias <int-literal>;).
func (r *Registry) InsertIntDef(alias string, value int) {
	r.intDefs[alias] = value
}

// IntDef returns the value bound to alias by a prior InsertIntDef, and
// whether alias is in fact a known intdef constant.
func (r *Registry) IntDef(alias string) (int, bool) {
	v, ok := r.intDefs[alias]
	return v, ok
}

// RegisterClass registers a freshly parsed class declaration under its own
// name as a ClassRef, and records it in declaration order for module
// assembly.
func (r *Registry) RegisterClass(decl *Decl) {
	r.named[decl.Name] = &ClassRef{Name: decl.Name, Decl: decl}
	r.classes = append(r.classes, decl)
}

// Classes returns every registered class declaration in first-registration
// order — the order struct types are lowered in during module assembly.
func (r *Registry) Classes() []*Decl {
	return r.classes
}

// SetFunctionReturnType records the return type of a declared function or
// method, keyed by its fully resolved external name (e.g. "Point_length"
// for a method, or the bare name for a detached function).
func (r *Registry) SetFunctionReturnType(name string, t Type) {
	r.funcReturn[name] = t
}

// FunctionReturnType looks up a previously declared function's return
// type, or nil if name names no known function — used both to validate
// call sites and to propagate the call expression's own signedness.
func (r *Registry) FunctionReturnType(name string) Type {
	return r.funcReturn[name]
}
