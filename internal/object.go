package internal

// MaxTreeDepth bounds recursive walks of the object tree.
const MaxTreeDepth = 256

// ObjectID identifies an object in a World. IDs are assigned in increasing
// order and never reused.
type ObjectID int

// NoObject is the ObjectID of no object.
const NoObject ObjectID = -1

// ValueKind is the type tag of a property Value.
type ValueKind int

// Value kinds.
const (
	IntegerValue ValueKind = iota
	StringValue
	ObjectValue
	ArrayValue

	// UnresolvedName holds, in Str, the name of an object that has not been
	// resolved yet. It exists only while world data is loading.
	UnresolvedName
	// UnresolvedWord holds, in Str, a vocabulary word that has not been
	// numbered yet. It exists only while world data is loading.
	UnresolvedWord
)

// A Value is the content of an object property.
type Value struct {
	Kind  ValueKind
	Int   int
	Str   string
	Obj   ObjectID
	Array []Value
}

// IntValue creates an integer value.
func IntValue(n int) Value { return Value{Kind: IntegerValue, Int: n} }

// StrValue creates a string value.
func StrValue(s string) Value { return Value{Kind: StringValue, Str: s} }

// ObjValue creates an object reference value.
func ObjValue(id ObjectID) Value { return Value{Kind: ObjectValue, Obj: id} }

// ArrValue creates an array value.
func ArrValue(elems []Value) Value { return Value{Kind: ArrayValue, Array: elems} }

// A Property is a single property of an object.
type Property struct {
	ID    int
	Value Value

	next *Property
}

// An Object is a node in the world tree with a set of properties.
type Object struct {
	ID ObjectID

	props                  *Property
	parent, child, sibling ObjectID

	// pendingParent is the parent name recorded by the loader until the
	// fix-up pass. pendingAt locates it for error messages.
	pendingParent string
	pendingAt     *Node
}

// Property returns the property with the given id, or nil if the object has
// no such property.
func (o *Object) Property(pid int) *Property {
	for p := o.props; p != nil; p = p.next {
		if p.ID == pid {
			return p
		}
	}
	return nil
}

// Properties returns the object's properties, most recently set first.
func (o *Object) Properties() []*Property {
	var r []*Property
	for p := o.props; p != nil; p = p.next {
		r = append(r, p)
	}
	return r
}

// Set sets a property, replacing any existing property with the same id.
func (o *Object) Set(pid int, v Value) {
	o.Delete(pid)
	o.props = &Property{ID: pid, Value: v, next: o.props}
}

// SetInteger sets an integer property.
func (o *Object) SetInteger(pid, n int) { o.Set(pid, IntValue(n)) }

// SetString sets a string property.
func (o *Object) SetString(pid int, s string) { o.Set(pid, StrValue(s)) }

// SetObject sets an object reference property.
func (o *Object) SetObject(pid int, id ObjectID) { o.Set(pid, ObjValue(id)) }

// SetArray sets an array property.
func (o *Object) SetArray(pid int, elems []Value) { o.Set(pid, ArrValue(elems)) }

// Delete removes a property. It does nothing if the object has no such
// property.
func (o *Object) Delete(pid int) {
	for pp := &o.props; *pp != nil; pp = &(*pp).next {
		if (*pp).ID == pid {
			*pp = (*pp).next
			return
		}
	}
}

// IsTrue reports the truth of a property. Integers are true when nonzero,
// strings and objects when present, and arrays always. If the object has no
// such property, IsTrue returns def.
func (o *Object) IsTrue(pid int, def bool) bool {
	p := o.Property(pid)
	if p == nil {
		return def
	}
	switch p.Value.Kind {
	case IntegerValue:
		return p.Value.Int != 0
	case StringValue:
		return true
	case ObjectValue:
		return p.Value.Obj != NoObject
	case ArrayValue:
		return true
	}
	return false
}

// hasWord reports whether a property is an array containing the integer n.
func (o *Object) hasWord(pid, n int) bool {
	p := o.Property(pid)
	if p == nil || p.Value.Kind != ArrayValue {
		return false
	}
	for _, v := range p.Value.Array {
		if v.Kind == IntegerValue && v.Int == n {
			return true
		}
	}
	return false
}

// A World is the arena of objects in a game. Object 0 is the root, which has
// no parent.
type World struct {
	objects []*Object
}

// NewWorld creates a world containing only the root object.
func NewWorld() *World {
	w := &World{}
	w.Create(NoObject)
	return w
}

// Root returns the ID of the root object.
func (w *World) Root() ObjectID {
	return 0
}

// Len returns the number of objects ever created in the world.
func (w *World) Len() int {
	return len(w.objects)
}

// Object returns the object with the given ID, or nil if there is none.
func (w *World) Object(id ObjectID) *Object {
	if id < 0 || int(id) >= len(w.objects) {
		return nil
	}
	return w.objects[id]
}

// Create creates a new object. If parent is a valid object, the new object
// becomes its first child.
func (w *World) Create(parent ObjectID) ObjectID {
	obj := &Object{
		ID:      ObjectID(len(w.objects)),
		parent:  NoObject,
		child:   NoObject,
		sibling: NoObject,
	}
	w.objects = append(w.objects, obj)
	if p := w.Object(parent); p != nil {
		obj.parent = parent
		obj.sibling = p.child
		p.child = obj.ID
	}
	return obj.ID
}

// Parent returns the parent of an object, or NoObject.
func (w *World) Parent(id ObjectID) ObjectID {
	if o := w.Object(id); o != nil {
		return o.parent
	}
	return NoObject
}

// FirstChild returns the most recently added child of an object, or NoObject.
func (w *World) FirstChild(id ObjectID) ObjectID {
	if o := w.Object(id); o != nil {
		return o.child
	}
	return NoObject
}

// Sibling returns the next sibling of an object, or NoObject.
func (w *World) Sibling(id ObjectID) ObjectID {
	if o := w.Object(id); o != nil {
		return o.sibling
	}
	return NoObject
}

// Children returns the direct children of an object in sibling order.
func (w *World) Children(id ObjectID) []ObjectID {
	var r []ObjectID
	for c := w.FirstChild(id); c != NoObject; c = w.Sibling(c) {
		r = append(r, c)
	}
	return r
}

// Move makes obj the first child of newParent. Move does nothing if obj has
// no parent, if newParent is already its parent, if newParent is obj, or if
// newParent is inside obj.
func (w *World) Move(obj, newParent ObjectID) {
	o, np := w.Object(obj), w.Object(newParent)
	if o == nil || np == nil || obj == newParent || o.parent == newParent || o.parent == NoObject {
		return
	}
	if w.ContainsIndirect(obj, newParent) {
		return
	}
	old := w.objects[o.parent]
	if old.child == obj {
		old.child = o.sibling
	} else {
		cur := w.Object(old.child)
		for cur != nil && cur.sibling != obj {
			cur = w.Object(cur.sibling)
		}
		if cur == nil {
			return
		}
		cur.sibling = o.sibling
	}
	o.parent = newParent
	o.sibling = np.child
	np.child = obj
}

// Contains reports whether content is a direct child of container.
func (w *World) Contains(container, content ObjectID) bool {
	if w.Object(container) == nil || w.Object(content) == nil {
		return false
	}
	return w.Parent(content) == container
}

// ContainsIndirect reports whether content is a descendant of container at
// any depth.
func (w *World) ContainsIndirect(container, content ObjectID) bool {
	if w.Object(container) == nil || w.Object(content) == nil {
		return false
	}
	// A parent chain visits at most every object once.
	p := w.Parent(content)
	for i := 0; p != NoObject && i < len(w.objects); i++ {
		if p == container {
			return true
		}
		p = w.Parent(p)
	}
	return false
}

// Ceiling returns the top-level container of an object: the ancestor whose
// parent is the root. It returns obj itself if obj is directly in the root,
// and NoObject for the root or an invalid object.
func (w *World) Ceiling(obj ObjectID) ObjectID {
	if w.Object(obj) == nil || obj == w.Root() {
		return NoObject
	}
	for i := 0; i < len(w.objects); i++ {
		p := w.Parent(obj)
		if p == w.Root() || p == NoObject {
			return obj
		}
		obj = p
	}
	return NoObject
}

// Walk calls f for each descendant of root in depth-first order, with the
// depth of the descendant below root, starting at 1. The walk stops
// descending at MaxTreeDepth.
func (w *World) Walk(root ObjectID, f func(id ObjectID, depth int)) {
	w.walk(root, 1, f)
}

func (w *World) walk(id ObjectID, depth int, f func(ObjectID, int)) {
	if depth > MaxTreeDepth {
		return
	}
	for c := w.FirstChild(id); c != NoObject; c = w.Sibling(c) {
		f(c, depth)
		w.walk(c, depth+1, f)
	}
}
