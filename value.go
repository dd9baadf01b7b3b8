package loom

// Kind identifies the variant held by a Value.
type Kind int

const (
	// KindVoid is the absence of a value. The zero Value is void.
	KindVoid Kind = iota
	// KindNumber is a double-precision floating point number.
	KindNumber
	// KindString is UTF-8 text.
	KindString
	// KindBool is a boolean.
	KindBool
	// KindBrush is a color or brush descriptor.
	KindBrush
	// KindImage is a shared image handle.
	KindImage
	// KindStruct is a named record of Values.
	KindStruct
	// KindModel is a reference to an observable Model.
	KindModel
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindBrush:
		return "brush"
	case KindImage:
		return "image"
	case KindStruct:
		return "struct"
	case KindModel:
		return "model"
	default:
		return "invalid"
	}
}

// Value is a dynamically typed datum exchanged between host code and the UI.
//
// A Value always holds exactly one of the supported variants; the variant of
// an existing Value never changes in place, only whole-value assignment can
// replace it. Construct Values with the New* functions and extract the
// payload with the As* accessors, which report false when the stored variant
// does not match:
//
//	v := loom.NewNumber(42)
//	if n, ok := v.AsNumber(); ok {
//		use(n)
//	}
//
// The zero Value is void.
type Value struct {
	kind  Kind
	num   float64
	str   string
	truth bool
	brush Brush
	image *Image
	strct Struct
	model Model
}

// VoidValue returns the void Value. It is equivalent to the zero Value and
// exists for readability at call sites.
func VoidValue() Value {
	return Value{}
}

// NewNumber returns a Value holding the number n.
func NewNumber(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// NewString returns a Value holding the string s.
func NewString(s string) Value {
	return Value{kind: KindString, str: s}
}

// NewBool returns a Value holding the boolean b.
func NewBool(b bool) Value {
	return Value{kind: KindBool, truth: b}
}

// NewBrush returns a Value holding the brush b.
func NewBrush(b Brush) Value {
	return Value{kind: KindBrush, brush: b}
}

// NewColor returns a brush Value holding a solid-color brush of c.
func NewColor(c Color) Value {
	return NewBrush(SolidColorBrush(c))
}

// NewImage returns a Value holding the shared image handle img. The handle
// is shared, not copied; all Values constructed from the same *Image compare
// equal.
func NewImage(img *Image) Value {
	return Value{kind: KindImage, image: img}
}

// NewStruct returns a Value holding a deep copy of s. Later mutations of s
// do not affect the returned Value.
func NewStruct(s Struct) Value {
	return Value{kind: KindStruct, strct: s.Clone()}
}

// NewModel returns a Value referencing the model m. The reference is shared:
// mutations of m are visible through every Value that references it.
func NewModel(m Model) Value {
	return Value{kind: KindModel, model: m}
}

// NewArray returns a model Value backed by a fresh VecModel seeded with deep
// copies of rows.
func NewArray(rows []Value) Value {
	return NewModel(NewVecModel(rows...))
}

// Kind returns the variant this Value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsVoid reports whether the Value holds nothing.
func (v Value) IsVoid() bool {
	return v.kind == KindVoid
}

// AsNumber returns the held number, or false when the Value is not a number.
func (v Value) AsNumber() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// AsString returns the held string, or false when the Value is not a string.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsBool returns the held boolean, or false when the Value is not a boolean.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.truth, true
}

// AsBrush returns the held brush, or false when the Value is not a brush.
func (v Value) AsBrush() (Brush, bool) {
	if v.kind != KindBrush {
		return Brush{}, false
	}
	return v.brush, true
}

// AsImage returns the held image handle, or false when the Value is not an
// image.
func (v Value) AsImage() (*Image, bool) {
	if v.kind != KindImage {
		return nil, false
	}
	return v.image, true
}

// AsStruct returns a deep copy of the held struct, or false when the Value
// is not a struct.
func (v Value) AsStruct() (Struct, bool) {
	if v.kind != KindStruct {
		return Struct{}, false
	}
	return v.strct.Clone(), true
}

// AsModel returns the referenced model, or false when the Value is not a
// model reference. The returned model is live, not a snapshot.
func (v Value) AsModel() (Model, bool) {
	if v.kind != KindModel {
		return nil, false
	}
	return v.model, true
}

// AsArray serializes the referenced model into a one-shot slice of row
// snapshots taken at call time, or returns false when the Value is not a
// model reference. The slice is not live: later model mutations do not
// affect it.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindModel {
		return nil, false
	}
	n := v.model.RowCount()
	rows := make([]Value, 0, n)
	for i := 0; i < n; i++ {
		row, ok := v.model.RowData(i)
		if !ok {
			break
		}
		rows = append(rows, row.Clone())
	}
	return rows, true
}

// Clone returns a deep copy of the Value. Struct payloads are copied field
// by field; image and model payloads remain shared handles.
func (v Value) Clone() Value {
	if v.kind == KindStruct {
		v.strct = v.strct.Clone()
	}
	return v
}

// Equal reports whether v and o hold the same variant with equal payloads.
// Values of different kinds are never equal. Images and models compare by
// handle identity, structs by deep field equality.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindVoid:
		return true
	case KindNumber:
		return v.num == o.num
	case KindString:
		return v.str == o.str
	case KindBool:
		return v.truth == o.truth
	case KindBrush:
		return v.brush == o.brush
	case KindImage:
		return v.image == o.image
	case KindStruct:
		return v.strct.Equal(o.strct)
	case KindModel:
		return v.model == o.model
	default:
		return false
	}
}
