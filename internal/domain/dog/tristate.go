package dog

// TriState is a boolean attribute that can also be explicitly unknown.
// Absence in a shelter feed means Unknown, never No.
type TriState uint8

// TriState values.
const (
	Unknown TriState = iota
	No
	Yes
)

// TriFromBool converts an optional feed boolean into a TriState.
// A nil pointer means the attribute is undocumented.
func TriFromBool(b *bool) TriState {
	if b == nil {
		return Unknown
	}
	if *b {
		return Yes
	}
	return No
}

// Known reports whether the value is documented.
func (t TriState) Known() bool { return t != Unknown }

// Bool reports whether the value is known-true.
func (t TriState) Bool() bool { return t == Yes }

// Equals reports whether a known value matches the desired boolean.
// An Unknown value matches nothing.
func (t TriState) Equals(want bool) bool {
	if !t.Known() {
		return false
	}
	return t.Bool() == want
}

func (t TriState) String() string {
	switch t {
	case Yes:
		return "true"
	case No:
		return "false"
	default:
		return "unknown"
	}
}
