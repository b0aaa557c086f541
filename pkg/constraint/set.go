package constraint

// Set is the ordered list of constraints attached to one field.
type Set []Constraint

// Option returns the first option constraint in the set.
func (s Set) Option() (Option, bool) {
	for _, c := range s {
		if opt, ok := c.(Option); ok {
			return opt, true
		}
	}
	return nil, false
}

// Values returns the first value list in the set.
func (s Set) Values() (ValueSet, bool) {
	for _, c := range s {
		if values, ok := c.(ValueSet); ok {
			return values, true
		}
	}
	return nil, false
}

// NotNegative returns the NotNegative constraint when present.
func (s Set) NotNegative() (NotNegative, bool) {
	for _, c := range s {
		if nn, ok := c.(NotNegative); ok {
			return nn, true
		}
	}
	return NotNegative{}, false
}

// Has reports whether a constraint of kind k is attached.
func (s Set) Has(k Kind) bool {
	return s.Count(k) > 0
}

// Count returns how many constraints of kind k are attached.
func (s Set) Count(k Kind) int {
	n := 0
	for _, c := range s {
		if c != nil && c.Kind() == k {
			n++
		}
	}
	return n
}

// Clone returns a copy of the set that can be appended to independently.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	return append(Set(nil), s...)
}
