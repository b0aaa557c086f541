package constraint

// Constraint is a single declaration attached to a field. The set of
// implementations is closed; callers switch on the concrete types.
type Constraint interface {
	Kind() Kind
	// Message is the user-facing text reported when the constraint rejects
	// input.
	Message() string
	constraint()
}

// Option is implemented by constraints that answer a field by selection.
type Option interface {
	Constraint
	// Resolve translates raw input into a zero-based index.
	Resolve(input string) (int, error)
	// Len reports how many positions the option spans.
	Len() int
	// Choices lists the accepted inputs in position order.
	Choices() []string
}

// ValueSet is implemented by the ordered, typed value lists.
type ValueSet interface {
	Constraint
	Len() int
	// Type reports the semantic type of the listed values.
	Type() SemanticType
	// At returns the value stored at index i.
	At(i int) any
	// Contains reports whether v is exactly equal to one listed value.
	Contains(v any) bool
}

// StringOptions accepts one of the listed strings, matched case-sensitively.
type StringOptions struct {
	Options []string
	ErrMsg  string
}

func (StringOptions) Kind() Kind { return KindStringOptions }

func (c StringOptions) Message() string { return messageOr(c.ErrMsg, DefaultOptionMessage) }

func (c StringOptions) Len() int { return len(c.Options) }

func (StringOptions) constraint() {}

// IntOptions accepts one of the listed integers.
type IntOptions struct {
	Options []int
	ErrMsg  string
}

func (IntOptions) Kind() Kind { return KindIntOptions }

func (c IntOptions) Message() string { return messageOr(c.ErrMsg, DefaultOptionMessage) }

func (c IntOptions) Len() int { return len(c.Options) }

func (IntOptions) constraint() {}

// IntRange accepts any integer in the inclusive range [From, To].
type IntRange struct {
	From   int
	To     int
	ErrMsg string
}

// DefaultRange returns the 1..5 range.
func DefaultRange(errMsg string) IntRange {
	return IntRange{From: DefaultRangeFrom, To: DefaultRangeTo, ErrMsg: errMsg}
}

func (IntRange) Kind() Kind { return KindIntOptionRange }

func (c IntRange) Message() string { return messageOr(c.ErrMsg, DefaultOptionMessage) }

// Len is the span To-From+1; it may be zero or negative for a broken range.
func (c IntRange) Len() int { return c.To - c.From + 1 }

func (IntRange) constraint() {}

// StringValues lists acceptable (or option-indexed) strings.
type StringValues struct {
	Values []string
	ErrMsg string
}

func (StringValues) Kind() Kind { return KindStringValues }

func (c StringValues) Message() string { return messageOr(c.ErrMsg, DefaultValueMessage) }

func (c StringValues) Len() int { return len(c.Values) }

func (StringValues) Type() SemanticType { return Text }

func (c StringValues) At(i int) any { return c.Values[i] }

func (c StringValues) Contains(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	for _, candidate := range c.Values {
		if candidate == s {
			return true
		}
	}
	return false
}

func (StringValues) constraint() {}

// IntValues lists acceptable (or option-indexed) integers.
type IntValues struct {
	Values []int
	ErrMsg string
}

func (IntValues) Kind() Kind { return KindIntValues }

func (c IntValues) Message() string { return messageOr(c.ErrMsg, DefaultValueMessage) }

func (c IntValues) Len() int { return len(c.Values) }

func (IntValues) Type() SemanticType { return Integer }

func (c IntValues) At(i int) any { return c.Values[i] }

func (c IntValues) Contains(v any) bool {
	n, ok := v.(int)
	if !ok {
		return false
	}
	for _, candidate := range c.Values {
		if candidate == n {
			return true
		}
	}
	return false
}

func (IntValues) constraint() {}

// DoubleValues lists acceptable (or option-indexed) floating-point numbers.
// Membership uses exact equality.
type DoubleValues struct {
	Values []float64
	ErrMsg string
}

func (DoubleValues) Kind() Kind { return KindDoubleValues }

func (c DoubleValues) Message() string { return messageOr(c.ErrMsg, DefaultValueMessage) }

func (c DoubleValues) Len() int { return len(c.Values) }

func (DoubleValues) Type() SemanticType { return Float }

func (c DoubleValues) At(i int) any { return c.Values[i] }

func (c DoubleValues) Contains(v any) bool {
	f, ok := v.(float64)
	if !ok {
		return false
	}
	for _, candidate := range c.Values {
		if candidate == f {
			return true
		}
	}
	return false
}

func (DoubleValues) constraint() {}

// NotNegative rejects numbers below zero.
type NotNegative struct {
	ErrMsg string
}

func (NotNegative) Kind() Kind { return KindNotNegative }

func (c NotNegative) Message() string { return messageOr(c.ErrMsg, DefaultNotNegativeMessage) }

// Check returns an InputError when n is negative.
func (c NotNegative) Check(n float64) error {
	if n < 0 {
		return Invalid(c.Message())
	}
	return nil
}

func (NotNegative) constraint() {}

func messageOr(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
