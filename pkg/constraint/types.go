package constraint

// SemanticType is the closed enumeration of promptable field kinds.
type SemanticType string

const (
	Text    SemanticType = "string"
	Integer SemanticType = "integer"
	Float   SemanticType = "double"
)

// Valid reports whether t is one of the supported kinds.
func (t SemanticType) Valid() bool {
	switch t {
	case Text, Integer, Float:
		return true
	default:
		return false
	}
}

func (t SemanticType) String() string {
	return string(t)
}

// Kind identifies a constraint declaration by name. The names double as the
// labels used in configuration error messages.
type Kind string

const (
	KindStringOptions  Kind = "StringOptions"
	KindIntOptions     Kind = "IntOptions"
	KindIntOptionRange Kind = "IntOptionRange"
	KindStringValues   Kind = "StringValues"
	KindIntValues      Kind = "IntValues"
	KindDoubleValues   Kind = "DoubleValues"
	KindNotNegative    Kind = "NotNegative"
)

const (
	DefaultOptionMessage      = "There is no such option."
	DefaultValueMessage       = "There is no such value."
	DefaultNotNegativeMessage = "The number cannot be negative."
)

// Default bounds applied by DefaultRange.
const (
	DefaultRangeFrom = 1
	DefaultRangeTo   = 5
)
