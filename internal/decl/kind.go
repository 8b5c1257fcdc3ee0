package decl

// Kind enumerates the declaration kinds the rules know about.
type Kind uint8

const (
	KindNone Kind = iota
	KindClass
	KindStruct
	KindInterface
	KindEnum
	KindEnumMember
	KindField
	KindProperty
	KindMethod
	KindConstructor
	KindDestructor
	KindIndexer
	KindOperator
	KindEventField
	KindEvent
	KindDelegate
)

var kindNames = [...]string{
	KindNone:        "none",
	KindClass:       "class",
	KindStruct:      "struct",
	KindInterface:   "interface",
	KindEnum:        "enum",
	KindEnumMember:  "enum-member",
	KindField:       "field",
	KindProperty:    "property",
	KindMethod:      "method",
	KindConstructor: "constructor",
	KindDestructor:  "destructor",
	KindIndexer:     "indexer",
	KindOperator:    "operator",
	KindEventField:  "event-field",
	KindEvent:       "event",
	KindDelegate:    "delegate",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// KindFromString parses the wire name of a kind. The second result is false
// for names the engine does not know; callers treat that as a host contract
// violation, not a lint finding.
func KindFromString(s string) (Kind, bool) {
	for k, name := range kindNames {
		if Kind(k) != KindNone && name == s {
			return Kind(k), true
		}
	}
	return KindNone, false
}

// IsType reports whether the kind is one of the always-checked type
// declarations.
func (k Kind) IsType() bool {
	switch k {
	case KindClass, KindStruct, KindInterface, KindEnum:
		return true
	}
	return false
}

// HasParameters reports whether the kind carries a parameter list the
// param-tag rules care about.
func (k Kind) HasParameters() bool {
	switch k {
	case KindMethod, KindConstructor, KindIndexer, KindOperator:
		return true
	}
	return false
}
