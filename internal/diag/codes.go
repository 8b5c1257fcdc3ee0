package diag

// Code identifies one lint rule. The wire identifier returned by ID() is
// stable and must never change: hosts suppress and baseline findings by it.
type Code uint16

const (
	UnknownCode Code = 0

	// Documentation comment rules.
	CodeMissing          Code = 1001 // declaration has no documentation comment
	CodeTagEmpty         Code = 1002 // tag carries no content
	CodeParamMissing     Code = 1003 // declared parameter has no param tag
	CodeParamTrivialName Code = 1004 // param tag restates the parameter name
	CodeParamTrivialType Code = 1005 // param tag restates the parameter type
	CodeSummaryTrivial   Code = 1006 // summary restates the element name
	CodePropertySummary  Code = 1007 // property summary is just gets/sets + name
	CodeInheritdocNoCref Code = 1008 // inheritdoc on a class without cref
)

var codeIDs = map[Code]string{
	CodeMissing:          "XmlMissing",
	CodeTagEmpty:         "XmlTagEmpty100",
	CodeParamMissing:     "XmlParamMissing100",
	CodeParamTrivialName: "XmlParameterTagTooSimple100",
	CodeParamTrivialType: "XmlParameterTagTooSimpleByType100",
	CodeSummaryTrivial:   "XmlSummaryTagTooSimple100",
	CodePropertySummary:  "XmlPropertySummaryTooSimple100",
	CodeInheritdocNoCref: "XmlClassInheritdocEmpty100",
}

var codeTitles = map[Code]string{
	UnknownCode:          "Unknown finding",
	CodeMissing:          "Documentation comment is missing",
	CodeTagEmpty:         "Documentation tag is empty",
	CodeParamMissing:     "Parameter has no param tag",
	CodeParamTrivialName: "Param tag only restates the parameter name",
	CodeParamTrivialType: "Param tag only restates the parameter type",
	CodeSummaryTrivial:   "Summary only restates the element name",
	CodePropertySummary:  "Property summary is just gets/sets and the name",
	CodeInheritdocNoCref: "inheritdoc on a class needs an explicit cref",
}

// ID returns the stable wire identifier of the rule.
func (c Code) ID() string {
	if id, ok := codeIDs[c]; ok {
		return id
	}
	return "E0000"
}

func (c Code) Title() string {
	if title, ok := codeTitles[c]; ok {
		return title
	}
	return codeTitles[UnknownCode]
}

// DefaultSeverity returns the fixed severity of the rule. A totally absent
// comment is a hard failure; everything else warns.
func (c Code) DefaultSeverity() Severity {
	if c == CodeMissing {
		return SevError
	}
	return SevWarning
}

func (c Code) String() string {
	return "[" + c.ID() + "]: " + c.Title()
}

// Codes lists every rule code in a stable order.
func Codes() []Code {
	return []Code{
		CodeMissing,
		CodeTagEmpty,
		CodeParamMissing,
		CodeParamTrivialName,
		CodeParamTrivialType,
		CodeSummaryTrivial,
		CodePropertySummary,
		CodeInheritdocNoCref,
	}
}
