package ingest

// Wire structs mirror the batch serialization one to one. Spans are
// half-open byte ranges into the file named by index into the batch file
// table; comment spans cover the whole comment block including markers.

type batchWire struct {
	Unit         string        `json:"unit" yaml:"unit" msgpack:"unit" validate:"required"`
	Files        []fileWire    `json:"files" yaml:"files" msgpack:"files" validate:"required,min=1,dive"`
	Declarations []declWire    `json:"declarations" yaml:"declarations" msgpack:"declarations" validate:"dive"`
	Comments     []commentWire `json:"comments" yaml:"comments" msgpack:"comments" validate:"dive"`
}

type fileWire struct {
	Path string `json:"path" yaml:"path" msgpack:"path" validate:"required"`
	// Content carries the file inline when the host does not want the
	// engine touching disk. Nil means load from Path.
	Content *string `json:"content,omitempty" yaml:"content,omitempty" msgpack:"content,omitempty"`
}

type spanWire struct {
	File  int    `json:"file" yaml:"file" msgpack:"file" validate:"min=0"`
	Start uint32 `json:"start" yaml:"start" msgpack:"start"`
	End   uint32 `json:"end" yaml:"end" msgpack:"end" validate:"gtefield=Start"`
}

type identWire struct {
	Text string   `json:"text" yaml:"text" msgpack:"text" validate:"required"`
	Span spanWire `json:"span" yaml:"span" msgpack:"span"`
}

type paramWire struct {
	Name string   `json:"name" yaml:"name" msgpack:"name" validate:"required"`
	Type string   `json:"type" yaml:"type" msgpack:"type" validate:"required"`
	Span spanWire `json:"span" yaml:"span" msgpack:"span"`
}

type commentWire struct {
	Text string   `json:"text" yaml:"text" msgpack:"text" validate:"required"`
	Span spanWire `json:"span" yaml:"span" msgpack:"span"`
}

type declWire struct {
	Kind       string       `json:"kind" yaml:"kind" msgpack:"kind" validate:"required"`
	Modifiers  []string     `json:"modifiers,omitempty" yaml:"modifiers,omitempty" msgpack:"modifiers,omitempty"`
	Names      []identWire  `json:"names" yaml:"names" msgpack:"names" validate:"required,min=1,dive"`
	Params     []paramWire  `json:"params,omitempty" yaml:"params,omitempty" msgpack:"params,omitempty" validate:"dive"`
	Base       string       `json:"base,omitempty" yaml:"base,omitempty" msgpack:"base,omitempty"`
	Interfaces int          `json:"interfaces,omitempty" yaml:"interfaces,omitempty" msgpack:"interfaces,omitempty" validate:"min=0"`
	Attributes []string     `json:"attributes,omitempty" yaml:"attributes,omitempty" msgpack:"attributes,omitempty"`
	Enclosing  string       `json:"enclosing,omitempty" yaml:"enclosing,omitempty" msgpack:"enclosing,omitempty"`
	Comment    *commentWire `json:"comment,omitempty" yaml:"comment,omitempty" msgpack:"comment,omitempty"`
}
