package source

import (
	"testing"
)

func TestFileSet_ResolvePositions(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.cs", []byte("first\nsecond\nthird"))

	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{name: "start of file", off: 0, want: LineCol{Line: 1, Col: 1}},
		{name: "middle of first line", off: 3, want: LineCol{Line: 1, Col: 4}},
		{name: "newline belongs to its line", off: 5, want: LineCol{Line: 1, Col: 6}},
		{name: "start of second line", off: 6, want: LineCol{Line: 2, Col: 1}},
		{name: "start of third line", off: 13, want: LineCol{Line: 3, Col: 1}},
		{name: "last byte", off: 17, want: LineCol{Line: 3, Col: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
			if start != tt.want {
				t.Errorf("Resolve(%d) = %v, want %v", tt.off, start, tt.want)
			}
		})
	}
}

func TestFileSet_ResolveSingleLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("one.cs", []byte("no newlines here"))
	start, end := fs.Resolve(Span{File: id, Start: 3, End: 5})
	if start.Line != 1 || start.Col != 4 {
		t.Errorf("start = %v, want 1:4", start)
	}
	if end.Line != 1 || end.Col != 6 {
		t.Errorf("end = %v, want 1:6", end)
	}
}

func TestFileSet_NormalizesCRLFAndBOM(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("crlf.cs", []byte("\xEF\xBB\xBFa\r\nb"))
	f := fs.Get(id)
	if string(f.Content) != "a\nb" {
		t.Errorf("content = %q, want %q", f.Content, "a\nb")
	}
}

func TestFileSet_LookupReturnsLatest(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("x.cs", []byte("old"))
	second := fs.AddVirtual("x.cs", []byte("new"))

	id, ok := fs.Lookup("x.cs")
	if !ok {
		t.Fatalf("Lookup failed")
	}
	if id != second {
		t.Errorf("Lookup = %d, want %d", id, second)
	}
	if string(fs.Get(id).Content) != "new" {
		t.Errorf("expected latest content")
	}
}

func TestFile_Line(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("l.cs", []byte("alpha\nbeta\ngamma"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{1, "alpha"},
		{2, "beta"},
		{3, "gamma"},
		{4, ""},
		{0, ""},
	}
	for _, tt := range tests {
		if got := f.Line(tt.line); got != tt.want {
			t.Errorf("Line(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}
