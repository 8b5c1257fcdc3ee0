package source

import (
	"path/filepath"
)

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual marks a file added from memory (inline batch content, tests).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File holds the content and line index of one host source file. The engine
// never parses these files itself; they are only used to resolve diagnostic
// spans into line/column positions and to show source context.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Flags   FileFlags
}

// LineCol is a 1-based human-readable position.
type LineCol struct {
	Line uint32
	Col  uint32
}

// Line returns the text of the given 1-based line, without the trailing
// newline. Out-of-range lines yield "".
func (f *File) Line(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	var start uint32
	switch {
	case lineNum == 1:
		start = 0
	case int(lineNum-2) < len(f.LineIdx):
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}
	end := uint32(len(f.Content))
	if int(lineNum-1) < len(f.LineIdx) {
		end = f.LineIdx[lineNum-1]
	}
	if start >= uint32(len(f.Content)) {
		return ""
	}
	if end > uint32(len(f.Content)) {
		end = uint32(len(f.Content))
	}
	return string(f.Content[start:end])
}

// DisplayPath renders the file path relative to baseDir when possible,
// falling back to the stored path.
func (f *File) DisplayPath(baseDir string) string {
	if baseDir == "" {
		return f.Path
	}
	rel, err := filepath.Rel(baseDir, f.Path)
	if err != nil || len(rel) >= len(f.Path) {
		return f.Path
	}
	return filepath.ToSlash(rel)
}
