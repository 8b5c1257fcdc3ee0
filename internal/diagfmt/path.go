package diagfmt

import (
	"path/filepath"

	"doclint/internal/source"
)

func displayPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.Path
	case PathModeBasename:
		return filepath.Base(f.Path)
	default:
		return f.DisplayPath(fs.BaseDir())
	}
}
