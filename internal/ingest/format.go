package ingest

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a batch serialization.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatYAML
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatMsgpack:
		return "msgpack"
	}
	return "unknown"
}

// FormatFromPath maps a batch file extension to its format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".mp", ".msgpack":
		return FormatMsgpack, nil
	}
	return FormatUnknown, fmt.Errorf("unsupported batch extension %q", filepath.Ext(path))
}

// IsBatchPath reports whether path looks like a batch file. Used when
// scanning directories.
func IsBatchPath(path string) bool {
	_, err := FormatFromPath(path)
	return err == nil
}
