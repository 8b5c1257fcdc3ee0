package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"doclint/internal/decl"
	"doclint/internal/source"
)

// Batch is one decoded compilation unit ready for the engine: a file set,
// the declarations to gate rules on, and the full comment trivia stream for
// the rules that scan every comment regardless of declarations.
type Batch struct {
	Unit   string
	Files  *source.FileSet
	Decls  []decl.Declaration
	Trivia []decl.Comment
	Path   string
}

var validate = validator.New()

// Load reads and decodes the batch file at path. Relative file-table paths
// resolve against the batch file's directory.
func Load(path string) (*Batch, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	// #nosec G304 -- path is the batch the user asked to check
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	b, err := Decode(data, format, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	b.Path = path
	return b, nil
}

// Decode unmarshals, validates and converts one serialized batch.
func Decode(data []byte, format Format, baseDir string) (*Batch, error) {
	var w batchWire
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &w)
	case FormatYAML:
		err = yaml.Unmarshal(data, &w)
	case FormatMsgpack:
		err = msgpack.Unmarshal(data, &w)
	default:
		return nil, fmt.Errorf("unsupported batch format %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode batch: %w", err)
	}
	if err := validate.Struct(&w); err != nil {
		return nil, fmt.Errorf("batch contract violated: %w", err)
	}
	return convert(&w, baseDir)
}

func convert(w *batchWire, baseDir string) (*Batch, error) {
	fs := source.NewFileSetWithBase(baseDir)
	ids := make([]source.FileID, len(w.Files))
	for i, f := range w.Files {
		if f.Content != nil {
			ids[i] = fs.AddVirtual(f.Path, []byte(*f.Content))
			continue
		}
		path := f.Path
		if !filepath.IsAbs(path) && baseDir != "" {
			path = filepath.Join(baseDir, path)
		}
		id, err := fs.Load(path)
		if err != nil {
			return nil, fmt.Errorf("file table entry %d: %w", i, err)
		}
		ids[i] = id
	}

	spanOf := func(s spanWire, where string) (source.Span, error) {
		if s.File < 0 || s.File >= len(ids) {
			return source.Span{}, fmt.Errorf("%s: span references file %d of %d", where, s.File, len(ids))
		}
		return source.Span{File: ids[s.File], Start: s.Start, End: s.End}, nil
	}

	b := &Batch{
		Unit:  w.Unit,
		Files: fs,
		Decls: make([]decl.Declaration, 0, len(w.Declarations)),
	}

	for i, dw := range w.Declarations {
		where := fmt.Sprintf("declaration %d", i)
		kind, ok := decl.KindFromString(dw.Kind)
		if !ok {
			return nil, fmt.Errorf("%s: unknown kind %q", where, dw.Kind)
		}
		var mods decl.Modifiers
		for _, m := range dw.Modifiers {
			flag, ok := decl.ModifierFromString(m)
			if !ok {
				return nil, fmt.Errorf("%s: unknown modifier %q", where, m)
			}
			mods |= flag
		}
		enclosing := decl.KindNone
		if dw.Enclosing != "" {
			enclosing, ok = decl.KindFromString(dw.Enclosing)
			if !ok {
				return nil, fmt.Errorf("%s: unknown enclosing kind %q", where, dw.Enclosing)
			}
		}

		d := decl.Declaration{
			Kind:           kind,
			Modifiers:      mods,
			BaseType:       dw.Base,
			InterfaceCount: dw.Interfaces,
			Attributes:     dw.Attributes,
			EnclosingKind:  enclosing,
		}
		for _, nw := range dw.Names {
			sp, err := spanOf(nw.Span, where)
			if err != nil {
				return nil, err
			}
			d.Names = append(d.Names, decl.Ident{Text: nw.Text, Span: sp})
		}
		for _, pw := range dw.Params {
			sp, err := spanOf(pw.Span, where)
			if err != nil {
				return nil, err
			}
			d.Params = append(d.Params, decl.Param{Name: pw.Name, Type: pw.Type, Span: sp})
		}
		if dw.Comment != nil {
			sp, err := spanOf(dw.Comment.Span, where)
			if err != nil {
				return nil, err
			}
			d.Comment = &decl.Comment{Text: dw.Comment.Text, Span: sp}
		}
		b.Decls = append(b.Decls, d)
	}

	for i, cw := range w.Comments {
		sp, err := spanOf(cw.Span, fmt.Sprintf("comment %d", i))
		if err != nil {
			return nil, err
		}
		b.Trivia = append(b.Trivia, decl.Comment{Text: cw.Text, Span: sp})
	}
	return b, nil
}
