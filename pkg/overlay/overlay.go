// Package overlay layers presentation overrides from JSON/YAML documents on
// top of built form definitions. Overlays decorate controls by name: labels,
// titles, and vanilla style attributes such as grid width and icons.
package overlay

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formtool/pkg/forms"
	"github.com/goliatone/go-formtool/pkg/styles/vanilla"
)

// Store keeps the parsed overlays keyed by form identifier. It is safe for
// concurrent readers when treated as immutable after construction.
type Store struct {
	forms map[string]FormOverlay
}

// FormOverlay is the set of per-control overrides for one form.
type FormOverlay struct {
	ID     string
	Source string
	Fields map[string]FieldOverlay
}

// FieldOverlay customises one control, addressed by its flat-namespace name.
type FieldOverlay struct {
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Width    int    `json:"width,omitempty" yaml:"width,omitempty"`
	Tooltip  string `json:"tooltip,omitempty" yaml:"tooltip,omitempty"`
	Icon     string `json:"icon,omitempty" yaml:"icon,omitempty"`
	CSSClass string `json:"cssClass,omitempty" yaml:"cssClass,omitempty"`
}

type documentFile struct {
	Forms map[string]formFile `json:"forms" yaml:"forms"`
}

type formFile struct {
	Fields map[string]FieldOverlay `json:"fields" yaml:"fields"`
}

// LoadFS walks the provided filesystem and parses JSON/YAML overlay files.
// When fsys is nil or no overlay files are present, the returned store is
// empty. A form defined in two files is an error rather than a silent merge.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{forms: make(map[string]FormOverlay)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isOverlayFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("overlay: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for formID, raw := range doc.Forms {
			id := strings.TrimSpace(formID)
			if id == "" {
				return fmt.Errorf("overlay: file %s defines an empty form id", path)
			}
			if existing, exists := store.forms[id]; exists {
				return fmt.Errorf("overlay: duplicate form %q (files %s and %s)", id, existing.Source, path)
			}
			store.forms[id] = FormOverlay{
				ID:     id,
				Source: path,
				Fields: raw.Fields,
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Form returns the overlay for the supplied form id.
func (s *Store) Form(id string) (FormOverlay, bool) {
	if s == nil {
		return FormOverlay{}, false
	}
	overlay, ok := s.forms[id]
	return overlay, ok
}

// Empty reports whether the store holds any overlays.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

// Apply decorates the builder's controls with the overlay's overrides.
// Controls the overlay does not mention are left untouched.
func Apply[C any](b *forms.Builder[C], overlay FormOverlay) *forms.Builder[C] {
	if b == nil || len(overlay.Fields) == 0 {
		return b
	}
	return b.Amend(func(view forms.ControlView) {
		field, ok := overlay.Fields[view.Name()]
		if !ok {
			return
		}
		if field.Label != "" {
			view.SetLabel(field.Label)
		}
		if field.Title != "" {
			view.SetTitle(field.Title)
		}

		var attrs []forms.StyleAttr
		if field.Width > 0 {
			attrs = append(attrs, vanilla.Width(field.Width))
		}
		if field.Tooltip != "" {
			attrs = append(attrs, vanilla.Tooltip(field.Tooltip))
		}
		if field.Icon != "" {
			attrs = append(attrs, vanilla.Icon(field.Icon))
		}
		if field.CSSClass != "" {
			attrs = append(attrs, vanilla.CSSClass(field.CSSClass))
		}
		if len(attrs) > 0 {
			view.Styled(attrs...)
		}
	})
}

func parseDocument(data []byte, source string) (documentFile, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("overlay: file %s is empty", source)
	}

	var doc documentFile
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return documentFile{}, fmt.Errorf("overlay: parse %s: invalid JSON or YAML", source)
}

func isOverlayFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
