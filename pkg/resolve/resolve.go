// Package resolve maps logical fields to the actual column names of a
// loosely specified source.
//
// Every logical field has an ordered list of acceptable spellings. The first
// spelling present in the source wins. Matching is exact: case and form
// matter and there is no fuzzy matching. Functions in this package are pure
// and work on plain column-name slices, independent of any table type.
package resolve

import (
	"slices"
)

// Resolve returns the first candidate present among columns.
// The boolean is false when no candidate matches.
func Resolve(columns []string, candidates []string) (string, bool) {
	for _, c := range candidates {
		if slices.Contains(columns, c) {
			return c, true
		}
	}
	return "", false
}

// Field declares how one logical field is found in a source.
type Field struct {
	// Name is the logical (canonical) name of the field.
	Name string

	// Candidates are accepted column spellings in priority order.
	// An empty list means the field is looked up by Name only.
	Candidates []string

	// Required fields make ResolveFields fail when absent.
	Required bool

	// Default is the documented substitute value for an absent optional
	// field. Callers decide how to apply it.
	Default string
}

// Resolution is the outcome of resolving a set of fields.
type Resolution struct {
	// Columns maps a logical field name to the matched source column.
	// Absent optional fields have no entry.
	Columns map[string]string

	// Absent lists optional fields with no matching column, in
	// declaration order.
	Absent []string
}

// Column returns the source column for a logical field.
func (r Resolution) Column(name string) (string, bool) {
	col, ok := r.Columns[name]
	return col, ok
}

// ResolveFields resolves every field against columns. If any required field
// has no matching column, it returns a MissingColumnsError naming all of
// them.
func ResolveFields(columns []string, fields []Field) (Resolution, error) {
	res := Resolution{Columns: make(map[string]string, len(fields))}
	var missing []string
	for _, f := range fields {
		candidates := f.Candidates
		if len(candidates) == 0 {
			candidates = []string{f.Name}
		}
		col, ok := Resolve(columns, candidates)
		switch {
		case ok:
			res.Columns[f.Name] = col
		case f.Required:
			missing = append(missing, f.Name)
		default:
			res.Absent = append(res.Absent, f.Name)
		}
	}
	if len(missing) > 0 {
		return res, &MissingColumnsError{Missing: missing}
	}
	return res, nil
}
