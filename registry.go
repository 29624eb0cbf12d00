package pads

import (
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"
)

// Registry stores field definitions for type T.
//
// Create a registry with NewRegistry, then use the Field() method to
// register fields via a fluent builder API. A Registry is not safe for
// concurrent registration; compile programs once it is complete.
type Registry[T any] struct {
	fields      map[string]Field[T]
	index       map[string]string // lowercase -> canonical name
	collections map[string][]string
	defaults    map[string]string
	primary     string // collection used by @default
}

// NewRegistry creates a new field registry for type T.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		fields:      make(map[string]Field[T]),
		index:       make(map[string]string),
		collections: make(map[string][]string),
		defaults:    make(map[string]string),
	}
}

// Field starts building a new field definition.
//
// Use the returned FieldBuilder to configure the field, then call Register()
// to add it to the registry. Fields are left-aligned and sized to their
// content unless Width and Align say otherwise.
//
// Example:
//
//	reg.Field("age", "Age", "Age in years").
//	    Width(5).
//	    Align(pads.Right).
//	    Int(func(p *Person) int { return p.Age }).
//	    Register()
func (r *Registry[T]) Field(name, display, description string) *FieldBuilder[T] {
	return &FieldBuilder[T]{
		registry: r,
		field: Field[T]{
			Name:        name,
			Display:     display,
			Description: description,
		},
	}
}

// DefineCollection creates a named collection of fields.
//
// The defaultSpec is the comma-separated list of fields used when this
// collection is referenced with @collection_name. The fields list contains
// all fields that belong to this collection (for help display). The first
// collection defined is also what @default expands to, unless SetDefaults
// picks another one.
//
// Example:
//
//	reg.DefineCollection("basic", "name,age", "name", "age", "email", "phone")
func (r *Registry[T]) DefineCollection(name, defaultSpec string, fields ...string) {
	r.collections[name] = fields
	r.defaults[name] = defaultSpec
	if r.primary == "" {
		r.primary = name
	}
}

// SetDefaults sets the default field specification for a collection and
// makes it the one @default expands to.
func (r *Registry[T]) SetDefaults(collectionName, spec string) {
	r.defaults[collectionName] = spec
	r.primary = collectionName
}

// ListFields returns all registered field names in alphabetical order.
func (r *Registry[T]) ListFields() []string {
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListCollections returns all collection names in alphabetical order.
func (r *Registry[T]) ListCollections() []string {
	names := make([]string, 0, len(r.collections))
	for name := range r.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PrintHelp writes formatted help for all fields to w.
//
// If collection is non-empty, only fields in that collection are shown.
func (r *Registry[T]) PrintHelp(w io.Writer, collection string) {
	var fieldsToShow []string

	if collection != "" {
		if fields, ok := r.collections[collection]; ok {
			fieldsToShow = fields
		} else {
			fmt.Fprintf(w, "Unknown collection: %s\n", collection)
			return
		}
	} else {
		fieldsToShow = r.ListFields()
	}

	// Group by category
	byCat := make(map[string][]Field[T])
	for _, name := range fieldsToShow {
		if f, ok := r.fields[name]; ok {
			cat := f.Category
			if cat == "" {
				cat = "General"
			}
			byCat[cat] = append(byCat[cat], f)
		}
	}

	// Sort categories
	cats := make([]string, 0, len(byCat))
	for cat := range byCat {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	// Print each category
	for _, cat := range cats {
		fmt.Fprintf(w, "\n%s:\n", cat)
		fields := byCat[cat]

		names := []string{"Field"}
		displays := []string{"Display"}
		descriptions := []string{"Description"}
		for _, f := range fields {
			names = append(names, f.Name)
			displays = append(displays, f.Display)
			descriptions = append(descriptions, f.Description)
		}

		nameCol := AlignColumnLeft(Texts[UnicodeWidth](names...))
		displayCol := AlignColumnLeft(Texts[UnicodeWidth](displays...))
		for _, desc := range descriptions {
			name, _ := nameCol.Next()
			display, _ := displayCol.Next()
			fmt.Fprintf(w, "  %s  %s  %s\n", name, display, desc)
		}
	}

	// Show collections if no specific collection requested
	if collection == "" && len(r.collections) > 0 {
		fmt.Fprintf(w, "\nCollections:\n")
		for _, name := range r.ListCollections() {
			def := r.defaults[name]
			if def == "" {
				def = "(no default)"
			}
			fmt.Fprintf(w, "  @%s  Default: %s\n", AlignLeft(UnicodeWidth(name), 15), def)
		}
	}
}

// get retrieves a field by name (case-insensitive).
func (r *Registry[T]) get(name string) (Field[T], bool) {
	// Try exact match first
	if f, ok := r.fields[name]; ok {
		return f, true
	}

	// Try case-insensitive
	if canonical, ok := r.index[strings.ToLower(name)]; ok {
		return r.fields[canonical], true
	}

	var zero Field[T]
	return zero, false
}

// FieldBuilder provides a fluent API for field construction.
type FieldBuilder[T any] struct {
	registry *Registry[T]
	field    Field[T]
}

// Width sets the column width in display columns. Zero sizes the column
// to its content when the table is written with Program.WriteTable.
func (b *FieldBuilder[T]) Width(w int) *FieldBuilder[T] {
	b.field.Width = w
	return b
}

// Align sets where the cell text sits within the column.
func (b *FieldBuilder[T]) Align(a Alignment) *FieldBuilder[T] {
	b.field.Align = a
	return b
}

// Category sets the category for help organization.
func (b *FieldBuilder[T]) Category(cat string) *FieldBuilder[T] {
	b.field.Category = cat
	return b
}

// String configures this field as a string type.
//
// The provided function extracts the string value from the object.
func (b *FieldBuilder[T]) String(fn func(*T) string) *FieldBuilder[T] {
	b.field.Kind = KindString
	b.field.GetString = fn
	return b
}

// Int configures this field as an integer type.
//
// The provided function extracts the int value from the object.
func (b *FieldBuilder[T]) Int(fn func(*T) int) *FieldBuilder[T] {
	b.field.Kind = KindInt
	b.field.GetInt = fn
	return b
}

// Float configures this field as a floating-point type.
//
// The precision parameter specifies the number of decimal places (e.g., 2 for "3.14").
func (b *FieldBuilder[T]) Float(precision int, fn func(*T) float64) *FieldBuilder[T] {
	b.field.Kind = KindFloat
	b.field.Precision = precision
	b.field.GetFloat = fn
	return b
}

// Custom configures this field with a custom formatter.
//
// The formatter appends formatted bytes to dst and returns the result.
// This allows for complex formatting logic (e.g., timestamps, byte counts).
//
// Example:
//
//	Custom(func(dst []byte, p *Person) []byte {
//	    return append(dst, formatTimestamp(p.Created)...)
//	})
func (b *FieldBuilder[T]) Custom(fn func(dst []byte, v *T) []byte) *FieldBuilder[T] {
	b.field.Kind = KindCustom
	b.field.GetCustom = fn
	return b
}

// Register adds this field to the registry, replacing any field with the
// same name.
//
// This is the final step in the builder chain.
func (b *FieldBuilder[T]) Register() {
	name := b.field.Name
	if old, ok := b.registry.index[strings.ToLower(name)]; ok && old != name {
		delete(b.registry.fields, old)
	}
	b.registry.fields[name] = b.field
	b.registry.index[strings.ToLower(name)] = name
}

// CollectionFields returns the member fields of a collection, in the order
// they were given to DefineCollection.
func (r *Registry[T]) CollectionFields(name string) ([]string, bool) {
	fields, ok := r.collections[name]
	return slices.Clone(fields), ok
}
