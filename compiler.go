package pads

import (
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Compile creates a formatting program from a field specification.
//
// The spec is a comma-separated list of field names, with optional features:
//   - Field width override: "name:20" sets width to 20
//   - Auto width: "name:0" sizes the column to its content
//   - Alignment override: "name:>" right-aligns, "name:20^" centers
//     ('<' left, '>' right, '^' center-left, '=' center-right)
//   - Default expansion: "@default" expands to the default collection
//   - Collection expansion: "@collection_name" expands to collection fields
//
// Examples:
//
//	Compile(reg, "name,age,email")
//	Compile(reg, "name:20,age:5>,email:30")
//	Compile(reg, "@default,extra_field")
//	Compile(reg, "@basic,@perf")
//
// Every invalid token is reported, not just the first one.
func Compile[T any](reg *Registry[T], spec string) (*Program[T], error) {
	return CompileWithOptions(reg, spec, Options{
		Separator: "  ", // Default: two spaces between columns
	})
}

// CompileWithOptions creates a program with custom options.
func CompileWithOptions[T any](reg *Registry[T], spec string, opts Options) (*Program[T], error) {
	if strings.TrimSpace(spec) == "" {
		return nil, errors.New("empty field specification")
	}

	log := opts.Logger
	if log == nil {
		log = discardLogger()
	}

	sp := &specParser[T]{
		reg:       reg,
		log:       log,
		selected:  make(map[string]bool),
		expanding: make(map[string]bool),
	}
	fields := sp.parse(spec, "")
	if !opts.Metric.valid() {
		sp.fail(errors.Errorf("unknown metric %d", int(opts.Metric)), "")
	}
	if err := sp.errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errors.New("no fields specified")
	}

	p := &Program[T]{
		separator: opts.Separator,
		filler:    opts.Filler,
		metric:    opts.Metric,
		excess:    opts.Excess,
		noHeader:  opts.NoHeader,
		log:       log,
	}
	if p.filler == "" {
		p.filler = " "
	}
	if p.excess == nil {
		p.excess = TruncateExcess
	}

	// Build column writers
	p.columns = make([]compiledCol[T], len(fields))
	widths := make([]int, len(fields))
	lastIdx := len(fields) - 1
	for i, f := range fields {
		isLast := i == lastIdx
		noPad := opts.NoPadding || (isLast && !opts.PadLastColumn)
		p.columns[i] = makeColumn(f, p.metric, noPad)
		widths[i] = p.columns[i].width
		log.WithFields(logrus.Fields{
			"field": f.Name,
			"width": f.Width,
			"align": f.Align.String(),
			"kind":  int(f.Kind),
		}).Debug("compiled column")
	}

	// Build header and underline
	if !opts.NoHeader {
		var err error
		if p.header, err = p.appendHeader(nil, widths); err != nil {
			return nil, errors.Wrap(err, "rendering header")
		}
		if !opts.NoUnderline {
			if p.underline, err = p.appendUnderline([]byte{}, widths); err != nil {
				return nil, errors.Wrap(err, "rendering underline")
			}
		}
	}

	return p, nil
}

// specParser expands a field specification into fields, collecting every
// error it meets along the way.
type specParser[T any] struct {
	reg       *Registry[T]
	log       logrus.FieldLogger
	selected  map[string]bool
	expanding map[string]bool
	errs      *multierror.Error
}

func (sp *specParser[T]) fail(err error, context string) {
	if context != "" {
		err = errors.Wrapf(err, "expanding %s", context)
	}
	sp.errs = multierror.Append(sp.errs, err)
}

// parse parses a field specification string. context names the
// collection being expanded, if any.
func (sp *specParser[T]) parse(spec, context string) []Field[T] {
	var fields []Field[T]

	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		// Check for @ prefix (collection or @default)
		if strings.HasPrefix(tok, "@") {
			fields = append(fields, sp.expand(tok[1:], context)...)
			continue
		}

		// Parse field name, optional width and alignment overrides
		fs, err := parseFieldSpec(tok)
		if err != nil {
			sp.fail(err, context)
			continue
		}

		// Look up field
		field, ok := sp.reg.get(fs.name)
		if !ok {
			sp.fail(errors.Errorf("unknown field: %q", fs.name), context)
			continue
		}

		if fs.hasWidth {
			if fs.width < 0 {
				sp.fail(errors.Errorf("invalid width %d for field %q", fs.width, fs.name), context)
				continue
			}
			field.Width = fs.width
		}
		if fs.hasAlign {
			field.Align = fs.align
		}

		if sp.selected[field.Name] {
			sp.log.WithField("field", field.Name).Warn("field selected more than once")
		}
		sp.selected[field.Name] = true

		fields = append(fields, field)
	}

	return fields
}

// expand resolves @name against the registry's collections.
func (sp *specParser[T]) expand(name, context string) []Field[T] {
	collection := name
	if name == "default" {
		collection = sp.reg.primary
		if collection == "" {
			sp.fail(errors.New("no default collection"), context)
			return nil
		}
	}

	defSpec, ok := sp.reg.defaults[collection]
	if !ok {
		sp.fail(errors.Errorf("unknown collection: @%s", name), context)
		return nil
	}
	if sp.expanding[collection] {
		sp.fail(errors.Errorf("collection @%s includes itself", collection), context)
		return nil
	}

	sp.expanding[collection] = true
	defer delete(sp.expanding, collection)
	return sp.parse(defSpec, "@"+name)
}

type fieldSpec struct {
	name     string
	width    int
	hasWidth bool
	align    Alignment
	hasAlign bool
}

// parseFieldSpec parses a single field token (name, name:width,
// name:width<marker> or name:<marker>).
func parseFieldSpec(tok string) (fieldSpec, error) {
	idx := strings.IndexByte(tok, ':')
	if idx < 0 {
		return fieldSpec{name: strings.TrimSpace(tok)}, nil
	}

	fs := fieldSpec{name: strings.TrimSpace(tok[:idx])}
	rest := strings.TrimSpace(tok[idx+1:])

	if rest == "" {
		return fieldSpec{}, errors.Errorf("empty width in %q", tok)
	}

	if align, ok := ParseAlignment(rest[len(rest)-1]); ok {
		fs.align, fs.hasAlign = align, true
		rest = strings.TrimSpace(rest[:len(rest)-1])
	}
	if rest == "" {
		return fs, nil
	}

	width, err := strconv.Atoi(rest)
	if err != nil {
		return fieldSpec{}, errors.Errorf("invalid width %q in %q", rest, tok)
	}
	fs.width, fs.hasWidth = width, true

	return fs, nil
}

// makeColumn resolves a field into a column. Width 0 becomes the header
// width until WriteTable sizes the column to its content.
func makeColumn[T any](f Field[T], metric Metric, noPad bool) compiledCol[T] {
	c := compiledCol[T]{
		name:    f.Name,
		display: f.Display,
		width:   f.Width,
		pad:     f.Align,
	}
	if c.width == 0 {
		c.width = metric.Text(f.Display).Width()
		c.auto = true
	}
	if noPad {
		c.pad = unpadded
	}

	switch f.Kind {
	case KindString:
		c.text = f.GetString

	case KindInt:
		c.text = func(v *T) string {
			return strconv.Itoa(f.GetInt(v))
		}

	case KindFloat:
		prec := f.Precision
		if prec < 0 {
			prec = 2
		}
		c.text = func(v *T) string {
			return strconv.FormatFloat(f.GetFloat(v), 'f', prec, 64)
		}

	case KindCustom:
		c.text = func(v *T) string {
			return string(f.GetCustom(nil, v))
		}

	default:
		// Unknown kind - empty cell
		c.text = func(*T) string { return "" }
	}

	return c
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
