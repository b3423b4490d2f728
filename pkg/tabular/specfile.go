package tabular

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/outstanding/pkg/errors"
)

// specFile is the YAML layout of a table definition file.
type specFile struct {
	Separator   *string      `yaml:"separator"`
	Prefix      string       `yaml:"prefix"`
	Suffix      string       `yaml:"suffix"`
	Border      string       `yaml:"border"`
	HeaderStyle string       `yaml:"header-style"`
	Columns     []columnFile `yaml:"columns"`
}

type columnFile struct {
	Key      string    `yaml:"key"`
	Name     string    `yaml:"name"`
	Width    yaml.Node `yaml:"width"`
	Overflow string    `yaml:"overflow"`
	Edge     string    `yaml:"edge"`
	Marker   string    `yaml:"marker"`
	Indent   int       `yaml:"indent"`
	Anchor   string    `yaml:"anchor"`
	Style    string    `yaml:"style"`
}

// SpecFile is a parsed table definition: the column spec plus the
// table-level presentation choices the file carries.
type SpecFile struct {
	Spec        *Spec
	Border      BorderStyle
	HeaderStyle string
}

// ParseSpecFile decodes a YAML table definition.
//
// Column widths take one of four forms:
//
//	width: 10                   # fixed
//	width: fill                 # equal share of the remainder
//	width: {min: 4, max: 20}    # natural width, clamped
//	width: {fraction: 2}        # weighted share of the remainder
//
// A style of "$value" tags the cell with its own value.
func ParseSpecFile(data []byte) (*SpecFile, error) {
	var f specFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse table definition")
	}

	cols := make([]Column, len(f.Columns))
	for i, cf := range f.Columns {
		col, err := cf.column(i)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}

	var opts []SpecOption
	if f.Separator != nil {
		opts = append(opts, WithSeparator(*f.Separator))
	}
	if f.Prefix != "" {
		opts = append(opts, WithPrefix(f.Prefix))
	}
	if f.Suffix != "" {
		opts = append(opts, WithSuffix(f.Suffix))
	}
	spec, err := NewSpec(cols, opts...)
	if err != nil {
		return nil, err
	}

	border, err := ParseBorderStyle(f.Border)
	if err != nil {
		return nil, err
	}
	return &SpecFile{Spec: spec, Border: border, HeaderStyle: f.HeaderStyle}, nil
}

func (cf columnFile) column(i int) (Column, error) {
	col := Column{Key: cf.Key, Name: cf.Name}

	width, err := parseWidth(&cf.Width)
	if err != nil {
		return col, errors.Wrapf(err, errors.ErrConfiguration, "column %d", i)
	}
	col.Width = width

	edge := EdgeEnd
	switch strings.ToLower(cf.Edge) {
	case "", "end":
	case "start":
		edge = EdgeStart
	default:
		return col, errors.Newf(errors.ErrConfiguration,
			"column %d: edge must be start or end, got %q", i, cf.Edge)
	}

	switch strings.ToLower(cf.Overflow) {
	case "", "truncate":
		col.Overflow = Truncate(edge, cf.Marker)
	case "wrap":
		col.Overflow = Wrap(cf.Indent)
	case "clip":
		col.Overflow = Clip()
	case "expand":
		col.Overflow = Expand()
	default:
		return col, errors.Newf(errors.ErrConfiguration,
			"column %d: unknown overflow %q", i, cf.Overflow)
	}

	switch strings.ToLower(cf.Anchor) {
	case "", "left":
		col.Anchor = AnchorLeft
	case "right":
		col.Anchor = AnchorRight
	default:
		return col, errors.Newf(errors.ErrConfiguration,
			"column %d: anchor must be left or right, got %q", i, cf.Anchor)
	}

	if cf.Style == "$value" {
		col.Style = FromValue()
	} else if cf.Style != "" {
		col.Style = Named(cf.Style)
	}
	return col, nil
}

func parseWidth(n *yaml.Node) (Width, error) {
	switch n.Kind {
	case 0:
		return Width{}, errors.New(errors.ErrConfiguration, "width is required")
	case yaml.ScalarNode:
		if strings.EqualFold(n.Value, "fill") {
			return Fill(), nil
		}
		var fixed int
		if err := n.Decode(&fixed); err != nil {
			return Width{}, errors.Newf(errors.ErrConfiguration,
				"width must be an integer, fill, {min, max} or {fraction}, got %q", n.Value)
		}
		return Fixed(fixed), nil
	case yaml.MappingNode:
		var m struct {
			Min      *int `yaml:"min"`
			Max      *int `yaml:"max"`
			Fraction *int `yaml:"fraction"`
		}
		if err := n.Decode(&m); err != nil {
			return Width{}, errors.Wrap(err, errors.ErrConfiguration, "invalid width")
		}
		switch {
		case m.Fraction != nil:
			return Fraction(*m.Fraction), nil
		case m.Min != nil && m.Max != nil:
			return Bounded(*m.Min, *m.Max), nil
		}
		return Width{}, errors.New(errors.ErrConfiguration,
			"width mapping needs either min and max, or fraction")
	}
	return Width{}, errors.New(errors.ErrConfiguration, "unsupported width form")
}
