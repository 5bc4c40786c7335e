package schema

// ValueKind identifies the semantic type of a config option's value.
type ValueKind int

// Value kinds, from most to least specific.
const (
	KindBoolean ValueKind = iota
	KindInteger
	KindFloat
	KindColor
	KindEnum
	KindText
	KindFont
	KindPath
	KindKeybind
	KindPalette
	KindCommaSeparated
)

// String returns the lowercase name of the kind as used in CLI output.
func (k ValueKind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindColor:
		return "color"
	case KindEnum:
		return "enum"
	case KindText:
		return "text"
	case KindFont:
		return "font"
	case KindPath:
		return "path"
	case KindKeybind:
		return "keybind"
	case KindPalette:
		return "palette"
	case KindCommaSeparated:
		return "comma-separated"
	default:
		return "unknown"
	}
}

// ValueType describes what values a config option accepts. EnumValues is
// populated only for KindEnum; Elem only for KindCommaSeparated.
type ValueType struct {
	Kind       ValueKind
	EnumValues []string
	Elem       *ValueType
}

// Enum builds an enum type from its allowed literal values, in order.
func Enum(values []string) ValueType {
	return ValueType{Kind: KindEnum, EnumValues: values}
}

// CommaSeparated builds a list type with the given element type.
func CommaSeparated(elem ValueType) ValueType {
	return ValueType{Kind: KindCommaSeparated, Elem: &elem}
}

// String returns the kind name; enum values are not included.
func (t ValueType) String() string {
	return t.Kind.String()
}

// Option is one entry of the discovered schema. Options are created during
// parsing and never modified afterwards.
type Option struct {
	Key           string
	DefaultValue  string
	Documentation string
	Type          ValueType
	Category      Category
	Repeatable    bool
}

// Schema is the immutable catalog of all discovered config options, in
// document order of the schema dump.
type Schema struct {
	Options []Option
}

// FindOption returns the option for key, if known.
func (s *Schema) FindOption(key string) (*Option, bool) {
	for i := range s.Options {
		if s.Options[i].Key == key {
			return &s.Options[i], true
		}
	}
	return nil, false
}

// OptionsForCategory returns all options in cat, in schema order.
func (s *Schema) OptionsForCategory(cat Category) []*Option {
	var opts []*Option
	for i := range s.Options {
		if s.Options[i].Category == cat {
			opts = append(opts, &s.Options[i])
		}
	}
	return opts
}
