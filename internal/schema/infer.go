package schema

import (
	"regexp"
	"strconv"
	"strings"
)

// enumBulletRe matches documentation bullet lines of the form:
//
//	  * `value` - Description
var enumBulletRe = regexp.MustCompile("^\\s+\\*\\s+`([^`]+)`")

// manualOverrides covers keys whose type cannot be inferred from shape
// alone. font-size defaults to a whole number but accepts fractions; the
// adjust-* and window-padding keys accept signed offsets and percentages, so
// they must stay text even when the default looks numeric.
var manualOverrides = map[string]ValueType{
	"font-size":                      {Kind: KindFloat},
	"adjust-cell-width":              {Kind: KindText},
	"adjust-cell-height":             {Kind: KindText},
	"adjust-font-baseline":           {Kind: KindText},
	"adjust-underline-position":      {Kind: KindText},
	"adjust-underline-thickness":     {Kind: KindText},
	"adjust-strikethrough-position":  {Kind: KindText},
	"adjust-strikethrough-thickness": {Kind: KindText},
	"adjust-overline-position":       {Kind: KindText},
	"adjust-overline-thickness":      {Kind: KindText},
	"adjust-cursor-thickness":        {Kind: KindText},
	"adjust-cursor-height":           {Kind: KindText},
	"adjust-box-thickness":           {Kind: KindText},
	"window-padding-x":               {Kind: KindText},
	"window-padding-y":               {Kind: KindText},
	"window-padding-balance":         {Kind: KindBoolean},
	"scrollback-limit":               {Kind: KindInteger},
	"image-storage-limit":            {Kind: KindInteger},
	"font-thicken-strength":          {Kind: KindInteger},
	"faint-opacity":                  {Kind: KindFloat},
}

// fontFamilyKeys are the font selection keys.
var fontFamilyKeys = map[string]bool{
	"font-family":             true,
	"font-family-bold":        true,
	"font-family-italic":      true,
	"font-family-bold-italic": true,
}

// repeatableKeys may appear multiple times in a config file, each occurrence
// adding a value rather than overriding the previous one.
var repeatableKeys = map[string]bool{
	"keybind":                    true,
	"palette":                    true,
	"font-family":                true,
	"font-family-bold":           true,
	"font-family-italic":         true,
	"font-family-bold-italic":    true,
	"font-feature":               true,
	"font-variation":             true,
	"font-variation-bold":        true,
	"font-variation-italic":      true,
	"font-variation-bold-italic": true,
	"font-codepoint-map":         true,
	"config-file":                true,
	"custom-shader":              true,
}

// InferType decides the value type of a config option from its key name,
// default value, and documentation. The checks run in a fixed order and the
// first match wins; the function always returns a type.
func InferType(key, defaultValue, docs string) ValueType {
	if t, ok := manualOverrides[key]; ok {
		return t
	}

	if key == "keybind" {
		return ValueType{Kind: KindKeybind}
	}

	if key == "palette" {
		return ValueType{Kind: KindPalette}
	}

	if fontFamilyKeys[key] {
		return ValueType{Kind: KindFont}
	}

	if defaultValue == "true" || defaultValue == "false" {
		return ValueType{Kind: KindBoolean}
	}

	// Color keys are recognized by name; the default is either empty or a
	// hex value. Hex validity is not checked here.
	if isColorKey(key) && (defaultValue == "" || strings.HasPrefix(defaultValue, "#")) {
		return ValueType{Kind: KindColor}
	}

	if key == "config-file" || key == "working-directory" || strings.HasPrefix(key, "custom-shader") {
		return ValueType{Kind: KindPath}
	}

	if values := extractEnumValues(docs); len(values) >= 2 {
		return Enum(values)
	}

	if strings.Contains(defaultValue, ".") {
		if _, err := strconv.ParseFloat(defaultValue, 64); err == nil {
			return ValueType{Kind: KindFloat}
		}
	}

	if defaultValue != "" {
		if _, err := strconv.ParseInt(defaultValue, 10, 64); err == nil {
			return ValueType{Kind: KindInteger}
		}
	}

	if key == "font-synthetic-style" || key == "font-feature" {
		return CommaSeparated(ValueType{Kind: KindText})
	}

	return ValueType{Kind: KindText}
}

func isColorKey(key string) bool {
	return strings.Contains(key, "color") ||
		key == "background" ||
		key == "foreground" ||
		strings.HasPrefix(key, "selection-") ||
		key == "cursor-text" ||
		key == "bold-color" ||
		strings.HasPrefix(key, "split-")
}

// extractEnumValues collects backtick-quoted tokens from documentation
// bullet lists. Tokens containing spaces or "=" and tokens that look like
// examples are skipped. Collection runs to the end of the documentation:
// prose paragraphs between bullets do not terminate the list.
func extractEnumValues(docs string) []string {
	var values []string
	for _, line := range strings.Split(docs, "\n") {
		caps := enumBulletRe.FindStringSubmatch(line)
		if caps == nil {
			continue
		}
		val := caps[1]
		if strings.Contains(val, " ") || strings.Contains(val, "=") || strings.HasPrefix(val, "e.g") {
			continue
		}
		values = append(values, val)
	}
	return values
}

// IsRepeatable reports whether key may legally appear multiple times.
func IsRepeatable(key string) bool {
	return repeatableKeys[key]
}
