package ghostty

import (
	"sort"
	"strings"
)

// FontFamily is a font family with its available styles.
type FontFamily struct {
	Name   string   `json:"name"`
	Styles []string `json:"styles"`
}

// ListFonts loads installed fonts from ghostty +list-fonts.
func (c *Client) ListFonts() ([]FontFamily, error) {
	output, err := c.Run("+list-fonts")
	if err != nil {
		return nil, err
	}
	return ParseFontList(output), nil
}

// ParseFontList parses +list-fonts output. Family names start at column
// zero with their styles indented below; blank lines separate families.
// Families are returned sorted case-insensitively by name.
func ParseFontList(output string) []FontFamily {
	var fonts []FontFamily
	var currentName string
	var currentStyles []string
	haveFamily := false

	flush := func() {
		if haveFamily {
			fonts = append(fonts, FontFamily{Name: currentName, Styles: currentStyles})
			currentStyles = nil
			haveFamily = false
		}
	}

	for _, line := range strings.Split(output, "\n") {
		if line == "" {
			flush()
			continue
		}

		if strings.HasPrefix(line, "  ") || strings.HasPrefix(line, "\t") {
			currentStyles = append(currentStyles, strings.TrimSpace(line))
		} else {
			flush()
			currentName = strings.TrimSpace(line)
			haveFamily = true
		}
	}
	flush()

	sort.Slice(fonts, func(i, j int) bool {
		return strings.ToLower(fonts[i].Name) < strings.ToLower(fonts[j].Name)
	})
	return fonts
}
