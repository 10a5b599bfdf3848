package codegen

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// TagName is the struct tag key read for field directives.
const TagName = "structmap"

// directivePrefix starts structmap comment directives.
const directivePrefix = "//structmap:"

// TagItem is one entry of a structmap tag or directive: either a flag
// ("-") or a key=value pair ("name=id").
type TagItem struct {
	Key      string
	Value    string
	HasValue bool
}

// ParseTagItems splits tag content into items, in order and keeping
// duplicates so callers can reject repeated keys.
// Items are separated by commas or spaces; values may be quoted with
// single or double quotes to include either.
func ParseTagItems(tag string) ([]TagItem, error) {
	var parts []string
	var current strings.Builder
	inSingleQuote := false
	inDoubleQuote := false

	for i := 0; i < len(tag); i++ {
		char := tag[i]

		switch {
		case char == '\'' && !inDoubleQuote:
			inSingleQuote = !inSingleQuote
			current.WriteByte(char)
		case char == '"' && !inSingleQuote:
			inDoubleQuote = !inDoubleQuote
			current.WriteByte(char)
		case (char == ',' || char == ' ' || char == '\t') && !inSingleQuote && !inDoubleQuote:
			if part := strings.TrimSpace(current.String()); part != "" {
				parts = append(parts, part)
			}
			current.Reset()
		default:
			current.WriteByte(char)
		}
	}
	if inSingleQuote || inDoubleQuote {
		return nil, fmt.Errorf("unterminated quote in %q", tag)
	}
	if part := strings.TrimSpace(current.String()); part != "" {
		parts = append(parts, part)
	}

	items := make([]TagItem, 0, len(parts))
	for _, part := range parts {
		idx := strings.Index(part, "=")
		if idx < 0 {
			items = append(items, TagItem{Key: part})
			continue
		}
		key := strings.TrimSpace(part[:idx])
		if key == "" {
			return nil, fmt.Errorf("empty key in %q", part)
		}
		items = append(items, TagItem{
			Key:      key,
			Value:    unquoteValue(strings.TrimSpace(part[idx+1:])),
			HasValue: true,
		})
	}
	return items, nil
}

// unquoteValue removes surrounding single or double quotes from a value.
func unquoteValue(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			return value[1 : len(value)-1]
		}
	}
	return value
}

// lookupTag returns the structmap entry of a field tag literal.
func lookupTag(lit string) (string, bool, error) {
	raw, err := strconv.Unquote(lit)
	if err != nil {
		return "", false, fmt.Errorf("invalid tag literal %s: %w", lit, err)
	}
	v, ok := reflect.StructTag(raw).Lookup(TagName)
	return v, ok, nil
}

// directives returns the content of //structmap: lines with the given
// verb prefix removed, e.g. verb "derive" on "//structmap:derive ToMap"
// yields "ToMap". An empty verb returns whole directive bodies.
func directives(lines []string, verb string) []string {
	var res []string
	for _, line := range lines {
		if !strings.HasPrefix(line, directivePrefix) {
			continue
		}
		body := strings.TrimPrefix(line, directivePrefix)
		if verb == "" {
			res = append(res, strings.TrimSpace(body))
			continue
		}
		if body == verb || strings.HasPrefix(body, verb+" ") {
			res = append(res, strings.TrimSpace(strings.TrimPrefix(body, verb)))
		}
	}
	return res
}
