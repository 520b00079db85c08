package services

import (
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"movie-dashboard/utils"
)

// genreSeparator joins genre names inside one stored genres value.
const genreSeparator = "|"

type genreEntry struct {
	ID   any     `json:"id"`
	Name *string `json:"name"`
}

// FlattenGenres turns a list-of-objects literal such as
// [{"id": 28, "name": "Action"}, {"id": 12, "name": "Adventure"}] into
// "Action|Adventure". Python-style literals with single quotes are accepted
// too. A name holding the separator is split into separate names. Names are
// trimmed and empty names skipped, so every stored segment is non-empty.
//
// ok is false when the value cannot be parsed, an entry has no string name,
// or no names remain. FlattenGenres never panics.
func FlattenGenres(raw string) (genres string, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	var entries []genreEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		converted, convOK := pyLiteralToJSON(raw)
		if !convOK {
			return "", false
		}
		entries = nil
		if err := json.Unmarshal([]byte(converted), &entries); err != nil {
			return "", false
		}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Name == nil {
			return "", false
		}
		for _, name := range strings.Split(*e.Name, genreSeparator) {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}
	if len(names) == 0 {
		return "", false
	}
	return strings.Join(names, genreSeparator), true
}

// SplitGenres breaks genre combinations into distinct, sorted genre names.
func SplitGenres(combinations []string) []string {
	set := utils.NewNameSet()
	for _, combo := range combinations {
		for _, name := range strings.Split(combo, genreSeparator) {
			if name = strings.TrimSpace(name); name != "" {
				set.Add(name)
			}
		}
	}
	names := set.Values()
	sort.Strings(names)
	return names
}

// pyLiteralToJSON rewrites a Python literal (single-quoted strings, True,
// False, None) as JSON. ok is false for unterminated strings.
func pyLiteralToJSON(s string) (string, bool) {
	var b strings.Builder
	b.Grow(len(s) + 8)

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '\'' || ch == '"':
			end, ok := writeQuoted(&b, s, i, ch)
			if !ok {
				return "", false
			}
			i = end
		case isIdentStart(ch):
			j := i
			for j < len(s) && isIdentStart(s[j]) {
				j++
			}
			switch word := s[i:j]; word {
			case "True":
				b.WriteString("true")
			case "False":
				b.WriteString("false")
			case "None":
				b.WriteString("null")
			default:
				b.WriteString(word)
			}
			i = j - 1
		default:
			b.WriteByte(ch)
		}
	}
	return b.String(), true
}

// writeQuoted copies the string literal starting at s[start] as a JSON string
// and returns the index of its closing quote.
func writeQuoted(b *strings.Builder, s string, start int, quote byte) (int, bool) {
	b.WriteByte('"')
	for i := start + 1; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '\\' && i+1 < len(s):
			next := s[i+1]
			if next == '\'' {
				b.WriteByte('\'')
			} else {
				b.WriteByte('\\')
				b.WriteByte(next)
			}
			i++
		case ch == quote:
			b.WriteByte('"')
			return i, true
		case ch == '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(ch)
		}
	}
	return 0, false
}

func isIdentStart(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}
