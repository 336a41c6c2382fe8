// Package argtable prints run arguments as an aligned two-column table.
package argtable

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxLen is the value column cap used when Format gets maxLen <= 0.
const DefaultMaxLen = 20

const (
	keyTitle   = "Arguments"
	valueTitle = "Values"
)

// Values is a bag of named run arguments.
type Values map[string]any

// Format renders v as a table framed by "=" rules, one sorted row per
// argument. Keys in exclude are left out and nil values get no row.
// Values longer than maxLen are cut to maxLen-3 characters plus "...".
//
// Example:
//
//	====================
//	 Arguments | Values
//	====================
//	 lr        | 0.001
//	====================
func Format(v Values, exclude []string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}
	skip := make(map[string]bool, len(exclude))
	for _, k := range exclude {
		skip[k] = true
	}

	var keys []string
	keyW, valW := width(keyTitle), 0
	for k, val := range v {
		if skip[k] {
			continue
		}
		keys = append(keys, k)
		keyW = max(keyW, width(k))
		valW = max(valW, width(fmt.Sprint(val)))
	}
	sort.Strings(keys)
	valW = max(width(valueTitle), min(valW, maxLen))

	rule := strings.Repeat("=", keyW+valW+5)
	var b strings.Builder
	b.WriteString("\n" + rule + "\n")
	b.WriteString(" " + pad(keyTitle, keyW) + " | " + pad(valueTitle, valW) + " \n")
	b.WriteString(rule + "\n")
	for _, k := range keys {
		if v[k] == nil {
			continue
		}
		val := strings.ReplaceAll(fmt.Sprint(v[k]), "\t", `\t`)
		if width(val) > maxLen {
			val = string([]rune(val)[:max(maxLen-3, 0)]) + "..."
		}
		b.WriteString(" " + pad(k, keyW) + " | " + pad(val, valW) + "\n")
	}
	b.WriteString(rule)
	return b.String()
}

func width(s string) int {
	return utf8.RuneCountInString(s)
}

func pad(s string, w int) string {
	return s + strings.Repeat(" ", max(w-width(s), 0))
}

// FromStruct collects the exported fields of a struct (or pointer to one).
// The key is the field's `arg` tag, or its name in snake_case; a tag of "-"
// skips the field. Pointers are dereferenced; nil pointers become nil values.
func FromStruct(s any) (Values, error) {
	rv := reflect.ValueOf(s)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("argtable: nil %s", rv.Type())
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("argtable: want a struct, got %s", rv.Kind())
	}

	rt := rv.Type()
	out := make(Values, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Tag.Get("arg")
		if name == "-" {
			continue
		}
		if name == "" {
			name = snakeCase(field.Name)
		}

		fv := rv.Field(i)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				out[name] = nil
				continue
			}
			fv = fv.Elem()
		}
		out[name] = fv.Interface()
	}
	return out, nil
}

// snakeCase converts "LearningRate" to "learning_rate" and "EmbSizeID" to "emb_size_id".
func snakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1])
			if prevLower || nextLower {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
