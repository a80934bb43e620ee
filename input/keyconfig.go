package input

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// ParseKey resolves a logical key name
func ParseKey(name string) (Key, error) {
	for k := KeyLeft; k < keyCount; k++ {
		if keyNames[k] == name {
			return k, nil
		}
	}
	if name == keyNames[KeyNone] {
		return KeyNone, nil
	}
	return KeyNone, fmt.Errorf("unknown key name %q", name)
}

// Bind applies rune overrides such as {"w": "up", "space": "x"}
// Binding to "none" removes the rune; on error the table is left unchanged
func (t *KeyTable) Bind(bindings map[string]string) error {
	type binding struct {
		r   rune
		key Key
	}

	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	parsed := make([]binding, 0, len(bindings))
	for _, name := range names {
		r, ok := runeAliases[name]
		if !ok {
			if utf8.RuneCountInString(name) != 1 {
				return fmt.Errorf("keys.%s: expected a single character or alias", name)
			}
			r, _ = utf8.DecodeRuneInString(name)
		}
		key, err := ParseKey(bindings[name])
		if err != nil {
			return fmt.Errorf("keys.%s: %w", name, err)
		}
		parsed = append(parsed, binding{r, key})
	}

	for _, b := range parsed {
		if b.key == KeyNone {
			delete(t.Runes, b.r)
			continue
		}
		t.Runes[b.r] = b.key
	}
	return nil
}
