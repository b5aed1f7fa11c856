package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/alexisbeaulieu97/styler/internal/stylesheet"
	styleerrors "github.com/alexisbeaulieu97/styler/pkg/errors"
)

type tomlDocument struct {
	Version    string                    `toml:"version"`
	Container  map[string]stylesheet.Rule `toml:"container"`
	Components map[string]tomlComponent   `toml:"components"`
}

type tomlComponent struct {
	Text     string                                `toml:"text"`
	Props    map[string]string                     `toml:"props"`
	Variants map[string]map[string]stylesheet.Rule `toml:"variants"`
}

// ParseTOML decodes a TOML style document. TOML tables are unordered once
// decoded, so declaration order is recovered from the decoder's key metadata.
func ParseTOML(path string, data []byte) (*Document, error) {
	var raw tomlDocument
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		line := 0
		var perr toml.ParseError
		if errors.As(err, &perr) {
			line = perr.Position.Line
		}
		return nil, styleerrors.NewParseError(path, line, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, styleerrors.NewParseError(path, 0, fmt.Errorf("unknown key %q", undecoded[0].String()))
	}

	keys := md.Keys()
	doc := &Document{Path: path, Version: raw.Version}

	for _, name := range orderedChildren(keys, mapKeys(raw.Container), "container") {
		doc.Container = append(doc.Container, NamedRule{Name: name, Rule: raw.Container[name]})
	}

	for _, name := range orderedChildren(keys, mapKeys(raw.Components), "components") {
		rc := raw.Components[name]
		spec := ComponentSpec{Name: name, Text: rc.Text, Props: rc.Props}
		for _, variant := range orderedChildren(keys, mapKeys(rc.Variants), "components", name, "variants") {
			spec.Variants = append(spec.Variants, VariantSpec{Name: variant, Elements: rc.Variants[variant]})
		}
		doc.Components = append(doc.Components, spec)
	}

	return doc, nil
}

// orderedChildren returns the names in present ordered by their first
// appearance directly below prefix in keys. Names never seen in keys follow
// in lexical order.
func orderedChildren(keys []toml.Key, present []string, prefix ...string) []string {
	want := make(map[string]bool, len(present))
	for _, name := range present {
		want[name] = true
	}

	out := make([]string, 0, len(present))
	for _, key := range keys {
		if len(key) <= len(prefix) || !hasPrefix(key, prefix) {
			continue
		}
		child := key[len(prefix)]
		if want[child] {
			out = append(out, child)
			delete(want, child)
		}
	}

	rest := make([]string, 0, len(want))
	for name := range want {
		rest = append(rest, name)
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func hasPrefix(key toml.Key, prefix []string) bool {
	for i, segment := range prefix {
		if key[i] != segment {
			return false
		}
	}
	return true
}

func mapKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
