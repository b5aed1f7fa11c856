package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/styler/internal/logger"
	"github.com/alexisbeaulieu97/styler/internal/stylesheet"
	styleerrors "github.com/alexisbeaulieu97/styler/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseDocument loads a style document from disk, picking the decoder from
// the file extension (.yaml, .yml or .toml), and validates it.
func ParseDocument(path string, log *logger.Logger) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, styleerrors.NewParseError(path, 0, err)
	}

	var doc *Document
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		doc, err = ParseYAML(path, data)
	case ".toml":
		doc, err = ParseTOML(path, data)
	default:
		return nil, styleerrors.NewParseError(path, 0, fmt.Errorf("unsupported document extension %q", ext))
	}
	if err != nil {
		return nil, err
	}

	if err := ValidateDocument(doc); err != nil {
		return nil, err
	}

	log.Debug("style document loaded", "path", path, "components", len(doc.Components), "container_variants", len(doc.Container))
	return doc, nil
}

type yamlDocument struct {
	Version    string    `yaml:"version"`
	Container  yaml.Node `yaml:"container"`
	Components yaml.Node `yaml:"components"`
}

type yamlComponent struct {
	Text     string            `yaml:"text"`
	Props    map[string]string `yaml:"props"`
	Variants yaml.Node         `yaml:"variants"`
}

// ParseYAML decodes a YAML style document. Mapping order is preserved.
func ParseYAML(path string, data []byte) (*Document, error) {
	var raw yamlDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, styleerrors.NewParseError(path, extractLine(err), err)
	}

	doc := &Document{Path: path, Version: raw.Version}

	err := eachPair(&raw.Container, func(key string, value *yaml.Node) error {
		var rule stylesheet.Rule
		if err := value.Decode(&rule); err != nil {
			return err
		}
		doc.Container = append(doc.Container, NamedRule{Name: key, Rule: rule})
		return nil
	})
	if err != nil {
		return nil, styleerrors.NewParseError(path, extractLine(err), fmt.Errorf("container: %w", err))
	}

	err = eachPair(&raw.Components, func(name string, value *yaml.Node) error {
		var rc yamlComponent
		if err := value.Decode(&rc); err != nil {
			return err
		}
		spec := ComponentSpec{Name: name, Text: rc.Text, Props: rc.Props}
		err := eachPair(&rc.Variants, func(variant string, value *yaml.Node) error {
			var elements map[string]stylesheet.Rule
			if err := value.Decode(&elements); err != nil {
				return err
			}
			spec.Variants = append(spec.Variants, VariantSpec{Name: variant, Elements: elements})
			return nil
		})
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		doc.Components = append(doc.Components, spec)
		return nil
	})
	if err != nil {
		return nil, styleerrors.NewParseError(path, extractLine(err), fmt.Errorf("components: %w", err))
	}

	return doc, nil
}

// eachPair walks a YAML mapping in document order. An absent or null node is
// treated as an empty mapping.
func eachPair(node *yaml.Node, fn func(key string, value *yaml.Node) error) error {
	if node == nil || node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.Tag == "!!null") {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if err := fn(key.Value, value); err != nil {
			return err
		}
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
