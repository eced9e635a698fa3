package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// Checks that every required property exists and has the type declared by the schema.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema map[string]any
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	defs, _ := schema["$defs"].(map[string]any)
	if err := verifyObject(schema, configMap, defs, ""); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// verifyObject checks value against an object schema, resolving local $ref links
func verifyObject(schema, value map[string]any, defs map[string]any, path string) error {
	schema, err := resolveRef(schema, defs)
	if err != nil {
		return err
	}

	required, _ := schema["required"].([]any)
	for _, r := range required {
		name, _ := r.(string)
		if _, ok := value[name]; !ok {
			return fmt.Errorf("%s is required", join(path, name))
		}
	}

	props, _ := schema["properties"].(map[string]any)
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v, ok := value[name]
		if !ok {
			continue
		}
		propSchema, _ := props[name].(map[string]any)
		propSchema, err := resolveRef(propSchema, defs)
		if err != nil {
			return err
		}
		if err := verifyType(propSchema, v, join(path, name)); err != nil {
			return err
		}
		if obj, ok := v.(map[string]any); ok {
			if err := verifyObject(propSchema, obj, defs, join(path, name)); err != nil {
				return err
			}
		}
	}
	return nil
}

func verifyType(schema map[string]any, v any, path string) error {
	typ, _ := schema["type"].(string)
	ok := true
	switch typ {
	case "object":
		_, ok = v.(map[string]any)
	case "string":
		_, ok = v.(string)
	case "integer":
		f, isNum := v.(float64)
		ok = isNum && f == float64(int64(f))
	case "number":
		_, ok = v.(float64)
	case "boolean":
		_, ok = v.(bool)
	}
	if !ok {
		return fmt.Errorf("%s must be %s, got %T", path, typ, v)
	}
	return nil
}

func resolveRef(schema, defs map[string]any) (map[string]any, error) {
	ref, ok := schema["$ref"].(string)
	if !ok {
		return schema, nil
	}
	def, ok := defs[strings.TrimPrefix(ref, "#/$defs/")].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unknown schema reference %q", ref)
	}
	return def, nil
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
