package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/okian/teamforge/internal/domain/model"
	"github.com/okian/teamforge/internal/domain/prompt"
)

// ValidatePlan checks text against schema and decodes it. Any mismatch,
// including an empty drill list, wraps ErrSchemaViolation.
func ValidatePlan(text string, schema *prompt.Schema) (model.RawPlan, error) {
	if schema == nil {
		schema = prompt.PlanSchema()
	}

	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return model.RawPlan{}, fmt.Errorf("%w: not json: %w", ErrSchemaViolation, err)
	}
	if err := check(doc, schema, "$"); err != nil {
		return model.RawPlan{}, fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}

	var plan model.RawPlan
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&plan); err != nil {
		return model.RawPlan{}, fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}
	if len(plan.Drills) == 0 {
		return model.RawPlan{}, fmt.Errorf("%w: no drills", ErrSchemaViolation)
	}
	return plan, nil
}

// check walks v against s. path names the value in error messages.
func check(v any, s *prompt.Schema, path string) error {
	switch s.Type {
	case prompt.TypeObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("%s: want object, got %s", path, kind(v))
		}
		for _, name := range s.Required {
			if _, ok := obj[name]; !ok {
				return fmt.Errorf("%s: missing required field %q", path, name)
			}
		}
		for name, fv := range obj {
			ps, ok := s.Properties[name]
			if !ok {
				return fmt.Errorf("%s: unexpected field %q", path, name)
			}
			if err := check(fv, ps, path+"."+name); err != nil {
				return err
			}
		}
		return nil

	case prompt.TypeArray:
		arr, ok := v.([]any)
		if !ok {
			return fmt.Errorf("%s: want array, got %s", path, kind(v))
		}
		if s.Items == nil {
			return nil
		}
		for i, item := range arr {
			if err := check(item, s.Items, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil

	case prompt.TypeString:
		str, ok := v.(string)
		if !ok {
			return fmt.Errorf("%s: want string, got %s", path, kind(v))
		}
		if len(s.Enum) > 0 && !slices.Contains(s.Enum, str) {
			return fmt.Errorf("%s: %q not in %v", path, str, s.Enum)
		}
		return nil

	default:
		return fmt.Errorf("%s: unsupported schema type %q", path, s.Type)
	}
}

func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
