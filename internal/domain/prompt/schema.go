package prompt

import (
	"github.com/okian/teamforge/internal/domain/model"
)

// Type is a JSON value kind in a response schema.
type Type string

// Schema value kinds.
const (
	TypeObject Type = "object"
	TypeArray  Type = "array"
	TypeString Type = "string"
)

// Schema is the subset of JSON schema the generation service understands.
type Schema struct {
	Type        Type
	Description string
	Properties  map[string]*Schema
	// Order lists Properties in the order the service should emit them.
	Order    []string
	Items    *Schema
	Enum     []string
	Required []string
}

// PlanSchema returns the fixed output contract shared by every mode. Each
// call returns a new tree.
func PlanSchema() *Schema {
	difficulties := make([]string, 0, len(model.Difficulties()))
	for _, d := range model.Difficulties() {
		difficulties = append(difficulties, string(d))
	}

	drill := &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"name":        {Type: TypeString, Description: "Name of the drill or exercise"},
			"duration":    {Type: TypeString, Description: "Duration or Sets/Reps (e.g. '10 mins' or '3x10 reps')"},
			"category":    {Type: TypeString, Description: "Category: 'Pool Conditioning', 'Weight Room', 'Rehab', or Skill Category"},
			"description": {Type: TypeString, Description: "Step-by-step instructions"},
			"focus":       {Type: TypeString, Description: "What specifically this improves"},
			"difficulty":  {Type: TypeString, Enum: difficulties},
		},
		Order:    []string{"name", "duration", "category", "description", "focus", "difficulty"},
		Required: []string{"name", "duration", "category", "description", "focus", "difficulty"},
	}

	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"title":   {Type: TypeString, Description: "Creative title for the session"},
			"summary": {Type: TypeString, Description: "Brief overview of the goals"},
			"drills":  {Type: TypeArray, Items: drill},
		},
		Order:    []string{"title", "summary", "drills"},
		Required: []string{"title", "summary", "drills"},
	}
}
