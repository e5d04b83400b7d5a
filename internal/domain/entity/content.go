package entity

import (
	"fmt"
	"time"
)

type FieldKind string

const (
	FieldString     FieldKind = "string"
	FieldNumber     FieldKind = "number"
	FieldStringList FieldKind = "stringList"
)

type FieldDef struct {
	Name     string    `json:"name"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`
}

// ContentSchema describes one concrete content type: where its documents
// live, where its images are stored, and which fields a record carries.
type ContentSchema struct {
	Type        string     `json:"type"`
	Collection  string     `json:"collection"`
	AssetFolder string     `json:"assetFolder"`
	Fields      []FieldDef `json:"fields"`
}

// ContentEntity is the generic shape shared by every content type. Concrete
// types differ only by their schema, not by their Go representation.
type ContentEntity struct {
	ID        string                 `json:"id" firestore:"id"`
	Type      string                 `json:"type" firestore:"type"`
	Fields    map[string]interface{} `json:"fields" firestore:"fields"`
	AssetURL  string                 `json:"asset_url,omitempty" firestore:"assetUrl,omitempty"`
	Order     int                    `json:"order" firestore:"order"`
	IsActive  bool                   `json:"is_active" firestore:"isActive"`
	CreatedAt time.Time              `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time              `json:"updated_at" firestore:"updatedAt"`
}

func (s ContentSchema) fieldDef(name string) (FieldDef, bool) {
	for _, def := range s.Fields {
		if def.Name == name {
			return def, true
		}
	}
	return FieldDef{}, false
}

// ValidateNew checks a full field set for a create: every required field must
// be present and every provided value must match its declared kind.
func (s ContentSchema) ValidateNew(fields map[string]interface{}) error {
	for _, def := range s.Fields {
		if !def.Required {
			continue
		}
		value, ok := fields[def.Name]
		if !ok || isEmptyValue(value) {
			return fmt.Errorf("field %q is required", def.Name)
		}
	}
	return s.ValidatePartial(fields)
}

// ValidatePartial checks only the provided fields; absent fields are left
// untouched by an update and are not an error here.
func (s ContentSchema) ValidatePartial(fields map[string]interface{}) error {
	for name, value := range fields {
		def, ok := s.fieldDef(name)
		if !ok {
			return fmt.Errorf("field %q is not part of %s", name, s.Type)
		}
		if err := checkKind(def, value); err != nil {
			return err
		}
	}
	return nil
}

func checkKind(def FieldDef, value interface{}) error {
	switch def.Kind {
	case FieldString:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("field %q must be a string", def.Name)
		}
	case FieldNumber:
		switch value.(type) {
		case int, int64, float64:
		default:
			return fmt.Errorf("field %q must be a number", def.Name)
		}
	case FieldStringList:
		if _, ok := value.([]string); !ok {
			return fmt.Errorf("field %q must be a list of strings", def.Name)
		}
	default:
		return fmt.Errorf("field %q has unknown kind %q", def.Name, def.Kind)
	}
	return nil
}

func isEmptyValue(value interface{}) bool {
	switch v := value.(type) {
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case nil:
		return true
	}
	return false
}
