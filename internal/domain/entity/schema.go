package entity

// Schemas lists every content type managed by the admin console. Adding a
// type here is all it takes to get the full CRUD surface for it.
var Schemas = map[string]ContentSchema{
	"advisors": {
		Type:        "advisors",
		Collection:  "advisors",
		AssetFolder: "advisors",
		Fields: []FieldDef{
			{Name: "name", Kind: FieldString, Required: true},
			{Name: "organization", Kind: FieldString},
			{Name: "role", Kind: FieldString},
			{Name: "bio", Kind: FieldString},
		},
	},
	"facilities": {
		Type:        "facilities",
		Collection:  "facilities",
		AssetFolder: "facilities",
		Fields: []FieldDef{
			{Name: "name", Kind: FieldString, Required: true},
			{Name: "description", Kind: FieldString},
			{Name: "floor", Kind: FieldString},
		},
	},
	"history": {
		Type:        "history",
		Collection:  "history_items",
		AssetFolder: "history",
		Fields: []FieldDef{
			{Name: "year", Kind: FieldNumber, Required: true},
			{Name: "title", Kind: FieldString, Required: true},
			{Name: "description", Kind: FieldString},
		},
	},
	"programs": {
		Type:        "programs",
		Collection:  "programs",
		AssetFolder: "programs",
		Fields: []FieldDef{
			{Name: "title", Kind: FieldString, Required: true},
			{Name: "summary", Kind: FieldString},
			{Name: "description", Kind: FieldString},
			{Name: "capacity", Kind: FieldNumber},
			{Name: "features", Kind: FieldStringList},
		},
	},
	"posts": {
		Type:        "posts",
		Collection:  "posts",
		AssetFolder: "posts",
		Fields: []FieldDef{
			{Name: "title", Kind: FieldString, Required: true},
			{Name: "body", Kind: FieldString, Required: true},
			{Name: "author", Kind: FieldString},
			{Name: "tags", Kind: FieldStringList},
		},
	},
	"experts": {
		Type:        "experts",
		Collection:  "experts",
		AssetFolder: "experts",
		Fields: []FieldDef{
			{Name: "name", Kind: FieldString, Required: true},
			{Name: "specialty", Kind: FieldString},
			{Name: "career", Kind: FieldStringList},
		},
	},
	"center-info": {
		Type:        "center-info",
		Collection:  "center_info",
		AssetFolder: "center",
		Fields: []FieldDef{
			{Name: "name", Kind: FieldString, Required: true},
			{Name: "description", Kind: FieldString},
			{Name: "phone", Kind: FieldString},
			{Name: "email", Kind: FieldString},
			{Name: "address", Kind: FieldString},
		},
	},
	"visions": {
		Type:        "visions",
		Collection:  "visions",
		AssetFolder: "visions",
		Fields: []FieldDef{
			{Name: "title", Kind: FieldString, Required: true},
			{Name: "statement", Kind: FieldString},
			{Name: "goals", Kind: FieldStringList},
		},
	},
	"locations": {
		Type:        "locations",
		Collection:  "locations",
		AssetFolder: "locations",
		Fields: []FieldDef{
			{Name: "name", Kind: FieldString, Required: true},
			{Name: "address", Kind: FieldString, Required: true},
			{Name: "phone", Kind: FieldString},
			{Name: "directions", Kind: FieldString},
		},
	},
}

func SchemaFor(contentType string) (ContentSchema, bool) {
	schema, ok := Schemas[contentType]
	return schema, ok
}
