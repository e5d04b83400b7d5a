package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNewRequiresFields(t *testing.T) {
	schema, ok := SchemaFor("advisors")
	assert.True(t, ok)

	err := schema.ValidateNew(map[string]interface{}{"organization": "X University"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "name")

	err = schema.ValidateNew(map[string]interface{}{"name": ""})
	assert.Error(t, err)

	err = schema.ValidateNew(map[string]interface{}{"name": "Kim"})
	assert.NoError(t, err)
}

func TestValidateChecksKinds(t *testing.T) {
	schema, ok := SchemaFor("history")
	assert.True(t, ok)

	err := schema.ValidateNew(map[string]interface{}{"year": "nineteen-ninety", "title": "Founded"})
	assert.Error(t, err)

	err = schema.ValidateNew(map[string]interface{}{"year": 1990, "title": "Founded"})
	assert.NoError(t, err)

	err = schema.ValidateNew(map[string]interface{}{"year": 1990.0, "title": "Founded"})
	assert.NoError(t, err)
}

func TestValidateRejectsUnknownFields(t *testing.T) {
	schema, ok := SchemaFor("posts")
	assert.True(t, ok)

	err := schema.ValidatePartial(map[string]interface{}{"headline": "New program"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "headline")
}

func TestValidatePartialSkipsRequiredCheck(t *testing.T) {
	schema, ok := SchemaFor("posts")
	assert.True(t, ok)

	// A partial update may omit required fields entirely.
	err := schema.ValidatePartial(map[string]interface{}{"author": "Staff"})
	assert.NoError(t, err)
}

func TestValidateStringList(t *testing.T) {
	schema, ok := SchemaFor("programs")
	assert.True(t, ok)

	err := schema.ValidatePartial(map[string]interface{}{"features": []string{"sauna", "pool"}})
	assert.NoError(t, err)

	err = schema.ValidatePartial(map[string]interface{}{"features": "sauna"})
	assert.Error(t, err)
}

func TestEverySchemaHasCollectionAndAssetFolder(t *testing.T) {
	for contentType, schema := range Schemas {
		assert.Equal(t, contentType, schema.Type)
		assert.NotEmpty(t, schema.Collection, "%s needs a collection", contentType)
		assert.NotEmpty(t, schema.AssetFolder, "%s needs an asset folder", contentType)
		assert.NotEmpty(t, schema.Fields, "%s needs fields", contentType)
	}
}
