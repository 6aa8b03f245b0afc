package jsonschema_test

import (
	"fmt"

	"github.com/phanitejak/jsonvalidator/jsonschema"
)

func ExampleNewValidator() {
	validate, err := jsonschema.NewValidator(jsonschema.Config{
		Schema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"colors": map[string]interface{}{
					"type":  "array",
					"items": map[string]interface{}{"$ref": "color"},
				},
			},
		},
		SchemaDefinitions: map[string]interface{}{
			"color": map[string]interface{}{"enum": []string{"red", "green"}},
		},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	findings, err := validate(map[string]interface{}{
		"colors": []interface{}{"red", "blue"},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, f := range findings {
		fmt.Println(f.Path, f.Severity, f.Message)
	}
	// Output: /colors/1 warning should be equal to one of: "red", "green"
}

func ExampleNewValidator_missingSchema() {
	_, err := jsonschema.NewValidator(jsonschema.Config{})
	fmt.Println(err)
	// Output: Invalid Configuration: a schema is required: replace the legacy NewValidator(schema, definitions) call with NewValidator(jsonschema.Config{Schema: ..., SchemaDefinitions: ...}): missing schema
}
