package mihomo

import (
	"errors"
	"slices"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/leighmacdonald/srinfo/internal/encoding"
)

// profileSchema is inferred from Profile. Fields without omitempty become required properties
// and pointer fields accept null, which is exactly the optional/required split of the api.
var profileSchema = sync.OnceValues(func() (*jsonschema.Resolved, error) { //nolint:gochecknoglobals
	schema, errSchema := jsonschema.For[Profile](nil)
	if errSchema != nil {
		return nil, errSchema
	}

	allowUnknownProperties(schema)

	return schema.Resolve(nil)
})

// allowUnknownProperties drops the inferred additionalProperties=false so that keys added to the
// api later do not break decoding.
func allowUnknownProperties(schema *jsonschema.Schema) {
	if schema == nil {
		return
	}

	if schema.Type == "object" || slices.Contains(schema.Types, "object") {
		schema.AdditionalProperties = nil
	}

	for _, property := range schema.Properties {
		allowUnknownProperties(property)
	}

	allowUnknownProperties(schema.Items)
}

// ParseProfile decodes a sr_info_parsed document. The document is checked against the profile
// schema before the typed decode so that a missing required key is an error instead of a zero
// value.
func ParseProfile(body []byte) (*Profile, error) {
	document, errDocument := encoding.UnmarshalBytes[any](body)
	if errDocument != nil {
		return nil, errors.Join(errDocument, ErrDecode)
	}

	schema, errSchema := profileSchema()
	if errSchema != nil {
		return nil, errors.Join(errSchema, ErrDecode)
	}

	if err := schema.Validate(document); err != nil {
		return nil, errors.Join(err, ErrDecode)
	}

	profile, errProfile := encoding.UnmarshalBytes[Profile](body)
	if errProfile != nil {
		return nil, errors.Join(errProfile, ErrDecode)
	}

	return &profile, nil
}
