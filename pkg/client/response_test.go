package client_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gitlab.com/adam.stanek/growthwalk/pkg/client"
)

func TestResponseField(t *testing.T) {
	type testCase struct {
		name      string
		body      string
		path      string
		types     []gjson.Type
		expected  string
		malformed bool
		missing   bool
	}
	testCases := []testCase{
		{name: "token", body: `{"data":{"token":"abc"}}`, path: client.TokenField, expected: `"abc"`},
		{name: "numeric_id", body: `{"data":{"id":42}}`, path: client.IDField, expected: `42`},
		{name: "string_id", body: `{"data":{"id":"f-1"}}`, path: client.IDField, expected: `"f-1"`},
		{name: "no_data", body: `{"success":true}`, path: client.TokenField, missing: true},
		{name: "null_data", body: `{"data":null}`, path: client.IDField, missing: true},
		{name: "empty_token", body: `{"data":{"token":""}}`, path: client.TokenField, missing: true},
		{name: "null_id", body: `{"data":{"id":null}}`, path: client.IDField, missing: true},
		{name: "false_token", body: `{"data":{"token":false}}`, path: client.TokenField, missing: true},
		{name: "empty_object_token", body: `{"data":{"token":{}}}`, path: client.TokenField, missing: true},
		{name: "empty_array_token", body: `{"data":{"token":[]}}`, path: client.TokenField, missing: true},
		{name: "empty_object_id", body: `{"data":{"id":{}}}`, path: client.IDField, missing: true},
		{name: "empty_array_id", body: `{"data":{"id":[]}}`, path: client.IDField, missing: true},
		{name: "numeric_token", body: `{"data":{"token":123}}`, path: client.TokenField, types: client.TokenTypes, missing: true},
		{name: "true_id", body: `{"data":{"id":true}}`, path: client.IDField, types: client.IDTypes, missing: true},
		{name: "object_id", body: `{"data":{"id":{"value":1}}}`, path: client.IDField, types: client.IDTypes, missing: true},
		{name: "typed_numeric_id", body: `{"data":{"id":7}}`, path: client.IDField, types: client.IDTypes, expected: `7`},
		{name: "typed_token", body: `{"data":{"token":"abc"}}`, path: client.TokenField, types: client.TokenTypes, expected: `"abc"`},
		{name: "untyped_object", body: `{"data":{"id":{"value":1}}}`, path: client.IDField, expected: `{"value":1}`},
		{name: "html_body", body: `<html>oops</html>`, path: client.IDField, malformed: true},
		{name: "empty_body", body: ``, path: client.IDField, malformed: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := &client.Response{StatusCode: 200, Body: []byte(tc.body)}
			value, err := res.Field(tc.path, tc.types...)

			var malformedErr *client.MalformedBodyError
			var missingErr *client.MissingFieldError
			assert.Equal(t, tc.malformed, errors.As(err, &malformedErr))
			assert.Equal(t, tc.missing, errors.As(err, &missingErr))

			if !tc.malformed && !tc.missing {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, value.Raw)
			}
		})
	}
}

func TestResponseMessageOnInvalidBody(t *testing.T) {
	res := &client.Response{StatusCode: 500, Body: []byte("Internal Server Error")}
	assert.Equal(t, "", res.Message())
}
