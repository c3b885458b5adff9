package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type document struct {
	BasePath    string                                `json:"basePath"`
	Paths       map[string]map[string]operation       `json:"paths"`
	Definitions map[string]json.RawMessage            `json:"definitions"`
	Security    map[string]map[string]json.RawMessage `json:"securityDefinitions"`
}

type operation struct {
	Tags       []string `json:"tags"`
	Summary    string   `json:"summary"`
	Parameters []struct {
		Name   string `json:"name"`
		In     string `json:"in"`
		Schema struct {
			Ref string `json:"$ref"`
		} `json:"schema"`
	} `json:"parameters"`
	Responses map[string]struct {
		Schema struct {
			Ref string `json:"$ref"`
		} `json:"schema"`
	} `json:"responses"`
	Security []map[string][]string `json:"security"`
}

func readDocument(t *testing.T) document {
	t.Helper()
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestDoc_RegisterMatchesHandler(t *testing.T) {
	doc := readDocument(t)
	assert.Equal(t, "/api", doc.BasePath)

	op, ok := doc.Paths["/auth/register"]["post"]
	require.True(t, ok)
	assert.Equal(t, []string{"auth"}, op.Tags)
	assert.Equal(t, "Register a new user", op.Summary)

	require.Len(t, op.Parameters, 1)
	assert.Equal(t, "body", op.Parameters[0].In)
	assert.Equal(t, "#/definitions/handler.registerRequest", op.Parameters[0].Schema.Ref)

	require.Contains(t, op.Responses, "201")
	assert.NotContains(t, op.Responses, "200")
	assert.Equal(t, "#/definitions/handler.authResponse", op.Responses["201"].Schema.Ref)
	assert.Equal(t, "#/definitions/handler.messageResponse", op.Responses["409"].Schema.Ref)
}

func TestDoc_EveryReferenceResolves(t *testing.T) {
	doc := readDocument(t)
	for _, name := range []string{
		"handler.authResponse",
		"handler.dataResponse",
		"handler.listResponse",
		"handler.messageResponse",
	} {
		assert.Contains(t, doc.Definitions, name)
	}

	const prefix = "#/definitions/"
	for path, ops := range doc.Paths {
		for method, op := range ops {
			for code, resp := range op.Responses {
				require.NotEmpty(t, resp.Schema.Ref, "%s %s %s", method, path, code)
				assert.Contains(t, doc.Definitions, resp.Schema.Ref[len(prefix):], "%s %s %s", method, path, code)
			}
			for _, p := range op.Parameters {
				if p.In == "body" {
					assert.Contains(t, doc.Definitions, p.Schema.Ref[len(prefix):], "%s %s", method, path)
				}
			}
		}
	}
}

func TestDoc_ProtectedRoutesUseBearerAuth(t *testing.T) {
	doc := readDocument(t)
	require.Contains(t, doc.Security, "BearerAuth")

	op := doc.Paths["/auth/me"]["get"]
	require.NotEmpty(t, op.Security)
	assert.Contains(t, op.Security[0], "BearerAuth")

	login := doc.Paths["/auth/login"]["post"]
	assert.Empty(t, login.Security)
}
