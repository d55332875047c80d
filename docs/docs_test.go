package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type swaggerDoc struct {
	BasePath string                                 `json:"basePath"`
	Paths    map[string]map[string]swaggerOperation `json:"paths"`
	Defs     map[string]map[string]json.RawMessage  `json:"definitions"`
}

type swaggerOperation struct {
	Summary     string                     `json:"summary"`
	Description string                     `json:"description"`
	Responses   map[string]json.RawMessage `json:"responses"`
}

func readDoc(t *testing.T) swaggerDoc {
	t.Helper()
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestSwaggerDoc_Routes(t *testing.T) {
	doc := readDoc(t)
	assert.Equal(t, "/api", doc.BasePath)

	tests := []struct {
		path    string
		method  string
		summary string
	}{
		{"/login", "post", "User login"},
		{"/register", "post", "Register a new user"},
		{"/users", "get", "List users"},
		{"/users/online", "get", "List users with online status"},
		{"/users/status", "post", "Update online status"},
		{"/users/profile-picture", "post", "Upload profile picture"},
		{"/users/profile", "put", "Update profile"},
		{"/users/password", "put", "Change password"},
		{"/users/{userId}", "delete", "Delete account"},
		{"/chat/private", "get", "Get private conversation"},
		{"/chat/private", "post", "Send private message"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			op, ok := doc.Paths[tt.path][tt.method]
			require.True(t, ok)
			assert.Equal(t, tt.summary, op.Summary)
			assert.Contains(t, op.Responses, "200")
		})
	}
}

func TestSwaggerDoc_MatchesHandlerAnnotations(t *testing.T) {
	doc := readDoc(t)

	assert.Equal(t,
		"Returns the messages between two users, oldest first. The order of the two IDs does not matter.",
		doc.Paths["/chat/private"]["get"].Description,
	)
	assert.Contains(t, doc.Paths["/login"]["post"].Responses, "default")
	assert.Contains(t, doc.Defs, "handlers.ErrorResponse")
	assert.Contains(t, doc.Defs, "models.UserWithStatus")
}
