package router

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	_ "github.com/autenticco/backend/docs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// docPath converts a gin route path under /api/v1 to its documented form
func docPath(path string) string {
	path = strings.TrimPrefix(path, "/api/v1")
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, ":") {
			segments[i] = "{" + segment[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

func TestSwaggerDoc_CoversRegisteredRoutes(t *testing.T) {
	engine := newAPIEngine()
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	w := serve(engine, http.MethodGet, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		BasePath string                                `json:"basePath"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "/api/v1", doc.BasePath)

	for _, route := range engine.Routes() {
		if !strings.HasPrefix(route.Path, "/api/v1/") {
			continue
		}
		path := docPath(route.Path)
		operations, ok := doc.Paths[path]
		if !assert.True(t, ok, "undocumented path %s", path) {
			continue
		}
		_, ok = operations[strings.ToLower(route.Method)]
		assert.True(t, ok, "undocumented operation %s %s", route.Method, path)
	}
}
