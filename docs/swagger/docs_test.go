package swagger_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	_ "facet-reconciler/docs/swagger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegisteredDoc_ListsRoutes(t *testing.T) {
	raw, err := swag.ReadDoc("swagger")
	require.NoError(t, err)

	var doc struct {
		Info  map[string]any            `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "Facet Reconciler API", doc.Info["title"])
	assert.Contains(t, doc.Paths["/facet/reconcile"], "post")
	assert.Contains(t, doc.Paths["/facet/projects/{project}/apply"], "post")
	assert.Contains(t, doc.Paths["/facet/projects/{project}/modules/{module}"], "delete")
	assert.Contains(t, doc.Paths["/integrity/structure"], "get")
}

func TestHandlerDefault_ServesDoc(t *testing.T) {
	app := fiber.New()
	app.Get("/swagger/*", swagger.HandlerDefault)

	resp, err := app.Test(httptest.NewRequest("GET", "/swagger/doc.json", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "/facet/projects/{project}/plan")
}
