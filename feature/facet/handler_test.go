package facet_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"facet-reconciler/core/args"
	"facet-reconciler/core/database"
	"facet-reconciler/core/reconcile"
	"facet-reconciler/core/sdk"
	"facet-reconciler/core/storage/mocks"
	"facet-reconciler/feature/facet"
	"facet-reconciler/feature/facet/models"
	"facet-reconciler/feature/facet/registry"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var notFound = minio.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound}

var testConfig = facet.Config{Prefix: "projects", PathCase: facet.PathCaseSensitive, Workers: 2}

func body(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

func objectCh(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k}
	}
	close(ch)
	return ch
}

func noRemoveErrors() <-chan minio.RemoveObjectError {
	ch := make(chan minio.RemoveObjectError)
	close(ch)
	return ch
}

func setupApp(t *testing.T, client *mocks.Client, db *gorm.DB) *fiber.App {
	t.Helper()
	app := fiber.New()
	f := facet.NewFeature(testConfig, client, "facets", db, args.PlatformJVM, zap.NewNop())
	require.NoError(t, f.Load(app))
	return app
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func doJSON(t *testing.T, app *fiber.App, method, target, payload string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if payload != "" {
		reader = strings.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestHandleReconcile(t *testing.T) {
	app := setupApp(t, new(mocks.Client), nil)

	t.Run("PluginMerge", func(t *testing.T) {
		resp, data := doJSON(t, app, http.MethodPost, "/facet/reconcile", `{
			"module": "app",
			"current": {"pluginOptions": ["plugin:pluginA:x=9", "plugin:pluginC:z=3"], "verbose": true},
			"plugin_options": ["plugin:pluginA:x=1", "plugin:pluginB:y=2"]
		}`)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

		var result reconcile.Result
		require.NoError(t, json.Unmarshal(data, &result))
		assert.Equal(t, args.PlatformJVM, result.Platform)
		assert.Equal(t, []string{"plugin:pluginA:x=9", "plugin:pluginB:y=2", "plugin:pluginC:z=3"}, result.PluginOptions)
		require.Len(t, result.AdditionalArguments, 1)
		assert.Equal(t, args.Verbose, result.AdditionalArguments[0].Field)
		assert.Equal(t, sdk.ActionSkip, result.Sdk.Action)
	})

	t.Run("WithSdkEnvironment", func(t *testing.T) {
		resp, data := doJSON(t, app, http.MethodPost, "/facet/reconcile", `{
			"module": "app",
			"platform": "jvm",
			"current": {"jdkHome": "/opt/jdk17/"},
			"sdk": {
				"project_sdk": {"id": "jdk-8", "name": "1.8", "kind": "java", "home_path": "/opt/jdk8"},
				"available": [
					{"id": "jdk-8", "name": "1.8", "kind": "java", "home_path": "/opt/jdk8"},
					{"id": "jdk-17", "name": "17", "kind": "java", "home_path": "/opt/jdk17"}
				]
			}
		}`)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

		var result reconcile.Result
		require.NoError(t, json.Unmarshal(data, &result))
		assert.Equal(t, sdk.ActionAssign, result.Sdk.Action)
		require.NotNil(t, result.Sdk.Sdk)
		assert.Equal(t, "jdk-17", result.Sdk.Sdk.ID)
	})

	t.Run("KotlinFromSiblings", func(t *testing.T) {
		resp, data := doJSON(t, app, http.MethodPost, "/facet/reconcile", `{
			"module": "web",
			"platform": "js",
			"sdk": {
				"project_sdk": {"id": "jdk-8", "name": "1.8", "kind": "java", "home_path": "/opt/jdk8"},
				"available": [{"id": "jdk-8", "name": "1.8", "kind": "java", "home_path": "/opt/jdk8"}]
			},
			"siblings": [
				{"name": "core", "sdk": {"id": "jdk-8", "name": "1.8", "kind": "java"}},
				{"name": "shared", "sdk": {"id": "kotlin-sdk", "name": "Kotlin SDK", "kind": "kotlin"}}
			]
		}`)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

		var result reconcile.Result
		require.NoError(t, json.Unmarshal(data, &result))
		assert.Equal(t, sdk.ActionAssign, result.Sdk.Action)
		require.NotNil(t, result.Sdk.Sdk)
		assert.Equal(t, "kotlin-sdk", result.Sdk.Sdk.ID)
		assert.Equal(t, "sibling-kotlin", result.Sdk.Strategy)
	})

	tests := []struct {
		name    string
		payload string
	}{
		{name: "UnknownPlatform", payload: `{"module": "app", "platform": "wasm"}`},
		{name: "ForeignField", payload: `{"module": "app", "platform": "js", "current": {"jdkHome": "/opt"}}`},
		{name: "MalformedBody", payload: `{"module": `},
		{name: "WrongKind", payload: `{"module": "app", "current": {"verbose": "yes"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, data := doJSON(t, app, http.MethodPost, "/facet/reconcile", tt.payload)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Contains(t, string(data), `"error"`)
		})
	}
}

func TestHandleFields(t *testing.T) {
	app := setupApp(t, new(mocks.Client), nil)

	resp, data := doJSON(t, app, http.MethodGet, "/facet/fields/js", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report struct {
		Platform string `json:"platform"`
		Fields   []struct {
			ID    string `json:"id"`
			Kind  string `json:"kind"`
			Class string `json:"class"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "js", report.Platform)

	classes := make(map[string]string)
	for _, f := range report.Fields {
		classes[f.ID] = f.Class
	}
	assert.Equal(t, "primary", classes["sourceMap"])
	assert.Equal(t, "hidden", classes["pluginOptions"])
	assert.NotContains(t, classes, "jdkHome")

	resp, _ = doJSON(t, app, http.MethodGet, "/facet/fields/wasm", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandlePlan_NoDatabase(t *testing.T) {
	app := setupApp(t, new(mocks.Client), nil)

	resp, data := doJSON(t, app, http.MethodGet, "/facet/projects/shop/plan", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, string(data), "sdk registry unavailable")
}

// mockProject serves one JVM module without settings or defaults.
func mockProject(client *mocks.Client) {
	client.On("ListObjects", mock.Anything, "facets", minio.ListObjectsOptions{Prefix: "projects/shop/modules/", Recursive: true}).
		Return(objectCh("projects/shop/modules/core.json")).Once()
	client.On("GetObject", mock.Anything, "facets", "projects/shop/modules/core.json", mock.Anything).
		Return(body(`{"platform":"jvm","arguments":{"languageVersion":"1.9","verbose":true}}`), nil).Once()
	client.On("GetObject", mock.Anything, "facets", "projects/shop/settings/core.json", mock.Anything).
		Return(nil, notFound)
	client.On("GetObject", mock.Anything, "facets", "projects/shop/defaults/jvm.json", mock.Anything).
		Return(nil, notFound)
}

func seedRegistry(t *testing.T, f *facet.Feature) {
	t.Helper()
	reg := f.Service().Registry()
	_, err := reg.Add(t.Context(), models.Sdk{ID: "jdk-8", Name: "1.8", Kind: "java", HomePath: "/opt/jdk8"})
	require.NoError(t, err)
	require.NoError(t, reg.SetProjectSdk(t.Context(), "shop", "jdk-8"))
}

func TestHandlePlan(t *testing.T) {
	client := new(mocks.Client)
	mockProject(client)

	app := fiber.New()
	f := facet.NewFeature(testConfig, client, "facets", setupDB(t), args.PlatformJVM, zap.NewNop())
	require.NoError(t, f.Load(app))
	seedRegistry(t, f)

	resp, data := doJSON(t, app, http.MethodGet, "/facet/projects/shop/plan", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	var plan reconcile.ReconcilePlan
	require.NoError(t, json.Unmarshal(data, &plan))
	require.Len(t, plan.Results, 1)
	assert.Equal(t, "core", plan.Results[0].Module)
	assert.Equal(t, sdk.ActionInherit, plan.Results[0].Sdk.Action)

	types := make([]reconcile.ActionType, 0, len(plan.Actions))
	for _, a := range plan.Actions {
		types = append(types, a.Type)
	}
	assert.Equal(t, []reconcile.ActionType{reconcile.ActionSaveSettings, reconcile.ActionInheritSdk}, types)
	assert.Equal(t, 1, plan.Summary.SettingsChanges)
	assert.Equal(t, 1, plan.Summary.SdkInherits)
	client.AssertExpectations(t)
}

func TestHandleApply(t *testing.T) {
	t.Run("Unconfirmed", func(t *testing.T) {
		client := new(mocks.Client)
		mockProject(client)

		app := fiber.New()
		f := facet.NewFeature(testConfig, client, "facets", setupDB(t), args.PlatformJVM, zap.NewNop())
		require.NoError(t, f.Load(app))
		seedRegistry(t, f)

		resp, data := doJSON(t, app, http.MethodPost, "/facet/projects/shop/apply", "")
		require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

		var report models.ApplyReport
		require.NoError(t, json.Unmarshal(data, &report))
		assert.True(t, report.DryRun)
		assert.Zero(t, report.Executed)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Confirmed", func(t *testing.T) {
		client := new(mocks.Client)
		mockProject(client)
		client.On("PutObject", mock.Anything, "facets", "projects/shop/settings/core.json", mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil).Once()

		app := fiber.New()
		f := facet.NewFeature(testConfig, client, "facets", setupDB(t), args.PlatformJVM, zap.NewNop())
		require.NoError(t, f.Load(app))
		seedRegistry(t, f)

		resp, data := doJSON(t, app, http.MethodPost, "/facet/projects/shop/apply?confirm=true", "")
		require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

		var report models.ApplyReport
		require.NoError(t, json.Unmarshal(data, &report))
		assert.False(t, report.DryRun)
		assert.Equal(t, 2, report.Executed)

		bindings, err := f.Service().Registry().Bindings(t.Context(), "shop")
		require.NoError(t, err)
		assert.Equal(t, reconcile.Binding{Inherit: true}, bindings["core"])
		client.AssertExpectations(t)
	})
}

func TestHandlePutModule(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "facets", "projects/shop/modules/web.json", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil).Once()
	app := setupApp(t, client, nil)

	resp, _ := doJSON(t, app, http.MethodPut, "/facet/projects/shop/modules/web", `{"platform":"js","arguments":{"sourceMap":true}}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPut, "/facet/projects/shop/modules/web", `{"platform":"js","arguments":{"jdkHome":"/opt"}}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPut, "/facet/projects/shop/modules/web", `{"platform":"wasm"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	client.AssertExpectations(t)
}

func TestHandlePutDefaults(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "facets", "projects/shop/defaults/native.json", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil).Once()
	app := setupApp(t, client, nil)

	resp, _ := doJSON(t, app, http.MethodPut, "/facet/projects/shop/defaults/native", `{"produce":"program"}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPut, "/facet/projects/shop/defaults/native", `{"sourceMap":true}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	client.AssertExpectations(t)
}

func TestHandleDeleteModule(t *testing.T) {
	db := setupDB(t)
	client := new(mocks.Client)
	client.On("RemoveObject", mock.Anything, "facets", "projects/shop/modules/core.json", mock.Anything).Return(nil).Once()
	client.On("RemoveObject", mock.Anything, "facets", "projects/shop/settings/core.json", mock.Anything).Return(nil).Once()

	app := setupApp(t, client, db)
	r := registry.New(db)
	_, err := r.Add(t.Context(), models.Sdk{ID: "jdk-17", Name: "17", Kind: "java"})
	require.NoError(t, err)
	require.NoError(t, r.Assign(t.Context(), "shop", "core", "jdk-17"))

	resp, _ := doJSON(t, app, http.MethodDelete, "/facet/projects/shop/modules/core", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	bindings, err := r.Bindings(t.Context(), "shop")
	require.NoError(t, err)
	assert.Empty(t, bindings)
	client.AssertExpectations(t)
}

func TestHandleDeleteProject(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "facets", minio.ListObjectsOptions{Prefix: "projects/shop/", Recursive: true}).
		Return(objectCh("projects/shop/modules/core.json", "projects/shop/defaults/jvm.json"))
	client.On("RemoveObjects", mock.Anything, "facets", mock.Anything, mock.Anything).
		Run(func(a mock.Arguments) {
			for range a.Get(2).(<-chan minio.ObjectInfo) {
			}
		}).
		Return(noRemoveErrors())

	app := setupApp(t, client, nil)
	resp, data := doJSON(t, app, http.MethodDelete, "/facet/projects/shop", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	var report models.DeleteReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, models.DeleteReport{Project: "shop", Objects: 2}, report)
}
