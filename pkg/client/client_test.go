package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/store-admin-api/internal/form"
	"github.com/jhoicas/store-admin-api/pkg/client"
)

type seen struct {
	Method, Path, Query, Auth string
	Body                      map[string]any
}

// fakeAPI responde por "METHOD path" y registra lo recibido.
type fakeAPI struct {
	mu        sync.Mutex
	requests  []seen
	responses map[string]struct {
		status int
		body   string
	}
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	f := &fakeAPI{responses: map[string]struct {
		status int
		body   string
	}{}}
	srv := httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeAPI) on(method, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[method+" "+path] = struct {
		status int
		body   string
	}{status, body}
}

func (f *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	s := seen{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Auth: r.Header.Get("Authorization")}
	if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
		_ = json.Unmarshal(raw, &s.Body)
	}
	f.mu.Lock()
	f.requests = append(f.requests, s)
	resp, ok := f.responses[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"code":"NOT_FOUND","message":"recurso no encontrado"}`)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}

func (f *fakeAPI) last() seen {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func TestTransportPaths(t *testing.T) {
	api, srv := newFakeAPI(t)
	c := client.New(srv.URL+"/", "tok")
	ctx := context.Background()

	api.on(http.MethodPost, "/api/s1/sizes", 200, `{"id":"z1"}`)
	id, err := c.Create(ctx, "s1", "sizes", map[string]any{"name": "M"})
	require.NoError(t, err)
	assert.Equal(t, "z1", id)
	got := api.last()
	assert.Equal(t, "Bearer tok", got.Auth)
	assert.Equal(t, "M", got.Body["name"])

	api.on(http.MethodPatch, "/api/s1/sizes/z1", 200, `{"id":"z1"}`)
	require.NoError(t, c.Update(ctx, "s1", "sizes", "z1", map[string]any{"name": "L"}))

	api.on(http.MethodDelete, "/api/stores/s1", 200, `{"id":"s1"}`)
	require.NoError(t, c.Delete(ctx, "", "stores", "s1"))
	assert.Equal(t, "/api/stores/s1", api.last().Path)
}

func TestAPIError(t *testing.T) {
	api, srv := newFakeAPI(t)
	c := client.New(srv.URL, "")

	api.on(http.MethodPatch, "/api/s1/sizes/z1", 400, `{"code":"VALIDATION","message":"name es requerido","field":"name"}`)
	err := c.Update(context.Background(), "s1", "sizes", "z1", map[string]any{})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "VALIDATION", apiErr.Code)
	assert.Equal(t, "name", apiErr.Field)
	assert.Empty(t, api.last().Auth)

	api.on(http.MethodGet, "/api/s1/catalog.pdf", 502, "bad gateway")
	_, err = c.CatalogPDF(context.Background(), "s1")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "bad gateway", apiErr.Message)
}

func TestLoginAndStores(t *testing.T) {
	api, srv := newFakeAPI(t)
	c := client.New(srv.URL, "")
	ctx := context.Background()

	api.on(http.MethodPost, "/api/auth/login", 200, `{"token":"jwt-1","user":{"id":"u1","email":"a@b.co"}}`)
	out, err := c.Login(ctx, "a@b.co", "secreto123")
	require.NoError(t, err)
	assert.Equal(t, "jwt-1", out.Token)
	assert.Equal(t, "secreto123", api.last().Body["password"])

	api.on(http.MethodGet, "/api/stores", 200, `{"items":[{"id":"s1","name":"Centro"}],"total":1}`)
	stores, err := c.WithToken(out.Token).Stores(ctx)
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "Centro", stores[0].Name)
	assert.Equal(t, "Bearer jwt-1", api.last().Auth)
}

func TestListQuery(t *testing.T) {
	api, srv := newFakeAPI(t)
	c := client.New(srv.URL, "")
	api.on(http.MethodGet, "/api/s1/products", 200, `{"items":[],"total":0}`)

	var out struct {
		Total int `json:"total"`
	}
	require.NoError(t, c.List(context.Background(), "s1", "products", map[string][]string{"isFeatured": {"true"}}, &out))
	assert.Equal(t, "isFeatured=true", api.last().Query)
}

func TestLoadProductOptions(t *testing.T) {
	api, srv := newFakeAPI(t)
	c := client.New(srv.URL, "")
	api.on(http.MethodGet, "/api/s1/categories", 200, `{"items":[{"id":"c1","name":"Camisas"}],"total":1}`)
	api.on(http.MethodGet, "/api/s1/sizes", 200, `{"items":[{"id":"z1","name":"Mediana","value":"M"}],"total":1}`)
	api.on(http.MethodGet, "/api/s1/colors", 200, `{"items":[{"id":"k1","name":"Negro","value":"#000"}],"total":1}`)

	opts, err := c.LoadProductOptions(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, []client.Option{{ID: "c1", Name: "Camisas"}}, opts.BySource("categories"))
	assert.Equal(t, []client.Option{{ID: "z1", Name: "Mediana (M)"}}, opts.Sizes)
	assert.Equal(t, []client.Option{{ID: "k1", Name: "Negro (#000)"}}, opts.Colors)
}

func TestLoadProductOptions_FirstErrorWins(t *testing.T) {
	api, srv := newFakeAPI(t)
	c := client.New(srv.URL, "")
	api.on(http.MethodGet, "/api/s1/categories", 200, `{"items":[],"total":0}`)
	api.on(http.MethodGet, "/api/s1/sizes", 500, `{"code":"INTERNAL","message":"error interno"}`)
	api.on(http.MethodGet, "/api/s1/colors", 200, `{"items":[],"total":0}`)

	_, err := c.LoadProductOptions(context.Background(), "s1")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.Status)
}

type silent struct{}

func (silent) Success(string) {}
func (silent) Error(string)   {}
func (silent) Refresh()       {}
func (silent) Push(string)    {}

func TestClientDrivesForm(t *testing.T) {
	api, srv := newFakeAPI(t)
	c := client.New(srv.URL, "tok")
	api.on(http.MethodPost, "/api/s1/colors", 200, `{"id":"k1"}`)

	schemas, err := form.Default()
	require.NoError(t, err)
	sc, err := schemas.Get("color")
	require.NoError(t, err)
	f, err := form.New(form.Config{Schema: sc, StoreID: "s1", Transport: c, Notifier: silent{}, Navigator: silent{}})
	require.NoError(t, err)

	require.NoError(t, f.Submit(context.Background(), form.Values{"name": "Negro", "value": "#000000"}))
	got := api.last()
	assert.Equal(t, "/api/s1/colors", got.Path)
	assert.Equal(t, "#000000", got.Body["value"])
}
