// Package client cliente REST de la API de administración. Lo usan storectl y los formularios.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/store-admin-api/internal/application/dto"
	"github.com/jhoicas/store-admin-api/internal/form"
)

var _ form.Transport = (*Client)(nil)

const (
	storesResource = "stores"
	maxBodyBytes   = 8 << 20
)

// APIError respuesta de error de la API.
type APIError struct {
	Status  int
	Code    string
	Message string
	Field   string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("API %d %s (%s): %s", e.Status, e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("API %d %s: %s", e.Status, e.Code, e.Message)
}

// Client cliente HTTP de la API. Token vacío = peticiones anónimas.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New construye el cliente sobre baseURL (p. ej. http://localhost:3000).
func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithToken copia del cliente con otro token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// collectionPath /api/stores o /api/{storeId}/{resource}.
func collectionPath(storeID, resource string) string {
	if resource == storesResource {
		return "/api/stores"
	}
	return "/api/" + url.PathEscape(storeID) + "/" + resource
}

func recordPath(storeID, resource, id string) string {
	return collectionPath(storeID, resource) + "/" + url.PathEscape(id)
}

// do envía la petición; out nil descarta el cuerpo.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	raw, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("client: deserializar respuesta de %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("client: serializar request: %w", err)
		}
		reader = bytes.NewReader(b)
	}
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("client: crear request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("client: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("client: leer respuesta: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		var er dto.ErrorResponse
		if json.Unmarshal(raw, &er) == nil && er.Code != "" {
			apiErr.Code, apiErr.Message, apiErr.Field = er.Code, er.Message, er.Field
		} else {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return nil, apiErr
	}
	return raw, nil
}

// ── form.Transport ────────────────────────────────────────────────────────────

// Create POST sobre la colección; devuelve el id del registro creado.
func (c *Client) Create(ctx context.Context, storeID, resource string, body any) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, collectionPath(storeID, resource), nil, body, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// Update PATCH sobre el registro.
func (c *Client) Update(ctx context.Context, storeID, resource, id string, body any) error {
	return c.do(ctx, http.MethodPatch, recordPath(storeID, resource, id), nil, body, nil)
}

// Delete DELETE sobre el registro.
func (c *Client) Delete(ctx context.Context, storeID, resource, id string) error {
	return c.do(ctx, http.MethodDelete, recordPath(storeID, resource, id), nil, nil, nil)
}

// ── Lecturas ──────────────────────────────────────────────────────────────────

// Get lee un registro en out.
func (c *Client) Get(ctx context.Context, storeID, resource, id string, out any) error {
	return c.do(ctx, http.MethodGet, recordPath(storeID, resource, id), nil, nil, out)
}

// List lista la colección en out (un dto.ListResponse).
func (c *Client) List(ctx context.Context, storeID, resource string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, collectionPath(storeID, resource), query, nil, out)
}

// Stores tiendas del usuario autenticado.
func (c *Client) Stores(ctx context.Context) ([]dto.StoreResponse, error) {
	var out dto.ListResponse[dto.StoreResponse]
	if err := c.List(ctx, "", storesResource, nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// CreateStore crea una tienda y la devuelve.
func (c *Client) CreateStore(ctx context.Context, name string) (*dto.StoreResponse, error) {
	var out dto.StoreResponse
	if err := c.do(ctx, http.MethodPost, "/api/stores", nil, dto.StoreRequest{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CatalogPDF descarga el catálogo PDF de la tienda.
func (c *Client) CatalogPDF(ctx context.Context, storeID string) ([]byte, error) {
	return c.send(ctx, http.MethodGet, "/api/"+url.PathEscape(storeID)+"/catalog.pdf", nil, nil)
}

// ── Auth ──────────────────────────────────────────────────────────────────────

// Register crea un usuario.
func (c *Client) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login devuelve el token y el usuario.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	in := dto.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Opciones del formulario de producto ───────────────────────────────────────

// Option una opción de un select.
type Option struct {
	ID   string
	Name string
}

// ProductOptions opciones de los selects del formulario de producto.
type ProductOptions struct {
	Categories []Option
	Sizes      []Option
	Colors     []Option
}

// BySource opciones para el campo cuyo source es resource.
func (o ProductOptions) BySource(resource string) []Option {
	switch resource {
	case "categories":
		return o.Categories
	case "sizes":
		return o.Sizes
	case "colors":
		return o.Colors
	}
	return nil
}

// LoadProductOptions carga categorías, tallas y colores en paralelo; el primer error cancela el resto.
func (c *Client) LoadProductOptions(ctx context.Context, storeID string) (*ProductOptions, error) {
	var out ProductOptions
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var l dto.ListResponse[dto.CategoryResponse]
		if err := c.List(gctx, storeID, "categories", nil, &l); err != nil {
			return err
		}
		for _, it := range l.Items {
			out.Categories = append(out.Categories, Option{ID: it.ID, Name: it.Name})
		}
		return nil
	})
	g.Go(func() error {
		var l dto.ListResponse[dto.SizeResponse]
		if err := c.List(gctx, storeID, "sizes", nil, &l); err != nil {
			return err
		}
		for _, it := range l.Items {
			out.Sizes = append(out.Sizes, Option{ID: it.ID, Name: it.Name + " (" + it.Value + ")"})
		}
		return nil
	})
	g.Go(func() error {
		var l dto.ListResponse[dto.ColorResponse]
		if err := c.List(gctx, storeID, "colors", nil, &l); err != nil {
			return err
		}
		for _, it := range l.Items {
			out.Colors = append(out.Colors, Option{ID: it.ID, Name: it.Name + " (" + it.Value + ")"})
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
