// Package identity contiene los adaptadores del puerto ports.IdentityService:
// un cliente HTTP contra el proveedor de identidades hospedado y un almacén
// local sobre PostgreSQL para development y tests.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jhoicas/fideliza-api/internal/application/ports"
	"github.com/jhoicas/fideliza-api/internal/domain"
)

// Verificar en tiempo de compilación que HTTPClient implementa IdentityService.
var _ ports.IdentityService = (*HTTPClient)(nil)

// HTTPClient adaptador contra la API REST del servicio de identidades.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPClient construye el adaptador. baseURL sin slash final.
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ── Estructuras del protocolo ─────────────────────────────────────────────────

type accountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type accountResponse struct {
	UID   string `json:"uid"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateUser crea la cuenta y devuelve su uid.
// HTTP 409 del proveedor se traduce a domain.ErrEmailAlreadyExists.
func (c *HTTPClient) CreateUser(ctx context.Context, email, password string) (string, error) {
	out, status, err := c.post(ctx, "/v1/accounts", accountRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	switch {
	case status == http.StatusConflict:
		return "", domain.ErrEmailAlreadyExists
	case status >= 300:
		return "", c.apiError("crear cuenta", status, out)
	}
	if out.UID == "" {
		return "", fmt.Errorf("identity: respuesta sin uid")
	}
	return out.UID, nil
}

// DeleteUser elimina la cuenta. 404 se trata como éxito: la compensación es idempotente.
func (c *HTTPClient) DeleteUser(ctx context.Context, uid string) error {
	if c.apiKey == "" {
		return fmt.Errorf("identity: IDENTITY_API_KEY no configurado")
	}
	endpoint := c.baseURL + "/v1/accounts/" + url.PathEscape(uid)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("identity: crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 8*1024))
		return fmt.Errorf("identity: eliminar cuenta HTTP %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// VerifyUser valida email+password y devuelve el uid.
// HTTP 401/403 se traduce a domain.ErrUnauthorized.
func (c *HTTPClient) VerifyUser(ctx context.Context, email, password string) (string, error) {
	out, status, err := c.post(ctx, "/v1/accounts:verify", accountRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return "", domain.ErrUnauthorized
	case status >= 300:
		return "", c.apiError("verificar cuenta", status, out)
	}
	if out.UID == "" {
		return "", fmt.Errorf("identity: respuesta sin uid")
	}
	return out.UID, nil
}

func (c *HTTPClient) post(ctx context.Context, path string, payload accountRequest) (*accountResponse, int, error) {
	if c.apiKey == "" {
		return nil, 0, fmt.Errorf("identity: IDENTITY_API_KEY no configurado")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("identity: serializar request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("identity: crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, 0, fmt.Errorf("identity: timeout o cancelación: %w", ctx.Err())
		}
		return nil, 0, fmt.Errorf("identity: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, 0, fmt.Errorf("identity: leer respuesta: %w", err)
	}
	var out accountResponse
	if len(raw) > 0 {
		// El cuerpo de error puede no ser JSON; se ignora el fallo de parseo y
		// el status code decide.
		_ = json.Unmarshal(raw, &out)
	}
	return &out, resp.StatusCode, nil
}

func (c *HTTPClient) apiError(op string, status int, out *accountResponse) error {
	if out != nil && out.Error != nil {
		return fmt.Errorf("identity: %s (%s): %s", op, out.Error.Code, out.Error.Message)
	}
	return fmt.Errorf("identity: %s HTTP %d", op, status)
}
