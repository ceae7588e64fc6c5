package zapsign

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jhoicas/esign-api/pkg/config"
)

// AuthModeAssinaturaTela es el modo de autenticación por defecto del workflow
// de creación: firma sobre pantalla.
const AuthModeAssinaturaTela = "assinaturaTela"

// ── Puerto (interfaz) ──────────────────────────────────────────────────────────

// DocumentGateway define el puerto de salida hacia el proveedor de firma
// electrónica. La implementación concreta usa HTTP/JSON; para tests se puede
// inyectar un mock.
type DocumentGateway interface {
	// CreateDocument registra el documento y sus firmantes en el proveedor.
	// Espera 201; cualquier otro status o fallo de transporte es error.
	CreateDocument(ctx context.Context, req CreateDocumentRequest) (*DocumentResponse, error)
	// GetDocument consulta el documento remoto por su token. Espera 200.
	GetDocument(ctx context.Context, token string) (*DocumentResponse, error)
	// DeleteDocument elimina el documento remoto por su token. Espera 200 o 204.
	DeleteDocument(ctx context.Context, token string) error
}

// ── Tipos de cable ─────────────────────────────────────────────────────────────

// SignerRequest descriptor de un firmante en la petición de creación.
type SignerRequest struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	AuthMode           string `json:"auth_mode"`
	SendAutomaticEmail bool   `json:"send_automatic_email"`
}

// CreateDocumentRequest cuerpo JSON de la creación remota. URLPDF y Base64PDF
// son variantes de configuración: exactamente una debe venir poblada.
type CreateDocumentRequest struct {
	Name      string          `json:"name"`
	URLPDF    string          `json:"url_pdf,omitempty"`
	Base64PDF string          `json:"base64_pdf,omitempty"`
	Signers   []SignerRequest `json:"signers"`
}

// CreatedBy identifica al creador del documento según el proveedor.
type CreatedBy struct {
	Email string `json:"email"`
}

// SignerResponse un firmante tal como lo reporta el proveedor.
type SignerResponse struct {
	Token      string `json:"token"`
	Status     string `json:"status"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ExternalID string `json:"external_id"`
}

// DocumentResponse respuesta del proveedor para creación y consulta.
type DocumentResponse struct {
	Token      string           `json:"token"`
	Status     string           `json:"status"`
	OpenID     int              `json:"open_id"`
	CreatedBy  CreatedBy        `json:"created_by"`
	ExternalID string           `json:"external_id"`
	Signers    []SignerResponse `json:"signers"`
}

// APIError error de la API del proveedor: status no esperado con el cuerpo de
// la respuesta para diagnóstico.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("zapsign: status %d: %s", e.StatusCode, e.Body)
}

// ── Implementación HTTP ────────────────────────────────────────────────────────

// Client implementa DocumentGateway contra la API REST de ZapSign.
// Usa net/http de la stdlib; la credencial Bearer viene de la configuración
// inyectada, sin estado global.
type Client struct {
	cfg        config.ZapSignConfig
	httpClient *http.Client
}

// NewClient construye el cliente con el timeout de la configuración (el
// proveedor no define contrato de timeout; sin uno explícito un cuelgue
// bloquearía el hilo de la petición indefinidamente).
func NewClient(cfg config.ZapSignConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
	}
}

var _ DocumentGateway = (*Client)(nil)

// CreateDocument registra el documento en ZapSign. Falla rápido con error de
// entrada si no viene ninguna forma de localizar el PDF.
func (c *Client) CreateDocument(ctx context.Context, req CreateDocumentRequest) (*DocumentResponse, error) {
	if req.URLPDF == "" && req.Base64PDF == "" {
		return nil, fmt.Errorf("zapsign: se requiere url_pdf o base64_pdf")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("zapsign: serializar petición: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("zapsign: crear request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("zapsign: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("zapsign: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // max 1 MB
	if err != nil {
		return nil, fmt.Errorf("zapsign: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusCreated {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(rawBody)}
	}

	var out DocumentResponse
	if err := json.Unmarshal(rawBody, &out); err != nil {
		return nil, fmt.Errorf("zapsign: parsear respuesta: %w", err)
	}
	return &out, nil
}

// GetDocument consulta el documento remoto: GET {base}{token}/.
func (c *Client) GetDocument(ctx context.Context, token string) (*DocumentResponse, error) {
	if token == "" {
		return nil, fmt.Errorf("zapsign: token vacío")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.documentURL(token), nil)
	if err != nil {
		return nil, fmt.Errorf("zapsign: crear request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("zapsign: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("zapsign: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(rawBody)}
	}

	var out DocumentResponse
	if err := json.Unmarshal(rawBody, &out); err != nil {
		return nil, fmt.Errorf("zapsign: parsear respuesta: %w", err)
	}
	return &out, nil
}

// DeleteDocument elimina el documento remoto: DELETE {base}{token}/.
func (c *Client) DeleteDocument(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("zapsign: token vacío")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.documentURL(token), nil)
	if err != nil {
		return fmt.Errorf("zapsign: crear request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("zapsign: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("zapsign: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return &APIError{StatusCode: resp.StatusCode, Body: string(rawBody)}
	}
	return nil
}

func (c *Client) documentURL(token string) string {
	return c.cfg.BaseURL + token + "/"
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIToken)
	req.Header.Set("Content-Type", "application/json")
}
