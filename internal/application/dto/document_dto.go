package dto

import "time"

// SignerInput un firmante tal como lo envía el caller al crear un documento.
// El modo de autenticación y la notificación automática son políticas fijas
// del workflow, no configurables por el caller.
type SignerInput struct {
	Name  string `json:"name" validate:"required,min=1,max=255"`
	Email string `json:"email" validate:"required,email"`
}

// CreateDocumentRequest entrada de la orquestación de creación de documentos.
type CreateDocumentRequest struct {
	Name    string        `json:"name" validate:"required,min=1,max=255"`
	URLPDF  string        `json:"url_pdf" validate:"required,url"`
	Signers []SignerInput `json:"signers" validate:"required,min=1,dive"`
}

// UpdateDocumentRequest entrada para actualizar un documento (campos opcionales).
// CompanyID nunca es actualizable.
type UpdateDocumentRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=255"`
	Status     *string `json:"status" validate:"omitempty,max=50"`
	ExternalID *string `json:"external_id" validate:"omitempty,max=255"`
}

// DocumentResponse salida de un documento; Signers solo viene poblado en el
// detalle y en la respuesta de creación.
type DocumentResponse struct {
	ID            string           `json:"id"`
	CompanyID     string           `json:"company_id"`
	Name          string           `json:"name"`
	Status        string           `json:"status"`
	Token         string           `json:"token"`
	OpenID        int              `json:"open_id"`
	ExternalID    string           `json:"external_id"`
	CreatedBy     string           `json:"created_by"`
	CreatedAt     time.Time        `json:"created_at"`
	LastUpdatedAt time.Time        `json:"last_updated_at"`
	Signers       []SignerResponse `json:"signers,omitempty"`
}

// DocumentListResponse lista de documentos de una empresa.
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
}
