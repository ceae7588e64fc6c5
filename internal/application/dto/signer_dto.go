package dto

// CreateSignerRequest alta manual de un firmante bajo un documento existente.
// Solo se aceptan name y email: token, status y external_id son del proveedor
// y no pueden fijarse desde el caller.
type CreateSignerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=255"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateSignerRequest entrada para actualizar un firmante (campos opcionales).
type UpdateSignerRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// SignerResponse salida de un firmante.
type SignerResponse struct {
	ID         string `json:"id"`
	DocumentID string `json:"document_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Status     string `json:"status"`
	Token      string `json:"token"`
	ExternalID string `json:"external_id"`
}

// SignerListResponse lista de firmantes de un documento.
type SignerListResponse struct {
	Items []SignerResponse `json:"items"`
}
