package dto

import "time"

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
// IsActive en false equivale a desactivación (soft delete).
type UpdateCompanyRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email    *string `json:"email" validate:"omitempty,email"`
	APIToken *string `json:"api_token"`
	IsActive *bool   `json:"is_active"`
}

// CompanyResponse salida de una empresa (sin hash de contraseña).
type CompanyResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	LastUpdateAt time.Time `json:"last_update_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
