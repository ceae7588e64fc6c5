package dto

// RegisterRequest entrada para registrar una empresa.
// APIToken es opcional: si viene vacío se genera uno.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Password string `json:"password" validate:"required,min=8"`
	APIToken string `json:"api_token"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida de login: token de acceso y la empresa autenticada.
type LoginResponse struct {
	Token   string          `json:"token"`
	Company CompanyResponse `json:"company"`
}
