package entity

import "time"

// Company representa una empresa/tenant del sistema. Es a la vez el principal
// autenticado: las credenciales de login pertenecen a la empresa, no a un
// usuario individual.
type Company struct {
	ID           string
	Email        string // único en todo el sistema
	Name         string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	APIToken     string // token de la cuenta en el proveedor de firma
	IsActive     bool   // false = desactivada (soft delete)
	CreatedAt    time.Time
	LastUpdateAt time.Time
}
