package repository

import "github.com/jhoicas/esign-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// Create persiste la empresa. Devuelve domain.ErrEmailAlreadyExists si el
	// email ya está registrado.
	Create(company *entity.Company) error
	// GetByID devuelve nil, nil si la empresa no existe.
	GetByID(id string) (*entity.Company, error)
	// GetByEmail devuelve nil, nil si no hay empresa con ese email.
	GetByEmail(email string) (*entity.Company, error)
	Update(company *entity.Company) error
	// List devuelve empresas paginadas; con onlyActive filtra las desactivadas.
	List(onlyActive bool, limit, offset int) ([]*entity.Company, error)
	Delete(id string) error
}
