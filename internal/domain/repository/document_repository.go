package repository

import "github.com/jhoicas/esign-api/internal/domain/entity"

// DocumentRepository define el puerto de persistencia para Document (DIP).
type DocumentRepository interface {
	Create(document *entity.Document) error
	// GetByID devuelve nil, nil si el documento no existe. La validación de
	// propiedad NO es responsabilidad del repositorio.
	GetByID(id string) (*entity.Document, error)
	ListByCompany(companyID string) ([]*entity.Document, error)
	Update(document *entity.Document) error
	// Delete devuelve domain.ErrConflict si el documento todavía tiene
	// firmantes (la FK es protect-on-delete, nunca cascade).
	Delete(id string) error
}
