package repository

import "github.com/jhoicas/esign-api/internal/domain/entity"

// SignerRepository define el puerto de persistencia para Signer (DIP).
type SignerRepository interface {
	Create(signer *entity.Signer) error
	// GetByID devuelve nil, nil si el firmante no existe.
	GetByID(id string) (*entity.Signer, error)
	// ListByDocument devuelve los firmantes del documento en orden de creación.
	ListByDocument(documentID string) ([]*entity.Signer, error)
	Update(signer *entity.Signer) error
	Delete(id string) error
}
