package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/esign-api/internal/domain/entity"
	"github.com/jhoicas/esign-api/internal/domain/repository"
)

// Asegura que SignerRepo implementa repository.SignerRepository.
var _ repository.SignerRepository = (*SignerRepo)(nil)

// SignerRepo implementación del puerto SignerRepository sobre PostgreSQL.
type SignerRepo struct {
	db DB
}

// NewSignerRepository construye el adaptador; acepta el pool o una tx abierta.
func NewSignerRepository(db DB) *SignerRepo {
	return &SignerRepo{db: db}
}

// Create persiste un nuevo firmante.
func (r *SignerRepo) Create(signer *entity.Signer) error {
	query := `
		INSERT INTO signers (id, document_id, name, email, status, token, external_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		signer.ID, signer.DocumentID, signer.Name, signer.Email,
		signer.Status, signer.Token, signer.ExternalID,
	)
	if err != nil {
		return fmt.Errorf("insert signer: %w", err)
	}
	return nil
}

// GetByID obtiene un firmante por ID.
func (r *SignerRepo) GetByID(id string) (*entity.Signer, error) {
	query := `
		SELECT id, document_id, name, email, status, token, external_id
		FROM signers WHERE id = $1`
	var s entity.Signer
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.DocumentID, &s.Name, &s.Email, &s.Status, &s.Token, &s.ExternalID,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get signer: %w", err)
	}
	return &s, nil
}

// ListByDocument devuelve los firmantes de un documento en orden de inserción
// (seq es un BIGSERIAL de la tabla; preserva el orden que reportó el proveedor).
func (r *SignerRepo) ListByDocument(documentID string) ([]*entity.Signer, error) {
	query := `
		SELECT id, document_id, name, email, status, token, external_id
		FROM signers WHERE document_id = $1 ORDER BY seq`
	rows, err := r.db.Query(context.Background(), query, documentID)
	if err != nil {
		return nil, fmt.Errorf("list signers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Signer
	for rows.Next() {
		var s entity.Signer
		if err := rows.Scan(&s.ID, &s.DocumentID, &s.Name, &s.Email, &s.Status, &s.Token, &s.ExternalID); err != nil {
			return nil, fmt.Errorf("scan signer: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un firmante. document_id nunca se toca.
func (r *SignerRepo) Update(signer *entity.Signer) error {
	query := `
		UPDATE signers SET name = $2, email = $3, status = $4, token = $5, external_id = $6
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		signer.ID, signer.Name, signer.Email, signer.Status, signer.Token, signer.ExternalID,
	)
	if err != nil {
		return fmt.Errorf("update signer: %w", err)
	}
	return nil
}

// Delete elimina un firmante por ID.
func (r *SignerRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM signers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete signer: %w", err)
	}
	return nil
}
