package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/esign-api/internal/domain"
	"github.com/jhoicas/esign-api/internal/domain/entity"
	"github.com/jhoicas/esign-api/internal/domain/repository"
)

// Asegura que DocumentRepo implementa repository.DocumentRepository.
var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación del puerto DocumentRepository sobre PostgreSQL.
// Los campos del proveedor (status, token, open_id, external_id, created_by)
// se guardan con su valor cero mientras el documento sigue provisional.
type DocumentRepo struct {
	db DB
}

// NewDocumentRepository construye el adaptador; acepta el pool o una tx abierta.
func NewDocumentRepository(db DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

// Create persiste un nuevo documento.
func (r *DocumentRepo) Create(document *entity.Document) error {
	query := `
		INSERT INTO documents (id, company_id, name, status, token, open_id, external_id, created_by, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(context.Background(), query,
		document.ID, document.CompanyID, document.Name, document.Status,
		document.Token, document.OpenID, document.ExternalID, document.CreatedBy,
		document.CreatedAt, document.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByID obtiene un documento por ID.
func (r *DocumentRepo) GetByID(id string) (*entity.Document, error) {
	query := `
		SELECT id, company_id, name, status, token, open_id, external_id, created_by, created_at, last_updated_at
		FROM documents WHERE id = $1`
	var d entity.Document
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.CompanyID, &d.Name, &d.Status, &d.Token, &d.OpenID,
		&d.ExternalID, &d.CreatedBy, &d.CreatedAt, &d.LastUpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}

// ListByCompany devuelve los documentos de una empresa, más recientes primero.
func (r *DocumentRepo) ListByCompany(companyID string) ([]*entity.Document, error) {
	query := `
		SELECT id, company_id, name, status, token, open_id, external_id, created_by, created_at, last_updated_at
		FROM documents WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var list []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.Name, &d.Status, &d.Token, &d.OpenID, &d.ExternalID, &d.CreatedBy, &d.CreatedAt, &d.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza un documento. company_id nunca se toca: es inmutable.
func (r *DocumentRepo) Update(document *entity.Document) error {
	query := `
		UPDATE documents SET name = $2, status = $3, token = $4, open_id = $5, external_id = $6, created_by = $7, last_updated_at = $8
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		document.ID, document.Name, document.Status, document.Token,
		document.OpenID, document.ExternalID, document.CreatedBy, document.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	return nil
}

// Delete elimina un documento. La FK signers.document_id es RESTRICT: si
// todavía hay firmantes, el borrado falla con domain.ErrConflict en vez de
// arrastrarlos en cascada.
func (r *DocumentRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}
