package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/esign-api/internal/domain"
	"github.com/jhoicas/esign-api/internal/domain/entity"
	"github.com/jhoicas/esign-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	db DB
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// Create persiste una nueva empresa. El índice único de email se traduce a
// domain.ErrEmailAlreadyExists.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, email, name, password_hash, api_token, is_active, created_at, last_update_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		company.ID, company.Email, company.Name, company.PasswordHash,
		company.APIToken, company.IsActive, company.CreatedAt, company.LastUpdateAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `
		SELECT id, email, name, password_hash, api_token, is_active, created_at, last_update_at
		FROM companies WHERE id = $1`
	var c entity.Company
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Email, &c.Name, &c.PasswordHash, &c.APIToken,
		&c.IsActive, &c.CreatedAt, &c.LastUpdateAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// GetByEmail obtiene una empresa por email.
func (r *CompanyRepo) GetByEmail(email string) (*entity.Company, error) {
	query := `
		SELECT id, email, name, password_hash, api_token, is_active, created_at, last_update_at
		FROM companies WHERE email = $1`
	var c entity.Company
	err := r.db.QueryRow(context.Background(), query, email).Scan(
		&c.ID, &c.Email, &c.Name, &c.PasswordHash, &c.APIToken,
		&c.IsActive, &c.CreatedAt, &c.LastUpdateAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by email: %w", err)
	}
	return &c, nil
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET email = $2, name = $3, password_hash = $4, api_token = $5, is_active = $6, last_update_at = $7
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		company.ID, company.Email, company.Name, company.PasswordHash,
		company.APIToken, company.IsActive, company.LastUpdateAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List devuelve empresas con paginación; onlyActive filtra las desactivadas.
func (r *CompanyRepo) List(onlyActive bool, limit, offset int) ([]*entity.Company, error) {
	query := `
		SELECT id, email, name, password_hash, api_token, is_active, created_at, last_update_at
		FROM companies
		WHERE ($1 = false OR is_active = true)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(context.Background(), query, onlyActive, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Email, &c.Name, &c.PasswordHash, &c.APIToken, &c.IsActive, &c.CreatedAt, &c.LastUpdateAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una empresa por ID (hard delete). Falla con ErrConflict si
// la empresa todavía tiene documentos (FK RESTRICT).
func (r *CompanyRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}
