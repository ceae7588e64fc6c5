package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/esign-api/internal/application/dto"
	"github.com/jhoicas/esign-api/internal/domain"
	"github.com/jhoicas/esign-api/internal/domain/entity"
	"github.com/jhoicas/esign-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas. Las operaciones de
// detalle, actualización y borrado son de autoservicio: solo la propia
// empresa autenticada puede ejecutarlas sobre sí misma.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// GetByID obtiene una empresa. Distingue 404 (no existe) de 403 (existe pero
// no es la empresa autenticada).
func (uc *CompanyUseCase) GetByID(id, authCompanyID string) (*dto.CompanyResponse, error) {
	company, err := uc.resolveOwn(id, authCompanyID)
	if err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// List lista empresas con paginación; onlyActive excluye las desactivadas.
func (uc *CompanyUseCase) List(onlyActive bool, limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica los campos presentes; IsActive en false desactiva la empresa
// (soft delete). Devuelve ErrEmailAlreadyExists si el nuevo email ya está en uso.
func (uc *CompanyUseCase) Update(id, authCompanyID string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.resolveOwn(id, authCompanyID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		company.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email == "" {
			return nil, domain.ErrInvalidInput
		}
		if email != company.Email {
			existing, err := uc.repo.GetByEmail(email)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrEmailAlreadyExists
			}
			company.Email = email
		}
	}
	if in.APIToken != nil {
		company.APIToken = *in.APIToken
	}
	if in.IsActive != nil {
		company.IsActive = *in.IsActive
	}
	company.LastUpdateAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// Delete elimina la empresa (hard delete). Para desactivar sin perder datos
// usar Update con is_active=false.
func (uc *CompanyUseCase) Delete(id, authCompanyID string) error {
	company, err := uc.resolveOwn(id, authCompanyID)
	if err != nil {
		return err
	}
	return uc.repo.Delete(company.ID)
}

func (uc *CompanyUseCase) resolveOwn(id, authCompanyID string) (*entity.Company, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if company.ID != authCompanyID {
		return nil, domain.ErrUnauthorized
	}
	return company, nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:           c.ID,
		Email:        c.Email,
		Name:         c.Name,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
		LastUpdateAt: c.LastUpdateAt,
	}
}
