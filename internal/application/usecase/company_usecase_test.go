package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/esign-api/internal/application/dto"
	"github.com/jhoicas/esign-api/internal/application/usecase"
	"github.com/jhoicas/esign-api/internal/domain"
	"github.com/jhoicas/esign-api/internal/domain/entity"
	"github.com/jhoicas/esign-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de CompanyUseCase. Detalle, actualización y borrado son de
// autoservicio: la empresa autenticada solo puede operar sobre sí misma.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	byID    map[string]entity.Company
	byEmail map[string]string
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{byID: make(map[string]entity.Company), byEmail: make(map[string]string)}
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	if _, ok := r.byEmail[c.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byID[c.ID] = *c
	r.byEmail[c.Email] = c.ID
	return nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	copia := c
	return &copia, nil
}

func (r *fakeCompanyRepo) GetByEmail(email string) (*entity.Company, error) {
	id, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return r.GetByID(id)
}

func (r *fakeCompanyRepo) Update(c *entity.Company) error {
	if prev, ok := r.byID[c.ID]; ok && prev.Email != c.Email {
		delete(r.byEmail, prev.Email)
		r.byEmail[c.Email] = c.ID
	}
	r.byID[c.ID] = *c
	return nil
}

func (r *fakeCompanyRepo) List(onlyActive bool, limit, offset int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.byID {
		if onlyActive && !c.IsActive {
			continue
		}
		copia := c
		out = append(out, &copia)
	}
	return out, nil
}

func (r *fakeCompanyRepo) Delete(id string) error {
	if c, ok := r.byID[id]; ok {
		delete(r.byEmail, c.Email)
		delete(r.byID, id)
	}
	return nil
}

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

func seedCompany(repo *fakeCompanyRepo, id, email string, active bool) {
	_ = repo.Create(&entity.Company{
		ID:           id,
		Email:        email,
		Name:         "Empresa " + id,
		PasswordHash: "$2a$10$hash",
		APIToken:     "tok-" + id,
		IsActive:     active,
		CreatedAt:    time.Now(),
		LastUpdateAt: time.Now(),
	})
}

func TestCompanyGetByID_SoloLaPropia(t *testing.T) {
	repo := newFakeCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)
	seedCompany(repo, "c1", "c1@x.com", true)
	seedCompany(repo, "c2", "c2@x.com", true)

	out, err := uc.GetByID("c1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1@x.com", out.Email)

	// Otra empresa existente: 403. Inexistente: 404.
	_, err = uc.GetByID("c2", "c1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.GetByID("no-existe", "c1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyList_FiltraInactivas(t *testing.T) {
	repo := newFakeCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)
	seedCompany(repo, "c1", "c1@x.com", true)
	seedCompany(repo, "c2", "c2@x.com", false)

	todas, err := uc.List(false, 20, 0)
	require.NoError(t, err)
	assert.Len(t, todas.Items, 2)

	activas, err := uc.List(true, 20, 0)
	require.NoError(t, err)
	assert.Len(t, activas.Items, 1)
	assert.Equal(t, 20, activas.Page.Limit)
}

func TestCompanyUpdate_SoftDeleteConIsActive(t *testing.T) {
	repo := newFakeCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)
	seedCompany(repo, "c1", "c1@x.com", true)

	inactiva := false
	out, err := uc.Update("c1", "c1", dto.UpdateCompanyRequest{IsActive: &inactiva})
	require.NoError(t, err)
	assert.False(t, out.IsActive)

	// La fila sigue existiendo: es desactivación, no borrado.
	persisted, _ := repo.GetByID("c1")
	require.NotNil(t, persisted)
	assert.False(t, persisted.IsActive)
}

func TestCompanyUpdate_EmailEnUso(t *testing.T) {
	repo := newFakeCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)
	seedCompany(repo, "c1", "c1@x.com", true)
	seedCompany(repo, "c2", "c2@x.com", true)

	ocupado := "c2@x.com"
	_, err := uc.Update("c1", "c1", dto.UpdateCompanyRequest{Email: &ocupado})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestCompanyUpdate_AjenaRechazada(t *testing.T) {
	repo := newFakeCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)
	seedCompany(repo, "c2", "c2@x.com", true)

	nombre := "hackeada"
	_, err := uc.Update("c2", "c1", dto.UpdateCompanyRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCompanyDelete_HardDeleteSoloPropia(t *testing.T) {
	repo := newFakeCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)
	seedCompany(repo, "c1", "c1@x.com", true)
	seedCompany(repo, "c2", "c2@x.com", true)

	assert.ErrorIs(t, uc.Delete("c2", "c1"), domain.ErrUnauthorized)

	require.NoError(t, uc.Delete("c1", "c1"))
	persisted, _ := repo.GetByID("c1")
	assert.Nil(t, persisted)
}
