package signing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/esign-api/internal/application/dto"
	"github.com/jhoicas/esign-api/internal/application/signing"
	"github.com/jhoicas/esign-api/internal/domain"
	"github.com/jhoicas/esign-api/internal/domain/entity"
	"github.com/jhoicas/esign-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de DocumentUseCase: lectura/actualización/borrado con validación de
// propiedad. El contrato clave es la distinción deliberada entre "no existe"
// (ErrNotFound → 404) y "existe pero es de otra empresa" (ErrUnauthorized → 403).
// ──────────────────────────────────────────────────────────────────────────────

const otherCompanyID = "00000000-0000-0000-0000-0000000000c2"

func seedDocument(docRepo *fakeDocumentRepo, id, companyID string) *entity.Document {
	d := &entity.Document{
		ID:            id,
		CompanyID:     companyID,
		Name:          "Contrato de arriendo",
		Status:        "created",
		Token:         "tok-" + id,
		OpenID:        7,
		ExternalID:    "ext-" + id,
		CreatedBy:     "c@x.com",
		CreatedAt:     time.Now(),
		LastUpdatedAt: time.Now(),
	}
	_ = docRepo.Create(d)
	return d
}

func newDocumentUC() (*signing.DocumentUseCase, *fakeDocumentRepo, *fakeSignerRepo) {
	docRepo := newFakeDocumentRepo()
	signerRepo := newFakeSignerRepo()
	return signing.NewDocumentUseCase(docRepo, signerRepo, logger.Nop()), docRepo, signerRepo
}

func TestDocumentGet_ConFirmantes(t *testing.T) {
	uc, docRepo, signerRepo := newDocumentUC()
	seedDocument(docRepo, "d1", testCompanyID)
	_ = signerRepo.Create(&entity.Signer{ID: "s1", DocumentID: "d1", Name: "A", Email: "a@x.com"})
	_ = signerRepo.Create(&entity.Signer{ID: "s2", DocumentID: "d1", Name: "B", Email: "b@x.com"})

	out, err := uc.Get("d1", testCompanyID)
	require.NoError(t, err)
	assert.Equal(t, "tok-d1", out.Token)
	require.Len(t, out.Signers, 2)
	assert.Equal(t, "s1", out.Signers[0].ID, "los firmantes conservan su orden de creación")
}

// Documento inexistente → 404; documento de OTRA empresa → 403. Nunca se
// confunden: un 404 no filtra la existencia de recursos ajenos y un 403 no
// esconde un id mal escrito.
func TestDocumentGet_NotFoundVsUnauthorized(t *testing.T) {
	uc, docRepo, _ := newDocumentUC()
	seedDocument(docRepo, "d1", otherCompanyID)

	_, err := uc.Get("no-existe", testCompanyID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Get("d1", testCompanyID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestDocumentList_SoloDeLaEmpresa(t *testing.T) {
	uc, docRepo, _ := newDocumentUC()
	seedDocument(docRepo, "d1", testCompanyID)
	seedDocument(docRepo, "d2", testCompanyID)
	seedDocument(docRepo, "d3", otherCompanyID)

	out, err := uc.List(testCompanyID)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
}

func TestDocumentUpdate_CamposPresentes(t *testing.T) {
	uc, docRepo, _ := newDocumentUC()
	seedDocument(docRepo, "d1", testCompanyID)

	nuevoNombre := "  Contrato renovado  "
	nuevoStatus := "signed"
	out, err := uc.Update("d1", testCompanyID, dto.UpdateDocumentRequest{
		Name:   &nuevoNombre,
		Status: &nuevoStatus,
	})
	require.NoError(t, err)
	assert.Equal(t, "Contrato renovado", out.Name)
	assert.Equal(t, "signed", out.Status)
	assert.Equal(t, "ext-d1", out.ExternalID, "los campos no enviados no se tocan")
}

func TestDocumentUpdate_NombreVacioRechazado(t *testing.T) {
	uc, docRepo, _ := newDocumentUC()
	seedDocument(docRepo, "d1", testCompanyID)

	vacio := "   "
	_, err := uc.Update("d1", testCompanyID, dto.UpdateDocumentRequest{Name: &vacio})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentUpdate_AjenoRechazado(t *testing.T) {
	uc, docRepo, _ := newDocumentUC()
	seedDocument(docRepo, "d1", otherCompanyID)

	nombre := "hackeado"
	_, err := uc.Update("d1", testCompanyID, dto.UpdateDocumentRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	persisted, _ := docRepo.GetByID("d1")
	assert.Equal(t, "Contrato de arriendo", persisted.Name, "el documento ajeno no debe modificarse")
}

func TestDocumentDelete_OK(t *testing.T) {
	uc, docRepo, _ := newDocumentUC()
	seedDocument(docRepo, "d1", testCompanyID)

	require.NoError(t, uc.Delete("d1", testCompanyID))
	persisted, _ := docRepo.GetByID("d1")
	assert.Nil(t, persisted)
}

// La FK Document→Signer es protect-on-delete: con firmantes vivos el borrado
// devuelve ErrConflict (409) y no elimina nada en cascada.
func TestDocumentDelete_ProtegidoConFirmantes(t *testing.T) {
	uc, docRepo, _ := newDocumentUC()
	seedDocument(docRepo, "d1", testCompanyID)
	docRepo.errDelete = domain.ErrConflict

	err := uc.Delete("d1", testCompanyID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
