package signing

import (
	"strings"
	"time"

	"github.com/jhoicas/esign-api/internal/application/dto"
	"github.com/jhoicas/esign-api/internal/domain"
	"github.com/jhoicas/esign-api/internal/domain/repository"
	"github.com/jhoicas/esign-api/pkg/logger"
)

// DocumentUseCase operaciones de lectura/actualización/borrado de documentos,
// siempre con validación de propiedad contra la empresa autenticada.
type DocumentUseCase struct {
	docRepo    repository.DocumentRepository
	signerRepo repository.SignerRepository
	log        *logger.Logger
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(docRepo repository.DocumentRepository, signerRepo repository.SignerRepository, log *logger.Logger) *DocumentUseCase {
	return &DocumentUseCase{docRepo: docRepo, signerRepo: signerRepo, log: log}
}

// Get devuelve el documento con sus firmantes. ErrNotFound si no existe,
// ErrUnauthorized si pertenece a otra empresa.
func (uc *DocumentUseCase) Get(documentID, companyID string) (*dto.DocumentResponse, error) {
	document, err := resolveOwnedDocument(uc.docRepo, documentID, companyID)
	if err != nil {
		return nil, err
	}
	signers, err := uc.signerRepo.ListByDocument(document.ID)
	if err != nil {
		uc.log.Error().Err(err).
			Str("document_id", documentID).
			Str("operation", "get_document").
			Msg("no se pudieron cargar los firmantes")
		return nil, err
	}
	out := toDocumentResponse(document)
	out.Signers = toSignerResponses(signers)
	return out, nil
}

// List devuelve los documentos de la empresa autenticada (sin firmantes).
func (uc *DocumentUseCase) List(companyID string) (*dto.DocumentListResponse, error) {
	documents, err := uc.docRepo.ListByCompany(companyID)
	if err != nil {
		uc.log.Error().Err(err).
			Str("company_id", companyID).
			Str("operation", "list_documents").
			Msg("no se pudieron listar los documentos")
		return nil, err
	}
	items := make([]dto.DocumentResponse, 0, len(documents))
	for _, d := range documents {
		items = append(items, *toDocumentResponse(d))
	}
	return &dto.DocumentListResponse{Items: items}, nil
}

// Update aplica los campos presentes. CompanyID es inmutable; name, status y
// external_id pueden revisarse explícitamente incluso después de la
// reconciliación.
func (uc *DocumentUseCase) Update(documentID, companyID string, in dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	document, err := resolveOwnedDocument(uc.docRepo, documentID, companyID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		document.Name = strings.TrimSpace(*in.Name)
	}
	if in.Status != nil {
		document.Status = *in.Status
	}
	if in.ExternalID != nil {
		document.ExternalID = *in.ExternalID
	}
	document.LastUpdatedAt = time.Now()
	if err := uc.docRepo.Update(document); err != nil {
		uc.log.Error().Err(err).
			Str("document_id", documentID).
			Str("operation", "update_document").
			Msg("no se pudo actualizar el documento")
		return nil, err
	}
	return toDocumentResponse(document), nil
}

// Delete elimina el documento local. La FK Document→Signer es protect-on-delete:
// si todavía hay firmantes el repositorio devuelve ErrConflict y no se borra
// nada en silencio.
func (uc *DocumentUseCase) Delete(documentID, companyID string) error {
	document, err := resolveOwnedDocument(uc.docRepo, documentID, companyID)
	if err != nil {
		return err
	}
	if err := uc.docRepo.Delete(document.ID); err != nil {
		if err != domain.ErrConflict {
			uc.log.Error().Err(err).
				Str("document_id", documentID).
				Str("operation", "delete_document").
				Msg("no se pudo eliminar el documento")
		}
		return err
	}
	return nil
}
