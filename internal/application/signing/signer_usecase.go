package signing

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/esign-api/internal/application/dto"
	"github.com/jhoicas/esign-api/internal/domain"
	"github.com/jhoicas/esign-api/internal/domain/entity"
	"github.com/jhoicas/esign-api/internal/domain/repository"
	"github.com/jhoicas/esign-api/pkg/logger"
)

// SignerUseCase CRUD de firmantes. Toda operación resuelve primero la
// propiedad del documento padre por la empresa autenticada antes de tocar la
// fila del firmante.
type SignerUseCase struct {
	signerRepo repository.SignerRepository
	docRepo    repository.DocumentRepository
	log        *logger.Logger
}

// NewSignerUseCase construye el caso de uso.
func NewSignerUseCase(signerRepo repository.SignerRepository, docRepo repository.DocumentRepository, log *logger.Logger) *SignerUseCase {
	return &SignerUseCase{signerRepo: signerRepo, docRepo: docRepo, log: log}
}

// List devuelve los firmantes de un documento propio.
func (uc *SignerUseCase) List(documentID, companyID string) (*dto.SignerListResponse, error) {
	if _, err := resolveOwnedDocument(uc.docRepo, documentID, companyID); err != nil {
		return nil, err
	}
	signers, err := uc.signerRepo.ListByDocument(documentID)
	if err != nil {
		uc.log.Error().Err(err).
			Str("document_id", documentID).
			Str("operation", "list_signers").
			Msg("no se pudieron listar los firmantes")
		return nil, err
	}
	return &dto.SignerListResponse{Items: toSignerResponses(signers)}, nil
}

// Get devuelve un firmante validando la cadena Signer → Document → Company.
func (uc *SignerUseCase) Get(signerID, companyID string) (*dto.SignerResponse, error) {
	signer, err := resolveOwnedSigner(uc.signerRepo, uc.docRepo, signerID, companyID)
	if err != nil {
		return nil, err
	}
	return toSignerResponse(signer), nil
}

// Create alta manual de un firmante bajo un documento propio. La propiedad se
// valida ANTES de escribir cualquier fila; solo se aceptan name y email — los
// campos del proveedor (token, status, external_id) quedan vacíos.
func (uc *SignerUseCase) Create(documentID, companyID string, in dto.CreateSignerRequest) (*dto.SignerResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := resolveOwnedDocument(uc.docRepo, documentID, companyID); err != nil {
		return nil, err
	}
	signer := &entity.Signer{
		ID:         uuid.New().String(),
		DocumentID: documentID,
		Name:       strings.TrimSpace(in.Name),
		Email:      strings.TrimSpace(in.Email),
	}
	if err := uc.signerRepo.Create(signer); err != nil {
		uc.log.Error().Err(err).
			Str("document_id", documentID).
			Str("operation", "create_signer").
			Msg("no se pudo crear el firmante")
		return nil, err
	}
	return toSignerResponse(signer), nil
}

// Update aplica los campos presentes sobre un firmante propio.
func (uc *SignerUseCase) Update(signerID, companyID string, in dto.UpdateSignerRequest) (*dto.SignerResponse, error) {
	signer, err := resolveOwnedSigner(uc.signerRepo, uc.docRepo, signerID, companyID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		signer.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		if strings.TrimSpace(*in.Email) == "" {
			return nil, domain.ErrInvalidInput
		}
		signer.Email = strings.TrimSpace(*in.Email)
	}
	if err := uc.signerRepo.Update(signer); err != nil {
		uc.log.Error().Err(err).
			Str("signer_id", signerID).
			Str("operation", "update_signer").
			Msg("no se pudo actualizar el firmante")
		return nil, err
	}
	return toSignerResponse(signer), nil
}

// Delete elimina un firmante propio.
func (uc *SignerUseCase) Delete(signerID, companyID string) error {
	signer, err := resolveOwnedSigner(uc.signerRepo, uc.docRepo, signerID, companyID)
	if err != nil {
		return err
	}
	if err := uc.signerRepo.Delete(signer.ID); err != nil {
		uc.log.Error().Err(err).
			Str("signer_id", signerID).
			Str("operation", "delete_signer").
			Msg("no se pudo eliminar el firmante")
		return err
	}
	return nil
}
