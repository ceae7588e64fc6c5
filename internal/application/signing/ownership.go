package signing

import (
	"github.com/jhoicas/esign-api/internal/domain"
	"github.com/jhoicas/esign-api/internal/domain/entity"
	"github.com/jhoicas/esign-api/internal/domain/repository"
)

// resolveOwnedDocument busca el documento y valida su pertenencia a la
// empresa. Distingue deliberadamente "no existe" (ErrNotFound, 404) de
// "existe pero es de otra empresa" (ErrUnauthorized, 403): la propiedad se
// verifica siempre contra la identidad autenticada, nunca contra input del
// caller.
func resolveOwnedDocument(docRepo repository.DocumentRepository, documentID, companyID string) (*entity.Document, error) {
	document, err := docRepo.GetByID(documentID)
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, domain.ErrNotFound
	}
	if document.CompanyID != companyID {
		return nil, domain.ErrUnauthorized
	}
	return document, nil
}

// resolveOwnedSigner busca el firmante y valida la cadena de propiedad
// completa: Signer → Document → Company.
func resolveOwnedSigner(signerRepo repository.SignerRepository, docRepo repository.DocumentRepository, signerID, companyID string) (*entity.Signer, error) {
	signer, err := signerRepo.GetByID(signerID)
	if err != nil {
		return nil, err
	}
	if signer == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := resolveOwnedDocument(docRepo, signer.DocumentID, companyID); err != nil {
		return nil, err
	}
	return signer, nil
}
