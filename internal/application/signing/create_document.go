package signing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/esign-api/internal/application/dto"
	"github.com/jhoicas/esign-api/internal/domain"
	"github.com/jhoicas/esign-api/internal/domain/entity"
	"github.com/jhoicas/esign-api/internal/domain/repository"
	"github.com/jhoicas/esign-api/internal/infrastructure/zapsign"
	"github.com/jhoicas/esign-api/pkg/logger"
)

// CreateDocumentUseCase orquesta el alta de un documento con sus firmantes
// como una unidad lógica que cruza la base local y el proveedor de firma:
//
//	Documento provisional local → POST ZapSign → reconciliación + firmantes (tx)
//
// Política transaccional: el documento provisional del paso 1 se persiste en
// su propio commit y sobrevive a cualquier fallo posterior, como rastro
// auditable del intento. La reconciliación (update del documento + alta de
// firmantes) corre completa dentro de UNA transacción: o queda todo, o el
// documento vuelve a su estado provisional.
//
// La llamada remota no es idempotente: reenviar tras un timeout puede crear
// un documento duplicado en el proveedor. No se reintenta nada automáticamente.
type CreateDocumentUseCase struct {
	docRepo    repository.DocumentRepository
	signerRepo repository.SignerRepository
	gateway    zapsign.DocumentGateway
	txRunner   TxRunner
	log        *logger.Logger
}

// NewCreateDocumentUseCase construye la orquestación con todas sus dependencias.
func NewCreateDocumentUseCase(
	docRepo repository.DocumentRepository,
	signerRepo repository.SignerRepository,
	gateway zapsign.DocumentGateway,
	txRunner TxRunner,
	log *logger.Logger,
) *CreateDocumentUseCase {
	return &CreateDocumentUseCase{
		docRepo:    docRepo,
		signerRepo: signerRepo,
		gateway:    gateway,
		txRunner:   txRunner,
		log:        log,
	}
}

// CreateDocument ejecuta el workflow completo. companyID viene de la
// identidad autenticada; los errores retornados son siempre sentinelas de
// domain para que el handler los traduzca a status HTTP.
func (uc *CreateDocumentUseCase) CreateDocument(ctx context.Context, companyID string, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	// 0. Validación de entrada, antes de cualquier efecto: ni fila local ni
	// llamada remota si el input está malformado.
	if err := validateCreateInput(companyID, in); err != nil {
		return nil, err
	}

	// 1. Documento provisional local, en su propio commit. Garantiza que todo
	// intento de orquestación deja registro local aunque lo remoto falle.
	now := time.Now()
	document := &entity.Document{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		Name:          strings.TrimSpace(in.Name),
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	if err := uc.docRepo.Create(document); err != nil {
		uc.log.Error().Err(err).
			Str("company_id", companyID).
			Str("operation", "create_document").
			Msg("no se pudo crear el documento local")
		return nil, domain.ErrDocumentCreateFailed
	}

	// 2. Petición remota: un descriptor por firmante del caller, con modo de
	// autenticación fijo y notificación automática activada (políticas del
	// workflow, no configurables).
	req := zapsign.CreateDocumentRequest{
		Name:    document.Name,
		URLPDF:  in.URLPDF,
		Signers: make([]zapsign.SignerRequest, 0, len(in.Signers)),
	}
	for _, s := range in.Signers {
		req.Signers = append(req.Signers, zapsign.SignerRequest{
			Name:               s.Name,
			Email:              s.Email,
			AuthMode:           zapsign.AuthModeAssinaturaTela,
			SendAutomaticEmail: true,
		})
	}

	// 3. Llamada al proveedor. Cualquier fallo (HTTP no-201, timeout, cuerpo
	// malformado) aborta aquí: el documento queda provisional y no se crea
	// ningún firmante.
	resp, err := uc.gateway.CreateDocument(ctx, req)
	if err != nil {
		uc.log.Error().Err(err).
			Str("document_id", document.ID).
			Str("operation", "create_document").
			Msg("fallo al crear el documento en ZapSign")
		return nil, domain.ErrGatewayFailure
	}

	// 4. Los cinco campos son obligatorios para la consistencia local: si
	// falta cualquiera, el workflow falla aunque la llamada haya "funcionado".
	if resp == nil || resp.Token == "" || resp.Status == "" || resp.OpenID == 0 ||
		resp.CreatedBy.Email == "" || resp.ExternalID == "" {
		uc.log.Error().
			Str("document_id", document.ID).
			Str("operation", "create_document").
			Msg("respuesta de ZapSign incompleta")
		return nil, domain.ErrGatewayResponseIncomplete
	}

	// 5 y 6. Reconciliación en una sola transacción: update del documento con
	// lo que el proveedor reportó y un firmante local por cada firmante de la
	// lista REMOTA (la autoritativa: puede reordenar, enriquecer o rechazar
	// entradas respecto a la del caller). Un conjunto parcial de firmantes no
	// es aceptable: el primer fallo aborta y revierte todo.
	var signers []*entity.Signer
	err = uc.txRunner.Run(ctx, func(docRepo repository.DocumentRepository, signerRepo repository.SignerRepository) error {
		document.Token = resp.Token
		document.Status = resp.Status
		document.OpenID = resp.OpenID
		document.CreatedBy = resp.CreatedBy.Email
		document.ExternalID = resp.ExternalID
		document.LastUpdatedAt = time.Now()
		if err := docRepo.Update(document); err != nil {
			uc.log.Error().Err(err).
				Str("document_id", document.ID).
				Str("operation", "create_document").
				Msg("no se pudo reconciliar el documento")
			return domain.ErrDocumentUpdateFailed
		}

		signers = make([]*entity.Signer, 0, len(resp.Signers))
		for _, rs := range resp.Signers {
			signer := &entity.Signer{
				ID:         uuid.New().String(),
				DocumentID: document.ID,
				Name:       rs.Name,
				Email:      rs.Email,
				Status:     rs.Status,
				Token:      rs.Token,
				ExternalID: rs.ExternalID,
			}
			if err := signerRepo.Create(signer); err != nil {
				uc.log.Error().Err(err).
					Str("document_id", document.ID).
					Str("signer_email", rs.Email).
					Str("operation", "create_document").
					Msg("no se pudo crear el firmante local")
				return domain.ErrSignerCreateFailed
			}
			signers = append(signers, signer)
		}
		return nil
	})
	if err != nil {
		switch err {
		case domain.ErrDocumentUpdateFailed, domain.ErrSignerCreateFailed:
			return nil, err
		default:
			// Begin/Commit fallido: la reconciliación no quedó persistida.
			uc.log.Error().Err(err).
				Str("document_id", document.ID).
				Str("operation", "create_document").
				Msg("transacción de reconciliación fallida")
			return nil, domain.ErrDocumentUpdateFailed
		}
	}

	// 7. Documento reconciliado con sus firmantes adjuntos.
	out := toDocumentResponse(document)
	out.Signers = toSignerResponses(signers)
	return out, nil
}

func validateCreateInput(companyID string, in dto.CreateDocumentRequest) error {
	if companyID == "" {
		return domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return domain.ErrInvalidInput
	}
	// Sin localizador del PDF no hay nada que el proveedor pueda firmar: es
	// un error de entrada duro, no un fallo remoto.
	if strings.TrimSpace(in.URLPDF) == "" {
		return domain.ErrInvalidInput
	}
	if len(in.Signers) == 0 {
		return domain.ErrInvalidInput
	}
	for _, s := range in.Signers {
		if strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.Email) == "" {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// ── mappers compartidos del paquete ───────────────────────────────────────────

func toDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	if d == nil {
		return nil
	}
	return &dto.DocumentResponse{
		ID:            d.ID,
		CompanyID:     d.CompanyID,
		Name:          d.Name,
		Status:        d.Status,
		Token:         d.Token,
		OpenID:        d.OpenID,
		ExternalID:    d.ExternalID,
		CreatedBy:     d.CreatedBy,
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

func toSignerResponse(s *entity.Signer) *dto.SignerResponse {
	if s == nil {
		return nil
	}
	return &dto.SignerResponse{
		ID:         s.ID,
		DocumentID: s.DocumentID,
		Name:       s.Name,
		Email:      s.Email,
		Status:     s.Status,
		Token:      s.Token,
		ExternalID: s.ExternalID,
	}
}

func toSignerResponses(signers []*entity.Signer) []dto.SignerResponse {
	items := make([]dto.SignerResponse, 0, len(signers))
	for _, s := range signers {
		items = append(items, *toSignerResponse(s))
	}
	return items
}
