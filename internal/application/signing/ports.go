package signing

import (
	"context"

	"github.com/jhoicas/esign-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye los
// repositorios de documentos y firmantes. Si fn retorna error, el caller
// garantiza el rollback de todo lo hecho dentro.
//
// La orquestación lo usa solo para la fase de reconciliación: el documento
// provisional del paso 1 se persiste FUERA de esta transacción y sobrevive a
// cualquier rollback posterior como rastro auditable del intento.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		docRepo repository.DocumentRepository,
		signerRepo repository.SignerRepository,
	) error) error
}
