package signing_test

import (
	"context"
	"errors"
	"sort"

	"github.com/jhoicas/esign-api/internal/application/signing"
	"github.com/jhoicas/esign-api/internal/domain/entity"
	"github.com/jhoicas/esign-api/internal/domain/repository"
	"github.com/jhoicas/esign-api/internal/infrastructure/zapsign"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los tests del paquete signing.
//
// Los repositorios guardan copias de las entidades (nunca los punteros del
// caller) para que los tests puedan asertar sobre el estado persistido sin
// aliasing accidental. Los flags err* permiten inyectar fallos en operaciones
// concretas.
// ──────────────────────────────────────────────────────────────────────────────

var errDB = errors.New("fallo simulado de base de datos")

type fakeDocumentRepo struct {
	docs map[string]entity.Document

	errCreate error
	errUpdate error
	errDelete error
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[string]entity.Document)}
}

func (r *fakeDocumentRepo) Create(document *entity.Document) error {
	if r.errCreate != nil {
		return r.errCreate
	}
	r.docs[document.ID] = *document
	return nil
}

func (r *fakeDocumentRepo) GetByID(id string) (*entity.Document, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	copia := d
	return &copia, nil
}

func (r *fakeDocumentRepo) ListByCompany(companyID string) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range r.docs {
		if d.CompanyID == companyID {
			copia := d
			out = append(out, &copia)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeDocumentRepo) Update(document *entity.Document) error {
	if r.errUpdate != nil {
		return r.errUpdate
	}
	r.docs[document.ID] = *document
	return nil
}

func (r *fakeDocumentRepo) Delete(id string) error {
	if r.errDelete != nil {
		return r.errDelete
	}
	delete(r.docs, id)
	return nil
}

var _ repository.DocumentRepository = (*fakeDocumentRepo)(nil)

type fakeSignerRepo struct {
	signers map[string]entity.Signer
	order   []string // orden de inserción, como el seq de la tabla real

	errCreate error
	errUpdate error
	errDelete error

	// failCreateAfter aborta el create del firmante N+1 (0-indexed). -1
	// desactiva el fallo. Permite simular un alta parcial dentro de la tx.
	failCreateAfter int
	creates         int
}

func newFakeSignerRepo() *fakeSignerRepo {
	return &fakeSignerRepo{signers: make(map[string]entity.Signer), failCreateAfter: -1}
}

func (r *fakeSignerRepo) Create(signer *entity.Signer) error {
	if r.errCreate != nil {
		return r.errCreate
	}
	if r.failCreateAfter >= 0 && r.creates >= r.failCreateAfter {
		return errDB
	}
	r.creates++
	r.signers[signer.ID] = *signer
	r.order = append(r.order, signer.ID)
	return nil
}

func (r *fakeSignerRepo) GetByID(id string) (*entity.Signer, error) {
	s, ok := r.signers[id]
	if !ok {
		return nil, nil
	}
	copia := s
	return &copia, nil
}

func (r *fakeSignerRepo) ListByDocument(documentID string) ([]*entity.Signer, error) {
	var out []*entity.Signer
	for _, id := range r.order {
		s := r.signers[id]
		if s.DocumentID == documentID {
			copia := s
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeSignerRepo) Update(signer *entity.Signer) error {
	if r.errUpdate != nil {
		return r.errUpdate
	}
	r.signers[signer.ID] = *signer
	return nil
}

func (r *fakeSignerRepo) Delete(id string) error {
	if r.errDelete != nil {
		return r.errDelete
	}
	delete(r.signers, id)
	for i, sid := range r.order {
		if sid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

var _ repository.SignerRepository = (*fakeSignerRepo)(nil)

// fakeTxRunner emula la semántica transaccional sobre los fakes: toma un
// snapshot de ambos repositorios antes de ejecutar fn y lo restaura si fn
// retorna error. errBegin simula un Begin/Commit fallido sin ejecutar fn.
type fakeTxRunner struct {
	docRepo    *fakeDocumentRepo
	signerRepo *fakeSignerRepo
	errBegin   error
	runs       int
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(repository.DocumentRepository, repository.SignerRepository) error) error {
	tx.runs++
	if tx.errBegin != nil {
		return tx.errBegin
	}

	docsSnap := make(map[string]entity.Document, len(tx.docRepo.docs))
	for k, v := range tx.docRepo.docs {
		docsSnap[k] = v
	}
	signersSnap := make(map[string]entity.Signer, len(tx.signerRepo.signers))
	for k, v := range tx.signerRepo.signers {
		signersSnap[k] = v
	}
	orderSnap := append([]string(nil), tx.signerRepo.order...)

	if err := fn(tx.docRepo, tx.signerRepo); err != nil {
		tx.docRepo.docs = docsSnap
		tx.signerRepo.signers = signersSnap
		tx.signerRepo.order = orderSnap
		return err
	}
	return nil
}

var _ signing.TxRunner = (*fakeTxRunner)(nil)

// fakeGateway registra cada invocación y devuelve la respuesta o el error
// configurados. calls==0 después del test prueba que la validación cortó
// antes de tocar la red.
type fakeGateway struct {
	resp    *zapsign.DocumentResponse
	err     error
	calls   int
	lastReq zapsign.CreateDocumentRequest
}

func (g *fakeGateway) CreateDocument(_ context.Context, req zapsign.CreateDocumentRequest) (*zapsign.DocumentResponse, error) {
	g.calls++
	g.lastReq = req
	if g.err != nil {
		return nil, g.err
	}
	return g.resp, nil
}

func (g *fakeGateway) GetDocument(_ context.Context, token string) (*zapsign.DocumentResponse, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.resp, nil
}

func (g *fakeGateway) DeleteDocument(_ context.Context, token string) error {
	return g.err
}

var _ zapsign.DocumentGateway = (*fakeGateway)(nil)
