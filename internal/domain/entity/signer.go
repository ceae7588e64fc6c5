package entity

// Signer representa un firmante de un Document. Pertenece siempre a
// exactamente un documento y, transitivamente, a la empresa dueña de éste.
type Signer struct {
	ID         string
	DocumentID string
	Name       string
	Email      string
	Status     string // estado de firma reportado por el proveedor; vacío si es alta manual
	Token      string // token del firmante en el proveedor
	ExternalID string
}
