package entity

import "time"

// Document representa un documento a firmar, propiedad exclusiva de una
// Company. CompanyID es inmutable después de la creación.
//
// Status, Token, OpenID, CreatedBy y ExternalID quedan en su valor cero hasta
// que el proveedor de firma responda con éxito (documento "provisional"); la
// reconciliación los fija con lo que el proveedor reportó.
type Document struct {
	ID            string
	CompanyID     string
	Name          string
	Status        string // etiqueta de ciclo de vida reportada por el proveedor
	Token         string // token del documento en el proveedor
	OpenID        int    // id numérico del documento en el proveedor
	ExternalID    string
	CreatedBy     string // email del creador según el proveedor
	CreatedAt     time.Time
	LastUpdatedAt time.Time
}

// Reconciled informa si el documento ya recibió los datos del proveedor.
func (d *Document) Reconciled() bool {
	return d.Token != ""
}
