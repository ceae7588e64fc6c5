package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUnauthorized       = errors.New("acceso no autorizado al recurso")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrForbidden          = errors.New("cuenta inactiva")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// Errores de la orquestación de documentos. Cada paso falla con un error
// distinto para que el caller pueda distinguir "no pasó nada en el proveedor"
// de "el proveedor creó el documento pero la reconciliación local falló".
var (
	ErrDocumentCreateFailed      = errors.New("no se pudo crear el documento local")
	ErrGatewayFailure            = errors.New("fallo en la llamada al proveedor de firma")
	ErrGatewayResponseIncomplete = errors.New("la respuesta del proveedor no contiene todos los campos requeridos")
	ErrDocumentUpdateFailed      = errors.New("no se pudo reconciliar el documento local")
	ErrSignerCreateFailed        = errors.New("no se pudo crear un firmante local")
)
