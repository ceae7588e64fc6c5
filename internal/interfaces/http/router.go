package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/esign-api/internal/application/auth"
	"github.com/jhoicas/esign-api/internal/application/signing"
	"github.com/jhoicas/esign-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	CompanyUC        *usecase.CompanyUseCase
	CreateDocumentUC *signing.CreateDocumentUseCase
	DocumentUC       *signing.DocumentUseCase
	SignerUC         *signing.SignerUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Companies (protegido)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	// Documents (protegido)
	documents := protected.Group("/documents")
	documentHandler := NewDocumentHandler(deps.CreateDocumentUC, deps.DocumentUC)
	documents.Post("/", documentHandler.Create)
	documents.Get("/", documentHandler.List)
	documents.Get("/:id", documentHandler.GetByID)
	documents.Put("/:id", documentHandler.Update)
	documents.Delete("/:id", documentHandler.Delete)

	// Signers anidados bajo el documento (protegido)
	signers := protected.Group("/documents/:document_id/signers")
	signerHandler := NewSignerHandler(deps.SignerUC)
	signers.Get("/", signerHandler.List)
	signers.Post("/", signerHandler.Create)
	signers.Get("/:id", signerHandler.GetByID)
	signers.Put("/:id", signerHandler.Update)
	signers.Delete("/:id", signerHandler.Delete)
}
