package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/esign-api/internal/application/dto"
	"github.com/jhoicas/esign-api/internal/domain"
	"github.com/jhoicas/esign-api/internal/domain/entity"
	"github.com/jhoicas/esign-api/internal/domain/repository"
	"github.com/jhoicas/esign-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login de empresas.
// El principal autenticado ES la empresa (tenant).
type AuthUseCase struct {
	companyRepo repository.CompanyRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(companyRepo repository.CompanyRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{companyRepo: companyRepo, jwtCfg: jwtCfg}
}

// Register crea una empresa: hashea el password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.CompanyResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := uc.companyRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	apiToken := in.APIToken
	if apiToken == "" {
		apiToken = uuid.New().String()
	}
	now := time.Now()
	company := &entity.Company{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         in.Name,
		PasswordHash: string(hash),
		APIToken:     apiToken,
		IsActive:     true,
		CreatedAt:    now,
		LastUpdateAt: now,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Login verifica email/password, genera JWT y retorna token + empresa.
// Email desconocido y password incorrecto devuelven el mismo error para no
// filtrar qué cuentas existen.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	company, err := uc.companyRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(company.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !company.IsActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, company.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	company.LastUpdateAt = time.Now()
	if err := uc.companyRepo.Update(company); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Company: *toCompanyResponse(company),
	}, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:           c.ID,
		Email:        c.Email,
		Name:         c.Name,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
		LastUpdateAt: c.LastUpdateAt,
	}
}
