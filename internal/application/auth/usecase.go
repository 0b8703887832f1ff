package auth

import (
	"context"
	"time"

	"github.com/jhoicas/fideliza-api/internal/application/dto"
	"github.com/jhoicas/fideliza-api/internal/application/ports"
	"github.com/jhoicas/fideliza-api/internal/domain"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
	"github.com/jhoicas/fideliza-api/internal/domain/repository"
	"github.com/jhoicas/fideliza-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login de usuarios de staff. Las credenciales viven en el servicio
// de identidad; aquí solo se resuelve el TenantUser y se emite el JWT.
type AuthUseCase struct {
	userRepo repository.TenantUserRepository
	identity ports.IdentityService
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.TenantUserRepository, identity ports.IdentityService, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, identity: identity, jwtCfg: jwtCfg}
}

// Login verifica email/password contra el servicio de identidad, resuelve el
// TenantUser por uid, genera JWT y actualiza lastLogin.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	uid, err := uc.identity.VerifyUser(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByUID(uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Status != entity.UserActivo {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.TenantID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	// Best effort: un fallo al marcar lastLogin no invalida el login.
	_ = uc.userRepo.UpdateLastLogin(user.TenantID, user.ID, now)
	user.LastLogin = &now

	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ToUserResponse mapea la entidad al DTO de salida.
func ToUserResponse(u *entity.TenantUser) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		TenantID:  u.TenantID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		Initials:  u.Initials,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}
