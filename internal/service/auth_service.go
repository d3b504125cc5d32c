package service

import (
	"context"
	"errors"
	"time"

	"reservas/internal/config"
	"reservas/internal/dto"
	"reservas/internal/model"
	"reservas/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Registrar(ctx context.Context, req dto.RegistrarUsuarioRequest) (*dto.UsuarioResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Perfil(ctx context.Context, correo string) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	ObtenerUsuario(ctx context.Context, correo string) (*dto.UsuarioResponse, error)
	ActualizarUsuario(ctx context.Context, correo string, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Registrar(ctx context.Context, req dto.RegistrarUsuarioRequest) (*dto.UsuarioResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Contrasena), 12)
	if err != nil {
		return nil, err
	}

	user := &model.Usuario{
		Correo:        req.Correo,
		Nombres:       req.Nombres,
		Apellidos:     req.Apellidos,
		PasswordHash:  string(hash),
		Rango:         "usuario", // signup never grants elevated roles
		FechaCreacion: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCorreoRegistrado
		}
		return nil, err
	}
	return usuarioToResponse(user), nil
}

// Login verifies credentials and maintains the lockout bookkeeping: each
// failed attempt increments the per-account counter, crossing the configured
// threshold locks the account, and a successful login resets everything and
// stamps ultimo_login.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByCorreo(ctx, req.Correo)
	if err != nil {
		// Same error as a bad password — no account enumeration.
		return nil, ErrCredencialesInvalidas
	}

	if user.Bloqueado {
		return nil, ErrCuentaBloqueada
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Contrasena)) != nil {
		user.IntentosLogin++
		if user.IntentosLogin >= s.maxIntentos() {
			user.Bloqueado = true
		}
		if updErr := s.repo.Update(ctx, user); updErr != nil {
			return nil, updErr
		}
		if user.Bloqueado {
			return nil, ErrCuentaBloqueada
		}
		return nil, ErrCredencialesInvalidas
	}

	ahora := time.Now().UTC()
	user.IntentosLogin = 0
	user.Bloqueado = false
	user.UltimoLogin = &ahora
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationMinutes * 60,
		Usuario:     *usuarioToResponse(user),
	}, nil
}

func (s *authService) Perfil(ctx context.Context, correo string) (*dto.UsuarioResponse, error) {
	return s.ObtenerUsuario(ctx, correo)
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(usuarios))
	for i := range usuarios {
		resp[i] = *usuarioToResponse(&usuarios[i])
	}
	return resp, nil
}

func (s *authService) ObtenerUsuario(ctx context.Context, correo string) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByCorreo(ctx, correo)
	if err != nil {
		return nil, ErrUsuarioNoEncontrado
	}
	return usuarioToResponse(user), nil
}

// ActualizarUsuario applies an explicit partial update: only non-nil fields,
// each validated at the DTO boundary. Unlocking an account also resets the
// failed-attempt counter.
func (s *authService) ActualizarUsuario(ctx context.Context, correo string, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByCorreo(ctx, correo)
	if err != nil {
		return nil, ErrUsuarioNoEncontrado
	}

	if req.Nombres != nil {
		user.Nombres = *req.Nombres
	}
	if req.Apellidos != nil {
		user.Apellidos = *req.Apellidos
	}
	if req.Rango != nil {
		user.Rango = *req.Rango
	}
	if req.Contrasena != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Contrasena), 12)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if req.Bloqueado != nil {
		user.Bloqueado = *req.Bloqueado
		if !user.Bloqueado {
			user.IntentosLogin = 0
		}
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return usuarioToResponse(user), nil
}

func (s *authService) maxIntentos() int {
	if s.cfg.MaxLoginAttempts > 0 {
		return s.cfg.MaxLoginAttempts
	}
	return 10
}

func (s *authService) generateToken(user *model.Usuario) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"correo": user.Correo,
		"rango":  user.Rango,
		"exp":    now.Add(time.Duration(s.cfg.JWTExpirationMinutes) * time.Minute).Unix(),
		"iat":    now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func usuarioToResponse(u *model.Usuario) *dto.UsuarioResponse {
	var ultimo *string
	if u.UltimoLogin != nil {
		s := u.UltimoLogin.Format(time.RFC3339)
		ultimo = &s
	}
	return &dto.UsuarioResponse{
		Correo:        u.Correo,
		Nombres:       u.Nombres,
		Apellidos:     u.Apellidos,
		Rango:         u.Rango,
		IntentosLogin: u.IntentosLogin,
		Bloqueado:     u.Bloqueado,
		FechaCreacion: u.FechaCreacion.Format(time.RFC3339),
		UltimoLogin:   ultimo,
	}
}
