package service_test

import (
	"context"
	"testing"

	"reservas/internal/config"
	"reservas/internal/dto"
	"reservas/internal/model"
	"reservas/internal/repository"
	"reservas/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubUsuarioRepo is an in-memory UsuarioRepository for testing.
type stubUsuarioRepo struct {
	usuarios map[string]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[string]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if _, ok := r.usuarios[u.Correo]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.usuarios[u.Correo] = u
	return nil
}

func (r *stubUsuarioRepo) FindByCorreo(_ context.Context, correo string) (*model.Usuario, error) {
	u, ok := r.usuarios[correo]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.Correo] = u
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func buildAuthSvc(maxIntentos int) (service.AuthService, *stubUsuarioRepo) {
	repo := newStubUsuarioRepo()
	cfg := &config.Config{
		JWTSecret:            "test-secret",
		JWTExpirationMinutes: 30,
		MaxLoginAttempts:     maxIntentos,
	}
	return service.NewAuthService(repo, cfg), repo
}

func registrar(t *testing.T, svc service.AuthService, correo, pass string) {
	t.Helper()
	_, err := svc.Registrar(context.Background(), dto.RegistrarUsuarioRequest{
		Correo:     correo,
		Nombres:    "Ana",
		Apellidos:  "García",
		Contrasena: pass,
	})
	require.NoError(t, err)
}

func TestRegistrar_CorreoDuplicado(t *testing.T) {
	svc, repo := buildAuthSvc(10)
	registrar(t, svc, "ana@mail.com", "secreta123")

	_, err := svc.Registrar(context.Background(), dto.RegistrarUsuarioRequest{
		Correo:     "ana@mail.com",
		Nombres:    "Otra",
		Apellidos:  "Persona",
		Contrasena: "distinta123",
	})
	assert.ErrorIs(t, err, service.ErrCorreoRegistrado)

	// Signup never grants elevated roles
	assert.Equal(t, "usuario", repo.usuarios["ana@mail.com"].Rango)
}

func TestLogin_Exitoso(t *testing.T) {
	svc, repo := buildAuthSvc(10)
	registrar(t, svc, "ana@mail.com", "secreta123")

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Correo:     "ana@mail.com",
		Contrasena: "secreta123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 30*60, resp.ExpiresIn)
	assert.NotNil(t, repo.usuarios["ana@mail.com"].UltimoLogin)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	svc, _ := buildAuthSvc(10)
	registrar(t, svc, "ana@mail.com", "secreta123")

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Correo:     "ana@mail.com",
		Contrasena: "equivocada",
	})
	assert.ErrorIs(t, err, service.ErrCredencialesInvalidas)

	// A nonexistent account yields the same error — no enumeration
	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Correo:     "nadie@mail.com",
		Contrasena: "loquesea",
	})
	assert.ErrorIs(t, err, service.ErrCredencialesInvalidas)
}

func TestLogin_BloqueoPorIntentosFallidos(t *testing.T) {
	svc, repo := buildAuthSvc(3)
	registrar(t, svc, "ana@mail.com", "secreta123")

	bad := dto.LoginRequest{Correo: "ana@mail.com", Contrasena: "equivocada"}

	_, err := svc.Login(context.Background(), bad)
	assert.ErrorIs(t, err, service.ErrCredencialesInvalidas)
	_, err = svc.Login(context.Background(), bad)
	assert.ErrorIs(t, err, service.ErrCredencialesInvalidas)

	// The attempt that reaches the threshold locks the account
	_, err = svc.Login(context.Background(), bad)
	assert.ErrorIs(t, err, service.ErrCuentaBloqueada)
	assert.True(t, repo.usuarios["ana@mail.com"].Bloqueado)

	// Even the correct password is rejected while locked
	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Correo:     "ana@mail.com",
		Contrasena: "secreta123",
	})
	assert.ErrorIs(t, err, service.ErrCuentaBloqueada)
}

func TestLogin_ExitoReiniciaContador(t *testing.T) {
	svc, repo := buildAuthSvc(10)
	registrar(t, svc, "ana@mail.com", "secreta123")

	bad := dto.LoginRequest{Correo: "ana@mail.com", Contrasena: "equivocada"}
	for i := 0; i < 4; i++ {
		_, _ = svc.Login(context.Background(), bad)
	}
	assert.Equal(t, 4, repo.usuarios["ana@mail.com"].IntentosLogin)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Correo:     "ana@mail.com",
		Contrasena: "secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, repo.usuarios["ana@mail.com"].IntentosLogin)
}

func TestActualizarUsuario_DesbloqueoReiniciaIntentos(t *testing.T) {
	svc, repo := buildAuthSvc(2)
	registrar(t, svc, "ana@mail.com", "secreta123")

	bad := dto.LoginRequest{Correo: "ana@mail.com", Contrasena: "equivocada"}
	_, _ = svc.Login(context.Background(), bad)
	_, err := svc.Login(context.Background(), bad)
	assert.ErrorIs(t, err, service.ErrCuentaBloqueada)

	desbloqueado := false
	resp, err := svc.ActualizarUsuario(context.Background(), "ana@mail.com", dto.ActualizarUsuarioRequest{
		Bloqueado: &desbloqueado,
	})
	require.NoError(t, err)
	assert.False(t, resp.Bloqueado)
	assert.Equal(t, 0, repo.usuarios["ana@mail.com"].IntentosLogin)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Correo:     "ana@mail.com",
		Contrasena: "secreta123",
	})
	assert.NoError(t, err)
}

func TestActualizarUsuario_CambioDeRango(t *testing.T) {
	svc, _ := buildAuthSvc(10)
	registrar(t, svc, "ana@mail.com", "secreta123")

	rango := "administrador"
	resp, err := svc.ActualizarUsuario(context.Background(), "ana@mail.com", dto.ActualizarUsuarioRequest{
		Rango: &rango,
	})
	require.NoError(t, err)
	assert.Equal(t, "administrador", resp.Rango)

	_, err = svc.ActualizarUsuario(context.Background(), "nadie@mail.com", dto.ActualizarUsuarioRequest{Rango: &rango})
	assert.ErrorIs(t, err, service.ErrUsuarioNoEncontrado)
}
