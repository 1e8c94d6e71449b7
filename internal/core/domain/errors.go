package domain

import "errors"

// Authentication and registration failures.
var (
	ErrMissingField       = errors.New("campos obrigatórios ausentes")
	ErrEmailTaken         = errors.New("e-mail já cadastrado")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrTooManyAttempts    = errors.New("muitas tentativas de login")
)

// Identity gate failures. ErrTokenInvalid covers both a bad signature and an
// expired token; the two are indistinguishable to the caller on purpose.
var (
	ErrTokenMissing = errors.New("token ausente")
	ErrTokenInvalid = errors.New("token inválido")
	ErrSubjectGone  = errors.New("usuário não encontrado")
)

// Record-layer failures.
var (
	ErrProcessNotFound  = errors.New("processo não encontrado")
	ErrPetitionNotFound = errors.New("petição não encontrada")
	ErrForbidden        = errors.New("acesso negado")
)
