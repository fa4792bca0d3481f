package services

import "github.com/pkg/errors"

var (
	ErrTelefonoNotFound = errors.New("telefono not found")
	ErrUsuarioNotFound  = errors.New("usuario not found")
	ErrInvalidNumero    = errors.New("numero must contain between 6 and 15 digits")
	ErrInvalidTipo      = errors.New("tipo must be one of movil, casa, trabajo, otro")
	ErrMissingUsuario   = errors.New("telefono must reference a usuario")
	ErrInvalidNombre    = errors.New("nombre is required")
)
