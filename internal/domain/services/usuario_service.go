package services

import (
	"context"
	"strings"

	"telefono-http-service/internal/domain/models"
	"telefono-http-service/internal/infrastructure/config"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InterfaceUsuarioService defines the user service interface
type InterfaceUsuarioService interface {
	UserLookup
	GetAllUsuarios(ctx context.Context) ([]models.Usuario, error)
	GetUsuarioByID(ctx context.Context, id uint) (*models.Usuario, error)
	CreateUsuario(ctx context.Context, usuario *models.Usuario) error
}

// UsuarioService manages users stored in the local database
type UsuarioService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUsuarioService creates a new user service
func NewUsuarioService(db *gorm.DB, cfg *config.Config) InterfaceUsuarioService {
	return &UsuarioService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllUsuarios returns every user ordered by id
func (s *UsuarioService) GetAllUsuarios(ctx context.Context) ([]models.Usuario, error) {
	usuarios := make([]models.Usuario, 0)
	if err := s.DB.WithContext(ctx).Order("id").Find(&usuarios).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return usuarios, nil
}

// 2 GetUsuarioByID returns a user with its phones or ErrUsuarioNotFound
func (s *UsuarioService) GetUsuarioByID(ctx context.Context, id uint) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := s.DB.WithContext(ctx).Preload("Telefonos").First(&usuario, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(ErrUsuarioNotFound)
		}
		return nil, errors.WithStack(err)
	}
	return &usuario, nil
}

// 3 CreateUsuario persists a new user
func (s *UsuarioService) CreateUsuario(ctx context.Context, usuario *models.Usuario) error {
	usuario.Nombre = strings.TrimSpace(usuario.Nombre)
	if usuario.Nombre == "" {
		return errors.WithStack(ErrInvalidNombre)
	}

	usuario.BaseModel = models.BaseModel{}
	usuario.Telefonos = nil

	if err := s.DB.WithContext(ctx).Omit(clause.Associations).Create(usuario).Error; err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// 4 UserExists implements UserLookup against the local database
func (s *UsuarioService) UserExists(ctx context.Context, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}

	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Usuario{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, errors.WithStack(err)
	}
	return count > 0, nil
}
