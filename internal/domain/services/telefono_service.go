package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"telefono-http-service/internal/domain/models"
	"telefono-http-service/internal/infrastructure/config"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var numeroPattern = regexp.MustCompile(`^\+?[0-9]{6,15}$`)

// InterfaceTelefonoService defines the phone record store
type InterfaceTelefonoService interface {
	GetAllTelefonos(ctx context.Context) ([]models.Telefono, error)
	GetTelefonoByID(ctx context.Context, id uint) (*models.Telefono, error)
	CreateTelefono(ctx context.Context, telefono *models.Telefono) error
	UpdateTelefono(ctx context.Context, telefono *models.Telefono) error
	DeleteTelefono(ctx context.Context, id uint) error
}

// TelefonoService stores phone records with gorm
type TelefonoService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewTelefonoService creates a new phone service
func NewTelefonoService(db *gorm.DB, cfg *config.Config) InterfaceTelefonoService {
	return &TelefonoService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllTelefonos returns every phone record ordered by id
func (s *TelefonoService) GetAllTelefonos(ctx context.Context) ([]models.Telefono, error) {
	telefonos := make([]models.Telefono, 0)
	if err := s.DB.WithContext(ctx).Preload("Usuario").Order("id").Find(&telefonos).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return telefonos, nil
}

// 2 GetTelefonoByID returns a phone record or ErrTelefonoNotFound
func (s *TelefonoService) GetTelefonoByID(ctx context.Context, id uint) (*models.Telefono, error) {
	var telefono models.Telefono
	if err := s.DB.WithContext(ctx).Preload("Usuario").First(&telefono, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(ErrTelefonoNotFound)
		}
		return nil, errors.WithStack(err)
	}
	return &telefono, nil
}

// 3 CreateTelefono persists a new phone record. The id is always assigned by the
// database and the referenced usuario is never written.
func (s *TelefonoService) CreateTelefono(ctx context.Context, telefono *models.Telefono) error {
	if err := normalizeTelefono(telefono); err != nil {
		return err
	}

	telefono.BaseModel = models.BaseModel{}

	if err := s.DB.WithContext(ctx).Omit(clause.Associations).Create(telefono).Error; err != nil {
		return errors.WithStack(err)
	}

	return s.reload(ctx, telefono)
}

// 4 UpdateTelefono replaces the mutable fields of an existing phone record
func (s *TelefonoService) UpdateTelefono(ctx context.Context, telefono *models.Telefono) error {
	if telefono.ID == 0 {
		return errors.WithStack(ErrTelefonoNotFound)
	}
	if err := normalizeTelefono(telefono); err != nil {
		return err
	}

	telefono.UpdatedAt = time.Now()

	err := s.DB.WithContext(ctx).
		Model(&models.Telefono{BaseModel: models.BaseModel{ID: telefono.ID}}).
		Select("Numero", "Tipo", "UsuarioID", "UpdatedAt").
		Updates(telefono).Error
	if err != nil {
		return errors.WithStack(err)
	}

	return s.reload(ctx, telefono)
}

// 5 DeleteTelefono removes a phone record, a missing id is not an error
func (s *TelefonoService) DeleteTelefono(ctx context.Context, id uint) error {
	if err := s.DB.WithContext(ctx).Delete(&models.Telefono{}, id).Error; err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func (s *TelefonoService) reload(ctx context.Context, telefono *models.Telefono) error {
	stored, err := s.GetTelefonoByID(ctx, telefono.ID)
	if err != nil {
		return err
	}
	*telefono = *stored
	return nil
}

func normalizeTelefono(telefono *models.Telefono) error {
	numero := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "").Replace(telefono.Numero)
	if !numeroPattern.MatchString(numero) {
		return errors.WithStack(ErrInvalidNumero)
	}
	telefono.Numero = numero

	if telefono.Tipo == "" {
		telefono.Tipo = models.TipoMovil
	}
	telefono.Tipo = models.TipoTelefono(strings.ToLower(string(telefono.Tipo)))
	if !telefono.Tipo.Valid() {
		return errors.WithStack(ErrInvalidTipo)
	}

	telefono.UsuarioID = telefono.OwnerID()
	telefono.Usuario = nil
	if telefono.UsuarioID == 0 {
		return errors.WithStack(ErrMissingUsuario)
	}

	return nil
}
