package services

import (
	"context"
	"path/filepath"
	"testing"

	"telefono-http-service/internal/domain/models"
	"telefono-http-service/internal/infrastructure/config"
	"telefono-http-service/internal/infrastructure/database"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) (*gorm.DB, *config.Config) {
	t.Helper()

	cfg := &config.Config{
		DBDriver: config.DriverSQLite,
		DBDSN:    filepath.Join(t.TempDir(), "services.sqlite"),
	}

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	t.Cleanup(func() { pool.Close() })

	if err := database.Migrate(pool.GetDB(), database.MigrationAuto); err != nil {
		t.Fatalf("%+v", err)
	}

	return pool.GetDB(), cfg
}

func createUsuario(t *testing.T, svc InterfaceUsuarioService, nombre string) *models.Usuario {
	t.Helper()

	usuario := &models.Usuario{Nombre: nombre}
	if err := svc.CreateUsuario(context.Background(), usuario); err != nil {
		t.Fatalf("%+v", err)
	}
	return usuario
}

func TestTelefonoLifecycle(t *testing.T) {
	db, cfg := newTestDB(t)
	ctx := context.Background()
	usuarios := NewUsuarioService(db, cfg)
	telefonos := NewTelefonoService(db, cfg)

	ana := createUsuario(t, usuarios, "Ana")

	all, err := telefonos.GetAllTelefonos(ctx)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty list, got %d", len(all))
	}

	telefono := &models.Telefono{
		Numero:  "+34 600-123-456",
		Usuario: &models.Usuario{BaseModel: models.BaseModel{ID: ana.ID}},
	}
	if err := telefonos.CreateTelefono(ctx, telefono); err != nil {
		t.Fatalf("%+v", err)
	}

	if telefono.ID == 0 {
		t.Fatal("expected an assigned id")
	}
	if telefono.Numero != "+34600123456" {
		t.Errorf("Numero = %q", telefono.Numero)
	}
	if telefono.Tipo != models.TipoMovil {
		t.Errorf("Tipo = %q", telefono.Tipo)
	}
	if telefono.UsuarioID != ana.ID || telefono.Usuario == nil || telefono.Usuario.Nombre != "Ana" {
		t.Errorf("owner not resolved: %+v", telefono.Usuario)
	}

	all, err = telefonos.GetAllTelefonos(ctx)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if len(all) != 1 || all[0].ID != telefono.ID {
		t.Fatalf("unexpected list %+v", all)
	}

	update := &models.Telefono{
		BaseModel: models.BaseModel{ID: telefono.ID},
		Numero:    "912345678",
		Tipo:      models.TipoCasa,
		UsuarioID: ana.ID,
	}
	if err := telefonos.UpdateTelefono(ctx, update); err != nil {
		t.Fatalf("%+v", err)
	}

	stored, err := telefonos.GetTelefonoByID(ctx, telefono.ID)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if stored.Numero != "912345678" || stored.Tipo != models.TipoCasa {
		t.Errorf("update not persisted: %+v", stored)
	}

	if err := telefonos.DeleteTelefono(ctx, telefono.ID); err != nil {
		t.Fatalf("%+v", err)
	}
	if err := telefonos.DeleteTelefono(ctx, telefono.ID); err != nil {
		t.Fatalf("second delete should be a no-op: %+v", err)
	}

	if _, err := telefonos.GetTelefonoByID(ctx, telefono.ID); !errors.Is(err, ErrTelefonoNotFound) {
		t.Fatalf("expected ErrTelefonoNotFound, got %v", err)
	}
}

func TestCreateTelefonoIgnoresClientID(t *testing.T) {
	db, cfg := newTestDB(t)
	ctx := context.Background()
	ana := createUsuario(t, NewUsuarioService(db, cfg), "Ana")
	telefonos := NewTelefonoService(db, cfg)

	first := &models.Telefono{Numero: "600000001", UsuarioID: ana.ID}
	if err := telefonos.CreateTelefono(ctx, first); err != nil {
		t.Fatalf("%+v", err)
	}

	second := &models.Telefono{
		BaseModel: models.BaseModel{ID: first.ID},
		Numero:    "600000002",
		UsuarioID: ana.ID,
	}
	if err := telefonos.CreateTelefono(ctx, second); err != nil {
		t.Fatalf("%+v", err)
	}

	if second.ID == first.ID {
		t.Fatalf("client supplied id %d was reused", first.ID)
	}

	stored, err := telefonos.GetTelefonoByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if stored.Numero != "600000001" {
		t.Errorf("first record was overwritten: %+v", stored)
	}
}

func TestCreateTelefonoValidation(t *testing.T) {
	db, cfg := newTestDB(t)
	ctx := context.Background()
	ana := createUsuario(t, NewUsuarioService(db, cfg), "Ana")
	telefonos := NewTelefonoService(db, cfg)

	cases := []struct {
		name     string
		telefono models.Telefono
		want     error
	}{
		{"letters", models.Telefono{Numero: "abc", UsuarioID: ana.ID}, ErrInvalidNumero},
		{"too short", models.Telefono{Numero: "123", UsuarioID: ana.ID}, ErrInvalidNumero},
		{"unknown tipo", models.Telefono{Numero: "600000001", Tipo: "fax", UsuarioID: ana.ID}, ErrInvalidTipo},
		{"no owner", models.Telefono{Numero: "600000001"}, ErrMissingUsuario},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			telefono := tc.telefono
			if err := telefonos.CreateTelefono(ctx, &telefono); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}

	all, err := telefonos.GetAllTelefonos(ctx)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if len(all) != 0 {
		t.Errorf("rejected records were persisted: %+v", all)
	}
}

func TestCreateTelefonoDoesNotWriteUsuario(t *testing.T) {
	db, cfg := newTestDB(t)
	ctx := context.Background()
	ana := createUsuario(t, NewUsuarioService(db, cfg), "Ana")
	telefonos := NewTelefonoService(db, cfg)

	telefono := &models.Telefono{
		Numero:  "600000001",
		Usuario: &models.Usuario{BaseModel: models.BaseModel{ID: ana.ID}, Nombre: "Mallory"},
	}
	if err := telefonos.CreateTelefono(ctx, telefono); err != nil {
		t.Fatalf("%+v", err)
	}

	var stored models.Usuario
	if err := db.First(&stored, ana.ID).Error; err != nil {
		t.Fatalf("%+v", err)
	}
	if stored.Nombre != "Ana" {
		t.Errorf("usuario was modified through the phone: %q", stored.Nombre)
	}
}

func TestUsuarioService(t *testing.T) {
	db, cfg := newTestDB(t)
	ctx := context.Background()
	usuarios := NewUsuarioService(db, cfg)

	if err := usuarios.CreateUsuario(ctx, &models.Usuario{Nombre: "  "}); !errors.Is(err, ErrInvalidNombre) {
		t.Fatalf("expected ErrInvalidNombre, got %v", err)
	}

	ana := createUsuario(t, usuarios, "Ana")

	exists, err := usuarios.UserExists(ctx, ana.ID)
	if err != nil || !exists {
		t.Fatalf("UserExists(%d) = %v, %v", ana.ID, exists, err)
	}

	exists, err = usuarios.UserExists(ctx, ana.ID+100)
	if err != nil || exists {
		t.Fatalf("UserExists(missing) = %v, %v", exists, err)
	}

	exists, err = usuarios.UserExists(ctx, 0)
	if err != nil || exists {
		t.Fatalf("UserExists(0) = %v, %v", exists, err)
	}

	if _, err := usuarios.GetUsuarioByID(ctx, ana.ID+100); !errors.Is(err, ErrUsuarioNotFound) {
		t.Fatalf("expected ErrUsuarioNotFound, got %v", err)
	}

	all, err := usuarios.GetAllUsuarios(ctx)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected one usuario, got %d", len(all))
	}
}
