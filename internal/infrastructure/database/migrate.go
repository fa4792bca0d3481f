package database

import (
	"telefono-http-service/internal/domain/models"
	Logger "telefono-http-service/pkg/logger"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migration modes
const (
	MigrationAuto = "auto"
	MigrationDrop = "drop"
)

func migratedModels() []interface{} {
	return []interface{}{
		&models.Usuario{},
		&models.Telefono{},
	}
}

// Migrate brings the schema up to date. In "drop" mode every table is dropped
// and recreated first, destroying all data.
func Migrate(db *gorm.DB, mode string) error {
	switch mode {
	case MigrationDrop:
		Logger.Warning("running in drop mode, all tables will be dropped and recreated")
		if err := dropTables(db); err != nil {
			return err
		}
	case MigrationAuto, "":
		Logger.Info("running in auto mode, only new tables and columns are added")
	default:
		return errors.Errorf("unknown migration mode '%s'", mode)
	}

	if err := db.AutoMigrate(migratedModels()...); err != nil {
		return errors.WithStack(err)
	}

	Logger.Info("database migration completed")
	return nil
}

func dropTables(db *gorm.DB) error {
	tables := migratedModels()
	// children first
	for i := len(tables) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(tables[i]); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
