package models

// Usuario represents the user that owns phone records
type Usuario struct {
	BaseModel
	Nombre string `gorm:"type:varchar(100);not null" json:"nombre"`
	Email  string `gorm:"type:varchar(100)" json:"email"`

	// Relations
	Telefonos []Telefono `gorm:"foreignKey:UsuarioID" json:"telefonos,omitempty"`
}
