package models

// TipoTelefono classifies a phone number
type TipoTelefono string

const (
	TipoMovil   TipoTelefono = "movil"
	TipoCasa    TipoTelefono = "casa"
	TipoTrabajo TipoTelefono = "trabajo"
	TipoOtro    TipoTelefono = "otro"
)

// Valid reports whether t is one of the known phone types
func (t TipoTelefono) Valid() bool {
	switch t {
	case TipoMovil, TipoCasa, TipoTrabajo, TipoOtro:
		return true
	}
	return false
}

// Telefono represents a phone number owned by a user
type Telefono struct {
	BaseModel
	Numero    string       `gorm:"type:varchar(30);not null" json:"numero"`
	Tipo      TipoTelefono `gorm:"type:varchar(20);default:'movil'" json:"tipo"`
	UsuarioID uint         `gorm:"index;not null" json:"usuario_id"`

	// Relations
	Usuario *Usuario `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
}

// OwnerID returns the referenced user id, preferring the nested reference
func (t *Telefono) OwnerID() uint {
	if t.Usuario != nil && t.Usuario.ID != 0 {
		return t.Usuario.ID
	}
	return t.UsuarioID
}
