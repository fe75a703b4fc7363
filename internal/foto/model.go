package foto

import "time"

// Foto da galeria de uma obra.
type Foto struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	URL     string `gorm:"not null" json:"url"`
	Legenda string `gorm:"size:160" json:"legenda"`
	Data    string `gorm:"size:30" json:"data"`
	ObraID  uint   `gorm:"index" json:"obra_id"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
