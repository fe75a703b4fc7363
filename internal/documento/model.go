package documento

import "time"

// Tipos aceitos de documento de obra.
const (
	TipoPDF  = "pdf"
	TipoDWG  = "dwg"
	TipoXLSX = "xlsx"
	TipoJPG  = "jpg"
)

// Documento de obra (plantas, contratos digitalizados, planilhas, fotos
// técnicas). Data é texto de exibição no formato pt-BR.
type Documento struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Nome       string `gorm:"size:160;not null" json:"nome"`
	Data       string `gorm:"size:30" json:"data"`
	Autor      string `gorm:"size:120" json:"autor"`
	Tipo       string `gorm:"size:10;not null" json:"tipo"`
	ArquivoURL string `json:"arquivo_url,omitempty"`
	ObraID     uint   `gorm:"index" json:"obra_id"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TipoValido diz se o tipo informado é um dos aceitos.
func TipoValido(tipo string) bool {
	switch tipo {
	case TipoPDF, TipoDWG, TipoXLSX, TipoJPG:
		return true
	}
	return false
}
