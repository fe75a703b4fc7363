package obra

import (
	"time"
)

// Status possíveis de uma obra.
const (
	StatusEmAndamento = "Em Andamento"
	StatusConcluida   = "Concluída"
)

// Obra representa um empreendimento em execução. Os campos JSON seguem o
// formato de coluna (snake_case) consumido pela camada de sincronização.
type Obra struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Nome        string `gorm:"size:120;not null" json:"nome"`
	Localizacao string `gorm:"size:120" json:"localizacao"`
	Progresso   int    `gorm:"not null;default:0" json:"progresso"`
	Status      string `gorm:"size:50;not null" json:"status"`
	Imagem      string `json:"imagem"`
	Descricao   string `json:"descricao,omitempty"`
	DataInicio  string `gorm:"size:30" json:"data_inicio,omitempty"`
	DataFim     string `gorm:"size:30" json:"data_fim,omitempty"`
	MapsURL     string `json:"maps_url,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
