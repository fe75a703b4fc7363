package compra

import "time"

const (
	StatusPago     = "Pago"
	StatusPendente = "Pendente"
)

const (
	CategoriaMaterial = "Material"
	CategoriaServico  = "Serviço"
	CategoriaLocacao  = "Locação"
)

// Compra registra um gasto da obra. Preco é string no formato brasileiro
// ("4.500,00"); a soma do resumo faz o parse tolerante a vírgula decimal.
type Compra struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Item       string `gorm:"size:120;not null" json:"item"`
	Preco      string `gorm:"size:30" json:"preco"`
	Fornecedor string `gorm:"size:120" json:"fornecedor"`
	Data       string `gorm:"size:30" json:"data"`
	Status     string `gorm:"size:20;not null" json:"status"`
	Categoria  string `gorm:"size:20" json:"categoria"`
	ObraID     uint   `gorm:"index" json:"obra_id"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
