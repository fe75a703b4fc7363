package colaborador

import (
	"time"

	"github.com/leandroarrudaadv-lab/hlhengenhariateste/internal/obra"
)

// Colaborador é um membro da equipe, opcionalmente alocado em uma obra.
// ProjetoAtual é resolvido na leitura a partir da relação; o nome da obra
// nunca é gravado de forma autoritativa nesta tabela.
type Colaborador struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Nome        string `gorm:"size:120;not null" json:"nome"`
	Funcao      string `gorm:"size:80" json:"funcao"`
	Salario     string `gorm:"size:30" json:"salario"`
	Foto        string `json:"foto"`
	ObraAtualID *uint  `gorm:"index" json:"obra_atual_id,omitempty"`

	ObraAtual    *obra.Obra `gorm:"foreignKey:ObraAtualID" json:"-"`
	ProjetoAtual string     `gorm:"-" json:"projeto_atual"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// preencherProjetoAtual copia o nome da obra alocada para o campo
// desnormalizado de exibição.
func (c *Colaborador) preencherProjetoAtual() {
	if c.ObraAtual != nil {
		c.ProjetoAtual = c.ObraAtual.Nome
	}
}
