package rdo

import "time"

const (
	StatusEmAndamento = "Em Andamento"
	StatusFinalizado  = "Finalizado"
	StatusRascunho    = "Rascunho"
)

// RDO é o Relatório Diário de Obra: um registro por dia de trabalho.
// DataCompleta guarda a data no formato ISO (2006-01-02); os campos de
// exibição (dia, mês, dia da semana) são derivados na leitura pelo cliente.
type RDO struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	DataCompleta  string `gorm:"size:10;not null" json:"data_completa"`
	Status        string `gorm:"size:30;not null" json:"status"`
	Descricao     string `json:"descricao"`
	Clima         string `gorm:"size:60" json:"clima"`
	Trabalhadores int    `json:"trabalhadores"`
	TemOcorrencia bool   `json:"tem_ocorrencia"`
	ObraID        uint   `gorm:"index" json:"obra_id"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
