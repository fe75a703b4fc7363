package contrato

import "time"

// Status possíveis de um contrato com fornecedor.
const (
	StatusAtivo      = "Ativo"
	StatusPendente   = "Pendente"
	StatusAtencao    = "Atenção"
	StatusFinalizado = "Finalizado"
)

// Contrato de fornecimento ou serviço vinculado a uma obra. DataVencimento
// é texto livre de exibição ("15/12/2023", "Assinatura pendente").
type Contrato struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Nome           string `gorm:"size:120;not null" json:"nome"`
	Fornecedor     string `gorm:"size:120" json:"fornecedor"`
	Status         string `gorm:"size:30;not null" json:"status"`
	DataVencimento string `gorm:"size:60" json:"data_vencimento"`
	Valor          string `gorm:"size:30" json:"valor,omitempty"`
	Codigo         string `gorm:"size:30" json:"codigo"`
	ObraID         uint   `gorm:"index" json:"obra_id"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
