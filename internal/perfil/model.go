package perfil

import "time"

// FuncaoPadrao é atribuída a perfis recém-criados.
const FuncaoPadrao = "Engenheiro Responsável"

// Perfil é o registro exibível de um usuário; a chave é o id do usuário
// autenticado.
type Perfil struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	NomeCompleto string    `gorm:"size:120" json:"nome_completo"`
	Funcao       string    `gorm:"size:80" json:"funcao"`
	UpdatedAt    time.Time `json:"updated_at"`
	CreatedAt    time.Time `json:"-"`
}
