package cliente

import (
	"context"
	"errors"
	"sync"
)

// ErrNadaPendente indica confirmação sem solicitação anterior.
var ErrNadaPendente = errors.New("cliente: nenhuma ação pendente de confirmação")

// AcaoConfirmavel separa a intenção ("quero excluir o item 3") da execução
// ("confirmei"), como o modal de confirmação das telas. Uma instância serve
// a qualquer ação destrutiva parametrizada por id.
//
// Máquina de estados: ocioso → pendente(id) → {ocioso (cancelar) |
// ocioso + ação executada (confirmar)}.
type AcaoConfirmavel struct {
	mu          sync.Mutex
	pendenteID  uint
	temPendente bool
	acao        func(context.Context, uint) error
}

func NovaAcaoConfirmavel(acao func(context.Context, uint) error) *AcaoConfirmavel {
	return &AcaoConfirmavel{acao: acao}
}

// Solicitar marca o id como pendente sem executar nada. Uma nova
// solicitação substitui a anterior.
func (a *AcaoConfirmavel) Solicitar(id uint) {
	a.mu.Lock()
	a.pendenteID = id
	a.temPendente = true
	a.mu.Unlock()
}

// Cancelar descarta a pendência sem efeito colateral.
func (a *AcaoConfirmavel) Cancelar() {
	a.mu.Lock()
	a.temPendente = false
	a.pendenteID = 0
	a.mu.Unlock()
}

// Pendente devolve o id aguardando confirmação, se houver.
func (a *AcaoConfirmavel) Pendente() (uint, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pendenteID, a.temPendente
}

// Confirmar executa a ação sobre o id pendente. A pendência só é limpa
// quando a ação dá certo; em caso de erro o chamador pode confirmar de
// novo ou cancelar.
func (a *AcaoConfirmavel) Confirmar(ctx context.Context) error {
	a.mu.Lock()
	if !a.temPendente {
		a.mu.Unlock()
		return ErrNadaPendente
	}
	id := a.pendenteID
	a.mu.Unlock()

	if err := a.acao(ctx, id); err != nil {
		return err
	}
	a.Cancelar()
	return nil
}
