package cliente

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcaoConfirmavelFluxoCompleto(t *testing.T) {
	var executados []uint
	acao := NovaAcaoConfirmavel(func(_ context.Context, id uint) error {
		executados = append(executados, id)
		return nil
	})

	_, pendente := acao.Pendente()
	assert.False(t, pendente)

	acao.Solicitar(3)
	id, pendente := acao.Pendente()
	require.True(t, pendente)
	assert.Equal(t, uint(3), id)
	assert.Empty(t, executados, "solicitar não executa nada")

	require.NoError(t, acao.Confirmar(context.Background()))
	assert.Equal(t, []uint{3}, executados)

	_, pendente = acao.Pendente()
	assert.False(t, pendente, "a pendência some após a confirmação")
}

func TestAcaoConfirmavelCancelar(t *testing.T) {
	executou := false
	acao := NovaAcaoConfirmavel(func(_ context.Context, _ uint) error {
		executou = true
		return nil
	})

	acao.Solicitar(7)
	acao.Cancelar()

	assert.False(t, executou)
	err := acao.Confirmar(context.Background())
	assert.ErrorIs(t, err, ErrNadaPendente)
}

func TestAcaoConfirmavelConfirmarSemSolicitar(t *testing.T) {
	acao := NovaAcaoConfirmavel(func(_ context.Context, _ uint) error { return nil })
	assert.ErrorIs(t, acao.Confirmar(context.Background()), ErrNadaPendente)
}

func TestAcaoConfirmavelNovaSolicitacaoSubstitui(t *testing.T) {
	var ultimo uint
	acao := NovaAcaoConfirmavel(func(_ context.Context, id uint) error {
		ultimo = id
		return nil
	})

	acao.Solicitar(1)
	acao.Solicitar(2)
	require.NoError(t, acao.Confirmar(context.Background()))
	assert.Equal(t, uint(2), ultimo)
}

func TestAcaoConfirmavelErroMantemPendencia(t *testing.T) {
	falha := errors.New("backend fora")
	acao := NovaAcaoConfirmavel(func(_ context.Context, _ uint) error { return falha })

	acao.Solicitar(5)
	require.ErrorIs(t, acao.Confirmar(context.Background()), falha)

	id, pendente := acao.Pendente()
	require.True(t, pendente, "a pendência fica de pé para nova tentativa")
	assert.Equal(t, uint(5), id)
}
