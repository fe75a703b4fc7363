package local

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalvarCarregarRemover(t *testing.T) {
	armazem, err := AbrirMemoria()
	require.NoError(t, err)
	defer armazem.Fechar()

	_, ok, err := armazem.Carregar(ChaveObras)
	require.NoError(t, err)
	assert.False(t, ok, "chave inexistente não é erro")

	require.NoError(t, armazem.Salvar(ChaveObras, []byte(`[{"id":1}]`)))

	valor, ok, err := armazem.Carregar(ChaveObras)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":1}]`, string(valor))

	require.NoError(t, armazem.Remover(ChaveObras))
	_, ok, err = armazem.Carregar(ChaveObras)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSalvarSobrescreve(t *testing.T) {
	armazem, err := AbrirMemoria()
	require.NoError(t, err)
	defer armazem.Fechar()

	require.NoError(t, armazem.Salvar(ChaveCompras, []byte(`[]`)))
	require.NoError(t, armazem.Salvar(ChaveCompras, []byte(`[{"id":2}]`)))

	valor, ok, err := armazem.Carregar(ChaveCompras)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":2}]`, string(valor))
}

func TestChavesIndependentes(t *testing.T) {
	armazem, err := AbrirMemoria()
	require.NoError(t, err)
	defer armazem.Fechar()

	require.NoError(t, armazem.Salvar(ChaveObras, []byte(`["obras"]`)))
	require.NoError(t, armazem.Salvar(ChaveRDOs, []byte(`["rdos"]`)))
	require.NoError(t, armazem.Remover(ChaveObras))

	_, ok, err := armazem.Carregar(ChaveRDOs)
	require.NoError(t, err)
	assert.True(t, ok, "remover uma chave não afeta as outras")
}

func TestAbrirCriaDiretorio(t *testing.T) {
	caminho := filepath.Join(t.TempDir(), "dados", "hlh.db")
	armazem, err := Abrir(caminho)
	require.NoError(t, err)
	defer armazem.Fechar()

	require.NoError(t, armazem.Salvar(ChaveFotos, []byte(`[]`)))
	assert.FileExists(t, caminho)
}

func TestPersisteEntreAberturas(t *testing.T) {
	caminho := filepath.Join(t.TempDir(), "hlh.db")

	armazem, err := Abrir(caminho)
	require.NoError(t, err)
	require.NoError(t, armazem.Salvar(ChaveContratos, []byte(`[{"id":7}]`)))
	require.NoError(t, armazem.Fechar())

	reaberto, err := Abrir(caminho)
	require.NoError(t, err)
	defer reaberto.Fechar()

	valor, ok, err := reaberto.Carregar(ChaveContratos)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":7}]`, string(valor))
}
