package cliente

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFiltrarPorAba(t *testing.T) {
	documentos := SementesDocumentos()

	ids := func(docs []Documento) []uint {
		var resultado []uint
		for _, d := range docs {
			resultado = append(resultado, d.ID)
		}
		return resultado
	}

	t.Run("todos", func(t *testing.T) {
		assert.Equal(t, []uint{1, 2, 3, 4, 5}, ids(FiltrarPorAba(documentos, AbaTodos)))
	})

	t.Run("aba vazia equivale a todos", func(t *testing.T) {
		assert.Equal(t, []uint{1, 2, 3, 4, 5}, ids(FiltrarPorAba(documentos, "")))
	})

	t.Run("plantas por nome ou dwg", func(t *testing.T) {
		assert.Equal(t, []uint{1, 3}, ids(FiltrarPorAba(documentos, AbaPlantas)))
	})

	t.Run("contratos por nome", func(t *testing.T) {
		assert.Equal(t, []uint{2}, ids(FiltrarPorAba(documentos, AbaContratos)))
	})

	t.Run("relatórios por xlsx ou orçamento", func(t *testing.T) {
		assert.Equal(t, []uint{5}, ids(FiltrarPorAba(documentos, AbaRelatorios)))
	})
}

func TestFiltrarPorAbaNaoCompartilhaFatia(t *testing.T) {
	documentos := []Documento{{ID: 1, Nome: "Planta Baixa", Tipo: "pdf"}}
	resultado := FiltrarPorAba(documentos, AbaTodos)

	resultado[0].Nome = "mudou"
	assert.Equal(t, "Planta Baixa", documentos[0].Nome)
}
