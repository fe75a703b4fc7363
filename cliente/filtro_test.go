package cliente

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFiltrarTexto(t *testing.T) {
	obras := []Obra{
		{ID: 1, Nome: "Residencial Jardins", Localizacao: "Zona Sul, SP"},
		{ID: 2, Nome: "Edifício Horizon", Localizacao: "Centro, BH"},
		{ID: 3, Nome: "Galpão Logístico Alpha", Localizacao: "Ind. District, SP"},
	}
	campos := func(o Obra) []string { return []string{o.Nome, o.Localizacao} }

	casos := []struct {
		nome     string
		consulta string
		ids      []uint
	}{
		{"consulta vazia devolve tudo", "", []uint{1, 2, 3}},
		{"casa por substring do nome", "jardins", []uint{1}},
		{"ignora maiúsculas", "JARDINS", []uint{1}},
		{"prefixo parcial", "residen", []uint{1}},
		{"casa pela localização", "sp", []uint{1, 3}},
		{"sem resultado", "xyz", nil},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			resultado := FiltrarTexto(obras, caso.consulta, campos)
			var ids []uint
			for _, o := range resultado {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, caso.ids, ids)
		})
	}
}

func TestFiltrarTextoNaoCompartilhaFatia(t *testing.T) {
	obras := []Obra{{ID: 1, Nome: "Obra A"}}
	resultado := FiltrarTexto(obras, "", func(o Obra) []string { return []string{o.Nome} })

	resultado[0].Nome = "mudou"
	assert.Equal(t, "Obra A", obras[0].Nome)
}
