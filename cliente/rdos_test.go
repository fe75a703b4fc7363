package cliente

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivarCamposData(t *testing.T) {
	casos := []struct {
		data      string
		dia       string
		mes       string
		diaSemana string
	}{
		{"2023-10-12", "12", "OUT", "quinta-feira"},
		{"2023-10-11", "11", "OUT", "quarta-feira"},
		{"2024-01-01", "1", "JAN", "segunda-feira"},
		{"2024-12-25", "25", "DEZ", "quarta-feira"},
		{"2024-06-09", "9", "JUN", "domingo"},
	}

	for _, caso := range casos {
		t.Run(caso.data, func(t *testing.T) {
			dia, mes, diaSemana := derivarCamposData(caso.data)
			assert.Equal(t, caso.dia, dia)
			assert.Equal(t, caso.mes, mes)
			assert.Equal(t, caso.diaSemana, diaSemana)
		})
	}
}

func TestDerivarCamposDataInvalida(t *testing.T) {
	dia, mes, diaSemana := derivarCamposData("12/10/2023")
	assert.Empty(t, dia)
	assert.Empty(t, mes)
	assert.Empty(t, diaSemana)
}

func TestConversorRDODerivaCamposDeData(t *testing.T) {
	rdo := conversorRDO{}.DoWire(Registro{
		"id":             float64(1),
		"data_completa":  "2023-10-10",
		"status":         "Finalizado",
		"trabalhadores":  float64(12),
		"tem_ocorrencia": true,
	})

	assert.Equal(t, "10", rdo.Dia)
	assert.Equal(t, "OUT", rdo.Mes)
	assert.Equal(t, "terça-feira", rdo.DiaSemana)
	assert.Equal(t, 12, rdo.Trabalhadores)
	assert.True(t, rdo.TemOcorrencia)
}

func TestConversorRDOParaWireNaoEnviaCamposDerivados(t *testing.T) {
	r := conversorRDO{}.ParaWire(RDO{DataCompleta: "2023-10-10", Dia: "10", Mes: "OUT", DiaSemana: "terça-feira"})
	assert.NotContains(t, r, "dia")
	assert.NotContains(t, r, "mes")
	assert.NotContains(t, r, "dia_semana")
	assert.Equal(t, "2023-10-10", r.String("data_completa"))
}

func TestSementesRDOsConsistentesComDerivacao(t *testing.T) {
	for _, rdo := range SementesRDOs() {
		dia, mes, diaSemana := derivarCamposData(rdo.DataCompleta)
		assert.Equal(t, rdo.Dia, dia)
		assert.Equal(t, rdo.Mes, mes)
		assert.Equal(t, rdo.DiaSemana, diaSemana)
	}
}
