package cliente

import (
	"strconv"

	"github.com/leandroarrudaadv-lab/hlhengenhariateste/cliente/local"
)

// Contrato no formato de exibição.
type Contrato struct {
	ID             uint   `json:"id"`
	Nome           string `json:"nome"`
	Fornecedor     string `json:"fornecedor"`
	Status         string `json:"status"`
	DataVencimento string `json:"dataVencimento"`
	Valor          string `json:"valor,omitempty"`
	Codigo         string `json:"codigo"`
	ObraID         uint   `json:"obraId,omitempty"`
}

var mapeamentoContrato = map[string]string{
	"nome":           "nome",
	"fornecedor":     "fornecedor",
	"status":         "status",
	"dataVencimento": "data_vencimento",
	"valor":          "valor",
	"codigo":         "codigo",
	"obraId":         "obra_id",
}

type conversorContrato struct{}

func (conversorContrato) Mapeamento() map[string]string { return mapeamentoContrato }

func (conversorContrato) DoWire(r Registro) Contrato {
	return Contrato{
		ID:             r.Uint("id"),
		Nome:           r.String("nome"),
		Fornecedor:     r.String("fornecedor"),
		Status:         r.String("status"),
		DataVencimento: r.String("data_vencimento"),
		Valor:          r.String("valor"),
		Codigo:         r.String("codigo"),
		ObraID:         r.Uint("obra_id"),
	}
}

func (conversorContrato) ParaWire(c Contrato) Registro {
	r := Registro{
		"nome":            c.Nome,
		"fornecedor":      c.Fornecedor,
		"status":          c.Status,
		"data_vencimento": c.DataVencimento,
		"valor":           c.Valor,
		"codigo":          c.Codigo,
	}
	if c.ObraID != 0 {
		r["obra_id"] = c.ObraID
	}
	if c.ID != 0 {
		r["id"] = c.ID
	}
	return r
}

func (conversorContrato) ID(c Contrato) uint { return c.ID }

// NovaLojaContratos cria a loja de contratos; obraID zero lista todos.
func NovaLojaContratos(remoto Remoto, obraID uint, opcoes OpcoesLoja) *Loja[Contrato] {
	var consulta []OpcaoConsulta
	if obraID != 0 {
		consulta = append(consulta, ComFiltro("obra_id", strconv.FormatUint(uint64(obraID), 10)))
	}
	return NovaLoja(remoto, ConfigLoja[Contrato]{
		Colecao:    "contratos",
		Conversor:  conversorContrato{},
		Consulta:   consulta,
		Sementes:   SementesContratos(),
		ChaveLocal: local.ChaveContratos,
	}, opcoes)
}
