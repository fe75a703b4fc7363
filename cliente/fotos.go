package cliente

import (
	"strconv"

	"github.com/leandroarrudaadv-lab/hlhengenhariateste/cliente/local"
)

// Foto da galeria no formato de exibição.
type Foto struct {
	ID      uint   `json:"id"`
	URL     string `json:"url"`
	Legenda string `json:"legenda"`
	Data    string `json:"data"`
	ObraID  uint   `json:"obraId,omitempty"`
}

var mapeamentoFoto = map[string]string{
	"url":     "url",
	"legenda": "legenda",
	"data":    "data",
	"obraId":  "obra_id",
}

type conversorFoto struct{}

func (conversorFoto) Mapeamento() map[string]string { return mapeamentoFoto }

func (conversorFoto) DoWire(r Registro) Foto {
	return Foto{
		ID:      r.Uint("id"),
		URL:     r.String("url"),
		Legenda: r.String("legenda"),
		Data:    r.String("data"),
		ObraID:  r.Uint("obra_id"),
	}
}

func (conversorFoto) ParaWire(f Foto) Registro {
	r := Registro{
		"url":     f.URL,
		"legenda": f.Legenda,
		"data":    f.Data,
	}
	if f.ObraID != 0 {
		r["obra_id"] = f.ObraID
	}
	if f.ID != 0 {
		r["id"] = f.ID
	}
	return r
}

func (conversorFoto) ID(f Foto) uint { return f.ID }

func NovaLojaFotos(remoto Remoto, obraID uint, opcoes OpcoesLoja) *Loja[Foto] {
	var consulta []OpcaoConsulta
	if obraID != 0 {
		consulta = append(consulta, ComFiltro("obra_id", strconv.FormatUint(uint64(obraID), 10)))
	}
	return NovaLoja(remoto, ConfigLoja[Foto]{
		Colecao:    "fotos",
		Conversor:  conversorFoto{},
		Consulta:   consulta,
		Sementes:   SementesFotos(),
		ChaveLocal: local.ChaveFotos,
	}, opcoes)
}
