package cliente

import (
	"github.com/leandroarrudaadv-lab/hlhengenhariateste/cliente/local"
	"github.com/leandroarrudaadv-lab/hlhengenhariateste/internal/utils"
)

// Colaborador no formato de exibição. ProjetoAtual é o nome da obra
// alocada, resolvido pelo backend na leitura — nunca é gravado pelo
// cliente.
type Colaborador struct {
	ID           uint   `json:"id"`
	Nome         string `json:"nome"`
	Funcao       string `json:"funcao"`
	Salario      string `json:"salario"`
	Foto         string `json:"foto"`
	ProjetoAtual string `json:"projetoAtual"`
	ObraAtualID  uint   `json:"obraAtualId,omitempty"`
}

var mapeamentoColaborador = map[string]string{
	"nome":        "nome",
	"funcao":      "funcao",
	"salario":     "salario",
	"foto":        "foto",
	"obraAtualId": "obra_atual_id",
}

type conversorColaborador struct{}

func (conversorColaborador) Mapeamento() map[string]string { return mapeamentoColaborador }

func (conversorColaborador) DoWire(r Registro) Colaborador {
	c := Colaborador{
		ID:           r.Uint("id"),
		Nome:         r.String("nome"),
		Funcao:       r.String("funcao"),
		Salario:      r.String("salario"),
		Foto:         r.String("foto"),
		ProjetoAtual: r.String("projeto_atual"),
		ObraAtualID:  r.Uint("obra_atual_id"),
	}
	if c.Foto == "" {
		c.Foto = utils.ImagemPadrao(c.Nome, 150, 150)
	}
	return c
}

func (conversorColaborador) ParaWire(c Colaborador) Registro {
	r := Registro{
		"nome":    c.Nome,
		"funcao":  c.Funcao,
		"salario": c.Salario,
		"foto":    c.Foto,
	}
	if c.ObraAtualID != 0 {
		r["obra_atual_id"] = c.ObraAtualID
	}
	if c.ID != 0 {
		r["id"] = c.ID
	}
	return r
}

func (conversorColaborador) ID(c Colaborador) uint { return c.ID }

func NovaLojaColaboradores(remoto Remoto, opcoes OpcoesLoja) *Loja[Colaborador] {
	return NovaLoja(remoto, ConfigLoja[Colaborador]{
		Colecao:    "colaboradores",
		Conversor:  conversorColaborador{},
		Sementes:   SementesColaboradores(),
		ChaveLocal: local.ChaveColaboradores,
	}, opcoes)
}
