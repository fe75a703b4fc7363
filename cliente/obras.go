package cliente

import (
	"context"

	"github.com/leandroarrudaadv-lab/hlhengenhariateste/cliente/local"
	"github.com/leandroarrudaadv-lab/hlhengenhariateste/internal/obra"
	"github.com/leandroarrudaadv-lab/hlhengenhariateste/internal/utils"
)

// Obra no formato de exibição das telas.
type Obra struct {
	ID          uint   `json:"id"`
	Nome        string `json:"nome"`
	Localizacao string `json:"localizacao"`
	Progresso   int    `json:"progresso"`
	Status      string `json:"status"`
	Imagem      string `json:"imagem"`
	Descricao   string `json:"descricao,omitempty"`
	DataInicio  string `json:"dataInicio,omitempty"`
	DataFim     string `json:"dataFim,omitempty"`
	MapsURL     string `json:"mapsUrl,omitempty"`
}

// EmAndamento diz se a obra ainda está ativa.
func (o Obra) EmAndamento() bool {
	return o.Status == obra.StatusEmAndamento
}

var mapeamentoObra = map[string]string{
	"nome":        "nome",
	"localizacao": "localizacao",
	"progresso":   "progresso",
	"status":      "status",
	"imagem":      "imagem",
	"descricao":   "descricao",
	"dataInicio":  "data_inicio",
	"dataFim":     "data_fim",
	"mapsUrl":     "maps_url",
}

type conversorObra struct{}

func (conversorObra) Mapeamento() map[string]string { return mapeamentoObra }

func (conversorObra) DoWire(r Registro) Obra {
	o := Obra{
		ID:          r.Uint("id"),
		Nome:        r.String("nome"),
		Localizacao: r.String("localizacao"),
		Progresso:   r.Int("progresso"),
		Status:      r.String("status"),
		Imagem:      r.String("imagem"),
		Descricao:   r.String("descricao"),
		DataInicio:  r.String("data_inicio"),
		DataFim:     r.String("data_fim"),
		MapsURL:     r.String("maps_url"),
	}
	if o.Imagem == "" {
		o.Imagem = utils.ImagemPadrao(o.Nome, 400, 400)
	}
	return o
}

func (conversorObra) ParaWire(o Obra) Registro {
	r := Registro{
		"nome":        o.Nome,
		"localizacao": o.Localizacao,
		"progresso":   o.Progresso,
		"status":      o.Status,
		"imagem":      o.Imagem,
		"descricao":   o.Descricao,
		"data_inicio": o.DataInicio,
		"data_fim":    o.DataFim,
		"maps_url":    o.MapsURL,
	}
	if o.ID != 0 {
		r["id"] = o.ID
	}
	return r
}

func (conversorObra) ID(o Obra) uint { return o.ID }

// LojaObras é a loja de obras; além do CRUD genérico, carrega a regra de
// progresso.
type LojaObras struct {
	*Loja[Obra]
}

func NovaLojaObras(remoto Remoto, opcoes OpcoesLoja) *LojaObras {
	return &LojaObras{Loja: NovaLoja(remoto, ConfigLoja[Obra]{
		Colecao:    "obras",
		Conversor:  conversorObra{},
		Sementes:   SementesObras(),
		ChaveLocal: local.ChaveObras,
	}, opcoes)}
}

// AtualizarProgresso limita o valor a [0,100] e, ao chegar em 100, conclui
// a obra automaticamente. O caminho inverso não existe: baixar o progresso
// ou mudar o status à mão nunca mexe no outro campo.
func (l *LojaObras) AtualizarProgresso(ctx context.Context, id uint, valor int) error {
	if valor < 0 {
		valor = 0
	}
	if valor > 100 {
		valor = 100
	}
	campos := Registro{"progresso": valor}
	if valor == 100 {
		campos["status"] = obra.StatusConcluida
	}
	return l.Atualizar(ctx, id, campos)
}
