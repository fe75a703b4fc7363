package cliente

import (
	"strconv"

	"github.com/leandroarrudaadv-lab/hlhengenhariateste/cliente/local"
	"github.com/leandroarrudaadv-lab/hlhengenhariateste/internal/utils"
)

// Compra no formato de exibição. Preco mantém o formato brasileiro
// ("4.500,00"); a soma usa o parse tolerante de moeda.
type Compra struct {
	ID         uint   `json:"id"`
	Item       string `json:"item"`
	Preco      string `json:"preco"`
	Fornecedor string `json:"fornecedor"`
	Data       string `json:"data"`
	Status     string `json:"status"`
	Categoria  string `json:"categoria"`
	ObraID     uint   `json:"obraId,omitempty"`
}

var mapeamentoCompra = map[string]string{
	"item":       "item",
	"preco":      "preco",
	"fornecedor": "fornecedor",
	"data":       "data",
	"status":     "status",
	"categoria":  "categoria",
	"obraId":     "obra_id",
}

type conversorCompra struct{}

func (conversorCompra) Mapeamento() map[string]string { return mapeamentoCompra }

func (conversorCompra) DoWire(r Registro) Compra {
	return Compra{
		ID:         r.Uint("id"),
		Item:       r.String("item"),
		Preco:      r.String("preco"),
		Fornecedor: r.String("fornecedor"),
		Data:       r.String("data"),
		Status:     r.String("status"),
		Categoria:  r.String("categoria"),
		ObraID:     r.Uint("obra_id"),
	}
}

func (conversorCompra) ParaWire(c Compra) Registro {
	r := Registro{
		"item":       c.Item,
		"preco":      c.Preco,
		"fornecedor": c.Fornecedor,
		"data":       c.Data,
		"status":     c.Status,
		"categoria":  c.Categoria,
	}
	if c.ObraID != 0 {
		r["obra_id"] = c.ObraID
	}
	if c.ID != 0 {
		r["id"] = c.ID
	}
	return r
}

func (conversorCompra) ID(c Compra) uint { return c.ID }

// LojaCompras agrega o total gasto sobre a lista corrente.
type LojaCompras struct {
	*Loja[Compra]
}

// NovaLojaCompras cria a loja de compras da obra, mais recentes primeiro.
func NovaLojaCompras(remoto Remoto, obraID uint, opcoes OpcoesLoja) *LojaCompras {
	consulta := []OpcaoConsulta{ComOrdenacao("data", true)}
	if obraID != 0 {
		consulta = append(consulta, ComFiltro("obra_id", strconv.FormatUint(uint64(obraID), 10)))
	}
	return &LojaCompras{Loja: NovaLoja(remoto, ConfigLoja[Compra]{
		Colecao:    "compras",
		Conversor:  conversorCompra{},
		Consulta:   consulta,
		Sementes:   SementesCompras(),
		ChaveLocal: local.ChaveCompras,
	}, opcoes)}
}

// TotalGasto soma os preços da lista corrente.
func (l *LojaCompras) TotalGasto() float64 {
	return TotalGasto(l.Itens())
}

// TotalGasto soma os preços em formato brasileiro de uma lista de compras;
// valores que não parseiam contam como zero.
func TotalGasto(compras []Compra) float64 {
	precos := make([]string, len(compras))
	for i, c := range compras {
		precos[i] = c.Preco
	}
	return utils.SomarValoresBR(precos)
}
