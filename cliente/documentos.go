package cliente

import (
	"strconv"
	"strings"

	"github.com/leandroarrudaadv-lab/hlhengenhariateste/cliente/local"
)

// Abas da tela de documentos.
const (
	AbaTodos      = "Todos"
	AbaPlantas    = "Plantas"
	AbaContratos  = "Contratos"
	AbaRelatorios = "Relatórios"
)

// Documento no formato de exibição.
type Documento struct {
	ID         uint   `json:"id"`
	Nome       string `json:"nome"`
	Data       string `json:"data"`
	Autor      string `json:"autor"`
	Tipo       string `json:"tipo"`
	ArquivoURL string `json:"arquivoUrl,omitempty"`
	ObraID     uint   `json:"obraId,omitempty"`
}

var mapeamentoDocumento = map[string]string{
	"nome":       "nome",
	"data":       "data",
	"autor":      "autor",
	"tipo":       "tipo",
	"arquivoUrl": "arquivo_url",
	"obraId":     "obra_id",
}

type conversorDocumento struct{}

func (conversorDocumento) Mapeamento() map[string]string { return mapeamentoDocumento }

func (conversorDocumento) DoWire(r Registro) Documento {
	return Documento{
		ID:         r.Uint("id"),
		Nome:       r.String("nome"),
		Data:       r.String("data"),
		Autor:      r.String("autor"),
		Tipo:       r.String("tipo"),
		ArquivoURL: r.String("arquivo_url"),
		ObraID:     r.Uint("obra_id"),
	}
}

func (conversorDocumento) ParaWire(d Documento) Registro {
	r := Registro{
		"nome":        d.Nome,
		"data":        d.Data,
		"autor":       d.Autor,
		"tipo":        d.Tipo,
		"arquivo_url": d.ArquivoURL,
	}
	if d.ObraID != 0 {
		r["obra_id"] = d.ObraID
	}
	if d.ID != 0 {
		r["id"] = d.ID
	}
	return r
}

func (conversorDocumento) ID(d Documento) uint { return d.ID }

func NovaLojaDocumentos(remoto Remoto, obraID uint, opcoes OpcoesLoja) *Loja[Documento] {
	var consulta []OpcaoConsulta
	if obraID != 0 {
		consulta = append(consulta, ComFiltro("obra_id", strconv.FormatUint(uint64(obraID), 10)))
	}
	return NovaLoja(remoto, ConfigLoja[Documento]{
		Colecao:    "documentos",
		Conversor:  conversorDocumento{},
		Consulta:   consulta,
		Sementes:   SementesDocumentos(),
		ChaveLocal: local.ChaveDocumentos,
	}, opcoes)
}

// FiltrarPorAba aplica a heurística das abas da tela de documentos: as
// abas casam por tipo de arquivo e por palavras no nome, não por chave
// estrangeira.
func FiltrarPorAba(documentos []Documento, aba string) []Documento {
	if aba == "" || aba == AbaTodos {
		resultado := make([]Documento, len(documentos))
		copy(resultado, documentos)
		return resultado
	}

	casa := func(d Documento) bool {
		nome := strings.ToLower(d.Nome)
		switch aba {
		case AbaPlantas:
			return d.Tipo == "dwg" || strings.Contains(nome, "planta") || strings.Contains(nome, "projeto")
		case AbaContratos:
			return strings.Contains(nome, "contrato")
		case AbaRelatorios:
			return d.Tipo == "xlsx" || strings.Contains(nome, "relatório") || strings.Contains(nome, "orçamento")
		}
		return true
	}

	resultado := make([]Documento, 0, len(documentos))
	for _, d := range documentos {
		if casa(d) {
			resultado = append(resultado, d)
		}
	}
	return resultado
}
