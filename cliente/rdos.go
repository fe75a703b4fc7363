package cliente

import (
	"strconv"
	"time"

	"github.com/leandroarrudaadv-lab/hlhengenhariateste/cliente/local"
)

// RDO no formato de exibição. Dia, Mes e DiaSemana são derivados de
// DataCompleta na leitura; o backend só guarda a data completa.
type RDO struct {
	ID            uint   `json:"id"`
	DataCompleta  string `json:"dataCompleta"`
	Dia           string `json:"dia"`
	Mes           string `json:"mes"`
	DiaSemana     string `json:"diaSemana"`
	Status        string `json:"status"`
	Descricao     string `json:"descricao"`
	Clima         string `json:"clima"`
	Trabalhadores int    `json:"trabalhadores"`
	TemOcorrencia bool   `json:"temOcorrencia"`
	ObraID        uint   `json:"obraId,omitempty"`
}

var mesesAbreviados = [...]string{
	"JAN", "FEV", "MAR", "ABR", "MAI", "JUN",
	"JUL", "AGO", "SET", "OUT", "NOV", "DEZ",
}

var diasDaSemana = [...]string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

// derivarCamposData converte "2006-01-02" nos campos de exibição pt-BR.
// Data ilegível deixa os campos vazios em vez de derrubar a listagem.
func derivarCamposData(dataCompleta string) (dia, mes, diaSemana string) {
	t, err := time.Parse("2006-01-02", dataCompleta)
	if err != nil {
		return "", "", ""
	}
	return strconv.Itoa(t.Day()), mesesAbreviados[int(t.Month())-1], diasDaSemana[int(t.Weekday())]
}

var mapeamentoRDO = map[string]string{
	"dataCompleta":  "data_completa",
	"status":        "status",
	"descricao":     "descricao",
	"clima":         "clima",
	"trabalhadores": "trabalhadores",
	"temOcorrencia": "tem_ocorrencia",
	"obraId":        "obra_id",
}

type conversorRDO struct{}

func (conversorRDO) Mapeamento() map[string]string { return mapeamentoRDO }

func (conversorRDO) DoWire(r Registro) RDO {
	rdo := RDO{
		ID:            r.Uint("id"),
		DataCompleta:  r.String("data_completa"),
		Status:        r.String("status"),
		Descricao:     r.String("descricao"),
		Clima:         r.String("clima"),
		Trabalhadores: r.Int("trabalhadores"),
		TemOcorrencia: r.Bool("tem_ocorrencia"),
		ObraID:        r.Uint("obra_id"),
	}
	rdo.Dia, rdo.Mes, rdo.DiaSemana = derivarCamposData(rdo.DataCompleta)
	return rdo
}

func (conversorRDO) ParaWire(rdo RDO) Registro {
	r := Registro{
		"data_completa":  rdo.DataCompleta,
		"status":         rdo.Status,
		"descricao":      rdo.Descricao,
		"clima":          rdo.Clima,
		"trabalhadores":  rdo.Trabalhadores,
		"tem_ocorrencia": rdo.TemOcorrencia,
	}
	if rdo.ObraID != 0 {
		r["obra_id"] = rdo.ObraID
	}
	if rdo.ID != 0 {
		r["id"] = rdo.ID
	}
	return r
}

func (conversorRDO) ID(rdo RDO) uint { return rdo.ID }

// NovaLojaRDOs cria a loja de relatórios diários da obra, mais recentes
// primeiro.
func NovaLojaRDOs(remoto Remoto, obraID uint, opcoes OpcoesLoja) *Loja[RDO] {
	consulta := []OpcaoConsulta{ComOrdenacao("data_completa", true)}
	if obraID != 0 {
		consulta = append(consulta, ComFiltro("obra_id", strconv.FormatUint(uint64(obraID), 10)))
	}
	return NovaLoja(remoto, ConfigLoja[RDO]{
		Colecao:    "rdos",
		Conversor:  conversorRDO{},
		Consulta:   consulta,
		Sementes:   SementesRDOs(),
		ChaveLocal: local.ChaveRDOs,
	}, opcoes)
}
