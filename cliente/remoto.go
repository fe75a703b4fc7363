package cliente

import (
	"context"
	"errors"
)

// Erros da camada remota.
var (
	// ErrFiltroNaoSuportado indica que a implementação só sabe casar
	// atualização/exclusão pela coluna id.
	ErrFiltroNaoSuportado = errors.New("cliente: filtro não suportado para esta operação")
)

// Consulta descreve os refinamentos de uma leitura: no máximo um filtro de
// igualdade e uma coluna de ordenação, que é tudo que as telas usam.
type Consulta struct {
	FiltroColuna string
	FiltroValor  string
	Ordenar      string
	Descendente  bool
}

type OpcaoConsulta func(*Consulta)

// ComFiltro restringe a leitura às linhas cuja coluna é igual ao valor.
func ComFiltro(coluna, valor string) OpcaoConsulta {
	return func(c *Consulta) {
		c.FiltroColuna = coluna
		c.FiltroValor = valor
	}
}

// ComOrdenacao ordena a leitura pela coluna informada.
func ComOrdenacao(coluna string, descendente bool) OpcaoConsulta {
	return func(c *Consulta) {
		c.Ordenar = coluna
		c.Descendente = descendente
	}
}

// ArmazenamentoRemoto é o acesso uniforme a um backend de coleções
// orientado a linhas. Todas as operações são assíncronas, podem falhar com
// erro de transporte ou autorização e nunca fazem retry por conta própria.
type ArmazenamentoRemoto interface {
	// SelecionarTodos devolve as linhas da coleção que casam com a consulta.
	SelecionarTodos(ctx context.Context, colecao string, opcoes ...OpcaoConsulta) ([]Registro, error)
	// Inserir grava o registro e devolve as linhas inseridas (com id
	// atribuído pelo backend). A inserção é atômica.
	Inserir(ctx context.Context, colecao string, registro Registro) ([]Registro, error)
	// Atualizar aplica apenas as colunas presentes em campos às linhas em
	// que coluna = valor; colunas ausentes ficam intactas.
	Atualizar(ctx context.Context, colecao string, campos Registro, coluna, valor string) error
	// Excluir remove as linhas em que coluna = valor.
	Excluir(ctx context.Context, colecao string, coluna, valor string) error
}
