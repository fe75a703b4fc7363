package cliente

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/leandroarrudaadv-lab/hlhengenhariateste/cliente/local"
	"go.uber.org/zap"
)

// ErrCampoDesconhecido indica um campo de patch fora do mapeamento da
// entidade.
var ErrCampoDesconhecido = errors.New("cliente: campo desconhecido no patch")

// Conversor traduz uma entidade entre o formato de coluna (wire) e o
// formato de exibição. Mapeamento é a tabela declarativa campo de
// exibição → coluna, usada pelos patches parciais; DoWire e ParaWire são o
// leitor e o serializador completos da mesma tabela.
type Conversor[T any] interface {
	DoWire(Registro) T
	ParaWire(T) Registro
	Mapeamento() map[string]string
	ID(T) uint
}

// OpcoesLoja são as dependências opcionais compartilhadas pelas lojas.
type OpcoesLoja struct {
	// Local, quando presente, recebe uma cópia da lista a cada mudança de
	// estado e serve de fonte de fallback no modo demo.
	Local *local.Armazem
	// ModoDemo troca "falha de leitura vira erro" por "falha de leitura
	// cai para o armazém local ou para as sementes". Nunca deve estar
	// ligado em produção.
	ModoDemo bool
	Logger   *zap.Logger
}

func (o OpcoesLoja) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Loja mantém a lista em memória de uma entidade e orquestra o CRUD contra
// o armazenamento remoto. Toda mutação bem-sucedida dispara uma releitura
// completa — inclusive a exclusão; a lista local nunca é remendada à mão,
// então o cliente jamais precisa reconciliar um id atribuído pelo backend.
type Loja[T any] struct {
	remoto     Remoto
	colecao    string
	conv       Conversor[T]
	consulta   []OpcaoConsulta
	sementes   []T
	opcoes     OpcoesLoja
	chaveLocal string
	logger     *zap.Logger

	mu         sync.Mutex
	itens      []T
	carregando bool
	erro       error
}

// Remoto é o subconjunto de ArmazenamentoRemoto que a loja usa; alias para
// facilitar fakes em teste.
type Remoto = ArmazenamentoRemoto

// ConfigLoja agrupa os parâmetros fixos de uma loja.
type ConfigLoja[T any] struct {
	Colecao    string
	Conversor  Conversor[T]
	Consulta   []OpcaoConsulta
	Sementes   []T
	ChaveLocal string
}

func NovaLoja[T any](remoto Remoto, cfg ConfigLoja[T], opcoes OpcoesLoja) *Loja[T] {
	return &Loja[T]{
		remoto:     remoto,
		colecao:    cfg.Colecao,
		conv:       cfg.Conversor,
		consulta:   cfg.Consulta,
		sementes:   cfg.Sementes,
		opcoes:     opcoes,
		chaveLocal: cfg.ChaveLocal,
		logger:     opcoes.logger().Named("loja." + cfg.Colecao),
	}
}

// BuscarTodos lê a coleção inteira e substitui a lista em memória. Em caso
// de falha no modo normal, o erro fica disponível em Erro() e a lista
// anterior é preservada para a tela continuar utilizável; no modo demo a
// falha cai silenciosamente para o armazém local ou para as sementes.
func (l *Loja[T]) BuscarTodos(ctx context.Context) error {
	l.mu.Lock()
	l.carregando = true
	l.mu.Unlock()
	defer func() {
		l.mu.Lock()
		l.carregando = false
		l.mu.Unlock()
	}()

	linhas, err := l.remoto.SelecionarTodos(ctx, l.colecao, l.consulta...)
	if err != nil {
		l.logger.Error("falha ao buscar coleção", zap.Error(err))
		if l.opcoes.ModoDemo {
			l.substituir(l.recuperarFallback())
			return nil
		}
		l.mu.Lock()
		l.erro = err
		l.mu.Unlock()
		return err
	}

	itens := make([]T, 0, len(linhas))
	for _, linha := range linhas {
		itens = append(itens, l.conv.DoWire(linha))
	}
	l.substituir(itens)
	return nil
}

// Adicionar insere o rascunho e relê a lista; o item novo só aparece
// depois da ida e volta ao backend (sem inserção otimista).
func (l *Loja[T]) Adicionar(ctx context.Context, rascunho T) error {
	if _, err := l.remoto.Inserir(ctx, l.colecao, l.conv.ParaWire(rascunho)); err != nil {
		l.logger.Error("falha ao inserir", zap.Error(err))
		return err
	}
	return l.BuscarTodos(ctx)
}

// Atualizar aplica um patch parcial: apenas os campos presentes são
// enviados, traduzidos pelo mapeamento da entidade. Um campo fora do
// mapeamento é rejeitado antes de tocar a rede.
func (l *Loja[T]) Atualizar(ctx context.Context, id uint, campos Registro) error {
	wire := Registro{}
	mapeamento := l.conv.Mapeamento()
	for campo, valor := range campos {
		coluna, ok := mapeamento[campo]
		if !ok {
			return fmt.Errorf("%w: %q", ErrCampoDesconhecido, campo)
		}
		wire[coluna] = valor
	}
	if err := l.remoto.Atualizar(ctx, l.colecao, wire, "id", strconv.FormatUint(uint64(id), 10)); err != nil {
		l.logger.Error("falha ao atualizar", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return l.BuscarTodos(ctx)
}

// Remover exclui no backend e relê a lista — mesma estratégia das demais
// mutações, sem remendo local.
func (l *Loja[T]) Remover(ctx context.Context, id uint) error {
	if err := l.remoto.Excluir(ctx, l.colecao, "id", strconv.FormatUint(uint64(id), 10)); err != nil {
		l.logger.Error("falha ao excluir", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return l.BuscarTodos(ctx)
}

// Obter procura o item na lista em memória; ok=false quando a loja ainda
// não buscou ou o id não existe.
func (l *Loja[T]) Obter(id uint) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, item := range l.itens {
		if l.conv.ID(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Itens devolve uma cópia da lista atual.
func (l *Loja[T]) Itens() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	copia := make([]T, len(l.itens))
	copy(copia, l.itens)
	return copia
}

func (l *Loja[T]) Carregando() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.carregando
}

// Erro devolve a última falha de leitura; limpa em toda leitura que dá certo.
func (l *Loja[T]) Erro() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.erro
}

// substituir troca a lista inteira, limpa o erro e persiste a cópia no
// armazém local quando ele está configurado.
func (l *Loja[T]) substituir(itens []T) {
	l.mu.Lock()
	l.itens = itens
	l.erro = nil
	l.mu.Unlock()

	if l.opcoes.Local != nil && l.chaveLocal != "" {
		b, err := json.Marshal(itens)
		if err == nil {
			err = l.opcoes.Local.Salvar(l.chaveLocal, b)
		}
		if err != nil {
			l.logger.Warn("falha ao persistir no armazém local", zap.Error(err))
		}
	}
}

// recuperarFallback tenta o armazém local e cai para as sementes.
func (l *Loja[T]) recuperarFallback() []T {
	if l.opcoes.Local != nil && l.chaveLocal != "" {
		if b, ok, err := l.opcoes.Local.Carregar(l.chaveLocal); err == nil && ok {
			var itens []T
			if err := json.Unmarshal(b, &itens); err == nil {
				return itens
			}
		}
	}
	copia := make([]T, len(l.sementes))
	copy(copia, l.sementes)
	return copia
}
