package cliente

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// ClienteHTTP fala com a API de gestão de obras: uma rota por coleção,
// corpo JSON em formato de coluna, Bearer token nas rotas protegidas.
type ClienteHTTP struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// Sessao é o retorno do login.
type Sessao struct {
	AccessToken string `json:"accessToken"`
	UsuarioID   uint   `json:"usuarioId"`
	Email       string `json:"email"`
}

func NovoClienteHTTP(baseURL string) *ClienteHTTP {
	return &ClienteHTTP{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// DefinirToken troca o token usado nas próximas requisições.
func (c *ClienteHTTP) DefinirToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *ClienteHTTP) tokenAtual() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *ClienteHTTP) fazer(ctx context.Context, metodo, caminho string, corpo any) (*http.Response, error) {
	var leitor io.Reader
	if corpo != nil {
		b, err := json.Marshal(corpo)
		if err != nil {
			return nil, err
		}
		leitor = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, metodo, c.baseURL+caminho, leitor)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if t := c.tokenAtual(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, fmt.Errorf("%s %s: status %d: %s", metodo, caminho, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return resp, nil
}

// Entrar autentica com e-mail e senha e guarda o access token para as
// próximas chamadas.
func (c *ClienteHTTP) Entrar(ctx context.Context, email, senha string) (*Sessao, error) {
	resp, err := c.fazer(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email": email, "senha": senha,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var s Sessao
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, fmt.Errorf("decodificar sessão: %w", err)
	}
	c.DefinirToken(s.AccessToken)
	return &s, nil
}

// Cadastrar cria uma conta nova; o login segue sendo um passo separado.
func (c *ClienteHTTP) Cadastrar(ctx context.Context, email, senha string) error {
	resp, err := c.fazer(ctx, http.MethodPost, "/auth/cadastro", map[string]string{
		"email": email, "senha": senha,
	})
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Sair revoga o refresh token e descarta o access token local.
func (c *ClienteHTTP) Sair(ctx context.Context) error {
	resp, err := c.fazer(ctx, http.MethodPost, "/auth/logout", nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	c.DefinirToken("")
	return nil
}

func (c *ClienteHTTP) SelecionarTodos(ctx context.Context, colecao string, opcoes ...OpcaoConsulta) ([]Registro, error) {
	var consulta Consulta
	for _, o := range opcoes {
		o(&consulta)
	}

	q := url.Values{}
	if consulta.FiltroColuna != "" {
		q.Set(consulta.FiltroColuna, consulta.FiltroValor)
	}
	if consulta.Ordenar != "" {
		q.Set("ordenar", consulta.Ordenar)
		if consulta.Descendente {
			q.Set("dir", "desc")
		} else {
			q.Set("dir", "asc")
		}
	}
	caminho := "/" + colecao
	if len(q) > 0 {
		caminho += "?" + q.Encode()
	}

	resp, err := c.fazer(ctx, http.MethodGet, caminho, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var linhas []Registro
	if err := json.NewDecoder(resp.Body).Decode(&linhas); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", colecao, err)
	}
	return linhas, nil
}

func (c *ClienteHTTP) Inserir(ctx context.Context, colecao string, registro Registro) ([]Registro, error) {
	resp, err := c.fazer(ctx, http.MethodPost, "/"+colecao, registro)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var inserido Registro
	if err := json.NewDecoder(resp.Body).Decode(&inserido); err != nil {
		return nil, fmt.Errorf("decodificar inserção em %s: %w", colecao, err)
	}
	return []Registro{inserido}, nil
}

// Atualizar e Excluir só suportam casar pela coluna id — a única que o
// aplicativo usa para mutações.
func (c *ClienteHTTP) Atualizar(ctx context.Context, colecao string, campos Registro, coluna, valor string) error {
	if coluna != "id" {
		return ErrFiltroNaoSuportado
	}
	resp, err := c.fazer(ctx, http.MethodPatch, "/"+colecao+"/"+valor, campos)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *ClienteHTTP) Excluir(ctx context.Context, colecao, coluna, valor string) error {
	if coluna != "id" {
		return ErrFiltroNaoSuportado
	}
	resp, err := c.fazer(ctx, http.MethodDelete, "/"+colecao+"/"+valor, nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
