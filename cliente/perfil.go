package cliente

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// Perfil do usuário autenticado, no formato de exibição.
type Perfil struct {
	ID           uint   `json:"id"`
	NomeCompleto string `json:"nomeCompleto"`
	Funcao       string `json:"funcao"`
}

// BuscarPerfil lê o perfil do usuário; o backend cria um perfil vazio na
// primeira leitura, então nunca há "perfil não encontrado" para o dono.
func (c *ClienteHTTP) BuscarPerfil(ctx context.Context, usuarioID uint) (*Perfil, error) {
	resp, err := c.fazer(ctx, http.MethodGet, "/perfis/"+strconv.FormatUint(uint64(usuarioID), 10), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var linha Registro
	if err := json.NewDecoder(resp.Body).Decode(&linha); err != nil {
		return nil, fmt.Errorf("decodificar perfil: %w", err)
	}
	return &Perfil{
		ID:           linha.Uint("id"),
		NomeCompleto: linha.String("nome_completo"),
		Funcao:       linha.String("funcao"),
	}, nil
}

// SalvarPerfil grava nome e função do usuário.
func (c *ClienteHTTP) SalvarPerfil(ctx context.Context, p Perfil) error {
	corpo := Registro{
		"nome_completo": p.NomeCompleto,
		"funcao":        p.Funcao,
	}
	resp, err := c.fazer(ctx, http.MethodPut, "/perfis/"+strconv.FormatUint(uint64(p.ID), 10), corpo)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
