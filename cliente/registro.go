// Package cliente implementa a camada de sincronização do aplicativo de
// gestão de obras: o acesso genérico ao backend de coleções, as lojas por
// entidade com tradução entre formato de coluna (snake_case) e formato de
// exibição (camelCase), a busca textual e o fluxo de exclusão confirmada.
package cliente

// Registro é uma linha de coleção no formato de wire: chaves são nomes de
// coluna, valores vêm da decodificação JSON (números chegam como float64).
type Registro map[string]any

// String devolve o valor da chave como texto; ausente ou de outro tipo
// vira string vazia.
func (r Registro) String(chave string) string {
	s, _ := r[chave].(string)
	return s
}

// Int tolera os tipos numéricos que a decodificação JSON produz.
func (r Registro) Int(chave string) int {
	switch v := r[chave].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case uint:
		return int(v)
	}
	return 0
}

func (r Registro) Uint(chave string) uint {
	n := r.Int(chave)
	if n < 0 {
		return 0
	}
	return uint(n)
}

func (r Registro) Bool(chave string) bool {
	b, _ := r[chave].(bool)
	return b
}
