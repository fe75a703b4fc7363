package cliente

import "strings"

// FiltrarTexto faz a busca das telas de listagem: mantém os itens em que
// algum dos campos de exibição contém a consulta, ignorando
// maiúsculas/minúsculas. Consulta vazia devolve a lista inteira.
func FiltrarTexto[T any](itens []T, consulta string, campos func(T) []string) []T {
	consulta = strings.ToLower(strings.TrimSpace(consulta))
	if consulta == "" {
		resultado := make([]T, len(itens))
		copy(resultado, itens)
		return resultado
	}

	resultado := make([]T, 0, len(itens))
	for _, item := range itens {
		for _, campo := range campos(item) {
			if strings.Contains(strings.ToLower(campo), consulta) {
				resultado = append(resultado, item)
				break
			}
		}
	}
	return resultado
}
