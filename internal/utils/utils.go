package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// ImagemPadrao monta a URL de imagem placeholder determinística para o seed
// informado. Usada quando uma obra ou colaborador não tem imagem própria.
func ImagemPadrao(seed string, largura, altura int) string {
	seed = strings.TrimSpace(seed)
	if seed == "" {
		seed = "obra"
	}
	return fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d", url.PathEscape(seed), largura, altura)
}
