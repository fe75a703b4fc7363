package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseValorBR converte um valor monetário em formato brasileiro
// ("R$ 4.500,00", "150,00") para float64. Tudo que não for dígito ou
// vírgula é descartado; a vírgula vira separador decimal.
func ParseValorBR(valor string) (float64, error) {
	var b strings.Builder
	for _, r := range valor {
		if r >= '0' && r <= '9' || r == ',' {
			b.WriteRune(r)
		}
	}
	limpo := strings.Replace(b.String(), ",", ".", 1)
	if limpo == "" || limpo == "." {
		return 0, fmt.Errorf("valor monetário inválido: %q", valor)
	}
	return strconv.ParseFloat(limpo, 64)
}

// SomarValoresBR soma uma lista de valores em formato brasileiro,
// ignorando entradas que não parseiam (mesma tolerância da soma de compras).
func SomarValoresBR(valores []string) float64 {
	var total float64
	for _, v := range valores {
		n, err := ParseValorBR(v)
		if err != nil {
			continue
		}
		total += n
	}
	return total
}
