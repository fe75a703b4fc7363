package cliente

import (
	"github.com/leandroarrudaadv-lab/hlhengenhariateste/internal/obra"
)

// Sementes são os dados de demonstração usados como fallback de leitura no
// modo demo. Cada função devolve uma cópia nova para o chamador poder
// mexer à vontade.

func SementesObras() []Obra {
	return []Obra{
		{
			ID:          1,
			Nome:        "Residencial Jardins",
			Localizacao: "Zona Sul, SP",
			Progresso:   45,
			Status:      obra.StatusEmAndamento,
			Imagem:      "https://picsum.photos/seed/jardins/400/400",
		},
		{
			ID:          2,
			Nome:        "Edifício Horizon",
			Localizacao: "Centro, BH",
			Progresso:   72,
			Status:      obra.StatusConcluida,
			Imagem:      "https://picsum.photos/seed/horizon/400/400",
		},
		{
			ID:          3,
			Nome:        "Galpão Logístico Alpha",
			Localizacao: "Ind. District, SP",
			Progresso:   5,
			Status:      obra.StatusEmAndamento,
			Imagem:      "https://picsum.photos/seed/alpha/400/400",
		},
	}
}

func SementesColaboradores() []Colaborador {
	return []Colaborador{
		{
			ID:           1,
			Nome:         "Carlos Eduardo Mendes",
			Funcao:       "Mestre de Obras",
			Salario:      "R$ 4.500,00",
			ProjetoAtual: "Residencial Vila Nova",
			Foto:         "https://picsum.photos/seed/carlos/150/150",
		},
	}
}

func SementesDocumentos() []Documento {
	return []Documento{
		{ID: 1, Nome: "Planta Baixa - Térreo_v04.pdf", Data: "12/10/2023", Autor: "João Silva (Arquiteto)", Tipo: "pdf"},
		{ID: 2, Nome: "Contrato Empreitada - Fase 2.pdf", Data: "10/10/2023", Autor: "Jurídico HLH", Tipo: "pdf"},
		{ID: 3, Nome: "Projeto Elétrico_Final.dwg", Data: "05/10/2023", Autor: "Carlos Eng.", Tipo: "dwg"},
		{ID: 4, Nome: "Visita Técnica - 01/10.jpg", Data: "01/10/2023", Autor: "Maria Souza", Tipo: "jpg"},
		{ID: 5, Nome: "Orçamento Revisado Set.xlsx", Data: "28/09/2023", Autor: "Financeiro", Tipo: "xlsx"},
	}
}

func SementesContratos() []Contrato {
	return []Contrato{
		{ID: 1, Nome: "Fornecimento de Concreto", Fornecedor: "Concreta Mix Ltda", Status: "Ativo", DataVencimento: "15/12/2023", Codigo: "CT-2023-089"},
		{ID: 2, Nome: "Mão de Obra - Pintura", Fornecedor: "Silva Acabamentos", Status: "Pendente", DataVencimento: "Assinatura pendente", Codigo: "CT-2023-092"},
		{ID: 3, Nome: "Instalação Elétrica Térreo", Fornecedor: "ElectroSol Engenharia", Status: "Atenção", DataVencimento: "Vence hoje", Codigo: "CT-2023-045"},
		{ID: 4, Nome: "Projeto Arquitetônico", Fornecedor: "Studio Arquitetura", Status: "Finalizado", DataVencimento: "Pago integralmente", Codigo: "CT-2022-110"},
	}
}

func SementesCompras() []Compra {
	return []Compra{
		{ID: 1, Item: "Cimento CP II", Preco: "R$ 4.500,00", Fornecedor: "Votorantim", Data: "12 out 2023", Status: "Pago", Categoria: "Material"},
		{ID: 2, Item: "Tijolo 8 Furos", Preco: "R$ 2.200,00", Fornecedor: "Cerâmica Silva", Data: "10 out 2023", Status: "Pago", Categoria: "Material"},
		{ID: 3, Item: "Locação Betoneira", Preco: "R$ 350,00", Fornecedor: "Casa do Construtor", Data: "08 out 2023", Status: "Pendente", Categoria: "Locação"},
		{ID: 4, Item: "Tinta Acrílica Fosca", Preco: "R$ 1.890,00", Fornecedor: "Suvinil", Data: "05 out 2023", Status: "Pago", Categoria: "Material"},
	}
}

func SementesFotos() []Foto {
	return []Foto{
		{ID: 1, URL: "https://picsum.photos/seed/const1/400/400"},
		{ID: 2, URL: "https://picsum.photos/seed/const2/400/400"},
		{ID: 3, URL: "https://picsum.photos/seed/const3/400/400"},
		{ID: 4, URL: "https://picsum.photos/seed/const4/400/400"},
		{ID: 5, URL: "https://picsum.photos/seed/const5/400/400"},
	}
}

func SementesRDOs() []RDO {
	return []RDO{
		{
			ID: 1, DataCompleta: "2023-10-12", Dia: "12", Mes: "OUT", DiaSemana: "quinta-feira",
			Status: "Em Andamento", Clima: "28°C Ensolarado", Trabalhadores: 15,
			Descricao: "Concretagem da laje do 2º pavimento iniciada às 08h. Chegada de caminhões betoneira confirmada.",
		},
		{
			ID: 2, DataCompleta: "2023-10-11", Dia: "11", Mes: "OUT", DiaSemana: "quarta-feira",
			Status: "Finalizado", Clima: "Nublado", Trabalhadores: 2,
			Descricao: "Obra sem atividades. Apenas vigilância patrimonial presente.",
		},
		{
			ID: 3, DataCompleta: "2023-10-10", Dia: "10", Mes: "OUT", DiaSemana: "terça-feira",
			Status: "Finalizado", Clima: "Chuva Tarde", Trabalhadores: 12, TemOcorrencia: true,
			Descricao: "Entrega de material cerâmico com atraso. Montagem de formas concluída.",
		},
	}
}
