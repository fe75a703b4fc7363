package compra

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/leandroarrudaadv-lab/hlhengenhariateste/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// resumoDTO é a resposta do resumo financeiro de uma obra.
type resumoDTO struct {
	ObraID     uint    `json:"obra_id"`
	Quantidade int     `json:"quantidade"`
	TotalGasto float64 `json:"total_gasto"`
}

// POST /compras
func (h *Handler) CriarCompra(w http.ResponseWriter, r *http.Request) {
	var c Compra
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if c.Item == "" {
		http.Error(w, "Item é obrigatório", http.StatusBadRequest)
		return
	}
	// o app envia o preço já sem o prefixo, mas tolera "R$ 150,00"
	c.Preco = strings.TrimSpace(strings.TrimPrefix(c.Preco, "R$"))
	if c.Fornecedor == "" {
		c.Fornecedor = "N/A"
	}
	if c.Status == "" {
		c.Status = StatusPago
	}
	if c.Data == "" {
		c.Data = time.Now().Format("2006-01-02")
	}
	if err := h.Repository.Criar(h.DB, &c); err != nil {
		http.Error(w, "Erro ao salvar compra", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /compras — aceita ?obra_id= e ?dir=desc (ordenação por data)
func (h *Handler) ListarCompras(w http.ResponseWriter, r *http.Request) {
	var (
		list []Compra
		err  error
	)
	if v := r.URL.Query().Get("obra_id"); v != "" {
		obraID, convErr := strconv.Atoi(v)
		if convErr != nil {
			http.Error(w, "obra_id inválido", http.StatusBadRequest)
			return
		}
		desc := r.URL.Query().Get("dir") != "asc"
		list, err = h.Repository.ListarPorObra(h.DB, uint(obraID), desc)
	} else {
		list, err = h.Repository.ListarTodas(h.DB)
	}
	if err != nil {
		http.Error(w, "Erro ao listar compras", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// GET /obras/{id}/compras/resumo
func (h *Handler) ResumoPorObra(w http.ResponseWriter, r *http.Request) {
	obraID, _ := strconv.Atoi(mux.Vars(r)["id"])
	list, err := h.Repository.ListarPorObra(h.DB, uint(obraID), true)
	if err != nil {
		http.Error(w, "Erro ao calcular resumo", http.StatusInternalServerError)
		return
	}
	precos := make([]string, len(list))
	for i, c := range list {
		precos[i] = c.Preco
	}
	json.NewEncoder(w).Encode(resumoDTO{
		ObraID:     uint(obraID),
		Quantidade: len(list),
		TotalGasto: utils.SomarValoresBR(precos),
	})
}

// PATCH /compras/{id}
func (h *Handler) AtualizarParcial(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var campos map[string]any
	if err := json.NewDecoder(r.Body).Decode(&campos); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.AtualizarCampos(h.DB, uint(id), campos); err != nil {
		if err == gorm.ErrRecordNotFound {
			http.Error(w, "Compra não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao atualizar compra", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DELETE /compras/{id}
func (h *Handler) DeletarCompra(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir compra", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
