package contrato

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// POST /contratos
func (h *Handler) CriarContrato(w http.ResponseWriter, r *http.Request) {
	var c Contrato
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if c.Nome == "" {
		http.Error(w, "Nome é obrigatório", http.StatusBadRequest)
		return
	}
	if c.Status == "" {
		c.Status = StatusAtivo
	}
	if c.Codigo == "" {
		c.Codigo = fmt.Sprintf("CT-%d-%03d", time.Now().Year(), rand.Intn(1000))
	}
	if c.DataVencimento == "" {
		c.DataVencimento = time.Now().Format("02/01/2006")
	}
	if err := h.Repository.Criar(h.DB, &c); err != nil {
		http.Error(w, "Erro ao salvar contrato", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /contratos — aceita filtro ?obra_id=
func (h *Handler) ListarContratos(w http.ResponseWriter, r *http.Request) {
	var (
		list []Contrato
		err  error
	)
	if v := r.URL.Query().Get("obra_id"); v != "" {
		obraID, convErr := strconv.Atoi(v)
		if convErr != nil {
			http.Error(w, "obra_id inválido", http.StatusBadRequest)
			return
		}
		list, err = h.Repository.ListarPorObra(h.DB, uint(obraID))
	} else {
		list, err = h.Repository.ListarTodos(h.DB)
	}
	if err != nil {
		http.Error(w, "Erro ao listar contratos", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// GET /contratos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(c)
}

// PATCH /contratos/{id}
func (h *Handler) AtualizarParcial(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var campos map[string]any
	if err := json.NewDecoder(r.Body).Decode(&campos); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.AtualizarCampos(h.DB, uint(id), campos); err != nil {
		if err == gorm.ErrRecordNotFound {
			http.Error(w, "Contrato não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DELETE /contratos/{id}
func (h *Handler) DeletarContrato(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir contrato", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
