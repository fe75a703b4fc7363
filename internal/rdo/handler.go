package rdo

import (
	"encoding/json"
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

// POST /rdos
func (h *Handler) CriarRDO(w http.ResponseWriter, r *http.Request) {
	var rdo RDO
	if err := json.NewDecoder(r.Body).Decode(&rdo); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if rdo.ObraID == 0 {
		http.Error(w, "obra_id é obrigatório", http.StatusBadRequest)
		return
	}
	if rdo.DataCompleta == "" {
		rdo.DataCompleta = time.Now().Format("2006-01-02")
	}
	if rdo.Status == "" {
		rdo.Status = StatusEmAndamento
	}
	if err := h.Repository.Criar(h.DB, &rdo); err != nil {
		http.Error(w, "Erro ao salvar relatório", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(rdo)
}

// GET /rdos — aceita ?obra_id= para restringir a uma obra
func (h *Handler) ListarRDOs(w http.ResponseWriter, r *http.Request) {
	var (
		list []RDO
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
		http.Error(w, "Erro ao listar relatórios", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// GET /rdos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rdo, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Relatório não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(rdo)
}

// PATCH /rdos/{id}
func (h *Handler) AtualizarParcial(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var campos map[string]any
	if err := json.NewDecoder(r.Body).Decode(&campos); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.AtualizarCampos(h.DB, uint(id), campos); err != nil {
		if err == gorm.ErrRecordNotFound {
			http.Error(w, "Relatório não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao atualizar relatório", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DELETE /rdos/{id}
func (h *Handler) DeletarRDO(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir relatório", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
