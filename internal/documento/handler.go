package documento

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

// POST /documentos
func (h *Handler) CriarDocumento(w http.ResponseWriter, r *http.Request) {
	var d Documento
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if d.Nome == "" {
		http.Error(w, "Nome é obrigatório", http.StatusBadRequest)
		return
	}
	if !TipoValido(d.Tipo) {
		http.Error(w, "Tipo de documento inválido", http.StatusBadRequest)
		return
	}
	if d.Data == "" {
		d.Data = time.Now().Format("02/01/2006")
	}
	if err := h.Repository.Criar(h.DB, &d); err != nil {
		http.Error(w, "Erro ao salvar documento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(d)
}

// GET /documentos — aceita filtro ?obra_id=
func (h *Handler) ListarDocumentos(w http.ResponseWriter, r *http.Request) {
	var (
		list []Documento
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
		http.Error(w, "Erro ao listar documentos", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// PATCH /documentos/{id}
func (h *Handler) AtualizarParcial(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var campos map[string]any
	if err := json.NewDecoder(r.Body).Decode(&campos); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.AtualizarCampos(h.DB, uint(id), campos); err != nil {
		if err == gorm.ErrRecordNotFound {
			http.Error(w, "Documento não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao atualizar documento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DELETE /documentos/{id}
func (h *Handler) DeletarDocumento(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir documento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
