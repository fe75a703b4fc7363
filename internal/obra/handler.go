package obra

import (
	"encoding/json"
	"net/http"
	"strconv"

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

// POST /obras
func (h *Handler) CriarObra(w http.ResponseWriter, r *http.Request) {
	var o Obra
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if o.Nome == "" || o.Localizacao == "" {
		http.Error(w, "Nome e localização são obrigatórios", http.StatusBadRequest)
		return
	}
	if o.Status == "" {
		o.Status = StatusEmAndamento
	}
	if o.Imagem == "" {
		o.Imagem = utils.ImagemPadrao(o.Nome, 400, 400)
	}
	if err := h.Repository.Criar(h.DB, &o); err != nil {
		http.Error(w, "Erro ao salvar obra", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(o)
}

// GET /obras
func (h *Handler) ListarObras(w http.ResponseWriter, r *http.Request) {
	ordenar := r.URL.Query().Get("ordenar")
	desc := r.URL.Query().Get("dir") == "desc"
	obras, err := h.Repository.ListarTodas(h.DB, ordenar, desc)
	if err != nil {
		http.Error(w, "Erro ao listar obras", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(obras)
}

// GET /obras/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	o, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Obra não encontrada", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(o)
}

// PUT /obras/{id}
func (h *Handler) AtualizarObra(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var o Obra
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	o.ID = uint(id)
	if err := h.Repository.Atualizar(h.DB, &o); err != nil {
		http.Error(w, "Erro ao atualizar obra", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(o)
}

// PATCH /obras/{id} — atualiza apenas as colunas presentes no corpo
func (h *Handler) AtualizarParcial(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var campos map[string]any
	if err := json.NewDecoder(r.Body).Decode(&campos); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.AtualizarCampos(h.DB, uint(id), campos); err != nil {
		if err == gorm.ErrRecordNotFound {
			http.Error(w, "Obra não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao atualizar obra", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// PATCH /obras/{id}/progresso — valor fora de [0,100] é limitado; chegar a
// 100% conclui a obra automaticamente (o caminho inverso não existe).
func (h *Handler) AtualizarProgresso(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req struct {
		Progresso int `json:"progresso"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	valor := req.Progresso
	if valor < 0 {
		valor = 0
	}
	if valor > 100 {
		valor = 100
	}

	campos := map[string]any{"progresso": valor}
	if valor == 100 {
		campos["status"] = StatusConcluida
	}
	if err := h.Repository.AtualizarCampos(h.DB, uint(id), campos); err != nil {
		if err == gorm.ErrRecordNotFound {
			http.Error(w, "Obra não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao atualizar progresso", http.StatusInternalServerError)
		return
	}

	o, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Obra não encontrada", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(o)
}

// DELETE /obras/{id}
func (h *Handler) DeletarObra(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir obra", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
