package colaborador

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

// POST /colaboradores
func (h *Handler) CriarColaborador(w http.ResponseWriter, r *http.Request) {
	var c Colaborador
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if c.Nome == "" {
		http.Error(w, "Nome é obrigatório", http.StatusBadRequest)
		return
	}
	if c.Foto == "" {
		c.Foto = utils.ImagemPadrao(c.Nome, 150, 150)
	}
	if err := h.Repository.Criar(h.DB, &c); err != nil {
		http.Error(w, "Erro ao salvar colaborador", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /colaboradores — aceita filtro ?obra_atual_id=
func (h *Handler) ListarColaboradores(w http.ResponseWriter, r *http.Request) {
	var (
		list []Colaborador
		err  error
	)
	if v := r.URL.Query().Get("obra_atual_id"); v != "" {
		obraID, convErr := strconv.Atoi(v)
		if convErr != nil {
			http.Error(w, "obra_atual_id inválido", http.StatusBadRequest)
			return
		}
		list, err = h.Repository.ListarPorObra(h.DB, uint(obraID))
	} else {
		list, err = h.Repository.ListarTodos(h.DB)
	}
	if err != nil {
		http.Error(w, "Erro ao listar colaboradores", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// GET /colaboradores/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Colaborador não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(c)
}

// PUT /colaboradores/{id}
func (h *Handler) AtualizarColaborador(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var c Colaborador
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	c.ID = uint(id)
	if err := h.Repository.Atualizar(h.DB, &c); err != nil {
		http.Error(w, "Erro ao atualizar colaborador", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(c)
}

// PATCH /colaboradores/{id}
func (h *Handler) AtualizarParcial(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var campos map[string]any
	if err := json.NewDecoder(r.Body).Decode(&campos); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.AtualizarCampos(h.DB, uint(id), campos); err != nil {
		if err == gorm.ErrRecordNotFound {
			http.Error(w, "Colaborador não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao atualizar colaborador", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DELETE /colaboradores/{id}
func (h *Handler) DeletarColaborador(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir colaborador", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
