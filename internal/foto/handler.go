package foto

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// A galeria tem só três operações no app (listar, enviar, excluir), então o
// handler fala direto com o banco, sem camada de repository.
type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// POST /fotos
func (h *Handler) CriarFoto(w http.ResponseWriter, r *http.Request) {
	var f Foto
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if f.URL == "" {
		http.Error(w, "URL é obrigatória", http.StatusBadRequest)
		return
	}
	if f.Data == "" {
		f.Data = time.Now().Format("02/01/2006")
	}
	if err := h.DB.Create(&f).Error; err != nil {
		http.Error(w, "Erro ao salvar foto", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(f)
}

// GET /fotos — aceita filtro ?obra_id=
func (h *Handler) ListarFotos(w http.ResponseWriter, r *http.Request) {
	tx := h.DB.Order("id desc")
	if v := r.URL.Query().Get("obra_id"); v != "" {
		obraID, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "obra_id inválido", http.StatusBadRequest)
			return
		}
		tx = tx.Where("obra_id = ?", obraID)
	}
	var list []Foto
	if err := tx.Find(&list).Error; err != nil {
		http.Error(w, "Erro ao listar fotos", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// DELETE /fotos/{id}
func (h *Handler) DeletarFoto(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.DB.Delete(&Foto{}, id).Error; err != nil {
		http.Error(w, "Erro ao excluir foto", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
