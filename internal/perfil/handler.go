package perfil

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/leandroarrudaadv-lab/hlhengenhariateste/internal/auth"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// cada usuário só enxerga e edita o próprio perfil
func (h *Handler) autorizado(r *http.Request, id uint) bool {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	return ok && usuarioID == id
}

// GET /perfis/{id} — cria um perfil vazio na primeira consulta, para que o
// app nunca precise tratar "perfil inexistente" como erro.
func (h *Handler) BuscarPerfil(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if !h.autorizado(r, uint(id)) {
		http.Error(w, "Acesso negado", http.StatusForbidden)
		return
	}

	var p Perfil
	err := h.DB.First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = Perfil{ID: uint(id), Funcao: FuncaoPadrao}
		if err := h.DB.Create(&p).Error; err != nil {
			http.Error(w, "Erro ao criar perfil", http.StatusInternalServerError)
			return
		}
	} else if err != nil {
		http.Error(w, "Erro ao buscar perfil", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(p)
}

// PUT /perfis/{id} — upsert do nome completo e da função
func (h *Handler) SalvarPerfil(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if !h.autorizado(r, uint(id)) {
		http.Error(w, "Acesso negado", http.StatusForbidden)
		return
	}

	var p Perfil
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	p.ID = uint(id)
	p.UpdatedAt = time.Now()

	err := h.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"nome_completo", "funcao", "updated_at"}),
	}).Create(&p).Error
	if err != nil {
		http.Error(w, "Erro ao salvar perfil", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(p)
}
