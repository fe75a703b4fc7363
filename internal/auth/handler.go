package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/leandroarrudaadv-lab/hlhengenhariateste/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler expõe cadastro e login de usuários do aplicativo.
type Handler struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

func NewHandler(db *gorm.DB, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Logger: logger.Named("auth")}
}

type credenciaisRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
	UsuarioID   uint   `json:"usuarioId"`
	Email       string `json:"email"`
}

// POST /auth/cadastro
func (h *Handler) Cadastro(w http.ResponseWriter, r *http.Request) {
	var req credenciaisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || len(req.Senha) < 6 {
		http.Error(w, "E-mail e senha (mínimo 6 caracteres) são obrigatórios", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "Erro ao processar senha", http.StatusInternalServerError)
		return
	}

	usuario := Usuario{Email: req.Email, Senha: hash}
	if err := h.DB.Create(&usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			http.Error(w, "E-mail já cadastrado", http.StatusConflict)
			return
		}
		h.Logger.Error("falha ao cadastrar usuário", zap.Error(err))
		http.Error(w, "Erro ao cadastrar usuário", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{"id": usuario.ID, "email": usuario.Email})
}

// POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credenciaisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	var usuario Usuario
	err := h.DB.Where("email = ?", strings.TrimSpace(strings.ToLower(req.Email))).First(&usuario).Error
	if err != nil {
		http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
		return
	}
	if !utils.VerificarSenha(usuario.Senha, req.Senha) {
		http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
		return
	}

	access, err := EmitirTokens(h.DB, w, usuario.ID)
	if err != nil {
		h.Logger.Error("falha ao emitir tokens", zap.Error(err), zap.Uint("usuario_id", usuario.ID))
		http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(loginResponse{
		AccessToken: access,
		UsuarioID:   usuario.ID,
		Email:       usuario.Email,
	})
}
