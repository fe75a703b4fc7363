package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "falha ao abrir banco de teste")
	require.NoError(t, db.AutoMigrate(&Usuario{}, &RefreshToken{}), "falha ao migrar banco de teste")
	return db
}

func cadastrar(t *testing.T, h *Handler, email, senha string) *httptest.ResponseRecorder {
	t.Helper()
	corpo, err := json.Marshal(map[string]string{"email": email, "senha": senha})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/auth/cadastro", bytes.NewReader(corpo))
	rec := httptest.NewRecorder()
	h.Cadastro(rec, req)
	return rec
}

func TestCadastro(t *testing.T) {
	h := NewHandler(setupTestDB(t), zaptest.NewLogger(t))

	rec := cadastrar(t, h, "eng@hlh.com.br", "senha123")
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "eng@hlh.com.br", resp["email"])
}

func TestCadastroEmailDuplicado(t *testing.T) {
	h := NewHandler(setupTestDB(t), zaptest.NewLogger(t))

	require.Equal(t, http.StatusCreated, cadastrar(t, h, "eng@hlh.com.br", "senha123").Code)

	rec := cadastrar(t, h, "eng@hlh.com.br", "outrasenha")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "E-mail já cadastrado")
}

func TestCadastroNormalizaEmail(t *testing.T) {
	h := NewHandler(setupTestDB(t), zaptest.NewLogger(t))

	require.Equal(t, http.StatusCreated, cadastrar(t, h, "Eng@HLH.com.br", "senha123").Code)

	// a variação de caixa cai na mesma conta
	rec := cadastrar(t, h, "  eng@hlh.com.br ", "senha123")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCadastroSenhaCurta(t *testing.T) {
	h := NewHandler(setupTestDB(t), zaptest.NewLogger(t))
	rec := cadastrar(t, h, "eng@hlh.com.br", "12345")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	h := NewHandler(setupTestDB(t), zaptest.NewLogger(t))
	require.Equal(t, http.StatusCreated, cadastrar(t, h, "eng@hlh.com.br", "senha123").Code)

	corpo := bytes.NewBufferString(`{"email":"eng@hlh.com.br","senha":"senha123"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", corpo)
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "eng@hlh.com.br", resp.Email)

	claims, err := ValidarToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.UsuarioID, claims.UserID)
}

func TestLoginSenhaErrada(t *testing.T) {
	h := NewHandler(setupTestDB(t), zaptest.NewLogger(t))
	require.Equal(t, http.StatusCreated, cadastrar(t, h, "eng@hlh.com.br", "senha123").Code)

	corpo := bytes.NewBufferString(`{"email":"eng@hlh.com.br","senha":"errada123"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", corpo)
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
