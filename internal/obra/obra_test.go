package obra

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB abre um banco SQLite em memória já migrado.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "falha ao abrir banco de teste")
	require.NoError(t, db.AutoMigrate(&Obra{}), "falha ao migrar banco de teste")
	return db
}

func novaObraDeTeste(t *testing.T, db *gorm.DB, nome string, progresso int) *Obra {
	t.Helper()
	o := &Obra{Nome: nome, Localizacao: "SP", Progresso: progresso, Status: StatusEmAndamento}
	require.NoError(t, NewRepository().Criar(db, o))
	return o
}

func TestRepositoryCriarEBuscar(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository()

	criada := novaObraDeTeste(t, db, "Residencial Jardins", 45)
	require.NotZero(t, criada.ID)

	lida, err := repo.BuscarPorID(db, criada.ID)
	require.NoError(t, err)
	assert.Equal(t, "Residencial Jardins", lida.Nome)
	assert.Equal(t, 45, lida.Progresso)
}

func TestRepositoryListarComOrdenacao(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository()

	novaObraDeTeste(t, db, "B", 20)
	novaObraDeTeste(t, db, "A", 80)
	novaObraDeTeste(t, db, "C", 50)

	obras, err := repo.ListarTodas(db, "progresso", true)
	require.NoError(t, err)
	require.Len(t, obras, 3)
	assert.Equal(t, []int{80, 50, 20}, []int{obras[0].Progresso, obras[1].Progresso, obras[2].Progresso})

	obras, err = repo.ListarTodas(db, "nome", false)
	require.NoError(t, err)
	assert.Equal(t, "A", obras[0].Nome)
}

func TestRepositoryListarIgnoraColunaNaoPermitida(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository()
	novaObraDeTeste(t, db, "A", 10)

	// coluna fora da lista não vira ORDER BY (e não vira injeção)
	obras, err := repo.ListarTodas(db, "id; drop table obras", false)
	require.NoError(t, err)
	assert.Len(t, obras, 1)
}

func TestRepositoryAtualizarCampos(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository()
	o := novaObraDeTeste(t, db, "Obra A", 30)

	err := repo.AtualizarCampos(db, o.ID, map[string]any{"progresso": 60, "ignorada": "x"})
	require.NoError(t, err)

	lida, err := repo.BuscarPorID(db, o.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, lida.Progresso)
	assert.Equal(t, "Obra A", lida.Nome, "campos fora do patch ficam intactos")
}

func TestRepositoryAtualizarCamposObraInexistente(t *testing.T) {
	db := setupTestDB(t)
	err := NewRepository().AtualizarCampos(db, 999, map[string]any{"progresso": 10})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryDeletar(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository()
	o := novaObraDeTeste(t, db, "Obra A", 10)

	require.NoError(t, repo.Deletar(db, o.ID))
	_, err := repo.BuscarPorID(db, o.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func rotearObras(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/obras", h.CriarObra).Methods(http.MethodPost)
	r.HandleFunc("/obras", h.ListarObras).Methods(http.MethodGet)
	r.HandleFunc("/obras/{id}", h.BuscarPorID).Methods(http.MethodGet)
	r.HandleFunc("/obras/{id}", h.AtualizarParcial).Methods(http.MethodPatch)
	r.HandleFunc("/obras/{id}", h.DeletarObra).Methods(http.MethodDelete)
	r.HandleFunc("/obras/{id}/progresso", h.AtualizarProgresso).Methods(http.MethodPatch)
	return r
}

func TestHandlerCriarObra(t *testing.T) {
	db := setupTestDB(t)
	router := rotearObras(NewHandler(db))

	corpo := bytes.NewBufferString(`{"nome":"Residencial Aurora","localizacao":"Campinas, SP"}`)
	req := httptest.NewRequest(http.MethodPost, "/obras", corpo)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var criada Obra
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &criada))
	assert.NotZero(t, criada.ID)
	assert.Equal(t, StatusEmAndamento, criada.Status, "status padrão")
	assert.Contains(t, criada.Imagem, "picsum.photos", "imagem padrão")
}

func TestHandlerCriarObraSemNome(t *testing.T) {
	db := setupTestDB(t)
	router := rotearObras(NewHandler(db))

	req := httptest.NewRequest(http.MethodPost, "/obras", bytes.NewBufferString(`{"localizacao":"SP"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerListarObras(t *testing.T) {
	db := setupTestDB(t)
	novaObraDeTeste(t, db, "Obra A", 10)
	novaObraDeTeste(t, db, "Obra B", 20)
	router := rotearObras(NewHandler(db))

	req := httptest.NewRequest(http.MethodGet, "/obras?ordenar=progresso&dir=desc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var obras []Obra
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &obras))
	require.Len(t, obras, 2)
	assert.Equal(t, "Obra B", obras[0].Nome)
}

func TestHandlerProgressoCemConcluiObra(t *testing.T) {
	db := setupTestDB(t)
	o := novaObraDeTeste(t, db, "Obra A", 90)
	router := rotearObras(NewHandler(db))

	corpo := bytes.NewBufferString(`{"progresso":100}`)
	req := httptest.NewRequest(http.MethodPatch, "/obras/1/progresso", corpo)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var atualizada Obra
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &atualizada))
	assert.Equal(t, o.ID, atualizada.ID)
	assert.Equal(t, 100, atualizada.Progresso)
	assert.Equal(t, StatusConcluida, atualizada.Status)
}

func TestHandlerProgressoSaturaForaDoIntervalo(t *testing.T) {
	db := setupTestDB(t)
	novaObraDeTeste(t, db, "Obra A", 50)
	router := rotearObras(NewHandler(db))

	req := httptest.NewRequest(http.MethodPatch, "/obras/1/progresso", bytes.NewBufferString(`{"progresso":150}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var atualizada Obra
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &atualizada))
	assert.Equal(t, 100, atualizada.Progresso)

	req = httptest.NewRequest(http.MethodPatch, "/obras/1/progresso", bytes.NewBufferString(`{"progresso":-10}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &atualizada))
	assert.Equal(t, 0, atualizada.Progresso)
}

func TestHandlerProgressoObraInexistente(t *testing.T) {
	db := setupTestDB(t)
	router := rotearObras(NewHandler(db))

	req := httptest.NewRequest(http.MethodPatch, "/obras/999/progresso", bytes.NewBufferString(`{"progresso":10}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerAtualizarParcial(t *testing.T) {
	db := setupTestDB(t)
	o := novaObraDeTeste(t, db, "Obra A", 30)
	router := rotearObras(NewHandler(db))

	req := httptest.NewRequest(http.MethodPatch, "/obras/1", bytes.NewBufferString(`{"status":"Concluída"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	lida, err := NewRepository().BuscarPorID(db, o.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusConcluida, lida.Status)
	assert.Equal(t, 30, lida.Progresso)
}

func TestHandlerDeletarObra(t *testing.T) {
	db := setupTestDB(t)
	o := novaObraDeTeste(t, db, "Obra A", 10)
	router := rotearObras(NewHandler(db))

	req := httptest.NewRequest(http.MethodDelete, "/obras/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	_, err := NewRepository().BuscarPorID(db, o.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
