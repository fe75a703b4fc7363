package rdo

import (
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

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "falha ao abrir banco de teste")
	require.NoError(t, db.AutoMigrate(&RDO{}), "falha ao migrar banco de teste")
	return db
}

func rotearRDOs(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/rdos", h.ListarRDOs).Methods(http.MethodGet)
	return r
}

func semearRDOs(t *testing.T, db *gorm.DB) {
	t.Helper()
	repo := NewRepository()
	require.NoError(t, repo.Criar(db, &RDO{DataCompleta: "2023-10-10", Status: "Finalizado", ObraID: 1}))
	require.NoError(t, repo.Criar(db, &RDO{DataCompleta: "2023-10-12", Status: "Em Andamento", ObraID: 1}))
	require.NoError(t, repo.Criar(db, &RDO{DataCompleta: "2023-10-11", Status: "Finalizado", ObraID: 2}))
}

func TestHandlerListarRDOsPorObra(t *testing.T) {
	db := setupTestDB(t)
	semearRDOs(t, db)
	router := rotearRDOs(NewHandler(db))

	req := httptest.NewRequest(http.MethodGet, "/rdos?obra_id=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var list []RDO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "2023-10-12", list[0].DataCompleta, "mais recente primeiro")
}

func TestHandlerListarRDOsSemFiltro(t *testing.T) {
	db := setupTestDB(t)
	semearRDOs(t, db)
	router := rotearRDOs(NewHandler(db))

	// sem obra_id lista todas as obras, como as demais coleções
	req := httptest.NewRequest(http.MethodGet, "/rdos", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var list []RDO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 3)
	assert.Equal(t, []string{"2023-10-12", "2023-10-11", "2023-10-10"},
		[]string{list[0].DataCompleta, list[1].DataCompleta, list[2].DataCompleta})
}

func TestHandlerListarRDOsObraIDInvalido(t *testing.T) {
	db := setupTestDB(t)
	router := rotearRDOs(NewHandler(db))

	req := httptest.NewRequest(http.MethodGet, "/rdos?obra_id=abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
