// Package local guarda, em SQLite, os dados de fallback do aplicativo:
// uma chave por coleção, valor em JSON. É lido na primeira carga e
// sobrescrito a cada mudança de estado; nada expira.
package local

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Chaves usadas pelo aplicativo.
const (
	ChaveObras         = "obras"
	ChaveColaboradores = "colaboradores"
	ChaveContratos     = "contratos"
	ChaveCompras       = "compras"
	ChaveRDOs          = "rdos"
	ChaveDocumentos    = "documentos"
	ChaveFotos         = "fotos"
)

type Armazem struct {
	db *sql.DB
}

// Abrir cria (se preciso) o banco no caminho informado.
func Abrir(caminho string) (*Armazem, error) {
	if dir := filepath.Dir(caminho); dir != "." && dir != "" && caminho != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("criar diretório do armazém: %w", err)
		}
	}

	db, err := sql.Open("sqlite", caminho)
	if err != nil {
		return nil, fmt.Errorf("abrir armazém local: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	const ddl = `
	CREATE TABLE IF NOT EXISTS armazem (
		chave          TEXT PRIMARY KEY,
		valor          TEXT NOT NULL,
		atualizado_em  TEXT NOT NULL
	);`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("criar tabela do armazém: %w", err)
	}
	return &Armazem{db: db}, nil
}

// AbrirMemoria cria um armazém em memória, para testes.
func AbrirMemoria() (*Armazem, error) {
	return Abrir(":memory:")
}

func (a *Armazem) Fechar() error {
	return a.db.Close()
}

// Salvar sobrescreve o valor da chave.
func (a *Armazem) Salvar(chave string, valor []byte) error {
	agora := time.Now().UTC().Format(time.RFC3339)
	_, err := a.db.Exec(
		`INSERT INTO armazem (chave, valor, atualizado_em) VALUES (?, ?, ?)
		 ON CONFLICT(chave) DO UPDATE SET valor = excluded.valor, atualizado_em = excluded.atualizado_em`,
		chave, string(valor), agora,
	)
	if err != nil {
		return fmt.Errorf("salvar chave %q: %w", chave, err)
	}
	return nil
}

// Carregar devolve o valor da chave; ok=false quando a chave não existe.
func (a *Armazem) Carregar(chave string) ([]byte, bool, error) {
	var valor string
	err := a.db.QueryRow(`SELECT valor FROM armazem WHERE chave = ?`, chave).Scan(&valor)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("carregar chave %q: %w", chave, err)
	}
	return []byte(valor), true, nil
}

func (a *Armazem) Remover(chave string) error {
	_, err := a.db.Exec(`DELETE FROM armazem WHERE chave = ?`, chave)
	return err
}
