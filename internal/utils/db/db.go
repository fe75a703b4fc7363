package db

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GetDB monta o DSN a partir das variáveis de ambiente e abre a conexão.
func GetDB() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")
	porta, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		porta = 5432
	}
	nome := os.Getenv("DB_NAME")
	usuario := os.Getenv("DB_USERNAME")
	senha := os.Getenv("DB_PASSWORD")
	return ConectarBanco(uint(porta), host, nome, usuario, senha)
}

// ConectarBanco abre a conexão Postgres com retry exponencial; o banco pode
// subir depois da API em ambientes com docker-compose.
func ConectarBanco(porta uint, host, nome, usuario, senha string) (*gorm.DB, error) {
	sslMode := ""
	if os.Getenv("DB_SSL_MODE_DISABLE") == "true" {
		sslMode = " sslmode=disable"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s",
		host, usuario, senha, nome, porta, sslMode)

	var database *gorm.DB
	tentativa := func() error {
		var err error
		database, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Error),
			// sem TranslateError o driver não mapeia violação de unique
			// para gorm.ErrDuplicatedKey
			TranslateError: true,
		})
		return err
	}

	politica := backoff.NewExponentialBackOff()
	politica.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(tentativa, politica); err != nil {
		return nil, fmt.Errorf("conectar ao banco: %w", err)
	}
	return database, nil
}
