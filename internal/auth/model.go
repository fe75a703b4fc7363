package auth

import (
	"time"

	"gorm.io/gorm"
)

// Usuario é a conta que acessa o aplicativo de gestão de obras.
// O perfil exibível (nome completo, função) fica na coleção de perfis.
type Usuario struct {
	gorm.Model
	Email string `json:"email" gorm:"uniqueIndex;not null"`
	Senha string `json:"-" gorm:"not null"`
}

// RefreshToken guarda apenas o hash do token de refresh; o valor cru vive
// no cookie HttpOnly do cliente.
type RefreshToken struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index"`
	FamilyID  string `gorm:"index"`
	Hash      string `gorm:"uniqueIndex"`
	ExpiresAt time.Time `gorm:"index"`
	RevokedAt *time.Time
	CreatedAt time.Time
}
