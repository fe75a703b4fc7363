package compra

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, c *Compra) error
	ListarTodas(db *gorm.DB) ([]Compra, error)
	ListarPorObra(db *gorm.DB, obraID uint, desc bool) ([]Compra, error)
	BuscarPorID(db *gorm.DB, id uint) (*Compra, error)
	AtualizarCampos(db *gorm.DB, id uint, campos map[string]any) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

var colunasPermitidas = map[string]bool{
	"item":       true,
	"preco":      true,
	"fornecedor": true,
	"data":       true,
	"status":     true,
	"categoria":  true,
	"obra_id":    true,
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Compra) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Compra, error) {
	var list []Compra
	err := db.Order("data desc").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarPorObra(db *gorm.DB, obraID uint, desc bool) ([]Compra, error) {
	ordem := "data"
	if desc {
		ordem = "data desc"
	}
	var list []Compra
	err := db.Where("obra_id = ?", obraID).Order(ordem).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Compra, error) {
	var c Compra
	err := db.First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) AtualizarCampos(db *gorm.DB, id uint, campos map[string]any) error {
	filtrados := map[string]any{}
	for coluna, valor := range campos {
		if colunasPermitidas[coluna] {
			filtrados[coluna] = valor
		}
	}
	if len(filtrados) == 0 {
		return nil
	}
	res := db.Model(&Compra{}).Where("id = ?", id).Updates(filtrados)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Compra{}, id).Error
}
