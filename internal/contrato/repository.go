package contrato

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, c *Contrato) error
	ListarTodos(db *gorm.DB) ([]Contrato, error)
	ListarPorObra(db *gorm.DB, obraID uint) ([]Contrato, error)
	BuscarPorID(db *gorm.DB, id uint) (*Contrato, error)
	AtualizarCampos(db *gorm.DB, id uint, campos map[string]any) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

var colunasPermitidas = map[string]bool{
	"nome":            true,
	"fornecedor":      true,
	"status":          true,
	"data_vencimento": true,
	"valor":           true,
	"codigo":          true,
	"obra_id":         true,
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Contrato) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Contrato, error) {
	var list []Contrato
	err := db.Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarPorObra(db *gorm.DB, obraID uint) ([]Contrato, error) {
	var list []Contrato
	err := db.Where("obra_id = ?", obraID).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Contrato, error) {
	var c Contrato
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
	res := db.Model(&Contrato{}).Where("id = ?", id).Updates(filtrados)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Contrato{}, id).Error
}
