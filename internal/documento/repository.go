package documento

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, d *Documento) error
	ListarTodos(db *gorm.DB) ([]Documento, error)
	ListarPorObra(db *gorm.DB, obraID uint) ([]Documento, error)
	AtualizarCampos(db *gorm.DB, id uint, campos map[string]any) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

var colunasPermitidas = map[string]bool{
	"nome":        true,
	"data":        true,
	"autor":       true,
	"tipo":        true,
	"arquivo_url": true,
	"obra_id":     true,
}

func (r *repositoryImpl) Criar(db *gorm.DB, d *Documento) error {
	return db.Create(d).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Documento, error) {
	var list []Documento
	err := db.Order("id desc").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarPorObra(db *gorm.DB, obraID uint) ([]Documento, error) {
	var list []Documento
	err := db.Where("obra_id = ?", obraID).Order("id desc").Find(&list).Error
	return list, err
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
	res := db.Model(&Documento{}).Where("id = ?", id).Updates(filtrados)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Documento{}, id).Error
}
