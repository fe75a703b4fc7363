package rdo

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, r *RDO) error
	ListarTodos(db *gorm.DB) ([]RDO, error)
	ListarPorObra(db *gorm.DB, obraID uint) ([]RDO, error)
	BuscarPorID(db *gorm.DB, id uint) (*RDO, error)
	AtualizarCampos(db *gorm.DB, id uint, campos map[string]any) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

var colunasPermitidas = map[string]bool{
	"data_completa":  true,
	"status":         true,
	"descricao":      true,
	"clima":          true,
	"trabalhadores":  true,
	"tem_ocorrencia": true,
	"obra_id":        true,
}

func (r *repositoryImpl) Criar(db *gorm.DB, rdo *RDO) error {
	return db.Create(rdo).Error
}

// ListarTodos devolve os relatórios de todas as obras, mais recentes
// primeiro.
func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]RDO, error) {
	var list []RDO
	err := db.Order("data_completa desc").Find(&list).Error
	return list, err
}

// ListarPorObra devolve os relatórios mais recentes primeiro.
func (r *repositoryImpl) ListarPorObra(db *gorm.DB, obraID uint) ([]RDO, error) {
	var list []RDO
	err := db.Where("obra_id = ?", obraID).Order("data_completa desc").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*RDO, error) {
	var rdo RDO
	err := db.First(&rdo, id).Error
	return &rdo, err
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
	res := db.Model(&RDO{}).Where("id = ?", id).Updates(filtrados)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&RDO{}, id).Error
}
