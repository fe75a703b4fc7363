package obra

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, o *Obra) error
	ListarTodas(db *gorm.DB, ordenar string, desc bool) ([]Obra, error)
	BuscarPorID(db *gorm.DB, id uint) (*Obra, error)
	Atualizar(db *gorm.DB, o *Obra) error
	AtualizarCampos(db *gorm.DB, id uint, campos map[string]any) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// colunas aceitas em ordenação e em atualização parcial
var colunasPermitidas = map[string]bool{
	"nome":        true,
	"localizacao": true,
	"progresso":   true,
	"status":      true,
	"imagem":      true,
	"descricao":   true,
	"data_inicio": true,
	"data_fim":    true,
	"maps_url":    true,
}

func (r *repositoryImpl) Criar(db *gorm.DB, o *Obra) error {
	return db.Create(o).Error
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB, ordenar string, desc bool) ([]Obra, error) {
	var obras []Obra
	tx := db
	if colunasPermitidas[ordenar] {
		if desc {
			ordenar += " desc"
		}
		tx = tx.Order(ordenar)
	}
	err := tx.Find(&obras).Error
	return obras, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Obra, error) {
	var o Obra
	err := db.First(&o, id).Error
	return &o, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, o *Obra) error {
	return db.Save(o).Error
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
	res := db.Model(&Obra{}).Where("id = ?", id).Updates(filtrados)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Obra{}, id).Error
}
