package colaborador

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, c *Colaborador) error
	ListarTodos(db *gorm.DB) ([]Colaborador, error)
	ListarPorObra(db *gorm.DB, obraID uint) ([]Colaborador, error)
	BuscarPorID(db *gorm.DB, id uint) (*Colaborador, error)
	Atualizar(db *gorm.DB, c *Colaborador) error
	AtualizarCampos(db *gorm.DB, id uint, campos map[string]any) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

var colunasPermitidas = map[string]bool{
	"nome":          true,
	"funcao":        true,
	"salario":       true,
	"foto":          true,
	"obra_atual_id": true,
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Colaborador) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Colaborador, error) {
	var list []Colaborador
	err := db.Preload("ObraAtual").Order("nome").Find(&list).Error
	for i := range list {
		list[i].preencherProjetoAtual()
	}
	return list, err
}

func (r *repositoryImpl) ListarPorObra(db *gorm.DB, obraID uint) ([]Colaborador, error) {
	var list []Colaborador
	err := db.Where("obra_atual_id = ?", obraID).Preload("ObraAtual").Order("nome").Find(&list).Error
	for i := range list {
		list[i].preencherProjetoAtual()
	}
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Colaborador, error) {
	var c Colaborador
	err := db.Preload("ObraAtual").First(&c, id).Error
	c.preencherProjetoAtual()
	return &c, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, c *Colaborador) error {
	return db.Save(c).Error
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
	res := db.Model(&Colaborador{}).Where("id = ?", id).Updates(filtrados)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Colaborador{}, id).Error
}
