package gestor

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, g *Gestor) error
	ListarTodos(db *gorm.DB) ([]Gestor, error)
	BuscarPorID(db *gorm.DB, id uint) (*Gestor, error)
	BuscarPorEmail(db *gorm.DB, email string) (*Gestor, error)
	Atualizar(db *gorm.DB, g *Gestor) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, g *Gestor) error {
	return db.Create(g).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Gestor, error) {
	var list []Gestor
	err := db.Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Gestor, error) {
	var g Gestor
	err := db.First(&g, id).Error
	return &g, err
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Gestor, error) {
	var g Gestor
	err := db.Where("email = ?", email).First(&g).Error
	return &g, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, g *Gestor) error {
	return db.Save(g).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Gestor{}, id).Error
}
