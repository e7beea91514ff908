package metas

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	BuscarPorGestor(db *gorm.DB, gestorID uint) (*Meta, error)
	Upsert(db *gorm.DB, m *Meta) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// BuscarPorGestor devolve a meta do gestor; sem linha salva, devolve zeros.
func (r *repositoryImpl) BuscarPorGestor(db *gorm.DB, gestorID uint) (*Meta, error) {
	var m Meta
	err := db.Where("gestor_id = ?", gestorID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Meta{GestorID: gestorID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repositoryImpl) Upsert(db *gorm.DB, m *Meta) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "gestor_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"faturamento_mensal", "faturamento_anual", "matriculas", "updated_at"}),
	}).Create(m).Error
}
