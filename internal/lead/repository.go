package lead

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Filtro restringe a listagem. Campos zerados são ignorados.
type Filtro struct {
	GestorID    uint
	Ano         int
	Mes         int // 1-12
	Status      string
	RetornoHoje bool
	Agora       time.Time // referência para o filtro de retornos
}

type Repository interface {
	Salvar(db *gorm.DB, l *Lead) error
	ListarTodos(db *gorm.DB, f Filtro) ([]Lead, error)
	BuscarPorID(db *gorm.DB, id uuid.UUID) (*Lead, error)
	Atualizar(db *gorm.DB, l *Lead) error
	Deletar(db *gorm.DB, id uuid.UUID) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, l *Lead) error {
	return db.Create(l).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB, f Filtro) ([]Lead, error) {
	q := db.Order("created_at DESC")

	if f.GestorID != 0 {
		q = q.Where("gestor_id = ?", f.GestorID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Ano > 0 {
		inicio := time.Date(f.Ano, time.January, 1, 0, 0, 0, 0, time.Local)
		fim := inicio.AddDate(1, 0, 0)
		if f.Mes >= 1 && f.Mes <= 12 {
			inicio = time.Date(f.Ano, time.Month(f.Mes), 1, 0, 0, 0, 0, time.Local)
			fim = inicio.AddDate(0, 1, 0)
		}
		q = q.Where("created_at >= ? AND created_at < ?", inicio, fim)
	}
	if f.RetornoHoje {
		agora := f.Agora
		if agora.IsZero() {
			agora = time.Now()
		}
		amanha := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location()).AddDate(0, 0, 1)
		q = q.Where("status = ? AND return_date IS NOT NULL AND return_date < ?", StatusLead, amanha)
	}

	var list []Lead
	err := q.Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uuid.UUID) (*Lead, error) {
	var l Lead
	err := db.First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, l *Lead) error {
	return db.Save(l).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uuid.UUID) error {
	return db.Delete(&Lead{}, "id = ?", id).Error
}
