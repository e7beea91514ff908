package metas

import (
	"time"
)

// Meta guarda os três objetivos configuráveis da escola. Uma linha por gestor,
// regravada por upsert a cada alteração no painel.
type Meta struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GestorID  uint      `gorm:"not null;uniqueIndex" json:"gestorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FaturamentoMensal float64 `gorm:"not null;default:0" json:"faturamentoMensal"`
	FaturamentoAnual  float64 `gorm:"not null;default:0" json:"faturamentoAnual"`
	Matriculas        int     `gorm:"not null;default:0" json:"matriculas"`
}
