package gestor

import (
	"github.com/SchoolRise/api-gestor/internal/lead"
	"gorm.io/gorm"
)

// Gestor é a conta que opera o painel da escola e é dona dos leads que cria.
type Gestor struct {
	gorm.Model
	Nome                  string      `json:"nome"`
	Sobrenome             string      `json:"sobrenome"`
	NomeEscola            string      `json:"nomeEscola"`
	Email                 string      `json:"email" gorm:"unique"`
	Telefone              string      `json:"telefone"`
	Senha                 string      `json:"-"`
	PrecisaRedefinirSenha bool        `json:"-"`
	IsAdmin               bool        `json:"isAdmin"`
	Leads                 []lead.Lead `gorm:"foreignKey:GestorID" json:"leads,omitempty"`
}
