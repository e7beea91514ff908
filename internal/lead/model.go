package lead

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrigemPadrao é o sentinela usado quando nenhuma coluna de origem está preenchida.
const OrigemPadrao = "DIRETO/ORGÂNICO"

// Lead representa um interessado em matrícula acompanhado pela secretaria.
type Lead struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	GestorID uint `gorm:"not null;index" json:"gestorId"`

	StudentName string `gorm:"size:255;not null" json:"studentName"`
	Course      string `gorm:"size:255" json:"course"`

	// Colunas de origem legadas: bases antigas gravaram o canal de aquisição
	// em nomes diferentes. A resolução consulta na ordem Campaign, UTMSource,
	// Source, Canal — ver Origem().
	Campaign  string `gorm:"size:255" json:"campaign"`
	UTMSource string `gorm:"column:utm_source;size:255" json:"utmSource,omitempty"`
	Source    string `gorm:"size:255" json:"source,omitempty"`
	Canal     string `gorm:"size:255" json:"canal,omitempty"`

	Status string `gorm:"size:50;not null;default:'lead';index" json:"status"`

	// Indicadores do funil comercial, independentes do status
	ContactMade  bool `json:"contactMade"`
	HasResponded bool `json:"hasResponded"`
	Scheduled    bool `json:"scheduled"`
	Visited      bool `json:"visited"`
	IsOnline     bool `json:"isOnline"`
	NoShow       bool `json:"noShow"`

	// Enquanto status = lead, valor esperado da negociação; após a matrícula,
	// valor fechado do contrato (livremente editável)
	Value float64 `gorm:"not null;default:0" json:"value"`

	Notes           string     `json:"notes"`
	RejectionReason *string    `gorm:"size:50" json:"rejectionReason,omitempty"`
	ReturnDate      *time.Time `json:"returnDate,omitempty"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// Origem resolve o canal de aquisição consultando as colunas candidatas em
// ordem de prioridade, já normalizado para agrupamento.
func (l Lead) Origem() string {
	for _, candidato := range []string{l.Campaign, l.UTMSource, l.Source, l.Canal} {
		if strings.TrimSpace(candidato) != "" {
			return NormalizarOrigem(candidato)
		}
	}
	return OrigemPadrao
}

// NormalizarOrigem remove espaços e sobe para maiúsculas, de modo que
// "Instagram " e "INSTAGRAM" caiam no mesmo grupo.
func NormalizarOrigem(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// RetornoHoje indica se o lead está com follow-up vencido: data de retorno
// preenchida e menor ou igual ao dia de hoje.
func (l Lead) RetornoHoje(agora time.Time) bool {
	if l.ReturnDate == nil {
		return false
	}
	hoje := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location())
	retorno := l.ReturnDate.In(agora.Location())
	retorno = time.Date(retorno.Year(), retorno.Month(), retorno.Day(), 0, 0, 0, 0, agora.Location())
	return !retorno.After(hoje)
}
