package lead

// CriarLeadDTO é o payload do cadastro de aluno. Quando o lead já entra como
// matriculado, o valor fechado vem da calculadora de investimento
// (matrícula + material + parcela × quantidade); caso contrário vale a
// expectativa de negociação.
type CriarLeadDTO struct {
	StudentName string `json:"studentName" validate:"required"`
	Course      string `json:"course" validate:"required"`
	Campaign    string `json:"campaign"`
	Status      string `json:"status" validate:"omitempty,oneof=lead converted canceled graduated"`

	ContactMade bool `json:"contactMade"`
	Scheduled   bool `json:"scheduled"`

	Notes      string `json:"notes"`
	ReturnDate string `json:"returnDate" validate:"omitempty,datetime=2006-01-02"`

	NegotiationValue float64 `json:"negotiationValue" validate:"gte=0"`

	// Calculadora de matrícula
	Matricula    float64 `json:"matricula" validate:"gte=0"`
	Material     float64 `json:"material" validate:"gte=0"`
	ValorParcela float64 `json:"valorParcela" validate:"gte=0"`
	QtdParcelas  int     `json:"qtdParcelas" validate:"gte=0"`
}

// ValorTotalMatricula calcula o faturamento gerado por uma matrícula nova.
func (d CriarLeadDTO) ValorTotalMatricula() float64 {
	qtd := d.QtdParcelas
	if qtd <= 0 {
		qtd = 1
	}
	return d.Matricula + d.Material + d.ValorParcela*float64(qtd)
}

// AtualizarLeadDTO reescreve os campos editáveis do lead (ações da secretária).
type AtualizarLeadDTO struct {
	StudentName string `json:"studentName" validate:"required"`
	Campaign    string `json:"campaign"`
	Course      string `json:"course"`
	Status      string `json:"status" validate:"required,oneof=lead converted canceled graduated"`

	Value float64 `json:"value" validate:"gte=0"`
	Notes string  `json:"notes"`

	ReturnDate string `json:"returnDate" validate:"omitempty,datetime=2006-01-02"`

	ContactMade  bool `json:"contactMade"`
	HasResponded bool `json:"hasResponded"`
	Scheduled    bool `json:"scheduled"`
	Visited      bool `json:"visited"`
	IsOnline     bool `json:"isOnline"`
	NoShow       bool `json:"noShow"`

	RejectionReason string `json:"rejectionReason" validate:"omitempty,oneof=Preço Horário Concorrente Outros"`
}

// atualizarStatusRequest é a ação rápida de status da tabela.
type atualizarStatusRequest struct {
	Status          string `json:"status" validate:"required,oneof=lead converted canceled graduated"`
	RejectionReason string `json:"rejectionReason" validate:"omitempty,oneof=Preço Horário Concorrente Outros"`
}

// atualizarFunilRequest alterna indicadores do funil sem tocar no resto do
// registro. Ponteiros distinguem "não enviado" de "desmarcar".
type atualizarFunilRequest struct {
	ContactMade  *bool `json:"contactMade"`
	HasResponded *bool `json:"hasResponded"`
	Scheduled    *bool `json:"scheduled"`
	Visited      *bool `json:"visited"`
	IsOnline     *bool `json:"isOnline"`
	NoShow       *bool `json:"noShow"`
}

// leadComCelebracao devolve o registro salvo junto com o aviso de celebração
// para o front disparar confete, sino e toast.
type leadComCelebracao struct {
	Lead
	Celebrar bool `json:"celebrar"`
}
