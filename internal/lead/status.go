package lead

// Vocabulário canônico de status persistido. Os passos finos do funil
// (contatado, respondeu, agendado, presencial, online, não compareceu) são os
// indicadores booleanos do modelo, não valores de status.
const (
	StatusLead        = "lead"
	StatusMatriculado = "converted"
	StatusCancelado   = "canceled"
	StatusFormando    = "graduated"
)

func StatusValido(s string) bool {
	switch s {
	case StatusLead, StatusMatriculado, StatusCancelado, StatusFormando:
		return true
	}
	return false
}

// Motivos de recusa aceitos quando o status é canceled.
const (
	MotivoPreco       = "Preço"
	MotivoHorario     = "Horário"
	MotivoConcorrente = "Concorrente"
	MotivoOutros      = "Outros"
)

func MotivoRecusaValido(m string) bool {
	switch m {
	case MotivoPreco, MotivoHorario, MotivoConcorrente, MotivoOutros:
		return true
	}
	return false
}

// DeveCelebrarConversao detecta a transição para matriculado comparando o
// status anterior com o novo. Regravar um lead já matriculado não dispara
// celebração de novo.
func DeveCelebrarConversao(statusAnterior, statusNovo string) bool {
	return statusAnterior != StatusMatriculado && statusNovo == StatusMatriculado
}
