package gestor

// ResumoGestorDTO é a visão pública de uma conta, sem campos sensíveis.
type ResumoGestorDTO struct {
	ID         uint   `json:"id"`
	Nome       string `json:"nome"`
	Sobrenome  string `json:"sobrenome"`
	NomeEscola string `json:"nomeEscola"`
	Email      string `json:"email"`
	Telefone   string `json:"telefone"`
	IsAdmin    bool   `json:"isAdmin"`
	TotalLeads int    `json:"totalLeads"`
}

func ParaResumo(g Gestor) ResumoGestorDTO {
	return ResumoGestorDTO{
		ID:         g.ID,
		Nome:       g.Nome,
		Sobrenome:  g.Sobrenome,
		NomeEscola: g.NomeEscola,
		Email:      g.Email,
		Telefone:   g.Telefone,
		IsAdmin:    g.IsAdmin,
		TotalLeads: len(g.Leads),
	}
}
