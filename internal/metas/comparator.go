package metas

// Faixas de saúde da meta. Regra única em todo o painel:
// até 50% crítico, até 75% atenção, acima disso bom.
const (
	FaixaCritico = "critico"
	FaixaAtencao = "atencao"
	FaixaBom     = "bom"
)

// Percentual devolve o avanço sobre a meta, limitado a 100.
// Meta zerada (ou negativa) rende 0, nunca divisão por zero.
func Percentual(realizado, meta float64) float64 {
	if meta <= 0 {
		return 0
	}
	p := realizado / meta * 100
	if p > 100 {
		p = 100
	}
	return p
}

// Faixa classifica um percentual já calculado.
func Faixa(percentual float64) string {
	if percentual <= 50 {
		return FaixaCritico
	}
	if percentual <= 75 {
		return FaixaAtencao
	}
	return FaixaBom
}

// ItemComparativo é o resultado de uma meta individual.
type ItemComparativo struct {
	Realizado  float64 `json:"realizado"`
	Meta       float64 `json:"meta"`
	Percentual float64 `json:"percentual"`
	Faixa      string  `json:"faixa"`
	Atingida   bool    `json:"atingida"`
}

func Comparar(realizado, meta float64) ItemComparativo {
	p := Percentual(realizado, meta)
	return ItemComparativo{
		Realizado:  realizado,
		Meta:       meta,
		Percentual: p,
		Faixa:      Faixa(p),
		Atingida:   meta > 0 && realizado >= meta,
	}
}

// Comparativo reúne as três metas do painel mais o índice de saúde da escola
// (matrículas do mês contra a meta de matrículas).
type Comparativo struct {
	FaturamentoMensal ItemComparativo `json:"faturamentoMensal"`
	FaturamentoAnual  ItemComparativo `json:"faturamentoAnual"`
	Matriculas        ItemComparativo `json:"matriculas"`
	IndiceSaude       float64         `json:"indiceSaude"`
}

// MontarComparativo cruza os realizados da agregação com as metas salvas.
func MontarComparativo(m Meta, faturamentoMes, faturamentoAno float64, matriculasMes int) Comparativo {
	matriculas := Comparar(float64(matriculasMes), float64(m.Matriculas))
	return Comparativo{
		FaturamentoMensal: Comparar(faturamentoMes, m.FaturamentoMensal),
		FaturamentoAnual:  Comparar(faturamentoAno, m.FaturamentoAnual),
		Matriculas:        matriculas,
		IndiceSaude:       matriculas.Percentual,
	}
}
