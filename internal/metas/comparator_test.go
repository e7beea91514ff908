package metas

import "testing"

func TestPercentual(t *testing.T) {
	tests := []struct {
		name      string
		realizado float64
		meta      float64
		want      float64
	}{
		{name: "metade da meta", realizado: 5000, meta: 10000, want: 50},
		{name: "meta estourada trava em 100", realizado: 12000, meta: 10000, want: 100},
		{name: "exatamente na meta", realizado: 10000, meta: 10000, want: 100},
		{name: "meta zerada rende zero", realizado: 5000, meta: 0, want: 0},
		{name: "meta negativa rende zero", realizado: 5000, meta: -1, want: 0},
		{name: "nada realizado", realizado: 0, meta: 10000, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentual(tt.realizado, tt.meta)
			if got != tt.want {
				t.Errorf("Percentual(%v, %v) = %v, want %v", tt.realizado, tt.meta, got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("Percentual fora de [0,100]: %v", got)
			}
		})
	}
}

func TestFaixa(t *testing.T) {
	tests := []struct {
		percentual float64
		want       string
	}{
		{0, FaixaCritico},
		{50, FaixaCritico},
		{50.1, FaixaAtencao},
		{75, FaixaAtencao},
		{75.1, FaixaBom},
		{100, FaixaBom},
	}
	for _, tt := range tests {
		if got := Faixa(tt.percentual); got != tt.want {
			t.Errorf("Faixa(%v) = %q, want %q", tt.percentual, got, tt.want)
		}
	}
}

func TestComparar(t *testing.T) {
	item := Comparar(12000, 10000)
	if item.Percentual != 100 {
		t.Errorf("Percentual = %v, want 100 (travado)", item.Percentual)
	}
	if item.Faixa != FaixaBom {
		t.Errorf("Faixa = %q, want %q", item.Faixa, FaixaBom)
	}
	if !item.Atingida {
		t.Error("Atingida = false, want true")
	}

	// meta zerada nunca conta como atingida
	item = Comparar(12000, 0)
	if item.Atingida || item.Percentual != 0 {
		t.Errorf("meta zerada: Atingida=%v Percentual=%v, want false/0", item.Atingida, item.Percentual)
	}
}

func TestMontarComparativo(t *testing.T) {
	m := Meta{FaturamentoMensal: 10000, FaturamentoAnual: 120000, Matriculas: 50}
	c := MontarComparativo(m, 12000, 60000, 20)

	if c.FaturamentoMensal.Percentual != 100 || c.FaturamentoMensal.Faixa != FaixaBom {
		t.Errorf("mensal = %+v, want 100%%/bom", c.FaturamentoMensal)
	}
	if c.FaturamentoAnual.Percentual != 50 || c.FaturamentoAnual.Faixa != FaixaCritico {
		t.Errorf("anual = %+v, want 50%%/critico", c.FaturamentoAnual)
	}
	if c.Matriculas.Percentual != 40 || c.Matriculas.Faixa != FaixaCritico {
		t.Errorf("matrículas = %+v, want 40%%/critico", c.Matriculas)
	}
	if c.IndiceSaude != c.Matriculas.Percentual {
		t.Errorf("IndiceSaude = %v, want %v", c.IndiceSaude, c.Matriculas.Percentual)
	}
}
