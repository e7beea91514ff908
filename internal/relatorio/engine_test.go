package relatorio

import (
	"testing"
	"time"

	"github.com/SchoolRise/api-gestor/internal/lead"
)

func novoLead(status string, valor float64, origem string, criado time.Time) lead.Lead {
	return lead.Lead{
		Status:    status,
		Value:     valor,
		Campaign:  origem,
		CreatedAt: criado,
	}
}

func TestSerieMensal_CenarioMarco(t *testing.T) {
	marco := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local)
	leads := []lead.Lead{
		novoLead(lead.StatusMatriculado, 1000, "Instagram", marco),
		novoLead(lead.StatusMatriculado, 500, " INSTAGRAM ", marco.AddDate(0, 0, 5)),
		novoLead(lead.StatusMatriculado, 500, "Google", marco.AddDate(0, 0, 2)),
		// fora do recorte: lead aberto e matrícula de outro ano
		novoLead(lead.StatusLead, 900, "Instagram", marco),
		novoLead(lead.StatusMatriculado, 700, "Google", marco.AddDate(-1, 0, 0)),
	}

	serie := SerieMensal(leads, 2025)
	if len(serie) != 12 {
		t.Fatalf("len(serie) = %d, want 12", len(serie))
	}

	bucket := serie[2] // Março
	if bucket.Mes != "Mar" {
		t.Errorf("rótulo = %q, want Mar", bucket.Mes)
	}
	if bucket.Faturamento != 2000 {
		t.Errorf("faturamento de março = %v, want 2000", bucket.Faturamento)
	}
	if len(bucket.Origens) != 2 {
		t.Fatalf("origens = %d, want 2", len(bucket.Origens))
	}
	if bucket.Origens[0].Nome != "INSTAGRAM" || bucket.Origens[0].Valor != 1500 || bucket.Origens[0].Quantidade != 2 {
		t.Errorf("melhor origem do bucket = %+v, want INSTAGRAM 1500/2", bucket.Origens[0])
	}
	if bucket.Origens[1].Nome != "GOOGLE" || bucket.Origens[1].Valor != 500 || bucket.Origens[1].Quantidade != 1 {
		t.Errorf("segunda origem = %+v, want GOOGLE 500/1", bucket.Origens[1])
	}

	insight := CalcularMelhorOrigem(serie, marco)
	if insight == nil {
		t.Fatal("insight nil, want INSTAGRAM")
	}
	if insight.Nome != "INSTAGRAM" || insight.Percentual != 75 {
		t.Errorf("insight = %+v, want INSTAGRAM a 75%%", insight)
	}
}

func TestSerieMensal_BucketPeloMesDeCriacao(t *testing.T) {
	// Cadastrado em janeiro, matriculado (editado) só em fevereiro:
	// continua contando em janeiro, o mês de criação.
	criado := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.Local)
	l := novoLead(lead.StatusMatriculado, 3000, "Instagram", criado)
	l.UpdatedAt = time.Date(2025, time.February, 15, 9, 0, 0, 0, time.Local)

	serie := SerieMensal([]lead.Lead{l}, 2025)
	if serie[0].Faturamento != 3000 {
		t.Errorf("janeiro = %v, want 3000", serie[0].Faturamento)
	}
	if serie[1].Faturamento != 0 {
		t.Errorf("fevereiro = %v, want 0", serie[1].Faturamento)
	}
}

func TestSerieMensal_AnoVazio(t *testing.T) {
	agora := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.Local)
	dashboard := MontarDashboard(nil, 2025, agora)

	if len(dashboard.Serie) != 12 {
		t.Fatalf("len(serie) = %d, want 12", len(dashboard.Serie))
	}
	for i, b := range dashboard.Serie {
		if b.Faturamento != 0 || len(b.Origens) != 0 {
			t.Errorf("bucket %d = %+v, want zerado", i, b)
		}
	}
	stats := dashboard.Estatisticas
	if stats.LeadsNegociando != 0 || stats.MatriculasMes != 0 || stats.FaturamentoMes != 0 ||
		stats.FaturamentoAno != 0 || stats.TaxaConversao != 0 || stats.RetornosHoje != 0 {
		t.Errorf("estatísticas = %+v, want tudo zero", stats)
	}
	if dashboard.MelhorOrigem != nil {
		t.Errorf("melhor origem = %+v, want nil", dashboard.MelhorOrigem)
	}
}

func TestFaturamentoAnoIgualSomaDosBuckets(t *testing.T) {
	leads := []lead.Lead{
		novoLead(lead.StatusMatriculado, 1200, "Instagram", time.Date(2025, time.January, 5, 0, 0, 0, 0, time.Local)),
		novoLead(lead.StatusMatriculado, 800, "Google", time.Date(2025, time.April, 20, 0, 0, 0, 0, time.Local)),
		novoLead(lead.StatusMatriculado, 2500, "", time.Date(2025, time.December, 31, 23, 0, 0, 0, time.Local)),
		novoLead(lead.StatusCancelado, 999, "Google", time.Date(2025, time.April, 21, 0, 0, 0, 0, time.Local)),
	}

	serie := SerieMensal(leads, 2025)
	var soma float64
	for _, b := range serie {
		soma += b.Faturamento
	}

	stats := CalcularEstatisticas(leads, serie, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.Local))
	if stats.FaturamentoAno != soma {
		t.Errorf("FaturamentoAno = %v, soma dos buckets = %v", stats.FaturamentoAno, soma)
	}
	if soma != 4500 {
		t.Errorf("soma = %v, want 4500", soma)
	}
}

func TestCalcularEstatisticas_MesCorrente(t *testing.T) {
	agora := time.Date(2025, time.March, 20, 10, 0, 0, 0, time.Local)
	ontem := agora.AddDate(0, 0, -1)

	abertoComRetorno := novoLead(lead.StatusLead, 0, "", agora.AddDate(0, 0, -10))
	abertoComRetorno.ReturnDate = &ontem

	leads := []lead.Lead{
		abertoComRetorno,
		novoLead(lead.StatusLead, 500, "Instagram", agora.AddDate(0, 0, -3)),
		novoLead(lead.StatusMatriculado, 2000, "Instagram", agora.AddDate(0, 0, -5)),
		novoLead(lead.StatusMatriculado, 1000, "Google", agora.AddDate(0, 0, -1)),
		// março do ano passado não entra nos cards
		novoLead(lead.StatusMatriculado, 700, "Google", agora.AddDate(-1, 0, 0)),
	}

	serie := SerieMensal(leads, 2025)
	stats := CalcularEstatisticas(leads, serie, agora)

	if stats.LeadsNegociando != 2 {
		t.Errorf("LeadsNegociando = %d, want 2", stats.LeadsNegociando)
	}
	if stats.MatriculasMes != 2 {
		t.Errorf("MatriculasMes = %d, want 2", stats.MatriculasMes)
	}
	if stats.FaturamentoMes != 3000 {
		t.Errorf("FaturamentoMes = %v, want 3000", stats.FaturamentoMes)
	}
	if stats.MesAtual != "Mar" {
		t.Errorf("MesAtual = %q, want Mar", stats.MesAtual)
	}
	if stats.RetornosHoje != 1 {
		t.Errorf("RetornosHoje = %d, want 1", stats.RetornosHoje)
	}
	// 2 matrículas sobre 4 leads criados no mês
	if stats.TaxaConversao != 50 {
		t.Errorf("TaxaConversao = %v, want 50", stats.TaxaConversao)
	}
}

func TestTaxaConversaoSemLeadsNoMes(t *testing.T) {
	agora := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.Local)
	leads := []lead.Lead{
		// só leads de meses anteriores
		novoLead(lead.StatusMatriculado, 1000, "Google", agora.AddDate(0, -2, 0)),
	}
	serie := SerieMensal(leads, 2025)
	stats := CalcularEstatisticas(leads, serie, agora)
	if stats.TaxaConversao != 0 {
		t.Errorf("TaxaConversao = %v, want 0 (sem divisão por zero)", stats.TaxaConversao)
	}
}

func TestSerieNaoEnxergaMutacaoPosterior(t *testing.T) {
	marco := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)
	leads := []lead.Lead{novoLead(lead.StatusMatriculado, 1000, "Instagram", marco)}

	serie := SerieMensal(leads, 2025)
	leads[0].Campaign = "YouTube"

	if serie[2].Origens[0].Nome != "INSTAGRAM" {
		t.Errorf("bucket mudou após mutação da entrada: %+v", serie[2].Origens[0])
	}
	// só uma nova agregação enxerga o valor novo
	serie2 := SerieMensal(leads, 2025)
	if serie2[2].Origens[0].Nome != "YOUTUBE" {
		t.Errorf("reagregação deveria ver YOUTUBE, veio %+v", serie2[2].Origens[0])
	}
}

func TestResumirFunil(t *testing.T) {
	aberto := novoLead(lead.StatusLead, 0, "", time.Now())
	aberto.ContactMade = true

	mudo := novoLead(lead.StatusLead, 0, "", time.Now())
	mudo.ContactMade = true
	mudo.NoShow = true

	respondeu := novoLead(lead.StatusLead, 0, "", time.Now())
	respondeu.ContactMade = true
	respondeu.HasResponded = true
	respondeu.Scheduled = true
	respondeu.Visited = true

	matriculado := novoLead(lead.StatusMatriculado, 3000, "Instagram", time.Now())
	matriculado.ContactMade = true
	matriculado.HasResponded = true
	matriculado.IsOnline = true

	cancelado := novoLead(lead.StatusCancelado, 0, "", time.Now())

	semContato := novoLead(lead.StatusLead, 0, "", time.Now())

	f := ResumirFunil([]lead.Lead{aberto, mudo, respondeu, matriculado, cancelado, semContato})

	if f.TotalLeads != 6 {
		t.Errorf("TotalLeads = %d, want 6", f.TotalLeads)
	}
	if f.MensagensEnviadas != 4 {
		t.Errorf("MensagensEnviadas = %d, want 4", f.MensagensEnviadas)
	}
	// cancelado e matriculado não entram no "faltam enviar"
	if f.FaltamEnviar != 1 {
		t.Errorf("FaltamEnviar = %d, want 1", f.FaltamEnviar)
	}
	if f.Responderam != 2 {
		t.Errorf("Responderam = %d, want 2", f.Responderam)
	}
	if f.NaoResponderam != 2 {
		t.Errorf("NaoResponderam = %d, want 2", f.NaoResponderam)
	}
	if f.Agendados != 1 || f.Presenciais != 1 || f.AtendimentosOnline != 1 || f.NaoCompareceram != 1 {
		t.Errorf("contadores = %+v", f)
	}
	if f.Matriculas != 1 {
		t.Errorf("Matriculas = %d, want 1", f.Matriculas)
	}
}

func TestCalcularMelhorOrigem_SentinelaEEmpate(t *testing.T) {
	junho := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.Local)
	leads := []lead.Lead{
		novoLead(lead.StatusMatriculado, 500, "", junho),
		novoLead(lead.StatusMatriculado, 500, "Google", junho),
	}
	serie := SerieMensal(leads, 2025)
	insight := CalcularMelhorOrigem(serie, junho)
	if insight == nil {
		t.Fatal("insight nil")
	}
	// empate em valor resolve por nome; o sentinela vem antes de GOOGLE
	if insight.Nome != lead.OrigemPadrao {
		t.Errorf("Nome = %q, want %q", insight.Nome, lead.OrigemPadrao)
	}
	if insight.Percentual != 50 {
		t.Errorf("Percentual = %v, want 50", insight.Percentual)
	}
}
