// internal/relatorio/engine.go
//
// Motor de agregação do painel: funções puras sobre o conjunto completo de
// leads já carregado. Nada aqui faz I/O nem altera a entrada; o painel
// recalcula tudo a cada atualização de dados ou troca de ano.
package relatorio

import (
	"sort"
	"time"

	"github.com/SchoolRise/api-gestor/internal/lead"
)

// RotulosMeses na ordem do calendário, como o gráfico exibe.
var RotulosMeses = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// OrigemResumo agrega as matrículas de um canal dentro de um mês.
type OrigemResumo struct {
	Nome       string  `json:"nome"`
	Valor      float64 `json:"valor"`
	Quantidade int     `json:"quantidade"`
}

// BucketMensal é uma barra do gráfico de desempenho.
type BucketMensal struct {
	Mes         string         `json:"mes"`
	Faturamento float64        `json:"faturamento"`
	Origens     []OrigemResumo `json:"origens"`
}

// Estatisticas são os cards do topo do painel, sempre sobre o mês corrente
// de "agora", independente do ano selecionado no gráfico.
type Estatisticas struct {
	LeadsNegociando int     `json:"leadsNegociando"`
	MatriculasMes   int     `json:"matriculasMes"`
	FaturamentoMes  float64 `json:"faturamentoMes"`
	FaturamentoAno  float64 `json:"faturamentoAno"`
	MesAtual        string  `json:"mesAtual"`
	TaxaConversao   float64 `json:"taxaConversao"`
	RetornosHoje    int     `json:"retornosHoje"`
}

// MelhorOrigem é o insight "canal que domina as vendas" do mês corrente.
type MelhorOrigem struct {
	Nome       string  `json:"nome"`
	Percentual float64 `json:"percentual"`
}

// ResumoFunil são os contadores do checklist comercial, sobre todos os leads.
type ResumoFunil struct {
	TotalLeads         int `json:"totalLeads"`
	MensagensEnviadas  int `json:"mensagensEnviadas"`
	FaltamEnviar       int `json:"faltamEnviar"`
	Responderam        int `json:"responderam"`
	NaoResponderam     int `json:"naoResponderam"`
	Agendados          int `json:"agendados"`
	Presenciais        int `json:"presenciais"`
	AtendimentosOnline int `json:"atendimentosOnline"`
	NaoCompareceram    int `json:"naoCompareceram"`
	Matriculas         int `json:"matriculas"`
}

// Dashboard é a resposta completa da agregação para um ano selecionado.
type Dashboard struct {
	Ano          int            `json:"ano"`
	Serie        []BucketMensal `json:"serie"`
	Estatisticas Estatisticas   `json:"estatisticas"`
	MelhorOrigem *MelhorOrigem  `json:"melhorOrigem,omitempty"`
	Funil        ResumoFunil    `json:"funil"`
}

// criadoEm confere ano e mês (0-11) de criação. O mês de criação é a única
// base de bucketing: um lead matriculado meses depois continua contando no
// mês em que foi cadastrado.
func criadoEm(l lead.Lead, ano int, mes int) bool {
	return l.CreatedAt.Year() == ano && int(l.CreatedAt.Month())-1 == mes
}

// SerieMensal monta os 12 buckets (Jan..Dez) do ano selecionado: faturamento
// das matrículas criadas no mês e o detalhamento por origem normalizada.
func SerieMensal(leads []lead.Lead, ano int) []BucketMensal {
	serie := make([]BucketMensal, 0, 12)

	for mes := 0; mes < 12; mes++ {
		bucket := BucketMensal{Mes: RotulosMeses[mes], Origens: []OrigemResumo{}}

		grupos := map[string]*OrigemResumo{}
		for _, l := range leads {
			if l.Status != lead.StatusMatriculado || !criadoEm(l, ano, mes) {
				continue
			}
			bucket.Faturamento += l.Value

			nome := l.Origem()
			g, ok := grupos[nome]
			if !ok {
				g = &OrigemResumo{Nome: nome}
				grupos[nome] = g
			}
			g.Valor += l.Value
			g.Quantidade++
		}

		for _, g := range grupos {
			bucket.Origens = append(bucket.Origens, *g)
		}
		// maior faturamento primeiro; empate resolve por nome para saída estável
		sort.Slice(bucket.Origens, func(i, j int) bool {
			if bucket.Origens[i].Valor != bucket.Origens[j].Valor {
				return bucket.Origens[i].Valor > bucket.Origens[j].Valor
			}
			return bucket.Origens[i].Nome < bucket.Origens[j].Nome
		})

		serie = append(serie, bucket)
	}
	return serie
}

// FaturamentoDaSerie soma as 12 barras — o faturamento do ano selecionado.
func FaturamentoDaSerie(serie []BucketMensal) float64 {
	var total float64
	for _, b := range serie {
		total += b.Faturamento
	}
	return total
}

// CalcularEstatisticas monta os cards do topo. O recorte é o mês corrente de
// "agora"; só o faturamento anual segue o ano selecionado.
func CalcularEstatisticas(leads []lead.Lead, serie []BucketMensal, agora time.Time) Estatisticas {
	mesAtual := int(agora.Month()) - 1
	anoAtual := agora.Year()

	stats := Estatisticas{
		MesAtual:       RotulosMeses[mesAtual],
		FaturamentoAno: FaturamentoDaSerie(serie),
	}

	criadosNoMes := 0
	for _, l := range leads {
		if l.Status == lead.StatusLead && l.RetornoHoje(agora) {
			stats.RetornosHoje++
		}
		if !criadoEm(l, anoAtual, mesAtual) {
			continue
		}
		criadosNoMes++
		switch l.Status {
		case lead.StatusLead:
			stats.LeadsNegociando++
		case lead.StatusMatriculado:
			stats.MatriculasMes++
			stats.FaturamentoMes += l.Value
		}
	}

	if criadosNoMes > 0 {
		stats.TaxaConversao = float64(stats.MatriculasMes) / float64(criadosNoMes) * 100
	}
	return stats
}

// CalcularMelhorOrigem lê o bucket do mês corrente dentro da série do ano
// selecionado e devolve o canal de maior valor com sua fatia do total.
// Sem matrículas no mês, não há insight.
func CalcularMelhorOrigem(serie []BucketMensal, agora time.Time) *MelhorOrigem {
	mesAtual := int(agora.Month()) - 1
	if mesAtual < 0 || mesAtual >= len(serie) {
		return nil
	}
	origens := serie[mesAtual].Origens
	if len(origens) == 0 {
		return nil
	}

	melhor := origens[0] // a série já sai ordenada por valor
	var totalMes float64
	for _, o := range origens {
		totalMes += o.Valor
	}

	insight := &MelhorOrigem{Nome: melhor.Nome}
	if totalMes > 0 {
		insight.Percentual = melhor.Valor / totalMes * 100
	}
	return insight
}

// ResumirFunil conta os indicadores booleanos sobre todos os leads.
func ResumirFunil(leads []lead.Lead) ResumoFunil {
	f := ResumoFunil{TotalLeads: len(leads)}
	for _, l := range leads {
		if l.ContactMade {
			f.MensagensEnviadas++
		}
		if !l.ContactMade && l.Status != lead.StatusMatriculado && l.Status != lead.StatusCancelado {
			f.FaltamEnviar++
		}
		if l.HasResponded {
			f.Responderam++
		}
		if l.ContactMade && !l.HasResponded && l.Status != lead.StatusMatriculado {
			f.NaoResponderam++
		}
		if l.Scheduled {
			f.Agendados++
		}
		if l.Visited {
			f.Presenciais++
		}
		if l.IsOnline {
			f.AtendimentosOnline++
		}
		if l.NoShow {
			f.NaoCompareceram++
		}
		if l.Status == lead.StatusMatriculado {
			f.Matriculas++
		}
	}
	return f
}

// MontarDashboard roda a agregação completa para o ano selecionado.
func MontarDashboard(leads []lead.Lead, ano int, agora time.Time) Dashboard {
	serie := SerieMensal(leads, ano)
	return Dashboard{
		Ano:          ano,
		Serie:        serie,
		Estatisticas: CalcularEstatisticas(leads, serie, agora),
		MelhorOrigem: CalcularMelhorOrigem(serie, agora),
		Funil:        ResumirFunil(leads),
	}
}
