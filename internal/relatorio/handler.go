package relatorio

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/SchoolRise/api-gestor/internal/auth"
	"github.com/SchoolRise/api-gestor/internal/lead"
	"github.com/SchoolRise/api-gestor/internal/metas"
	"gorm.io/gorm"
)

// respostaDashboard junta a agregação com o comparativo de metas que os anéis
// de progresso do painel consomem.
type respostaDashboard struct {
	Dashboard
	Metas metas.Comparativo `json:"metas"`
}

// Handler busca os leads e delega o cálculo ao motor de agregação.
type Handler struct {
	DB    *gorm.DB
	Leads lead.Repository
	Metas metas.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:    db,
		Leads: lead.NewRepository(),
		Metas: metas.NewRepository(),
	}
}

// Dashboard trata GET /relatorios/dashboard?ano=YYYY
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.CtxUserID).(uint)
	isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool)

	agora := time.Now()
	ano := agora.Year()
	if v, err := strconv.Atoi(r.URL.Query().Get("ano")); err == nil && v > 0 {
		ano = v
	}

	// Busca completa: os cards do mês corrente precisam de todos os anos,
	// não só do ano selecionado no gráfico
	f := lead.Filtro{}
	if !isAdmin {
		f.GestorID = userID
	}
	leads, err := h.Leads.ListarTodos(h.DB, f)
	if err != nil {
		http.Error(w, "Erro ao carregar leads", http.StatusInternalServerError)
		return
	}

	dashboard := MontarDashboard(leads, ano, agora)

	meta, err := h.Metas.BuscarPorGestor(h.DB, userID)
	if err != nil {
		http.Error(w, "erro ao carregar metas", http.StatusInternalServerError)
		return
	}
	comparativo := metas.MontarComparativo(
		*meta,
		dashboard.Estatisticas.FaturamentoMes,
		dashboard.Estatisticas.FaturamentoAno,
		dashboard.Estatisticas.MatriculasMes,
	)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(respostaDashboard{Dashboard: dashboard, Metas: comparativo})
}
