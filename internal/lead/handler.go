// internal/lead/handler.go
package lead

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/SchoolRise/api-gestor/internal/auth"
	"github.com/SchoolRise/api-gestor/internal/notificacao"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	validate   *validator.Validate
}

// NewHandler cria um novo handler de leads
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		validate:   validator.New(),
	}
}

func parseDataRetorno(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

// motivoRecusaPara aplica a regra: motivo só existe com status canceled.
func motivoRecusaPara(status, motivo string) *string {
	if status != StatusCancelado || motivo == "" {
		return nil
	}
	return &motivo
}

// Criar trata POST /leads
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	userVal := r.Context().Value(auth.CtxUserID)
	if userVal == nil {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	gestorID := userVal.(uint)

	var dto CriarLeadDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, "Preencha pelo menos Nome e Curso", http.StatusBadRequest)
		return
	}

	// Default de status, se não vier
	if dto.Status == "" {
		dto.Status = StatusLead
	}

	valor := dto.NegotiationValue
	if dto.Status == StatusMatriculado {
		valor = dto.ValorTotalMatricula()
	}

	l := Lead{
		GestorID:    gestorID,
		StudentName: dto.StudentName,
		Course:      dto.Course,
		Campaign:    dto.Campaign,
		Status:      dto.Status,
		ContactMade: dto.ContactMade,
		Scheduled:   dto.Scheduled,
		Value:       valor,
		Notes:       dto.Notes,
		ReturnDate:  parseDataRetorno(dto.ReturnDate),
	}

	if err := h.Repository.Salvar(h.DB, &l); err != nil {
		http.Error(w, "Erro ao salvar lead", http.StatusInternalServerError)
		return
	}

	// Lead cadastrado já como matrícula conta como conversão
	celebrar := DeveCelebrarConversao(StatusLead, l.Status)
	if celebrar {
		go notificacao.EnviarAlertaMatricula(l.StudentName, l.Course, l.Value)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(leadComCelebracao{Lead: l, Celebrar: celebrar})
}

// Listar trata GET /leads com filtros de ano, mês, status e retornos do dia
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool)
	userID, _ := r.Context().Value(auth.CtxUserID).(uint)

	f := Filtro{Agora: time.Now()}
	if !isAdmin {
		f.GestorID = userID
	}

	q := r.URL.Query()
	if ano, err := strconv.Atoi(q.Get("ano")); err == nil {
		f.Ano = ano
	}
	if mes, err := strconv.Atoi(q.Get("mes")); err == nil {
		f.Mes = mes
	}
	if s := q.Get("status"); s != "" {
		if !StatusValido(s) {
			http.Error(w, "status inválido", http.StatusBadRequest)
			return
		}
		f.Status = s
	}
	if q.Get("retornoHoje") == "true" {
		f.RetornoHoje = true
	}

	list, err := h.Repository.ListarTodos(h.DB, f)
	if err != nil {
		http.Error(w, "Erro ao listar leads", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /leads/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	l, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		http.Error(w, "Lead não encontrado", http.StatusNotFound)
		return
	}

	// Permissão: admin ou dono do lead
	isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool)
	userID, _ := r.Context().Value(auth.CtxUserID).(uint)
	if !isAdmin && l.GestorID != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(l)
}

func (h *Handler) carregarComPermissao(w http.ResponseWriter, r *http.Request) *Lead {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return nil
	}

	userVal := r.Context().Value(auth.CtxUserID)
	if userVal == nil {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return nil
	}
	userID := userVal.(uint)
	isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool)

	l, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		http.Error(w, "Lead não encontrado", http.StatusNotFound)
		return nil
	}
	if !isAdmin && l.GestorID != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return nil
	}
	return l
}

// Atualizar trata PUT /leads/{id} (formulário de edição completo)
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	existing := h.carregarComPermissao(w, r)
	if existing == nil {
		return
	}

	var dto AtualizarLeadDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, "dados inválidos", http.StatusBadRequest)
		return
	}

	celebrar := DeveCelebrarConversao(existing.Status, dto.Status)

	existing.StudentName = dto.StudentName
	existing.Campaign = dto.Campaign
	existing.Course = dto.Course
	existing.Status = dto.Status
	existing.Value = dto.Value
	existing.Notes = dto.Notes
	existing.ReturnDate = parseDataRetorno(dto.ReturnDate)
	existing.ContactMade = dto.ContactMade
	existing.HasResponded = dto.HasResponded
	existing.Scheduled = dto.Scheduled
	existing.Visited = dto.Visited
	existing.IsOnline = dto.IsOnline
	existing.NoShow = dto.NoShow
	existing.RejectionReason = motivoRecusaPara(dto.Status, dto.RejectionReason)

	if err := h.Repository.Atualizar(h.DB, existing); err != nil {
		http.Error(w, "Erro ao atualizar lead", http.StatusInternalServerError)
		return
	}

	if celebrar {
		go notificacao.EnviarAlertaMatricula(existing.StudentName, existing.Course, existing.Value)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(leadComCelebracao{Lead: *existing, Celebrar: celebrar})
}

// AtualizarStatus trata PATCH /leads/{id}/status (ação rápida da tabela)
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	existing := h.carregarComPermissao(w, r)
	if existing == nil {
		return
	}

	var req atualizarStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "status inválido", http.StatusBadRequest)
		return
	}

	celebrar := DeveCelebrarConversao(existing.Status, req.Status)
	existing.Status = req.Status
	existing.RejectionReason = motivoRecusaPara(req.Status, req.RejectionReason)

	if err := h.Repository.Atualizar(h.DB, existing); err != nil {
		http.Error(w, "Erro ao atualizar status", http.StatusInternalServerError)
		return
	}

	if celebrar {
		go notificacao.EnviarAlertaMatricula(existing.StudentName, existing.Course, existing.Value)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(leadComCelebracao{Lead: *existing, Celebrar: celebrar})
}

// AtualizarFunil trata PATCH /leads/{id}/funil (alternância dos indicadores)
func (h *Handler) AtualizarFunil(w http.ResponseWriter, r *http.Request) {
	existing := h.carregarComPermissao(w, r)
	if existing == nil {
		return
	}

	var req atualizarFunilRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	if req.ContactMade != nil {
		existing.ContactMade = *req.ContactMade
	}
	if req.HasResponded != nil {
		existing.HasResponded = *req.HasResponded
	}
	if req.Scheduled != nil {
		existing.Scheduled = *req.Scheduled
	}
	if req.NoShow != nil {
		existing.NoShow = *req.NoShow
	}
	// Presencial e online são excludentes por convenção da secretaria
	if req.Visited != nil {
		existing.Visited = *req.Visited
		if existing.Visited {
			existing.IsOnline = false
		}
	}
	if req.IsOnline != nil {
		existing.IsOnline = *req.IsOnline
		if existing.IsOnline {
			existing.Visited = false
		}
	}

	if err := h.Repository.Atualizar(h.DB, existing); err != nil {
		http.Error(w, "Erro ao atualizar funil", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existing)
}

// Deletar trata DELETE /leads/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	existing := h.carregarComPermissao(w, r)
	if existing == nil {
		return
	}

	if err := h.Repository.Deletar(h.DB, existing.ID); err != nil {
		http.Error(w, "Erro ao excluir lead", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
