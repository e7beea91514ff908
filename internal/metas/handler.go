package metas

import (
	"encoding/json"
	"net/http"

	"github.com/SchoolRise/api-gestor/internal/auth"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type salvarMetaRequest struct {
	FaturamentoMensal float64 `json:"faturamentoMensal" validate:"gte=0"`
	FaturamentoAnual  float64 `json:"faturamentoAnual" validate:"gte=0"`
	Matriculas        int     `json:"matriculas" validate:"gte=0"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	validate   *validator.Validate
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		validate:   validator.New(),
	}
}

// Buscar trata GET /metas
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.CtxUserID).(uint)

	m, err := h.Repository.BuscarPorGestor(h.DB, userID)
	if err != nil {
		http.Error(w, "erro ao carregar metas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(m)
}

// Salvar trata PUT /metas (upsert da linha do gestor)
func (h *Handler) Salvar(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.CtxUserID).(uint)

	var req salvarMetaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "dados inválidos", http.StatusBadRequest)
		return
	}

	m := Meta{
		GestorID:          userID,
		FaturamentoMensal: req.FaturamentoMensal,
		FaturamentoAnual:  req.FaturamentoAnual,
		Matriculas:        req.Matriculas,
	}
	if err := h.Repository.Upsert(h.DB, &m); err != nil {
		http.Error(w, "erro ao salvar metas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(m)
}
