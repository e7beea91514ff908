package gestor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/SchoolRise/api-gestor/internal/auth"
	"github.com/SchoolRise/api-gestor/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// request DTOs
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type criarGestorRequest struct {
	Nome       string `json:"nome" validate:"required"`
	Sobrenome  string `json:"sobrenome"`
	NomeEscola string `json:"nomeEscola" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Telefone   string `json:"telefone"`
	Senha      string `json:"senha" validate:"required,min=6"`
	IsAdmin    bool   `json:"isAdmin"`
}

type atualizarGestorRequest struct {
	Nome       string `json:"nome"`
	Sobrenome  string `json:"sobrenome"`
	NomeEscola string `json:"nomeEscola"`
	Telefone   string `json:"telefone"`
	NovaSenha  string `json:"novaSenha" validate:"omitempty,min=6"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	validate   *validator.Validate
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		validate:   validator.New(),
	}
}

// Login gera um JWT para credenciais válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarPorEmail(h.DB, req.Email)
	if err != nil {
		http.Error(w, "E-mail ou senha incorretos.", http.StatusUnauthorized)
		return
	}

	if !utils.VerificarSenha(user.Senha, req.Password) {
		http.Error(w, "E-mail ou senha incorretos.", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(user.ID, user.IsAdmin)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"token":                 token,
		"precisaRedefinirSenha": user.PrecisaRedefinirSenha,
	})
}

// CriarGestor cadastra uma nova conta (rota livre de autenticação)
func (h *Handler) CriarGestor(w http.ResponseWriter, r *http.Request) {
	var req criarGestorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "dados inválidos", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	g := Gestor{
		Nome:       req.Nome,
		Sobrenome:  req.Sobrenome,
		NomeEscola: req.NomeEscola,
		Email:      req.Email,
		Telefone:   req.Telefone,
		Senha:      hash,
		IsAdmin:    req.IsAdmin,
	}

	if err := h.Repository.Salvar(h.DB, &g); err != nil {
		http.Error(w, "erro ao salvar gestor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(ParaResumo(g))
}

// ListarGestores retorna todos (admin) ou apenas o próprio registro
func (h *Handler) ListarGestores(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.CtxUserID).(uint)
	isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool)

	w.Header().Set("Content-Type", "application/json")

	if isAdmin {
		gestores, err := h.Repository.ListarTodos(h.DB)
		if err != nil {
			http.Error(w, "erro ao listar gestores", http.StatusInternalServerError)
			return
		}
		resumos := make([]ResumoGestorDTO, 0, len(gestores))
		for _, g := range gestores {
			resumos = append(resumos, ParaResumo(g))
		}
		_ = json.NewEncoder(w).Encode(resumos)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, userID)
	if err != nil {
		http.Error(w, "gestor não encontrado", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode([]ResumoGestorDTO{ParaResumo(*obj)})
}

func (h *Handler) buscarComPermissao(w http.ResponseWriter, r *http.Request) *Gestor {
	userID := r.Context().Value(auth.CtxUserID).(uint)
	isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return nil
	}
	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return nil
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "gestor não encontrado", http.StatusNotFound)
		return nil
	}
	return obj
}

// BuscarPorID retorna um gestor pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	obj := h.buscarComPermissao(w, r)
	if obj == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ParaResumo(*obj))
}

// AtualizarGestor atualiza dados cadastrais e, opcionalmente, a senha
func (h *Handler) AtualizarGestor(w http.ResponseWriter, r *http.Request) {
	obj := h.buscarComPermissao(w, r)
	if obj == nil {
		return
	}

	var req atualizarGestorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "dados inválidos", http.StatusBadRequest)
		return
	}

	if req.Nome != "" {
		obj.Nome = req.Nome
	}
	if req.Sobrenome != "" {
		obj.Sobrenome = req.Sobrenome
	}
	if req.NomeEscola != "" {
		obj.NomeEscola = req.NomeEscola
	}
	if req.Telefone != "" {
		obj.Telefone = req.Telefone
	}
	if req.NovaSenha != "" {
		hash, err := utils.HashSenha(req.NovaSenha)
		if err != nil {
			http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
			return
		}
		obj.Senha = hash
		obj.PrecisaRedefinirSenha = false
	}

	if err := h.Repository.Atualizar(h.DB, obj); err != nil {
		http.Error(w, "erro ao atualizar gestor", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ParaResumo(*obj))
}

// ResetarSenha gera uma senha temporária e marca a conta para redefinição
func (h *Handler) ResetarSenha(w http.ResponseWriter, r *http.Request) {
	obj := h.buscarComPermissao(w, r)
	if obj == nil {
		return
	}

	senhaTemporaria, err := utils.GerarSenhaTemporaria()
	if err != nil {
		http.Error(w, "erro ao gerar senha temporária", http.StatusInternalServerError)
		return
	}
	hash, err := utils.HashSenha(senhaTemporaria)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	obj.Senha = hash
	obj.PrecisaRedefinirSenha = true
	if err := h.Repository.Atualizar(h.DB, obj); err != nil {
		http.Error(w, "erro ao salvar senha temporária", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"senhaTemporaria": senhaTemporaria})
}

// DeletarGestor remove a conta
func (h *Handler) DeletarGestor(w http.ResponseWriter, r *http.Request) {
	obj := h.buscarComPermissao(w, r)
	if obj == nil {
		return
	}
	if err := h.Repository.Deletar(h.DB, obj.ID); err != nil {
		http.Error(w, "erro ao excluir gestor", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
