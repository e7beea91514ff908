package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/SchoolRise/api-gestor/internal/auth"
	"github.com/SchoolRise/api-gestor/internal/gestor"
	"github.com/SchoolRise/api-gestor/internal/lead"
	"github.com/SchoolRise/api-gestor/internal/metas"
	"github.com/SchoolRise/api-gestor/internal/relatorio"
	"github.com/SchoolRise/api-gestor/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env não encontrado, usando variáveis do ambiente")
	}
	auth.CarregarSegredo()

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&gestor.Gestor{},
		&lead.Lead{},
		&metas.Meta{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Handlers
	gestorHandler := gestor.NewHandler(database)
	leadHandler := lead.NewHandler(database)
	metasHandler := metas.NewHandler(database)
	relatorioHandler := relatorio.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", gestorHandler.Login).Methods("POST")
	r.HandleFunc("/gestores", gestorHandler.CriarGestor).Methods("POST")

	// Rotas autenticadas
	api := r.PathPrefix("/").Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de gestores
	api.HandleFunc("/gestores", gestorHandler.ListarGestores).Methods("GET")
	api.HandleFunc("/gestores/{id}", gestorHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/gestores/{id}", gestorHandler.AtualizarGestor).Methods("PUT")
	api.HandleFunc("/gestores/{id}", gestorHandler.DeletarGestor).Methods("DELETE")
	api.HandleFunc("/gestores/{id}/reset-senha", gestorHandler.ResetarSenha).Methods("POST")

	// Rotas de leads
	api.HandleFunc("/leads", leadHandler.Criar).Methods("POST")
	api.HandleFunc("/leads", leadHandler.Listar).Methods("GET")
	api.HandleFunc("/leads/{id}", leadHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/leads/{id}", leadHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/leads/{id}", leadHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/leads/{id}/status", leadHandler.AtualizarStatus).Methods("PATCH")
	api.HandleFunc("/leads/{id}/funil", leadHandler.AtualizarFunil).Methods("PATCH")

	// Rotas de metas
	api.HandleFunc("/metas", metasHandler.Buscar).Methods("GET")
	api.HandleFunc("/metas", metasHandler.Salvar).Methods("PUT")

	// Relatórios do painel
	api.HandleFunc("/relatorios/dashboard", relatorioHandler.Dashboard).Methods("GET")

	// CORS para o front do painel
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	// Inicia servidor
	fmt.Println("Servidor rodando em http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", c.Handler(r)))
}
