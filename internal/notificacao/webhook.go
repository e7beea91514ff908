package notificacao

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
)

// EnviarAlertaMatricula dispara o webhook de celebração quando um lead vira
// matrícula. URL vem de WEBHOOK_CELEBRACAO_URL; sem URL configurada, nada é
// enviado.
func EnviarAlertaMatricula(aluno, curso string, valor float64) {
	url := os.Getenv("WEBHOOK_CELEBRACAO_URL")
	if url == "" {
		return
	}

	payload := map[string]string{
		"mensagem": "Nova matrícula realizada!",
		"aluno":    aluno,
		"curso":    curso,
		"valor":    fmt.Sprintf("%.2f", valor),
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}
