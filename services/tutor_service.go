// services/tutor_service.go - Tutoring proxy (Groq chat completions)
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"codebrincando/apperror"
)

const (
	defaultGroqURL   = "https://api.groq.com/openai/v1/chat/completions"
	defaultGroqModel = "llama-3.1-8b-instant"
	groqTemperature  = 0.4
	groqTimeout      = 20 * time.Second

	tutorUnavailableMessage = "Não foi possível falar com o robô agora, tente novamente mais tarde."
)

// tutorInstruction frames the assistant as a child-friendly tutor. The
// question and the challenge/explanation context are appended below it.
const tutorInstruction = "Você é um robô tutor que ensina programação para crianças de 9 a 12 anos. " +
	"Use uma linguagem neutra quanto ao gênero, chame-os de crianças ou estudantes. " +
	"Use pronomes neutros com (a) ou (as)" +
	"Explique SEM termos técnicos complicados, usando exemplos simples, analogias " +
	"e linguagem divertida. Não use palavrões nem conteúdo sensível."

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// AskTutor forwards a child's question plus optional context to the Groq
// chat-completion API and returns the simplified answer. One bounded
// request, no retries; on any transport or upstream failure the caller
// gets a generic retry-later message while the detail stays in the logs.
func AskTutor(ctx context.Context, contextText, question string) (string, error) {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		return "", apperror.NewConfigError("API Key da Groq não configurada.")
	}

	url := os.Getenv("GROQ_API_URL")
	if url == "" {
		url = defaultGroqURL
	}
	model := os.Getenv("GROQ_MODEL")
	if model == "" {
		model = defaultGroqModel
	}

	prompt := fmt.Sprintf("%s\n\nContexto da explicação ou desafio: %s\n\nDúvida da criança: %s\n\nResposta:",
		tutorInstruction, contextText, question)

	payload, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: groqTemperature,
	})
	if err != nil {
		return "", apperror.NewInternalError("Falha ao montar requisição para a Groq", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", apperror.NewInternalError("Falha ao montar requisição para a Groq", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: groqTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", apperror.NewUpstreamError(tutorUnavailableMessage, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", apperror.NewUpstreamError(tutorUnavailableMessage,
			fmt.Errorf("groq returned status %d: %s", resp.StatusCode, string(body)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", apperror.NewUpstreamError(tutorUnavailableMessage, err)
	}
	if len(parsed.Choices) == 0 {
		return "", apperror.NewUpstreamError(tutorUnavailableMessage,
			fmt.Errorf("groq response had no choices"))
	}

	return parsed.Choices[0].Message.Content, nil
}
