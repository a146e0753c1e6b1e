package translator

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	ollamaLLM "github.com/tmc/langchaingo/llms/ollama"
)

// OllamaTranslator implements the domain.Translator interface using a local
// LLM via Ollama. Intended for development setups without a DeepL key.
type OllamaTranslator struct {
	llm *ollamaLLM.LLM
}

// NewOllamaTranslator creates a new OllamaTranslator.
// It requires the Ollama server URL and model name.
func NewOllamaTranslator(serverURL, modelName string) (*OllamaTranslator, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}

	llm, err := ollamaLLM.New(
		ollamaLLM.WithModel(modelName),
		ollamaLLM.WithServerURL(serverURL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo Ollama LLM client for translator: %w", err)
	}

	return &OllamaTranslator{llm: llm}, nil
}

// Translate asks the model for a bare translation of the given text.
func (t *OllamaTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if text == "" {
		return "", nil
	}

	prompt := fmt.Sprintf(
		"Translate the following text into the language with ISO code %q. "+
			"Reply with the translation only, no explanation.\n\n%s",
		targetLanguage, text)

	out, err := llms.GenerateFromSinglePrompt(ctx, t.llm, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to translate using Ollama: %w", err)
	}

	translated := strings.TrimSpace(out)
	if translated == "" {
		return "", fmt.Errorf("ollama returned an empty translation")
	}
	return translated, nil
}
