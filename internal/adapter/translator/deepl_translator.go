package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultDeepLBaseURL = "https://api-free.deepl.com/v2"

// DeepLTranslator implements the domain.Translator interface against the
// DeepL REST API.
type DeepLTranslator struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewDeepLTranslator creates a new DeepLTranslator.
func NewDeepLTranslator(apiKey, baseURL string, timeout time.Duration) (*DeepLTranslator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("deepl API key cannot be empty")
	}
	if baseURL == "" {
		baseURL = defaultDeepLBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &DeepLTranslator{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type deeplResponse struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// Translate sends one text to DeepL and returns the translated text.
func (t *DeepLTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if text == "" {
		return "", nil
	}

	form := url.Values{}
	form.Set("text", text)
	form.Set("target_lang", strings.ToUpper(targetLanguage))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/translate", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build DeepL request: %w", err)
	}
	req.Header.Set("Authorization", "DeepL-Auth-Key "+t.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("DeepL request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("DeepL returned status %d", resp.StatusCode)
	}

	var parsed deeplResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode DeepL response: %w", err)
	}
	if len(parsed.Translations) == 0 {
		return "", fmt.Errorf("DeepL returned no translations")
	}
	return parsed.Translations[0].Text, nil
}
