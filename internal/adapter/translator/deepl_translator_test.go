package translator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDeepLTranslator_RequiresAPIKey(t *testing.T) {
	_, err := NewDeepLTranslator("", "", time.Second)
	assert.Error(t, err)
}

func TestDeepLTranslator_Translate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate", r.URL.Path)
		assert.Equal(t, "DeepL-Auth-Key test-key", r.Header.Get("Authorization"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "Bonjour", r.PostForm.Get("text"))
		assert.Equal(t, "DE", r.PostForm.Get("target_lang"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"translations":[{"text":"Hallo"}]}`))
	}))
	defer server.Close()

	tr, err := NewDeepLTranslator("test-key", server.URL, time.Second)
	assert.NoError(t, err)

	out, err := tr.Translate(context.Background(), "Bonjour", "de")
	assert.NoError(t, err)
	assert.Equal(t, "Hallo", out)
}

func TestDeepLTranslator_TranslateEmptyText(t *testing.T) {
	tr, err := NewDeepLTranslator("test-key", "http://unused", time.Second)
	assert.NoError(t, err)

	out, err := tr.Translate(context.Background(), "", "de")
	assert.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestDeepLTranslator_TranslateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	tr, err := NewDeepLTranslator("test-key", server.URL, time.Second)
	assert.NoError(t, err)

	_, err = tr.Translate(context.Background(), "Bonjour", "de")
	assert.Error(t, err)
}
