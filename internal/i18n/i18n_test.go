package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tr := NewTranslator()

	tests := []struct {
		name   string
		key    string
		locale string
		want   string
	}{
		{name: "english label error", key: ErrKeyInvalidLabel, locale: "en", want: "Label is malformed"},
		{name: "portuguese label error", key: ErrKeyInvalidLabel, locale: "pt", want: "Etiqueta malformada"},
		{name: "unknown locale falls back to english", key: ErrKeySerialCapacity, locale: "de", want: "Serial capacity for this prefix bucket is exhausted"},
		{name: "empty locale uses default", key: ErrKeyLabelNotFound, locale: "", want: "Label not found"},
		{name: "unknown key returns key", key: "error.nope", locale: "en", want: "error.nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Translate(tt.key, tt.locale))
		})
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "no header", header: "", want: "en"},
		{name: "plain english", header: "en", want: "en"},
		{name: "weighted portuguese", header: "pt-BR,pt;q=0.9", want: "pt"},
		{name: "unsupported language", header: "fr-FR", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				c.Request.Header.Set(AcceptLanguageHeader, tt.header)
			}
			assert.Equal(t, tt.want, GetLocale(c))
		})
	}
}
