//go:build unit

package mail

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"flute-live-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMailConfig(apiKey string) config.MailConfig {
	return config.MailConfig{
		ResendAPIKey: apiKey,
		From:         "フルートライブ予約 <noreply@lietoposto.com>",
		ReplyTo:      "contact@lietoposto.com",
	}
}

func TestResendMailer_Send(t *testing.T) {
	t.Run("posts the payload with the bearer key", func(t *testing.T) {
		var gotAuth string
		var gotPayload resendPayload
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		m := NewResendMailer(testMailConfig("re_testkey"), slog.New(slog.DiscardHandler))
		m.endpoint = srv.URL

		err := m.Send(context.Background(), Message{
			To:      "taro@example.com",
			Subject: "件名",
			Text:    "本文",
		})
		require.NoError(t, err)

		assert.Equal(t, "Bearer re_testkey", gotAuth)
		assert.Equal(t, "taro@example.com", gotPayload.To)
		assert.Equal(t, "件名", gotPayload.Subject)
		assert.Equal(t, "contact@lietoposto.com", gotPayload.ReplyTo)
		assert.Contains(t, gotPayload.From, "noreply@lietoposto.com")
	})

	t.Run("non-2xx response is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}))
		defer srv.Close()

		m := NewResendMailer(testMailConfig("re_testkey"), slog.New(slog.DiscardHandler))
		m.endpoint = srv.URL

		err := m.Send(context.Background(), Message{To: "taro@example.com"})
		assert.Error(t, err)
	})
}

func TestNewMailer(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("falls back to the log mailer without an API key", func(t *testing.T) {
		m := NewMailer(testMailConfig(""), logger)
		_, ok := m.(*LogMailer)
		assert.True(t, ok)

		assert.NoError(t, m.Send(context.Background(), Message{To: "taro@example.com"}))
	})

	t.Run("uses the real client when the key is set", func(t *testing.T) {
		m := NewMailer(testMailConfig("re_testkey"), logger)
		_, ok := m.(*ResendMailer)
		assert.True(t, ok)
	})
}
