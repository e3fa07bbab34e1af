package busybee

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/busybee/admin-gateway/internal/core/domain"
	"github.com/busybee/admin-gateway/internal/infrastructure/session"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL}, zerolog.Nop())
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})

	ctx := session.WithToken(context.Background(), "T123")
	_, err := client.Get(ctx, "/api/Category/all")
	require.NoError(t, err)
	assert.Equal(t, "Bearer T123", gotAuth)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.Get(context.Background(), "/api/Category/all")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_UnwrapsBothEnvelopeShapes(t *testing.T) {
	cases := map[string]string{
		"enveloped": `{"data":[{"id":1,"name":"Cleaning"}]}`,
		"bare":      `[{"id":1,"name":"Cleaning"}]`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			raw, err := client.Get(context.Background(), "/api/Category/all")
			require.NoError(t, err)

			var categories []domain.Category
			require.NoError(t, json.Unmarshal(raw, &categories))
			require.Len(t, categories, 1)
			assert.Equal(t, "Cleaning", categories[0].Name)
		})
	}
}

func TestClient_EmptyBodyYieldsNilPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	raw, err := client.Get(context.Background(), "/api/Work/all")
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestClient_PostSendsJSONBody(t *testing.T) {
	var (
		gotContentType string
		gotBody        map[string]string
	)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	})

	_, err := client.Post(context.Background(), "/api/Category/add", map[string]string{"name": "Plumbing"})
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Plumbing", gotBody["name"])
}

func TestClient_MapsAuthStatuses(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, domain.ErrSessionExpired},
		{http.StatusForbidden, domain.ErrInsufficientRole},
	}
	for _, tc := range cases {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		})

		_, err := client.Get(context.Background(), "/api/User/all")
		assert.ErrorIs(t, err, tc.want, "status %d", tc.status)
	}
}

func TestClient_UpstreamErrorCarriesServerMessage(t *testing.T) {
	cases := map[string]string{
		"flat":   `{"message":"name already taken"}`,
		"nested": `{"status":{"message":"name already taken"}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusConflict)
				_, _ = w.Write([]byte(body))
			})

			_, err := client.Post(context.Background(), "/api/Category/add", map[string]string{"name": "x"})
			var ue *domain.UpstreamError
			require.ErrorAs(t, err, &ue)
			assert.Equal(t, http.StatusConflict, ue.Status)
			assert.Equal(t, "name already taken", ue.Message)
		})
	}
}

func TestClient_DeleteReturnsErrorOnFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := client.Delete(context.Background(), "/api/Category/9")
	var ue *domain.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusInternalServerError, ue.Status)
}

func TestClient_TransportErrorIsWrapped(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://127.0.0.1:1"}, zerolog.Nop())

	_, err := client.Get(context.Background(), "/api/Category/all")
	require.Error(t, err)
	var ue *domain.UpstreamError
	assert.False(t, errors.As(err, &ue), "transport failures are not upstream statuses")
}

func TestUnwrap_EnvelopedNullFallsBackToBody(t *testing.T) {
	// {"data":null} carries no payload; the empty result decodes as an
	// empty list downstream rather than failing.
	raw := unwrap([]byte(`{"data":null}`))
	var items []domain.Category
	require.NoError(t, json.Unmarshal(raw, &items))
	assert.Empty(t, items)
}
