package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientAccountLifecycle(t *testing.T) {
	var deleted string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		switch {
		case r.Method == "POST" && r.URL.Path == "/v1/accounts":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "ana@olea.mx", body["email"])
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(Account{ID: "acc-1", Email: body["email"]})

		case r.Method == "GET" && r.URL.Path == "/v1/accounts":
			json.NewEncoder(w).Encode([]Account{
				{ID: "acc-1", Email: "ana@olea.mx"},
				{ID: "acc-2", Email: "luis@olea.mx"},
			})

		case r.Method == "DELETE" && r.URL.Path == "/v1/accounts/acc-2":
			deleted = "acc-2"
			w.WriteHeader(http.StatusNoContent)

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	ctx := context.Background()

	account, err := c.CreateAccount(ctx, "ana@olea.mx", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", account.ID)

	accounts, err := c.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)

	require.NoError(t, c.DeleteAccount(ctx, "acc-2"))
	assert.Equal(t, "acc-2", deleted)
}

func TestClientSignIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/sessions", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid credentials"}`))
			return
		}
		json.NewEncoder(w).Encode(Session{Token: "tok-1", AccountID: "acc-1", Email: body["email"]})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")

	session, err := c.SignIn(context.Background(), "ana@olea.mx", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", session.Token)

	_, err = c.SignIn(context.Background(), "ana@olea.mx", "wrong")
	require.Error(t, err)
	// The service's own message is surfaced verbatim.
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestClientUnconfigured(t *testing.T) {
	c := NewClient("", "")
	_, err := c.ListAccounts(context.Background())
	require.Error(t, err)
}
