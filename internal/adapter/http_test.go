// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-wrench/internal/config"
	"github.com/MKhiriev/go-vault-wrench/internal/logger"
	"github.com/MKhiriev/go-vault-wrench/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	log := logger.Nop()
	serverCfg := config.Server{BaseURL: serverURL}

	a, err := NewHTTPServerAdapter(serverCfg, log)
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// writeEnvelope wraps body in the {header, body} envelope the API uses.
func writeEnvelope(t *testing.T, w http.ResponseWriter, body any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(models.APIResponse{
		Header: models.APIResponseHeader{Status: "success", Code: http.StatusOK},
		Body:   raw,
	})
}

// ── FetchServerKey ───────────────────────────────────────────────────────────

func TestFetchServerKey_Success(t *testing.T) {
	want := models.ServerKey{
		Fingerprint: "2FC8945833C51946E937F9FED47B0811573EE67E",
		ArmoredKey:  "-----BEGIN PGP PUBLIC KEY BLOCK-----\n...",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/auth/verify.json", r.URL.Path)
		assert.Equal(t, "v2", r.URL.Query().Get("api-version"))
		writeEnvelope(t, w, want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.FetchServerKey(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFetchServerKey_ServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchServerKey(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerFailure)
}

// ── VerifyServerIdentity ─────────────────────────────────────────────────────

func TestVerifyServerIdentity_EchoesToken(t *testing.T) {
	const token = "gpgauthv1.3.0|36|8f3e2a1c-0000-4000-8000-aaaaaaaaaaaa|gpgauthv1.3.0"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/verify.json", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "AAAA1111", r.PostFormValue("data[gpg_auth][keyid]"))
		assert.NotEmpty(t, r.PostFormValue("data[gpg_auth][server_verify_token]"))

		w.Header().Set("X-GPGAuth-Verify-Response", token)
		writeEnvelope(t, w, nil)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	echo, err := a.VerifyServerIdentity(context.Background(), "AAAA1111", "-----BEGIN PGP MESSAGE-----\n...")

	require.NoError(t, err)
	assert.Equal(t, token, echo)
}

func TestVerifyServerIdentity_MissingHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, nil)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.VerifyServerIdentity(context.Background(), "AAAA1111", "ciphertext")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingHeader)
}

// ── RequestChallenge ─────────────────────────────────────────────────────────

func TestRequestChallenge_UnquotesHeader(t *testing.T) {
	const armored = "-----BEGIN PGP MESSAGE-----\n\nhQEMA+challenge+payload\n-----END PGP MESSAGE-----"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login.json", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "AAAA1111", r.PostFormValue("data[gpg_auth][keyid]"))

		quoted := strings.ReplaceAll(url.QueryEscape(armored), "+", `\+`)
		w.Header().Set("X-GPGAuth-User-Auth-Token", quoted)
		writeEnvelope(t, w, nil)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	challenge, err := a.RequestChallenge(context.Background(), "AAAA1111")

	require.NoError(t, err)
	assert.Equal(t, armored, challenge)
}

func TestRequestChallenge_GPGAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-GPGAuth-Error", "true")
		w.Header().Set("X-GPGAuth-Debug", "no key found for the given key id")
		writeEnvelope(t, w, nil)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.RequestChallenge(context.Background(), "AAAA1111")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGPGAuthRejected)
	assert.Contains(t, err.Error(), "no key found")
}

// ── CompleteChallenge ────────────────────────────────────────────────────────

func TestCompleteChallenge_CapturesSessionCookies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.NotEmpty(t, r.PostFormValue("data[gpg_auth][user_token_result]"))

		http.SetCookie(w, &http.Cookie{Name: "passbolt_session", Value: "sess-123"})
		http.SetCookie(w, &http.Cookie{Name: "csrfToken", Value: "csrf-456"})
		writeEnvelope(t, w, nil)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	credential, err := a.CompleteChallenge(context.Background(), "AAAA1111",
		"gpgauthv1.3.0|36|8f3e2a1c-0000-4000-8000-aaaaaaaaaaaa|gpgauthv1.3.0")

	require.NoError(t, err)
	assert.Equal(t, "sess-123", credential.SessionToken)
	assert.Equal(t, "passbolt_session", credential.SessionCookieName)
	assert.Equal(t, "csrf-456", credential.CSRFToken)
}

func TestCompleteChallenge_NoSessionCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, nil)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CompleteChallenge(context.Background(), "AAAA1111", "token")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGPGAuthRejected)
}

// ── GetResources ─────────────────────────────────────────────────────────────

func TestGetResources_TranslatesDTOs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/resources.json", r.URL.Path)
		writeEnvelope(t, w, []map[string]any{
			{
				"id": "res-1", "name": "mail", "uri": "https://mail.example.com",
				"username": "ada", "description": "work mail",
				"tags": []map[string]string{{"slug": "work"}, {"slug": "email"}},
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resources, err := a.GetResources(context.Background(), false)

	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, "res-1", resources[0].ID)
	assert.Equal(t, "mail", resources[0].Name)
	assert.Equal(t, []string{"work", "email"}, resources[0].Tags)
	assert.Empty(t, resources[0].EncryptedSecret)
}

func TestGetResources_FavouriteFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("filter[is-favorite]"))
		writeEnvelope(t, w, []map[string]any{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetResources(context.Background(), true)

	require.NoError(t, err)
}

func TestGetResources_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetResources(context.Background(), false)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── GetResourceSecret ────────────────────────────────────────────────────────

func TestGetResourceSecret_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/secrets/resource/res-1.json", r.URL.Path)
		writeEnvelope(t, w, map[string]string{
			"resource_id": "res-1",
			"user_id":     "user-1",
			"data":        "-----BEGIN PGP MESSAGE-----\n...",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	secret, err := a.GetResourceSecret(context.Background(), "res-1")

	require.NoError(t, err)
	assert.Equal(t, "res-1", secret.ResourceID)
	assert.Equal(t, "user-1", secret.UserID)
	assert.True(t, secret.Data.IsArmored())
}

// ── GetUsers / GetGroups ─────────────────────────────────────────────────────

func TestGetUsers_TranslatesNestedRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users.json", r.URL.Path)
		writeEnvelope(t, w, []map[string]any{
			{
				"id": "user-1", "username": "ada@example.com", "active": true,
				"profile": map[string]string{"first_name": "Ada", "last_name": "Lovelace"},
				"gpgkey": map[string]string{
					"id": "key-1", "fingerprint": "AAAA1111", "armored_key": "-----BEGIN PGP PUBLIC KEY BLOCK-----",
				},
				"groups_users": []map[string]string{{"group_id": "grp-1"}},
			},
			{
				"id": "user-2", "username": "pending@example.com", "active": false,
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	users, err := a.GetUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ada", users[0].FirstName)
	require.NotNil(t, users[0].GpgKey)
	assert.Equal(t, "AAAA1111", users[0].GpgKey.Fingerprint)
	assert.Equal(t, []string{"grp-1"}, users[0].GroupIDs)
	assert.Nil(t, users[1].GpgKey)
}

func TestGetGroups_TranslatesMembers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/groups.json", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("contain[groups_users]"))
		writeEnvelope(t, w, []map[string]any{
			{
				"id": "grp-1", "name": "ops",
				"groups_users": []map[string]string{{"user_id": "user-1"}, {"user_id": "user-2"}},
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	groups, err := a.GetGroups(context.Background())

	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"user-1", "user-2"}, groups[0].MemberIDs)
}

// ── GetResourcePermissions ───────────────────────────────────────────────────

func TestGetResourcePermissions_TranslatesARO(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/permissions/resource/res-1.json", r.URL.Path)
		writeEnvelope(t, w, []map[string]any{
			{"id": "perm-1", "aco": "Resource", "aco_foreign_key": "res-1", "aro": "User", "aro_foreign_key": "user-1", "type": 15},
			{"id": "perm-2", "aco": "Resource", "aco_foreign_key": "res-1", "aro": "Group", "aro_foreign_key": "grp-1", "type": 1},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	permissions, err := a.GetResourcePermissions(context.Background(), "res-1")

	require.NoError(t, err)
	require.Len(t, permissions, 2)
	assert.Equal(t, models.PermissionOwner, permissions[0].Type)
	assert.False(t, permissions[0].Recipient.IsGroup())
	assert.Equal(t, "user-1", permissions[0].Recipient.ID())
	assert.True(t, permissions[1].Recipient.IsGroup())
	assert.Equal(t, "grp-1", permissions[1].Recipient.ID())
}

// ── ShareResource ────────────────────────────────────────────────────────────

func TestShareResource_SendsSessionAndCSRF(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/share/resource/res-1.json", r.URL.Path)
		assert.Equal(t, "csrf-456", r.Header.Get("X-CSRF-Token"))

		cookie, err := r.Cookie("passbolt_session")
		require.NoError(t, err)
		assert.Equal(t, "sess-123", cookie.Value)

		// сервер получает CakePHP-овский формат aco/aro, не модели клиента
		var body struct {
			Secrets     []map[string]any `json:"secrets"`
			Permissions []map[string]any `json:"permissions"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body.Secrets, 1)
		require.Len(t, body.Permissions, 1)
		perm := body.Permissions[0]
		assert.Equal(t, true, perm["is_new"])
		assert.Equal(t, "Resource", perm["aco"])
		assert.Equal(t, "res-1", perm["aco_foreign_key"])
		assert.Equal(t, "User", perm["aro"])
		assert.Equal(t, "user-2", perm["aro_foreign_key"])
		assert.Equal(t, float64(models.PermissionRead), perm["type"])

		writeEnvelope(t, w, nil)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetSession(models.SessionCredential{
		SessionToken:      "sess-123",
		SessionCookieName: "passbolt_session",
		CSRFToken:         "csrf-456",
	})

	err := a.ShareResource(context.Background(), "res-1", models.ShareRequest{
		Secrets: []models.Secret{{ResourceID: "res-1", UserID: "user-2", Data: "-----BEGIN PGP MESSAGE-----\n..."}},
		Permissions: []models.Permission{{
			ResourceID: "res-1",
			Recipient:  models.Recipient{User: &models.User{ID: "user-2"}},
			Type:       models.PermissionRead,
		}},
	})

	require.NoError(t, err)
}

func TestShareResource_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("not an owner"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.ShareResource(context.Background(), "res-1", models.ShareRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

// A rejected request must leave a trace in the adapter log even when the
// caller rewraps the returned error.
func TestCheckResponse_LogsRejectedRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("not an owner"))
	}))
	defer srv.Close()

	var logBuf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&logBuf)}

	a, err := NewHTTPServerAdapter(config.Server{BaseURL: srv.URL}, log)
	require.NoError(t, err)

	err = a.ShareResource(context.Background(), "res-1", models.ShareRequest{})
	require.ErrorIs(t, err, ErrForbidden)

	logged := logBuf.String()
	assert.Contains(t, logged, "server request failed")
	assert.Contains(t, logged, `"status":403`)
	assert.Contains(t, logged, "/share/resource/res-1.json")
}
