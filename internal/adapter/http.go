package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-vault-wrench/internal/config"
	"github.com/MKhiriev/go-vault-wrench/internal/logger"
	"github.com/MKhiriev/go-vault-wrench/internal/utils"
	"github.com/MKhiriev/go-vault-wrench/models"
)

const (
	apiVersion       = "v2"
	csrfCookieName   = "csrfToken"
	csrfHeaderName   = "X-CSRF-Token"
	verifyRespHeader = "X-GPGAuth-Verify-Response"
	authTokenHeader  = "X-GPGAuth-User-Auth-Token"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	session models.SessionCredential

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// serverCfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if serverCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(serverCfg config.Server, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(serverCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(serverCfg.RequestTimeout).
		SetQueryParam("api-version", apiVersion)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchServerKey implements [ServerAdapter]. It GETs /auth/verify.json and
// decodes the advertised fingerprint and armored key from the envelope body.
func (h *httpServerAdapter) FetchServerKey(ctx context.Context) (models.ServerKey, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/auth/verify.json")
	if err != nil {
		return models.ServerKey{}, fmt.Errorf("fetch server key request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.ServerKey{}, err
	}

	var key models.ServerKey
	if err = decodeEnvelope(resp.Body(), &key); err != nil {
		return models.ServerKey{}, fmt.Errorf("decode server key response: %w", err)
	}

	return key, nil
}

// VerifyServerIdentity implements [ServerAdapter]. It POSTs the encrypted
// token to /auth/verify.json as GPGAuth form data and returns the plaintext
// echo from the X-GPGAuth-Verify-Response header.
func (h *httpServerAdapter) VerifyServerIdentity(ctx context.Context, userFingerprint, encryptedToken string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"data[gpg_auth][keyid]":               userFingerprint,
			"data[gpg_auth][server_verify_token]": encryptedToken,
		}).
		Post("/auth/verify.json")
	if err != nil {
		return "", fmt.Errorf("verify server identity request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return "", err
	}

	echo := resp.Header().Get(verifyRespHeader)
	if echo == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingHeader, verifyRespHeader)
	}

	return echo, nil
}

// RequestChallenge implements [ServerAdapter]. It POSTs the user key id to
// /auth/login.json (GPGAuth stage 1) and returns the armored encrypted token
// carried in the X-GPGAuth-User-Auth-Token header.
func (h *httpServerAdapter) RequestChallenge(ctx context.Context, userFingerprint string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"data[gpg_auth][keyid]": userFingerprint,
		}).
		Post("/auth/login.json")
	if err != nil {
		return "", fmt.Errorf("request challenge request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return "", err
	}

	raw := resp.Header().Get(authTokenHeader)
	if raw == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingHeader, authTokenHeader)
	}

	challenge, err := unquoteGPGAuthHeader(raw)
	if err != nil {
		return "", fmt.Errorf("unquote challenge header: %w", err)
	}

	return challenge, nil
}

// CompleteChallenge implements [ServerAdapter]. It POSTs the decrypted token
// back to /auth/login.json (GPGAuth stage 2) and assembles the session
// credential from the response cookies.
func (h *httpServerAdapter) CompleteChallenge(ctx context.Context, userFingerprint, decryptedToken string) (models.SessionCredential, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"data[gpg_auth][keyid]":             userFingerprint,
			"data[gpg_auth][user_token_result]": decryptedToken,
		}).
		Post("/auth/login.json")
	if err != nil {
		return models.SessionCredential{}, fmt.Errorf("complete challenge request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.SessionCredential{}, err
	}

	credential := extractSessionCredential(resp)
	if credential.SessionToken == "" {
		return models.SessionCredential{}, fmt.Errorf("%w: no session cookie in login response", ErrGPGAuthRejected)
	}

	return credential, nil
}

// SetSession implements [ServerAdapter].
func (h *httpServerAdapter) SetSession(credential models.SessionCredential) {
	h.session = credential
}

// GetResources implements [ServerAdapter].
func (h *httpServerAdapter) GetResources(ctx context.Context, favouriteOnly bool) ([]models.Resource, error) {
	req := h.authedRequest(ctx)
	if favouriteOnly {
		req.SetQueryParam("filter[is-favorite]", "1")
	}

	resp, err := req.Get("/resources.json")
	if err != nil {
		return nil, fmt.Errorf("get resources request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return nil, err
	}

	var dtos []resourceDTO
	if err = decodeEnvelope(resp.Body(), &dtos); err != nil {
		return nil, fmt.Errorf("decode resources response: %w", err)
	}

	resources := make([]models.Resource, 0, len(dtos))
	for _, dto := range dtos {
		resources = append(resources, dto.toModel())
	}

	return resources, nil
}

// GetResourceSecret implements [ServerAdapter].
func (h *httpServerAdapter) GetResourceSecret(ctx context.Context, resourceID string) (models.Secret, error) {
	resp, err := h.authedRequest(ctx).
		Get("/secrets/resource/" + resourceID + ".json")
	if err != nil {
		return models.Secret{}, fmt.Errorf("get resource secret request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.Secret{}, err
	}

	var dto secretDTO
	if err = decodeEnvelope(resp.Body(), &dto); err != nil {
		return models.Secret{}, fmt.Errorf("decode secret response: %w", err)
	}

	return dto.toModel(), nil
}

// AddResource implements [ServerAdapter]. The resource's encrypted secret is
// sent alongside the metadata; the server addresses it to the current user.
func (h *httpServerAdapter) AddResource(ctx context.Context, resource models.Resource) (models.Resource, error) {
	body := newResourceDTO{
		Name:        resource.Name,
		Username:    resource.Username,
		URI:         resource.URI,
		Description: resource.Description,
		Secrets:     []secretDTO{{Data: resource.EncryptedSecret}},
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/resources.json")
	if err != nil {
		return models.Resource{}, fmt.Errorf("add resource request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.Resource{}, err
	}

	var dto resourceDTO
	if err = decodeEnvelope(resp.Body(), &dto); err != nil {
		return models.Resource{}, fmt.Errorf("decode add resource response: %w", err)
	}

	created := dto.toModel()
	created.EncryptedSecret = resource.EncryptedSecret
	return created, nil
}

// GetUsers implements [ServerAdapter].
func (h *httpServerAdapter) GetUsers(ctx context.Context) ([]models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/users.json")
	if err != nil {
		return nil, fmt.Errorf("get users request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return nil, err
	}

	var dtos []userDTO
	if err = decodeEnvelope(resp.Body(), &dtos); err != nil {
		return nil, fmt.Errorf("decode users response: %w", err)
	}

	users := make([]models.User, 0, len(dtos))
	for _, dto := range dtos {
		users = append(users, dto.toModel())
	}

	return users, nil
}

// GetGroups implements [ServerAdapter].
func (h *httpServerAdapter) GetGroups(ctx context.Context) ([]models.Group, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("contain[groups_users]", "1").
		Get("/groups.json")
	if err != nil {
		return nil, fmt.Errorf("get groups request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return nil, err
	}

	var dtos []groupDTO
	if err = decodeEnvelope(resp.Body(), &dtos); err != nil {
		return nil, fmt.Errorf("decode groups response: %w", err)
	}

	groups := make([]models.Group, 0, len(dtos))
	for _, dto := range dtos {
		groups = append(groups, dto.toModel())
	}

	return groups, nil
}

// GetCurrentUser implements [ServerAdapter].
func (h *httpServerAdapter) GetCurrentUser(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/users/me.json")
	if err != nil {
		return models.User{}, fmt.Errorf("get current user request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.User{}, err
	}

	var dto userDTO
	if err = decodeEnvelope(resp.Body(), &dto); err != nil {
		return models.User{}, fmt.Errorf("decode current user response: %w", err)
	}

	return dto.toModel(), nil
}

// GetResourcePermissions implements [ServerAdapter].
func (h *httpServerAdapter) GetResourcePermissions(ctx context.Context, resourceID string) ([]models.Permission, error) {
	resp, err := h.authedRequest(ctx).
		Get("/permissions/resource/" + resourceID + ".json")
	if err != nil {
		return nil, fmt.Errorf("get resource permissions request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return nil, err
	}

	var dtos []permissionDTO
	if err = decodeEnvelope(resp.Body(), &dtos); err != nil {
		return nil, fmt.Errorf("decode permissions response: %w", err)
	}

	permissions := make([]models.Permission, 0, len(dtos))
	for _, dto := range dtos {
		permissions = append(permissions, dto.toModel())
	}

	return permissions, nil
}

// ShareResource implements [ServerAdapter]. The server applies the secrets
// and permission changes in one transaction.
func (h *httpServerAdapter) ShareResource(ctx context.Context, resourceID string, req models.ShareRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(newShareRequestDTO(req)).
		Put("/share/resource/" + resourceID + ".json")
	if err != nil {
		return fmt.Errorf("share resource request: %w", err)
	}

	return h.checkResponse(resp)
}

// checkResponse runs the response through [mapHTTPError] and logs rejected
// requests, so every server-side failure leaves a trace in the log file even
// when the caller swallows or rewraps the error.
func (h *httpServerAdapter) checkResponse(resp *resty.Response) error {
	err := mapHTTPError(resp)
	if err != nil {
		h.logger.Warn().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Err(err).
			Msg("server request failed")
	}
	return err
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.session.SessionToken != "" {
		req.SetCookie(&http.Cookie{Name: h.session.SessionCookieName, Value: h.session.SessionToken})
	}
	if h.session.CSRFToken != "" {
		req.SetHeader(csrfHeaderName, h.session.CSRFToken)
	}
	return req
}

// decodeEnvelope unwraps the {header, body} envelope and decodes body into v.
func decodeEnvelope(raw []byte, v any) error {
	var envelope models.APIResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return err
	}

	return json.Unmarshal(envelope.Body, v)
}

// unquoteGPGAuthHeader reverses the URL quoting the server applies to the
// armored message it places in GPGAuth headers. The quoting escapes '+'
// as `\+` on top of percent-encoding.
func unquoteGPGAuthHeader(raw string) (string, error) {
	return url.QueryUnescape(strings.ReplaceAll(raw, `\+`, " "))
}

// extractSessionCredential assembles the credential from the stage 2
// response cookies: the CSRF cookie plus whichever other cookie carries the
// session id (its name depends on the server's session handler).
func extractSessionCredential(resp *resty.Response) models.SessionCredential {
	var credential models.SessionCredential
	for _, cookie := range resp.Cookies() {
		if cookie.Value == "" {
			continue
		}
		if cookie.Name == csrfCookieName {
			credential.CSRFToken = cookie.Value
			continue
		}
		credential.SessionCookieName = cookie.Name
		credential.SessionToken = cookie.Value
	}
	return credential
}
