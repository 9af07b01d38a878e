// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-wrench/internal/client"
	"github.com/MKhiriev/go-vault-wrench/internal/config"
	"github.com/MKhiriev/go-vault-wrench/internal/logger"
	"github.com/MKhiriev/go-vault-wrench/internal/mock"
	"github.com/MKhiriev/go-vault-wrench/internal/service"
	"github.com/MKhiriev/go-vault-wrench/internal/store"
	"github.com/MKhiriev/go-vault-wrench/models"
)

// scriptedPrompter feeds canned answers to the commands under test.
type scriptedPrompter struct {
	inputs   []string
	secrets  []string
	confirms []bool
}

func (p *scriptedPrompter) Input(_, _ string) (string, error) {
	if len(p.inputs) == 0 {
		return "", nil
	}
	answer := p.inputs[0]
	p.inputs = p.inputs[1:]
	return answer, nil
}

func (p *scriptedPrompter) Secret(_ string) (string, error) {
	if len(p.secrets) == 0 {
		return "", nil
	}
	answer := p.secrets[0]
	p.secrets = p.secrets[1:]
	return answer, nil
}

func (p *scriptedPrompter) Confirm(_ string, defaultYes bool) (bool, error) {
	if len(p.confirms) == 0 {
		return defaultYes, nil
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

type cliFixture struct {
	cli     *CLI
	vault   *mock.MockVault
	prompt  *scriptedPrompter
	out     *bytes.Buffer
	errOut  *bytes.Buffer
	clipped []string
	builds  int
}

func newTestCLI(t *testing.T, cfg *config.ClientConfig) *cliFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	if cfg == nil {
		cfg = &config.ClientConfig{
			Server: config.Server{BaseURL: "https://vault.example.com"},
			Keys:   config.Keys{PrivateKeyPath: "/tmp/key.asc", Passphrase: "hunter2"},
		}
	}

	f := &cliFixture{
		vault:  mock.NewMockVault(ctrl),
		prompt: &scriptedPrompter{},
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
	}

	f.cli = &CLI{
		cfg:    cfg,
		logger: logger.Nop(),
		out:    f.out,
		errOut: f.errOut,
		prompt: f.prompt,
		copyToClip: func(secret string) error {
			f.clipped = append(f.clipped, secret)
			return nil
		},
		buildVault: func(context.Context, *config.ClientConfig, []byte, *logger.Logger) (client.Vault, error) {
			f.builds++
			return f.vault, nil
		},
	}
	return f
}

func run(t *testing.T, f *cliFixture, args ...string) error {
	t.Helper()
	return f.cli.Execute(context.Background(), args)
}

// ── search ───────────────────────────────────────────────────────────────────

func TestSearchCmd_RendersTable(t *testing.T) {
	f := newTestCLI(t, nil)

	f.vault.EXPECT().Login(gomock.Any()).Return(nil)
	f.vault.EXPECT().Search(gomock.Any(), []string{"bank"}, nil).Return([]models.Resource{
		{ID: "res-1", Name: "bank", Username: "ada", URI: "https://bank.example", Tags: []string{"prod"}},
	}, nil)

	require.NoError(t, run(t, f, "search", "bank"))

	output := f.out.String()
	assert.Contains(t, output, "NAME")
	assert.Contains(t, output, "bank")
	assert.Contains(t, output, "res-1")
	assert.Contains(t, output, "prod")
	assert.Equal(t, 1, f.builds)
}

func TestSearchCmd_CopyRefusesMultipleMatches(t *testing.T) {
	f := newTestCLI(t, nil)

	f.vault.EXPECT().Login(gomock.Any()).Return(nil)
	f.vault.EXPECT().Search(gomock.Any(), []string{"bank"}, nil).Return([]models.Resource{
		{ID: "res-1", Name: "bank"},
		{ID: "res-2", Name: "bank-test"},
	}, nil)

	err := run(t, f, "search", "bank", "--copy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "narrow the search")
	assert.Empty(t, f.clipped)
}

func TestSearchCmd_CopySingleMatch(t *testing.T) {
	f := newTestCLI(t, nil)

	match := models.Resource{ID: "res-1", Name: "bank"}
	f.vault.EXPECT().Login(gomock.Any()).Return(nil)
	f.vault.EXPECT().Search(gomock.Any(), []string{"bank"}, nil).Return([]models.Resource{match}, nil)
	f.vault.EXPECT().Reveal(gomock.Any(), match).Return(models.DecryptedResource{
		Resource: match,
		Secret:   "hunter2",
	}, nil)

	require.NoError(t, run(t, f, "search", "bank", "--copy"))
	require.Equal(t, []string{"hunter2"}, f.clipped)
	// сам секрет в stdout не попадает
	assert.NotContains(t, f.out.String(), "hunter2")
}

func TestSearchCmd_CopyNoMatches(t *testing.T) {
	f := newTestCLI(t, nil)

	f.vault.EXPECT().Login(gomock.Any()).Return(nil)
	f.vault.EXPECT().Search(gomock.Any(), []string{"nothing"}, nil).Return(nil, nil)

	err := run(t, f, "search", "nothing", "--copy")
	require.ErrorIs(t, err, service.ErrResourceNotFound)
	assert.Empty(t, f.clipped)
}

func TestSearchCmd_FieldFilterPassedThrough(t *testing.T) {
	f := newTestCLI(t, nil)

	f.vault.EXPECT().Login(gomock.Any()).Return(nil)
	f.vault.EXPECT().Search(gomock.Any(), []string{"root"}, []string{"username", "uri"}).
		Return(nil, nil)

	require.NoError(t, run(t, f, "search", "root", "--field", "username", "--field", "uri"))
}

func TestSearchCmd_UnknownField(t *testing.T) {
	f := newTestCLI(t, nil)

	err := run(t, f, "search", "root", "--field", "secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown field "secret"`)
	assert.Equal(t, 0, f.builds, "no login for an invalid flag")
}

func TestSearchCmd_OfflineUsesCacheOnly(t *testing.T) {
	f := newTestCLI(t, nil)
	ctrl := gomock.NewController(t)
	cache := mock.NewMockResourceCacheRepository(ctrl)

	f.cli.openCache = func(context.Context, *config.ClientConfig, *logger.Logger) (*store.Storages, error) {
		return &store.Storages{ResourceCache: cache}, nil
	}

	cache.EXPECT().Search(gomock.Any(), []string{"bank"}).
		Return([]models.Resource{{ID: "res-1", Name: "bank"}}, nil)
	cache.EXPECT().RefreshedAt(gomock.Any()).
		Return(time.Now().Add(-2*time.Hour), nil)

	require.NoError(t, run(t, f, "search", "bank", "--offline"))

	assert.Contains(t, f.out.String(), "bank")
	assert.Contains(t, f.errOut.String(), "cache refreshed")
	// the vault was never built: no key, no network
	assert.Equal(t, 0, f.builds)
}

func TestSearchCmd_OfflineRefusesSecretFlags(t *testing.T) {
	f := newTestCLI(t, nil)

	err := run(t, f, "search", "bank", "--offline", "--show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not cached")
}

func TestSearchCmd_OfflineRefusesFieldFilter(t *testing.T) {
	f := newTestCLI(t, nil)

	err := run(t, f, "search", "bank", "--offline", "--field", "uri")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "online search")
	assert.Equal(t, 0, f.builds)
}

// ── login behaviour ──────────────────────────────────────────────────────────

func TestOpenVault_PromptedPassphraseRetriedOnRejectedChallenge(t *testing.T) {
	cfg := &config.ClientConfig{
		Server: config.Server{BaseURL: "https://vault.example.com"},
		Keys:   config.Keys{PrivateKeyPath: "/tmp/key.asc"}, // нет пароля в окружении
	}
	f := newTestCLI(t, cfg)
	f.prompt.secrets = []string{"wrong", "right"}

	gomock.InOrder(
		f.vault.EXPECT().Login(gomock.Any()).Return(service.ErrChallengeRejected),
		f.vault.EXPECT().Login(gomock.Any()).Return(nil),
		f.vault.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil),
	)

	require.NoError(t, run(t, f, "search"))
	assert.Equal(t, 2, f.builds)
	assert.Empty(t, f.prompt.secrets, "both passphrases consumed")
}

func TestOpenVault_EnvPassphraseNotRetried(t *testing.T) {
	f := newTestCLI(t, nil)

	f.vault.EXPECT().Login(gomock.Any()).Return(service.ErrChallengeRejected)

	err := run(t, f, "search")
	require.ErrorIs(t, err, service.ErrChallengeRejected)
	assert.Equal(t, 1, f.builds)
}

// ── add ──────────────────────────────────────────────────────────────────────

func TestAddCmd_EncryptsAndUploads(t *testing.T) {
	f := newTestCLI(t, nil)
	f.prompt.inputs = []string{"prod db", "ada", "postgres://db.example", "main database", "prod, db"}
	f.prompt.secrets = []string{"s3cr3t"}

	f.vault.EXPECT().Login(gomock.Any()).Return(nil)
	f.vault.EXPECT().Add(gomock.Any(), models.DecryptedResource{
		Resource: models.Resource{
			Name:        "prod db",
			Username:    "ada",
			URI:         "postgres://db.example",
			Description: "main database",
			Tags:        []string{"prod", "db"},
		},
		Secret: "s3cr3t",
	}).Return(models.Resource{ID: "res-new", Name: "prod db"}, nil)

	require.NoError(t, run(t, f, "add", "--no-share"))
	assert.Contains(t, f.errOut.String(), "res-new")
}

func TestAddCmd_RequiresNameAndSecret(t *testing.T) {
	f := newTestCLI(t, nil)
	f.prompt.inputs = []string{""} // пустое имя
	f.vault.EXPECT().Login(gomock.Any()).Return(nil)

	err := run(t, f, "add", "--no-share")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name must not be empty")
}

func TestAddCmd_SharesWithDefaultRecipients(t *testing.T) {
	cfg := &config.ClientConfig{
		Server:  config.Server{BaseURL: "https://vault.example.com"},
		Keys:    config.Keys{PrivateKeyPath: "/tmp/key.asc", Passphrase: "hunter2"},
		Sharing: config.Sharing{DefaultReaders: []string{"auditors"}},
	}
	f := newTestCLI(t, cfg)
	f.prompt.inputs = []string{"prod db", "", "", "", ""}
	f.prompt.secrets = []string{"s3cr3t"}
	f.prompt.confirms = []bool{true}

	f.vault.EXPECT().Login(gomock.Any()).Return(nil)
	f.vault.EXPECT().Add(gomock.Any(), gomock.Any()).Return(models.Resource{ID: "res-new"}, nil)
	f.vault.EXPECT().ApplyDefaultShares(gomock.Any(), "res-new").
		Return([]service.ShareReport{{Granted: []models.User{{Username: "bob@example.com"}}}}, nil)

	require.NoError(t, run(t, f, "add"))
	assert.Contains(t, f.errOut.String(), "bob@example.com")
}

// ── share ────────────────────────────────────────────────────────────────────

func TestShareCmd_GrantsRequestedPermission(t *testing.T) {
	f := newTestCLI(t, nil)

	f.vault.EXPECT().Login(gomock.Any()).Return(nil)
	f.vault.EXPECT().
		Share(gomock.Any(), "res-1", []string{"devs", "ada@example.com"}, models.PermissionOwner).
		Return(service.ShareReport{Granted: []models.User{{Username: "ada@example.com"}}}, nil)

	require.NoError(t, run(t, f, "share", "res-1", "devs", "ada@example.com", "--permission", "owner"))
	assert.Contains(t, f.out.String(), "ada@example.com")
}

func TestShareCmd_UnknownPermission(t *testing.T) {
	f := newTestCLI(t, nil)

	err := run(t, f, "share", "res-1", "devs", "--permission", "admin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown permission")
	assert.Equal(t, 0, f.builds, "no login for an invalid flag")
}

func Test_parsePermission(t *testing.T) {
	tests := []struct {
		raw     string
		want    models.PermissionType
		wantErr bool
	}{
		{raw: "read", want: models.PermissionRead},
		{raw: "update", want: models.PermissionUpdate},
		{raw: "owner", want: models.PermissionOwner},
		{raw: "Read", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("permission "+tt.raw, func(t *testing.T) {
			got, err := parsePermission(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── import-resources ─────────────────────────────────────────────────────────

func writeImportFile(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resources.tsv")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o600))
	return path
}

func TestImportResourcesCmd_UploadsEachLine(t *testing.T) {
	f := newTestCLI(t, nil)
	path := writeImportFile(t, "host\tusername\tpassword\tdescription\tproduct\n"+
		"db.example\tada\thunter2\tmain db\tpostgres\n"+
		"vault.example\tbob\ts3cr3t\t\tvault\n")

	f.vault.EXPECT().Login(gomock.Any()).Return(nil)
	gomock.InOrder(
		f.vault.EXPECT().Add(gomock.Any(), models.DecryptedResource{
			Resource: models.Resource{
				Name:        "postgres",
				URI:         "db.example",
				Username:    "ada",
				Description: "main db",
				Tags:        []string{"legacy"},
			},
			Secret: "hunter2",
		}).Return(models.Resource{ID: "res-1", Name: "postgres"}, nil),
		f.vault.EXPECT().Add(gomock.Any(), gomock.Any()).
			Return(models.Resource{ID: "res-2", Name: "vault"}, nil),
	)

	require.NoError(t, run(t, f, "import-resources", path, "--tag", "legacy"))
	assert.Contains(t, f.out.String(), "2 resource(s) successfully imported")
}

func TestImportResourcesCmd_MalformedFileUploadsNothing(t *testing.T) {
	f := newTestCLI(t, nil)
	path := writeImportFile(t, "host\tusername\tpassword\tdescription\tproduct\n"+
		"not\tenough\tfields\n")

	err := run(t, f, "import-resources", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	// битый файл отбрасывается до логина, ни одной загрузки
	assert.Equal(t, 0, f.builds)
}

func TestImportResourcesCmd_SharesWithDefaults(t *testing.T) {
	cfg := &config.ClientConfig{
		Server:  config.Server{BaseURL: "https://vault.example.com"},
		Keys:    config.Keys{PrivateKeyPath: "/tmp/key.asc", Passphrase: "hunter2"},
		Sharing: config.Sharing{DefaultReaders: []string{"auditors"}},
	}
	f := newTestCLI(t, cfg)
	f.prompt.confirms = []bool{true}
	path := writeImportFile(t, "host\tusername\tpassword\tdescription\tproduct\n"+
		"db.example\tada\thunter2\tmain db\tpostgres\n")

	f.vault.EXPECT().Login(gomock.Any()).Return(nil)
	f.vault.EXPECT().Add(gomock.Any(), gomock.Any()).
		Return(models.Resource{ID: "res-1", Name: "postgres"}, nil)
	f.vault.EXPECT().ApplyDefaultShares(gomock.Any(), "res-1").Return(nil, nil)

	require.NoError(t, run(t, f, "import-resources", path))
}

// ── diagnose ─────────────────────────────────────────────────────────────────

func TestDiagnoseCmd_ReportsResults(t *testing.T) {
	f := newTestCLI(t, nil)
	f.cli.runChecks = func(context.Context, *config.ClientConfig, []byte, *logger.Logger) []client.CheckResult {
		return []client.CheckResult{
			{Name: "configuration", Detail: "https://vault.example.com"},
			{Name: "server connection", Err: errors.New("connection refused")},
		}
	}

	err := run(t, f, "diagnose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 check(s) failed")

	output := f.out.String()
	assert.Contains(t, output, "OK")
	assert.Contains(t, output, "configuration: https://vault.example.com")
	assert.Contains(t, output, "KO")
	assert.Contains(t, output, "server connection: connection refused")
}

func TestDiagnoseCmd_AllChecksPass(t *testing.T) {
	f := newTestCLI(t, nil)
	f.cli.runChecks = func(context.Context, *config.ClientConfig, []byte, *logger.Logger) []client.CheckResult {
		return []client.CheckResult{{Name: "configuration"}}
	}

	require.NoError(t, run(t, f, "diagnose"))
}

// ── dump ─────────────────────────────────────────────────────────────────────

func TestDumpCmd_WritesJSONAndReportsFailures(t *testing.T) {
	f := newTestCLI(t, nil)

	f.vault.EXPECT().Login(gomock.Any()).Return(nil)
	f.vault.EXPECT().Dump(gomock.Any(), false).Return(
		[]models.DecryptedResource{{
			Resource: models.Resource{ID: "res-1", Name: "bank"},
			Secret:   "hunter2",
		}},
		[]service.DumpFailure{{
			ResourceID:   "res-2",
			ResourceName: "old entry",
			Err:          service.ErrForeignCiphertext,
		}},
		nil,
	)

	require.NoError(t, run(t, f, "dump"))

	assert.Contains(t, f.out.String(), `"hunter2"`)
	assert.Contains(t, f.errOut.String(), "old entry")
}

func TestDumpCmd_FavouriteFlag(t *testing.T) {
	f := newTestCLI(t, nil)

	f.vault.EXPECT().Login(gomock.Any()).Return(nil)
	f.vault.EXPECT().Dump(gomock.Any(), true).Return(nil, nil, nil)

	require.NoError(t, run(t, f, "dump", "--favourite"))
}

// ── version ──────────────────────────────────────────────────────────────────

func TestVersionCmd(t *testing.T) {
	f := newTestCLI(t, nil)
	f.cli.buildInfo = models.NewAppBuildInfo("1.2.3", "2026-08-26", "abcdef0")

	require.NoError(t, run(t, f, "version"))

	output := f.out.String()
	assert.Contains(t, output, "Build version: 1.2.3")
	assert.Contains(t, output, "Build date: 2026-08-26")
	assert.Contains(t, output, "Build commit: abcdef0")
}

// ── helpers ──────────────────────────────────────────────────────────────────

func Test_splitTags(t *testing.T) {
	assert.Equal(t, []string{"prod", "db"}, splitTags("prod, db"))
	assert.Equal(t, []string{"one"}, splitTags(" one ,, "))
	assert.Nil(t, splitTags(""))
}

func Test_validateSearchFields(t *testing.T) {
	require.NoError(t, validateSearchFields(nil))
	require.NoError(t, validateSearchFields([]string{"name", "username", "uri", "description"}))
	require.Error(t, validateSearchFields([]string{"tags"}))
	require.Error(t, validateSearchFields([]string{"Name"}))
}

func Test_validateServerURL(t *testing.T) {
	require.NoError(t, validateServerURL("https://vault.example.com"))
	require.NoError(t, validateServerURL("http://localhost:8080"))
	require.Error(t, validateServerURL(""))
	require.Error(t, validateServerURL("vault.example.com"))
	require.Error(t, validateServerURL("ftp://vault.example.com"))
}

func Test_normalizeFingerprintInput(t *testing.T) {
	fp, err := normalizeFingerprintInput("aa11 bb22 cc33 dd44 ee55")
	require.NoError(t, err)
	assert.Equal(t, "AA11BB22CC33DD44EE55", fp)

	_, err = normalizeFingerprintInput("")
	require.Error(t, err)

	_, err = normalizeFingerprintInput("not-a-fingerprint")
	require.Error(t, err)
}

func Test_formatCacheAge(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "cache never refreshed", formatCacheAge(time.Time{}, now))
	assert.Equal(t, "cache refreshed 2h0m0s ago", formatCacheAge(now.Add(-2*time.Hour), now))
	assert.Equal(t, "cache refreshed under a minute ago", formatCacheAge(now.Add(-10*time.Second), now))
}

func Test_renderResourceTable(t *testing.T) {
	empty := renderResourceTable(nil)
	assert.Contains(t, empty, "no resources found")

	table := renderResourceTable([]models.Resource{
		{ID: "res-1", Name: "bank", Username: "ada"},
		{ID: "res-2", Name: "a-much-longer-name", Username: "bob"},
	})
	assert.Contains(t, table, "res-1")
	assert.Contains(t, table, "a-much-longer-name")
}
