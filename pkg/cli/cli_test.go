package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"contact-notif/pkg/cli"
	"contact-notif/pkg/config"
	"contact-notif/pkg/models"
)

func setEnv(t *testing.T, ownersURL, webhookURL string) {
	t.Helper()
	t.Setenv("HAPIKEY", "pat-123")
	t.Setenv("hs_portal", "4242")
	t.Setenv("hs_notifications_webhook", webhookURL)
	t.Setenv("sfdc_url", "acme")
	t.Setenv("amplitude_search", "https://analytics.amplitude.com/acme/search/")
	t.Setenv("outreach_search", "")
	t.Setenv("HUBSPOT_API_BASE", ownersURL)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "")
}

func TestInvokePrintsOutputFields(t *testing.T) {
	owners := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"12345","firstName":"Ana","lastName":"Lee","email":"ana@x.com"}`))
	}))
	defer owners.Close()
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer webhook.Close()
	setEnv(t, owners.URL, webhook.URL)

	var out bytes.Buffer
	cmd := cli.NewRootCommand()
	cmd.SetArgs([]string{"invoke"})
	cmd.SetIn(strings.NewReader(`{"inputFields":{"email":"lee@example.com","salesforcecontactid":"003A","hubspot_owner_id":"12345"}}`))
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())

	var result models.WorkflowResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	require.Len(t, result.OutputFields, 14)
	require.Equal(t, "003A", models.Text(result.OutputFields[models.OutSFDCID]))
}

func TestInvokeDeliveryFailure(t *testing.T) {
	owners := httptest.NewServer(http.NotFoundHandler())
	defer owners.Close()
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("server error"))
	}))
	defer webhook.Close()
	setEnv(t, owners.URL, webhook.URL)

	cmd := cli.NewRootCommand()
	cmd.SetArgs([]string{"invoke"})
	cmd.SetIn(strings.NewReader(`{"inputFields":{}}`))
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "500")
	require.Contains(t, err.Error(), "server error")
}

func TestMissingConfigurationFails(t *testing.T) {
	setEnv(t, "", "")

	cmd := cli.NewRootCommand()
	cmd.SetArgs([]string{"invoke"})
	cmd.SetIn(strings.NewReader(`{}`))

	err := cmd.Execute()
	require.True(t, errors.Is(err, config.ErrMissingConfig))
}

func TestExplicitEnvFileMustExist(t *testing.T) {
	setEnv(t, "https://example.invalid", "https://example.invalid")

	cmd := cli.NewRootCommand()
	cmd.SetArgs([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env"), "invoke"})
	cmd.SetIn(strings.NewReader(`{}`))

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "load env file")
}
