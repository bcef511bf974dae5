package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"contact-notif/pkg/clients/hubspot"
	"contact-notif/pkg/clients/slack"
	"contact-notif/pkg/config"
	"contact-notif/pkg/logging"
	"contact-notif/pkg/models"
	"contact-notif/pkg/services"
)

type fakeHubSpot struct {
	lookup hubspot.OwnerLookup
	err    error
	calls  []string
}

func (f *fakeHubSpot) GetOwner(_ context.Context, ownerID string) (hubspot.OwnerLookup, error) {
	f.calls = append(f.calls, ownerID)
	return f.lookup, f.err
}

type fakeSlack struct {
	sent []models.SlackMessage
	err  error
}

func (f *fakeSlack) PostMessage(_ context.Context, msg models.SlackMessage) error {
	f.sent = append(f.sent, msg)
	return f.err
}

func testConfig() *config.Config {
	return &config.Config{
		APIKey:              "pat-123",
		PortalID:            "4242",
		WebhookURL:          "https://hooks.example.com/x",
		SFDCHost:            "acme",
		AmplitudeSearchBase: "https://analytics.amplitude.com/acme/search/",
		OutreachSearchBase:  config.DefaultOutreachSearchBase,
	}
}

func sampleEvent() models.InboundEvent {
	return models.InboundEvent{InputFields: map[string]any{
		"email":               "lee@example.com",
		"firstname":           "Lee",
		"lastname":            "Park",
		"jobtitle":            "VP Data",
		"hubspot_owner_id":    "12345",
		"salesforceleadid":    "00QB",
		"salesforcecontactid": "",
		"hs_object_id":        json.Number("901"),
	}}
}

func TestNotifyReturnsAllOutputKeys(t *testing.T) {
	hs := &fakeHubSpot{lookup: hubspot.OwnerLookup{
		Status: hubspot.OwnerFound,
		Owner:  hubspot.Owner{FirstName: "Ana", LastName: "Lee", Email: "ana@x.com"},
	}}
	sl := &fakeSlack{}
	svc := services.NewContactNotificationService(hs, sl, testConfig(), logging.NewNop())

	result, err := svc.Notify(context.Background(), sampleEvent())
	require.NoError(t, err)

	require.Len(t, result.OutputFields, len(models.OutputKeys))
	for _, key := range models.OutputKeys {
		require.Contains(t, result.OutputFields, key)
	}
	out := result.OutputFields
	require.Equal(t, "Lee Park", *out[models.OutFullName])
	require.Equal(t, "00QB", *out[models.OutSFDCID])
	require.Equal(t, "901", *out[models.OutContactID])
	require.Equal(t, "12345", *out[models.OutOwner])
	require.Nil(t, out[models.OutUTMSource])
	require.Nil(t, out[models.OutSegAnonID])

	require.Equal(t, []string{"12345"}, hs.calls)
	require.Len(t, sl.sent, 1)
	require.Equal(t, "*Owner:*\nAna Lee", sl.sent[0].Sections()[1].Fields[0].Text)
	require.Equal(t, "https://acme.lightning.force.com/00QB", sl.sent[0].Buttons()[0].URL)
}

func TestNotifyDegradesUnresolvedOwner(t *testing.T) {
	hs := &fakeHubSpot{lookup: hubspot.OwnerLookup{Status: hubspot.OwnerUnavailable, StatusCode: 401, Reason: "bad token"}}
	sl := &fakeSlack{}
	svc := services.NewContactNotificationService(hs, sl, testConfig(), nil)

	_, err := svc.Notify(context.Background(), sampleEvent())
	require.NoError(t, err)
	require.Equal(t, "*Owner:*\n ", sl.sent[0].Sections()[1].Fields[0].Text)
}

func TestNotifyDeliveryFailureAborts(t *testing.T) {
	sl := &fakeSlack{err: &slack.DeliveryError{StatusCode: 500, Body: "server error"}}
	svc := services.NewContactNotificationService(&fakeHubSpot{}, sl, testConfig(), logging.NewNop())

	result, err := svc.Notify(context.Background(), sampleEvent())
	require.Error(t, err)
	require.Nil(t, result.OutputFields)
	require.Contains(t, err.Error(), "500")
	require.Contains(t, err.Error(), "server error")

	var delivery *slack.DeliveryError
	require.True(t, errors.As(err, &delivery))
}

func TestNotifyEmptyEventNullOutputs(t *testing.T) {
	svc := services.NewContactNotificationService(&fakeHubSpot{}, &fakeSlack{}, testConfig(), logging.NewNop())

	result, err := svc.Notify(context.Background(), models.InboundEvent{})
	require.NoError(t, err)
	require.Len(t, result.OutputFields, 14)
	for key, v := range result.OutputFields {
		require.Nil(t, v, key)
	}

	raw, err := json.Marshal(result)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"sfdc_id":null`)
}

func TestNotifyAgainstRemoteAPIs(t *testing.T) {
	owners := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/crm/v3/owners/12345" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"firstName":"Ana","lastName":"Lee","email":"ana@x.com","a":1,"b":2}`))
	}))
	defer owners.Close()

	var posted models.SlackMessage
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &posted)
		_, _ = w.Write([]byte("ok"))
	}))
	defer webhook.Close()

	cfg := testConfig()
	svc := services.NewContactNotificationService(
		hubspot.NewClient(cfg.APIKey, owners.URL, owners.Client()),
		slack.NewClient(webhook.URL, webhook.Client()),
		cfg,
		logging.NewNop(),
	)

	_, err := svc.Notify(context.Background(), sampleEvent())
	require.NoError(t, err)
	require.Equal(t, "*Owner:*\nAna Lee", posted.Sections()[1].Fields[0].Text)
	require.Len(t, posted.Buttons(), 4)
}
