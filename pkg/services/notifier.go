package services

import (
	"context"
	"errors"
	"log/slog"

	"contact-notif/pkg/clients/hubspot"
	"contact-notif/pkg/clients/slack"
	"contact-notif/pkg/config"
	"contact-notif/pkg/logging"
	"contact-notif/pkg/models"
)

// Delivery outcomes recorded in logs.
const (
	OutcomeSent   = "sent"
	OutcomeFailed = "failed"
)

// ContactNotificationService defines the interface for handling workflow events
type ContactNotificationService interface {
	Notify(ctx context.Context, event models.InboundEvent) (models.WorkflowResult, error)
}

type contactNotificationServiceImpl struct {
	hubspotClient hubspot.Client
	slackClient   slack.Client
	links         Links
	logger        *slog.Logger
}

// NewContactNotificationService creates a new notification service
func NewContactNotificationService(
	hubspotClient hubspot.Client,
	slackClient slack.Client,
	cfg *config.Config,
	logger *slog.Logger,
) ContactNotificationService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &contactNotificationServiceImpl{
		hubspotClient: hubspotClient,
		slackClient:   slackClient,
		links: Links{
			PortalID:            cfg.PortalID,
			SFDCHost:            cfg.SFDCHost,
			AmplitudeSearchBase: cfg.AmplitudeSearchBase,
			OutreachSearchBase:  cfg.OutreachSearchBase,
		},
		logger: logger,
	}
}

// Notify runs one invocation: extract, resolve the owner, post the message and
// return the output fields. A delivery failure aborts with no result.
func (s *contactNotificationServiceImpl) Notify(ctx context.Context, event models.InboundEvent) (models.WorkflowResult, error) {
	logger := logging.FromContext(ctx, s.logger)

	fields := ExtractFields(event)
	sfdcID := CoalesceSFDCID(fields)
	logger = logger.With("contact_id", models.Text(fields.ContactID))

	owner := ResolveOwner(ctx, s.hubspotClient, models.Text(fields.OwnerID), logger)
	msg := BuildNotification(fields, owner, sfdcID, s.links)

	if err := s.slackClient.PostMessage(ctx, msg); err != nil {
		attrs := []any{"outcome", OutcomeFailed, "error", err}
		var delivery *slack.DeliveryError
		if errors.As(err, &delivery) {
			attrs = append(attrs, "http_status", delivery.StatusCode)
		}
		logger.Error("lead notification not delivered", attrs...)
		return models.WorkflowResult{}, err
	}

	logger.Info("lead notification delivered", "outcome", OutcomeSent, "owner_email", owner.Email)
	return buildResult(fields, sfdcID), nil
}

func buildResult(fields models.ContactFields, sfdcID *string) models.WorkflowResult {
	var fullName *string
	if fields.FirstName != nil || fields.LastName != nil {
		name := models.Text(fields.FirstName) + " " + models.Text(fields.LastName)
		fullName = &name
	}

	return models.WorkflowResult{
		OutputFields: map[string]*string{
			models.OutEmail:          fields.Email,
			models.OutFullName:       fullName,
			models.OutJobTitle:       fields.JobTitle,
			models.OutOwner:          fields.OwnerID,
			models.OutLandingPage:    fields.LandingPage,
			models.OutRecentFormPage: fields.RecentFormPage,
			models.OutUTMSource:      fields.UTMSource,
			models.OutUTMMedium:      fields.UTMMedium,
			models.OutUTMCampaign:    fields.UTMCampaign,
			models.OutUTMContent:     fields.UTMContent,
			models.OutUTMTerm:        fields.UTMTerm,
			models.OutSFDCID:         sfdcID,
			models.OutContactID:      fields.ContactID,
			models.OutSegAnonID:      fields.SegmentAnonymousID,
		},
	}
}
