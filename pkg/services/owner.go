package services

import (
	"context"
	"log/slog"

	"contact-notif/pkg/clients/hubspot"
	"contact-notif/pkg/models"
)

// ResolveOwner maps a CRM owner id to display data. Any lookup that does not
// produce an owner record yields an empty OwnerInfo; the reason is only logged.
func ResolveOwner(ctx context.Context, client hubspot.Client, ownerID string, logger *slog.Logger) models.OwnerInfo {
	lookup, err := client.GetOwner(ctx, ownerID)
	if err != nil {
		logger.Warn("owner lookup failed", "owner_id", ownerID, "error", err)
		return models.OwnerInfo{}
	}
	if lookup.Status != hubspot.OwnerFound {
		logger.Warn("owner not resolved",
			"owner_id", ownerID,
			"status", lookup.Status.String(),
			"http_status", lookup.StatusCode,
			"reason", lookup.Reason,
		)
		return models.OwnerInfo{}
	}

	logger.Debug("owner resolved", "owner_id", ownerID, "owner_email", lookup.Owner.Email)
	return models.OwnerInfo{
		FirstName: lookup.Owner.FirstName,
		LastName:  lookup.Owner.LastName,
		Email:     lookup.Owner.Email,
	}
}
