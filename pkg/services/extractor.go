package services

import "contact-notif/pkg/models"

// ExtractFields pulls the declared contact fields out of the event. Missing
// keys come back as nil; no validation is performed.
func ExtractFields(event models.InboundEvent) models.ContactFields {
	segAnonID := event.Lookup(models.FieldSegmentAnonymousID)
	if segAnonID == nil {
		segAnonID = event.Lookup(models.FieldSegmentAnonymousIDLegacy)
	}

	return models.ContactFields{
		Email:               event.Lookup(models.FieldEmail),
		FirstName:           event.Lookup(models.FieldFirstName),
		LastName:            event.Lookup(models.FieldLastName),
		JobTitle:            event.Lookup(models.FieldJobTitle),
		OwnerID:             event.Lookup(models.FieldOwnerID),
		LandingPage:         event.Lookup(models.FieldLandingPage),
		UTMSource:           event.Lookup(models.FieldUTMSource),
		UTMMedium:           event.Lookup(models.FieldUTMMedium),
		UTMCampaign:         event.Lookup(models.FieldUTMCampaign),
		UTMContent:          event.Lookup(models.FieldUTMContent),
		UTMTerm:             event.Lookup(models.FieldUTMTerm),
		SalesforceLeadID:    event.Lookup(models.FieldSalesforceLeadID),
		SalesforceContactID: event.Lookup(models.FieldSalesforceContactID),
		ContactID:           event.Lookup(models.FieldObjectID),
		RecentFormPage:      event.Lookup(models.FieldRecentFormPage),
		SegmentAnonymousID:  segAnonID,
	}
}

// CoalesceSFDCID prefers a non-empty Salesforce contact id over the lead id.
func CoalesceSFDCID(fields models.ContactFields) *string {
	if fields.SalesforceContactID != nil && *fields.SalesforceContactID != "" {
		return fields.SalesforceContactID
	}
	return fields.SalesforceLeadID
}
