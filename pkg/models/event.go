package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Field names read from the workflow input.
const (
	FieldEmail               = "email"
	FieldFirstName           = "firstname"
	FieldLastName            = "lastname"
	FieldJobTitle            = "jobtitle"
	FieldOwnerID             = "hubspot_owner_id"
	FieldLandingPage         = "landing_page"
	FieldUTMSource           = "utm_source"
	FieldUTMMedium           = "utm_medium"
	FieldUTMCampaign         = "utm_campaign"
	FieldUTMContent          = "utm_content"
	FieldUTMTerm             = "utm_term"
	FieldSalesforceLeadID    = "salesforceleadid"
	FieldSalesforceContactID = "salesforcecontactid"
	FieldObjectID            = "hs_object_id"
	FieldRecentFormPage      = "recent_form_page"
	FieldSegmentAnonymousID  = "segment_anonymous_id"

	// Older workflows send the Salesforce custom field name.
	FieldSegmentAnonymousIDLegacy = "segment_anonymous_id__c"
)

// InboundEvent represents the data structure posted by the CRM workflow action
type InboundEvent struct {
	InputFields map[string]any `json:"inputFields"`
}

// ParseInboundEvent decodes a workflow event. Bodies without an inputFields
// wrapper are treated as the field map itself.
func ParseInboundEvent(data []byte) (InboundEvent, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return InboundEvent{}, fmt.Errorf("error parsing event: %w", err)
	}
	if raw == nil {
		return InboundEvent{}, fmt.Errorf("error parsing event: body is null")
	}

	if inner, ok := raw["inputFields"]; ok {
		fields, ok := inner.(map[string]any)
		if !ok && inner != nil {
			return InboundEvent{}, fmt.Errorf("error parsing event: inputFields is %T, want object", inner)
		}
		return InboundEvent{InputFields: fields}, nil
	}
	return InboundEvent{InputFields: raw}, nil
}

// Lookup returns the textual value of a field, or nil when it is missing or null.
func (e InboundEvent) Lookup(name string) *string {
	v, ok := e.InputFields[name]
	if !ok || v == nil {
		return nil
	}

	var s string
	switch val := v.(type) {
	case string:
		s = val
	case json.Number:
		s = val.String()
	case float64:
		s = strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(val)
	default:
		s = fmt.Sprint(val)
	}
	return &s
}

// ContactFields holds the values extracted from an InboundEvent. Nil means the
// field was absent or null in the event.
type ContactFields struct {
	Email               *string
	FirstName           *string
	LastName            *string
	JobTitle            *string
	OwnerID             *string
	LandingPage         *string
	UTMSource           *string
	UTMMedium           *string
	UTMCampaign         *string
	UTMContent          *string
	UTMTerm             *string
	SalesforceLeadID    *string
	SalesforceContactID *string
	ContactID           *string
	RecentFormPage      *string
	SegmentAnonymousID  *string
}

// Text dereferences a nullable field, rendering nil as "".
func Text(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// OwnerInfo is the display data for the contact owner. All fields are empty
// when the owner could not be resolved.
type OwnerInfo struct {
	FirstName string
	LastName  string
	Email     string
}

// DisplayName joins first and last name with a single space.
func (o OwnerInfo) DisplayName() string {
	return o.FirstName + " " + o.LastName
}
