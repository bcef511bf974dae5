package models

// Output field names returned to the workflow.
const (
	OutEmail          = "email"
	OutFullName       = "full_name"
	OutJobTitle       = "jobtitle"
	OutOwner          = "owner"
	OutLandingPage    = "landing_page"
	OutRecentFormPage = "recent_form_page"
	OutUTMSource      = "utm_source"
	OutUTMMedium      = "utm_medium"
	OutUTMCampaign    = "utm_campaign"
	OutUTMContent     = "utm_content"
	OutUTMTerm        = "utm_term"
	OutSFDCID         = "sfdc_id"
	OutContactID      = "contact_id"
	OutSegAnonID      = "seg_anon_id"
)

// OutputKeys lists every key present in a WorkflowResult.
var OutputKeys = []string{
	OutEmail, OutFullName, OutJobTitle, OutOwner, OutLandingPage, OutRecentFormPage,
	OutUTMSource, OutUTMMedium, OutUTMCampaign, OutUTMContent, OutUTMTerm,
	OutSFDCID, OutContactID, OutSegAnonID,
}

// WorkflowResult is returned to the workflow engine for later actions. Nil
// values marshal as JSON null.
type WorkflowResult struct {
	OutputFields map[string]*string `json:"outputFields"`
}
