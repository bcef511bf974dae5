package services

import (
	"fmt"

	"contact-notif/pkg/models"
)

// HeaderText is shown as the message header and notification fallback.
const HeaderText = "🎉 New Inbound Lead!"

// Links holds the base values used to build the action button URLs.
type Links struct {
	PortalID            string
	SFDCHost            string
	AmplitudeSearchBase string
	OutreachSearchBase  string
}

// BuildNotification assembles the block kit message for a new inbound lead.
// URLs are built by plain substitution; values are not escaped.
func BuildNotification(fields models.ContactFields, owner models.OwnerInfo, sfdcID *string, links Links) models.SlackMessage {
	t := models.Text
	email := t(fields.Email)

	return models.SlackMessage{
		Text: HeaderText,
		Blocks: []models.Block{
			{
				Type: models.BlockHeader,
				Text: &models.TextObject{Type: models.TextPlain, Text: HeaderText},
			},
			fieldSection("Name", t(fields.FirstName)+" "+t(fields.LastName), "Role", t(fields.JobTitle)),
			fieldSection("Owner", owner.DisplayName(), "Land Page", t(fields.LandingPage)),
			fieldSection("Conversion Page", t(fields.RecentFormPage), "UTM Source", t(fields.UTMSource)),
			fieldSection("UTM Medium", t(fields.UTMMedium), "UTM Campaign", t(fields.UTMCampaign)),
			fieldSection("UTM Content", t(fields.UTMContent), "UTM Term", t(fields.UTMTerm)),
			{
				Type: models.BlockActions,
				Elements: []models.ButtonElement{
					button(":salesforce: View in SFDC",
						fmt.Sprintf("https://%s.lightning.force.com/%s", links.SFDCHost, t(sfdcID))),
					button(":hubspot: View in HubSpot",
						fmt.Sprintf("https://app.hubspot.com/contacts/%s/contact/%s", links.PortalID, t(fields.ContactID))),
					button(":amplitude: Search in Amplitude",
						links.AmplitudeSearchBase+"email%3D"+email),
					button(":outreach: Search in Outreach",
						links.OutreachSearchBase+email),
				},
			},
		},
	}
}

func fieldSection(leftLabel, leftValue, rightLabel, rightValue string) models.Block {
	return models.Block{
		Type: models.BlockSection,
		Fields: []models.TextObject{
			{Type: models.TextMarkdown, Text: fmt.Sprintf("*%s:*\n%s", leftLabel, leftValue)},
			{Type: models.TextMarkdown, Text: fmt.Sprintf("*%s:*\n%s", rightLabel, rightValue)},
		},
	}
}

func button(label, url string) models.ButtonElement {
	return models.ButtonElement{
		Type: models.ElementButton,
		Text: models.TextObject{Type: models.TextPlain, Text: label},
		URL:  url,
	}
}
