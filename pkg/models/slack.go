package models

// Block kit element and block types used by the notification.
const (
	BlockHeader  = "header"
	BlockSection = "section"
	BlockActions = "actions"

	TextPlain    = "plain_text"
	TextMarkdown = "mrkdwn"

	ElementButton = "button"
)

// SlackMessage is the JSON body accepted by an incoming webhook.
type SlackMessage struct {
	Text   string  `json:"text"`
	Blocks []Block `json:"blocks"`
}

// Block is one layout block. Only the fields relevant to Type are set.
type Block struct {
	Type     string          `json:"type"`
	Text     *TextObject     `json:"text,omitempty"`
	Fields   []TextObject    `json:"fields,omitempty"`
	Elements []ButtonElement `json:"elements,omitempty"`
}

type TextObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type ButtonElement struct {
	Type string     `json:"type"`
	Text TextObject `json:"text"`
	URL  string     `json:"url"`
}

// Sections returns the section blocks in order.
func (m SlackMessage) Sections() []Block {
	return m.blocksOfType(BlockSection)
}

// Buttons returns every button across all action blocks.
func (m SlackMessage) Buttons() []ButtonElement {
	var out []ButtonElement
	for _, b := range m.blocksOfType(BlockActions) {
		out = append(out, b.Elements...)
	}
	return out
}

func (m SlackMessage) blocksOfType(t string) []Block {
	var out []Block
	for _, b := range m.Blocks {
		if b.Type == t {
			out = append(out, b)
		}
	}
	return out
}
