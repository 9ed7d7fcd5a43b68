package whatsapp

import (
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/notification"
)

type payload struct {
	MessagingProduct string       `json:"messaging_product"`
	RecipientType    string       `json:"recipient_type"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             *textBody    `json:"text,omitempty"`
	Interactive      *interactive `json:"interactive,omitempty"`
}

type textBody struct {
	Body string `json:"body"`
}

type interactive struct {
	Type   string   `json:"type"`
	Body   textBody `json:"body"`
	Action action   `json:"action"`
}

type action struct {
	Button   string          `json:"button,omitempty"`
	Buttons  []replyButton   `json:"buttons,omitempty"`
	Sections []actionSection `json:"sections,omitempty"`
}

type replyButton struct {
	Type  string `json:"type"`
	Reply struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	} `json:"reply"`
}

type actionSection struct {
	Title string             `json:"title,omitempty"`
	Rows  []notification.Row `json:"rows"`
}

func newPayload(to kernel.Phone, m notification.Message) payload {
	p := payload{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to.String(),
	}

	switch m.Kind {
	case notification.KindButtons:
		buttons := make([]replyButton, 0, len(m.Buttons))
		for _, b := range m.Buttons {
			rb := replyButton{Type: "reply"}
			rb.Reply.ID = b.ID
			rb.Reply.Title = b.Title
			buttons = append(buttons, rb)
		}
		p.Type = "interactive"
		p.Interactive = &interactive{
			Type:   "button",
			Body:   textBody{Body: m.Body},
			Action: action{Buttons: buttons},
		}
	case notification.KindList:
		sections := make([]actionSection, 0, len(m.Sections))
		for _, s := range m.Sections {
			sections = append(sections, actionSection{Title: s.Title, Rows: s.Rows})
		}
		p.Type = "interactive"
		p.Interactive = &interactive{
			Type:   "list",
			Body:   textBody{Body: m.Body},
			Action: action{Button: m.ListButton, Sections: sections},
		}
	default:
		p.Type = "text"
		p.Text = &textBody{Body: m.Body}
	}

	return p
}
