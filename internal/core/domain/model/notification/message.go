package notification

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"pharmacy/internal/pkg/errs"
)

// Provider limits for interactive messages.
const (
	MaxButtons         = 3
	MaxButtonTitle     = 20
	MaxListRows        = 10
	MaxRowTitle        = 24
	MaxRowDescription  = 72
	MaxBodyLength      = 4096
	maxInteractiveBody = 1024
)

// Kind selects how a Message is rendered.
type Kind string

const (
	KindText    Kind = "text"
	KindButtons Kind = "buttons"
	KindList    Kind = "list"
)

// Button is a quick-reply button. ID comes back in the webhook when pressed.
type Button struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Row is one selectable entry of a list message.
type Row struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Section groups list rows under an optional title.
type Section struct {
	Title string `json:"title,omitempty"`
	Rows  []Row  `json:"rows"`
}

// Message is structured content addressed to a chat user.
type Message struct {
	Kind       Kind      `json:"kind"`
	Body       string    `json:"body"`
	Buttons    []Button  `json:"buttons,omitempty"`
	ListButton string    `json:"list_button,omitempty"`
	Sections   []Section `json:"sections,omitempty"`
}

// Text builds a plain text message.
func Text(body string) Message {
	return Message{Kind: KindText, Body: body}
}

// Buttons builds a body followed by reply buttons.
func Buttons(body string, buttons ...Button) Message {
	return Message{Kind: KindButtons, Body: body, Buttons: buttons}
}

// List builds a body with a menu opened by a button labelled label.
func List(body, label string, sections ...Section) Message {
	return Message{Kind: KindList, Body: body, ListButton: label, Sections: sections}
}

// Validate checks the message against provider limits.
func (m Message) Validate() error {
	if m.Body == "" {
		return errs.NewValueIsRequiredError("message body")
	}

	switch m.Kind {
	case KindText:
		return checkLen("message body", m.Body, MaxBodyLength)
	case KindButtons:
		return m.validateButtons()
	case KindList:
		return m.validateList()
	default:
		return errs.NewValueIsInvalidErrorWithCause("message kind", fmt.Errorf("%q is not supported", string(m.Kind)))
	}
}

func (m Message) validateButtons() error {
	if len(m.Buttons) == 0 || len(m.Buttons) > MaxButtons {
		return errs.NewValueIsOutOfRangeError("buttons", len(m.Buttons), 1, MaxButtons)
	}
	errList := []error{checkLen("message body", m.Body, maxInteractiveBody)}
	for _, b := range m.Buttons {
		errList = append(errList, checkID(b.ID), checkLen("button title", b.Title, MaxButtonTitle))
	}
	return errors.Join(errList...)
}

func (m Message) validateList() error {
	if m.ListButton == "" {
		return errs.NewValueIsRequiredError("list button")
	}
	errList := []error{
		checkLen("message body", m.Body, maxInteractiveBody),
		checkLen("list button", m.ListButton, MaxButtonTitle),
	}
	rows := 0
	for _, s := range m.Sections {
		for _, r := range s.Rows {
			rows++
			errList = append(errList,
				checkID(r.ID),
				checkLen("row title", r.Title, MaxRowTitle),
				checkLen("row description", r.Description, MaxRowDescription),
			)
		}
	}
	if rows == 0 || rows > MaxListRows {
		errList = append(errList, errs.NewValueIsOutOfRangeError("list rows", rows, 1, MaxListRows))
	}
	return errors.Join(errList...)
}

func checkID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("reply id")
	}
	return nil
}

func checkLen(param, s string, max int) error {
	if n := utf8.RuneCountInString(s); n > max {
		return errs.NewValueIsOutOfRangeError(param+" length", n, 0, max)
	}
	return nil
}
