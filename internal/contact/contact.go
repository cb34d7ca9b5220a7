// Package contact builds the pre-filled links the contact form opens.
package contact

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	DefaultEmail   = "sharmilarapeti1451@gmail.com"
	DefaultPhone   = "918341251461"
	whatsAppPrefix = "https://wa.me/"
)

// ErrIncomplete is returned when a required field is empty.
var ErrIncomplete = errors.New("contact message incomplete")

// Message is a submitted contact form.
type Message struct {
	Name  string
	Email string
	Body  string
}

// Validate requires every field.
func (m Message) Validate() error {
	var missing []string
	if strings.TrimSpace(m.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(m.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(m.Body) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(missing, ", "))
	}
	return nil
}

// MailtoLink addresses m to the given mailbox.
func MailtoLink(to string, m Message) string {
	subject := "Portfolio Contact: " + m.Name
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", m.Name, m.Email, m.Body)
	return "mailto:" + to + "?subject=" + encodeComponent(subject) + "&body=" + encodeComponent(body)
}

// WhatsAppLink opens a chat with phone pre-filled with m.
func WhatsAppLink(phone string, m Message) string {
	text := fmt.Sprintf("*Portfolio Contact*\n\n*Name:* %s\n*Email:* %s\n*Message:* %s", m.Name, m.Email, m.Body)
	return whatsAppPrefix + phone + "?text=" + encodeComponent(text)
}

// encodeComponent escapes s the way browsers' encodeURIComponent does.
func encodeComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	for _, keep := range []string{"!", "'", "(", ")", "*", "~"} {
		escaped = strings.ReplaceAll(escaped, url.QueryEscape(keep), keep)
	}
	return escaped
}
