package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var ada = Message{Name: "Ada Lovelace", Email: "ada@example.com", Body: "Hi (there)!"}

func TestMailtoLink(t *testing.T) {
	got := MailtoLink(DefaultEmail, ada)
	assert.Equal(t,
		"mailto:sharmilarapeti1451@gmail.com"+
			"?subject=Portfolio%20Contact%3A%20Ada%20Lovelace"+
			"&body=Name%3A%20Ada%20Lovelace%0AEmail%3A%20ada%40example.com%0A%0AMessage%3A%0AHi%20(there)!",
		got)
}

func TestWhatsAppLink(t *testing.T) {
	got := WhatsAppLink(DefaultPhone, ada)
	assert.Equal(t,
		"https://wa.me/918341251461?text="+
			"*Portfolio%20Contact*%0A%0A*Name%3A*%20Ada%20Lovelace%0A*Email%3A*%20ada%40example.com%0A*Message%3A*%20Hi%20(there)!",
		got)
}

func TestEncodeComponent(t *testing.T) {
	assert.Equal(t, "a%2Bb%20c%26d%3De", encodeComponent("a+b c&d=e"))
	assert.Equal(t, "~'()*!", encodeComponent("~'()*!"))
	assert.Equal(t, "%E2%9C%A8", encodeComponent("✨"))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, ada.Validate())

	err := Message{Name: "x", Body: "  "}.Validate()
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.ErrorContains(t, err, "email, message")
}
