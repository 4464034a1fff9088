package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"o@x.com", "first.last@example.com.br", "a+tag@sub.domain.org"}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{"", "not-an-email", "@x.com", "a@", "a@b", "a b@x.com"}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestFormatLongDate(t *testing.T) {
	assert.Equal(t, "2 de setembro de 2026", FormatLongDate(time.Date(2026, time.September, 2, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "31 de dezembro de 2025", FormatLongDate(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1 de março de 2027", FormatLongDate(time.Date(2027, time.March, 1, 23, 59, 0, 0, time.UTC)))
}
