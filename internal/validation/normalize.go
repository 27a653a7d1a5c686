package validation

import (
	"regexp"
	"strings"

	"heating_leads/internal/models"

	"github.com/nyaruka/phonenumbers"
)

// DefaultPhoneRegion is used for numbers entered without a country code.
const DefaultPhoneRegion = "DE"

var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

// StripHTML removes tags and decodes the common entities, then strips again
// so encoded tags cannot survive.
func StripHTML(s string) string {
	result := htmlTagRegex.ReplaceAllString(s, "")
	result = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&amp;", "&",
		"&quot;", "\"",
		"&#39;", "'",
	).Replace(result)
	result = htmlTagRegex.ReplaceAllString(result, "")
	return strings.TrimSpace(result)
}

// NormalizeE164 formats a phone number as E.164. Unparseable or invalid
// numbers come back trimmed so validation can reject them.
func NormalizeE164(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}
	number, err := phonenumbers.Parse(trimmed, DefaultPhoneRegion)
	if err != nil {
		return trimmed
	}
	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}

// NormalizeContact trims and sanitizes user-entered contact fields.
func NormalizeContact(c models.ContactInfo) models.ContactInfo {
	c.FirstName = StripHTML(c.FirstName)
	c.LastName = StripHTML(c.LastName)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = NormalizeE164(c.Phone)
	return c
}
