package ledger

import (
	"strings"
	"time"
)

// GeneralService is the fallback label when no keyword matches
const GeneralService = "General"

// classifyRule maps a title keyword to its service label. Order matters:
// titles are not guaranteed to match exactly one keyword, so the first
// hit in this list wins.
type classifyRule struct {
	keywords []string
	label    string
}

var classifyRules = []classifyRule{
	{[]string{"bridal"}, "Bridal Mehendi"},
	{[]string{"festive"}, "Festive Mehendi"},
	{[]string{"arabic"}, "Arabic Style"},
	{[]string{"traditional", "indian"}, "Traditional Indian"},
	{[]string{"kids"}, "Kids Mehendi"},
	{[]string{"custom"}, "Custom Designs"},
}

// Classify derives a service label for display. An explicit service type
// always wins verbatim; otherwise the design title is matched
// case-insensitively against the keyword rules.
func Classify(designTitle, explicitServiceType string) string {
	if explicitServiceType != "" {
		return explicitServiceType
	}

	title := strings.ToLower(designTitle)
	for _, rule := range classifyRules {
		for _, kw := range rule.keywords {
			if strings.Contains(title, kw) {
				return rule.label
			}
		}
	}
	return GeneralService
}

// DeriveDay computes the weekday display label for a YYYY-MM-DD date
func DeriveDay(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", err
	}
	return t.Weekday().String(), nil
}
