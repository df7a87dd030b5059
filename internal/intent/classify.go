package intent

import "strings"

// Classify lower-cases and trims the message, then returns the intent of the
// first pattern that matches. Unmatched messages yield (IntentUnknown, nil).
func (c *RegexClassifier) Classify(message string) (Intent, Params) {
	message = strings.TrimSpace(strings.ToLower(message))

	for _, r := range c.rules {
		m := r.pattern.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		if len(m) == 1 {
			return r.intent, nil
		}
		params := make(Params, len(m)-1)
		copy(params, m[1:])
		return r.intent, params
	}

	return IntentUnknown, nil
}
