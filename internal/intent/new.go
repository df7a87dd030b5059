package intent

import (
	"fmt"
	"regexp"
)

// Classifier maps a raw message to an intent and its parameters.
type Classifier interface {
	Classify(message string) (Intent, Params)
}

type compiledRule struct {
	intent  Intent
	pattern *regexp.Regexp
}

// RegexClassifier evaluates an ordered pattern table, first match wins.
// It is immutable after construction and safe for concurrent use.
type RegexClassifier struct {
	rules []compiledRule
}

var _ Classifier = (*RegexClassifier)(nil)

// New compiles rules into a RegexClassifier, keeping table order.
func New(rules []Rule) (*RegexClassifier, error) {
	c := &RegexClassifier{}
	for _, r := range rules {
		for _, p := range r.Patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, fmt.Errorf("intent %s: invalid pattern %q: %w", r.Intent, p, err)
			}
			c.rules = append(c.rules, compiledRule{intent: r.Intent, pattern: re})
		}
	}
	return c, nil
}

// NewDefault returns a classifier over DefaultRules.
func NewDefault() *RegexClassifier {
	c, err := New(DefaultRules)
	if err != nil {
		panic(err)
	}
	return c
}
