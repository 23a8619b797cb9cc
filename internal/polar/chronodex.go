package polar

import "strings"

type radiusRule struct {
	name       string
	keywords   []string
	multiplier float64
}

// Rules are evaluated top to bottom; the first keyword match wins.
var radiusRules = []radiusRule{
	{name: "rest", keywords: []string{"sleep", "nap", "rest", "bed", "relax"}, multiplier: 0.70},
	{name: "work", keywords: []string{"work", "meeting", "call", "standup", "review", "office", "email"}, multiplier: 1.00},
	{name: "exercise", keywords: []string{"exercise", "gym", "run", "workout", "yoga", "walk", "swim"}, multiplier: 0.90},
	{name: "meal", keywords: []string{"breakfast", "lunch", "dinner", "meal", "eat", "coffee", "snack"}, multiplier: 0.80},
	{name: "creative", keywords: []string{"write", "read", "music", "art", "draw", "friends", "family", "party", "social"}, multiplier: 0.95},
}

var fallbackMultipliers = [5]float64{0.85, 0.92, 0.78, 0.97, 0.88}

// RadiusMultiplier returns the outer radius scale for an event slice. It
// depends only on the title and the slice index, so repeated renders agree.
func RadiusMultiplier(title string, index int) float64 {
	if rule, ok := matchRule(title); ok {
		return rule.multiplier
	}
	i := index % len(fallbackMultipliers)
	if i < 0 {
		i += len(fallbackMultipliers)
	}
	return fallbackMultipliers[i]
}

// Category returns the name of the rule a title matches, or "" if none does.
func Category(title string) string {
	if rule, ok := matchRule(title); ok {
		return rule.name
	}
	return ""
}

func matchRule(title string) (radiusRule, bool) {
	lower := strings.ToLower(title)
	for _, rule := range radiusRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule, true
			}
		}
	}
	return radiusRule{}, false
}
