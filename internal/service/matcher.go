package service

import "strings"

// Rule names, also reported by the chat endpoint
const (
	RuleGreeting  = "greeting"
	RuleFood      = "food"
	RuleBeach     = "beach"
	RuleLodging   = "lodging"
	RuleActivity  = "activity"
	RuleGratitude = "gratitude"
	RuleFallback  = "fallback"
)

// WelcomeMessage opens every chat session
const WelcomeMessage = "Bonjour ! Je suis Essence, votre assistant virtuel pour découvrir les meilleurs lieux en Tunisie. Comment puis-je vous aider aujourd'hui ?"

// fallbackResponse is used when no rule matches
const fallbackResponse = "Je ne suis pas sûr de comprendre votre demande. Pouvez-vous me donner plus de détails sur ce que vous recherchez en Tunisie ?"

// ResponseRule maps keywords to a canned reply
type ResponseRule struct {
	Name     string
	Keywords []string
	Response string
}

// responseRules is evaluated in order; the first rule with a matching keyword wins
var responseRules = []ResponseRule{
	{
		Name:     RuleGreeting,
		Keywords: []string{"bonjour", "salut", "hello"},
		Response: "Bonjour ! Comment puis-je vous aider aujourd'hui ?",
	},
	{
		Name:     RuleFood,
		Keywords: []string{"restaurant", "manger"},
		Response: "Je peux vous recommander plusieurs restaurants de qualité. Préférez-vous une cuisine traditionnelle tunisienne ou internationale ?",
	},
	{
		Name:     RuleBeach,
		Keywords: []string{"plage", "mer", "baignade"},
		Response: "La Tunisie dispose de magnifiques plages ! Les plages de Hammamet, Sousse et Djerba sont particulièrement propres et bien entretenues.",
	},
	{
		Name:     RuleLodging,
		Keywords: []string{"hôtel", "logement", "dormir"},
		Response: "Je peux vous aider à trouver un hébergement. Quel est votre budget approximatif par nuit ?",
	},
	{
		Name:     RuleActivity,
		Keywords: []string{"activité", "faire", "visite"},
		Response: "Parmi les activités populaires en Tunisie, je vous recommande la visite des médinas, les excursions dans le désert, ou la découverte des sites archéologiques comme Carthage.",
	},
	{
		Name:     RuleGratitude,
		Keywords: []string{"merci"},
		Response: "Je vous en prie ! N'hésitez pas si vous avez d'autres questions.",
	},
}

// Rules returns a deep copy of the ordered rule table
func Rules() []ResponseRule {
	out := make([]ResponseRule, len(responseRules))
	for i, r := range responseRules {
		r.Keywords = append([]string(nil), r.Keywords...)
		out[i] = r
	}
	return out
}

// Match returns the reply and the name of the first rule whose keyword occurs
// in the lower-cased utterance, or the fallback reply.
func Match(utterance string) (response, rule string) {
	u := strings.ToLower(utterance)
	for _, r := range responseRules {
		for _, kw := range r.Keywords {
			if strings.Contains(u, kw) {
				return r.Response, r.Name
			}
		}
	}
	return fallbackResponse, RuleFallback
}

// Respond returns the reply for one utterance. It keeps no state.
func Respond(utterance string) string {
	response, _ := Match(utterance)
	return response
}
