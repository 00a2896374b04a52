package persona

import "strings"

// Category identifies which persona template a prompt resolved to.
type Category string

const (
	CategoryExcuse  Category = "excuse"
	CategoryAdvice  Category = "advice"
	CategoryTherapy Category = "therapy"
	CategoryUnknown Category = "unknown"
)

// FallbackPrompt is sent to the model when no marker matches. It is a real
// generation request, not a short-circuit.
const FallbackPrompt = "tell me nothing worked"

const wordLimitSuffix = " (limited to 30 words)"

type rule struct {
	marker   string
	category Category
	wrap     func(string) string
}

// Markers are matched case-sensitively, in order; an input containing
// several markers resolves to the first rule that matches. The extension
// injects the markers verbatim, so no case folding is done.
var rules = []rule{
	{"EXCUSE", CategoryExcuse, func(s string) string {
		return "(generate a crazy and funny excuse for:)" + s + wordLimitSuffix
	}},
	{"ADVICE", CategoryAdvice, func(s string) string {
		return "(provide funny but useless advice on the following:" + s + wordLimitSuffix
	}},
	{"THERAPY", CategoryTherapy, func(s string) string {
		return "(behave like a pessimistic therapist and give me completely useless therapy instead for the following:)" + s + wordLimitSuffix
	}},
}

// Classify maps raw input text to a persona category and the final prompt
// text to send to the model.
func Classify(raw string) (Category, string) {
	for _, r := range rules {
		if strings.Contains(raw, r.marker) {
			return r.category, r.wrap(raw)
		}
	}
	return CategoryUnknown, FallbackPrompt
}
