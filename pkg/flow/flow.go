// Package flow tracks which stage of the scripted advisory conversation a
// session has reached. Classification is keyword matching over free-form
// model output: best effort, observational only, never gates a turn.
package flow

import "strings"

// Step is one of the ten fixed stages of the advisory script.
type Step int

const (
	StepGreeting       Step = 1  // presentation, only at conversation start
	StepName           Step = 2  // asking for the client's name
	StepImage          Step = 3  // asking for a full-body photo
	StepEvent          Step = 4  // asking for event details
	StepStyle          Step = 5  // asking for style preferences
	StepColor          Step = 6  // asking for color preferences
	StepRecommendation Step = 7  // a design has been recommended
	StepUpsell         Step = 8  // pitching the tailored-dress appointment
	StepAppointment    Step = 9  // collecting contact information
	StepClosing        Step = 10 // closing line
)

// rule pairs a target step with the reply keywords that signal it.
type rule struct {
	step     Step
	keywords []string
}

// rules in precedence order; the first match wins. The recommendation
// marker goes first because its lowercase form contains "imagen" and must
// not be misread as the photo request. Steps 8 and 10 carry no reliable
// keyword in the script and have no rule.
var rules = []rule{
	{StepRecommendation, []string{"[mostrar_imagen:"}},
	{StepName, []string{"¿cómo te llamas?", "nombre"}},
	{StepImage, []string{"imagen", "foto"}},
	{StepEvent, []string{"evento", "ocasión"}},
	{StepStyle, []string{"estilo", "prefier"}},
	{StepColor, []string{"color", "tono"}},
	{StepAppointment, []string{"contacto", "teléfono", "email"}},
}

// Classify inspects an assistant reply and returns the step it signals.
// The boolean is false when no keyword class matches, meaning no transition.
func Classify(reply string) (Step, bool) {
	lower := strings.ToLower(reply)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.step, true
			}
		}
	}
	return 0, false
}
