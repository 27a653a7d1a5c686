package wizard

// EffectKind names a side effect a transition asks its caller to perform.
type EffectKind string

const (
	EffectScrollToTop        EffectKind = "scroll_to_top"
	EffectScrollToCalculator EffectKind = "scroll_to_calculator"
	EffectNotify             EffectKind = "notify"
	// EffectSubmitLead is handled server side and never sent to the browser.
	EffectSubmitLead EffectKind = "submit_lead"
)

// Notification levels.
const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// Notification texts shown by the browser shell.
const (
	msgContactInvalid   = "Please complete all required fields correctly."
	msgContactSubmitted = "Information submitted successfully!"
	msgCompleted        = "Thank you for your submission!"
)

// calculatorScrollDelayMS lets the questionnaire mount before scrolling to it.
const calculatorScrollDelayMS = 100

// Effect is a declared side effect of a transition.
type Effect struct {
	Kind    EffectKind `json:"kind"`
	DelayMS int        `json:"delay_ms,omitempty"`
	Level   string     `json:"level,omitempty"`
	Message string     `json:"message,omitempty"`
}

// ClientSide reports whether the browser shell should perform e.
func (e Effect) ClientSide() bool {
	return e.Kind != EffectSubmitLead
}

// ClientEffects filters effects down to the ones the browser performs.
func ClientEffects(effects []Effect) []Effect {
	out := make([]Effect, 0, len(effects))
	for _, e := range effects {
		if e.ClientSide() {
			out = append(out, e)
		}
	}
	return out
}

func scrollToTop() Effect {
	return Effect{Kind: EffectScrollToTop}
}

func scrollToCalculator() Effect {
	return Effect{Kind: EffectScrollToCalculator, DelayMS: calculatorScrollDelayMS}
}

func notify(level, message string) Effect {
	return Effect{Kind: EffectNotify, Level: level, Message: message}
}

func submitLead() Effect {
	return Effect{Kind: EffectSubmitLead}
}
