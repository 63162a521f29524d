package constant

// Fixed user-facing replies. The chat endpoint never surfaces a raw
// error; one of these strings always comes back instead.
const (
	ChatPersona = "You are an assistant for Olyphaunt Solutions."

	MsgInvalidInput = "Please enter a valid question."
	MsgUncertain    = "I'm not certain about that. Could you rephrase or provide more details?"
	MsgOffline      = "Olyph AI is currently offline or the model returned an error. Please try again later."
)
