package voice

import "strings"

// Navigation paths the interpreter can target.
const (
	PathHome        = "/"
	PathProfile     = "/profile"
	PathCommunity   = "/community"
	PathChat        = "/chat"
	PathDestination = "/destination"
)

// ScrollOffset is the fixed viewport offset, in pixels, for scroll
// commands.
const ScrollOffset = 650

// FallbackPageDescription is spoken for "where am I" when the current
// path has no registered description.
const FallbackPageDescription = "This page does not have a description yet."

// helpText lists the supported commands, spoken on "help".
const helpText = "Here are some voice commands: Go home, open profile, " +
	"open community, open chat, scroll up, scroll down, where am I, " +
	"pause voice, resume voice."

// DefaultPageDescriptions maps application paths to the descriptions
// spoken for the "where am I" command.
func DefaultPageDescriptions() map[string]string {
	return map[string]string{
		"/":          "Home page. Explore travel recommendations, map, and features.",
		"/auth":      "Authentication page. Sign in or create an account.",
		"/profile":   "Profile page. View or edit your travel preferences and personal info.",
		"/community": "Community page. Connect with travelers and share experiences.",
		"/chat":      "Chat page. Speak with travel assistants and community members.",
	}
}

// Normalize prepares a raw transcript for matching: lowercase, strip
// every character that is not a lowercase letter or space, and trim
// surrounding whitespace. An empty result means there is nothing to
// interpret.
func Normalize(transcript string) string {
	lowered := strings.ToLower(transcript)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Interpreter maps speech transcripts to application commands.
type Interpreter struct {
	descriptions map[string]string
}

// NewInterpreter creates an interpreter using the given page description
// registry. A nil registry falls back to DefaultPageDescriptions.
func NewInterpreter(descriptions map[string]string) *Interpreter {
	if descriptions == nil {
		descriptions = DefaultPageDescriptions()
	}
	return &Interpreter{descriptions: descriptions}
}

// Describe returns the registered description for a path, or the
// fallback phrase when none is registered.
func (i *Interpreter) Describe(path string) string {
	if d, ok := i.descriptions[path]; ok {
		return d
	}
	return FallbackPageDescription
}

// Interpret maps a single transcript to zero or more commands, given the
// current navigation path. The transcript is normalized first; an empty
// normalized transcript or one with no recognized phrase yields nil.
//
// Matching is substring containment over independent checks, so one
// transcript may fire several commands. Pause and resume are terminal:
// nothing after them is considered.
func (i *Interpreter) Interpret(transcript, currentPath string) []Command {
	text := Normalize(transcript)
	if text == "" {
		return nil
	}

	var cmds []Command

	// Voice mode controls win over everything else.
	if strings.Contains(text, "pause voice") {
		return []Command{SetVoiceEnabled(false)}
	}

	if strings.Contains(text, "resume voice") || strings.Contains(text, "voice on") {
		return []Command{SetVoiceEnabled(true), Speak("Voice mode on")}
	}

	if strings.Contains(text, "help") {
		return []Command{Speak(helpText), ShowHelp()}
	}

	// Navigation.
	if strings.Contains(text, "go home") || strings.Contains(text, "open home") {
		cmds = append(cmds, Speak("Going home"), Navigate(PathHome))
	}

	if strings.Contains(text, "open profile") {
		cmds = append(cmds, Speak("Opening profile"), Navigate(PathProfile))
	}

	if strings.Contains(text, "open community") {
		cmds = append(cmds, Speak("Opening community"), Navigate(PathCommunity))
	}

	if strings.Contains(text, "open chat") {
		cmds = append(cmds, Speak("Opening chat"), Navigate(PathChat))
	}

	if strings.Contains(text, "open destination") {
		cmds = append(cmds, Speak("Opening destinations"), Navigate(PathDestination))
	}

	// Page description.
	if strings.Contains(text, "where am i") || strings.Contains(text, "describe page") {
		cmds = append(cmds, Speak(i.Describe(currentPath)))
	}

	// Scrolling.
	if strings.Contains(text, "scroll down") {
		cmds = append(cmds, Speak("Scrolling down"), Scroll(ScrollDown))
	}

	if strings.Contains(text, "scroll up") {
		cmds = append(cmds, Speak("Scrolling up"), Scroll(ScrollUp))
	}

	return cmds
}
