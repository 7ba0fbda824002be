// Package voice provides the voice command interpreter and the speech
// recognition session lifecycle.
//
// The interpreter maps normalized speech transcripts to application
// commands (navigate, speak, scroll, toggle voice mode). It holds no
// mutable state beyond a registry of page descriptions and performs no
// I/O: executing the returned commands is the caller's job.
package voice

// Action identifies the kind of a voice command.
type Action string

const (
	// ActionNavigate navigates to Command.Path.
	ActionNavigate Action = "navigate"

	// ActionSpeak speaks Command.Text aloud.
	ActionSpeak Action = "speak"

	// ActionScroll scrolls the viewport in Command.Direction.
	ActionScroll Action = "scroll"

	// ActionSetVoiceEnabled enables or disables voice mode per
	// Command.Enabled.
	ActionSetVoiceEnabled Action = "set_voice_enabled"

	// ActionShowHelp shows the voice command help panel.
	ActionShowHelp Action = "show_help"
)

// ScrollDirection is the direction of an ActionScroll command.
type ScrollDirection string

const (
	ScrollUp   ScrollDirection = "up"
	ScrollDown ScrollDirection = "down"
)

// Command is a single discrete action derived from a recognized speech
// transcript. Only the fields relevant to its Action are set.
type Command struct {
	Action    Action
	Path      string
	Text      string
	Direction ScrollDirection
	Enabled   bool
}

// Navigate returns a command that navigates to the given path.
func Navigate(path string) Command {
	return Command{Action: ActionNavigate, Path: path}
}

// Speak returns a command that speaks the given text.
func Speak(text string) Command {
	return Command{Action: ActionSpeak, Text: text}
}

// Scroll returns a command that scrolls the viewport.
func Scroll(direction ScrollDirection) Command {
	return Command{Action: ActionScroll, Direction: direction}
}

// SetVoiceEnabled returns a command that toggles voice mode.
func SetVoiceEnabled(enabled bool) Command {
	return Command{Action: ActionSetVoiceEnabled, Enabled: enabled}
}

// ShowHelp returns a command that shows the help panel.
func ShowHelp() Command {
	return Command{Action: ActionShowHelp}
}
