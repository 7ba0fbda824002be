package voice

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// State is the lifecycle state of a recognition session.
type State string

const (
	// StateDisabled means voice mode is off and no recognition runs.
	StateDisabled State = "disabled"

	// StateListening means recognition is active.
	StateListening State = "listening"

	// StateRestarting means the recognition provider ended unexpectedly
	// and a delayed restart is pending.
	StateRestarting State = "restarting"
)

// DefaultRestartDelay is how long a session waits before restarting
// recognition after an unexpected end, to avoid rapid restart loops.
const DefaultRestartDelay = 400 * time.Millisecond

// Recognizer is the external speech-recognition capability a session
// controls. Start begins emitting transcripts to the session's handler;
// Stop cancels recognition immediately.
type Recognizer interface {
	Start() error
	Stop()
}

// SessionConfig holds configuration for a recognition session.
type SessionConfig struct {
	// Recognizer is the speech-recognition capability (required).
	Recognizer Recognizer

	// Interpreter maps transcripts to commands (required).
	Interpreter *Interpreter

	// Dispatch receives the commands produced for each transcript.
	Dispatch func([]Command)

	// RestartDelay overrides DefaultRestartDelay.
	RestartDelay time.Duration

	// Logger for session transitions.
	Logger zerolog.Logger
}

// Session owns the enabled flag for voice mode and drives the
// recognition lifecycle: Disabled -> Listening on enable, Listening ->
// Restarting on an unexpected provider end, and back to Listening after
// a short delay. A disable request always wins over a scheduled restart.
//
// All methods are safe for interleaved calls from a single event loop;
// the mutex only guards against the restart timer firing concurrently.
type Session struct {
	recognizer   Recognizer
	interpreter  *Interpreter
	dispatch     func([]Command)
	restartDelay time.Duration
	logger       zerolog.Logger

	mu           sync.Mutex
	state        State
	restartTimer *time.Timer
}

// NewSession creates a new recognition session in the Disabled state.
func NewSession(cfg SessionConfig) *Session {
	restartDelay := cfg.RestartDelay
	if restartDelay == 0 {
		restartDelay = DefaultRestartDelay
	}

	dispatch := cfg.Dispatch
	if dispatch == nil {
		dispatch = func([]Command) {}
	}

	interpreter := cfg.Interpreter
	if interpreter == nil {
		interpreter = NewInterpreter(nil)
	}

	return &Session{
		recognizer:   cfg.Recognizer,
		interpreter:  interpreter,
		dispatch:     dispatch,
		restartDelay: restartDelay,
		logger:       cfg.Logger,
		state:        StateDisabled,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Enabled reports whether voice mode is on.
func (s *Session) Enabled() bool {
	return s.State() != StateDisabled
}

// Enable turns voice mode on and starts recognition. Enabling an already
// enabled session is a no-op.
func (s *Session) Enable() error {
	s.mu.Lock()
	if s.state != StateDisabled {
		s.mu.Unlock()
		return nil
	}
	s.state = StateListening
	s.mu.Unlock()

	s.logger.Debug().Msg("voice mode enabled")
	return s.recognizer.Start()
}

// Disable turns voice mode off. Any in-flight recognition is cancelled
// immediately and a pending restart is discarded; no auto-restart can
// follow a disable.
func (s *Session) Disable() {
	s.mu.Lock()
	if s.state == StateDisabled {
		s.mu.Unlock()
		return
	}
	s.state = StateDisabled
	if s.restartTimer != nil {
		s.restartTimer.Stop()
		s.restartTimer = nil
	}
	s.mu.Unlock()

	s.recognizer.Stop()
	s.logger.Debug().Msg("voice mode disabled")
}

// OnTranscript handles one recognized transcript. Transcripts received
// while voice mode is disabled are dropped entirely. Commands that toggle
// voice mode are applied to the session itself before being dispatched.
func (s *Session) OnTranscript(transcript, currentPath string) {
	s.mu.Lock()
	enabled := s.state != StateDisabled
	s.mu.Unlock()
	if !enabled {
		return
	}

	cmds := s.interpreter.Interpret(transcript, currentPath)
	if len(cmds) == 0 {
		return
	}

	for _, cmd := range cmds {
		if cmd.Action == ActionSetVoiceEnabled {
			if cmd.Enabled {
				_ = s.Enable()
			} else {
				s.Disable()
			}
		}
	}

	s.dispatch(cmds)
}

// OnRecognitionEnded handles an unexpected end of the underlying
// recognition session (e.g. a provider-side timeout). If voice mode is
// still enabled and no restart is already pending, a restart is
// scheduled after the configured delay.
func (s *Session) OnRecognitionEnded() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateListening {
		// Disabled, or a restart is already in progress.
		return
	}

	s.state = StateRestarting
	s.logger.Debug().
		Dur("delay", s.restartDelay).
		Msg("recognition ended unexpectedly, scheduling restart")

	s.restartTimer = time.AfterFunc(s.restartDelay, s.attemptRestart)
}

// attemptRestart re-enters Listening unless a disable won the race.
func (s *Session) attemptRestart() {
	s.mu.Lock()
	if s.state != StateRestarting {
		s.mu.Unlock()
		return
	}
	s.state = StateListening
	s.restartTimer = nil
	s.mu.Unlock()

	if err := s.recognizer.Start(); err != nil {
		s.logger.Warn().Err(err).Msg("recognition restart failed")
	}
}
