package voice_test

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sensetheworld/sensetheworld/internal/voice"
)

// fakeRecognizer records Start/Stop calls.
type fakeRecognizer struct {
	mu     sync.Mutex
	starts int
	stops  int
}

func (f *fakeRecognizer) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.starts++
	return nil
}

func (f *fakeRecognizer) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops++
}

func (f *fakeRecognizer) startCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.starts
}

func (f *fakeRecognizer) stopCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stops
}

func newTestSession(rec *fakeRecognizer, dispatch func([]voice.Command)) *voice.Session {
	return voice.NewSession(voice.SessionConfig{
		Recognizer:   rec,
		Interpreter:  voice.NewInterpreter(nil),
		Dispatch:     dispatch,
		RestartDelay: 10 * time.Millisecond,
		Logger:       zerolog.Nop(),
	})
}

func TestSession_EnableStartsRecognition(t *testing.T) {
	rec := &fakeRecognizer{}
	s := newTestSession(rec, nil)

	assert.Equal(t, voice.StateDisabled, s.State())

	require.NoError(t, s.Enable())
	assert.Equal(t, voice.StateListening, s.State())
	assert.Equal(t, 1, rec.startCount())

	// Enabling again is a no-op.
	require.NoError(t, s.Enable())
	assert.Equal(t, 1, rec.startCount())
}

func TestSession_DisableStopsRecognitionImmediately(t *testing.T) {
	rec := &fakeRecognizer{}
	s := newTestSession(rec, nil)

	require.NoError(t, s.Enable())
	s.Disable()

	assert.Equal(t, voice.StateDisabled, s.State())
	assert.Equal(t, 1, rec.stopCount())
	assert.False(t, s.Enabled())
}

func TestSession_TranscriptsDroppedWhileDisabled(t *testing.T) {
	rec := &fakeRecognizer{}
	var dispatched [][]voice.Command
	s := newTestSession(rec, func(cmds []voice.Command) {
		dispatched = append(dispatched, cmds)
	})

	s.OnTranscript("open profile", "/")
	assert.Empty(t, dispatched)

	require.NoError(t, s.Enable())
	s.OnTranscript("open profile", "/")
	require.Len(t, dispatched, 1)
}

func TestSession_PauseVoiceDisablesViaTranscript(t *testing.T) {
	rec := &fakeRecognizer{}
	s := newTestSession(rec, nil)

	require.NoError(t, s.Enable())
	s.OnTranscript("pause voice", "/")

	assert.Equal(t, voice.StateDisabled, s.State())
	assert.Equal(t, 1, rec.stopCount())

	// Further transcripts are suppressed until re-enabled.
	s.OnTranscript("open chat", "/")
	assert.Equal(t, 1, rec.startCount())
}

func TestSession_UnexpectedEndRestartsAfterDelay(t *testing.T) {
	rec := &fakeRecognizer{}
	s := newTestSession(rec, nil)

	require.NoError(t, s.Enable())
	s.OnRecognitionEnded()
	assert.Equal(t, voice.StateRestarting, s.State())

	// A second end event while restarting must not schedule another
	// restart.
	s.OnRecognitionEnded()

	assert.Eventually(t, func() bool {
		return s.State() == voice.StateListening
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 2, rec.startCount())
}

func TestSession_DisableWinsOverScheduledRestart(t *testing.T) {
	rec := &fakeRecognizer{}
	s := newTestSession(rec, nil)

	require.NoError(t, s.Enable())
	s.OnRecognitionEnded()
	s.Disable()

	assert.Equal(t, voice.StateDisabled, s.State())

	// Wait past the restart delay: the cancelled timer must not restart
	// recognition.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, voice.StateDisabled, s.State())
	assert.Equal(t, 1, rec.startCount())
}

func TestSession_EndEventWhileDisabledIsIgnored(t *testing.T) {
	rec := &fakeRecognizer{}
	s := newTestSession(rec, nil)

	s.OnRecognitionEnded()
	assert.Equal(t, voice.StateDisabled, s.State())

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 0, rec.startCount())
}
