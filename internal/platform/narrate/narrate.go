// Package narrate queues short spoken phrases behind a single worker so
// callers never wait on the speech backend.
package narrate

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Speaker renders one phrase. Implementations may block; the Narrator's
// worker absorbs that.
type Speaker interface {
	Say(phrase string) error
}

// LogSpeaker is the default backend: it just logs each phrase. Real
// text-to-speech engines plug in behind the Speaker interface.
type LogSpeaker struct {
	Log zerolog.Logger
}

func (s LogSpeaker) Say(phrase string) error {
	s.Log.Info().Str("phrase", phrase).Msg("narration")
	return nil
}

// Narrator fans phrases into a buffered queue drained by one goroutine.
type Narrator struct {
	speaker Speaker
	log     zerolog.Logger
	queue   chan string
	done    chan struct{}
	closed  atomic.Bool
	once    sync.Once
}

// New starts the worker. buffer is the number of phrases that may be
// pending before Speak starts dropping.
func New(speaker Speaker, buffer int, log zerolog.Logger) *Narrator {
	if buffer < 1 {
		buffer = 1
	}
	n := &Narrator{
		speaker: speaker,
		log:     log,
		queue:   make(chan string, buffer),
		done:    make(chan struct{}),
	}
	go n.run()
	return n
}

func (n *Narrator) run() {
	defer close(n.done)
	for phrase := range n.queue {
		if err := n.speaker.Say(phrase); err != nil {
			n.log.Warn().Err(err).Str("phrase", phrase).Msg("narration failed")
		}
	}
}

// Speak enqueues a phrase without blocking. When the queue is full the
// phrase is dropped; narration is best-effort.
func (n *Narrator) Speak(phrase string) bool {
	if n.closed.Load() {
		return false
	}
	select {
	case n.queue <- phrase:
		return true
	default:
		n.log.Debug().Str("phrase", phrase).Msg("narration dropped")
		return false
	}
}

// Close stops accepting phrases, drains what is queued, and joins the
// worker. Safe to call more than once.
func (n *Narrator) Close() {
	n.once.Do(func() {
		n.closed.Store(true)
		close(n.queue)
	})
	<-n.done
}
