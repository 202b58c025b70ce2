package raw

import (
	"io"
	"time"

	"github.com/vovakirdan/walker/internal/ansi"
)

// EscTimeout is how long a lone ESC waits for the rest of a sequence
// before it is reported as the Escape key.
const EscTimeout = 50 * time.Millisecond

// readInput copies chunks from in to the returned channel until in fails
// or done is closed. The channel is closed on EOF or error.
func readInput(in io.Reader, done <-chan struct{}) <-chan []byte {
	out := make(chan []byte, 16)
	go func() {
		defer close(out)
		buf := make([]byte, 256)
		for {
			n, err := in.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				select {
				case out <- chunk:
				case <-done:
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return out
}

// keyStream wraps a Decoder with the ESC disambiguation timer.
// C is non-nil only while a partial sequence is buffered.
type keyStream struct {
	dec     ansi.Decoder
	timeout time.Duration
	timer   *time.Timer
	C       <-chan time.Time
}

func newKeyStream(timeout time.Duration) *keyStream {
	if timeout <= 0 {
		timeout = EscTimeout
	}
	return &keyStream{timeout: timeout}
}

// feed decodes data and arms the timer if bytes are left over.
func (k *keyStream) feed(data []byte) []ansi.Event {
	events := k.dec.Feed(data)
	k.arm()
	return events
}

// expire resolves the buffered bytes after the timer fired or input ended.
func (k *keyStream) expire() []ansi.Event {
	k.C = nil
	return k.dec.Flush()
}

func (k *keyStream) arm() {
	if !k.dec.Pending() {
		k.stop()
		return
	}
	if k.timer == nil {
		k.timer = time.NewTimer(k.timeout)
	} else {
		k.timer.Reset(k.timeout)
	}
	k.C = k.timer.C
}

func (k *keyStream) stop() {
	if k.timer != nil {
		k.timer.Stop()
	}
	k.C = nil
}
