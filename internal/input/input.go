// Package input turns a raw terminal byte stream into per-frame controls.
package input

import (
	"bufio"
	"context"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals report repeats, never releases.
const keyHoldDuration = 80 * time.Millisecond

// escapeTimeout is how long a trailing ESC waits for the rest of an arrow
// sequence before it counts as a bare Escape.
const escapeTimeout = 100 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Left    bool // Held
	Right   bool // Held
	Fire    bool // Held
	Restart bool // Pressed this frame
	Quit    bool // Pressed this frame, or the stream ended
	Pressed []byte
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
	fire  time.Time

	pending []byte    // Unfinished escape sequence carried to the next read
	escAt   time.Time // When pending started
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch      chan byte
	stopped chan struct{} // Closed when the reader goroutine exits
	state   keyState
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The goroutine stops at the end of r or, once ctx is done, at the
// next byte it would deliver.
func StartStream(ctx context.Context, r *bufio.Reader) *Stream {
	s := &Stream{
		ch:      make(chan byte, 128),
		stopped: make(chan struct{}),
	}
	go func() {
		defer close(s.stopped)
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			select {
			case s.ch <- b:
			case <-ctx.Done():
				return
			}
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream (non-blocking).
func ReadInput(s *Stream) Input {
	return s.Read(time.Now())
}

// Read drains the stream and builds the input as seen at now.
func (s *Stream) Read(now time.Time) Input {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := s.state.apply(buf, now)
	if s.closed {
		in.Quit = true
	}
	return in
}

// apply updates the key state from buf and returns the resulting input.
// An escape sequence cut off at the end of buf is kept and completed by the
// next call. A lone ESC quits once escapeTimeout passes with nothing after it,
// or right away when another byte that cannot continue a sequence follows.
func (st *keyState) apply(buf []byte, now time.Time) Input {
	var in Input

	escStart := now
	if len(st.pending) > 0 {
		buf = append(st.pending, buf...)
		escStart = st.escAt
		st.pending = nil
	}
	st.escAt = time.Time{}

scan:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			switch {
			case i+1 == len(buf), i+2 == len(buf) && buf[i+1] == '[':
				st.pending = append([]byte(nil), buf[i:]...)
				st.escAt = now
				if i == 0 {
					st.escAt = escStart
				}
				break scan
			case buf[i+1] == '[':
				// CSI sequence: ESC [ <code>
				switch buf[i+2] {
				case 'C': // Right arrow
					st.right = now
				case 'D': // Left arrow
					st.left = now
				}
				i += 2
			default:
				in.Quit = true
			}
			continue
		}

		switch b {
		case 'a', 'A', 'h', 'H':
			st.left = now
		case 'd', 'D', 'l', 'L':
			st.right = now
		case ' ':
			st.fire = now
		case 'r', 'R':
			in.Restart = true
		case 'q', 'Q', 3: // 3 is Ctrl+C in raw mode
			in.Quit = true
		}
	}

	if len(st.pending) > 0 && now.Sub(st.escAt) >= escapeTimeout {
		if len(st.pending) == 1 {
			in.Quit = true
		}
		st.pending = nil
		st.escAt = time.Time{}
	}

	in.Left = now.Sub(st.left) < keyHoldDuration
	in.Right = now.Sub(st.right) < keyHoldDuration
	in.Fire = now.Sub(st.fire) < keyHoldDuration
	in.Pressed = buf
	return in
}
