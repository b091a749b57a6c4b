// Package input turns the raw terminal byte stream into per-frame commands
// for the turret: pointer position, fire, restart and quit.
package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"
)

// keyHoldDuration is how long an aim key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// maxMouseReport bounds an SGR mouse report; longer runs are discarded.
const maxMouseReport = 32

// Pointer is a 1-based terminal cell reported by the mouse.
type Pointer struct {
	Col, Row int
}

// Input represents the current frame's input state.
type Input struct {
	Quit     bool
	Fire     bool // Space or left click since the last frame
	Restart  bool
	AimLeft  bool
	AimRight bool

	HasPointer bool
	Pointer    Pointer // Latest mouse position, valid when HasPointer

	Closed bool // The underlying reader is exhausted
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
}

// Stream delivers input bytes via a channel and keeps state between frames.
type Stream struct {
	ch      chan byte
	state   keyState
	pending []byte // Incomplete escape sequence carried into the next frame
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r io.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 256),
	}
	br := bufio.NewReader(r)
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream without blocking.
func ReadInput(s *Stream) Input {
	now := time.Now()
	buf := s.pending
	s.pending = nil

	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				continue
			}
			buf = append(buf, b)
			continue
		default:
		}
		break
	}

	in, rest := parse(buf, now, &s.state)
	if len(rest) > 0 {
		s.pending = append([]byte(nil), rest...)
	}
	in.Closed = s.closed
	return in
}

// parse decodes buf, updating held-key timestamps in state, and returns the
// frame's input plus any trailing incomplete escape sequence.
func parse(buf []byte, now time.Time, state *keyState) (Input, []byte) {
	var in Input
	var rest []byte

loop:
	for i := 0; i < len(buf); {
		b := buf[i]

		if b == '\x1b' && i+1 == len(buf) {
			rest = buf[i:]
			break loop
		}
		if b == '\x1b' && buf[i+1] == '[' {
			if i+2 >= len(buf) {
				rest = buf[i:]
				break loop
			}
			switch buf[i+2] {
			case 'C': // Right arrow
				state.right = now
				i += 3
				continue
			case 'D': // Left arrow
				state.left = now
				i += 3
				continue
			case 'A', 'B': // Up/down arrows do nothing
				i += 3
				continue
			case '<':
				n, ev, ok := parseMouse(buf[i+3:])
				if n == 0 {
					rest = buf[i:]
					break loop
				}
				if ok {
					in.HasPointer = true
					in.Pointer = ev.pointer
					if ev.leftPress {
						in.Fire = true
					}
				}
				i += 3 + n
				continue
			}
		}

		applyByte(&in, state, b, now)
		i++
	}

	in.AimLeft = now.Sub(state.left) < keyHoldDuration
	in.AimRight = now.Sub(state.right) < keyHoldDuration
	return in, rest
}

// applyByte handles a single plain key.
func applyByte(in *Input, state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		in.Quit = true
	case ' ':
		in.Fire = true
	case 'r', 'R':
		in.Restart = true
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	}
}

type mouseEvent struct {
	pointer   Pointer
	leftPress bool
}

// parseMouse decodes the body of an SGR mouse report ("b;col;row" followed
// by 'M' for press/motion or 'm' for release). It returns the number of
// bytes consumed, or 0 if the report is not complete yet.
func parseMouse(b []byte) (int, mouseEvent, bool) {
	end := -1
	for i, c := range b {
		if c == 'M' || c == 'm' {
			end = i
			break
		}
		if i >= maxMouseReport {
			return i, mouseEvent{}, false
		}
	}
	if end < 0 {
		return 0, mouseEvent{}, false
	}

	fields := strings.Split(string(b[:end]), ";")
	if len(fields) != 3 {
		return end + 1, mouseEvent{}, false
	}
	var nums [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return end + 1, mouseEvent{}, false
		}
		nums[i] = n
	}

	button := nums[0]
	motion := button&32 != 0
	return end + 1, mouseEvent{
		pointer:   Pointer{Col: nums[1], Row: nums[2]},
		leftPress: b[end] == 'M' && !motion && button&3 == 0 && button < 64,
	}, true
}
