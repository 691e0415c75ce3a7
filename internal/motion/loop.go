package motion

import (
	"context"
	"sync"
	"time"
)

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 60

// Frame is a single display-refresh tick.
type Frame struct {
	Time time.Time
}

// Loop emits frames at a fixed interval until stopped. It is the only
// goroutine in the program besides the UI loop and shares nothing with it
// beyond the frames channel.
type Loop struct {
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once

	frames chan Frame
	wg     sync.WaitGroup
}

// IntervalForFPS converts a frame rate to a tick interval.
func IntervalForFPS(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// NewLoop starts a frame loop ticking every interval.
func NewLoop(interval time.Duration) *Loop {
	if interval <= 0 {
		interval = IntervalForFPS(DefaultFPS)
	}
	ctx, cancel := context.WithCancel(context.Background())
	l := &Loop{
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		frames:   make(chan Frame, 1),
	}
	l.wg.Add(1)
	go l.run()
	go func() {
		l.wg.Wait()
		close(l.frames)
	}()
	return l
}

// Frames returns the frame channel. It is closed once the loop has stopped.
func (l *Loop) Frames() <-chan Frame {
	return l.frames
}

// Interval returns the tick interval.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Stop cancels the loop. Only the first call cancels; it reports whether this
// call was the one that did.
func (l *Loop) Stop() bool {
	if l == nil {
		return false
	}
	stopped := false
	l.once.Do(func() {
		l.cancel()
		stopped = true
	})
	return stopped
}

// Wait blocks until the loop goroutine has exited. The frame channel closes
// shortly after.
func (l *Loop) Wait() {
	l.wg.Wait()
}

func (l *Loop) run() {
	defer l.wg.Done()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.ctx.Done():
			return
		case now := <-ticker.C:
			// a consumer that is still busy with the previous frame skips this one
			select {
			case l.frames <- Frame{Time: now}:
			default:
			}
		}
	}
}
