package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	StateChanged <-chan StateChange
	VideoChanged <-chan VideoChange
	Done         <-chan struct{}

	// Internal write channels
	stateCh chan StateChange
	videoCh chan VideoChange
	doneCh  chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		stateCh: make(chan StateChange, eventBufferSize),
		videoCh: make(chan VideoChange, eventBufferSize),
		doneCh:  make(chan struct{}),
	}
	s.StateChanged = s.stateCh
	s.VideoChanged = s.videoCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// sendState sends a state change event (non-blocking).
func (s *Subscription) sendState(e StateChange) {
	select {
	case s.stateCh <- e:
	default:
		// Drop if buffer full
	}
}

// sendVideo sends a video change event (non-blocking).
func (s *Subscription) sendVideo(e VideoChange) {
	select {
	case s.videoCh <- e:
	default:
	}
}
