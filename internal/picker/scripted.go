package picker

// Response is one scripted answer for the Scripted picker.
type Response struct {
	// Text is the selection (for Pick) or the edited text (for Input).
	Text string

	// Abort reports that the user cancelled instead of answering.
	Abort bool
}

// Choose scripts a selection or text entry.
func Choose(text string) Response {
	return Response{Text: text}
}

// Abort scripts a cancelled picker.
func Abort() Response {
	return Response{Abort: true}
}

// Scripted replays queued responses in order. Once the queue is
// exhausted every call aborts, so command loops always terminate.
type Scripted struct {
	responses []Response
}

// NewScripted returns a picker that answers with the given responses.
func NewScripted(responses ...Response) *Scripted {
	return &Scripted{responses: responses}
}

// Pick returns the next scripted response.
func (s *Scripted) Pick(candidates []string, opts Options) (string, bool, error) {
	r := s.next()
	if r.Abort {
		return "", false, nil
	}
	return r.Text, true, nil
}

// Input returns the next scripted response.
func (s *Scripted) Input(opts Options) (string, bool, error) {
	r := s.next()
	if r.Abort {
		return "", false, nil
	}
	return r.Text, true, nil
}

func (s *Scripted) next() Response {
	if len(s.responses) == 0 {
		return Response{Abort: true}
	}
	r := s.responses[0]
	s.responses = s.responses[1:]
	return r
}
