package login

// State is the login screen view-model. Handlers return a new State and
// never mutate the receiver.
type State struct {
	Email      string
	Password   string
	Submitting bool
	Err        error
}

// Submit starts a login attempt. ok is false while a previous attempt is
// still in flight; the state is then returned unchanged.
func (s State) Submit(email, password string) (next State, ok bool) {
	if s.Submitting {
		return s, false
	}
	s.Email = email
	s.Password = password
	s.Submitting = true
	s.Err = nil
	return s, true
}

// Resolve records the outcome of the attempt in flight. The typed fields
// are kept either way so a failed attempt can be retried.
func (s State) Resolve(err error) State {
	s.Submitting = false
	s.Err = err
	return s
}
