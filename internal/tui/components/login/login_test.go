package login

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/julianstephens/onetake/internal/nav"
	"github.com/julianstephens/onetake/internal/session"
	"github.com/julianstephens/onetake/internal/theme"
)

func TestStateSubmit(t *testing.T) {
	var s State
	next, ok := s.Submit("ana@onetake.com", "secret")
	if !ok || !next.Submitting {
		t.Fatalf("expected a submission to start, got %+v", next)
	}
	if s.Submitting {
		t.Error("Submit mutated the receiver")
	}

	again, ok := next.Submit("other@onetake.com", "x")
	if ok {
		t.Error("expected a second submit to be ignored while in flight")
	}
	if again.Email != "ana@onetake.com" {
		t.Errorf("ignored submit changed the email to %q", again.Email)
	}
}

func TestStateResolve(t *testing.T) {
	s, _ := State{}.Submit("ana@onetake.com", "secret")
	boom := errors.New("boom")

	failed := s.Resolve(boom)
	if failed.Submitting || !errors.Is(failed.Err, boom) {
		t.Errorf("expected failure recorded, got %+v", failed)
	}
	if failed.Email != "ana@onetake.com" || failed.Password != "secret" {
		t.Errorf("expected fields kept, got %+v", failed)
	}

	retry, ok := failed.Submit(failed.Email, failed.Password)
	if !ok || retry.Err != nil {
		t.Errorf("expected retry to clear the error, got %+v", retry)
	}
}

func newTestModel(auth session.Authenticator) (Model, *session.Store) {
	sess := session.NewStore(auth)
	return New(sess, theme.NewStore(theme.Dark)), sess
}

func TestSubmitSuccessReplacesWithDashboard(t *testing.T) {
	m, sess := newTestModel(session.StubAuthenticator{})
	m.fields.Email = "ana@onetake.com"
	m.fields.Password = "secret"

	m, _ = m.submit()
	if !m.State().Submitting {
		t.Fatal("expected submitting state")
	}

	// a second submit while in flight starts nothing
	if _, cmd := m.submit(); cmd != nil {
		t.Error("expected no command for a duplicate submit")
	}

	result := loginCmd(sess, "ana@onetake.com", "secret")()
	m, cmd := m.Update(result)
	if m.State().Submitting || m.State().Err != nil {
		t.Fatalf("unexpected state after success: %+v", m.State())
	}
	if !sess.IsAuthenticated() {
		t.Fatal("expected session to be authenticated")
	}
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg, ok := cmd().(nav.NavigateMsg)
	if !ok || msg.Target != nav.Dashboard || msg.Mode != nav.Replace {
		t.Errorf("expected Replace(Dashboard), got %#v", msg)
	}
}

func TestSubmitFailureKeepsFieldsAndShowsError(t *testing.T) {
	m, sess := newTestModel(session.RequireFields{Next: session.StubAuthenticator{}})
	m.fields.Email = "ana@onetake.com"

	m, _ = m.submit()
	result := loginCmd(sess, m.State().Email, m.State().Password)()
	m, _ = m.Update(result)

	if sess.IsAuthenticated() {
		t.Fatal("session authenticated after a failed login")
	}
	var authErr *session.AuthError
	if !errors.As(m.State().Err, &authErr) || !errors.Is(authErr, session.ErrMissingCredentials) {
		t.Fatalf("expected missing-credentials AuthError, got %v", m.State().Err)
	}
	if m.fields.Email != "ana@onetake.com" {
		t.Errorf("expected typed email kept, got %q", m.fields.Email)
	}
	if view := m.View(); !strings.Contains(view, authErr.UserMessage()) {
		t.Errorf("expected error message on screen, got:\n%s", view)
	}
}

func TestStaleResultIgnored(t *testing.T) {
	m, _ := newTestModel(session.StubAuthenticator{})
	m, cmd := m.Update(ResultMsg{Err: context.Canceled})
	if cmd != nil || m.State().Err != nil {
		t.Errorf("expected a result with nothing in flight to be ignored, got %+v", m.State())
	}
}
