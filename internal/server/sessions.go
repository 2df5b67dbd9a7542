package server

import "github.com/winapp/winapp-cli/internal/session"

// sessionFor returns the held session for app, connecting one if needed.
// Callers must hold s.mu.
func (s *Server) sessionFor(app string) (*session.Session, error) {
	if sess, ok := s.sessions[app]; ok {
		return sess, nil
	}
	sess, err := session.Connect(s.driver, s.registry, app)
	if err != nil {
		return nil, err
	}
	s.sessions[app] = sess
	return sess, nil
}

// dropSession disconnects and forgets the session for app. Dropping an app
// with no session is not an error. Callers must hold s.mu.
func (s *Server) dropSession(app string) error {
	sess, ok := s.sessions[app]
	if !ok {
		return nil
	}
	delete(s.sessions, app)
	return sess.Disconnect()
}

// Close releases every held session. Used on server shutdown and in tests.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for app, sess := range s.sessions {
		_ = sess.Disconnect()
		delete(s.sessions, app)
	}
}
