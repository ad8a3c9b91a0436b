// internal/httpserver/routes_game.go
//
// Game routes.
// JSON endpoints under /api:
//   - POST /api/game          → start today's game or resume the cookie's session
//   - GET  /api/game          → current session view (404 when none)
//   - POST /api/game/guess    → submit a guess
//   - POST /api/game/restart  → discard the session and start again
//   - GET  /api/today         → today's date and acronym (never the phrase)
// HTML:
//   - GET  /  → page for the current session (created on first visit)
//   - POST /  → form submission: guess=<text> or action=restart
//
// Sessions belong to a single calendar day. A cookie or stored session from an
// earlier day is ignored and a fresh session is started for today.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/proverbial/internal/daily"
	"github.com/robalobadob/proverbial/internal/game"
	"github.com/robalobadob/proverbial/internal/render"
	"github.com/robalobadob/proverbial/internal/store"
)

// restartNotice is attached to restarted sessions: selection is per day, so a
// restart replays today's puzzle instead of drawing a random one.
const restartNotice = "A new game has started. The proverb changes daily, so this is the same puzzle as before."

func (s *Server) mountAPI(r chi.Router) {
	r.Use(jsonContentType)
	r.Post("/game", s.handleStart)
	r.Get("/game", s.handleState)
	r.Post("/game/guess", s.handleGuess)
	r.Post("/game/restart", s.handleRestart)
	r.Get("/today", s.handleToday)
}

// ------------------------------ views --------------------------------------

type attemptRes struct {
	Words    []string      `json:"words"`
	Feedback game.Feedback `json:"feedback"`
}

// gameView is the JSON shape of a session. The phrase is only present once lost;
// the hint text travels only in the guess response that disclosed it.
type gameView struct {
	ID           string       `json:"id"`
	Date         string       `json:"date"`
	Acronym      string       `json:"acronym"`
	WordCount    int          `json:"wordCount"`
	AttemptsLeft int          `json:"attemptsLeft"`
	MaxAttempts  int          `json:"maxAttempts"`
	State        game.State   `json:"state"`
	Attempts     []attemptRes `json:"attempts"`
	HintUsed     bool         `json:"hintUsed"`
	Solution     string       `json:"solution,omitempty"`
	Notice       string       `json:"notice,omitempty"`
}

func viewOf(sess *game.Session) gameView {
	v := gameView{
		ID:           sess.ID,
		Date:         sess.Date,
		Acronym:      sess.Puzzle.Acronym,
		WordCount:    len(sess.Solution),
		AttemptsLeft: sess.AttemptsLeft,
		MaxAttempts:  game.MaxAttempts,
		State:        sess.State,
		Attempts:     make([]attemptRes, 0, len(sess.Guesses)),
		HintUsed:     sess.HintUsed,
		Solution:     sess.Reveal(),
	}
	for i, g := range sess.Guesses {
		v.Attempts = append(v.Attempts, attemptRes{Words: g, Feedback: sess.Feedbacks[i]})
	}
	return v
}

// --------------------------- session lookup --------------------------------

// current loads the cookie's session if it belongs to today.
// Returns store.ErrNotFound when there is none.
func (s *Server) current(r *http.Request) (*game.Session, error) {
	claims := s.sessionFromCookie(r)
	if claims == nil {
		return nil, store.ErrNotFound
	}
	today := daily.DateKey(s.clock())
	if claims.Date != today {
		return nil, store.ErrNotFound
	}
	sess, err := s.store.Get(r.Context(), claims.Subject)
	if err != nil {
		return nil, err
	}
	if sess.Date != today {
		return nil, store.ErrNotFound
	}
	return sess, nil
}

// start opens a fresh session for today, saves it, and sets the cookie.
func (s *Server) start(w http.ResponseWriter, r *http.Request) (*game.Session, error) {
	now := s.clock()
	sess, err := game.Start(now, s.puzzles)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		return nil, err
	}
	tok, exp, err := s.signSession(sess.ID, sess.Date, now)
	if err != nil {
		return nil, err
	}
	s.setSessionCookie(w, tok, exp)
	hlog.FromRequest(r).Info().Str("session", sess.ID).Str("date", sess.Date).
		Int("puzzle", sess.PuzzleIndex).Msg("session started")
	return sess, nil
}

// currentOrStart resumes today's session or starts one.
func (s *Server) currentOrStart(w http.ResponseWriter, r *http.Request) (*game.Session, error) {
	sess, err := s.current(r)
	if err == nil {
		return sess, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	return s.start(w, r)
}

// restart drops the cookie's session (if any) and starts a new one.
func (s *Server) restart(w http.ResponseWriter, r *http.Request) (*game.Session, error) {
	if claims := s.sessionFromCookie(r); claims != nil {
		unlock := s.locks.lock(claims.Subject)
		err := s.store.Delete(r.Context(), claims.Subject)
		unlock()
		if err != nil {
			return nil, err
		}
	}
	return s.start(w, r)
}

// submit applies guess to the cookie's session under its lock and saves it.
func (s *Server) submit(r *http.Request, guess string) (*game.Session, game.Outcome, error) {
	claims := s.sessionFromCookie(r)
	if claims == nil {
		return nil, game.Outcome{}, store.ErrNotFound
	}
	unlock := s.locks.lock(claims.Subject)
	defer unlock()

	sess, err := s.current(r)
	if err != nil {
		return nil, game.Outcome{}, err
	}
	out, err := sess.Submit(guess)
	if err != nil {
		return sess, out, err
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		return nil, game.Outcome{}, err
	}

	ev := hlog.FromRequest(r).Info().Str("session", sess.ID).Int("attempt", len(sess.Guesses)).
		Str("feedback", out.Feedback.Symbols()).Str("state", string(out.State))
	if out.Hint != "" {
		ev = ev.Bool("hint", true)
	}
	ev.Msg("guess recorded")
	return sess, out, nil
}

// ------------------------------- JSON --------------------------------------

// handleStart creates or resumes today's session.
func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	sess, err := s.currentOrStart(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(sess))
}

// handleState returns the current session without creating one.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sess, err := s.current(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(sess))
}

type guessReq struct {
	Guess string `json:"guess"`
}

type guessRes struct {
	Feedback     game.Feedback `json:"feedback"`
	Words        []string      `json:"words"`
	AttemptsLeft int           `json:"attemptsLeft"`
	State        game.State    `json:"state"` // "active" | "won" | "lost"
	Hint         string        `json:"hint,omitempty"`
	Solution     string        `json:"solution,omitempty"`
}

type mismatchRes struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Want    int    `json:"want"`
	Got     int    `json:"got"`
}

// handleGuess validates and applies a guess to the current session.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sess, out, err := s.submit(r, req.Guess)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, guessRes{
		Feedback:     out.Feedback,
		Words:        sess.Guesses[len(sess.Guesses)-1],
		AttemptsLeft: out.AttemptsLeft,
		State:        out.State,
		Hint:         out.Hint,
		Solution:     out.Solution,
	})
}

// handleRestart discards the session and starts today's puzzle again.
func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	sess, err := s.restart(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	v := viewOf(sess)
	v.Notice = restartNotice
	writeJSON(w, http.StatusOK, v)
}

type todayRes struct {
	Date      string `json:"date"`
	Acronym   string `json:"acronym"`
	WordCount int    `json:"wordCount"`
}

// handleToday reports today's acronym without touching sessions.
func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	now := s.clock()
	p, _, err := daily.Select(now, s.puzzles)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, todayRes{Date: daily.DateKey(now), Acronym: p.Acronym, WordCount: p.WordCount()})
}

// fail maps domain errors to JSON responses.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	var lm *game.LengthMismatchError
	switch {
	case errors.As(err, &lm):
		writeJSON(w, http.StatusBadRequest, mismatchRes{
			Error: "guess_length_mismatch", Message: lm.Message(), Want: lm.Want, Got: lm.Got,
		})
	case errors.Is(err, game.ErrGameOver):
		writeError(w, http.StatusConflict, "game_over")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "no_session")
	case errors.Is(err, daily.ErrInvalidConfiguration):
		hlog.FromRequest(r).Error().Err(err).Msg("no puzzles configured")
		writeError(w, http.StatusServiceUnavailable, "no_puzzles")
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "server_error")
	}
}

// ------------------------------- HTML --------------------------------------

// handlePage renders the page for the current (or a new) session.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sess, err := s.currentOrStart(w, r)
	if err != nil {
		s.failPage(w, r, err)
		return
	}
	s.renderPage(w, r, render.PageData{Session: sess})
}

// handlePageAction handles the guess and restart forms.
func (s *Server) handlePageAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	if r.PostForm.Get("action") == "restart" {
		sess, err := s.restart(w, r)
		if err != nil {
			s.failPage(w, r, err)
			return
		}
		s.renderPage(w, r, render.PageData{Session: sess, Notice: restartNotice})
		return
	}

	// A guess without a live session (first visit, expired cookie) starts one
	// and applies the guess to it.
	if _, err := s.current(r); errors.Is(err, store.ErrNotFound) {
		sess, err := s.start(w, r)
		if err != nil {
			s.failPage(w, r, err)
			return
		}
		r = withSessionCookie(r, s, sess)
	}

	data := render.PageData{}
	sess, out, err := s.submit(r, r.PostForm.Get("guess"))
	var lm *game.LengthMismatchError
	switch {
	case err == nil:
		data.Hint = out.Hint
	case errors.As(err, &lm):
		data.Warning = lm.Message()
	case errors.Is(err, game.ErrGameOver):
	default:
		s.failPage(w, r, err)
		return
	}
	data.Session = sess
	s.renderPage(w, r, data)
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, d render.PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.Page(w, d); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("render page")
	}
}

func (s *Server) failPage(w http.ResponseWriter, r *http.Request, err error) {
	hlog.FromRequest(r).Error().Err(err).Msg("page failed")
	status := http.StatusInternalServerError
	if errors.Is(err, daily.ErrInvalidConfiguration) {
		status = http.StatusServiceUnavailable
	}
	http.Error(w, http.StatusText(status), status)
}

// withSessionCookie returns a copy of r carrying a freshly signed cookie for
// sess, so the rest of the handler resolves the session just started.
func withSessionCookie(r *http.Request, s *Server, sess *game.Session) *http.Request {
	tok, _, err := s.signSession(sess.ID, sess.Date, s.clock())
	if err != nil {
		return r
	}
	r2 := r.Clone(r.Context())
	r2.Header.Del("Cookie")
	for _, c := range r.Cookies() {
		if c.Name != sessionCookieName {
			r2.AddCookie(c)
		}
	}
	r2.AddCookie(&http.Cookie{Name: sessionCookieName, Value: tok})
	return r2
}
