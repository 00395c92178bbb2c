package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lordvidex/errs"
	"github.com/lordvidex/x/auth"
	"github.com/lordvidex/x/req"
	"github.com/lordvidex/x/resp"
	"github.com/rs/zerolog/log"

	"github.com/kodekulture/wordle/game"
	"github.com/kodekulture/wordle/handler/token"
	"github.com/kodekulture/wordle/service"
	"github.com/kodekulture/wordle/stats"
)

// Service is what the handlers need from service.Service.
type Service interface {
	NewSession(profile, answer string, difficult bool) (*service.Session, error)
	Session(id uuid.UUID) (*service.Session, error)
	Guess(ctx context.Context, id uuid.UUID, guess string) (game.PlayResponse, error)
	Hint(id uuid.UUID) (string, error)
	SetDifficult(id uuid.UUID, difficult bool) error
	DeleteSession(id uuid.UUID)
	Summary(ctx context.Context, profile string) (stats.Summary, error)
}

type Handler struct {
	s      *http.Server
	router chi.Router
	srv    Service
	token  token.Handler
}

func New(srv Service, tokenHandler token.Handler) *Handler {
	h := &Handler{
		router: chi.NewRouter(),
		srv:    srv,
		token:  tokenHandler,
	}
	h.setup()
	return h
}

func (h *Handler) Start(port string) error {
	h.s = &http.Server{Addr: ":" + port, Handler: h.router}
	return h.s.ListenAndServe()
}

func (h *Handler) Stop(ctx context.Context) error {
	if h.s == nil {
		return nil
	}
	return h.s.Shutdown(ctx)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) setup() {
	r := h.router
	// Public routes
	r.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Post("/game", h.createGame)
	})

	// Private routes
	r.Group(func(r chi.Router) {
		r.Use(h.authMiddleware)

		r.Get("/game", h.game)
		r.Delete("/game", h.deleteGame)
		r.Post("/game/guess", h.guess)
		r.Post("/game/hint", h.hint)
		r.Put("/game/difficult", h.difficult)
		r.Get("/stats", h.stats)
		r.Get("/live", h.live)
	})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

type newGameParams struct {
	Player    string `json:"player" validate:"required"`
	Difficult bool   `json:"difficult"`
	Answer    string `json:"answer"` // optional, a random answer is picked if empty
}

type newGameResponse struct {
	ID    string        `json:"id"`
	Token string        `json:"token"`
	Game  game.Response `json:"game"`
}

func (h *Handler) createGame(w http.ResponseWriter, r *http.Request) {
	var payload newGameParams
	defer r.Body.Close()
	if err := req.I.Will().Bind(r, &payload).Validate(payload).Err(); err != nil {
		resp.Error(w, err)
		return
	}
	sess, err := h.srv.NewSession(payload.Player, payload.Answer, payload.Difficult)
	if err != nil {
		resp.Error(w, toError(err))
		return
	}
	var tok auth.Token
	if tok, err = h.token.Generate(r.Context(), token.Claims{Session: sess.ID(), Profile: sess.Profile()}); err != nil {
		log.Err(err).Caller().Msg("failed to generate token")
		h.srv.DeleteSession(sess.ID())
		resp.Error(w, ErrInternal)
		return
	}
	resp.JSON(w, newGameResponse{
		ID:    sess.ID().String(),
		Token: string(tok),
		Game:  sess.Response(),
	})
}

func (h *Handler) game(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r.Context())
	if err != nil {
		resp.Error(w, err)
		return
	}
	resp.JSON(w, sess.Response())
}

func (h *Handler) deleteGame(w http.ResponseWriter, r *http.Request) {
	claims := Claims(r.Context())
	if claims == nil {
		resp.Error(w, ErrUnauthenticated)
		return
	}
	h.srv.DeleteSession(claims.Session)
	w.WriteHeader(http.StatusNoContent)
}

type guessParams struct {
	Word string `json:"word" validate:"required"`
}

func (h *Handler) guess(w http.ResponseWriter, r *http.Request) {
	var payload guessParams
	defer r.Body.Close()
	if err := req.I.Will().Bind(r, &payload).Validate(payload).Err(); err != nil {
		resp.Error(w, err)
		return
	}
	claims := Claims(r.Context())
	if claims == nil {
		resp.Error(w, ErrUnauthenticated)
		return
	}
	play, err := h.srv.Guess(r.Context(), claims.Session, payload.Word)
	if err != nil {
		resp.Error(w, toError(err))
		return
	}
	resp.JSON(w, play)
}

type hintResponse struct {
	Hint string `json:"hint"`
}

func (h *Handler) hint(w http.ResponseWriter, r *http.Request) {
	claims := Claims(r.Context())
	if claims == nil {
		resp.Error(w, ErrUnauthenticated)
		return
	}
	hint, err := h.srv.Hint(claims.Session)
	if err != nil {
		resp.Error(w, toError(err))
		return
	}
	resp.JSON(w, hintResponse{Hint: hint})
}

type difficultParams struct {
	Difficult bool `json:"difficult"`
}

func (h *Handler) difficult(w http.ResponseWriter, r *http.Request) {
	var payload difficultParams
	defer r.Body.Close()
	if err := req.I.Will().Bind(r, &payload).Err(); err != nil {
		resp.Error(w, err)
		return
	}
	sess, err := h.session(r.Context())
	if err != nil {
		resp.Error(w, err)
		return
	}
	if err = h.srv.SetDifficult(sess.ID(), payload.Difficult); err != nil {
		resp.Error(w, toError(err))
		return
	}
	resp.JSON(w, sess.Response())
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	claims := Claims(r.Context())
	if claims == nil {
		resp.Error(w, ErrUnauthenticated)
		return
	}
	sum, err := h.srv.Summary(r.Context(), claims.Profile)
	if err != nil {
		resp.Error(w, toError(err))
		return
	}
	resp.JSON(w, sum)
}

// session returns the session of the authenticated request.
func (h *Handler) session(ctx context.Context) (*service.Session, error) {
	claims := Claims(ctx)
	if claims == nil {
		return nil, ErrUnauthenticated
	}
	return h.srv.Session(claims.Session)
}

// toError gives game errors a code. Other errors already have one.
func toError(err error) error {
	var ge game.Error
	if errors.As(err, &ge) {
		return errs.B().Code(errs.InvalidArgument).Msg(ge.Error()).Err()
	}
	return err
}
