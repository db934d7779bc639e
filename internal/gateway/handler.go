package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rimbac/edubot/internal/auth"
	"github.com/rimbac/edubot/internal/config"
	"github.com/rimbac/edubot/internal/router"
)

type inboundMessage struct {
	From  string `json:"from"`
	Text  string `json:"text"`
	Group bool   `json:"group"`
}

type outboundReply struct {
	Reply string `json:"reply"`
}

// Handler exposes the message router over HTTP to the transport bridge.
type Handler struct {
	router *router.Router
}

func NewHandler(r *router.Router) *Handler {
	return &Handler{router: r}
}

// Receive accepts one inbound message from the bridge and returns the bot
// reply. An empty reply maps to 204 so the bridge sends nothing.
func (h *Handler) Receive(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var msg inboundMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		log.WithError(err).Warn("Malformed inbound message")
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if msg.From == "" {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "from is required"})
		return
	}

	reply := h.router.Handle(r.Context(), msg.Text, msg.From, msg.Group)
	if reply == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	config.JSON(w, http.StatusOK, outboundReply{Reply: reply})
}

// Healthz reports process liveness for the bridge and orchestration.
func Healthz(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NewRouter builds the HTTP mux: a public health check and the
// bridge-authenticated message endpoint.
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", Healthz)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware)
		r.Post("/v1/messages", h.Receive)
	})

	return r
}
