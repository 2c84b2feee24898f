// Package server exposes the responder over HTTP for the Looply frontend.
package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/looply/lia/internal/responder"
)

const backendVersion = "clean_final_enhanced"

type Server struct {
	addr string
	bot  *responder.Responder

	// respond is the chat entry point; a field so tests can stand in for it.
	respond func(message string) string
}

func New(addr string, bot *responder.Responder) *Server {
	return &Server{addr: addr, bot: bot, respond: bot.Respond}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatReply struct {
	Reply      string         `json:"reply"`
	Source     string         `json:"source"`
	Confidence float64        `json:"confidence"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Handler builds the route table. Exposed separately from Run so tests can
// drive it with httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/chat", s.handleChat)
	mux.HandleFunc("/", s.handleStatus)
	return mux
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	return srv.ListenAndServe()
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	allowCrossOrigin(w)

	switch r.Method {
	case http.MethodOptions:
		preflight(w)
		return
	case http.MethodPost:
	default:
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	var body chatRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeChatError(w, "Sorry, I encountered an error: "+err.Error())
		return
	}
	if body.Message == "" {
		writeChatError(w, "Sorry, I encountered an error: missing message field")
		return
	}

	reply, ok := s.safeRespond(body.Message)
	if !ok {
		writeChatError(w, "Sorry, I encountered an error handling that message")
		return
	}
	writeJSON(w, http.StatusOK, chatReply{
		Reply:      reply,
		Source:     "looply_lia",
		Confidence: 0.9,
		Metadata: map[string]any{
			"backend_version":    backendVersion,
			"intelligence_level": s.bot.IntelligenceLevel(),
		},
	})
}

// safeRespond keeps a responder panic inside the transport boundary.
func (s *Server) safeRespond(message string) (reply string, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("respond panic: %v", rec)
			ok = false
		}
	}()
	return s.respond(message), true
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	allowCrossOrigin(w)

	if r.Method == http.MethodOptions {
		preflight(w)
		return
	}
	if r.URL.Path != "/" {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"name":               s.bot.Name(),
		"backend_version":    backendVersion,
		"intelligence_level": s.bot.IntelligenceLevel(),
	})
}

func writeChatError(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusInternalServerError, chatReply{
		Reply:      msg,
		Source:     "error",
		Confidence: 0.0,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func allowCrossOrigin(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// preflight answers an OPTIONS request with the allowances and no body.
func preflight(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.WriteHeader(http.StatusOK)
}
