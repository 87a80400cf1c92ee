// Package server exposes the wizard over HTTP for the local UI. One case
// per process; the controller serializes all mutation.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/joelkehle/trustreply/internal/notice"
	"github.com/joelkehle/trustreply/internal/wizard"
)

// Uploads larger than this are rejected before extraction.
const maxUploadBytes = 20 << 20

// LetterPDFRenderer renders the finished letter to a paged PDF.
type LetterPDFRenderer interface {
	Render(ctx context.Context, letter string) ([]byte, error)
}

type Server struct {
	wiz      *wizard.Controller
	renderer LetterPDFRenderer
}

func NewServer(wiz *wizard.Controller, renderer LetterPDFRenderer) http.Handler {
	s := &Server{wiz: wiz, renderer: renderer}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/case", s.handleCase)
	mux.HandleFunc("/api/notice", s.handleNotice)
	mux.HandleFunc("/api/case/details", s.handleDetails)
	mux.HandleFunc("/api/case/facts", s.handleFacts)
	mux.HandleFunc("/api/case/csr", s.handleCSR)
	mux.HandleFunc("/api/case/context", s.handleContext)
	mux.HandleFunc("/api/case/clauses/restore", s.handleClausesRestore)
	mux.HandleFunc("/api/case/clauses/", s.handleClause)
	mux.HandleFunc("/api/case/activities", s.handleActivities)
	mux.HandleFunc("/api/case/activities/", s.handleActivity)
	mux.HandleFunc("/api/case/advance", s.handleAdvance)
	mux.HandleFunc("/api/case/back", s.handleBack)
	mux.HandleFunc("/api/generate", s.handleGenerate)
	mux.HandleFunc("/api/reply", s.handleReply)
	mux.HandleFunc("/api/reply.pdf", s.handleReplyPDF)
	mux.HandleFunc("/api/reset", s.handleReset)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

// writeWizardError maps controller failures to HTTP statuses.
func writeWizardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, wizard.ErrBusy):
		writeError(w, http.StatusConflict, "another request is in progress")
	case errors.Is(err, wizard.ErrUnreachable):
		writeError(w, http.StatusServiceUnavailable, "model API unreachable")
	case errors.Is(err, wizard.ErrWrongStep):
		writeError(w, http.StatusConflict, "action not available in this step")
	case errors.Is(err, notice.ErrClauseNotFound):
		writeError(w, http.StatusNotFound, "no such row")
	default:
		log.Printf("wizard request failed: %v", err)
		writeError(w, http.StatusBadGateway, err.Error())
	}
}

func (s *Server) caseView() map[string]any {
	return map[string]any{
		"step": s.wiz.Step(),
		"case": s.wiz.Case(),
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reachable": s.wiz.Reachable(r.Context())})
}

func (s *Server) handleCase(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.caseView())
}

func (s *Server) handleNotice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart upload")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil || len(data) == 0 || len(data) > maxUploadBytes {
		writeError(w, http.StatusBadRequest, "unreadable or oversized upload")
		return
	}
	if err := s.wiz.Upload(r.Context(), data, header.Header.Get("Content-Type")); err != nil {
		writeWizardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.caseView())
}

func (s *Server) handleDetails(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		TrustName  string `json:"trust_name"`
		PAN        string `json:"pan"`
		DIN        string `json:"din"`
		NoticeDate string `json:"notice_date"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	s.wiz.SetDetails(body.TrustName, body.PAN, body.DIN, body.NoticeDate)
	writeJSON(w, http.StatusOK, s.caseView())
}

func (s *Server) handleFacts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var facts notice.Facts
	if !decodeBody(w, r, &facts) {
		return
	}
	s.wiz.SetFacts(facts)
	writeJSON(w, http.StatusOK, s.caseView())
}

func (s *Server) handleCSR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		CSRReceived bool `json:"csr_received"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	s.wiz.SetCSRReceived(body.CSRReceived)
	writeJSON(w, http.StatusOK, s.caseView())
}

func (s *Server) handleContext(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Text string `json:"text"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	s.wiz.SetSupplementaryContext(body.Text)
	writeJSON(w, http.StatusOK, s.caseView())
}

func (s *Server) handleClausesRestore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.wiz.RestoreDefaultClauses()
	writeJSON(w, http.StatusOK, s.caseView())
}

func (s *Server) handleClause(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/case/clauses/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodPut:
		var body struct {
			Text string `json:"text"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		if err := s.wiz.EditClause(id, body.Text); err != nil {
			writeWizardError(w, err)
			return
		}
	case http.MethodDelete:
		if err := s.wiz.DeleteClause(id); err != nil {
			writeWizardError(w, err)
			return
		}
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.caseView())
}

func (s *Server) handleActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	row := s.wiz.AppendActivity()
	writeJSON(w, http.StatusOK, map[string]any{"row": row})
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/case/activities/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodPut:
		var row notice.ActivityRow
		if !decodeBody(w, r, &row) {
			return
		}
		row.ID = id
		if err := s.wiz.UpdateActivity(row); err != nil {
			writeWizardError(w, err)
			return
		}
	case http.MethodDelete:
		if err := s.wiz.DeleteActivity(id); err != nil {
			writeWizardError(w, err)
			return
		}
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.caseView())
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := s.wiz.Advance(); err != nil {
		writeWizardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.caseView())
}

func (s *Server) handleBack(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := s.wiz.Back(); err != nil {
		writeWizardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.caseView())
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	text, err := s.wiz.Generate(r.Context())
	if err != nil {
		writeWizardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reply": text, "step": s.wiz.Step()})
}

func (s *Server) handleReply(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Text string `json:"text"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if err := s.wiz.SetReply(body.Text); err != nil {
		writeWizardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.caseView())
}

func (s *Server) handleReplyPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	letter := s.wiz.Case().Reply
	if strings.TrimSpace(letter) == "" {
		writeError(w, http.StatusConflict, "no reply has been generated")
		return
	}
	pdf, err := s.renderer.Render(r.Context(), letter)
	if err != nil {
		log.Printf("render reply pdf: %v", err)
		writeError(w, http.StatusInternalServerError, "pdf rendering failed")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="notice-reply.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := s.wiz.Reset(r.Context()); err != nil {
		writeWizardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.caseView())
}
