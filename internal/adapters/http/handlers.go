package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/hint"
	"svw.info/sudoku-engine/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidateMove)
	mux.HandleFunc("/api/validate-grid", h.handleValidateGrid)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errResp struct {
	Error string `json:"error"`
}

func post(w http.ResponseWriter, r *http.Request, req any) bool {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errResp{Error: "method not allowed"})
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{Error: "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle,omitempty"`
	DurationMs int64          `json:"durationMs,omitempty"`
	Nodes      int            `json:"nodes,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if !post(w, r, &req) {
		return
	}
	diff, err := domain.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{Error: err.Error()})
		return
	}
	p, st, err := h.UC.Generate(r.Context(), req.Seed, diff)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, generateResp{
		Puzzle:     p,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Solve ----

type solveReq struct {
	Grid      domain.Grid `json:"grid"`
	TimeoutMs int64       `json:"timeoutMs,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if !post(w, r, &req) {
		return
	}
	res, err := h.UC.Solve(r.Context(), &req.Grid, time.Duration(req.TimeoutMs)*time.Millisecond)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ---- Validate ----

type validateMoveReq struct {
	Grid     domain.Grid  `json:"grid"`
	Original *domain.Grid `json:"original,omitempty"`
	Row      int          `json:"row"`
	Col      int          `json:"col"`
	Value    uint8        `json:"value"`
	Strict   bool         `json:"strict,omitempty"`
}

func (h *Handler) handleValidateMove(w http.ResponseWriter, r *http.Request) {
	var req validateMoveReq
	if !post(w, r, &req) {
		return
	}
	res, err := h.UC.ValidateMove(r.Context(), &req.Grid, req.Original, req.Row, req.Col, req.Value,
		domain.MoveOptions{StrictMode: req.Strict})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type validateGridReq struct {
	Grid domain.Grid `json:"grid"`
}

func (h *Handler) handleValidateGrid(w http.ResponseWriter, r *http.Request) {
	var req validateGridReq
	if !post(w, r, &req) {
		return
	}
	res, err := h.UC.ValidateGrid(r.Context(), &req.Grid)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ---- Hint ----

type hintReq struct {
	Grid       domain.Grid        `json:"grid"`
	Difficulty string             `json:"difficulty,omitempty"`
	Level      int                `json:"level"`
	Usage      domain.HintUsage   `json:"usage"`
	Excluded   []domain.Technique `json:"excluded,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hintReq
	if !post(w, r, &req) {
		return
	}
	diff, err := domain.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{Error: err.Error()})
		return
	}
	hh, err := h.UC.Hint(r.Context(), &req.Grid, diff, domain.HintLevel(req.Level), req.Usage, req.Excluded)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, hint.ErrLimitExceeded) {
			status = http.StatusForbidden
		}
		writeJSON(w, status, errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, hh)
}

// ---- Persistence ----

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var req domain.Puzzle
	if !post(w, r, &req) {
		return
	}
	if err := h.UC.Save(r.Context(), &req); err != nil {
		writeJSON(w, http.StatusInternalServerError, errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": req.ID})
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errResp{Error: "missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	metas, err := h.UC.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, metas)
}
