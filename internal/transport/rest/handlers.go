package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const maxBodyBytes = 4 << 10

type solveRequest struct {
	Board entity.Board `json:"board"`
}

type moveRequest struct {
	Board entity.Board `json:"board"`
	Move  entity.Move  `json:"move"`
}

type moveResponse struct {
	Board entity.Board `json:"board"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := decodeBody(w, r, &req); err != nil {
		that.writeError(w, http.StatusBadRequest, err)
		return
	}

	analysis, err := that.solver.Solve(r.Context(), req.Board)
	if err != nil {
		that.writeError(w, statusFor(err), err)
		return
	}

	that.writeJSON(w, http.StatusOK, analysis)
}

func (that *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decodeBody(w, r, &req); err != nil {
		that.writeError(w, http.StatusBadRequest, err)
		return
	}

	board, err := that.solver.Play(req.Board, req.Move)
	if err != nil {
		that.writeError(w, statusFor(err), err)
		return
	}

	that.writeJSON(w, http.StatusOK, moveResponse{Board: board})
}

func (that *Server) handleSelfPlay(w http.ResponseWriter, r *http.Request) {
	playout, err := that.solver.SelfPlay(r.Context())
	if err != nil {
		that.writeError(w, statusFor(err), err)
		return
	}

	that.writeJSON(w, http.StatusOK, playout)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	return decoder.Decode(dst)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidMove):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrInvalidCell), errors.Is(err, apperror.ErrMalformedBoard):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}
