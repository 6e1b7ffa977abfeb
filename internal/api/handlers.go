package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/lakeview-games/fishbot/internal/game"
)

type idRequest struct {
	TelegramID int64 `json:"telegram_id"`
}

type upgradeRequest struct {
	TelegramID int64  `json:"telegram_id"`
	ItemID     string `json:"item_id"`
}

func (s *Server) handleInit(w http.ResponseWriter, r *http.Request) {
	var req game.InitRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := s.svc.Init(r.Context(), req)
	if err != nil {
		s.fail(w, "init", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleFish(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := s.svc.Fish(r.Context(), req.TelegramID)
	if err != nil {
		s.fail(w, "fish", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	var req upgradeRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := s.svc.Upgrade(r.Context(), req.TelegramID, req.ItemID)
	if err != nil {
		s.fail(w, "upgrade", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAdReward(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := s.svc.AdReward(r.Context(), req.TelegramID)
	if err != nil {
		s.fail(w, "ad_reward", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	metric := q.Get("type")
	if metric == "" {
		metric = "balance"
	}
	period := q.Get("period")
	if period == "" {
		period = "all"
	}

	// degraded internally on storage failure, never an error here
	writeJSON(w, http.StatusOK, s.svc.Leaderboard(r.Context(), metric, period))
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "bad request"})
		return false
	}
	return true
}

// fail maps engine errors onto the transport: unknown players are a 404
// with success=false, anything else is fatal for this request.
func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, game.ErrPlayerNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false})
		return
	}
	s.log.Error("request failed", err, zap.String("op", op))
	writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
