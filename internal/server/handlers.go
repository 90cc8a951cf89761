package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/airpower-calculator/internal/loadout"
	"github.com/jonathan/airpower-calculator/internal/registry"
	"github.com/jonathan/airpower-calculator/internal/server/middleware"
	"github.com/jonathan/airpower-calculator/internal/types"
	"go.uber.org/zap"
)

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListAircraft returns every aircraft template in load order
func (s *Server) handleListAircraft(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.registry.Dump().Aircraft)
}

// handleListShips returns every ship template in load order
func (s *Server) handleListShips(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.registry.Dump().Ships)
}

// handleGetShip returns the snapshot of a freshly built ship
func (s *Server) handleGetShip(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if _, ok := s.registry.ShipTemplate(name); !ok {
		err := &registry.NotFoundError{Kind: "ship", Name: name}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.registry.Ship(name).Snapshot())
}

// handleMastery scores the loadout in the request body
func (s *Server) handleMastery(w http.ResponseWriter, r *http.Request) {
	var l types.Loadout
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.UseNumber()
	if err := decoder.Decode(&l); err != nil {
		err := &ErrValidation{Field: "body", Message: err.Error()}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := l.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	eval, err := loadout.Evaluate(s.registry, l, loadout.Options{DefaultMode: s.defaultMode})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	fields := []zap.Field{
		zap.String("evaluation_id", eval.ID),
		zap.String("mode", string(eval.Report.Mode)),
		zap.Int("total", eval.Report.Total),
	}
	if subject, err := middleware.GetSubject(r); err == nil {
		fields = append(fields, zap.String("subject", subject))
	}
	s.logger.Debug("mastery evaluated", fields...)

	s.jsonResponse(w, http.StatusOK, eval)
}
