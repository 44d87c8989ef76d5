package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/darkstore/rackplan/pkg/catalog"
	"github.com/darkstore/rackplan/pkg/errors"
	"github.com/darkstore/rackplan/pkg/pipeline"
	"github.com/darkstore/rackplan/pkg/plan"
	"github.com/darkstore/rackplan/pkg/render/floorplan"
	"github.com/darkstore/rackplan/pkg/report"
	"github.com/darkstore/rackplan/pkg/store"
)

// optimizeResponse is returned by POST /api/optimize.
type optimizeResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Score       float64       `json:"score"`
	PlacedRacks int           `json:"placed_racks"`
	TotalRacks  int           `json:"total_racks"`
	Cached      bool          `json:"cached"`
	Document    plan.Document `json:"document"`
	CreatedAt   time.Time     `json:"created_at"`
}

// solutionSummary is a list entry for GET /api/solutions.
type solutionSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Score       float64   `json:"score"`
	PlacedRacks int       `json:"placed_racks"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidScenario, "decode request: %v", err))
		return
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	doc := plan.NewDocument(result.Solution, result.Layout)
	rec := store.NewRecord(opts.Title, doc)
	if err := s.store.Put(r.Context(), rec); err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, optimizeResponse{
		ID:          rec.ID,
		Name:        rec.Name,
		Score:       result.Solution.Score,
		PlacedRacks: len(result.Solution.Placements),
		TotalRacks:  result.Stats.RackCount,
		Cached:      result.CacheInfo.OptimizeHit,
		Document:    doc,
		CreatedAt:   rec.CreatedAt,
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	summaries := make([]solutionSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, solutionSummary{
			ID:          rec.ID,
			Name:        rec.Name,
			Score:       rec.Document.Solution.Score,
			PlacedRacks: len(rec.Document.Solution.Racks),
			CreatedAt:   rec.CreatedAt,
		})
	}
	s.writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	layout, placements, err := s.materialize(rec)
	if err != nil {
		s.writeError(w, err)
		return
	}
	svg := floorplan.RenderSVG(layout, placements,
		floorplan.WithTitle(rec.Name),
		floorplan.WithScore(rec.Document.Solution.Score),
		floorplan.WithLegend())
	w.Header().Set("Content-Type", "image/svg+xml")
	if _, err := w.Write(svg); err != nil {
		s.logger.Error("write svg", "err", err)
	}
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	layout, err := rec.Document.ToLayout()
	if err != nil {
		s.writeError(w, err)
		return
	}
	sol, err := rec.Document.ToSolution()
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(report.Generate(sol, layout))); err != nil {
		s.logger.Error("write report", "err", err)
	}
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) materialize(rec store.Record) (layout catalog.Layout, placements []plan.Placement, err error) {
	layout, err = rec.Document.ToLayout()
	if err != nil {
		return layout, nil, err
	}
	placements, err = rec.Document.Placements()
	return layout, placements, err
}
