package server

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/eradate/core/logger"
	"github.com/dmitrymomot/eradate/pkg/era"
)

type formatRequest struct {
	Layout string `query:"layout" validate:"required"`
	Date   string `query:"date" validate:"omitempty,datetime=2006-01-02"`
}

type parseRequest struct {
	Layout string `query:"layout" validate:"required"`
	Text   string `query:"text" validate:"required"`
}

type conversionResponse struct {
	Layout  string `json:"layout"`
	Text    string `json:"text"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Era     string `json:"era"`
	EraYear int    `json:"era_year"`
}

type eraResponse struct {
	Name       string `json:"name"`
	Abbr       string `json:"abbr"`
	Romaji     string `json:"romaji"`
	RomajiAbbr string `json:"romaji_abbr"`
	Start      string `json:"start"`
	End        string `json:"end,omitempty"`
}

type erasResponse struct {
	Eras []eraResponse `json:"eras"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("query")
	})
	return v
}

// validateRequest turns the first validation failure into a request error
// naming the query parameter.
func (s *Server) validateRequest(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	if fe.Tag() == "required" {
		return fmt.Errorf("%w: %s", ErrMissingParam, fe.Field())
	}
	return fmt.Errorf("%w: %s must be %s %s", ErrInvalidParam, fe.Field(), fe.Tag(), fe.Param())
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := formatRequest{Layout: q.Get("layout"), Date: q.Get("date")}
	if err := s.validateRequest(req); err != nil {
		writeError(w, r, s.log, err)
		return
	}

	d := s.now().UTC()
	if req.Date != "" {
		var err error
		if d, err = time.Parse(era.DateLayout, req.Date); err != nil {
			writeError(w, r, s.log, fmt.Errorf("%w: date: %w", ErrInvalidParam, err))
			return
		}
	}

	text := s.codec.Format(req.Layout, d)
	s.metrics.conversion("format", nil)

	t := s.codec.Wrap(d)
	writeJSON(w, http.StatusOK, conversionResponse{
		Layout:  req.Layout,
		Text:    text,
		Date:    d.Format(era.DateLayout),
		Time:    d.Format(time.RFC3339),
		Era:     t.Era().Name,
		EraYear: t.EraYear(),
	})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := parseRequest{Layout: q.Get("layout"), Text: q.Get("text")}
	if err := s.validateRequest(req); err != nil {
		writeError(w, r, s.log, err)
		return
	}

	t, err := s.codec.Parse(req.Layout, req.Text)
	s.metrics.conversion("parse", err)
	if err != nil {
		id, _ := RequestIDFromContext(r.Context())
		s.log.DebugContext(r.Context(), "conversion failed",
			logger.RequestID(id),
			logger.Action("parse"),
			logger.Layout(req.Layout),
			logger.Input(req.Text),
			logger.Result("error"),
			logger.Error(err),
		)
		writeError(w, r, s.log, err)
		return
	}

	writeJSON(w, http.StatusOK, conversionResponse{
		Layout:  req.Layout,
		Text:    req.Text,
		Date:    t.Format(era.DateLayout),
		Time:    t.Format(time.RFC3339),
		Era:     t.Era().Name,
		EraYear: t.EraYear(),
	})
}

func (s *Server) handleEras(w http.ResponseWriter, _ *http.Request) {
	table := s.codec.Table()
	eras := table.Eras()

	resp := erasResponse{Eras: make([]eraResponse, 0, len(eras))}
	for _, e := range eras {
		item := eraResponse{
			Name:       e.Name,
			Abbr:       e.Abbr,
			Romaji:     e.Romaji,
			RomajiAbbr: e.RomajiAbbr,
			Start:      e.Start.Format(era.DateLayout),
		}
		if end, ok := table.End(e); ok {
			item.End = end.Format(era.DateLayout)
		}
		resp.Eras = append(resp.Eras, item)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
