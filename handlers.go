package transitcatalogue

import (
	"errors"
	"net/http"

	"github.com/golang/glog"

	"github.com/theoremus-urban-solutions/transit-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transit-catalogue/requests"
)

// Every endpoint answers with the same list shape POST /api/stat_requests uses.

func (s *Server) handleBuses(w http.ResponseWriter, r *http.Request) {
	s.serveList(w, r, "buses", s.svc.AllBuses)
}

func (s *Server) handleStops(w http.ResponseWriter, r *http.Request) {
	s.serveList(w, r, "stops", s.svc.AllStops)
}

func (s *Server) handleBus(w http.ResponseWriter, r *http.Request) {
	name, err := parseNameParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, formatter.FormatJSON, err.Error())
		return
	}
	s.serveAnswer(w, r, requests.StatRequest{Type: requests.TypeBus, Name: name}, "bus", name)
}

func (s *Server) handleStop(w http.ResponseWriter, r *http.Request) {
	name, err := parseNameParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, formatter.FormatJSON, err.Error())
		return
	}
	s.serveAnswer(w, r, requests.StatRequest{Type: requests.TypeStop, Name: name}, "stop", name)
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	format, err := parseFormat(r, s.defaultFormat)
	if err != nil {
		writeError(w, http.StatusBadRequest, formatter.FormatJSON, err.Error())
		return
	}
	from, to, err := parseRouteQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, format, err.Error())
		return
	}
	s.serveAnswer(w, r, requests.StatRequest{Type: requests.TypeRoute, From: from, To: to}, "route", from, to)
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	s.serveAnswer(w, r, requests.StatRequest{Type: requests.TypeMap}, "map")
}

// handleMapSVG serves the bare SVG document.
func (s *Server) handleMapSVG(w http.ResponseWriter, r *http.Request) {
	writeBody(w, http.StatusOK, "image/svg+xml", []byte(s.svc.Map()))
}

func (s *Server) handleStatRequests(w http.ResponseWriter, r *http.Request) {
	format, err := parseFormat(r, s.defaultFormat)
	if err != nil {
		writeError(w, http.StatusBadRequest, formatter.FormatJSON, err.Error())
		return
	}
	reqs, err := requests.DecodeStatRequests(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, format, err.Error())
		return
	}
	buf, ct, err := s.builder.Build(format, s.svc.AnswerAll(reqs))
	if err != nil {
		glog.Errorf("%s: build response: %v", RequestIDFromContext(r.Context()), err)
		writeError(w, http.StatusInternalServerError, format, err.Error())
		return
	}
	writeBody(w, http.StatusOK, ct, buf)
}

func (s *Server) serveList(w http.ResponseWriter, r *http.Request, kind string, list func() []formatter.Response) {
	format, err := parseFormat(r, s.defaultFormat)
	if err != nil {
		writeError(w, http.StatusBadRequest, formatter.FormatJSON, err.Error())
		return
	}
	buf, err := s.cache.GetOrBuild(s.cache.memoKey(kind, format), func() ([]byte, error) {
		b, _, err := s.builder.Build(format, list())
		return b, err
	})
	if err != nil {
		glog.Errorf("%s: build %s: %v", RequestIDFromContext(r.Context()), kind, err)
		writeError(w, http.StatusInternalServerError, format, err.Error())
		return
	}
	writeBody(w, http.StatusOK, formatter.ContentType(format), buf)
}

// serveAnswer answers a single request. Found answers are cached; not found
// answers are returned with status 404 and recomputed every time.
func (s *Server) serveAnswer(w http.ResponseWriter, r *http.Request, req requests.StatRequest, keyParts ...string) {
	format, err := parseFormat(r, s.defaultFormat)
	if err != nil {
		writeError(w, http.StatusBadRequest, formatter.FormatJSON, err.Error())
		return
	}
	key := s.cache.memoKey(append([]string{format}, keyParts...)...)
	if buf, ok := s.cache.Get(key); ok {
		writeBody(w, http.StatusOK, formatter.ContentType(format), buf)
		return
	}
	resp := s.svc.Answer(req)
	buf, ct, err := s.builder.Build(format, []formatter.Response{resp})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, formatter.ErrUnsupportedFormat) {
			status = http.StatusBadRequest
		}
		writeError(w, status, format, err.Error())
		return
	}
	status := http.StatusOK
	if resp.Failed() {
		status = http.StatusNotFound
	} else {
		s.cache.Put(key, buf)
	}
	writeBody(w, status, ct, buf)
}
