package transitcatalogue

import (
	"encoding/json"
	"net/http"

	"github.com/theoremus-urban-solutions/transit-catalogue/utils"
)

type healthResponse struct {
	Status        string `json:"status"`
	Stops         int    `json:"stops"`
	Buses         int    `json:"buses"`
	LoadedAt      string `json:"loaded_at"`
	CheckedAt     string `json:"checked_at"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	CachedBodies  int    `json:"cached_bodies"`
	RequestID     string `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	cat := s.svc.Catalogue()
	resp := healthResponse{
		Status:        "ok",
		Stops:         cat.StopCount(),
		Buses:         cat.BusCount(),
		LoadedAt:      utils.Iso8601FromUnixSeconds(s.svc.LoadedAt().Unix()),
		CheckedAt:     utils.Iso8601Now(),
		UptimeSeconds: utils.UptimeSeconds(s.started),
		CachedBodies:  s.cache.Len(),
		RequestID:     RequestIDFromContext(r.Context()),
	}
	_ = json.NewEncoder(w).Encode(resp)
}
