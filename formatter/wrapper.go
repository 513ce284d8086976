package formatter

import (
	"github.com/theoremus-urban-solutions/transit-catalogue/domain"
	"github.com/theoremus-urban-solutions/transit-catalogue/requests"
)

// NotFoundMessage is reported for unknown buses, stops and unreachable routes.
const NotFoundMessage = "not found"

// UnsupportedMessage is reported for requests this service does not answer.
const UnsupportedMessage = "not supported"

// Response is the answer to one stat request. Exactly one of ErrorMessage,
// Bus, Stop, Route and Map is set.
type Response struct {
	RequestID    int
	Type         string
	Name         string
	From         string
	To           string
	ErrorMessage string
	Bus          *domain.BusStat
	Stop         *domain.StopStat
	Route        *domain.RouteInfo
	Map          string // SVG document
}

// WrapBus wraps bus statistics.
func WrapBus(id int, stat domain.BusStat) Response {
	return Response{RequestID: id, Type: requests.TypeBus, Name: stat.Name, Bus: &stat}
}

// WrapStop wraps stop statistics.
func WrapStop(id int, stat domain.StopStat) Response {
	return Response{RequestID: id, Type: requests.TypeStop, Name: stat.Name, Stop: &stat}
}

// WrapRoute wraps an itinerary.
func WrapRoute(id int, from, to string, info domain.RouteInfo) Response {
	return Response{RequestID: id, Type: requests.TypeRoute, From: from, To: to, Route: &info}
}

// WrapMap wraps a rendered SVG map.
func WrapMap(id int, svg string) Response {
	return Response{RequestID: id, Type: requests.TypeMap, Map: svg}
}

// WrapNotFound answers req with NotFoundMessage.
func WrapNotFound(req requests.StatRequest) Response {
	return wrapError(req, NotFoundMessage)
}

// WrapUnsupported answers req with UnsupportedMessage.
func WrapUnsupported(req requests.StatRequest) Response {
	return wrapError(req, UnsupportedMessage)
}

func wrapError(req requests.StatRequest, msg string) Response {
	return Response{
		RequestID:    req.ID,
		Type:         req.Type,
		Name:         req.Name,
		From:         req.From,
		To:           req.To,
		ErrorMessage: msg,
	}
}

// Failed reports whether the response carries an error message.
func (r Response) Failed() bool { return r.ErrorMessage != "" }

// fields returns the response as a generic tree shared by the JSON and
// protobuf encoders. Lists are []interface{} so structpb accepts them.
func (r Response) fields() map[string]interface{} {
	out := map[string]interface{}{"request_id": r.RequestID}
	switch {
	case r.Failed():
		out["error_message"] = r.ErrorMessage
	case r.Bus != nil:
		out["curvature"] = r.Bus.Curvature
		out["route_length"] = r.Bus.RouteLength
		out["stop_count"] = r.Bus.StopsOnRoute
		out["unique_stop_count"] = r.Bus.UniqueStops
	case r.Stop != nil:
		buses := make([]interface{}, 0, len(r.Stop.Buses))
		for _, b := range r.Stop.Buses {
			buses = append(buses, b)
		}
		out["buses"] = buses
	case r.Route != nil:
		items := make([]interface{}, 0, len(r.Route.Items))
		for _, it := range r.Route.Items {
			item := map[string]interface{}{
				"type": it.Kind.String(),
				"time": it.Time,
			}
			if it.Kind == domain.ItemWait {
				item["stop_name"] = it.StopName
			} else {
				item["bus"] = it.BusName
				item["span_count"] = it.SpanCount
			}
			items = append(items, item)
		}
		out["items"] = items
		out["total_time"] = r.Route.TotalTime
	case r.Map != "":
		out["map"] = r.Map
	}
	return out
}
