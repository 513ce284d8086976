package formatter

import (
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/transit-catalogue/domain"
	"github.com/theoremus-urban-solutions/transit-catalogue/utils"
)

// BuildXML serializes responses to XML
func (rb *ResponseBuilder) BuildXML(res []Response) []byte {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>")
	b.WriteString("<Responses>")
	for _, r := range res {
		switch {
		case r.Failed():
			writeErrorXML(&b, r)
		case r.Bus != nil:
			writeBusXML(&b, r.RequestID, *r.Bus)
		case r.Stop != nil:
			writeStopXML(&b, r.RequestID, *r.Stop)
		case r.Route != nil:
			writeRouteXML(&b, r)
		case r.Map != "":
			b.WriteString("<MapResponse>")
			writeInt(&b, "RequestId", r.RequestID)
			writeElement(&b, "Map", r.Map)
			b.WriteString("</MapResponse>")
		}
	}
	b.WriteString("</Responses>")
	return []byte(b.String())
}

func writeElement(b *strings.Builder, name, value string) {
	b.WriteString("<")
	b.WriteString(name)
	b.WriteString(">")
	b.WriteString(utils.EscapeXML(value))
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")
}

func writeFloat(b *strings.Builder, name string, v float64) {
	writeElement(b, name, strconv.FormatFloat(v, 'f', -1, 64))
}

func writeInt(b *strings.Builder, name string, v int) {
	writeElement(b, name, strconv.Itoa(v))
}

func writeErrorXML(b *strings.Builder, r Response) {
	b.WriteString("<ErrorResponse>")
	writeInt(b, "RequestId", r.RequestID)
	if r.Type != "" {
		writeElement(b, "Type", r.Type)
	}
	writeElement(b, "ErrorMessage", r.ErrorMessage)
	b.WriteString("</ErrorResponse>")
}

func writeBusXML(b *strings.Builder, id int, stat domain.BusStat) {
	b.WriteString("<BusResponse>")
	writeInt(b, "RequestId", id)
	writeElement(b, "Name", stat.Name)
	writeInt(b, "StopCount", stat.StopsOnRoute)
	writeInt(b, "UniqueStopCount", stat.UniqueStops)
	writeInt(b, "RouteLength", stat.RouteLength)
	writeFloat(b, "Curvature", stat.Curvature)
	if stat.FirstStopName != "" {
		writeElement(b, "FirstStop", stat.FirstStopName)
	}
	if stat.FinalStopName != "" {
		writeElement(b, "FinalStop", stat.FinalStopName)
	}
	b.WriteString("</BusResponse>")
}

func writeStopXML(b *strings.Builder, id int, stat domain.StopStat) {
	b.WriteString("<StopResponse>")
	writeInt(b, "RequestId", id)
	writeElement(b, "Name", stat.Name)
	b.WriteString("<Location>")
	writeElement(b, "Latitude", strconv.FormatFloat(stat.Coordinates.Lat, 'f', 6, 64))
	writeElement(b, "Longitude", strconv.FormatFloat(stat.Coordinates.Lng, 'f', 6, 64))
	b.WriteString("</Location>")
	b.WriteString("<Buses>")
	for _, bus := range stat.Buses {
		writeElement(b, "Bus", bus)
	}
	b.WriteString("</Buses>")
	b.WriteString("</StopResponse>")
}

func writeRouteXML(b *strings.Builder, r Response) {
	b.WriteString("<RouteResponse>")
	writeInt(b, "RequestId", r.RequestID)
	if r.From != "" {
		writeElement(b, "From", r.From)
	}
	if r.To != "" {
		writeElement(b, "To", r.To)
	}
	writeFloat(b, "TotalTime", r.Route.TotalTime)
	b.WriteString("<Items>")
	for _, it := range r.Route.Items {
		if it.Kind == domain.ItemWait {
			b.WriteString("<Wait>")
			writeElement(b, "StopName", it.StopName)
			writeFloat(b, "Time", it.Time)
			b.WriteString("</Wait>")
			continue
		}
		b.WriteString("<Ride>")
		writeElement(b, "Bus", it.BusName)
		writeInt(b, "SpanCount", it.SpanCount)
		writeFloat(b, "Time", it.Time)
		b.WriteString("</Ride>")
	}
	b.WriteString("</Items>")
	b.WriteString("</RouteResponse>")
}
