package formatter

import (
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/transit-catalogue/domain"
	"github.com/theoremus-urban-solutions/transit-catalogue/requests"
	"github.com/theoremus-urban-solutions/transit-catalogue/utils"
)

// BuildText renders responses as console lines, one answer per line except
// itineraries, whose items follow on indented lines.
func (rb *ResponseBuilder) BuildText(res []Response) []byte {
	var b strings.Builder
	for _, r := range res {
		writeText(&b, r)
	}
	return []byte(b.String())
}

func writeText(b *strings.Builder, r Response) {
	switch r.Type {
	case requests.TypeRoute:
		b.WriteString("Route " + r.From + " > " + r.To + ": ")
	case requests.TypeMap:
		if r.Map != "" && !r.Failed() {
			b.WriteString("Map:\n" + r.Map + "\n")
			return
		}
		b.WriteString("Map: ")
	default:
		b.WriteString(r.Type + " " + r.Name + ": ")
	}

	switch {
	case r.Failed():
		b.WriteString(r.ErrorMessage)
	case r.Bus != nil:
		b.WriteString(strconv.Itoa(r.Bus.StopsOnRoute) + " stops on route, ")
		b.WriteString(strconv.Itoa(r.Bus.UniqueStops) + " unique stops, ")
		b.WriteString(strconv.Itoa(r.Bus.RouteLength) + " route length, ")
		b.WriteString(utils.FormatConsole(r.Bus.Curvature) + " curvature")
	case r.Stop != nil:
		if len(r.Stop.Buses) == 0 {
			b.WriteString("no buses")
			break
		}
		b.WriteString("buses")
		for _, bus := range r.Stop.Buses {
			b.WriteString(" " + bus)
		}
	case r.Route != nil:
		b.WriteString(utils.FormatConsole(r.Route.TotalTime) + " minutes")
		for _, it := range r.Route.Items {
			b.WriteString("\n  ")
			writeTextItem(b, it)
		}
	}
	b.WriteString("\n")
}

func writeTextItem(b *strings.Builder, it domain.RouteItem) {
	if it.Kind == domain.ItemWait {
		b.WriteString("Wait at " + it.StopName + ": " + utils.FormatConsole(it.Time) + " minutes")
		return
	}
	stops := " stops, "
	if it.SpanCount == 1 {
		stops = " stop, "
	}
	b.WriteString("Bus " + it.BusName + ": " + strconv.Itoa(it.SpanCount) + stops + utils.FormatConsole(it.Time) + " minutes")
}
