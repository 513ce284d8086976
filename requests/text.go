package requests

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/transit-catalogue/domain"
)

// DecodeText reads the line-oriented console format.
func DecodeText(r io.Reader) (Input, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	next := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			line := strings.TrimSpace(sc.Text())
			if line != "" {
				return line, true
			}
		}
		return "", false
	}
	readCount := func() (int, error) {
		line, ok := next()
		if !ok {
			return 0, nil
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("line %d: %w: expected a record count, got %q", lineNo, ErrMalformedLine, line)
		}
		return n, nil
	}

	var in Input
	n, err := readCount()
	if err != nil {
		return Input{}, err
	}
	for i := 0; i < n; i++ {
		line, ok := next()
		if !ok {
			return Input{}, fmt.Errorf("expected %d records, got %d: %w", n, i, io.ErrUnexpectedEOF)
		}
		if err := parseRecordLine(line, &in.Batch); err != nil {
			return Input{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	m, err := readCount()
	if err != nil {
		return Input{}, err
	}
	for i := 0; i < m; i++ {
		line, ok := next()
		if !ok {
			return Input{}, fmt.Errorf("expected %d queries, got %d: %w", m, i, io.ErrUnexpectedEOF)
		}
		req, err := parseQueryLine(line)
		if err != nil {
			return Input{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		req.ID = i + 1
		in.Stats = append(in.Stats, req)
	}
	if err := sc.Err(); err != nil {
		return Input{}, err
	}
	return in, nil
}

// splitHead splits "Kind Name: rest" into name and rest.
func splitHead(line, kind string) (string, string, error) {
	body := strings.TrimPrefix(line, kind+" ")
	colon := strings.IndexByte(body, ':')
	if colon < 0 {
		return "", "", fmt.Errorf("%w: missing ':' in %q", ErrMalformedLine, line)
	}
	name := strings.TrimSpace(body[:colon])
	if name == "" {
		return "", "", fmt.Errorf("%w: empty name in %q", ErrMalformedLine, line)
	}
	return name, strings.TrimSpace(body[colon+1:]), nil
}

func parseRecordLine(line string, batch *domain.Batch) error {
	switch {
	case strings.HasPrefix(line, "Stop "):
		stop, err := parseStopLine(line)
		if err != nil {
			return err
		}
		batch.Stops = append(batch.Stops, stop)
	case strings.HasPrefix(line, "Bus "):
		bus, err := parseBusLine(line)
		if err != nil {
			return err
		}
		batch.Buses = append(batch.Buses, bus)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRequestType, line)
	}
	return nil
}

// parseStopLine parses "Stop X: lat, lon[, Dm to Y]...".
func parseStopLine(line string) (domain.StopRecord, error) {
	name, rest, err := splitHead(line, "Stop")
	if err != nil {
		return domain.StopRecord{}, err
	}
	parts := strings.Split(rest, ",")
	if len(parts) < 2 {
		return domain.StopRecord{}, fmt.Errorf("%w: stop %q needs latitude and longitude", ErrMalformedLine, name)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return domain.StopRecord{}, fmt.Errorf("%w: stop %q latitude: %v", ErrMalformedLine, name, err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.StopRecord{}, fmt.Errorf("%w: stop %q longitude: %v", ErrMalformedLine, name, err)
	}
	rec := domain.StopRecord{Name: name, Latitude: lat, Longitude: lng}
	for _, p := range parts[2:] {
		p = strings.TrimSpace(p)
		idx := strings.Index(p, "m to ")
		if idx < 0 {
			return domain.StopRecord{}, fmt.Errorf("%w: stop %q distance %q", ErrMalformedLine, name, p)
		}
		meters, err := strconv.Atoi(strings.TrimSpace(p[:idx]))
		if err != nil {
			return domain.StopRecord{}, fmt.Errorf("%w: stop %q distance %q: %v", ErrMalformedLine, name, p, err)
		}
		if rec.RoadDistances == nil {
			rec.RoadDistances = map[string]int{}
		}
		rec.RoadDistances[strings.TrimSpace(p[idx+len("m to "):])] = meters
	}
	return rec, nil
}

// parseBusLine parses "Bus X: A > B > A" (loop) or "Bus X: A - B" (out-and-back).
func parseBusLine(line string) (domain.BusRecord, error) {
	name, rest, err := splitHead(line, "Bus")
	if err != nil {
		return domain.BusRecord{}, err
	}
	sep, roundTrip := "-", false
	if strings.Contains(rest, ">") {
		sep, roundTrip = ">", true
	}
	var stops []string
	for _, s := range strings.Split(rest, sep) {
		s = strings.TrimSpace(s)
		if s == "" {
			return domain.BusRecord{}, fmt.Errorf("%w: bus %q has an empty stop name", ErrMalformedLine, name)
		}
		stops = append(stops, s)
	}
	return domain.BusRecord{Name: name, Stops: stops, IsRoundTrip: roundTrip}, nil
}

// parseQueryLine parses "Bus X", "Stop X", "Route A > B" or "Map".
func parseQueryLine(line string) (StatRequest, error) {
	switch {
	case line == TypeMap:
		return StatRequest{Type: TypeMap}, nil
	case strings.HasPrefix(line, "Bus "):
		return StatRequest{Type: TypeBus, Name: strings.TrimSpace(line[len("Bus "):])}, nil
	case strings.HasPrefix(line, "Stop "):
		return StatRequest{Type: TypeStop, Name: strings.TrimSpace(line[len("Stop "):])}, nil
	case strings.HasPrefix(line, "Route "):
		from, to, ok := strings.Cut(line[len("Route "):], ">")
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if !ok || from == "" || to == "" {
			return StatRequest{}, fmt.Errorf("%w: route query %q", ErrMalformedLine, line)
		}
		return StatRequest{Type: TypeRoute, From: from, To: to}, nil
	default:
		return StatRequest{}, fmt.Errorf("%w: %q", ErrUnknownRequestType, line)
	}
}
