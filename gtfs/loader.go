package gtfs

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"
)

// ErrMissingFile is returned when a required feed file is absent from the archive.
var ErrMissingFile = errors.New("gtfs feed file missing")

var requiredFiles = []string{"stops.txt", "routes.txt", "trips.txt", "stop_times.txt"}

// FetchFeed downloads a GTFS zip and parses it.
func FetchFeed(ctx context.Context, url string) (*Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return NewFeedFromBytes(data)
}

// NewFeedFromBytes parses a GTFS zip held in memory.
func NewFeedFromBytes(data []byte) (*Feed, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	return newFeedFromZip(zr.File)
}

// LoadFromLocalZip opens a local GTFS zip file and consumes required CSVs.
func LoadFromLocalZip(path string) (*Feed, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return newFeedFromZip(zr.File)
}

func newFeedFromZip(files []*zip.File) (*Feed, error) {
	f := newFeed()
	seen := map[string]bool{}
	// stop_times.txt refers to trips, so the archive order must not matter.
	var stopTimes *zip.File
	for _, zf := range files {
		name := strings.ToLower(zf.Name)
		switch name {
		case "stops.txt", "routes.txt", "trips.txt":
			if err := f.consumeCSV(zf); err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			seen[name] = true
		case "stop_times.txt":
			stopTimes = zf
			seen[name] = true
		}
	}
	for _, name := range requiredFiles {
		if !seen[name] {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, name)
		}
	}
	if err := f.consumeCSV(stopTimes); err != nil {
		return nil, fmt.Errorf("stop_times.txt: %w", err)
	}
	return f, nil
}

func (f *Feed) consumeCSV(zf *zip.File) error {
	r, err := zf.Open()
	if err != nil {
		return err
	}
	defer r.Close()
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	rec, err := csvr.ReadAll()
	if err != nil {
		return err
	}
	if len(rec) == 0 {
		return nil
	}
	head := rec[0]
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\ufeff")
	}
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	cell := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	switch strings.ToLower(zf.Name) {
	case "routes.txt":
		rID := idx("route_id")
		rSN := idx("route_short_name")
		if rID < 0 {
			return errors.New("missing route_id column")
		}
		for _, row := range rec[1:] {
			f.routeShortNames[cell(row, rID)] = cell(row, rSN)
		}
	case "trips.txt":
		rID := idx("route_id")
		tID := idx("trip_id")
		dir := idx("direction_id")
		if rID < 0 || tID < 0 {
			return errors.New("missing route_id or trip_id column")
		}
		for _, row := range rec[1:] {
			f.tripToRoute[cell(row, tID)] = cell(row, rID)
			f.tripDirection[cell(row, tID)] = cell(row, dir)
		}
	case "stops.txt":
		sID := idx("stop_id")
		sN := idx("stop_name")
		sLat := idx("stop_lat")
		sLon := idx("stop_lon")
		if sID < 0 {
			return errors.New("missing stop_id column")
		}
		for _, row := range rec[1:] {
			id := cell(row, sID)
			f.stopNames[id] = cell(row, sN)
			lat, _ := strconv.ParseFloat(cell(row, sLat), 64)
			lon, _ := strconv.ParseFloat(cell(row, sLon), 64)
			f.stopCoord[id] = [2]float64{lon, lat}
		}
	case "stop_times.txt":
		tID := idx("trip_id")
		sID := idx("stop_id")
		sq := idx("stop_sequence")
		sd := idx("shape_dist_traveled")
		if tID < 0 || sID < 0 || sq < 0 {
			return errors.New("missing trip_id, stop_id or stop_sequence column")
		}
		type stopTime struct {
			stop string
			seq  int
			dist float64
		}
		tmp := map[string][]stopTime{}
		for _, row := range rec[1:] {
			trip := cell(row, tID)
			if _, ok := f.tripToRoute[trip]; !ok {
				continue
			}
			seq, err := strconv.Atoi(cell(row, sq))
			if err != nil {
				return fmt.Errorf("trip %q: bad stop_sequence %q", trip, cell(row, sq))
			}
			dist := math.NaN()
			if v := cell(row, sd); v != "" {
				if d, err := strconv.ParseFloat(v, 64); err == nil {
					dist = d
				}
			}
			tmp[trip] = append(tmp[trip], stopTime{cell(row, sID), seq, dist})
		}
		for trip, arr := range tmp {
			sort.Slice(arr, func(i, j int) bool { return arr[i].seq < arr[j].seq })
			seqStops := make([]string, 0, len(arr))
			dists := make([]float64, 0, len(arr))
			for _, v := range arr {
				seqStops = append(seqStops, v.stop)
				dists = append(dists, v.dist)
			}
			f.TripStopSeq[trip] = seqStops
			f.tripShapeDist[trip] = dists
		}
	}
	return nil
}
