package gtfs

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/theoremus-urban-solutions/transit-catalogue/domain"
)

// SerializeBatch encodes converted records to bytes using gob encoding.
// This is useful for disk-based caching to avoid re-parsing GTFS static data.
func SerializeBatch(batch domain.Batch) ([]byte, error) {
	var buf bytes.Buffer
	if err := SerializeBatchToWriter(batch, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SerializeBatchToWriter writes converted records to an io.Writer using gob encoding.
func SerializeBatchToWriter(batch domain.Batch, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(batch); err != nil {
		return fmt.Errorf("failed to encode batch: %w", err)
	}
	return nil
}

// DeserializeBatchFromReader reads converted records from an io.Reader using gob encoding.
func DeserializeBatchFromReader(r io.Reader) (domain.Batch, error) {
	var batch domain.Batch
	if err := gob.NewDecoder(r).Decode(&batch); err != nil {
		return domain.Batch{}, fmt.Errorf("failed to decode batch: %w", err)
	}
	return batch, nil
}

// SaveBatch writes converted records to a file.
//
// Example:
//
//	batch := feed.ToBatch(gtfs.Options{})
//	if err := gtfs.SaveBatch(batch, "/cache/gtfs-batch.gob"); err != nil {
//	    // handle error
//	}
func SaveBatch(batch domain.Batch, path string) error {
	data, err := SerializeBatch(batch)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadBatch reads records previously written by SaveBatch.
//
// Example:
//
//	batch, err := gtfs.LoadBatch("/cache/gtfs-batch.gob")
//	if err != nil {
//	    // Cache miss or corrupted, parse the feed again
//	}
func LoadBatch(path string) (domain.Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Batch{}, fmt.Errorf("failed to read cache file: %w", err)
	}
	defer f.Close()
	return DeserializeBatchFromReader(f)
}
