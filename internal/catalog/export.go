package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// ObjectStore uploads a blob and returns its public URL.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type Exporter struct {
	service *Service
	store   ObjectStore
}

func NewExporter(service *Service, store ObjectStore) *Exporter {
	return &Exporter{service: service, store: store}
}

// Export writes a JSON snapshot of the catalog to snapshots/<date>/<uuid>.json.
func (e *Exporter) Export(ctx context.Context) (string, error) {
	snap, err := e.service.Snapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("build snapshot: %w", err)
	}

	body, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	key := fmt.Sprintf(
		"snapshots/%s/%s.json",
		snap.GeneratedAt.Format(DateLayout),
		uuid.New().String(),
	)

	url, err := e.store.Put(ctx, key, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("upload snapshot: %w", err)
	}
	return url, nil
}
