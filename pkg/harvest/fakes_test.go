package harvest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/harvest/store"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/metadata"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/model"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/openmetadata"
)

const testUser = "erinoverview"

func element(guid, typeName string, props map[string]any, superTypes ...string) openmetadata.Element {
	return openmetadata.Element{
		GUID:       guid,
		Type:       metadata.ElementType{TypeName: typeName, SuperTypeNames: superTypes},
		Properties: openmetadata.Properties(props),
	}
}

func millis(t time.Time) float64 {
	return float64(t.UnixMilli())
}

// graphSource serves an in-memory graph of metadata elements
type graphSource struct {
	mu         sync.Mutex
	reports    []openmetadata.Element
	related    map[string][]openmetadata.RelatedElement
	relatedErr map[string]error
	finds      int
}

func newGraphSource() *graphSource {
	return &graphSource{
		related:    make(map[string][]openmetadata.RelatedElement),
		relatedErr: make(map[string]error),
	}
}

func relatedKey(guid string, end int, relationshipType string) string {
	return fmt.Sprintf("%s|%d|%s", guid, end, relationshipType)
}

func (g *graphSource) link(guid string, end int, relationshipType string, elements ...openmetadata.Element) {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := relatedKey(guid, end, relationshipType)
	for _, e := range elements {
		g.related[key] = append(g.related[key], openmetadata.RelatedElement{
			RelationshipGUID: guid + "->" + e.GUID,
			Type:             metadata.ElementType{TypeName: relationshipType},
			Element:          e,
		})
	}
}

func (g *graphSource) findCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.finds
}

func page[T any](items []T, start, size int) []T {
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func (g *graphSource) FindMetadataElements(_ context.Context, userID, typeName, _ string, startFrom, pageSize int) ([]openmetadata.Element, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.finds++
	if userID != testUser || typeName != SurveyReportType {
		return nil, fmt.Errorf("unexpected query %s/%s", userID, typeName)
	}
	return page(g.reports, startFrom, pageSize), nil
}

func (g *graphSource) GetRelatedMetadataElements(_ context.Context, _, guid string, startingAtEnd int, relationshipType string, startFrom, pageSize int) ([]openmetadata.RelatedElement, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := relatedKey(guid, startingAtEnd, relationshipType)
	if err := g.relatedErr[key]; err != nil {
		return nil, err
	}
	return page(g.related[key], startFrom, pageSize), nil
}

// memStore keeps row versions in memory with the same change detection as
// the database store
type memStore struct {
	mu       sync.Mutex
	versions map[string][]map[string]any
	rows     map[string]model.Row
	closed   bool
	syncErr  error
	pingErr  error
}

var _ store.SyncStore = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		versions: make(map[string][]map[string]any),
		rows:     make(map[string]model.Row),
	}
}

func (m *memStore) Sync(_ context.Context, row model.Row, syncTime time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.syncErr != nil {
		return false, m.syncErr
	}
	id := model.ID(row)
	values := model.Values(row)
	if v := m.versions[id]; len(v) > 0 && !model.Changed(v[len(v)-1], values) {
		return false, nil
	}
	row.SetSyncTime(syncTime)
	m.versions[id] = append(m.versions[id], values)
	m.rows[id] = row
	return true, nil
}

func (m *memStore) CheckConnectivity(context.Context) error {
	return m.pingErr
}

func (m *memStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *memStore) row(id string) model.Row {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[id]
}

func (m *memStore) count(table string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, v := range m.versions {
		if len(id) > len(table) && id[:len(table)+1] == table+"|" {
			n += len(v)
		}
	}
	return n
}

func (m *memStore) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
