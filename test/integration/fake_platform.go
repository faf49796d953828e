package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/metadata"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/openmetadata"
)

const (
	platformServer = "qs-view-server"
	platformUser   = "erinoverview"
	storeBase      = "/servers/{server}/open-metadata/framework-services/{marker}/open-metadata-store/users/{user}"
)

// fakePlatform serves an in-memory metadata graph through the open
// metadata store endpoints the harvester reads
type fakePlatform struct {
	mu       sync.Mutex
	elements map[string]openmetadata.Element
	reports  []string
	related  map[string][]openmetadata.RelatedElement
	server   *httptest.Server
}

func newFakePlatform() *fakePlatform {
	p := &fakePlatform{
		elements: make(map[string]openmetadata.Element),
		related:  make(map[string][]openmetadata.RelatedElement),
	}

	router := mux.NewRouter()
	router.HandleFunc(storeBase+"/metadata-elements/by-search-string", p.handleFind).Methods("POST")
	router.HandleFunc(storeBase+"/metadata-elements/{guid}", p.handleGet).Methods("POST")
	router.HandleFunc(storeBase+"/related-elements/{guid}/type/{type}", p.handleRelated).Methods("POST")
	p.server = httptest.NewServer(router)
	return p
}

func (p *fakePlatform) URL() string {
	return p.server.URL
}

func (p *fakePlatform) Close() {
	p.server.Close()
}

func (p *fakePlatform) put(guid, typeName string, props map[string]any, superTypes ...string) openmetadata.Element {
	p.mu.Lock()
	defer p.mu.Unlock()
	e := openmetadata.Element{
		GUID:       guid,
		Type:       metadata.ElementType{TypeName: typeName, SuperTypeNames: superTypes},
		Properties: openmetadata.Properties(props),
	}
	p.elements[guid] = e
	if typeName == "SurveyReport" {
		p.reports = append(p.reports, guid)
	}
	return e
}

func (p *fakePlatform) update(guid string, fn func(props openmetadata.Properties)) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.elements[guid]
	if !ok {
		return fmt.Errorf("no element %s", guid)
	}
	fn(e.Properties)
	return nil
}

func relatedKey(guid string, end int, relationshipType string) string {
	return fmt.Sprintf("%s|%d|%s", guid, end, relationshipType)
}

// link relates guid to the elements at the other end. The links are read
// back by guid when starting at end.
func (p *fakePlatform) link(guid string, end int, relationshipType string, others ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	key := relatedKey(guid, end, relationshipType)
	for _, other := range others {
		p.related[key] = append(p.related[key], openmetadata.RelatedElement{
			RelationshipGUID: guid + "->" + other,
			Type:             metadata.ElementType{TypeName: relationshipType},
			Element:          openmetadata.Element{GUID: other},
		})
	}
}

func paging(r *http.Request) (int, int) {
	start, _ := strconv.Atoi(r.URL.Query().Get("startFrom"))
	size, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	return start, size
}

func page[T any](all []T, start, size int) []T {
	if start >= len(all) {
		return nil
	}
	end := len(all)
	if size > 0 && start+size < end {
		end = start + size
	}
	return all[start:end]
}

func (p *fakePlatform) handleFind(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	start, size := paging(r)
	var found []openmetadata.Element
	for _, guid := range page(p.reports, start, size) {
		found = append(found, p.elements[guid])
	}
	respond(w, map[string]any{"relatedHTTPCode": 200, "elements": found})
}

func (p *fakePlatform) handleGet(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.elements[mux.Vars(r)["guid"]]
	if !ok {
		respond(w, map[string]any{"relatedHTTPCode": 200})
		return
	}
	respond(w, map[string]any{"relatedHTTPCode": 200, "element": e})
}

func (p *fakePlatform) handleRelated(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	vars := mux.Vars(r)
	end, _ := strconv.Atoi(r.URL.Query().Get("startingAtEnd"))
	start, size := paging(r)

	var out []openmetadata.RelatedElement
	for _, rel := range page(p.related[relatedKey(vars["guid"], end, vars["type"])], start, size) {
		rel.Element = p.elements[rel.Element.GUID]
		out = append(out, rel)
	}
	respond(w, map[string]any{"relatedHTTPCode": 200, "elements": out})
}

func respond(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}
