package openmetadata

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/rest"
)

const storeBase = "/servers/cocoMDS1/open-metadata/framework-services/asset-owner/open-metadata-store/users/erinoverview"

func newStoreClient(t *testing.T, router *mux.Router) *Client {
	t.Helper()
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)
	c, err := rest.NewClient(ts.URL, "cocoMDS1")
	require.NoError(t, err)
	return NewClient(c, "")
}

func respondJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

func TestGetMetadataElementByGUID(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc(storeBase+"/metadata-elements/{guid}", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, map[string]any{
			"relatedHTTPCode": 200,
			"element": map[string]any{
				"elementGUID":       mux.Vars(r)["guid"],
				"type":              map[string]any{"typeName": "EngineAction"},
				"elementProperties": map[string]any{"requestType": "survey-folder"},
			},
		})
	}).Methods("POST")

	c := newStoreClient(t, router)
	e, err := c.GetMetadataElementByGUID(context.Background(), "erinoverview", "ea-1")
	require.NoError(t, err)
	assert.Equal(t, "ea-1", e.GUID)
	assert.Equal(t, "survey-folder", e.Properties.String("requestType"))
}

func TestFindMetadataElements(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc(storeBase+"/metadata-elements/by-search-string", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "20", r.URL.Query().Get("startFrom"))
		assert.Equal(t, "10", r.URL.Query().Get("pageSize"))

		var body rest.SearchStringRequestBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "SurveyReport", body.TypeName)
		assert.Equal(t, ".*", body.SearchString)

		respondJSON(w, map[string]any{
			"relatedHTTPCode": 200,
			"elements": []map[string]any{
				{"elementGUID": "sr-1", "type": map[string]any{"typeName": "SurveyReport"}},
				{"elementGUID": "sr-2", "type": map[string]any{"typeName": "SurveyReport"}},
			},
		})
	}).Methods("POST")

	c := newStoreClient(t, router)
	found, err := c.FindMetadataElements(context.Background(), "erinoverview", "SurveyReport", ".*", 20, 10)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "sr-2", found[1].GUID)
}

func TestGetRelatedMetadataElements(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc(storeBase+"/related-elements/{guid}/type/{rel}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ReportedAnnotation", mux.Vars(r)["rel"])
		assert.Equal(t, "1", r.URL.Query().Get("startingAtEnd"))
		respondJSON(w, map[string]any{
			"relatedHTTPCode": 200,
			"elements": []map[string]any{{
				"relationshipGUID": "rel-1",
				"type":             map[string]any{"typeName": "ReportedAnnotation"},
				"element":          map[string]any{"elementGUID": "an-1", "type": map[string]any{"typeName": "ResourceMeasureAnnotation"}},
			}},
		})
	}).Methods("POST")
	router.HandleFunc(storeBase+"/related-elements/{guid}/any-type", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, map[string]any{"relatedHTTPCode": 200, "elements": []any{}})
	}).Methods("POST")

	c := newStoreClient(t, router)
	ctx := context.Background()

	related, err := c.GetRelatedMetadataElements(ctx, "erinoverview", "sr-1", 1, "ReportedAnnotation", 0, 50)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, "an-1", related[0].Element.GUID)

	related, err = c.GetRelatedMetadataElements(ctx, "erinoverview", "sr-1", 0, "", 0, 50)
	require.NoError(t, err)
	assert.Empty(t, related)

	_, err = c.GetRelatedMetadataElements(ctx, "erinoverview", "sr-1", 3, "", 0, 50)
	assert.True(t, errors.Is(err, rest.ErrInvalidParameter))
}
