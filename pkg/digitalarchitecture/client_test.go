package digitalarchitecture

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/metadata"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/rest"
)

const (
	testUser = "erinoverview"
	testBase = "/servers/cocoMDS1/open-metadata/access-services/digital-architecture/users/erinoverview"
)

type request struct {
	Verb string
	Path string
	Body map[string]any
}

// fakeOMAS records every request and answers with an envelope that satisfies
// any of the response types
type fakeOMAS struct {
	mu       sync.Mutex
	requests []request
	response map[string]any
}

func newFakeOMAS(t *testing.T) (*fakeOMAS, *rest.Client) {
	t.Helper()
	f := &fakeOMAS{response: map[string]any{
		"class":           "GenericResponse",
		"relatedHTTPCode": 200,
		"guid":            "g-1",
		"element":         map[string]any{},
		"elements":        []any{},
		"flag":            true,
	}}

	router := mux.NewRouter()
	router.PathPrefix("/servers/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := request{Verb: r.Method, Path: r.URL.EscapedPath()}
		if r.URL.RawQuery != "" {
			req.Path += "?" + r.URL.RawQuery
		}
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			_ = json.Unmarshal(data, &req.Body)
		}

		f.mu.Lock()
		f.requests = append(f.requests, req)
		payload := f.response
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	})
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	client, err := rest.NewClient(ts.URL, "cocoMDS1", rest.WithMaxPageSize(100))
	require.NoError(t, err)
	return f, client
}

func (f *fakeOMAS) last(t *testing.T) request {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "no request reached the server")
	return f.requests[len(f.requests)-1]
}

func (f *fakeOMAS) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeOMAS) respond(payload map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.response = payload
}

// endpointCase checks that a call reaches the expected endpoint
type endpointCase struct {
	name string
	verb string
	path string
	call func(ctx context.Context) error
}

func runEndpointCases(t *testing.T, fake *fakeOMAS, tests []endpointCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.call(context.Background()))
			got := fake.last(t)
			assert.Equal(t, tt.verb, got.Verb)
			assert.Equal(t, testBase+tt.path, got.Path)
		})
	}
}

func TestExternalSourceIsStamped(t *testing.T) {
	fake, client := newFakeOMAS(t)
	m := NewConnectionManager(client, WithExternalSource("src-guid", "CocoPharmaceuticals"))

	guid, err := m.CreateConnection(context.Background(), testUser, &metadata.ConnectionProperties{
		ReferenceableProperties: metadata.ReferenceableProperties{QualifiedName: "Connection:clinical-trials"},
		DisplayName:             "Clinical trials",
	})
	require.NoError(t, err)
	assert.Equal(t, "g-1", guid)

	body := fake.last(t).Body
	assert.Equal(t, "src-guid", body["externalSourceGUID"])
	assert.Equal(t, "CocoPharmaceuticals", body["externalSourceName"])
	props, ok := body["properties"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Connection:clinical-trials", props["qualifiedName"])
	assert.Equal(t, "Clinical trials", props["displayName"])
}

func TestValidationFailsBeforeRequest(t *testing.T) {
	fake, client := newFakeOMAS(t)
	connections := NewConnectionManager(client)
	locations := NewLocationManager(client)
	ctx := context.Background()

	tests := []struct {
		name      string
		call      func() error
		parameter string
	}{
		{
			name: "missing user",
			call: func() error {
				_, err := connections.GetConnectionByGUID(ctx, "", "c-1")
				return err
			},
			parameter: "userId",
		},
		{
			name: "missing guid",
			call: func() error {
				return connections.RemoveConnection(ctx, testUser, "")
			},
			parameter: "connectionGUID",
		},
		{
			name: "nil properties",
			call: func() error {
				_, err := connections.CreateConnection(ctx, testUser, nil)
				return err
			},
			parameter: "connectionProperties",
		},
		{
			name: "missing qualified name",
			call: func() error {
				_, err := locations.CreateLocation(ctx, testUser, &metadata.LocationProperties{DisplayName: "Amsterdam"})
				return err
			},
			parameter: "qualifiedName",
		},
		{
			name: "bad search string",
			call: func() error {
				_, err := locations.FindLocations(ctx, testUser, "(", 0, 10)
				return err
			},
			parameter: "searchString",
		},
		{
			name: "page size over maximum",
			call: func() error {
				_, err := locations.FindLocations(ctx, testUser, ".*", 0, 101)
				return err
			},
			parameter: "pageSize",
		},
		{
			name: "missing second guid",
			call: func() error {
				return locations.SetupNestedLocation(ctx, testUser, "l-1", "", nil)
			},
			parameter: "nestedLocationGUID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.True(t, errors.Is(err, rest.ErrInvalidParameter))

			var ipe *rest.InvalidParameterError
			require.True(t, errors.As(err, &ipe))
			assert.Equal(t, tt.parameter, ipe.ParameterName)
		})
	}
	assert.Equal(t, 0, fake.count())
}

func TestServerExceptionsPassThrough(t *testing.T) {
	fake, client := newFakeOMAS(t)
	fake.respond(map[string]any{
		"relatedHTTPCode":    403,
		"exceptionClassName": "org.odpi.openmetadata.frameworks.connectors.ffdc.UserNotAuthorizedException",
	})

	_, err := NewSolutionManager(client).GetSolutionComponentByGUID(context.Background(), testUser, "sc-1")
	assert.True(t, errors.Is(err, rest.ErrUserNotAuthorized))
}
