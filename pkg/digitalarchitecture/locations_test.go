package digitalarchitecture

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/metadata"
)

func TestLocationManagerEndpoints(t *testing.T) {
	fake, client := newFakeOMAS(t)
	m := NewLocationManager(client)

	loc := &metadata.LocationProperties{
		ReferenceableProperties: metadata.ReferenceableProperties{QualifiedName: "Location:amsterdam"},
		DisplayName:             "Amsterdam",
	}

	runEndpointCases(t, fake, []endpointCase{
		{"create", "POST", "/locations", func(ctx context.Context) error {
			_, err := m.CreateLocation(ctx, testUser, loc)
			return err
		}},
		{"create from template", "POST", "/locations/from-template/t-1", func(ctx context.Context) error {
			_, err := m.CreateLocationFromTemplate(ctx, testUser, "t-1", &metadata.TemplateProperties{QualifiedName: "Location:rotterdam"})
			return err
		}},
		{"update", "POST", "/locations/l-1/update?isMergeUpdate=true", func(ctx context.Context) error {
			return m.UpdateLocation(ctx, testUser, "l-1", true, loc)
		}},
		{"remove", "POST", "/locations/l-1/delete", func(ctx context.Context) error {
			return m.RemoveLocation(ctx, testUser, "l-1")
		}},
		{"setup nested", "POST", "/locations/l-1/nested-locations/l-2", func(ctx context.Context) error {
			return m.SetupNestedLocation(ctx, testUser, "l-1", "l-2", nil)
		}},
		{"clear nested", "POST", "/locations/l-1/nested-locations/l-2/remove", func(ctx context.Context) error {
			return m.ClearNestedLocation(ctx, testUser, "l-1", "l-2")
		}},
		{"setup peers", "POST", "/locations/l-1/adjacent-locations/l-3", func(ctx context.Context) error {
			return m.SetupPeerLocations(ctx, testUser, "l-1", "l-3", nil)
		}},
		{"clear peers", "POST", "/locations/l-1/adjacent-locations/l-3/remove", func(ctx context.Context) error {
			return m.ClearPeerLocations(ctx, testUser, "l-1", "l-3")
		}},
		{"setup asset location", "POST", "/locations/l-1/assets/a-1", func(ctx context.Context) error {
			return m.SetupAssetLocation(ctx, testUser, "l-1", "a-1", &metadata.AssetLocationProperties{})
		}},
		{"clear asset location", "POST", "/locations/l-1/assets/a-1/remove", func(ctx context.Context) error {
			return m.ClearAssetLocation(ctx, testUser, "l-1", "a-1")
		}},
		{"set fixed", "POST", "/locations/l-1/is-fixed-location", func(ctx context.Context) error {
			return m.SetLocationAsFixedPhysical(ctx, testUser, "l-1", &metadata.FixedLocationProperties{TimeZone: "Europe/Amsterdam"})
		}},
		{"clear fixed", "POST", "/locations/l-1/is-fixed-location/remove", func(ctx context.Context) error {
			return m.ClearLocationAsFixedPhysical(ctx, testUser, "l-1")
		}},
		{"set secure", "POST", "/locations/l-1/is-secure-location", func(ctx context.Context) error {
			return m.SetLocationAsSecure(ctx, testUser, "l-1", &metadata.SecureLocationProperties{Level: "high"})
		}},
		{"clear secure", "POST", "/locations/l-1/is-secure-location/remove", func(ctx context.Context) error {
			return m.ClearLocationAsSecure(ctx, testUser, "l-1")
		}},
		{"set cyber", "POST", "/locations/l-1/is-cyber-location", func(ctx context.Context) error {
			return m.SetLocationAsCyber(ctx, testUser, "l-1", &metadata.CyberLocationProperties{NetworkAddress: "10.0.0.1"})
		}},
		{"clear cyber", "POST", "/locations/l-1/is-cyber-location/remove", func(ctx context.Context) error {
			return m.ClearLocationAsCyber(ctx, testUser, "l-1")
		}},
		{"find", "POST", "/locations/by-search-string?startFrom=0&pageSize=10", func(ctx context.Context) error {
			_, err := m.FindLocations(ctx, testUser, "Amster.*", 0, 10)
			return err
		}},
		{"by name", "POST", "/locations/by-name?startFrom=0&pageSize=10", func(ctx context.Context) error {
			_, err := m.GetLocationsByName(ctx, testUser, "Amsterdam", 0, 10)
			return err
		}},
		{"by guid", "GET", "/locations/l-1", func(ctx context.Context) error {
			_, err := m.GetLocationByGUID(ctx, testUser, "l-1")
			return err
		}},
		{"nested", "GET", "/locations/l-1/nested-locations?startFrom=0&pageSize=20", func(ctx context.Context) error {
			_, err := m.GetNestedLocations(ctx, testUser, "l-1", 0, 20)
			return err
		}},
		{"grouping", "GET", "/locations/l-2/grouping-locations?startFrom=0&pageSize=20", func(ctx context.Context) error {
			_, err := m.GetGroupingLocations(ctx, testUser, "l-2", 0, 20)
			return err
		}},
		{"adjacent", "GET", "/locations/l-1/adjacent-locations?startFrom=5&pageSize=5", func(ctx context.Context) error {
			_, err := m.GetAdjacentLocations(ctx, testUser, "l-1", 5, 5)
			return err
		}},
		{"asset locations", "GET", "/assets/a-1/locations?startFrom=0&pageSize=20", func(ctx context.Context) error {
			_, err := m.GetAssetLocations(ctx, testUser, "a-1", 0, 20)
			return err
		}},
	})
}

func TestClassificationBodyCarriesProperties(t *testing.T) {
	fake, client := newFakeOMAS(t)
	m := NewLocationManager(client)

	err := m.SetLocationAsFixedPhysical(context.Background(), testUser, "l-1", &metadata.FixedLocationProperties{
		PostalAddress: "1 Dam Square",
		TimeZone:      "Europe/Amsterdam",
	})
	require.NoError(t, err)

	props, ok := fake.last(t).Body["properties"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1 Dam Square", props["postalAddress"])
	assert.Equal(t, "Europe/Amsterdam", props["timezone"])
}

func TestGUIDsArePathEscaped(t *testing.T) {
	fake, client := newFakeOMAS(t)
	m := NewLocationManager(client)

	_, err := m.GetLocationByGUID(context.Background(), testUser, "l 1/2")
	require.NoError(t, err)
	assert.Equal(t, testBase+"/locations/l%201%2F2", fake.last(t).Path)
}
