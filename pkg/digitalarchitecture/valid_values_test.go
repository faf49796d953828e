package digitalarchitecture

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/metadata"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/rest"
)

func TestValidValuesManagerEndpoints(t *testing.T) {
	fake, client := newFakeOMAS(t)
	m := NewValidValuesManager(client)

	value := &metadata.ValidMetadataValue{PreferredValue: "EMEA", DisplayName: "Europe, Middle East and Africa"}
	const vmv = "/valid-metadata-values"

	runEndpointCases(t, fake, []endpointCase{
		{"setup value", "POST", vmv + "/setup-value/region?typeName=Location", func(ctx context.Context) error {
			return m.SetUpValidMetadataValue(ctx, testUser, "Location", "region", value)
		}},
		{"setup value for every type", "POST", vmv + "/setup-value/region?typeName=", func(ctx context.Context) error {
			return m.SetUpValidMetadataValue(ctx, testUser, "", "region", value)
		}},
		{"setup map name", "POST", vmv + "/setup-map-name/additionalProperties?typeName=Asset", func(ctx context.Context) error {
			return m.SetUpValidMetadataMapName(ctx, testUser, "Asset", "additionalProperties", value)
		}},
		{"setup map value", "POST", vmv + "/setup-map-value/additionalProperties/region?typeName=Asset", func(ctx context.Context) error {
			return m.SetUpValidMetadataMapValue(ctx, testUser, "Asset", "additionalProperties", "region", value)
		}},
		{"clear value", "POST", vmv + "/clear-value/region?typeName=Location&preferredValue=EMEA", func(ctx context.Context) error {
			return m.ClearValidMetadataValue(ctx, testUser, "Location", "region", "EMEA")
		}},
		{"clear map name", "POST", vmv + "/clear-map-name/additionalProperties?typeName=Asset&mapName=region", func(ctx context.Context) error {
			return m.ClearValidMetadataMapName(ctx, testUser, "Asset", "additionalProperties", "region")
		}},
		{"clear map value", "POST", vmv + "/clear-map-value/additionalProperties/region?typeName=Asset&preferredValue=EMEA", func(ctx context.Context) error {
			return m.ClearValidMetadataMapValue(ctx, testUser, "Asset", "additionalProperties", "region", "EMEA")
		}},
		{"validate value", "GET", vmv + "/validate-value/region?typeName=Location&actualValue=North+America", func(ctx context.Context) error {
			return m.ValidateMetadataValue(ctx, testUser, "Location", "region", "North America")
		}},
		{"validate map name", "GET", vmv + "/validate-map-name/additionalProperties?typeName=Asset&mapName=region", func(ctx context.Context) error {
			return m.ValidateMetadataMapName(ctx, testUser, "Asset", "additionalProperties", "region")
		}},
		{"validate map value", "GET", vmv + "/validate-map-value/additionalProperties/region?typeName=Asset&actualValue=EMEA", func(ctx context.Context) error {
			return m.ValidateMetadataMapValue(ctx, testUser, "Asset", "additionalProperties", "region", "EMEA")
		}},
		{"get value", "GET", vmv + "/get-value/region?typeName=Location&preferredValue=EMEA", func(ctx context.Context) error {
			_, err := m.GetValidMetadataValue(ctx, testUser, "Location", "region", "EMEA")
			return err
		}},
		{"get map name", "GET", vmv + "/get-map-name/additionalProperties?typeName=Asset&mapName=region", func(ctx context.Context) error {
			_, err := m.GetValidMetadataMapName(ctx, testUser, "Asset", "additionalProperties", "region")
			return err
		}},
		{"get map value", "GET", vmv + "/get-map-value/additionalProperties/region?typeName=Asset&preferredValue=EMEA", func(ctx context.Context) error {
			_, err := m.GetValidMetadataMapValue(ctx, testUser, "Asset", "additionalProperties", "region", "EMEA")
			return err
		}},
		{"list values", "GET", vmv + "/get-valid-metadata-values/region?typeName=Location&startFrom=0&pageSize=20", func(ctx context.Context) error {
			_, err := m.GetValidMetadataValues(ctx, testUser, "Location", "region", 0, 20)
			return err
		}},
		{"set consistent values", "POST", vmv + "/region/consistent-metadata-values/EMEA/currency/EUR?typeName=Location&mapName1=&mapName2=", func(ctx context.Context) error {
			return m.SetConsistentMetadataValues(ctx, testUser, "Location",
				ConsistentValue{PropertyName: "region", PreferredValue: "EMEA"},
				ConsistentValue{PropertyName: "currency", PreferredValue: "EUR"})
		}},
		{"get consistent values", "GET", vmv + "/region/consistent-metadata-values/EMEA?typeName=Location&mapName=&startFrom=0&pageSize=20", func(ctx context.Context) error {
			_, err := m.GetConsistentMetadataValues(ctx, testUser, "Location", "region", "", "EMEA", 0, 20)
			return err
		}},
	})
}

func TestValidateMetadataValueRejected(t *testing.T) {
	fake, client := newFakeOMAS(t)
	fake.respond(map[string]any{"relatedHTTPCode": 200, "flag": false})
	m := NewValidValuesManager(client)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{
			name: "value",
			call: func() error {
				return m.ValidateMetadataValue(ctx, testUser, "Location", "region", "Atlantis")
			},
		},
		{
			name: "map name",
			call: func() error {
				return m.ValidateMetadataMapName(ctx, testUser, "Asset", "additionalProperties", "colour")
			},
		},
		{
			name: "map value",
			call: func() error {
				return m.ValidateMetadataMapValue(ctx, testUser, "Asset", "additionalProperties", "region", "Atlantis")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.True(t, errors.Is(err, rest.ErrInvalidParameter))

			var ipe *rest.InvalidParameterError
			require.True(t, errors.As(err, &ipe))
			assert.Contains(t, []string{"region", "additionalProperties"}, ipe.ParameterName)
		})
	}
}

func TestSetUpValidMetadataValueSendsValue(t *testing.T) {
	fake, client := newFakeOMAS(t)
	m := NewValidValuesManager(client)

	err := m.SetUpValidMetadataValue(context.Background(), testUser, "Location", "region", &metadata.ValidMetadataValue{
		PreferredValue:  "EMEA",
		IsCaseSensitive: true,
	})
	require.NoError(t, err)

	body := fake.last(t).Body
	assert.Equal(t, "EMEA", body["preferredValue"])
	assert.Equal(t, true, body["isCaseSensitive"])
}
