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

func TestTemplateManagerEndpoints(t *testing.T) {
	fake, client := newFakeOMAS(t)
	m := NewTemplateManager(client)

	runEndpointCases(t, fake, []endpointCase{
		{"classify", "POST", "/elements/e-1/template", func(ctx context.Context) error {
			return m.AddTemplateClassification(ctx, testUser, "e-1", &metadata.TemplateClassificationProperties{Name: "Postgres database"})
		}},
		{"declassify", "POST", "/elements/e-1/template/remove", func(ctx context.Context) error {
			return m.RemoveTemplateClassification(ctx, testUser, "e-1")
		}},
		{"link catalog template", "POST", "/elements/e-1/catalog-templates/t-1", func(ctx context.Context) error {
			return m.LinkCatalogTemplate(ctx, testUser, "e-1", "t-1", nil)
		}},
		{"unlink catalog template", "POST", "/elements/e-1/catalog-templates/t-1/remove", func(ctx context.Context) error {
			return m.UnlinkCatalogTemplate(ctx, testUser, "e-1", "t-1")
		}},
		{"link sourced from", "POST", "/elements/e-1/sourced-from/t-1", func(ctx context.Context) error {
			return m.LinkSourcedFrom(ctx, testUser, "e-1", "t-1", nil)
		}},
		{"unlink sourced from", "POST", "/elements/e-1/sourced-from/t-1/remove", func(ctx context.Context) error {
			return m.UnlinkSourcedFrom(ctx, testUser, "e-1", "t-1")
		}},
		{"catalog templates", "GET", "/elements/e-1/catalog-templates?startFrom=0&pageSize=10", func(ctx context.Context) error {
			_, err := m.GetCatalogTemplates(ctx, testUser, "e-1", 0, 10)
			return err
		}},
		{"find templates", "POST", "/templates/by-search-string?startFrom=0&pageSize=10", func(ctx context.Context) error {
			_, err := m.FindTemplates(ctx, testUser, "Postgres.*", 0, 10)
			return err
		}},
		{"create from template", "POST", "/elements/from-template", func(ctx context.Context) error {
			_, err := m.CreateElementFromTemplate(ctx, testUser, &metadata.ElementFromTemplateProperties{TemplateGUID: "t-1"})
			return err
		}},
	})
}

func TestCreateElementFromTemplate(t *testing.T) {
	fake, client := newFakeOMAS(t)
	m := NewTemplateManager(client, WithExternalSource("src-guid", "CocoPharmaceuticals"))
	ctx := context.Background()

	props := &metadata.ElementFromTemplateProperties{
		TemplateGUID:              "t-1",
		IsOwnAnchor:               true,
		PlaceholderPropertyValues: map[string]string{"serverName": "clinical-db"},
	}
	guid, err := m.CreateElementFromTemplate(ctx, testUser, props)
	require.NoError(t, err)
	assert.Equal(t, "g-1", guid)

	body := fake.last(t).Body
	assert.Equal(t, "t-1", body["templateGUID"])
	assert.Equal(t, "src-guid", body["externalSourceGUID"])
	assert.Equal(t, map[string]any{"serverName": "clinical-db"}, body["placeholderPropertyValues"])
	assert.Empty(t, props.ExternalSourceGUID, "caller's properties are not modified")

	_, err = m.CreateElementFromTemplate(ctx, testUser, &metadata.ElementFromTemplateProperties{})
	assert.True(t, errors.Is(err, rest.ErrInvalidParameter))
}
