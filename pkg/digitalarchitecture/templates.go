package digitalarchitecture

import (
	"context"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/metadata"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/rest"
)

const (
	elementsURL               = baseURL + "/elements"
	templateClassificationURL = elementsURL + "/{2}/template"
	catalogTemplateURL        = elementsURL + "/{2}/catalog-templates/{3}"
	sourcedFromURL            = elementsURL + "/{2}/sourced-from/{3}"
	catalogTemplatesURL       = elementsURL + "/{2}/catalog-templates?startFrom={3}&pageSize={4}"
	elementFromTemplateURL    = elementsURL + "/from-template"
	templatesBySearchURL      = baseURL + "/templates/by-search-string?startFrom={2}&pageSize={3}"
)

// TemplateManager maintains templates and creates elements from them
type TemplateManager struct {
	manager
}

// NewTemplateManager creates a TemplateManager that calls through client
func NewTemplateManager(client *rest.Client, opts ...Option) *TemplateManager {
	return &TemplateManager{manager: newManager(client, opts)}
}

// AddTemplateClassification marks an element as a template
func (m *TemplateManager) AddTemplateClassification(ctx context.Context, userID, elementGUID string, props *metadata.TemplateClassificationProperties) error {
	return m.classify(ctx, "AddTemplateClassification", templateClassificationURL, userID, elementGUID, "elementGUID", props)
}

// RemoveTemplateClassification removes the Template classification
func (m *TemplateManager) RemoveTemplateClassification(ctx context.Context, userID, elementGUID string) error {
	return m.declassify(ctx, "RemoveTemplateClassification", templateClassificationURL, userID, elementGUID, "elementGUID")
}

// LinkCatalogTemplate records a template that is suitable for creating
// elements like elementGUID
func (m *TemplateManager) LinkCatalogTemplate(ctx context.Context, userID, elementGUID, templateGUID string, props *metadata.RelationshipProperties) error {
	return m.link(ctx, "LinkCatalogTemplate", catalogTemplateURL, userID, elementGUID, "elementGUID", templateGUID, "templateGUID", props)
}

// UnlinkCatalogTemplate removes a catalog template link
func (m *TemplateManager) UnlinkCatalogTemplate(ctx context.Context, userID, elementGUID, templateGUID string) error {
	return m.unlink(ctx, "UnlinkCatalogTemplate", catalogTemplateURL, userID, elementGUID, "elementGUID", templateGUID, "templateGUID")
}

// LinkSourcedFrom records the template an element was created from
func (m *TemplateManager) LinkSourcedFrom(ctx context.Context, userID, elementGUID, templateGUID string, props *metadata.RelationshipProperties) error {
	return m.link(ctx, "LinkSourcedFrom", sourcedFromURL, userID, elementGUID, "elementGUID", templateGUID, "templateGUID", props)
}

// UnlinkSourcedFrom removes a sourced-from link
func (m *TemplateManager) UnlinkSourcedFrom(ctx context.Context, userID, elementGUID, templateGUID string) error {
	return m.unlink(ctx, "UnlinkSourcedFrom", sourcedFromURL, userID, elementGUID, "elementGUID", templateGUID, "templateGUID")
}

// GetCatalogTemplates returns the templates linked to an element
func (m *TemplateManager) GetCatalogTemplates(ctx context.Context, userID, elementGUID string, startFrom, pageSize int) ([]metadata.RelatedElement, error) {
	return related[metadata.RelatedElement](ctx, &m.manager, "GetCatalogTemplates", catalogTemplatesURL, userID, elementGUID, "elementGUID", startFrom, pageSize)
}

// FindTemplates returns the templates matching searchString
func (m *TemplateManager) FindTemplates(ctx context.Context, userID, searchString string, startFrom, pageSize int) ([]metadata.TemplateElement, error) {
	return find[metadata.TemplateElement](ctx, &m.manager, "FindTemplates", templatesBySearchURL, userID, searchString, startFrom, pageSize)
}

// CreateElementFromTemplate copies a template and returns the new element's GUID.
// The manager's external source is used when props names none.
func (m *TemplateManager) CreateElementFromTemplate(ctx context.Context, userID string, props *metadata.ElementFromTemplateProperties) (string, error) {
	const method = "CreateElementFromTemplate"
	if err := rest.Validate(method, rest.UserID(userID), rest.Object(props, "templateProperties")); err != nil {
		return "", err
	}
	if err := rest.Validate(method, rest.GUID(props.TemplateGUID, "templateGUID")); err != nil {
		return "", err
	}

	body := *props
	if body.ExternalSourceGUID == "" && body.ExternalSourceName == "" {
		body.ExternalSourceGUID = m.externalSourceGUID
		body.ExternalSourceName = m.externalSourceName
	}
	return rest.PostForGUID(ctx, m.client, method, elementFromTemplateURL, body, userID)
}
