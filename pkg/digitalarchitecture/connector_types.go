package digitalarchitecture

import (
	"context"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/metadata"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/rest"
)

const (
	connectorTypesURL            = baseURL + "/connector-types"
	connectorTypeFromTemplateURL = connectorTypesURL + "/from-template/{2}"
	connectorTypeUpdateURL       = connectorTypesURL + "/{2}/update?isMergeUpdate={3}"
	connectorTypeDeleteURL       = connectorTypesURL + "/{2}/delete"
	connectorTypeByGUIDURL       = connectorTypesURL + "/{2}"
	connectorTypesBySearchURL    = connectorTypesURL + "/by-search-string?startFrom={2}&pageSize={3}"
	connectorTypesByNameURL      = connectorTypesURL + "/by-name?startFrom={2}&pageSize={3}"
)

// CreateConnectorType creates a connector type and returns its GUID
func (m *ConnectionManager) CreateConnectorType(ctx context.Context, userID string, props *metadata.ConnectorTypeProperties) (string, error) {
	const method = "CreateConnectorType"
	if err := rest.Validate(method, rest.UserID(userID), properties(props, "connectorTypeProperties")); err != nil {
		return "", err
	}
	return rest.PostForGUID(ctx, m.client, method, connectorTypesURL, m.referenceable(props), userID)
}

// CreateConnectorTypeFromTemplate creates a connector type from a template
func (m *ConnectionManager) CreateConnectorTypeFromTemplate(ctx context.Context, userID, templateGUID string, props *metadata.TemplateProperties) (string, error) {
	const method = "CreateConnectorTypeFromTemplate"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.GUID(templateGUID, "templateGUID"),
		properties(props, "templateProperties"),
	); err != nil {
		return "", err
	}
	return rest.PostForGUID(ctx, m.client, method, connectorTypeFromTemplateURL, m.fromTemplate(props), userID, templateGUID)
}

// UpdateConnectorType updates a connector type
func (m *ConnectionManager) UpdateConnectorType(ctx context.Context, userID, connectorTypeGUID string, isMergeUpdate bool, props *metadata.ConnectorTypeProperties) error {
	const method = "UpdateConnectorType"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.GUID(connectorTypeGUID, "connectorTypeGUID"),
		rest.Object(props, "connectorTypeProperties"),
	); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, connectorTypeUpdateURL, m.referenceable(props), userID, connectorTypeGUID, isMergeUpdate)
}

// RemoveConnectorType deletes a connector type
func (m *ConnectionManager) RemoveConnectorType(ctx context.Context, userID, connectorTypeGUID string) error {
	const method = "RemoveConnectorType"
	if err := rest.Validate(method, rest.UserID(userID), rest.GUID(connectorTypeGUID, "connectorTypeGUID")); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, connectorTypeDeleteURL, m.externalSource(), userID, connectorTypeGUID)
}

// FindConnectorTypes returns the connector types matching searchString
func (m *ConnectionManager) FindConnectorTypes(ctx context.Context, userID, searchString string, startFrom, pageSize int) ([]metadata.ConnectorTypeElement, error) {
	const method = "FindConnectorTypes"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.SearchString(searchString, "searchString"),
		m.paging(startFrom, pageSize),
	); err != nil {
		return nil, err
	}
	return rest.PostForElements[metadata.ConnectorTypeElement](ctx, m.client, method, connectorTypesBySearchURL, searchBody(searchString), userID, startFrom, pageSize)
}

// GetConnectorTypesByName returns the connector types with an exact name
func (m *ConnectionManager) GetConnectorTypesByName(ctx context.Context, userID, name string, startFrom, pageSize int) ([]metadata.ConnectorTypeElement, error) {
	const method = "GetConnectorTypesByName"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.Name(name, "name"),
		m.paging(startFrom, pageSize),
	); err != nil {
		return nil, err
	}
	return rest.PostForElements[metadata.ConnectorTypeElement](ctx, m.client, method, connectorTypesByNameURL, nameBody(name), userID, startFrom, pageSize)
}

// GetConnectorTypeByGUID returns a single connector type
func (m *ConnectionManager) GetConnectorTypeByGUID(ctx context.Context, userID, connectorTypeGUID string) (*metadata.ConnectorTypeElement, error) {
	const method = "GetConnectorTypeByGUID"
	if err := rest.Validate(method, rest.UserID(userID), rest.GUID(connectorTypeGUID, "connectorTypeGUID")); err != nil {
		return nil, err
	}
	return rest.GetElement[metadata.ConnectorTypeElement](ctx, m.client, method, connectorTypeByGUIDURL, userID, connectorTypeGUID)
}
