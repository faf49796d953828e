package digitalarchitecture

import (
	"context"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/metadata"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/rest"
)

const (
	connectionsURL             = baseURL + "/connections"
	connectionFromTemplateURL  = connectionsURL + "/from-template/{2}"
	connectionUpdateURL        = connectionsURL + "/{2}/update?isMergeUpdate={3}"
	connectionDeleteURL        = connectionsURL + "/{2}/delete"
	connectionByGUIDURL        = connectionsURL + "/{2}"
	connectionsBySearchURL     = connectionsURL + "/by-search-string?startFrom={2}&pageSize={3}"
	connectionsByNameURL       = connectionsURL + "/by-name?startFrom={2}&pageSize={3}"
	connectionConnectorTypeURL = connectionsURL + "/{2}/connector-types/{3}"
	connectionEndpointURL      = connectionsURL + "/{2}/endpoints/{3}"
	connectionEmbeddedURL      = connectionsURL + "/{2}/embedded-connections/{3}"
	assetConnectionURL         = baseURL + "/assets/{2}/connections/{3}"
)

// ConnectionManager maintains connections and the connector types and
// endpoints they are built from
type ConnectionManager struct {
	manager
}

// NewConnectionManager creates a ConnectionManager that calls through client
func NewConnectionManager(client *rest.Client, opts ...Option) *ConnectionManager {
	return &ConnectionManager{manager: newManager(client, opts)}
}

// CreateConnection creates a connection and returns its GUID
func (m *ConnectionManager) CreateConnection(ctx context.Context, userID string, props *metadata.ConnectionProperties) (string, error) {
	const method = "CreateConnection"
	if err := rest.Validate(method, rest.UserID(userID), properties(props, "connectionProperties")); err != nil {
		return "", err
	}
	return rest.PostForGUID(ctx, m.client, method, connectionsURL, m.referenceable(props), userID)
}

// CreateConnectionFromTemplate creates a connection by copying the template
// element and overriding its properties with props
func (m *ConnectionManager) CreateConnectionFromTemplate(ctx context.Context, userID, templateGUID string, props *metadata.TemplateProperties) (string, error) {
	const method = "CreateConnectionFromTemplate"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.GUID(templateGUID, "templateGUID"),
		properties(props, "templateProperties"),
	); err != nil {
		return "", err
	}
	return rest.PostForGUID(ctx, m.client, method, connectionFromTemplateURL, m.fromTemplate(props), userID, templateGUID)
}

// UpdateConnection updates a connection. With isMergeUpdate, properties left
// empty in props keep their stored values.
func (m *ConnectionManager) UpdateConnection(ctx context.Context, userID, connectionGUID string, isMergeUpdate bool, props *metadata.ConnectionProperties) error {
	const method = "UpdateConnection"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.GUID(connectionGUID, "connectionGUID"),
		rest.Object(props, "connectionProperties"),
	); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, connectionUpdateURL, m.referenceable(props), userID, connectionGUID, isMergeUpdate)
}

// SetupConnectorType links a connection to the connector type that implements it
func (m *ConnectionManager) SetupConnectorType(ctx context.Context, userID, connectionGUID, connectorTypeGUID string, props *metadata.RelationshipProperties) error {
	const method = "SetupConnectorType"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.GUID(connectionGUID, "connectionGUID"),
		rest.GUID(connectorTypeGUID, "connectorTypeGUID"),
	); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, connectionConnectorTypeURL, m.relationship(props), userID, connectionGUID, connectorTypeGUID)
}

// ClearConnectorType removes the link between a connection and its connector type
func (m *ConnectionManager) ClearConnectorType(ctx context.Context, userID, connectionGUID, connectorTypeGUID string) error {
	const method = "ClearConnectorType"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.GUID(connectionGUID, "connectionGUID"),
		rest.GUID(connectorTypeGUID, "connectorTypeGUID"),
	); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, connectionConnectorTypeURL+"/remove", m.externalSource(), userID, connectionGUID, connectorTypeGUID)
}

// SetupEndpoint links a connection to the endpoint it reaches
func (m *ConnectionManager) SetupEndpoint(ctx context.Context, userID, connectionGUID, endpointGUID string, props *metadata.RelationshipProperties) error {
	const method = "SetupEndpoint"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.GUID(connectionGUID, "connectionGUID"),
		rest.GUID(endpointGUID, "endpointGUID"),
	); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, connectionEndpointURL, m.relationship(props), userID, connectionGUID, endpointGUID)
}

// ClearEndpoint removes the link between a connection and its endpoint
func (m *ConnectionManager) ClearEndpoint(ctx context.Context, userID, connectionGUID, endpointGUID string) error {
	const method = "ClearEndpoint"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.GUID(connectionGUID, "connectionGUID"),
		rest.GUID(endpointGUID, "endpointGUID"),
	); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, connectionEndpointURL+"/remove", m.externalSource(), userID, connectionGUID, endpointGUID)
}

// SetupEmbeddedConnection adds an embedded connection to a virtual connection
func (m *ConnectionManager) SetupEmbeddedConnection(ctx context.Context, userID, connectionGUID, embeddedConnectionGUID string, props *metadata.EmbeddedConnectionProperties) error {
	const method = "SetupEmbeddedConnection"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.GUID(connectionGUID, "connectionGUID"),
		rest.GUID(embeddedConnectionGUID, "embeddedConnectionGUID"),
		rest.Object(props, "embeddedConnectionProperties"),
	); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, connectionEmbeddedURL, m.relationship(props), userID, connectionGUID, embeddedConnectionGUID)
}

// ClearEmbeddedConnection removes an embedded connection from a virtual connection
func (m *ConnectionManager) ClearEmbeddedConnection(ctx context.Context, userID, connectionGUID, embeddedConnectionGUID string) error {
	const method = "ClearEmbeddedConnection"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.GUID(connectionGUID, "connectionGUID"),
		rest.GUID(embeddedConnectionGUID, "embeddedConnectionGUID"),
	); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, connectionEmbeddedURL+"/remove", m.externalSource(), userID, connectionGUID, embeddedConnectionGUID)
}

// SetupAssetConnection links an asset to the connection used to reach it
func (m *ConnectionManager) SetupAssetConnection(ctx context.Context, userID, assetGUID, connectionGUID string, props *metadata.AssetConnectionProperties) error {
	const method = "SetupAssetConnection"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.GUID(assetGUID, "assetGUID"),
		rest.GUID(connectionGUID, "connectionGUID"),
	); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, assetConnectionURL, m.relationship(props), userID, assetGUID, connectionGUID)
}

// ClearAssetConnection removes the link between an asset and its connection
func (m *ConnectionManager) ClearAssetConnection(ctx context.Context, userID, assetGUID, connectionGUID string) error {
	const method = "ClearAssetConnection"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.GUID(assetGUID, "assetGUID"),
		rest.GUID(connectionGUID, "connectionGUID"),
	); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, assetConnectionURL+"/remove", m.externalSource(), userID, assetGUID, connectionGUID)
}

// RemoveConnection deletes a connection
func (m *ConnectionManager) RemoveConnection(ctx context.Context, userID, connectionGUID string) error {
	const method = "RemoveConnection"
	if err := rest.Validate(method, rest.UserID(userID), rest.GUID(connectionGUID, "connectionGUID")); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, connectionDeleteURL, m.externalSource(), userID, connectionGUID)
}

// FindConnections returns the connections whose properties match the
// regular expression searchString
func (m *ConnectionManager) FindConnections(ctx context.Context, userID, searchString string, startFrom, pageSize int) ([]metadata.ConnectionElement, error) {
	const method = "FindConnections"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.SearchString(searchString, "searchString"),
		m.paging(startFrom, pageSize),
	); err != nil {
		return nil, err
	}
	return rest.PostForElements[metadata.ConnectionElement](ctx, m.client, method, connectionsBySearchURL, searchBody(searchString), userID, startFrom, pageSize)
}

// GetConnectionsByName returns the connections with an exact name
func (m *ConnectionManager) GetConnectionsByName(ctx context.Context, userID, name string, startFrom, pageSize int) ([]metadata.ConnectionElement, error) {
	const method = "GetConnectionsByName"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.Name(name, "name"),
		m.paging(startFrom, pageSize),
	); err != nil {
		return nil, err
	}
	return rest.PostForElements[metadata.ConnectionElement](ctx, m.client, method, connectionsByNameURL, nameBody(name), userID, startFrom, pageSize)
}

// GetConnectionByGUID returns a single connection
func (m *ConnectionManager) GetConnectionByGUID(ctx context.Context, userID, connectionGUID string) (*metadata.ConnectionElement, error) {
	const method = "GetConnectionByGUID"
	if err := rest.Validate(method, rest.UserID(userID), rest.GUID(connectionGUID, "connectionGUID")); err != nil {
		return nil, err
	}
	return rest.GetElement[metadata.ConnectionElement](ctx, m.client, method, connectionByGUIDURL, userID, connectionGUID)
}
