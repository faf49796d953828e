package digitalarchitecture

import (
	"context"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/metadata"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/rest"
)

const (
	endpointsURL                 = baseURL + "/endpoints"
	endpointFromTemplateURL      = endpointsURL + "/from-template/{2}"
	endpointUpdateURL            = endpointsURL + "/{2}/update?isMergeUpdate={3}"
	endpointDeleteURL            = endpointsURL + "/{2}/delete"
	endpointByGUIDURL            = endpointsURL + "/{2}"
	endpointsBySearchURL         = endpointsURL + "/by-search-string?startFrom={2}&pageSize={3}"
	endpointsByNameURL           = endpointsURL + "/by-name?startFrom={2}&pageSize={3}"
	endpointsByNetworkAddressURL = endpointsURL + "/by-network-address?startFrom={2}&pageSize={3}"
)

// CreateEndpoint creates an endpoint and returns its GUID
func (m *ConnectionManager) CreateEndpoint(ctx context.Context, userID string, props *metadata.EndpointProperties) (string, error) {
	const method = "CreateEndpoint"
	if err := rest.Validate(method, rest.UserID(userID), properties(props, "endpointProperties")); err != nil {
		return "", err
	}
	return rest.PostForGUID(ctx, m.client, method, endpointsURL, m.referenceable(props), userID)
}

// CreateEndpointFromTemplate creates an endpoint from a template
func (m *ConnectionManager) CreateEndpointFromTemplate(ctx context.Context, userID, templateGUID string, props *metadata.TemplateProperties) (string, error) {
	const method = "CreateEndpointFromTemplate"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.GUID(templateGUID, "templateGUID"),
		properties(props, "templateProperties"),
	); err != nil {
		return "", err
	}
	return rest.PostForGUID(ctx, m.client, method, endpointFromTemplateURL, m.fromTemplate(props), userID, templateGUID)
}

// UpdateEndpoint updates an endpoint
func (m *ConnectionManager) UpdateEndpoint(ctx context.Context, userID, endpointGUID string, isMergeUpdate bool, props *metadata.EndpointProperties) error {
	const method = "UpdateEndpoint"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.GUID(endpointGUID, "endpointGUID"),
		rest.Object(props, "endpointProperties"),
	); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, endpointUpdateURL, m.referenceable(props), userID, endpointGUID, isMergeUpdate)
}

// RemoveEndpoint deletes an endpoint
func (m *ConnectionManager) RemoveEndpoint(ctx context.Context, userID, endpointGUID string) error {
	const method = "RemoveEndpoint"
	if err := rest.Validate(method, rest.UserID(userID), rest.GUID(endpointGUID, "endpointGUID")); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, endpointDeleteURL, m.externalSource(), userID, endpointGUID)
}

// FindEndpoints returns the endpoints matching searchString
func (m *ConnectionManager) FindEndpoints(ctx context.Context, userID, searchString string, startFrom, pageSize int) ([]metadata.EndpointElement, error) {
	const method = "FindEndpoints"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.SearchString(searchString, "searchString"),
		m.paging(startFrom, pageSize),
	); err != nil {
		return nil, err
	}
	return rest.PostForElements[metadata.EndpointElement](ctx, m.client, method, endpointsBySearchURL, searchBody(searchString), userID, startFrom, pageSize)
}

// GetEndpointsByName returns the endpoints with an exact name
func (m *ConnectionManager) GetEndpointsByName(ctx context.Context, userID, name string, startFrom, pageSize int) ([]metadata.EndpointElement, error) {
	const method = "GetEndpointsByName"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.Name(name, "name"),
		m.paging(startFrom, pageSize),
	); err != nil {
		return nil, err
	}
	return rest.PostForElements[metadata.EndpointElement](ctx, m.client, method, endpointsByNameURL, nameBody(name), userID, startFrom, pageSize)
}

// GetEndpointsByNetworkAddress returns the endpoints reaching networkAddress
func (m *ConnectionManager) GetEndpointsByNetworkAddress(ctx context.Context, userID, networkAddress string, startFrom, pageSize int) ([]metadata.EndpointElement, error) {
	const method = "GetEndpointsByNetworkAddress"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.Name(networkAddress, "networkAddress"),
		m.paging(startFrom, pageSize),
	); err != nil {
		return nil, err
	}
	body := rest.NameRequestBody{Name: networkAddress, NameParameterName: "networkAddress", NamePropertyName: "networkAddress"}
	return rest.PostForElements[metadata.EndpointElement](ctx, m.client, method, endpointsByNetworkAddressURL, body, userID, startFrom, pageSize)
}

// GetEndpointByGUID returns a single endpoint
func (m *ConnectionManager) GetEndpointByGUID(ctx context.Context, userID, endpointGUID string) (*metadata.EndpointElement, error) {
	const method = "GetEndpointByGUID"
	if err := rest.Validate(method, rest.UserID(userID), rest.GUID(endpointGUID, "endpointGUID")); err != nil {
		return nil, err
	}
	return rest.GetElement[metadata.EndpointElement](ctx, m.client, method, endpointByGUIDURL, userID, endpointGUID)
}
