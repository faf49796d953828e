package digitalarchitecture

import (
	"context"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/metadata"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/rest"
)

const (
	locationsURL            = baseURL + "/locations"
	locationFromTemplateURL = locationsURL + "/from-template/{2}"
	locationUpdateURL       = locationsURL + "/{2}/update?isMergeUpdate={3}"
	locationDeleteURL       = locationsURL + "/{2}/delete"
	locationByGUIDURL       = locationsURL + "/{2}"
	locationsBySearchURL    = locationsURL + "/by-search-string?startFrom={2}&pageSize={3}"
	locationsByNameURL      = locationsURL + "/by-name?startFrom={2}&pageSize={3}"
	nestedLocationURL       = locationsURL + "/{2}/nested-locations/{3}"
	adjacentLocationURL     = locationsURL + "/{2}/adjacent-locations/{3}"
	assetLocationURL        = locationsURL + "/{2}/assets/{3}"
	fixedLocationURL        = locationsURL + "/{2}/is-fixed-location"
	secureLocationURL       = locationsURL + "/{2}/is-secure-location"
	cyberLocationURL        = locationsURL + "/{2}/is-cyber-location"
	nestedLocationsURL      = locationsURL + "/{2}/nested-locations?startFrom={3}&pageSize={4}"
	groupingLocationsURL    = locationsURL + "/{2}/grouping-locations?startFrom={3}&pageSize={4}"
	adjacentLocationsURL    = locationsURL + "/{2}/adjacent-locations?startFrom={3}&pageSize={4}"
	locationsForAssetURL    = baseURL + "/assets/{2}/locations?startFrom={3}&pageSize={4}"
)

// LocationManager maintains locations and how they relate to each other and
// to assets
type LocationManager struct {
	manager
}

// NewLocationManager creates a LocationManager that calls through client
func NewLocationManager(client *rest.Client, opts ...Option) *LocationManager {
	return &LocationManager{manager: newManager(client, opts)}
}

// CreateLocation creates a location and returns its GUID
func (m *LocationManager) CreateLocation(ctx context.Context, userID string, props *metadata.LocationProperties) (string, error) {
	const method = "CreateLocation"
	if err := rest.Validate(method, rest.UserID(userID), properties(props, "locationProperties")); err != nil {
		return "", err
	}
	return rest.PostForGUID(ctx, m.client, method, locationsURL, m.referenceable(props), userID)
}

// CreateLocationFromTemplate creates a location from a template
func (m *LocationManager) CreateLocationFromTemplate(ctx context.Context, userID, templateGUID string, props *metadata.TemplateProperties) (string, error) {
	const method = "CreateLocationFromTemplate"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.GUID(templateGUID, "templateGUID"),
		properties(props, "templateProperties"),
	); err != nil {
		return "", err
	}
	return rest.PostForGUID(ctx, m.client, method, locationFromTemplateURL, m.fromTemplate(props), userID, templateGUID)
}

// UpdateLocation updates a location
func (m *LocationManager) UpdateLocation(ctx context.Context, userID, locationGUID string, isMergeUpdate bool, props *metadata.LocationProperties) error {
	const method = "UpdateLocation"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.GUID(locationGUID, "locationGUID"),
		rest.Object(props, "locationProperties"),
	); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, locationUpdateURL, m.referenceable(props), userID, locationGUID, isMergeUpdate)
}

// RemoveLocation deletes a location
func (m *LocationManager) RemoveLocation(ctx context.Context, userID, locationGUID string) error {
	const method = "RemoveLocation"
	if err := rest.Validate(method, rest.UserID(userID), rest.GUID(locationGUID, "locationGUID")); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, locationDeleteURL, m.externalSource(), userID, locationGUID)
}

// SetupNestedLocation records that nestedLocationGUID lies within parentLocationGUID
func (m *LocationManager) SetupNestedLocation(ctx context.Context, userID, parentLocationGUID, nestedLocationGUID string, props *metadata.RelationshipProperties) error {
	return m.link(ctx, "SetupNestedLocation", nestedLocationURL, userID, parentLocationGUID, "parentLocationGUID", nestedLocationGUID, "nestedLocationGUID", props)
}

// ClearNestedLocation removes a nesting between two locations
func (m *LocationManager) ClearNestedLocation(ctx context.Context, userID, parentLocationGUID, nestedLocationGUID string) error {
	return m.unlink(ctx, "ClearNestedLocation", nestedLocationURL, userID, parentLocationGUID, "parentLocationGUID", nestedLocationGUID, "nestedLocationGUID")
}

// SetupPeerLocations records that two locations are adjacent
func (m *LocationManager) SetupPeerLocations(ctx context.Context, userID, locationOneGUID, locationTwoGUID string, props *metadata.RelationshipProperties) error {
	return m.link(ctx, "SetupPeerLocations", adjacentLocationURL, userID, locationOneGUID, "locationOneGUID", locationTwoGUID, "locationTwoGUID", props)
}

// ClearPeerLocations removes the adjacency between two locations
func (m *LocationManager) ClearPeerLocations(ctx context.Context, userID, locationOneGUID, locationTwoGUID string) error {
	return m.unlink(ctx, "ClearPeerLocations", adjacentLocationURL, userID, locationOneGUID, "locationOneGUID", locationTwoGUID, "locationTwoGUID")
}

// SetupAssetLocation records that an asset is found at a location
func (m *LocationManager) SetupAssetLocation(ctx context.Context, userID, locationGUID, assetGUID string, props *metadata.AssetLocationProperties) error {
	return m.link(ctx, "SetupAssetLocation", assetLocationURL, userID, locationGUID, "locationGUID", assetGUID, "assetGUID", props)
}

// ClearAssetLocation removes the link between an asset and a location
func (m *LocationManager) ClearAssetLocation(ctx context.Context, userID, locationGUID, assetGUID string) error {
	return m.unlink(ctx, "ClearAssetLocation", assetLocationURL, userID, locationGUID, "locationGUID", assetGUID, "assetGUID")
}

// SetLocationAsFixedPhysical classifies a location as a fixed physical place
func (m *LocationManager) SetLocationAsFixedPhysical(ctx context.Context, userID, locationGUID string, props *metadata.FixedLocationProperties) error {
	return m.classify(ctx, "SetLocationAsFixedPhysical", fixedLocationURL, userID, locationGUID, "locationGUID", props)
}

// ClearLocationAsFixedPhysical removes the FixedLocation classification
func (m *LocationManager) ClearLocationAsFixedPhysical(ctx context.Context, userID, locationGUID string) error {
	return m.declassify(ctx, "ClearLocationAsFixedPhysical", fixedLocationURL, userID, locationGUID, "locationGUID")
}

// SetLocationAsSecure classifies a location as secure
func (m *LocationManager) SetLocationAsSecure(ctx context.Context, userID, locationGUID string, props *metadata.SecureLocationProperties) error {
	return m.classify(ctx, "SetLocationAsSecure", secureLocationURL, userID, locationGUID, "locationGUID", props)
}

// ClearLocationAsSecure removes the SecureLocation classification
func (m *LocationManager) ClearLocationAsSecure(ctx context.Context, userID, locationGUID string) error {
	return m.declassify(ctx, "ClearLocationAsSecure", secureLocationURL, userID, locationGUID, "locationGUID")
}

// SetLocationAsCyber classifies a location as a place in cyberspace
func (m *LocationManager) SetLocationAsCyber(ctx context.Context, userID, locationGUID string, props *metadata.CyberLocationProperties) error {
	return m.classify(ctx, "SetLocationAsCyber", cyberLocationURL, userID, locationGUID, "locationGUID", props)
}

// ClearLocationAsCyber removes the CyberLocation classification
func (m *LocationManager) ClearLocationAsCyber(ctx context.Context, userID, locationGUID string) error {
	return m.declassify(ctx, "ClearLocationAsCyber", cyberLocationURL, userID, locationGUID, "locationGUID")
}

// FindLocations returns the locations matching searchString
func (m *LocationManager) FindLocations(ctx context.Context, userID, searchString string, startFrom, pageSize int) ([]metadata.LocationElement, error) {
	const method = "FindLocations"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.SearchString(searchString, "searchString"),
		m.paging(startFrom, pageSize),
	); err != nil {
		return nil, err
	}
	return rest.PostForElements[metadata.LocationElement](ctx, m.client, method, locationsBySearchURL, searchBody(searchString), userID, startFrom, pageSize)
}

// GetLocationsByName returns the locations with an exact name
func (m *LocationManager) GetLocationsByName(ctx context.Context, userID, name string, startFrom, pageSize int) ([]metadata.LocationElement, error) {
	const method = "GetLocationsByName"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.Name(name, "name"),
		m.paging(startFrom, pageSize),
	); err != nil {
		return nil, err
	}
	return rest.PostForElements[metadata.LocationElement](ctx, m.client, method, locationsByNameURL, nameBody(name), userID, startFrom, pageSize)
}

// GetLocationByGUID returns a single location
func (m *LocationManager) GetLocationByGUID(ctx context.Context, userID, locationGUID string) (*metadata.LocationElement, error) {
	const method = "GetLocationByGUID"
	if err := rest.Validate(method, rest.UserID(userID), rest.GUID(locationGUID, "locationGUID")); err != nil {
		return nil, err
	}
	return rest.GetElement[metadata.LocationElement](ctx, m.client, method, locationByGUIDURL, userID, locationGUID)
}

// GetNestedLocations returns the locations nested within locationGUID
func (m *LocationManager) GetNestedLocations(ctx context.Context, userID, locationGUID string, startFrom, pageSize int) ([]metadata.LocationElement, error) {
	return related[metadata.LocationElement](ctx, &m.manager, "GetNestedLocations", nestedLocationsURL, userID, locationGUID, "locationGUID", startFrom, pageSize)
}

// GetGroupingLocations returns the locations that locationGUID is nested within
func (m *LocationManager) GetGroupingLocations(ctx context.Context, userID, locationGUID string, startFrom, pageSize int) ([]metadata.LocationElement, error) {
	return related[metadata.LocationElement](ctx, &m.manager, "GetGroupingLocations", groupingLocationsURL, userID, locationGUID, "locationGUID", startFrom, pageSize)
}

// GetAdjacentLocations returns the peers of locationGUID
func (m *LocationManager) GetAdjacentLocations(ctx context.Context, userID, locationGUID string, startFrom, pageSize int) ([]metadata.LocationElement, error) {
	return related[metadata.LocationElement](ctx, &m.manager, "GetAdjacentLocations", adjacentLocationsURL, userID, locationGUID, "locationGUID", startFrom, pageSize)
}

// GetAssetLocations returns the locations an asset is found at
func (m *LocationManager) GetAssetLocations(ctx context.Context, userID, assetGUID string, startFrom, pageSize int) ([]metadata.LocationElement, error) {
	return related[metadata.LocationElement](ctx, &m.manager, "GetAssetLocations", locationsForAssetURL, userID, assetGUID, "assetGUID", startFrom, pageSize)
}
