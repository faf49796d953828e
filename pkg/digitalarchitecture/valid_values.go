package digitalarchitecture

import (
	"context"
	"fmt"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/metadata"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/rest"
)

const (
	validMetadataValuesURL = baseURL + "/valid-metadata-values"
	setUpValueURL          = validMetadataValuesURL + "/setup-value/{2}?typeName={3}"
	setUpMapNameURL        = validMetadataValuesURL + "/setup-map-name/{2}?typeName={3}"
	setUpMapValueURL       = validMetadataValuesURL + "/setup-map-value/{2}/{3}?typeName={4}"
	clearValueURL          = validMetadataValuesURL + "/clear-value/{2}?typeName={3}&preferredValue={4}"
	clearMapNameURL        = validMetadataValuesURL + "/clear-map-name/{2}?typeName={3}&mapName={4}"
	clearMapValueURL       = validMetadataValuesURL + "/clear-map-value/{2}/{3}?typeName={4}&preferredValue={5}"
	validateValueURL       = validMetadataValuesURL + "/validate-value/{2}?typeName={3}&actualValue={4}"
	validateMapNameURL     = validMetadataValuesURL + "/validate-map-name/{2}?typeName={3}&mapName={4}"
	validateMapValueURL    = validMetadataValuesURL + "/validate-map-value/{2}/{3}?typeName={4}&actualValue={5}"
	getValueURL            = validMetadataValuesURL + "/get-value/{2}?typeName={3}&preferredValue={4}"
	getMapNameURL          = validMetadataValuesURL + "/get-map-name/{2}?typeName={3}&mapName={4}"
	getMapValueURL         = validMetadataValuesURL + "/get-map-value/{2}/{3}?typeName={4}&preferredValue={5}"
	getValidValuesURL      = validMetadataValuesURL + "/get-valid-metadata-values/{2}?typeName={3}&startFrom={4}&pageSize={5}"
	consistentValuesURL    = validMetadataValuesURL + "/{2}/consistent-metadata-values/{3}?typeName={4}&mapName={5}&startFrom={6}&pageSize={7}"
	setConsistentValuesURL = validMetadataValuesURL + "/{2}/consistent-metadata-values/{3}/{4}/{5}?typeName={6}&mapName1={7}&mapName2={8}"
)

// ValidValuesManager maintains the lists of values allowed for open metadata
// properties. An empty typeName applies a value to every type with the property.
type ValidValuesManager struct {
	manager
}

// NewValidValuesManager creates a ValidValuesManager that calls through client
func NewValidValuesManager(client *rest.Client, opts ...Option) *ValidValuesManager {
	return &ValidValuesManager{manager: newManager(client, opts)}
}

// SetUpValidMetadataValue adds or updates an allowed value of a string property
func (m *ValidValuesManager) SetUpValidMetadataValue(ctx context.Context, userID, typeName, propertyName string, value *metadata.ValidMetadataValue) error {
	const method = "SetUpValidMetadataValue"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.Name(propertyName, "propertyName"),
		rest.Object(value, "validMetadataValue"),
	); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, setUpValueURL, value, userID, propertyName, typeName)
}

// SetUpValidMetadataMapName adds or updates an allowed key of a map property
func (m *ValidValuesManager) SetUpValidMetadataMapName(ctx context.Context, userID, typeName, propertyName string, value *metadata.ValidMetadataValue) error {
	const method = "SetUpValidMetadataMapName"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.Name(propertyName, "propertyName"),
		rest.Object(value, "validMetadataValue"),
	); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, setUpMapNameURL, value, userID, propertyName, typeName)
}

// SetUpValidMetadataMapValue adds or updates an allowed value for one key of
// a map property
func (m *ValidValuesManager) SetUpValidMetadataMapValue(ctx context.Context, userID, typeName, propertyName, mapName string, value *metadata.ValidMetadataValue) error {
	const method = "SetUpValidMetadataMapValue"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.Name(propertyName, "propertyName"),
		rest.Name(mapName, "mapName"),
		rest.Object(value, "validMetadataValue"),
	); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, setUpMapValueURL, value, userID, propertyName, mapName, typeName)
}

// ClearValidMetadataValue removes an allowed value
func (m *ValidValuesManager) ClearValidMetadataValue(ctx context.Context, userID, typeName, propertyName, preferredValue string) error {
	const method = "ClearValidMetadataValue"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.Name(propertyName, "propertyName"),
		rest.Name(preferredValue, "preferredValue"),
	); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, clearValueURL, m.externalSource(), userID, propertyName, typeName, preferredValue)
}

// ClearValidMetadataMapName removes an allowed map key
func (m *ValidValuesManager) ClearValidMetadataMapName(ctx context.Context, userID, typeName, propertyName, mapName string) error {
	const method = "ClearValidMetadataMapName"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.Name(propertyName, "propertyName"),
		rest.Name(mapName, "mapName"),
	); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, clearMapNameURL, m.externalSource(), userID, propertyName, typeName, mapName)
}

// ClearValidMetadataMapValue removes an allowed value for one map key
func (m *ValidValuesManager) ClearValidMetadataMapValue(ctx context.Context, userID, typeName, propertyName, mapName, preferredValue string) error {
	const method = "ClearValidMetadataMapValue"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.Name(propertyName, "propertyName"),
		rest.Name(mapName, "mapName"),
		rest.Name(preferredValue, "preferredValue"),
	); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, clearMapValueURL, m.externalSource(), userID, propertyName, mapName, typeName, preferredValue)
}

// ValidateMetadataValue returns an *rest.InvalidParameterError when
// actualValue is not allowed for the property
func (m *ValidValuesManager) ValidateMetadataValue(ctx context.Context, userID, typeName, propertyName, actualValue string) error {
	const method = "ValidateMetadataValue"
	if err := rest.Validate(method, rest.UserID(userID), rest.Name(propertyName, "propertyName")); err != nil {
		return err
	}
	ok, err := rest.GetBoolean(ctx, m.client, method, validateValueURL, userID, propertyName, typeName, actualValue)
	if err != nil {
		return err
	}
	if !ok {
		return rest.NewInvalidParameterError(method, propertyName, fmt.Sprintf("has a value %q that is not valid", actualValue))
	}
	return nil
}

// ValidateMetadataMapName returns an *rest.InvalidParameterError when mapName
// is not an allowed key of the property
func (m *ValidValuesManager) ValidateMetadataMapName(ctx context.Context, userID, typeName, propertyName, mapName string) error {
	const method = "ValidateMetadataMapName"
	if err := rest.Validate(method, rest.UserID(userID), rest.Name(propertyName, "propertyName")); err != nil {
		return err
	}
	ok, err := rest.GetBoolean(ctx, m.client, method, validateMapNameURL, userID, propertyName, typeName, mapName)
	if err != nil {
		return err
	}
	if !ok {
		return rest.NewInvalidParameterError(method, propertyName, fmt.Sprintf("has a map name %q that is not valid", mapName))
	}
	return nil
}

// ValidateMetadataMapValue returns an *rest.InvalidParameterError when
// actualValue is not allowed for the map key
func (m *ValidValuesManager) ValidateMetadataMapValue(ctx context.Context, userID, typeName, propertyName, mapName, actualValue string) error {
	const method = "ValidateMetadataMapValue"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.Name(propertyName, "propertyName"),
		rest.Name(mapName, "mapName"),
	); err != nil {
		return err
	}
	ok, err := rest.GetBoolean(ctx, m.client, method, validateMapValueURL, userID, propertyName, mapName, typeName, actualValue)
	if err != nil {
		return err
	}
	if !ok {
		return rest.NewInvalidParameterError(method, propertyName, fmt.Sprintf("has a value %q for map name %q that is not valid", actualValue, mapName))
	}
	return nil
}

// GetValidMetadataValue returns the definition of one allowed value
func (m *ValidValuesManager) GetValidMetadataValue(ctx context.Context, userID, typeName, propertyName, preferredValue string) (*metadata.ValidMetadataValue, error) {
	const method = "GetValidMetadataValue"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.Name(propertyName, "propertyName"),
		rest.Name(preferredValue, "preferredValue"),
	); err != nil {
		return nil, err
	}
	return rest.GetElement[metadata.ValidMetadataValue](ctx, m.client, method, getValueURL, userID, propertyName, typeName, preferredValue)
}

// GetValidMetadataMapName returns the definition of one allowed map key
func (m *ValidValuesManager) GetValidMetadataMapName(ctx context.Context, userID, typeName, propertyName, mapName string) (*metadata.ValidMetadataValue, error) {
	const method = "GetValidMetadataMapName"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.Name(propertyName, "propertyName"),
		rest.Name(mapName, "mapName"),
	); err != nil {
		return nil, err
	}
	return rest.GetElement[metadata.ValidMetadataValue](ctx, m.client, method, getMapNameURL, userID, propertyName, typeName, mapName)
}

// GetValidMetadataMapValue returns the definition of one allowed value of a map key
func (m *ValidValuesManager) GetValidMetadataMapValue(ctx context.Context, userID, typeName, propertyName, mapName, preferredValue string) (*metadata.ValidMetadataValue, error) {
	const method = "GetValidMetadataMapValue"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.Name(propertyName, "propertyName"),
		rest.Name(mapName, "mapName"),
		rest.Name(preferredValue, "preferredValue"),
	); err != nil {
		return nil, err
	}
	return rest.GetElement[metadata.ValidMetadataValue](ctx, m.client, method, getMapValueURL, userID, propertyName, mapName, typeName, preferredValue)
}

// GetValidMetadataValues lists the allowed values of a property
func (m *ValidValuesManager) GetValidMetadataValues(ctx context.Context, userID, typeName, propertyName string, startFrom, pageSize int) ([]metadata.ValidMetadataValueDetail, error) {
	const method = "GetValidMetadataValues"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.Name(propertyName, "propertyName"),
		m.paging(startFrom, pageSize),
	); err != nil {
		return nil, err
	}
	return rest.GetElements[metadata.ValidMetadataValueDetail](ctx, m.client, method, getValidValuesURL, userID, propertyName, typeName, startFrom, pageSize)
}

// ConsistentValue names one side of a pair of values that belong together
type ConsistentValue struct {
	PropertyName   string
	MapName        string
	PreferredValue string
}

// SetConsistentMetadataValues records that value1 and value2 are expected to
// appear together on elements of typeName
func (m *ValidValuesManager) SetConsistentMetadataValues(ctx context.Context, userID, typeName string, value1, value2 ConsistentValue) error {
	const method = "SetConsistentMetadataValues"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.Name(value1.PropertyName, "propertyName1"),
		rest.Name(value1.PreferredValue, "preferredValue1"),
		rest.Name(value2.PropertyName, "propertyName2"),
		rest.Name(value2.PreferredValue, "preferredValue2"),
	); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, setConsistentValuesURL, m.externalSource(), userID,
		value1.PropertyName, value1.PreferredValue, value2.PropertyName, value2.PreferredValue,
		typeName, value1.MapName, value2.MapName)
}

// GetConsistentMetadataValues returns the values expected alongside preferredValue
func (m *ValidValuesManager) GetConsistentMetadataValues(ctx context.Context, userID, typeName, propertyName, mapName, preferredValue string, startFrom, pageSize int) ([]metadata.ValidMetadataValue, error) {
	const method = "GetConsistentMetadataValues"
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.Name(propertyName, "propertyName"),
		rest.Name(preferredValue, "preferredValue"),
		m.paging(startFrom, pageSize),
	); err != nil {
		return nil, err
	}
	return rest.GetElements[metadata.ValidMetadataValue](ctx, m.client, method, consistentValuesURL, userID,
		propertyName, preferredValue, typeName, mapName, startFrom, pageSize)
}
