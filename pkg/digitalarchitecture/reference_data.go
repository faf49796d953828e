package digitalarchitecture

import (
	"context"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/metadata"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/rest"
)

const (
	validValuesURL             = baseURL + "/valid-values"
	validValueSetsURL          = validValuesURL + "/sets"
	validValueDefinitionsURL   = validValuesURL + "/definitions"
	validValueSetDefinitionURL = validValueSetsURL + "/{2}/definitions?isDefaultValue={3}"
	validValueUpdateURL        = validValuesURL + "/{2}/update?isMergeUpdate={3}"
	validValueDeleteURL        = validValuesURL + "/{2}/delete"
	validValueByGUIDURL        = validValuesURL + "/{2}"
	validValueMemberURL        = validValueSetsURL + "/{2}/members/{3}"
	validValueConsumerURL      = validValuesURL + "/{2}/consumers/{3}"
	referenceValueItemURL      = validValuesURL + "/{2}/assigned-items/{3}"
	validValueMappingURL       = validValuesURL + "/{2}/mappings/{3}"
	validValuesBySearchURL     = validValuesURL + "/by-search-string?startFrom={2}&pageSize={3}"
	validValuesByNameURL       = validValuesURL + "/by-name?startFrom={2}&pageSize={3}"
	allValidValuesURL          = validValuesURL + "?startFrom={2}&pageSize={3}"
	validValueSetMembersURL    = validValueSetsURL + "/{2}/members?startFrom={3}&pageSize={4}"
	setsForValidValueURL       = validValuesURL + "/{2}/sets?startFrom={3}&pageSize={4}"
	validValueConsumersURL     = validValuesURL + "/{2}/consumers?startFrom={3}&pageSize={4}"
	referenceValuesForItemURL  = validValuesURL + "/assigned-items/{2}/reference-values?startFrom={3}&pageSize={4}"
	referenceValueAssigneesURL = validValuesURL + "/{2}/assigned-items?startFrom={3}&pageSize={4}"
)

// ReferenceDataManager maintains valid value sets, their definitions, and
// the elements that consume them
type ReferenceDataManager struct {
	manager
}

// NewReferenceDataManager creates a ReferenceDataManager that calls through client
func NewReferenceDataManager(client *rest.Client, opts ...Option) *ReferenceDataManager {
	return &ReferenceDataManager{manager: newManager(client, opts)}
}

// CreateValidValueSet creates an empty valid value set and returns its GUID
func (m *ReferenceDataManager) CreateValidValueSet(ctx context.Context, userID string, props *metadata.ValidValueProperties) (string, error) {
	return m.create(ctx, "CreateValidValueSet", validValueSetsURL, userID, props, "validValueProperties")
}

// CreateValidValueDefinition creates a valid value. When setGUID is set the
// value becomes a member of that set, and its default when isDefaultValue is true.
func (m *ReferenceDataManager) CreateValidValueDefinition(ctx context.Context, userID, setGUID string, isDefaultValue bool, props *metadata.ValidValueProperties) (string, error) {
	const method = "CreateValidValueDefinition"
	if err := rest.Validate(method, rest.UserID(userID), properties(props, "validValueProperties")); err != nil {
		return "", err
	}
	if setGUID == "" {
		return rest.PostForGUID(ctx, m.client, method, validValueDefinitionsURL, m.referenceable(props), userID)
	}
	return rest.PostForGUID(ctx, m.client, method, validValueSetDefinitionURL, m.referenceable(props), userID, setGUID, isDefaultValue)
}

// UpdateValidValue updates a valid value set or definition
func (m *ReferenceDataManager) UpdateValidValue(ctx context.Context, userID, validValueGUID string, isMergeUpdate bool, props *metadata.ValidValueProperties) error {
	return m.update(ctx, "UpdateValidValue", validValueUpdateURL, userID, validValueGUID, "validValueGUID", isMergeUpdate, props, "validValueProperties")
}

// RemoveValidValue deletes a valid value set or definition
func (m *ReferenceDataManager) RemoveValidValue(ctx context.Context, userID, validValueGUID string) error {
	return m.remove(ctx, "RemoveValidValue", validValueDeleteURL, userID, validValueGUID, "validValueGUID")
}

// AttachValidValueToSet adds a valid value to a set
func (m *ReferenceDataManager) AttachValidValueToSet(ctx context.Context, userID, setGUID, validValueGUID string, props *metadata.ValidValueMembershipProperties) error {
	return m.link(ctx, "AttachValidValueToSet", validValueMemberURL, userID, setGUID, "setGUID", validValueGUID, "validValueGUID", props)
}

// DetachValidValueFromSet removes a valid value from a set
func (m *ReferenceDataManager) DetachValidValueFromSet(ctx context.Context, userID, setGUID, validValueGUID string) error {
	return m.unlink(ctx, "DetachValidValueFromSet", validValueMemberURL, userID, setGUID, "setGUID", validValueGUID, "validValueGUID")
}

// AssignValidValuesToConsumer records that the consumer's values come from
// the valid value set
func (m *ReferenceDataManager) AssignValidValuesToConsumer(ctx context.Context, userID, validValueGUID, consumerGUID string, props *metadata.ValidValueAssignmentProperties) error {
	return m.link(ctx, "AssignValidValuesToConsumer", validValueConsumerURL, userID, validValueGUID, "validValueGUID", consumerGUID, "consumerGUID", props)
}

// UnassignValidValuesFromConsumer removes a valid value assignment
func (m *ReferenceDataManager) UnassignValidValuesFromConsumer(ctx context.Context, userID, validValueGUID, consumerGUID string) error {
	return m.unlink(ctx, "UnassignValidValuesFromConsumer", validValueConsumerURL, userID, validValueGUID, "validValueGUID", consumerGUID, "consumerGUID")
}

// AssignReferenceValueToItem tags an element with a reference value
func (m *ReferenceDataManager) AssignReferenceValueToItem(ctx context.Context, userID, validValueGUID, itemGUID string, props *metadata.ReferenceValueAssignmentProperties) error {
	return m.link(ctx, "AssignReferenceValueToItem", referenceValueItemURL, userID, validValueGUID, "validValueGUID", itemGUID, "itemGUID", props)
}

// UnassignReferenceValueFromItem removes a reference value tag
func (m *ReferenceDataManager) UnassignReferenceValueFromItem(ctx context.Context, userID, validValueGUID, itemGUID string) error {
	return m.unlink(ctx, "UnassignReferenceValueFromItem", referenceValueItemURL, userID, validValueGUID, "validValueGUID", itemGUID, "itemGUID")
}

// MapValidValues records that two valid values mean the same thing
func (m *ReferenceDataManager) MapValidValues(ctx context.Context, userID, validValue1GUID, validValue2GUID string, props *metadata.ValidValuesMappingProperties) error {
	return m.link(ctx, "MapValidValues", validValueMappingURL, userID, validValue1GUID, "validValue1GUID", validValue2GUID, "validValue2GUID", props)
}

// UnmapValidValues removes a mapping between two valid values
func (m *ReferenceDataManager) UnmapValidValues(ctx context.Context, userID, validValue1GUID, validValue2GUID string) error {
	return m.unlink(ctx, "UnmapValidValues", validValueMappingURL, userID, validValue1GUID, "validValue1GUID", validValue2GUID, "validValue2GUID")
}

// FindValidValues returns the valid values matching searchString
func (m *ReferenceDataManager) FindValidValues(ctx context.Context, userID, searchString string, startFrom, pageSize int) ([]metadata.ValidValueElement, error) {
	return find[metadata.ValidValueElement](ctx, &m.manager, "FindValidValues", validValuesBySearchURL, userID, searchString, startFrom, pageSize)
}

// GetValidValuesByName returns the valid values with an exact name
func (m *ReferenceDataManager) GetValidValuesByName(ctx context.Context, userID, name string, startFrom, pageSize int) ([]metadata.ValidValueElement, error) {
	return byName[metadata.ValidValueElement](ctx, &m.manager, "GetValidValuesByName", validValuesByNameURL, userID, name, startFrom, pageSize)
}

// GetAllValidValues pages through every valid value
func (m *ReferenceDataManager) GetAllValidValues(ctx context.Context, userID string, startFrom, pageSize int) ([]metadata.ValidValueElement, error) {
	const method = "GetAllValidValues"
	if err := rest.Validate(method, rest.UserID(userID), m.paging(startFrom, pageSize)); err != nil {
		return nil, err
	}
	return rest.GetElements[metadata.ValidValueElement](ctx, m.client, method, allValidValuesURL, userID, startFrom, pageSize)
}

// GetValidValueSetMembers returns the members of a set
func (m *ReferenceDataManager) GetValidValueSetMembers(ctx context.Context, userID, setGUID string, startFrom, pageSize int) ([]metadata.ValidValueElement, error) {
	return related[metadata.ValidValueElement](ctx, &m.manager, "GetValidValueSetMembers", validValueSetMembersURL, userID, setGUID, "setGUID", startFrom, pageSize)
}

// GetSetsForValidValue returns the sets a valid value belongs to
func (m *ReferenceDataManager) GetSetsForValidValue(ctx context.Context, userID, validValueGUID string, startFrom, pageSize int) ([]metadata.ValidValueSetElement, error) {
	return related[metadata.ValidValueSetElement](ctx, &m.manager, "GetSetsForValidValue", setsForValidValueURL, userID, validValueGUID, "validValueGUID", startFrom, pageSize)
}

// GetValidValueAssignmentConsumers returns the elements using a valid value set
func (m *ReferenceDataManager) GetValidValueAssignmentConsumers(ctx context.Context, userID, validValueGUID string, startFrom, pageSize int) ([]metadata.ValidValueAssignmentConsumerElement, error) {
	return related[metadata.ValidValueAssignmentConsumerElement](ctx, &m.manager, "GetValidValueAssignmentConsumers", validValueConsumersURL, userID, validValueGUID, "validValueGUID", startFrom, pageSize)
}

// GetReferenceValues returns the reference values assigned to an element
func (m *ReferenceDataManager) GetReferenceValues(ctx context.Context, userID, itemGUID string, startFrom, pageSize int) ([]metadata.ValidValueElement, error) {
	return related[metadata.ValidValueElement](ctx, &m.manager, "GetReferenceValues", referenceValuesForItemURL, userID, itemGUID, "itemGUID", startFrom, pageSize)
}

// GetAssigneesOfReferenceValue returns the elements tagged with a reference value
func (m *ReferenceDataManager) GetAssigneesOfReferenceValue(ctx context.Context, userID, validValueGUID string, startFrom, pageSize int) ([]metadata.ReferenceValueAssignmentItemElement, error) {
	return related[metadata.ReferenceValueAssignmentItemElement](ctx, &m.manager, "GetAssigneesOfReferenceValue", referenceValueAssigneesURL, userID, validValueGUID, "validValueGUID", startFrom, pageSize)
}

// GetValidValueByGUID returns a single valid value set or definition
func (m *ReferenceDataManager) GetValidValueByGUID(ctx context.Context, userID, validValueGUID string) (*metadata.ValidValueElement, error) {
	return byGUID[metadata.ValidValueElement](ctx, &m.manager, "GetValidValueByGUID", validValueByGUIDURL, userID, validValueGUID, "validValueGUID")
}
