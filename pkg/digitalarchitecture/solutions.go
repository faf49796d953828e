package digitalarchitecture

import (
	"context"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/metadata"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/rest"
)

const (
	supplyChainsURL         = baseURL + "/information-supply-chains"
	supplyChainUpdateURL    = supplyChainsURL + "/{2}/update?isMergeUpdate={3}"
	supplyChainDeleteURL    = supplyChainsURL + "/{2}/delete"
	supplyChainByGUIDURL    = supplyChainsURL + "/{2}"
	supplyChainsBySearchURL = supplyChainsURL + "/by-search-string?startFrom={2}&pageSize={3}"
	supplyChainsByNameURL   = supplyChainsURL + "/by-name?startFrom={2}&pageSize={3}"

	blueprintsURL           = baseURL + "/solution-blueprints"
	blueprintUpdateURL      = blueprintsURL + "/{2}/update?isMergeUpdate={3}"
	blueprintDeleteURL      = blueprintsURL + "/{2}/delete"
	blueprintByGUIDURL      = blueprintsURL + "/{2}"
	blueprintsBySearchURL   = blueprintsURL + "/by-search-string?startFrom={2}&pageSize={3}"
	blueprintCompositionURL = blueprintsURL + "/{2}/solution-components/{3}"

	componentsURL         = baseURL + "/solution-components"
	componentUpdateURL    = componentsURL + "/{2}/update?isMergeUpdate={3}"
	componentDeleteURL    = componentsURL + "/{2}/delete"
	componentByGUIDURL    = componentsURL + "/{2}"
	componentsBySearchURL = componentsURL + "/by-search-string?startFrom={2}&pageSize={3}"
	subcomponentURL       = componentsURL + "/{2}/subcomponents/{3}"
	linkingWireURL        = componentsURL + "/{2}/wired-to/{3}"
	solutionActorURL      = baseURL + "/actor-roles/{2}/solution-components/{3}"
)

// SolutionManager maintains the elements that describe how a solution is
// built: information supply chains, blueprints and components
type SolutionManager struct {
	manager
}

// NewSolutionManager creates a SolutionManager that calls through client
func NewSolutionManager(client *rest.Client, opts ...Option) *SolutionManager {
	return &SolutionManager{manager: newManager(client, opts)}
}

// CreateInformationSupplyChain creates an information supply chain and returns its GUID
func (m *SolutionManager) CreateInformationSupplyChain(ctx context.Context, userID string, props *metadata.InformationSupplyChainProperties) (string, error) {
	return m.create(ctx, "CreateInformationSupplyChain", supplyChainsURL, userID, props, "informationSupplyChainProperties")
}

// UpdateInformationSupplyChain updates an information supply chain
func (m *SolutionManager) UpdateInformationSupplyChain(ctx context.Context, userID, supplyChainGUID string, isMergeUpdate bool, props *metadata.InformationSupplyChainProperties) error {
	return m.update(ctx, "UpdateInformationSupplyChain", supplyChainUpdateURL, userID, supplyChainGUID, "informationSupplyChainGUID", isMergeUpdate, props, "informationSupplyChainProperties")
}

// RemoveInformationSupplyChain deletes an information supply chain
func (m *SolutionManager) RemoveInformationSupplyChain(ctx context.Context, userID, supplyChainGUID string) error {
	return m.remove(ctx, "RemoveInformationSupplyChain", supplyChainDeleteURL, userID, supplyChainGUID, "informationSupplyChainGUID")
}

// FindInformationSupplyChains returns the supply chains matching searchString
func (m *SolutionManager) FindInformationSupplyChains(ctx context.Context, userID, searchString string, startFrom, pageSize int) ([]metadata.InformationSupplyChainElement, error) {
	return find[metadata.InformationSupplyChainElement](ctx, &m.manager, "FindInformationSupplyChains", supplyChainsBySearchURL, userID, searchString, startFrom, pageSize)
}

// GetInformationSupplyChainsByName returns the supply chains with an exact name
func (m *SolutionManager) GetInformationSupplyChainsByName(ctx context.Context, userID, name string, startFrom, pageSize int) ([]metadata.InformationSupplyChainElement, error) {
	return byName[metadata.InformationSupplyChainElement](ctx, &m.manager, "GetInformationSupplyChainsByName", supplyChainsByNameURL, userID, name, startFrom, pageSize)
}

// GetInformationSupplyChainByGUID returns a single supply chain
func (m *SolutionManager) GetInformationSupplyChainByGUID(ctx context.Context, userID, supplyChainGUID string) (*metadata.InformationSupplyChainElement, error) {
	return byGUID[metadata.InformationSupplyChainElement](ctx, &m.manager, "GetInformationSupplyChainByGUID", supplyChainByGUIDURL, userID, supplyChainGUID, "informationSupplyChainGUID")
}

// CreateSolutionBlueprint creates a solution blueprint and returns its GUID
func (m *SolutionManager) CreateSolutionBlueprint(ctx context.Context, userID string, props *metadata.SolutionBlueprintProperties) (string, error) {
	return m.create(ctx, "CreateSolutionBlueprint", blueprintsURL, userID, props, "solutionBlueprintProperties")
}

// UpdateSolutionBlueprint updates a solution blueprint
func (m *SolutionManager) UpdateSolutionBlueprint(ctx context.Context, userID, blueprintGUID string, isMergeUpdate bool, props *metadata.SolutionBlueprintProperties) error {
	return m.update(ctx, "UpdateSolutionBlueprint", blueprintUpdateURL, userID, blueprintGUID, "solutionBlueprintGUID", isMergeUpdate, props, "solutionBlueprintProperties")
}

// RemoveSolutionBlueprint deletes a solution blueprint
func (m *SolutionManager) RemoveSolutionBlueprint(ctx context.Context, userID, blueprintGUID string) error {
	return m.remove(ctx, "RemoveSolutionBlueprint", blueprintDeleteURL, userID, blueprintGUID, "solutionBlueprintGUID")
}

// FindSolutionBlueprints returns the blueprints matching searchString
func (m *SolutionManager) FindSolutionBlueprints(ctx context.Context, userID, searchString string, startFrom, pageSize int) ([]metadata.SolutionBlueprintElement, error) {
	return find[metadata.SolutionBlueprintElement](ctx, &m.manager, "FindSolutionBlueprints", blueprintsBySearchURL, userID, searchString, startFrom, pageSize)
}

// GetSolutionBlueprintByGUID returns a single blueprint with its components
func (m *SolutionManager) GetSolutionBlueprintByGUID(ctx context.Context, userID, blueprintGUID string) (*metadata.SolutionBlueprintElement, error) {
	return byGUID[metadata.SolutionBlueprintElement](ctx, &m.manager, "GetSolutionBlueprintByGUID", blueprintByGUIDURL, userID, blueprintGUID, "solutionBlueprintGUID")
}

// CreateSolutionComponent creates a solution component and returns its GUID
func (m *SolutionManager) CreateSolutionComponent(ctx context.Context, userID string, props *metadata.SolutionComponentProperties) (string, error) {
	return m.create(ctx, "CreateSolutionComponent", componentsURL, userID, props, "solutionComponentProperties")
}

// UpdateSolutionComponent updates a solution component
func (m *SolutionManager) UpdateSolutionComponent(ctx context.Context, userID, componentGUID string, isMergeUpdate bool, props *metadata.SolutionComponentProperties) error {
	return m.update(ctx, "UpdateSolutionComponent", componentUpdateURL, userID, componentGUID, "solutionComponentGUID", isMergeUpdate, props, "solutionComponentProperties")
}

// RemoveSolutionComponent deletes a solution component
func (m *SolutionManager) RemoveSolutionComponent(ctx context.Context, userID, componentGUID string) error {
	return m.remove(ctx, "RemoveSolutionComponent", componentDeleteURL, userID, componentGUID, "solutionComponentGUID")
}

// FindSolutionComponents returns the components matching searchString
func (m *SolutionManager) FindSolutionComponents(ctx context.Context, userID, searchString string, startFrom, pageSize int) ([]metadata.SolutionComponentElement, error) {
	return find[metadata.SolutionComponentElement](ctx, &m.manager, "FindSolutionComponents", componentsBySearchURL, userID, searchString, startFrom, pageSize)
}

// GetSolutionComponentByGUID returns a single component
func (m *SolutionManager) GetSolutionComponentByGUID(ctx context.Context, userID, componentGUID string) (*metadata.SolutionComponentElement, error) {
	return byGUID[metadata.SolutionComponentElement](ctx, &m.manager, "GetSolutionComponentByGUID", componentByGUIDURL, userID, componentGUID, "solutionComponentGUID")
}

// LinkSolutionComponentToBlueprint adds a component to a blueprint
func (m *SolutionManager) LinkSolutionComponentToBlueprint(ctx context.Context, userID, blueprintGUID, componentGUID string, props *metadata.SolutionCompositionProperties) error {
	return m.link(ctx, "LinkSolutionComponentToBlueprint", blueprintCompositionURL, userID, blueprintGUID, "solutionBlueprintGUID", componentGUID, "solutionComponentGUID", props)
}

// DetachSolutionComponentFromBlueprint removes a component from a blueprint
func (m *SolutionManager) DetachSolutionComponentFromBlueprint(ctx context.Context, userID, blueprintGUID, componentGUID string) error {
	return m.unlink(ctx, "DetachSolutionComponentFromBlueprint", blueprintCompositionURL, userID, blueprintGUID, "solutionBlueprintGUID", componentGUID, "solutionComponentGUID")
}

// LinkSubcomponent nests one component inside another
func (m *SolutionManager) LinkSubcomponent(ctx context.Context, userID, parentComponentGUID, subcomponentGUID string, props *metadata.RelationshipProperties) error {
	return m.link(ctx, "LinkSubcomponent", subcomponentURL, userID, parentComponentGUID, "parentSolutionComponentGUID", subcomponentGUID, "subcomponentGUID", props)
}

// DetachSubcomponent removes a nested component
func (m *SolutionManager) DetachSubcomponent(ctx context.Context, userID, parentComponentGUID, subcomponentGUID string) error {
	return m.unlink(ctx, "DetachSubcomponent", subcomponentURL, userID, parentComponentGUID, "parentSolutionComponentGUID", subcomponentGUID, "subcomponentGUID")
}

// LinkSolutionLinkingWire records that two components exchange information
func (m *SolutionManager) LinkSolutionLinkingWire(ctx context.Context, userID, component1GUID, component2GUID string, props *metadata.SolutionLinkingWireProperties) error {
	return m.link(ctx, "LinkSolutionLinkingWire", linkingWireURL, userID, component1GUID, "solutionComponent1GUID", component2GUID, "solutionComponent2GUID", props)
}

// DetachSolutionLinkingWire removes the wire between two components
func (m *SolutionManager) DetachSolutionLinkingWire(ctx context.Context, userID, component1GUID, component2GUID string) error {
	return m.unlink(ctx, "DetachSolutionLinkingWire", linkingWireURL, userID, component1GUID, "solutionComponent1GUID", component2GUID, "solutionComponent2GUID")
}

// LinkSolutionActor records the part an actor role plays for a component
func (m *SolutionManager) LinkSolutionActor(ctx context.Context, userID, actorRoleGUID, componentGUID string, props *metadata.SolutionActorProperties) error {
	return m.link(ctx, "LinkSolutionActor", solutionActorURL, userID, actorRoleGUID, "actorRoleGUID", componentGUID, "solutionComponentGUID", props)
}

// DetachSolutionActor removes an actor role from a component
func (m *SolutionManager) DetachSolutionActor(ctx context.Context, userID, actorRoleGUID, componentGUID string) error {
	return m.unlink(ctx, "DetachSolutionActor", solutionActorURL, userID, actorRoleGUID, "actorRoleGUID", componentGUID, "solutionComponentGUID")
}
