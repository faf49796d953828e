package metadata

// InformationSupplyChainProperties describe the flow of a type of information
// across an organisation
type InformationSupplyChainProperties struct {
	ReferenceableProperties
	DisplayName string   `json:"displayName,omitempty"`
	Description string   `json:"description,omitempty"`
	Scope       string   `json:"scope,omitempty"`
	Purposes    []string `json:"purposes,omitempty"`
	Version     string   `json:"version,omitempty"`
}

// SolutionBlueprintProperties describe a collection of solution components
// that together deliver a solution
type SolutionBlueprintProperties struct {
	ReferenceableProperties
	DisplayName string `json:"displayName,omitempty"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
}

// SolutionComponentProperties describe one building block of a solution
type SolutionComponentProperties struct {
	ReferenceableProperties
	DisplayName                       string `json:"displayName,omitempty"`
	Description                       string `json:"description,omitempty"`
	SolutionComponentType             string `json:"solutionComponentType,omitempty"`
	PlannedDeployedImplementationType string `json:"plannedDeployedImplementationType,omitempty"`
	Version                           string `json:"version,omitempty"`
}

// SolutionCompositionProperties describe a component's role in a blueprint
type SolutionCompositionProperties struct {
	RelationshipProperties
	Role        string `json:"role,omitempty"`
	Description string `json:"description,omitempty"`
}

// SolutionLinkingWireProperties describe a connection between two components
type SolutionLinkingWireProperties struct {
	RelationshipProperties
	Label                              string   `json:"label,omitempty"`
	Description                        string   `json:"description,omitempty"`
	InformationSupplyChainSegmentGUIDs []string `json:"informationSupplyChainSegmentGUIDs,omitempty"`
}

// SolutionActorProperties describe the part an actor plays for a component
type SolutionActorProperties struct {
	RelationshipProperties
	Role        string `json:"role,omitempty"`
	Description string `json:"description,omitempty"`
}

// InformationSupplyChainElement is a stored information supply chain
type InformationSupplyChainElement struct {
	ElementHeader ElementHeader                    `json:"elementHeader"`
	Properties    InformationSupplyChainProperties `json:"properties"`
}

// SolutionBlueprintElement is a stored solution blueprint with its components
type SolutionBlueprintElement struct {
	ElementHeader      ElementHeader               `json:"elementHeader"`
	Properties         SolutionBlueprintProperties `json:"properties"`
	SolutionComponents []RelatedElement            `json:"solutionComponents,omitempty"`
}

// SolutionComponentElement is a stored solution component with its
// subcomponents and wires
type SolutionComponentElement struct {
	ElementHeader  ElementHeader               `json:"elementHeader"`
	Properties     SolutionComponentProperties `json:"properties"`
	Subcomponents  []RelatedElement            `json:"subcomponents,omitempty"`
	LinkedElements []RelatedElement            `json:"linkedElements,omitempty"`
	Actors         []RelatedElement            `json:"actors,omitempty"`
}
