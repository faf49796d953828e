package metadata

// TemplateClassificationProperties mark an element as a template
type TemplateClassificationProperties struct {
	Name                 string            `json:"name,omitempty"`
	Description          string            `json:"description,omitempty"`
	VersionIdentifier    string            `json:"versionIdentifier,omitempty"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty"`
}

// TemplateElement is an element classified as a template
type TemplateElement struct {
	ElementHeader      ElementHeader                     `json:"elementHeader"`
	Properties         map[string]any                    `json:"properties,omitempty"`
	TemplateProperties *TemplateClassificationProperties `json:"templateProperties,omitempty"`
}

// ElementFromTemplateProperties ask for a new element to be created as a copy
// of a template
type ElementFromTemplateProperties struct {
	ExternalSourceGUID         string            `json:"externalSourceGUID,omitempty"`
	ExternalSourceName         string            `json:"externalSourceName,omitempty"`
	EffectiveTime              *Time             `json:"effectiveTime,omitempty"`
	TypeName                   string            `json:"typeName,omitempty"`
	TemplateGUID               string            `json:"templateGUID"`
	AnchorGUID                 string            `json:"anchorGUID,omitempty"`
	IsOwnAnchor                bool              `json:"isOwnAnchor,omitempty"`
	EffectiveFrom              *Time             `json:"effectiveFrom,omitempty"`
	EffectiveTo                *Time             `json:"effectiveTo,omitempty"`
	ReplacementProperties      map[string]any    `json:"replacementProperties,omitempty"`
	PlaceholderPropertyValues  map[string]string `json:"placeholderPropertyValues,omitempty"`
	ParentGUID                 string            `json:"parentGUID,omitempty"`
	ParentRelationshipTypeName string            `json:"parentRelationshipTypeName,omitempty"`
	ParentAtEnd1               bool              `json:"parentAtEnd1,omitempty"`
}
