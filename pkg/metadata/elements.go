package metadata

// ElementType describes the open metadata type of an element
type ElementType struct {
	TypeID          string   `json:"typeId,omitempty"`
	TypeName        string   `json:"typeName,omitempty"`
	SuperTypeNames  []string `json:"superTypeNames,omitempty"`
	TypeVersion     int64    `json:"typeVersion,omitempty"`
	TypeDescription string   `json:"typeDescription,omitempty"`
}

// IsTypeOf reports whether the type is name or inherits from it
func (t ElementType) IsTypeOf(name string) bool {
	if t.TypeName == name {
		return true
	}
	for _, s := range t.SuperTypeNames {
		if s == name {
			return true
		}
	}
	return false
}

// ElementOrigin describes where an element's master copy lives
type ElementOrigin struct {
	SourceServer           string `json:"sourceServer,omitempty"`
	OriginCategory         string `json:"originCategory,omitempty"`
	HomeMetadataCollection string `json:"homeMetadataCollectionId,omitempty"`
	HomeMetadataCollName   string `json:"homeMetadataCollectionName,omitempty"`
	License                string `json:"license,omitempty"`
}

// ElementVersions records the lifecycle of an element
type ElementVersions struct {
	CreatedBy  string `json:"createdBy,omitempty"`
	UpdatedBy  string `json:"updatedBy,omitempty"`
	CreateTime *Time  `json:"createTime,omitempty"`
	UpdateTime *Time  `json:"updateTime,omitempty"`
	Version    int64  `json:"version,omitempty"`
}

// ElementClassification is a classification attached to an element
type ElementClassification struct {
	ClassificationName       string         `json:"classificationName,omitempty"`
	ClassificationOrigin     string         `json:"classificationOrigin,omitempty"`
	ClassificationProperties map[string]any `json:"classificationProperties,omitempty"`
}

// ElementHeader is the common header of every returned element
type ElementHeader struct {
	Class           string                  `json:"class,omitempty"`
	Type            ElementType             `json:"type"`
	GUID            string                  `json:"guid,omitempty"`
	Status          string                  `json:"status,omitempty"`
	Origin          ElementOrigin           `json:"origin"`
	Versions        ElementVersions         `json:"versions"`
	Classifications []ElementClassification `json:"classifications,omitempty"`
}

// ElementStub identifies a linked element without its properties
type ElementStub struct {
	ElementHeader
	UniqueName string `json:"uniqueName,omitempty"`
}

// RelationshipProperties are the properties common to relationships
type RelationshipProperties struct {
	EffectiveFrom      *Time          `json:"effectiveFrom,omitempty"`
	EffectiveTo        *Time          `json:"effectiveTo,omitempty"`
	ExtendedProperties map[string]any `json:"extendedProperties,omitempty"`
}

// RelatedElement is an element reached over a relationship
type RelatedElement struct {
	RelationshipHeader     ElementHeader  `json:"relationshipHeader"`
	RelationshipProperties map[string]any `json:"relationshipProperties,omitempty"`
	RelatedElement         ElementStub    `json:"relatedElement"`
}

// ReferenceableProperties are inherited by every properties type with a
// qualified name
type ReferenceableProperties struct {
	QualifiedName        string            `json:"qualifiedName,omitempty"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty"`
	TypeName             string            `json:"typeName,omitempty"`
	ExtendedProperties   map[string]any    `json:"extendedProperties,omitempty"`
	EffectiveFrom        *Time             `json:"effectiveFrom,omitempty"`
	EffectiveTo          *Time             `json:"effectiveTo,omitempty"`
}

// TemplateProperties override the template's properties when creating an
// element from a template
type TemplateProperties struct {
	QualifiedName  string `json:"qualifiedName,omitempty"`
	DisplayName    string `json:"displayName,omitempty"`
	Description    string `json:"description,omitempty"`
	NetworkAddress string `json:"networkAddress,omitempty"`
	VersionID      string `json:"versionIdentifier,omitempty"`
	PathName       string `json:"pathName,omitempty"`
}

// GetQualifiedName returns the unique name of the element being described
func (p ReferenceableProperties) GetQualifiedName() string {
	return p.QualifiedName
}

// GetQualifiedName returns the unique name of the element being created
func (p TemplateProperties) GetQualifiedName() string {
	return p.QualifiedName
}
