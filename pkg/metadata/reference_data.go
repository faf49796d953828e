package metadata

// ValidValueProperties describe a valid value set or one of its definitions
type ValidValueProperties struct {
	ReferenceableProperties
	DisplayName     string `json:"displayName,omitempty"`
	Description     string `json:"description,omitempty"`
	Category        string `json:"category,omitempty"`
	Usage           string `json:"usage,omitempty"`
	Scope           string `json:"scope,omitempty"`
	PreferredValue  string `json:"preferredValue,omitempty"`
	DataType        string `json:"dataType,omitempty"`
	IsDeprecated    bool   `json:"isDeprecated,omitempty"`
	IsCaseSensitive bool   `json:"isCaseSensitive,omitempty"`
}

// ValidValueMembershipProperties describe a value's membership of a set
type ValidValueMembershipProperties struct {
	RelationshipProperties
	IsDefaultValue bool `json:"isDefaultValue,omitempty"`
}

// ValidValueAssignmentProperties describe how a consumer uses a valid value set
type ValidValueAssignmentProperties struct {
	RelationshipProperties
	StrictRequirement bool `json:"strictRequirement,omitempty"`
}

// ReferenceValueAssignmentProperties describe a reference value tagging an item
type ReferenceValueAssignmentProperties struct {
	RelationshipProperties
	AttributeName       string `json:"attributeName,omitempty"`
	Confidence          int    `json:"confidence,omitempty"`
	Steward             string `json:"steward,omitempty"`
	StewardTypeName     string `json:"stewardTypeName,omitempty"`
	StewardPropertyName string `json:"stewardPropertyName,omitempty"`
	Notes               string `json:"notes,omitempty"`
}

// ValidValuesMappingProperties describe an equivalence between two valid values
type ValidValuesMappingProperties struct {
	RelationshipProperties
	AssociationDescription string `json:"associationDescription,omitempty"`
	Confidence             int    `json:"confidence,omitempty"`
	Steward                string `json:"steward,omitempty"`
	StewardTypeName        string `json:"stewardTypeName,omitempty"`
	StewardPropertyName    string `json:"stewardPropertyName,omitempty"`
	Notes                  string `json:"notes,omitempty"`
}

// ValidValueElement is a stored valid value set or definition
type ValidValueElement struct {
	ElementHeader        ElementHeader        `json:"elementHeader"`
	ValidValueProperties ValidValueProperties `json:"validValueProperties"`
	SetGUID              string               `json:"setGUID,omitempty"`
}

// ValidValueAssignmentConsumerElement is an element that uses a valid value set
type ValidValueAssignmentConsumerElement struct {
	Consumer                       ElementStub                    `json:"consumer"`
	ValidValueAssignmentProperties ValidValueAssignmentProperties `json:"assignmentProperties"`
}

// ReferenceValueAssignmentItemElement is an element tagged with a reference value
type ReferenceValueAssignmentItemElement struct {
	AssignedItem                       ElementStub                        `json:"assignedItem"`
	ReferenceValueAssignmentProperties ReferenceValueAssignmentProperties `json:"assignmentProperties"`
}

// ValidValueSetElement is a valid value set; sets share the valid value shape
type ValidValueSetElement = ValidValueElement
