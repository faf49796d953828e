package metadata

// LocationProperties describe a physical or logical location
type LocationProperties struct {
	ReferenceableProperties
	Identifier  string `json:"identifier,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Description string `json:"description,omitempty"`
}

// FixedLocationProperties describe a location with a postal or map position
type FixedLocationProperties struct {
	Coordinates   string `json:"coordinates,omitempty"`
	MapProjection string `json:"mapProjection,omitempty"`
	PostalAddress string `json:"postalAddress,omitempty"`
	TimeZone      string `json:"timezone,omitempty"`
}

// SecureLocationProperties describe the security of a location
type SecureLocationProperties struct {
	Description string `json:"description,omitempty"`
	Level       string `json:"level,omitempty"`
}

// CyberLocationProperties describe a location in cyberspace
type CyberLocationProperties struct {
	NetworkAddress string `json:"networkAddress,omitempty"`
}

// AssetLocationProperties describe why an asset is found at a location
type AssetLocationProperties struct {
	RelationshipProperties
}

// LocationElement is a stored location
type LocationElement struct {
	ElementHeader      ElementHeader      `json:"elementHeader"`
	LocationProperties LocationProperties `json:"locationProperties"`
}
