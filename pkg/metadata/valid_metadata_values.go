package metadata

// ValidMetadataValue is one allowed value of an open metadata property
type ValidMetadataValue struct {
	DisplayName          string            `json:"displayName,omitempty"`
	Description          string            `json:"description,omitempty"`
	Category             string            `json:"category,omitempty"`
	Usage                string            `json:"usage,omitempty"`
	Scope                string            `json:"scope,omitempty"`
	PreferredValue       string            `json:"preferredValue,omitempty"`
	DataType             string            `json:"dataType,omitempty"`
	IsDeprecated         bool              `json:"isDeprecated,omitempty"`
	IsCaseSensitive      bool              `json:"isCaseSensitive,omitempty"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty"`
	EffectiveFrom        *Time             `json:"effectiveFrom,omitempty"`
	EffectiveTo          *Time             `json:"effectiveTo,omitempty"`
}

// ValidMetadataValueDetail is a valid metadata value together with the map
// values defined beneath it
type ValidMetadataValueDetail struct {
	ValidMetadataValue
	ValidMapNameValues []ValidMetadataValue `json:"validMapNameValues,omitempty"`
}
