package openmetadata

import "github.com/doodlesbykumbi/egeria-in-go/pkg/metadata"

// Classification is a classification attached to an element
type Classification struct {
	ClassificationName string     `json:"classificationName"`
	Properties         Properties `json:"classificationProperties,omitempty"`
}

// Element is a metadata element of any type
type Element struct {
	GUID            string                   `json:"elementGUID"`
	Type            metadata.ElementType     `json:"type"`
	Status          string                   `json:"status,omitempty"`
	Versions        metadata.ElementVersions `json:"versions"`
	Classifications []Classification         `json:"classifications,omitempty"`
	Properties      Properties               `json:"elementProperties,omitempty"`
}

// IsTypeOf reports whether the element is of type name or a subtype of it
func (e *Element) IsTypeOf(name string) bool {
	return e.Type.IsTypeOf(name)
}

// Classification returns the named classification, if attached
func (e *Element) Classification(name string) (*Classification, bool) {
	for i := range e.Classifications {
		if e.Classifications[i].ClassificationName == name {
			return &e.Classifications[i], true
		}
	}
	return nil, false
}

// RelatedElement is an element reached over a relationship from a starting element
type RelatedElement struct {
	RelationshipGUID       string               `json:"relationshipGUID"`
	Type                   metadata.ElementType `json:"type"`
	RelationshipProperties Properties           `json:"relationshipProperties,omitempty"`
	ElementAtEnd1          bool                 `json:"elementAtEnd1,omitempty"`
	Element                Element              `json:"element"`
}
