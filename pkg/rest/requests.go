package rest

import "time"

// ExternalSourceRequestBody identifies the external source that owns the
// elements being written, if any
type ExternalSourceRequestBody struct {
	Class              string `json:"class,omitempty"`
	ExternalSourceGUID string `json:"externalSourceGUID,omitempty"`
	ExternalSourceName string `json:"externalSourceName,omitempty"`
}

// ReferenceableRequestBody creates or updates a referenceable element
type ReferenceableRequestBody struct {
	ExternalSourceGUID string     `json:"externalSourceGUID,omitempty"`
	ExternalSourceName string     `json:"externalSourceName,omitempty"`
	EffectiveTime      *time.Time `json:"effectiveTime,omitempty"`
	ParentGUID         string     `json:"parentGUID,omitempty"`
	Properties         any        `json:"properties,omitempty"`
}

// RelationshipRequestBody creates or updates a relationship between two elements
type RelationshipRequestBody struct {
	ExternalSourceGUID string     `json:"externalSourceGUID,omitempty"`
	ExternalSourceName string     `json:"externalSourceName,omitempty"`
	EffectiveTime      *time.Time `json:"effectiveTime,omitempty"`
	Properties         any        `json:"properties,omitempty"`
}

// ClassificationRequestBody adds or updates a classification on an element
type ClassificationRequestBody struct {
	ExternalSourceGUID string     `json:"externalSourceGUID,omitempty"`
	ExternalSourceName string     `json:"externalSourceName,omitempty"`
	EffectiveTime      *time.Time `json:"effectiveTime,omitempty"`
	Properties         any        `json:"properties,omitempty"`
}

// SearchStringRequestBody carries a regular expression for find calls
type SearchStringRequestBody struct {
	SearchString              string     `json:"searchString"`
	SearchStringParameterName string     `json:"searchStringParameterName,omitempty"`
	TypeName                  string     `json:"typeName,omitempty"`
	EffectiveTime             *time.Time `json:"effectiveTime,omitempty"`
}

// NameRequestBody carries an exact name for get-by-name calls
type NameRequestBody struct {
	Name              string     `json:"name"`
	NameParameterName string     `json:"nameParameterName,omitempty"`
	NamePropertyName  string     `json:"namePropertyName,omitempty"`
	EffectiveTime     *time.Time `json:"effectiveTime,omitempty"`
}

// TemplateRequestBody creates an element from a template
type TemplateRequestBody struct {
	ExternalSourceGUID string `json:"externalSourceGUID,omitempty"`
	ExternalSourceName string `json:"externalSourceName,omitempty"`
	ParentGUID         string `json:"parentGUID,omitempty"`
	ElementProperties  any    `json:"elementProperties,omitempty"`
}

// TokenRequestBody is posted to the platform to obtain a bearer token
type TokenRequestBody struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}
