// Package metadata defines the property and element types exchanged with the
// digital architecture services of an Egeria metadata server.
//
// Properties types are what callers send when creating or updating elements.
// Element types are what the server returns: an ElementHeader describing the
// stored element plus its properties and, where relevant, stubs for the
// elements it is linked to.
//
// Field names follow the JSON wire format of the platform.
package metadata
