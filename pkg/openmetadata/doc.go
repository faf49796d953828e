// Package openmetadata reads elements of any type from the open metadata
// store framework services of an Egeria server.
//
// Element properties are returned as Properties, a flat map with typed
// accessors. Both the plain JSON form and the platform's typed
// propertyValueMap form decode into it.
package openmetadata
