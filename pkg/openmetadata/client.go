package openmetadata

import (
	"context"
	"net/url"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/rest"
)

// DefaultServiceURLMarker selects the access service whose open metadata
// store the client reads
const DefaultServiceURLMarker = "asset-owner"

const (
	elementByGUIDPath    = "/metadata-elements/{2}"
	elementsBySearchPath = "/metadata-elements/by-search-string?startFrom={2}&pageSize={3}"
	relatedOfTypePath    = "/related-elements/{2}/type/{3}?startingAtEnd={4}&startFrom={5}&pageSize={6}"
	relatedAnyTypePath   = "/related-elements/{2}/any-type?startingAtEnd={3}&startFrom={4}&pageSize={5}"
)

type effectiveTimeBody struct {
	Class string `json:"class"`
}

// Client reads metadata elements through the open metadata store
type Client struct {
	rest *rest.Client
	base string
}

// NewClient creates a client reading through the service identified by
// serviceURLMarker, or DefaultServiceURLMarker when it is empty
func NewClient(c *rest.Client, serviceURLMarker string) *Client {
	if serviceURLMarker == "" {
		serviceURLMarker = DefaultServiceURLMarker
	}
	return &Client{
		rest: c,
		base: "/servers/{0}/open-metadata/framework-services/" + url.PathEscape(serviceURLMarker) + "/open-metadata-store/users/{1}",
	}
}

// GetMetadataElementByGUID returns a single element
func (c *Client) GetMetadataElementByGUID(ctx context.Context, userID, guid string) (*Element, error) {
	const method = "GetMetadataElementByGUID"
	if err := rest.Validate(method, rest.UserID(userID), rest.GUID(guid, "elementGUID")); err != nil {
		return nil, err
	}
	return rest.PostForElement[Element](ctx, c.rest, method, c.base+elementByGUIDPath, effectiveTimeBody{Class: "EffectiveTimeQueryRequestBody"}, userID, guid)
}

// FindMetadataElements returns the elements of typeName, or of any type when
// typeName is empty, whose properties match the regular expression searchString
func (c *Client) FindMetadataElements(ctx context.Context, userID, typeName, searchString string, startFrom, pageSize int) ([]Element, error) {
	const method = "FindMetadataElements"
	checks := []rest.Check{
		rest.UserID(userID),
		rest.SearchString(searchString, "searchString"),
		rest.Paging(startFrom, pageSize, c.rest.MaxPageSize()),
	}
	if typeName != "" {
		checks = append(checks, rest.TypeName(typeName, "typeName"))
	}
	if err := rest.Validate(method, checks...); err != nil {
		return nil, err
	}
	body := rest.SearchStringRequestBody{
		SearchString:              searchString,
		SearchStringParameterName: "searchString",
		TypeName:                  typeName,
	}
	return rest.PostForElements[Element](ctx, c.rest, method, c.base+elementsBySearchPath, body, userID, startFrom, pageSize)
}

// GetRelatedMetadataElements returns the elements linked to guid. startingAtEnd
// picks which end of the relationship guid must be at: 0 for either, 1 or 2.
// An empty relationshipTypeName matches every relationship type.
func (c *Client) GetRelatedMetadataElements(ctx context.Context, userID, guid string, startingAtEnd int, relationshipTypeName string, startFrom, pageSize int) ([]RelatedElement, error) {
	const method = "GetRelatedMetadataElements"
	checks := []rest.Check{
		rest.UserID(userID),
		rest.GUID(guid, "elementGUID"),
		rest.Paging(startFrom, pageSize, c.rest.MaxPageSize()),
		func(method string) *rest.InvalidParameterError {
			if startingAtEnd < 0 || startingAtEnd > 2 {
				return rest.NewInvalidParameterError(method, "startingAtEnd", "must be 0, 1 or 2")
			}
			return nil
		},
	}
	if relationshipTypeName != "" {
		checks = append(checks, rest.TypeName(relationshipTypeName, "relationshipTypeName"))
	}
	if err := rest.Validate(method, checks...); err != nil {
		return nil, err
	}

	body := effectiveTimeBody{Class: "ResultsRequestBody"}
	if relationshipTypeName == "" {
		return rest.PostForElements[RelatedElement](ctx, c.rest, method, c.base+relatedAnyTypePath, body, userID, guid, startingAtEnd, startFrom, pageSize)
	}
	return rest.PostForElements[RelatedElement](ctx, c.rest, method, c.base+relatedOfTypePath, body, userID, guid, relationshipTypeName, startingAtEnd, startFrom, pageSize)
}
