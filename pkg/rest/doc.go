// Package rest provides the shared REST plumbing used by every Egeria client
// in this module.
//
// It owns the wire contract with an OMAG server platform: URL templates with
// positional placeholders, request and response envelopes, parameter
// validation, and the mapping of failure responses onto the three error kinds
// callers deal with.
//
// # URL Templates
//
// Templates use positional placeholders. {0} is always the server name, so the
// first parameter passed by a caller fills {1}:
//
//	const getConnectionURL = "/servers/{0}/open-metadata/access-services/digital-architecture/users/{1}/connections/{2}"
//	conn, err := rest.GetElement[metadata.ConnectionElement](ctx, client, "GetConnectionByGUID", getConnectionURL, userID, guid)
//
// Placeholders in the path are path-escaped, placeholders after the '?' are
// query-escaped.
//
// # Errors
//
//   - InvalidParameterError: a parameter failed validation, locally or on the server
//   - UserNotAuthorizedError: the user may not perform the request
//   - PropertyServerError: anything else, including transport failures
//
// Each error kind matches its sentinel with errors.Is.
package rest
