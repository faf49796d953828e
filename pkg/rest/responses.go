package rest

// FFDCResponse is the first-failure data capture envelope every OMAG response
// carries. A relatedHTTPCode of 200 means success.
type FFDCResponse struct {
	Class                           string         `json:"class,omitempty"`
	RelatedHTTPCode                 int            `json:"relatedHTTPCode"`
	ExceptionClassName              string         `json:"exceptionClassName,omitempty"`
	ExceptionCausedBy               string         `json:"exceptionCausedBy,omitempty"`
	ActionDescription               string         `json:"actionDescription,omitempty"`
	ExceptionErrorMessage           string         `json:"exceptionErrorMessage,omitempty"`
	ExceptionErrorMessageID         string         `json:"exceptionErrorMessageId,omitempty"`
	ExceptionErrorMessageParameters []string       `json:"exceptionErrorMessageParameters,omitempty"`
	ExceptionSystemAction           string         `json:"exceptionSystemAction,omitempty"`
	ExceptionUserAction             string         `json:"exceptionUserAction,omitempty"`
	ExceptionProperties             map[string]any `json:"exceptionProperties,omitempty"`
}

func (r *FFDCResponse) ffdc() *FFDCResponse {
	return r
}

// Response is implemented by every response envelope through FFDCResponse
type Response interface {
	ffdc() *FFDCResponse
}

// VoidResponse is returned by calls with no result
type VoidResponse struct {
	FFDCResponse
}

// GUIDResponse is returned by create calls
type GUIDResponse struct {
	FFDCResponse
	GUID string `json:"guid,omitempty"`
}

// GUIDListResponse carries a list of unique identifiers
type GUIDListResponse struct {
	FFDCResponse
	GUIDs []string `json:"guids,omitempty"`
}

// BooleanResponse carries a single flag
type BooleanResponse struct {
	FFDCResponse
	Flag bool `json:"flag"`
}

// StringResponse carries a single string
type StringResponse struct {
	FFDCResponse
	ResultString string `json:"resultString,omitempty"`
}

// ElementResponse carries a single element of type T
type ElementResponse[T any] struct {
	FFDCResponse
	Element *T `json:"element,omitempty"`
}

// ElementsResponse carries a page of elements of type T
type ElementsResponse[T any] struct {
	FFDCResponse
	Elements []T `json:"elements,omitempty"`
}
