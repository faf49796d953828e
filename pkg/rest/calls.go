package rest

import "context"

// PostForVoid posts body and discards the result
func PostForVoid(ctx context.Context, c *Client, method, template string, body any, params ...any) error {
	var resp VoidResponse
	return c.Post(ctx, method, template, body, &resp, params...)
}

// PostForGUID posts body and returns the GUID the server created
func PostForGUID(ctx context.Context, c *Client, method, template string, body any, params ...any) (string, error) {
	var resp GUIDResponse
	if err := c.Post(ctx, method, template, body, &resp, params...); err != nil {
		return "", err
	}
	return resp.GUID, nil
}

// PostForGUIDs posts body and returns the list of GUIDs in the response
func PostForGUIDs(ctx context.Context, c *Client, method, template string, body any, params ...any) ([]string, error) {
	var resp GUIDListResponse
	if err := c.Post(ctx, method, template, body, &resp, params...); err != nil {
		return nil, err
	}
	return resp.GUIDs, nil
}

// GetElement retrieves a single element
func GetElement[T any](ctx context.Context, c *Client, method, template string, params ...any) (*T, error) {
	var resp ElementResponse[T]
	if err := c.Get(ctx, method, template, &resp, params...); err != nil {
		return nil, err
	}
	return resp.Element, nil
}

// PostForElement posts body and returns a single element
func PostForElement[T any](ctx context.Context, c *Client, method, template string, body any, params ...any) (*T, error) {
	var resp ElementResponse[T]
	if err := c.Post(ctx, method, template, body, &resp, params...); err != nil {
		return nil, err
	}
	return resp.Element, nil
}

// GetElements retrieves a page of elements
func GetElements[T any](ctx context.Context, c *Client, method, template string, params ...any) ([]T, error) {
	var resp ElementsResponse[T]
	if err := c.Get(ctx, method, template, &resp, params...); err != nil {
		return nil, err
	}
	return resp.Elements, nil
}

// PostForElements posts body and returns a page of elements
func PostForElements[T any](ctx context.Context, c *Client, method, template string, body any, params ...any) ([]T, error) {
	var resp ElementsResponse[T]
	if err := c.Post(ctx, method, template, body, &resp, params...); err != nil {
		return nil, err
	}
	return resp.Elements, nil
}

// GetBoolean retrieves a flag
func GetBoolean(ctx context.Context, c *Client, method, template string, params ...any) (bool, error) {
	var resp BooleanResponse
	if err := c.Get(ctx, method, template, &resp, params...); err != nil {
		return false, err
	}
	return resp.Flag, nil
}
