package rest

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// DefaultMaxPageSize is the largest page a client asks for unless configured
const DefaultMaxPageSize = 1000

// Check validates one parameter of the named method
type Check func(method string) *InvalidParameterError

// Validate runs checks in order and returns the first failure
func Validate(method string, checks ...Check) error {
	for _, check := range checks {
		if err := check(method); err != nil {
			return err
		}
	}
	return nil
}

// UserID requires a non-blank calling user
func UserID(userID string) Check {
	return func(method string) *InvalidParameterError {
		if strings.TrimSpace(userID) == "" {
			return newInvalidParameter(method, "userId", "is null")
		}
		return nil
	}
}

// GUID requires a non-blank unique identifier
func GUID(guid, parameterName string) Check {
	return func(method string) *InvalidParameterError {
		if strings.TrimSpace(guid) == "" {
			return newInvalidParameter(method, parameterName, "is null")
		}
		return nil
	}
}

// Name requires a non-blank name
func Name(name, parameterName string) Check {
	return func(method string) *InvalidParameterError {
		if strings.TrimSpace(name) == "" {
			return newInvalidParameter(method, parameterName, "is null")
		}
		return nil
	}
}

// TypeName requires a non-blank open metadata type name without whitespace
func TypeName(typeName, parameterName string) Check {
	return func(method string) *InvalidParameterError {
		if strings.TrimSpace(typeName) == "" {
			return newInvalidParameter(method, parameterName, "is null")
		}
		if strings.ContainsAny(typeName, " \t\n") {
			return newInvalidParameter(method, parameterName, "contains whitespace")
		}
		return nil
	}
}

// SearchString requires a non-blank, compilable regular expression
func SearchString(searchString, parameterName string) Check {
	return func(method string) *InvalidParameterError {
		if strings.TrimSpace(searchString) == "" {
			return newInvalidParameter(method, parameterName, "is null")
		}
		if _, err := regexp.Compile(searchString); err != nil {
			return newInvalidParameter(method, parameterName, "is not a valid regular expression: "+err.Error())
		}
		return nil
	}
}

// Object requires a non-nil value, including typed nil pointers
func Object(obj any, parameterName string) Check {
	return func(method string) *InvalidParameterError {
		if obj == nil {
			return newInvalidParameter(method, parameterName, "is null")
		}
		v := reflect.ValueOf(obj)
		switch v.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
			if v.IsNil() {
				return newInvalidParameter(method, parameterName, "is null")
			}
		}
		return nil
	}
}

// Paging requires a non-negative start and a page size within max.
// A pageSize of 0 asks the server for its default page.
func Paging(startFrom, pageSize, max int) Check {
	return func(method string) *InvalidParameterError {
		if startFrom < 0 {
			return newInvalidParameter(method, "startFrom", "is negative")
		}
		if pageSize < 0 {
			return newInvalidParameter(method, "pageSize", "is negative")
		}
		if max > 0 && pageSize > max {
			return newInvalidParameter(method, "pageSize", "exceeds the maximum page size of "+strconv.Itoa(max))
		}
		return nil
	}
}
