package digitalarchitecture

import (
	"context"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/metadata"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/rest"
)

const baseURL = "/servers/{0}/open-metadata/access-services/digital-architecture/users/{1}"

// Option configures a manager
type Option func(*manager)

// WithExternalSource stamps the given external source onto every write, so
// the elements are owned by that source rather than the local cohort
func WithExternalSource(guid, name string) Option {
	return func(m *manager) {
		m.externalSourceGUID = guid
		m.externalSourceName = name
	}
}

// manager holds what every manager needs to build requests
type manager struct {
	client             *rest.Client
	externalSourceGUID string
	externalSourceName string
}

func newManager(client *rest.Client, opts []Option) manager {
	m := manager{client: client}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m *manager) referenceable(props any) rest.ReferenceableRequestBody {
	return rest.ReferenceableRequestBody{
		ExternalSourceGUID: m.externalSourceGUID,
		ExternalSourceName: m.externalSourceName,
		Properties:         props,
	}
}

func (m *manager) relationship(props any) rest.RelationshipRequestBody {
	return rest.RelationshipRequestBody{
		ExternalSourceGUID: m.externalSourceGUID,
		ExternalSourceName: m.externalSourceName,
		Properties:         props,
	}
}

func (m *manager) classification(props any) rest.ClassificationRequestBody {
	return rest.ClassificationRequestBody{
		ExternalSourceGUID: m.externalSourceGUID,
		ExternalSourceName: m.externalSourceName,
		Properties:         props,
	}
}

func (m *manager) externalSource() rest.ExternalSourceRequestBody {
	return rest.ExternalSourceRequestBody{
		ExternalSourceGUID: m.externalSourceGUID,
		ExternalSourceName: m.externalSourceName,
	}
}

func (m *manager) fromTemplate(props *metadata.TemplateProperties) rest.TemplateRequestBody {
	return rest.TemplateRequestBody{
		ExternalSourceGUID: m.externalSourceGUID,
		ExternalSourceName: m.externalSourceName,
		ElementProperties:  props,
	}
}

func (m *manager) paging(startFrom, pageSize int) rest.Check {
	return rest.Paging(startFrom, pageSize, m.client.MaxPageSize())
}

func searchBody(searchString string) rest.SearchStringRequestBody {
	return rest.SearchStringRequestBody{SearchString: searchString, SearchStringParameterName: "searchString"}
}

func nameBody(name string) rest.NameRequestBody {
	return rest.NameRequestBody{Name: name, NameParameterName: "name"}
}

type qualifiedNamer interface {
	GetQualifiedName() string
}

// properties requires non-nil properties that carry a qualified name
func properties(props qualifiedNamer, parameterName string) rest.Check {
	return func(method string) *rest.InvalidParameterError {
		if err := rest.Object(props, parameterName)(method); err != nil {
			return err
		}
		return rest.Name(props.GetQualifiedName(), "qualifiedName")(method)
	}
}

// link creates a relationship between two elements
func (m *manager) link(ctx context.Context, method, template, userID, guid1, param1, guid2, param2 string, props any) error {
	if err := rest.Validate(method, rest.UserID(userID), rest.GUID(guid1, param1), rest.GUID(guid2, param2)); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, template, m.relationship(props), userID, guid1, guid2)
}

// unlink removes a relationship created by link; template is the same one
func (m *manager) unlink(ctx context.Context, method, template, userID, guid1, param1, guid2, param2 string) error {
	if err := rest.Validate(method, rest.UserID(userID), rest.GUID(guid1, param1), rest.GUID(guid2, param2)); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, template+"/remove", m.externalSource(), userID, guid1, guid2)
}

func (m *manager) classify(ctx context.Context, method, template, userID, guid, param string, props any) error {
	if err := rest.Validate(method, rest.UserID(userID), rest.GUID(guid, param)); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, template, m.classification(props), userID, guid)
}

func (m *manager) declassify(ctx context.Context, method, template, userID, guid, param string) error {
	if err := rest.Validate(method, rest.UserID(userID), rest.GUID(guid, param)); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, template+"/remove", m.externalSource(), userID, guid)
}

// related lists the elements reached from guid over the relationship in template
func related[T any](ctx context.Context, m *manager, method, template, userID, guid, param string, startFrom, pageSize int) ([]T, error) {
	if err := rest.Validate(method, rest.UserID(userID), rest.GUID(guid, param), m.paging(startFrom, pageSize)); err != nil {
		return nil, err
	}
	return rest.GetElements[T](ctx, m.client, method, template, userID, guid, startFrom, pageSize)
}

func find[T any](ctx context.Context, m *manager, method, template, userID, searchString string, startFrom, pageSize int) ([]T, error) {
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.SearchString(searchString, "searchString"),
		m.paging(startFrom, pageSize),
	); err != nil {
		return nil, err
	}
	return rest.PostForElements[T](ctx, m.client, method, template, searchBody(searchString), userID, startFrom, pageSize)
}

func byName[T any](ctx context.Context, m *manager, method, template, userID, name string, startFrom, pageSize int) ([]T, error) {
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.Name(name, "name"),
		m.paging(startFrom, pageSize),
	); err != nil {
		return nil, err
	}
	return rest.PostForElements[T](ctx, m.client, method, template, nameBody(name), userID, startFrom, pageSize)
}

func byGUID[T any](ctx context.Context, m *manager, method, template, userID, guid, param string) (*T, error) {
	if err := rest.Validate(method, rest.UserID(userID), rest.GUID(guid, param)); err != nil {
		return nil, err
	}
	return rest.GetElement[T](ctx, m.client, method, template, userID, guid)
}

func (m *manager) create(ctx context.Context, method, template, userID string, props qualifiedNamer, param string) (string, error) {
	if err := rest.Validate(method, rest.UserID(userID), properties(props, param)); err != nil {
		return "", err
	}
	return rest.PostForGUID(ctx, m.client, method, template, m.referenceable(props), userID)
}

func (m *manager) update(ctx context.Context, method, template, userID, guid, guidParam string, isMergeUpdate bool, props any, propsParam string) error {
	if err := rest.Validate(method,
		rest.UserID(userID),
		rest.GUID(guid, guidParam),
		rest.Object(props, propsParam),
	); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, template, m.referenceable(props), userID, guid, isMergeUpdate)
}

func (m *manager) remove(ctx context.Context, method, template, userID, guid, param string) error {
	if err := rest.Validate(method, rest.UserID(userID), rest.GUID(guid, param)); err != nil {
		return err
	}
	return rest.PostForVoid(ctx, m.client, method, template, m.externalSource(), userID, guid)
}
