package harvest

import "github.com/doodlesbykumbi/egeria-in-go/pkg/metadata"

//go:generate go run github.com/dmarkham/enumer -type AnnotationKind -trimprefix Kind -output annotation_kind.gen.go

// AnnotationKind groups annotation types by how they are harvested
type AnnotationKind int

const (
	KindOther AnnotationKind = iota
	KindResourceMeasure
	KindResourceProfile
	KindResourceProfileLog
	KindRequestForAction
)

// Type names each kind is recognised by, most specific first
var kindTypeNames = []struct {
	typeName string
	kind     AnnotationKind
}{
	{"ResourceProfileLogAnnotation", KindResourceProfileLog},
	{"ResourceProfileAnnotation", KindResourceProfile},
	{"ResourcePhysicalStatusAnnotation", KindResourceMeasure},
	{"ResourceMeasureAnnotation", KindResourceMeasure},
	{"RequestForAction", KindRequestForAction},
}

// KindOf resolves the kind of an annotation from its type or super types
func KindOf(t metadata.ElementType) AnnotationKind {
	for _, k := range kindTypeNames {
		if t.IsTypeOf(k.typeName) {
			return k.kind
		}
	}
	return KindOther
}
