package harvest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/metadata"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		typeName   string
		superTypes []string
		kind       AnnotationKind
	}{
		{typeName: "ResourceMeasureAnnotation", kind: KindResourceMeasure},
		{typeName: "ResourcePhysicalStatusAnnotation", kind: KindResourceMeasure},
		{typeName: "DataSourceMeasurementAnnotation", superTypes: []string{"ResourceMeasureAnnotation", "Annotation"}, kind: KindResourceMeasure},
		{typeName: "ResourceProfileAnnotation", kind: KindResourceProfile},
		{typeName: "ResourceProfileLogAnnotation", superTypes: []string{"ResourceProfileAnnotation"}, kind: KindResourceProfileLog},
		{typeName: "RequestForAction", superTypes: []string{"Annotation"}, kind: KindRequestForAction},
		{typeName: "SchemaAnalysisAnnotation", superTypes: []string{"Annotation"}, kind: KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			kind := KindOf(metadata.ElementType{TypeName: tt.typeName, SuperTypeNames: tt.superTypes})
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestAnnotationKindNames(t *testing.T) {
	assert.Equal(t, "ResourceProfileLog", KindResourceProfileLog.String())
	assert.Equal(t, "AnnotationKind(42)", AnnotationKind(42).String())

	kind, err := AnnotationKindString("requestforaction")
	require.NoError(t, err)
	assert.Equal(t, KindRequestForAction, kind)

	_, err = AnnotationKindString("Schema")
	assert.Error(t, err)

	assert.Len(t, AnnotationKindValues(), 5)
	for _, k := range AnnotationKindValues() {
		assert.True(t, k.IsAAnnotationKind())
	}
}
