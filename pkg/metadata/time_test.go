package metadata

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeUnmarshal(t *testing.T) {
	want := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{"epoch millis", "1709285400000"},
		{"rfc3339", `"2024-03-01T09:30:00Z"`},
		{"rfc3339 with offset", `"2024-03-01T10:30:00+01:00"`},
		{"millis as string", `"1709285400000"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Time
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.True(t, want.Equal(got.Time), "got %s", got.Time)
		})
	}

	var bad Time
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &bad))
}

func TestVersionsDecodeFromPlatform(t *testing.T) {
	var v ElementVersions
	require.NoError(t, json.Unmarshal([]byte(`{"createdBy":"garygeeke","createTime":1709285400000,"updateTime":null,"version":3}`), &v))
	require.NotNil(t, v.CreateTime)
	assert.Equal(t, int64(1709285400000), v.CreateTime.UnixMilli())
	assert.Nil(t, v.UpdateTime)
	assert.Equal(t, int64(3), v.Version)
}

func TestTimeMarshal(t *testing.T) {
	props := RelationshipProperties{EffectiveFrom: NewTime(time.UnixMilli(1709285400000))}
	data, err := json.Marshal(props)
	require.NoError(t, err)
	assert.JSONEq(t, `{"effectiveFrom":1709285400000}`, string(data))
}

func TestIsTypeOf(t *testing.T) {
	typ := ElementType{TypeName: "SurveyReport", SuperTypeNames: []string{"Referenceable", "OpenMetadataRoot"}}
	assert.True(t, typ.IsTypeOf("SurveyReport"))
	assert.True(t, typ.IsTypeOf("Referenceable"))
	assert.False(t, typ.IsTypeOf("Asset"))
}
