package harvest

import (
	"context"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/openmetadata"
)

// Relationship and element type names walked from a survey report
const (
	SurveyReportType = "SurveyReport"

	EngineActionSurveyReport = "EngineActionSurveyReport"
	AssetSurveyReport        = "AssetSurveyReport"
	ReportedAnnotation       = "ReportedAnnotation"
	AssociatedAnnotation     = "AssociatedAnnotation"
	RequestForActionTarget   = "RequestForActionTarget"
)

// Which end of a relationship the starting element sits at
const (
	atEnd1 = 1
	atEnd2 = 2
)

// MetadataSource is the part of the open metadata store the processor reads.
// *openmetadata.Client satisfies it.
type MetadataSource interface {
	FindMetadataElements(ctx context.Context, userID, typeName, searchString string, startFrom, pageSize int) ([]openmetadata.Element, error)
	GetRelatedMetadataElements(ctx context.Context, userID, guid string, startingAtEnd int, relationshipTypeName string, startFrom, pageSize int) ([]openmetadata.RelatedElement, error)
}

var _ MetadataSource = (*openmetadata.Client)(nil)
