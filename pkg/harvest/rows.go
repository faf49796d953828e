package harvest

import (
	"encoding/json"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/model"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/openmetadata"
)

// DefaultLogCategory is the measurement category of profile log counts
// that do not name their own
const DefaultLogCategory = "profileLog"

func timeOf(p openmetadata.Properties, name string) *time.Time {
	if t, ok := p.Time(name); ok {
		return &t
	}
	return nil
}

func intOf(p openmetadata.Properties, name string) *int64 {
	if n, ok := p.Int(name); ok {
		return &n
	}
	return nil
}

func nested(p openmetadata.Properties, name string) openmetadata.Properties {
	if m, ok := p[name].(map[string]any); ok {
		return openmetadata.Properties(m)
	}
	return openmetadata.Properties{}
}

func elementName(e *openmetadata.Element) string {
	for _, name := range []string{"displayName", "name", "resourceName", "qualifiedName"} {
		if v := e.Properties.String(name); v != "" {
			return v
		}
	}
	return ""
}

func encodeJSON(m map[string]string) string {
	if len(m) == 0 {
		return ""
	}
	data, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(data)
}

func reportRow(report, engineAction, asset *openmetadata.Element) *model.SurveyReport {
	props := report.Properties
	row := &model.SurveyReport{
		ReportGUID:    report.GUID,
		QualifiedName: props.String("qualifiedName"),
		DisplayName:   props.String("displayName"),
		Description:   props.String("description"),
		Purpose:       props.String("purpose"),
		SurveyUser:    props.String("user"),
		StartTime:     timeOf(props, "startDate"),
		EndTime:       timeOf(props, "completionDate"),
	}
	if engineAction != nil {
		ea := engineAction.Properties
		row.EngineActionGUID = engineAction.GUID
		row.RequestType = ea.String("requestType")
		row.GovernanceEngineName = ea.String("governanceEngineName")
		row.EngineHostUserID = ea.String("processingEngineUserId")
		row.ActionStatus = ea.String("actionStatus")
		row.RequesterUserID = ea.String("requesterUserId")
	}
	if asset != nil {
		row.AssetGUID = asset.GUID
		row.AssetType = asset.Type.TypeName
		row.AssetQualifiedName = asset.Properties.String("qualifiedName")
		row.AssetDisplayName = elementName(asset)
	}
	return row
}

func annotationRow(reportGUID string, ann *openmetadata.Element, kind AnnotationKind, subject *openmetadata.Element) *model.Annotation {
	props := ann.Properties
	row := &model.Annotation{
		AnnotationGUID: ann.GUID,
		ReportGUID:     reportGUID,
		AnnotationType: ann.Type.TypeName,
		AnnotationKind: kind.String(),
		Summary:        props.String("summary"),
		Explanation:    props.String("explanation"),
		Expression:     props.String("expression"),
		AnalysisStep:   props.String("analysisStep"),
		Confidence:     intOf(props, "confidenceLevel"),
		JSONProperties: props.String("jsonProperties"),
	}
	if created := ann.Versions.CreateTime; created != nil && !created.IsZero() {
		t := created.Time
		row.CreationTime = &t
	}
	if subject != nil {
		row.SubjectGUID = subject.GUID
		row.SubjectType = subject.Type.TypeName
		row.SubjectName = elementName(subject)
	}
	return row
}

// measureRows turns a resource measure annotation into its measurement row
// plus a directory or file row when the subject is a folder or a file
func measureRows(reportGUID string, ann, subject *openmetadata.Element) []model.Row {
	props := ann.Properties
	resource := nested(props, "resourceProperties")

	m := &model.ResourceMeasurement{
		AnnotationGUID:       ann.GUID,
		ReportGUID:           reportGUID,
		ResourceName:         props.String("resourceName"),
		ResourceCreationTime: timeOf(props, "createTime"),
		ResourceUpdateTime:   timeOf(props, "modifiedTime"),
		ResourceSize:         intOf(props, "size"),
		Encoding:             props.String("encoding"),
		Measurements:         encodeJSON(props.StringMap("resourceProperties")),
	}
	rows := []model.Row{m}
	if subject == nil {
		return rows
	}
	m.SubjectGUID = subject.GUID
	m.SubjectType = subject.Type.TypeName
	if m.ResourceName == "" {
		m.ResourceName = elementName(subject)
	}

	pathName := subject.Properties.String("pathName")
	if pathName == "" {
		return rows
	}
	switch {
	case subject.IsTypeOf("FileFolder"):
		d := directoryRow(reportGUID, ann.GUID, pathName, resource)
		if name := subject.Properties.String("name"); name != "" {
			d.DirectoryName = name
		}
		rows = append(rows, d)
	case subject.IsTypeOf("DataFile"):
		f := fileRow(reportGUID, ann.GUID, pathName, resource)
		s := subject.Properties
		if name := s.String("name"); name != "" {
			f.FileName = name
		}
		if ext := s.String("fileExtension"); ext != "" {
			f.FileExtension = ext
		}
		if ft := s.String("fileType"); ft != "" {
			f.FileType = ft
		}
		if dit := s.String("deployedImplementationType"); dit != "" {
			f.DeployedImplementationType = dit
		}
		f.AssetTypeName = subject.Type.TypeName
		if f.CreationTime == nil {
			f.CreationTime = m.ResourceCreationTime
		}
		if f.ModificationTime == nil {
			f.ModificationTime = m.ResourceUpdateTime
		}
		if f.FileSize == nil {
			f.FileSize = m.ResourceSize
		}
		if f.Encoding == "" {
			f.Encoding = m.Encoding
		}
		rows = append(rows, f)
	}
	return rows
}

func directoryRow(reportGUID, annotationGUID, dirPath string, p openmetadata.Properties) *model.DirectoryMeasurement {
	name := p.String("directoryName")
	if name == "" {
		name = path.Base(dirPath)
	}
	return &model.DirectoryMeasurement{
		DirectoryPath:            dirPath,
		ReportGUID:               reportGUID,
		AnnotationGUID:           annotationGUID,
		DirectoryName:            name,
		FileCount:                intOf(p, "fileCount"),
		TotalFileSize:            intOf(p, "totalFileSize"),
		SubDirectoryCount:        intOf(p, "subDirectoryCount"),
		ReadableFileCount:        intOf(p, "readableFileCount"),
		WriteableFileCount:       intOf(p, "writeableFileCount"),
		ExecutableFileCount:      intOf(p, "executableFileCount"),
		SymLinkFileCount:         intOf(p, "symLinkFileCount"),
		HiddenFileCount:          intOf(p, "hiddenFileCount"),
		UnclassifiedFileCount:    intOf(p, "unclassifiedFileCount"),
		InaccessibleFileCount:    intOf(p, "inaccessibleFileCount"),
		LastFileCreationTime:     timeOf(p, "lastFileCreationTime"),
		LastFileModificationTime: timeOf(p, "lastFileModificationTime"),
		LastFileAccessedTime:     timeOf(p, "lastFileAccessedTime"),
	}
}

func fileRow(reportGUID, annotationGUID, filePath string, p openmetadata.Properties) *model.FileMeasurement {
	name := p.String("fileName")
	if name == "" {
		name = path.Base(filePath)
	}
	ext := p.String("fileExtension")
	if ext == "" {
		ext = strings.TrimPrefix(path.Ext(name), ".")
	}
	return &model.FileMeasurement{
		FilePath:                   filePath,
		ReportGUID:                 reportGUID,
		AnnotationGUID:             annotationGUID,
		FileName:                   name,
		FileExtension:              ext,
		FileType:                   p.String("fileType"),
		DeployedImplementationType: p.String("deployedImplementationType"),
		Encoding:                   p.String("encoding"),
		AssetTypeName:              p.String("assetTypeName"),
		Category:                   p.String("category"),
		CanRead:                    p.Bool("canRead"),
		CanWrite:                   p.Bool("canWrite"),
		CanExecute:                 p.Bool("canExecute"),
		IsSymLink:                  p.Bool("isSymLink"),
		IsHidden:                   p.Bool("isHidden"),
		CreationTime:               timeOf(p, "creationTime"),
		ModificationTime:           timeOf(p, "modificationTime"),
		LastAccessedTime:           timeOf(p, "lastAccessedTime"),
		FileSize:                   intOf(p, "fileSize"),
		RecordCount:                intOf(p, "recordCount"),
	}
}

func profileRows(reportGUID, annotationGUID, subjectGUID, category string, counts map[string]int64) []model.Row {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]model.Row, 0, len(names))
	for _, name := range names {
		rows = append(rows, &model.ProfileMeasure{
			AnnotationGUID:      annotationGUID,
			MeasurementCategory: category,
			MeasurementName:     name,
			ReportGUID:          reportGUID,
			SubjectGUID:         subjectGUID,
			MeasurementCount:    counts[name],
		})
	}
	return rows
}

func requestRow(reportGUID string, ann, subject *openmetadata.Element, targets []openmetadata.RelatedElement) *model.RequestForAction {
	guids := make([]string, 0, len(targets))
	for _, t := range targets {
		guids = append(guids, t.Element.GUID)
	}
	sort.Strings(guids)

	row := &model.RequestForAction{
		AnnotationGUID:    ann.GUID,
		ReportGUID:        reportGUID,
		ActionRequestName: ann.Properties.String("actionRequestName"),
		ActionProperties:  encodeJSON(ann.Properties.StringMap("actionProperties")),
		ActionTargetGUIDs: strings.Join(guids, ","),
	}
	if subject != nil {
		row.SubjectGUID = subject.GUID
	}
	return row
}
