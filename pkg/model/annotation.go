package model

import "time"

// Annotation is one annotation attached to a survey report
type Annotation struct {
	AnnotationGUID string     `gorm:"column:annotation_guid;primaryKey"`
	SyncTime       time.Time  `gorm:"column:sync_time;primaryKey"`
	ReportGUID     string     `gorm:"column:report_guid;not null"`
	AnnotationType string     `gorm:"column:annotation_type;not null"`
	AnnotationKind string     `gorm:"column:annotation_kind;not null"`
	Summary        string     `gorm:"column:summary"`
	Explanation    string     `gorm:"column:explanation"`
	Expression     string     `gorm:"column:expression"`
	AnalysisStep   string     `gorm:"column:analysis_step"`
	Confidence     *int64     `gorm:"column:confidence_level"`
	SubjectGUID    string     `gorm:"column:subject_guid"`
	SubjectType    string     `gorm:"column:subject_type"`
	SubjectName    string     `gorm:"column:subject_name"`
	CreationTime   *time.Time `gorm:"column:creation_time"`
	JSONProperties string     `gorm:"column:json_properties"`
}

func (Annotation) TableName() string {
	return "sr_annotation"
}

func (a *Annotation) SetSyncTime(t time.Time) {
	a.SyncTime = t
}
