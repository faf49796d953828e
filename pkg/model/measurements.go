package model

import "time"

// ResourceMeasurement holds the measurements a survey took of a resource
type ResourceMeasurement struct {
	AnnotationGUID       string     `gorm:"column:annotation_guid;primaryKey"`
	SyncTime             time.Time  `gorm:"column:sync_time;primaryKey"`
	ReportGUID           string     `gorm:"column:report_guid;not null"`
	SubjectGUID          string     `gorm:"column:subject_guid"`
	SubjectType          string     `gorm:"column:subject_type"`
	ResourceName         string     `gorm:"column:resource_name"`
	ResourceCreationTime *time.Time `gorm:"column:resource_creation_time"`
	ResourceUpdateTime   *time.Time `gorm:"column:resource_update_time"`
	ResourceSize         *int64     `gorm:"column:resource_size"`
	Encoding             string     `gorm:"column:encoding"`
	Measurements         string     `gorm:"column:measurements"`
}

func (ResourceMeasurement) TableName() string {
	return "sr_resource_measurements"
}

func (m *ResourceMeasurement) SetSyncTime(t time.Time) {
	m.SyncTime = t
}

// DirectoryMeasurement describes the contents of one directory
type DirectoryMeasurement struct {
	DirectoryPath            string     `gorm:"column:directory_path;primaryKey"`
	SyncTime                 time.Time  `gorm:"column:sync_time;primaryKey"`
	ReportGUID               string     `gorm:"column:report_guid;not null"`
	AnnotationGUID           string     `gorm:"column:annotation_guid"`
	DirectoryName            string     `gorm:"column:directory_name"`
	FileCount                *int64     `gorm:"column:file_count"`
	TotalFileSize            *int64     `gorm:"column:total_file_size"`
	SubDirectoryCount        *int64     `gorm:"column:sub_directory_count"`
	ReadableFileCount        *int64     `gorm:"column:readable_file_count"`
	WriteableFileCount       *int64     `gorm:"column:writeable_file_count"`
	ExecutableFileCount      *int64     `gorm:"column:executable_file_count"`
	SymLinkFileCount         *int64     `gorm:"column:sym_link_file_count"`
	HiddenFileCount          *int64     `gorm:"column:hidden_file_count"`
	UnclassifiedFileCount    *int64     `gorm:"column:unclassified_file_count"`
	InaccessibleFileCount    *int64     `gorm:"column:inaccessible_file_count"`
	LastFileCreationTime     *time.Time `gorm:"column:last_file_creation_time"`
	LastFileModificationTime *time.Time `gorm:"column:last_file_modification_time"`
	LastFileAccessedTime     *time.Time `gorm:"column:last_file_accessed_time"`
}

func (DirectoryMeasurement) TableName() string {
	return "sr_directory_measurements"
}

func (m *DirectoryMeasurement) SetSyncTime(t time.Time) {
	m.SyncTime = t
}

// FileMeasurement describes one file
type FileMeasurement struct {
	FilePath                   string     `gorm:"column:file_path;primaryKey"`
	SyncTime                   time.Time  `gorm:"column:sync_time;primaryKey"`
	ReportGUID                 string     `gorm:"column:report_guid;not null"`
	AnnotationGUID             string     `gorm:"column:annotation_guid"`
	FileName                   string     `gorm:"column:file_name"`
	FileExtension              string     `gorm:"column:file_extension"`
	FileType                   string     `gorm:"column:file_type"`
	DeployedImplementationType string     `gorm:"column:deployed_implementation_type"`
	Encoding                   string     `gorm:"column:encoding"`
	AssetTypeName              string     `gorm:"column:asset_type_name"`
	Category                   string     `gorm:"column:category"`
	CanRead                    bool       `gorm:"column:can_read"`
	CanWrite                   bool       `gorm:"column:can_write"`
	CanExecute                 bool       `gorm:"column:can_execute"`
	IsSymLink                  bool       `gorm:"column:is_sym_link"`
	IsHidden                   bool       `gorm:"column:is_hidden"`
	CreationTime               *time.Time `gorm:"column:creation_time"`
	ModificationTime           *time.Time `gorm:"column:modification_time"`
	LastAccessedTime           *time.Time `gorm:"column:last_accessed_time"`
	FileSize                   *int64     `gorm:"column:file_size"`
	RecordCount                *int64     `gorm:"column:record_count"`
}

func (FileMeasurement) TableName() string {
	return "sr_file_measurements"
}

func (m *FileMeasurement) SetSyncTime(t time.Time) {
	m.SyncTime = t
}

// ProfileMeasure is one named count from a profile annotation or profile log
type ProfileMeasure struct {
	AnnotationGUID      string    `gorm:"column:annotation_guid;primaryKey"`
	MeasurementCategory string    `gorm:"column:measurement_category;primaryKey"`
	MeasurementName     string    `gorm:"column:measurement_name;primaryKey"`
	SyncTime            time.Time `gorm:"column:sync_time;primaryKey"`
	ReportGUID          string    `gorm:"column:report_guid;not null"`
	SubjectGUID         string    `gorm:"column:subject_guid"`
	MeasurementCount    int64     `gorm:"column:measurement_count;not null"`
}

func (ProfileMeasure) TableName() string {
	return "sr_profile_measures"
}

func (m *ProfileMeasure) SetSyncTime(t time.Time) {
	m.SyncTime = t
}

// RequestForAction records an action a survey asked for, and its targets
type RequestForAction struct {
	AnnotationGUID    string    `gorm:"column:annotation_guid;primaryKey"`
	SyncTime          time.Time `gorm:"column:sync_time;primaryKey"`
	ReportGUID        string    `gorm:"column:report_guid;not null"`
	SubjectGUID       string    `gorm:"column:subject_guid"`
	ActionRequestName string    `gorm:"column:action_request_name"`
	ActionProperties  string    `gorm:"column:action_properties"`
	ActionTargetGUIDs string    `gorm:"column:action_target_guids"`
}

func (RequestForAction) TableName() string {
	return "sr_request_for_action"
}

func (r *RequestForAction) SetSyncTime(t time.Time) {
	r.SyncTime = t
}
