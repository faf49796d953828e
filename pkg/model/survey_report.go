package model

import "time"

// SurveyReport summarises one run of a survey action service together with
// the engine action that ran it and the asset it surveyed
type SurveyReport struct {
	ReportGUID           string     `gorm:"column:report_guid;primaryKey"`
	SyncTime             time.Time  `gorm:"column:sync_time;primaryKey"`
	QualifiedName        string     `gorm:"column:qualified_name"`
	DisplayName          string     `gorm:"column:display_name"`
	Description          string     `gorm:"column:description"`
	Purpose              string     `gorm:"column:purpose"`
	SurveyUser           string     `gorm:"column:survey_user"`
	StartTime            *time.Time `gorm:"column:start_time"`
	EndTime              *time.Time `gorm:"column:end_time"`
	AssetGUID            string     `gorm:"column:asset_guid"`
	AssetType            string     `gorm:"column:asset_type"`
	AssetQualifiedName   string     `gorm:"column:asset_qualified_name"`
	AssetDisplayName     string     `gorm:"column:asset_display_name"`
	EngineActionGUID     string     `gorm:"column:engine_action_guid"`
	RequestType          string     `gorm:"column:request_type"`
	GovernanceEngineName string     `gorm:"column:governance_engine_name"`
	EngineHostUserID     string     `gorm:"column:engine_host_user_id"`
	ActionStatus         string     `gorm:"column:action_status"`
	RequesterUserID      string     `gorm:"column:requester_user_id"`
}

func (SurveyReport) TableName() string {
	return "sr_report"
}

func (r *SurveyReport) SetSyncTime(t time.Time) {
	r.SyncTime = t
}
