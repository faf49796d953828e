package harvest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/harvest/store"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/model"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/openmetadata"
)

// DefaultPageSize is used when ProcessorConfig.PageSize is not set
const DefaultPageSize = 100

// ProcessorConfig configures a CatalogTargetProcessor
type ProcessorConfig struct {
	// UserID is the caller every metadata request is made as
	UserID string
	// PageSize is the page size of every metadata query
	PageSize int
	// Logs resolves the profile logs named by annotations
	Logs   *LogReader
	Logger *zap.Logger
}

// Stats counts what one refresh read and wrote
type Stats struct {
	Reports     int `json:"reports"`
	Annotations int `json:"annotations"`
	Inserted    int `json:"inserted"`
	Unchanged   int `json:"unchanged"`
}

// Add accumulates o into s
func (s *Stats) Add(o Stats) {
	s.Reports += o.Reports
	s.Annotations += o.Annotations
	s.Inserted += o.Inserted
	s.Unchanged += o.Unchanged
}

// CatalogTargetProcessor copies survey reports into one catalog target
type CatalogTargetProcessor struct {
	source   MetadataSource
	store    store.SyncStore
	userID   string
	pageSize int
	logs     *LogReader
	logger   *zap.Logger
	now      func() time.Time
}

// NewCatalogTargetProcessor creates a processor reading from source and
// writing to st
func NewCatalogTargetProcessor(source MetadataSource, st store.SyncStore, cfg ProcessorConfig) *CatalogTargetProcessor {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.Logs == nil {
		cfg.Logs = NewLogReader("")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &CatalogTargetProcessor{
		source:   source,
		store:    st,
		userID:   cfg.UserID,
		pageSize: cfg.PageSize,
		logs:     cfg.Logs,
		logger:   cfg.Logger,
		now:      time.Now,
	}
}

// sweep is the state of one refresh. Every row it writes carries the same
// sync time, and each row key is written at most once. Reports are processed
// newest first, so a key shared by several reports takes the newest values.
type sweep struct {
	syncTime time.Time
	stats    Stats
	written  map[string]bool
}

// Refresh copies every survey report and its annotations into the catalog
// target. It stops at the first error.
func (p *CatalogTargetProcessor) Refresh(ctx context.Context) (Stats, error) {
	s := &sweep{
		syncTime: p.now().UTC().Truncate(time.Microsecond),
		written:  make(map[string]bool),
	}

	reports, err := p.surveyReports(ctx)
	if err != nil {
		return s.stats, err
	}
	for i := range reports {
		if err := ctx.Err(); err != nil {
			return s.stats, err
		}
		if err := p.processReport(ctx, s, &reports[i]); err != nil {
			return s.stats, fmt.Errorf("survey report %s: %w", reports[i].GUID, err)
		}
	}

	p.logger.Debug("Swept survey reports",
		zap.Time("syncTime", s.syncTime),
		zap.Int("reports", s.stats.Reports),
		zap.Int("annotations", s.stats.Annotations),
		zap.Int("inserted", s.stats.Inserted),
		zap.Int("unchanged", s.stats.Unchanged),
	)
	return s.stats, nil
}

// surveyReports lists every survey report, newest first. Reports without a
// completion or start date sort last in the order the server returned them.
func (p *CatalogTargetProcessor) surveyReports(ctx context.Context) ([]openmetadata.Element, error) {
	var all []openmetadata.Element
	for start := 0; ; start += p.pageSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := p.source.FindMetadataElements(ctx, p.userID, SurveyReportType, ".*", start, p.pageSize)
		if err != nil {
			return nil, fmt.Errorf("listing survey reports: %w", err)
		}
		all = append(all, page...)
		if len(page) < p.pageSize {
			break
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return surveyTime(&all[i]).After(surveyTime(&all[j]))
	})
	return all, nil
}

// surveyTime is when a survey report was taken: its completion date, or its
// start date while it has none
func surveyTime(report *openmetadata.Element) time.Time {
	if t, ok := report.Properties.Time("completionDate"); ok {
		return t
	}
	t, _ := report.Properties.Time("startDate")
	return t
}

func (p *CatalogTargetProcessor) processReport(ctx context.Context, s *sweep, report *openmetadata.Element) error {
	engineAction, err := p.first(ctx, report.GUID, atEnd2, EngineActionSurveyReport)
	if err != nil {
		return err
	}
	asset, err := p.first(ctx, report.GUID, atEnd2, AssetSurveyReport)
	if err != nil {
		return err
	}
	if err := p.sync(ctx, s, reportRow(report, engineAction, asset)); err != nil {
		return err
	}
	s.stats.Reports++

	annotations, err := p.related(ctx, report.GUID, atEnd1, ReportedAnnotation)
	if err != nil {
		return err
	}
	for i := range annotations {
		ann := &annotations[i].Element
		rows, err := p.annotationRows(ctx, report.GUID, ann)
		if err != nil {
			return fmt.Errorf("annotation %s: %w", ann.GUID, err)
		}
		if err := p.sync(ctx, s, rows...); err != nil {
			return err
		}
		s.stats.Annotations++
	}
	return nil
}

func (p *CatalogTargetProcessor) annotationRows(ctx context.Context, reportGUID string, ann *openmetadata.Element) ([]model.Row, error) {
	subject, err := p.first(ctx, ann.GUID, atEnd2, AssociatedAnnotation)
	if err != nil {
		return nil, err
	}
	subjectGUID := ""
	if subject != nil {
		subjectGUID = subject.GUID
	}

	kind := KindOf(ann.Type)
	rows := []model.Row{annotationRow(reportGUID, ann, kind, subject)}

	switch kind {
	case KindResourceMeasure:
		rows = append(rows, measureRows(reportGUID, ann, subject)...)
	case KindResourceProfile:
		for _, category := range []string{"valueCount", "profileCounts"} {
			rows = append(rows, profileRows(reportGUID, ann.GUID, subjectGUID, category, ann.Properties.CountMap(category))...)
		}
	case KindResourceProfileLog:
		logRows, err := p.profileLogRows(reportGUID, ann, subjectGUID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, logRows...)
	case KindRequestForAction:
		targets, err := p.related(ctx, ann.GUID, atEnd1, RequestForActionTarget)
		if err != nil {
			return nil, err
		}
		rows = append(rows, requestRow(reportGUID, ann, subject, targets))
	}
	return rows, nil
}

// profileLogRows reads every log named by a profile log annotation. File and
// directory records become measurement rows; all other records are summed
// into counts per measurement category.
func (p *CatalogTargetProcessor) profileLogRows(reportGUID string, ann *openmetadata.Element, subjectGUID string) ([]model.Row, error) {
	var rows []model.Row
	counts := make(map[string]map[string]int64)

	for _, name := range ann.Properties.StringList("logFileNames") {
		records, err := p.logs.Read(name)
		if errors.Is(err, fs.ErrNotExist) {
			p.logger.Warn("Profile log not found", zap.String("annotation", ann.GUID), zap.String("log", name))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("profile log %s: %w", name, err)
		}

		for _, rec := range records {
			if filePath := rec.String("pathName"); filePath != "" {
				rows = append(rows, fileRow(reportGUID, ann.GUID, filePath, rec))
				continue
			}
			if dirPath := rec.String("directoryPathName"); dirPath != "" {
				rows = append(rows, directoryRow(reportGUID, ann.GUID, dirPath, rec))
				continue
			}

			category := rec.String("measurementCategory")
			if category == "" {
				category = DefaultLogCategory
			}
			if counts[category] == nil {
				counts[category] = make(map[string]int64)
			}
			for key := range rec {
				if key == "measurementCategory" {
					continue
				}
				n, ok := rec.Int(key)
				if !ok {
					p.logger.Warn("Skipping non-numeric profile log entry",
						zap.String("log", name), zap.String("name", key))
					continue
				}
				counts[category][key] += n
			}
		}
	}

	categories := make([]string, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		rows = append(rows, profileRows(reportGUID, ann.GUID, subjectGUID, category, counts[category])...)
	}
	return rows, nil
}

func (p *CatalogTargetProcessor) sync(ctx context.Context, s *sweep, rows ...model.Row) error {
	for _, row := range rows {
		id := model.ID(row)
		if s.written[id] {
			p.logger.Debug("Row already written in this sweep", zap.String("row", id))
			continue
		}
		inserted, err := p.store.Sync(ctx, row, s.syncTime)
		if err != nil {
			return err
		}
		s.written[id] = true
		if inserted {
			s.stats.Inserted++
		} else {
			s.stats.Unchanged++
		}
	}
	return nil
}

// related returns every element related to guid over relationshipType
func (p *CatalogTargetProcessor) related(ctx context.Context, guid string, startingAtEnd int, relationshipType string) ([]openmetadata.RelatedElement, error) {
	var all []openmetadata.RelatedElement
	for start := 0; ; start += p.pageSize {
		page, err := p.source.GetRelatedMetadataElements(ctx, p.userID, guid, startingAtEnd, relationshipType, start, p.pageSize)
		if err != nil {
			return nil, fmt.Errorf("reading %s relationships of %s: %w", relationshipType, guid, err)
		}
		all = append(all, page...)
		if len(page) < p.pageSize {
			return all, nil
		}
	}
}

// first returns the first element related to guid over relationshipType,
// or nil when there is none
func (p *CatalogTargetProcessor) first(ctx context.Context, guid string, startingAtEnd int, relationshipType string) (*openmetadata.Element, error) {
	page, err := p.source.GetRelatedMetadataElements(ctx, p.userID, guid, startingAtEnd, relationshipType, 0, 1)
	if err != nil {
		return nil, fmt.Errorf("reading %s relationships of %s: %w", relationshipType, guid, err)
	}
	if len(page) == 0 {
		return nil, nil
	}
	return &page[0].Element, nil
}
