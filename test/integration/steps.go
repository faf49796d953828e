package integration

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/config"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/harvest"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/harvest/store"
	storegorm "github.com/doodlesbykumbi/egeria-in-go/pkg/harvest/store/gorm"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/logging"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/model"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/openmetadata"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/rest"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/server"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/server/endpoints"
)

const targetName = "warehouse"

// StepsContext holds state shared between step definitions of one scenario
type StepsContext struct {
	tc        *TestContext
	t         *testing.T
	platform  *fakePlatform
	connector *harvest.Connector
	status    *httptest.Server
	stopRun   context.CancelFunc
	runDone   chan error

	response     *http.Response
	responseBody []byte
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext, t *testing.T) *StepsContext {
	return &StepsContext{tc: tc, t: t}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, s.setUp(ctx)
	})
	sc.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		return ctx, s.tearDown()
	})

	// Metadata steps
	sc.Step(`^a survey report "([^"]*)" over folder "([^"]*)" holding (\d+) files$`, s.aSurveyReportOverFolder)
	sc.Step(`^the report "([^"]*)" has a profile of file types "([^"]*)"$`, s.theReportHasAProfile)
	sc.Step(`^the folder "([^"]*)" now holds (\d+) files$`, s.theFolderNowHoldsFiles)

	// Harvester steps
	sc.Step(`^the harvester refreshes$`, s.theHarvesterRefreshes)
	sc.Step(`^the harvester is running$`, s.theHarvesterIsRunning)

	// HTTP steps
	sc.Step(`^I (GET|POST) "([^"]*)"$`, s.iRequest)
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response should contain "([^"]*)"$`, s.theResponseShouldContain)

	// Database steps
	sc.Step(`^table "([^"]*)" should contain (\d+) rows?$`, s.tableShouldContainRows)
	sc.Step(`^eventually table "([^"]*)" should contain (\d+) rows?$`, s.eventuallyTableShouldContainRows)
	sc.Step(`^the latest file count of "([^"]*)" should be (\d+)$`, s.theLatestFileCountShouldBe)
}

func (s *StepsContext) setUp(ctx context.Context) error {
	if err := s.tc.Reset(); err != nil {
		return err
	}
	s.platform = newFakePlatform()

	client, err := rest.NewClient(s.platform.URL(), platformServer)
	if err != nil {
		return err
	}
	source := openmetadata.NewClient(client, "")

	open := func(_ context.Context, target config.CatalogTarget) (store.SyncStore, error) {
		st, err := storegorm.Open(target.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return st, nil
	}
	s.connector = harvest.NewConnector(source, open,
		[]config.CatalogTarget{{Name: targetName, DatabaseURL: s.tc.DatabaseURL}},
		harvest.ProcessorConfig{UserID: platformUser, PageSize: 10, Logger: logging.Test(s.t)},
	)
	if err := s.connector.Start(ctx); err != nil {
		return err
	}

	cfg := &config.HarvestConfig{ServerName: platformServer}
	srv := server.NewServer(s.connector, cfg, logging.Test(s.t), "127.0.0.1:0")
	endpoints.RegisterAll(srv)
	s.status = httptest.NewServer(srv.Handler())
	return nil
}

func (s *StepsContext) tearDown() error {
	if s.stopRun != nil {
		s.stopRun()
		<-s.runDone
		s.stopRun = nil
	}
	if s.status != nil {
		s.status.Close()
	}
	if s.platform != nil {
		s.platform.Close()
	}
	if s.connector != nil {
		return s.connector.Disconnect()
	}
	return nil
}

// Metadata steps

func (s *StepsContext) aSurveyReportOverFolder(reportGUID, pathName string, files int) error {
	p := s.platform
	p.put(reportGUID, harvest.SurveyReportType, map[string]any{
		"qualifiedName": "SurveyReport::" + reportGUID,
		"displayName":   "Survey of " + pathName,
		"startDate":     float64(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC).UnixMilli()),
	})
	p.put("ea-"+reportGUID, "EngineAction", map[string]any{"requestType": "survey-folder"})
	p.put(folderGUID(pathName), "FileFolder", map[string]any{
		"qualifiedName": "FileFolder::" + pathName,
		"name":          pathName[strings.LastIndex(pathName, "/")+1:],
		"pathName":      pathName,
	}, "DataStore", "Asset")
	p.put(measureGUID(pathName), "ResourceMeasureAnnotation", map[string]any{
		"summary": "folder measurements",
		"resourceProperties": map[string]any{
			"fileCount": float64(files),
		},
	}, "Annotation")

	p.link(reportGUID, 2, harvest.EngineActionSurveyReport, "ea-"+reportGUID)
	p.link(reportGUID, 2, harvest.AssetSurveyReport, folderGUID(pathName))
	p.link(reportGUID, 1, harvest.ReportedAnnotation, measureGUID(pathName))
	p.link(measureGUID(pathName), 2, harvest.AssociatedAnnotation, folderGUID(pathName))
	return nil
}

func (s *StepsContext) theReportHasAProfile(reportGUID, fileTypes string) error {
	counts := map[string]any{}
	for _, name := range strings.Split(fileTypes, ",") {
		name = strings.TrimSpace(name)
		if n, ok := counts[name].(float64); ok {
			counts[name] = n + 1
		} else {
			counts[name] = float64(1)
		}
	}
	guid := "profile-" + reportGUID
	s.platform.put(guid, "ResourceProfileAnnotation", map[string]any{"valueCount": counts}, "DataProfileAnnotation", "Annotation")
	s.platform.link(reportGUID, 1, harvest.ReportedAnnotation, guid)
	return nil
}

func (s *StepsContext) theFolderNowHoldsFiles(pathName string, files int) error {
	return s.platform.update(measureGUID(pathName), func(props openmetadata.Properties) {
		props["resourceProperties"] = map[string]any{"fileCount": float64(files)}
	})
}

func folderGUID(pathName string) string {
	return "folder:" + pathName
}

func measureGUID(pathName string) string {
	return "measure:" + pathName
}

// Harvester steps

func (s *StepsContext) theHarvesterRefreshes(ctx context.Context) error {
	return s.connector.Refresh(ctx)
}

func (s *StepsContext) theHarvesterIsRunning() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.stopRun = cancel
	s.runDone = make(chan error, 1)
	go func() { s.runDone <- s.connector.Run(ctx, time.Hour) }()
	return nil
}

// HTTP steps

func (s *StepsContext) iRequest(method, path string) error {
	req, err := http.NewRequest(method, s.status.URL+path, nil)
	if err != nil {
		return err
	}
	resp, err := s.status.Client().Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	s.response = resp
	s.responseBody, err = io.ReadAll(resp.Body)
	return err
}

func (s *StepsContext) theResponseStatusShouldBe(status int) error {
	if s.response == nil {
		return fmt.Errorf("no response received")
	}
	if s.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d: %s", status, s.response.StatusCode, s.responseBody)
	}
	return nil
}

func (s *StepsContext) theResponseShouldContain(text string) error {
	if !strings.Contains(string(s.responseBody), text) {
		return fmt.Errorf("response %q does not contain %q", s.responseBody, text)
	}
	return nil
}

// Database steps

func (s *StepsContext) countRows(table string) (int64, error) {
	var n int64
	err := s.tc.DB.Table(table).Count(&n).Error
	return n, err
}

func (s *StepsContext) tableShouldContainRows(table string, want int) error {
	n, err := s.countRows(table)
	if err != nil {
		return err
	}
	if n != int64(want) {
		return fmt.Errorf("expected %d rows in %s, got %d", want, table, n)
	}
	return nil
}

func (s *StepsContext) eventuallyTableShouldContainRows(table string, want int) error {
	deadline := time.Now().Add(10 * time.Second)
	for {
		err := s.tableShouldContainRows(table, want)
		if err == nil || time.Now().After(deadline) {
			return err
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (s *StepsContext) theLatestFileCountShouldBe(pathName string, want int) error {
	var latest model.DirectoryMeasurement
	err := s.tc.DB.
		Where("directory_path = ?", pathName).
		Order("sync_time DESC").
		First(&latest).Error
	if err != nil {
		return err
	}
	if latest.FileCount == nil || *latest.FileCount != int64(want) {
		return fmt.Errorf("expected latest file count %d for %s, got %v", want, pathName, latest.FileCount)
	}
	return nil
}
