package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/nba-projection/internal/domain/injury"
	"github.com/riskibarqy/nba-projection/internal/domain/team"
	injurymock "github.com/riskibarqy/nba-projection/internal/mocks/domain/injury"
	"github.com/riskibarqy/nba-projection/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func TestInjuryService_TeamReportResolvesStatuses(t *testing.T) {
	t.Parallel()

	provider := injurymock.NewProvider(t)
	provider.On("FetchTeamInjuries", mock.Anything, int64(2)).Return([]injury.RawEntry{
		{PlayerName: "Jayson Tatum", Status: "Out", Date: "2026-01-14"},
		{PlayerName: "Derrick White", Status: "Day-To-Day"},
		{PlayerName: "Jrue Holiday", Status: "Doubtful"},
	}, nil).Once()
	svc := NewInjuryService(provider, team.NewCatalog(), logging.NewNop())
	fixed := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	report := svc.TeamReport(context.Background(), "Boston Celtics")

	if report.Team != "Boston Celtics" || !report.Timestamp.Equal(fixed) {
		t.Fatalf("unexpected report header: %+v", report)
	}
	if len(report.Records) != 3 {
		t.Fatalf("expected three records, got=%d", len(report.Records))
	}
	if report.Records[1].Status != injury.StatusQuestionable || report.Records[1].Availability != injury.Available {
		t.Fatalf("expected day-to-day to be questionable and available, got=%+v", report.Records[1])
	}

	out := Unavailable(report)
	if len(out) != 2 || out[0] != "Jayson Tatum" || out[1] != "Jrue Holiday" {
		t.Fatalf("unexpected unavailable players: %v", out)
	}
}

func TestInjuryService_UnknownTeamSkipsProvider(t *testing.T) {
	t.Parallel()

	provider := injurymock.NewProvider(t)
	svc := NewInjuryService(provider, team.NewCatalog(), logging.NewNop())

	report := svc.TeamReport(context.Background(), "Seattle SuperSonics")
	if len(report.Records) != 0 || report.Records == nil {
		t.Fatalf("expected empty records, got=%v", report.Records)
	}
	provider.AssertNotCalled(t, "FetchTeamInjuries", mock.Anything, mock.Anything)
}

func TestInjuryService_ProviderErrorYieldsEmptyReport(t *testing.T) {
	t.Parallel()

	provider := injurymock.NewProvider(t)
	provider.On("FetchTeamInjuries", mock.Anything, int64(2)).Return(nil, errors.New("espn unavailable")).Once()
	svc := NewInjuryService(provider, team.NewCatalog(), logging.NewNop())

	report := svc.TeamReport(context.Background(), "Boston Celtics")
	if len(report.Records) != 0 {
		t.Fatalf("expected empty report, got=%v", report.Records)
	}
}
