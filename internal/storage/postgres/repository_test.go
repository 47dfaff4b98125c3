//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/pkg/e"
)

var (
	testPool   *pgxpool.Pool
	tc         testcontainers.Container
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := initSchema(ctx, testPool); err != nil {
		fmt.Println("initSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE work_reports, camps, volunteers, health_checks, env_logs CASCADE`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func createVolunteer(t *testing.T, name string) *domain.Volunteer {
	t.Helper()
	v := &domain.Volunteer{Name: name, Phone: "+100000"}
	if err := NewVolunteerRepo(testPool, testLogger).Create(context.Background(), v); err != nil {
		t.Fatalf("create volunteer: %v", err)
	}
	return v
}

func createCamp(t *testing.T, area string, risk domain.RiskLevel) *domain.ReliefCamp {
	t.Helper()
	camp := &domain.ReliefCamp{
		Area:      area,
		Lat:       28.6,
		Lng:       77.2,
		RiskLevel: risk,
		Status:    domain.CampActive,
		Resources: domain.ResourceTier(risk),
	}
	if err := NewCampRepo(testPool, testLogger).Create(context.Background(), camp); err != nil {
		t.Fatalf("create camp: %v", err)
	}
	return camp
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func TestCampRepo_Create_SetsDefaults(t *testing.T) {
	truncateAll(t)

	repo := NewCampRepo(testPool, testLogger)

	camp := &domain.ReliefCamp{
		Area:      "Riverside",
		RiskLevel: domain.RiskHigh,
		Status:    domain.CampActive,
		Resources: domain.ResourceTier(domain.RiskHigh),
	}
	if err := repo.Create(context.Background(), camp); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if camp.ID == uuid.Nil {
		t.Fatalf("expected ID set")
	}
	if camp.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt set")
	}

	got, err := repo.Get(context.Background(), camp.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Area != "Riverside" || got.RiskLevel != domain.RiskHigh {
		t.Fatalf("unexpected camp: %+v", got)
	}
	if got.Resources != (domain.Resources{Masks: 1000, Medicines: 500, Oxygen: 200}) {
		t.Fatalf("unexpected resources: %+v", got.Resources)
	}
	if got.VolunteerAssigned == nil || len(got.VolunteerAssigned) != 0 {
		t.Fatalf("expected empty roster, got %v", got.VolunteerAssigned)
	}
}

func TestCampRepo_Get_NotFound(t *testing.T) {
	truncateAll(t)

	_, err := NewCampRepo(testPool, testLogger).Get(context.Background(), uuid.New())
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestCampRepo_AssignVolunteers_SkipsUnavailable(t *testing.T) {
	truncateAll(t)

	campRepo := NewCampRepo(testPool, testLogger)
	volRepo := NewVolunteerRepo(testPool, testLogger)

	camp := createCamp(t, "Riverside", domain.RiskHigh)
	other := createCamp(t, "Old Town", domain.RiskLow)

	v1 := createVolunteer(t, "a")
	v2 := createVolunteer(t, "b")

	// v2 is busy at another camp, so only v1 can be taken.
	if err := volRepo.Join(context.Background(), v2.ID, other.ID); err != nil {
		t.Fatalf("Join: %v", err)
	}

	assigned, err := campRepo.AssignVolunteers(context.Background(), camp.ID, []uuid.UUID{v1.ID, v2.ID})
	if err != nil {
		t.Fatalf("AssignVolunteers: %v", err)
	}
	if len(assigned) != 1 || assigned[0] != v1.ID {
		t.Fatalf("expected only v1 assigned, got %v", assigned)
	}

	got, err := volRepo.Get(context.Background(), v1.ID)
	if err != nil {
		t.Fatalf("Get v1: %v", err)
	}
	if got.Available || got.AssignedCamp == nil || *got.AssignedCamp != camp.ID {
		t.Fatalf("expected v1 bound to camp, got %+v", got)
	}
}

func TestCampRepo_AssignVolunteers_ReplacementReleasesDropped(t *testing.T) {
	truncateAll(t)

	campRepo := NewCampRepo(testPool, testLogger)
	volRepo := NewVolunteerRepo(testPool, testLogger)

	camp := createCamp(t, "Riverside", domain.RiskHigh)
	v1 := createVolunteer(t, "a")
	v2 := createVolunteer(t, "b")

	if _, err := campRepo.AssignVolunteers(context.Background(), camp.ID, []uuid.UUID{v1.ID}); err != nil {
		t.Fatalf("first assign: %v", err)
	}

	assigned, err := campRepo.AssignVolunteers(context.Background(), camp.ID, []uuid.UUID{v2.ID})
	if err != nil {
		t.Fatalf("second assign: %v", err)
	}
	if len(assigned) != 1 || assigned[0] != v2.ID {
		t.Fatalf("expected roster replaced with v2, got %v", assigned)
	}

	released, err := volRepo.Get(context.Background(), v1.ID)
	if err != nil {
		t.Fatalf("Get v1: %v", err)
	}
	if !released.Available || released.AssignedCamp != nil {
		t.Fatalf("expected v1 released, got %+v", released)
	}

	got, err := campRepo.Get(context.Background(), camp.ID)
	if err != nil {
		t.Fatalf("Get camp: %v", err)
	}
	if len(got.VolunteerAssigned) != 1 || got.VolunteerAssigned[0] != v2.ID {
		t.Fatalf("unexpected roster: %v", got.VolunteerAssigned)
	}
}

func TestCampRepo_AssignVolunteers_ClosedCamp(t *testing.T) {
	truncateAll(t)

	campRepo := NewCampRepo(testPool, testLogger)

	camp := createCamp(t, "Riverside", domain.RiskLow)
	if _, err := campRepo.Close(context.Background(), camp.ID); err != nil {
		t.Fatalf("Close: %v", err)
	}

	v := createVolunteer(t, "a")
	_, err := campRepo.AssignVolunteers(context.Background(), camp.ID, []uuid.UUID{v.ID})
	if !errors.Is(err, e.ErrCampClosed) {
		t.Fatalf("expected ErrCampClosed got %v", err)
	}
}

func TestCampRepo_Close_SettlesAndReleases(t *testing.T) {
	truncateAll(t)

	campRepo := NewCampRepo(testPool, testLogger)
	volRepo := NewVolunteerRepo(testPool, testLogger)

	camp := createCamp(t, "Riverside", domain.RiskSevere)
	v := createVolunteer(t, "a")
	if err := volRepo.Join(context.Background(), v.ID, camp.ID); err != nil {
		t.Fatalf("Join: %v", err)
	}

	res, err := campRepo.Close(context.Background(), camp.ID)
	if err != nil {
		t.Fatalf("Close: %v", err)
	}
	if res.Camp.Status != domain.CampClosed {
		t.Fatalf("expected CLOSED got %s", res.Camp.Status)
	}
	if len(res.Released) != 1 || res.Released[0] != v.ID {
		t.Fatalf("expected v released, got %v", res.Released)
	}

	got, err := volRepo.Get(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.Available || got.AssignedCamp != nil {
		t.Fatalf("expected volunteer freed, got %+v", got)
	}
	if got.CompletedCamps != 1 {
		t.Fatalf("expected completed_camps=1 got %d", got.CompletedCamps)
	}
	if len(got.Badges) != 1 {
		t.Fatalf("expected first badge earned, got %v", got.Badges)
	}

	// Second close is a no-op with nobody released.
	again, err := campRepo.Close(context.Background(), camp.ID)
	if err != nil {
		t.Fatalf("Close again: %v", err)
	}
	if len(again.Released) != 0 {
		t.Fatalf("expected no released on repeat close, got %v", again.Released)
	}

	repeat, _ := volRepo.Get(context.Background(), v.ID)
	if repeat.CompletedCamps != 1 {
		t.Fatalf("repeat close must not double-credit, got %d", repeat.CompletedCamps)
	}
}

func TestVolunteerRepo_Join_AlreadyAssigned(t *testing.T) {
	truncateAll(t)

	volRepo := NewVolunteerRepo(testPool, testLogger)

	camp1 := createCamp(t, "Riverside", domain.RiskHigh)
	camp2 := createCamp(t, "Old Town", domain.RiskLow)
	v := createVolunteer(t, "a")

	if err := volRepo.Join(context.Background(), v.ID, camp1.ID); err != nil {
		t.Fatalf("Join: %v", err)
	}

	err := volRepo.Join(context.Background(), v.ID, camp2.ID)
	if !errors.Is(err, e.ErrAlreadyAssigned) {
		t.Fatalf("expected ErrAlreadyAssigned got %v", err)
	}
}

func TestVolunteerRepo_Join_ClosedCamp(t *testing.T) {
	truncateAll(t)

	campRepo := NewCampRepo(testPool, testLogger)
	volRepo := NewVolunteerRepo(testPool, testLogger)

	camp := createCamp(t, "Riverside", domain.RiskHigh)
	if _, err := campRepo.Close(context.Background(), camp.ID); err != nil {
		t.Fatalf("Close: %v", err)
	}

	v := createVolunteer(t, "a")
	err := volRepo.Join(context.Background(), v.ID, camp.ID)
	if !errors.Is(err, e.ErrCampClosed) {
		t.Fatalf("expected ErrCampClosed got %v", err)
	}
}

func TestVolunteerRepo_Leave_UpdatesRoster(t *testing.T) {
	truncateAll(t)

	campRepo := NewCampRepo(testPool, testLogger)
	volRepo := NewVolunteerRepo(testPool, testLogger)

	camp := createCamp(t, "Riverside", domain.RiskHigh)
	v := createVolunteer(t, "a")

	if err := volRepo.Join(context.Background(), v.ID, camp.ID); err != nil {
		t.Fatalf("Join: %v", err)
	}
	if err := volRepo.Leave(context.Background(), v.ID); err != nil {
		t.Fatalf("Leave: %v", err)
	}

	got, err := volRepo.Get(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.Available || got.AssignedCamp != nil {
		t.Fatalf("expected volunteer free, got %+v", got)
	}

	c, err := campRepo.Get(context.Background(), camp.ID)
	if err != nil {
		t.Fatalf("Get camp: %v", err)
	}
	if containsID(c.VolunteerAssigned, v.ID) {
		t.Fatalf("expected volunteer off the roster, got %v", c.VolunteerAssigned)
	}
}

func TestVolunteerRepo_Leave_ConcurrentReassignKeepsRostersConsistent(t *testing.T) {
	truncateAll(t)

	campRepo := NewCampRepo(testPool, testLogger)
	volRepo := NewVolunteerRepo(testPool, testLogger)

	camp1 := createCamp(t, "Riverside", domain.RiskHigh)
	camp2 := createCamp(t, "Old Town", domain.RiskLow)
	v := createVolunteer(t, "a")

	// Race Leave against a reassignment to another camp. Whatever interleaving
	// wins, the volunteer must only ever sit on the roster of the camp the
	// volunteer row points at.
	for i := 0; i < 20; i++ {
		if err := volRepo.Join(context.Background(), v.ID, camp1.ID); err != nil {
			t.Fatalf("Join: %v", err)
		}

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = campRepo.AssignVolunteers(context.Background(), camp2.ID, []uuid.UUID{v.ID})
		}()
		go func() {
			defer wg.Done()
			if err := volRepo.Leave(context.Background(), v.ID); err != nil && !errors.Is(err, e.ErrConflict) {
				t.Errorf("Leave: %v", err)
			}
		}()
		wg.Wait()

		got, err := volRepo.Get(context.Background(), v.ID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		c1, _ := campRepo.Get(context.Background(), camp1.ID)
		c2, _ := campRepo.Get(context.Background(), camp2.ID)

		for _, c := range []*domain.ReliefCamp{c1, c2} {
			onRoster := containsID(c.VolunteerAssigned, v.ID)
			assignedHere := got.AssignedCamp != nil && *got.AssignedCamp == c.ID
			if onRoster != assignedHere {
				t.Fatalf("iteration %d: roster of %s disagrees with assignment %v", i, c.Area, got.AssignedCamp)
			}
		}

		// Reset for the next round.
		if err := volRepo.Leave(context.Background(), v.ID); err != nil {
			t.Fatalf("reset Leave: %v", err)
		}
	}
}

func TestWorkReportRepo_Create_OpenReportConflict(t *testing.T) {
	truncateAll(t)

	repRepo := NewWorkReportRepo(testPool, testLogger)

	camp := createCamp(t, "Riverside", domain.RiskHigh)
	v := createVolunteer(t, "a")

	first := &domain.WorkReport{
		VolunteerID: v.ID,
		CampID:      camp.ID,
		Description: "distributed masks",
	}
	if err := repRepo.Create(context.Background(), first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.Status != domain.ReportPending {
		t.Fatalf("expected PENDING got %s", first.Status)
	}

	second := &domain.WorkReport{
		VolunteerID: v.ID,
		CampID:      camp.ID,
		Description: "second attempt",
	}
	err := repRepo.Create(context.Background(), second)
	if !errors.Is(err, e.ErrReportOpen) {
		t.Fatalf("expected ErrReportOpen got %v", err)
	}

	// A rejected report frees the slot for a resubmission.
	if _, err := repRepo.Reject(context.Background(), first.ID, "need photos"); err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if err := repRepo.Create(context.Background(), second); err != nil {
		t.Fatalf("resubmit after reject: %v", err)
	}
}

func TestWorkReportRepo_Create_MissingReferences(t *testing.T) {
	truncateAll(t)

	repRepo := NewWorkReportRepo(testPool, testLogger)
	camp := createCamp(t, "Riverside", domain.RiskHigh)
	v := createVolunteer(t, "a")

	missingCamp := &domain.WorkReport{VolunteerID: v.ID, CampID: uuid.New(), Description: "x"}
	if err := repRepo.Create(context.Background(), missingCamp); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing camp got %v", err)
	}

	missingVol := &domain.WorkReport{VolunteerID: uuid.New(), CampID: camp.ID, Description: "x"}
	if err := repRepo.Create(context.Background(), missingVol); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing volunteer got %v", err)
	}
}

func TestWorkReportRepo_Approve_SettlesRewards(t *testing.T) {
	truncateAll(t)

	repRepo := NewWorkReportRepo(testPool, testLogger)
	volRepo := NewVolunteerRepo(testPool, testLogger)

	camp := createCamp(t, "Riverside", domain.RiskHigh)
	v := createVolunteer(t, "a")

	report := &domain.WorkReport{
		VolunteerID:  v.ID,
		CampID:       camp.ID,
		Description:  "oxygen refills",
		Images:       []string{"https://img/1.jpg"},
		PeopleHelped: 10,
		HoursWorked:  4,
	}
	if err := repRepo.Create(context.Background(), report); err != nil {
		t.Fatalf("Create: %v", err)
	}

	res, err := repRepo.Approve(context.Background(), report.ID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	// 100 base + 5*4 hours + 2*10 people + 20 image bonus
	if res.XPEarned != 160 {
		t.Fatalf("expected 160 xp got %d", res.XPEarned)
	}
	if res.Report.Status != domain.ReportApproved {
		t.Fatalf("expected APPROVED got %s", res.Report.Status)
	}
	if res.Volunteer.XP != 160 || res.Volunteer.TotalHours != 4 || res.Volunteer.TotalPeopleHelped != 10 {
		t.Fatalf("unexpected volunteer totals: %+v", res.Volunteer)
	}

	// Second approve is an idempotent no-op.
	again, err := repRepo.Approve(context.Background(), report.ID)
	if err != nil {
		t.Fatalf("Approve again: %v", err)
	}
	if !again.AlreadyApproved || again.XPEarned != 0 {
		t.Fatalf("expected idempotent approve, got %+v", again)
	}

	got, _ := volRepo.Get(context.Background(), v.ID)
	if got.XP != 160 {
		t.Fatalf("repeat approve must not double-credit, got xp=%d", got.XP)
	}
}

func TestWorkReportRepo_Reject_ApprovedConflict(t *testing.T) {
	truncateAll(t)

	repRepo := NewWorkReportRepo(testPool, testLogger)

	camp := createCamp(t, "Riverside", domain.RiskHigh)
	v := createVolunteer(t, "a")

	report := &domain.WorkReport{VolunteerID: v.ID, CampID: camp.ID, Description: "done"}
	if err := repRepo.Create(context.Background(), report); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repRepo.Approve(context.Background(), report.ID); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	_, err := repRepo.Reject(context.Background(), report.ID, "late")
	if !errors.Is(err, e.ErrConflict) {
		t.Fatalf("expected ErrConflict got %v", err)
	}
}

func TestHealthRepo_AreaStats_GroupsByArea(t *testing.T) {
	truncateAll(t)

	repo := NewHealthRepo(testPool, testLogger)

	// One sample carries several symptoms: the flattening must not weight
	// the count or the averages by symptom cardinality.
	samples := []*domain.HealthSample{
		{Area: "Riverside", SleepHours: 8, Stress: 8, Symptoms: []string{"cough", "headache", "fatigue"}},
		{Area: "Riverside", SleepHours: 4, Stress: 4},
		{Area: "Old Town", SleepHours: 7, Stress: 3},
	}
	for _, s := range samples {
		if err := repo.Create(context.Background(), s); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	stats, err := repo.AreaStats(context.Background())
	if err != nil {
		t.Fatalf("AreaStats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 areas got %d", len(stats))
	}

	byArea := map[string]domain.AreaHealthStats{}
	for _, s := range stats {
		byArea[s.Area] = s
	}
	riverside := byArea["Riverside"]
	if riverside.Reports != 2 {
		t.Fatalf("expected 2 reports got %d", riverside.Reports)
	}
	if riverside.AvgSleep != 6 || riverside.AvgStress != 6 {
		t.Fatalf("averages must be per sample, got sleep=%v stress=%v", riverside.AvgSleep, riverside.AvgStress)
	}
	if len(riverside.Symptoms) != 3 {
		t.Fatalf("expected flattened symptoms, got %v", riverside.Symptoms)
	}

	oldTown := byArea["Old Town"]
	if oldTown.Reports != 1 || len(oldTown.Symptoms) != 0 {
		t.Fatalf("unexpected old town stats: %+v", oldTown)
	}

	overview, err := repo.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if overview.TotalReports != 3 {
		t.Fatalf("expected 3 reports got %d", overview.TotalReports)
	}

	areas, err := repo.Areas(context.Background())
	if err != nil {
		t.Fatalf("Areas: %v", err)
	}
	if len(areas) != 2 || areas[0] != "Old Town" {
		t.Fatalf("expected sorted distinct areas, got %v", areas)
	}
}

func TestEnvLogRepo_History_OldestFirstWithLimit(t *testing.T) {
	truncateAll(t)

	repo := NewEnvLogRepo(testPool, testLogger)

	for i, aqi := range []int{100, 120, 140, 160} {
		_, err := testPool.Exec(context.Background(),
			`INSERT INTO env_logs (area, aqi, created_at) VALUES ($1, $2, $3)`,
			"Riverside", aqi, time.Date(2026, 1, 1, 0, 0, i, 0, time.UTC))
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	if err := repo.Insert(context.Background(), "Old Town", 60); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	history, err := repo.History(context.Background(), "Riverside", 3)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 entries got %d", len(history))
	}
	// newest three, oldest first
	if history[0].AQI != 120 || history[2].AQI != 160 {
		t.Fatalf("unexpected window: %+v", history)
	}
}
