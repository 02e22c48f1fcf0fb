package health

import (
	"context"
	"testing"

	"github.com/ecoquest-app/ecoquest/internal/infra/sqlite"
)

func TestChecker_AllHealthy(t *testing.T) {
	dir := t.TempDir()
	db, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	c := NewChecker(db, dir)
	c.runAll(context.Background())

	statuses := c.Statuses()
	if len(statuses) != 3 {
		t.Fatalf("got %d checks, want 3", len(statuses))
	}
	for _, s := range statuses {
		if !s.Healthy {
			t.Errorf("check %s unhealthy: %s", s.Name, s.Error)
		}
	}
	if !c.IsHealthy() {
		t.Error("checker reports unhealthy with all checks passing")
	}
}

func TestChecker_ClosedDB(t *testing.T) {
	dir := t.TempDir()
	db, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.Close()

	c := NewChecker(db, dir)
	c.runAll(context.Background())

	if c.IsHealthy() {
		t.Error("checker reports healthy with a closed database")
	}
}

func TestChecker_BeforeFirstRun(t *testing.T) {
	dir := t.TempDir()
	db, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	c := NewChecker(db, dir)
	if !c.IsHealthy() {
		t.Error("unstarted checker should report healthy")
	}
	if len(c.Statuses()) != 0 {
		t.Error("unstarted checker should have no statuses")
	}
}
