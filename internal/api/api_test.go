package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecoquest-app/ecoquest/internal/app/generator"
	"github.com/ecoquest-app/ecoquest/internal/app/progression"
	"github.com/ecoquest-app/ecoquest/internal/domain"
)

// nullSaver satisfies progression.Saver without touching disk.
type nullSaver struct {
	saved *domain.GameState
}

func (n *nullSaver) SaveState(state domain.GameState) error {
	n.saved = &state
	return nil
}
func (n *nullSaver) LoadState() (*domain.GameState, error) { return n.saved, nil }
func (n *nullSaver) ClearState() error                     { n.saved = nil; return nil }

func testServer(t *testing.T) (*httptest.Server, *progression.Store) {
	t.Helper()
	store := progression.NewStore(&nullSaver{})
	if err := store.Initialize(); err != nil {
		t.Fatalf("initialize store: %v", err)
	}
	srv := NewServer(store, generator.NewCatalogGenerator(), "test")
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, store
}

func getJSON(t *testing.T, url string, out interface{}) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp
}

func postJSON(t *testing.T, url string, body interface{}, out interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	resp, err := http.Post(url, "application/json", &buf)
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp
}

func TestHealth(t *testing.T) {
	ts, _ := testServer(t)
	var got map[string]string
	resp := getJSON(t, ts.URL+"/health", &got)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got["status"] != "ok" {
		t.Errorf("status body = %v", got)
	}
}

func TestCORS_ConfiguredOrigins(t *testing.T) {
	store := progression.NewStore(&nullSaver{})
	if err := store.Initialize(); err != nil {
		t.Fatalf("initialize store: %v", err)
	}
	srv := NewServer(store, generator.NewCatalogGenerator(), "test")
	srv.SetCORSOrigins([]string{"https://app.example.com"})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	req, _ := http.NewRequest("GET", ts.URL+"/health", nil)
	req.Header.Set("Origin", "https://app.example.com")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("allow-origin for listed origin = %q, want the origin echoed", got)
	}

	req, _ = http.NewRequest("GET", ts.URL+"/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("allow-origin for unlisted origin = %q, want none", got)
	}
}

func TestCORS_DefaultAllowsAny(t *testing.T) {
	ts, _ := testServer(t)

	req, _ := http.NewRequest("GET", ts.URL+"/health", nil)
	req.Header.Set("Origin", "https://anywhere.example.com")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("allow-origin = %q, want *", got)
	}
}

func TestGenerateAndCompleteQuest(t *testing.T) {
	ts, store := testServer(t)

	var quest domain.Quest
	resp := postJSON(t, ts.URL+"/api/quests/generate",
		map[string]string{"type": "waste", "difficulty": "easy"}, &quest)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("generate status = %d, want 201", resp.StatusCode)
	}
	if quest.ID == "" || quest.Type != domain.QuestWaste {
		t.Fatalf("generated quest = %+v", quest)
	}
	if len(store.AvailableQuests()) != 1 {
		t.Fatal("generated quest not added to store")
	}

	var completed struct {
		Player domain.PlayerProfile `json:"player"`
	}
	resp = postJSON(t, ts.URL+"/api/quests/"+quest.ID+"/complete", nil, &completed)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("complete status = %d, want 200", resp.StatusCode)
	}
	if completed.Player.TotalXP != quest.XPReward {
		t.Errorf("xp = %d, want %d", completed.Player.TotalXP, quest.XPReward)
	}

	// Completing again is a 404, not a double credit.
	resp = postJSON(t, ts.URL+"/api/quests/"+quest.ID+"/complete", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("repeat complete status = %d, want 404", resp.StatusCode)
	}
	if store.Player().TotalXP != quest.XPReward {
		t.Errorf("xp after repeat = %d, want unchanged", store.Player().TotalXP)
	}
}

func TestCompleteQuest_Unknown(t *testing.T) {
	ts, _ := testServer(t)
	resp := postJSON(t, ts.URL+"/api/quests/nope/complete", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestQuizFlow(t *testing.T) {
	ts, store := testServer(t)

	var quiz struct {
		Questions []domain.QuizQuestion `json:"questions"`
	}
	getJSON(t, ts.URL+"/api/quiz?count=3&category=water", &quiz)
	if len(quiz.Questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(quiz.Questions))
	}

	answers := make([]int, len(quiz.Questions))
	for i, q := range quiz.Questions {
		answers[i] = q.CorrectAnswer
	}

	var result struct {
		Session domain.QuizSession   `json:"session"`
		Player  domain.PlayerProfile `json:"player"`
	}
	resp := postJSON(t, ts.URL+"/api/quiz/submit",
		submitQuizRequest{Questions: quiz.Questions, Answers: answers}, &result)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit status = %d, want 200", resp.StatusCode)
	}
	if result.Session.Score != 3 {
		t.Errorf("score = %d, want 3", result.Session.Score)
	}
	if result.Player.TotalXP != 3*domain.QuizXPPerCorrect {
		t.Errorf("xp = %d, want %d", result.Player.TotalXP, 3*domain.QuizXPPerCorrect)
	}
	if store.Player().Stats.QuizzesCompleted != 1 {
		t.Error("quiz session not recorded in store")
	}
}

func TestSubmitQuiz_Empty(t *testing.T) {
	ts, _ := testServer(t)
	resp := postJSON(t, ts.URL+"/api/quiz/submit", submitQuizRequest{}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGameScore(t *testing.T) {
	ts, store := testServer(t)

	var games struct {
		Games []domain.MiniGame `json:"games"`
	}
	getJSON(t, ts.URL+"/api/games", &games)
	if len(games.Games) == 0 {
		t.Fatal("no games listed")
	}
	game := games.Games[0]

	var result struct {
		Result domain.MiniGameScore `json:"result"`
	}
	resp := postJSON(t, ts.URL+"/api/games/"+game.ID+"/score",
		gameScoreRequest{Score: game.MaxScore / 2}, &result)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("score status = %d, want 200", resp.StatusCode)
	}
	if result.Result.XPEarned != game.XPReward/2 {
		t.Errorf("xp = %d, want %d", result.Result.XPEarned, game.XPReward/2)
	}
	if store.Player().Stats.MiniGamesPlayed != 1 {
		t.Error("play not recorded in store")
	}

	resp = postJSON(t, ts.URL+"/api/games/not-a-game/score", gameScoreRequest{Score: 1}, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown game status = %d, want 404", resp.StatusCode)
	}
}

func TestStreak(t *testing.T) {
	ts, _ := testServer(t)
	var got struct {
		CurrentStreak int `json:"currentStreak"`
		LongestStreak int `json:"longestStreak"`
	}
	resp := postJSON(t, ts.URL+"/api/streak", nil, &got)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	// Join day counts as already active; the streak holds steady.
	if got.CurrentStreak != 0 {
		t.Errorf("streak = %d, want 0 on join day", got.CurrentStreak)
	}
}

func TestAchievements_Filter(t *testing.T) {
	ts, _ := testServer(t)

	var all struct {
		Achievements []domain.Achievement `json:"achievements"`
		Earned       int                  `json:"earned"`
	}
	getJSON(t, ts.URL+"/api/achievements", &all)
	if len(all.Achievements) == 0 {
		t.Fatal("no achievements listed")
	}
	if all.Earned != 0 {
		t.Errorf("earned = %d, want 0", all.Earned)
	}

	var unlocked struct {
		Achievements []domain.Achievement `json:"achievements"`
	}
	getJSON(t, ts.URL+"/api/achievements?unlocked=true", &unlocked)
	if len(unlocked.Achievements) != 0 {
		t.Errorf("unlocked = %d, want 0 for fresh player", len(unlocked.Achievements))
	}
}

func TestUpdateProfile(t *testing.T) {
	ts, store := testServer(t)

	name := "Asha"
	done := true
	body, _ := json.Marshal(domain.PlayerUpdate{Name: &name, IsOnboardingComplete: &done})
	req, _ := http.NewRequest(http.MethodPatch, ts.URL+"/api/profile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PATCH profile: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	player := store.Player()
	if player.Name != "Asha" || !player.IsOnboardingComplete {
		t.Errorf("profile not updated: %+v", player)
	}
}

func TestInsights(t *testing.T) {
	ts, store := testServer(t)
	store.AddQuest(domain.Quest{ID: "q1", Type: domain.QuestWaste, XPReward: 100, Status: domain.QuestAvailable})
	store.CompleteQuest("q1")

	var report struct {
		Activity []struct {
			XPEarned int `json:"xpEarned"`
		} `json:"activity"`
		Progress struct {
			TotalActivities int `json:"totalActivities"`
		} `json:"progress"`
	}
	resp := getJSON(t, ts.URL+"/api/insights?days=7", &report)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if len(report.Activity) != 8 {
		t.Errorf("activity days = %d, want 8", len(report.Activity))
	}
	if report.Progress.TotalActivities != 1 {
		t.Errorf("totalActivities = %d, want 1", report.Progress.TotalActivities)
	}
}

func TestReset(t *testing.T) {
	ts, store := testServer(t)
	store.AddQuest(domain.Quest{ID: "q1", Type: domain.QuestWaste, XPReward: 100, Status: domain.QuestAvailable})
	store.CompleteQuest("q1")
	oldID := store.Player().ID

	var state domain.GameState
	resp := postJSON(t, ts.URL+"/api/reset", nil, &state)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if state.Player.ID == oldID || state.Player.TotalXP != 0 {
		t.Errorf("reset state = %+v", state.Player)
	}
}
