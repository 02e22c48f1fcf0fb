package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ecoquest-app/ecoquest/internal/app/insights"
	"github.com/ecoquest-app/ecoquest/internal/app/progression"
	"github.com/ecoquest-app/ecoquest/internal/domain"
	"github.com/ecoquest-app/ecoquest/internal/infra/catalog"
)

// --- /api/state ---

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.State())
}

// --- /api/reset ---

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.store.ResetGame()
	writeJSON(w, http.StatusOK, s.store.State())
}

// --- /api/profile ---

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	player := s.store.Player()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"player":         player,
		"xpForNextLevel": progression.XPForNextLevel(player.TotalXP),
		"levelProgress":  progression.ProgressToNextLevel(player.TotalXP),
	})
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var update domain.PlayerUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.store.UpdatePlayer(update)
	writeJSON(w, http.StatusOK, s.store.Player())
}

// --- /api/quests ---

func (s *Server) handleListQuests(w http.ResponseWriter, r *http.Request) {
	state := s.store.State()
	quests := state.Quests
	switch r.URL.Query().Get("status") {
	case "available":
		quests = state.AvailableQuests()
	case "completed":
		quests = state.CompletedQuests()
	}
	if quests == nil {
		quests = []domain.Quest{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"quests": quests,
	})
}

func (s *Server) handlePersonalizedQuests(w http.ResponseWriter, r *http.Request) {
	quests := s.store.PersonalizedQuests()
	if quests == nil {
		quests = []domain.Quest{}
	}
	player := s.store.Player()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"quests":            quests,
		"recommendedAction": progression.NextRecommendedAction(player, quests),
	})
}

type generateQuestRequest struct {
	Type       domain.QuestType  `json:"type"`
	Difficulty domain.Difficulty `json:"difficulty"`
}

func (s *Server) handleGenerateQuest(w http.ResponseWriter, r *http.Request) {
	var req generateQuestRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	quest := s.gen.GenerateQuest(r.Context(), req.Type, req.Difficulty)
	s.store.AddQuest(quest)
	writeJSON(w, http.StatusCreated, quest)
}

func (s *Server) handleCompleteQuest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.store.CompleteQuest(id) {
		writeError(w, http.StatusNotFound, "quest not found or already completed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"player":       s.store.Player(),
		"achievements": s.store.UnlockedAchievements(),
	})
}

func (s *Server) handleUpdateQuest(w http.ResponseWriter, r *http.Request) {
	var update domain.QuestUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := chi.URLParam(r, "id")
	s.store.UpdateQuest(id, update)

	for _, q := range s.store.State().Quests {
		if q.ID == id {
			writeJSON(w, http.StatusOK, q)
			return
		}
	}
	writeError(w, http.StatusNotFound, "quest not found")
}

// --- /api/quiz ---

func (s *Server) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	count := 5
	if n, err := strconv.Atoi(q.Get("count")); err == nil && n > 0 {
		count = n
	}
	category := domain.QuestType(q.Get("category"))
	difficulty := domain.Difficulty(q.Get("difficulty"))

	questions := s.gen.GenerateQuiz(r.Context(), count, category, difficulty)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": questions,
	})
}

type submitQuizRequest struct {
	Questions []domain.QuizQuestion `json:"questions"`
	Answers   []int                 `json:"answers"`
}

func (s *Server) handleSubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var req submitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Questions) == 0 {
		writeError(w, http.StatusBadRequest, "no questions submitted")
		return
	}

	session := progression.NewQuizSession(req.Questions, req.Answers, time.Now())
	s.store.AddQuizSession(session)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session": session,
		"player":  s.store.Player(),
	})
}

// --- /api/games ---

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games := catalog.MiniGames
	if category := r.URL.Query().Get("category"); category != "" {
		games = catalog.GamesByCategory(domain.QuestType(category))
	}
	if games == nil {
		games = []domain.MiniGame{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"games": games,
	})
}

type gameScoreRequest struct {
	Score int `json:"score"`
}

func (s *Server) handleGameScore(w http.ResponseWriter, r *http.Request) {
	game := catalog.GameByID(chi.URLParam(r, "id"))
	if game == nil {
		writeError(w, http.StatusNotFound, domain.ErrGameNotFound.Error())
		return
	}

	var req gameScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Score < 0 {
		writeError(w, http.StatusBadRequest, "score must be non-negative")
		return
	}

	score := progression.NewGameScore(*game, req.Score, time.Now())
	s.store.AddMiniGameScore(score)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"result": score,
		"player": s.store.Player(),
	})
}

// --- /api/streak ---

func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	s.store.UpdateStreak()
	player := s.store.Player()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"currentStreak": player.CurrentStreak,
		"longestStreak": player.LongestStreak,
		"lastActiveAt":  player.LastActiveAt,
	})
}

// --- /api/achievements ---

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	state := s.store.State()
	achievements := state.Achievements

	q := r.URL.Query()
	if q.Get("unlocked") == "true" {
		achievements = state.UnlockedAchievements()
	} else if q.Get("personalized") == "true" {
		achievements = progression.PersonalizedAchievements(state.Achievements, state.Player)
	}
	if achievements == nil {
		achievements = []domain.Achievement{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"achievements": achievements,
		"earned":       state.Player.Stats.BadgesEarned,
	})
}

// --- /api/tips ---

func (s *Server) handleTips(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tips": progression.PersonalizedTips(s.store.Player()),
	})
}

// --- /api/insights ---

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	days := 30
	if n, err := strconv.Atoi(r.URL.Query().Get("days")); err == nil && n > 0 {
		days = n
	}
	report := insights.BuildReport(s.store.State(), time.Now(), days)
	writeJSON(w, http.StatusOK, report)
}

// --- /api/export ---

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	state := s.store.State()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"exportedAt": time.Now().UTC(),
		"state":      state,
		"insights":   insights.BuildReport(state, time.Now(), 30),
	})
}
