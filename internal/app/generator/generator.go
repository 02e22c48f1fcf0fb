// Package generator produces fresh quests and quiz questions. The
// remote generator asks an external content service; whenever that
// fails (unconfigured, unreachable, bad payload) it falls back to the
// built-in catalog so generation never errors out to the caller.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ecoquest-app/ecoquest/internal/domain"
	"github.com/ecoquest-app/ecoquest/internal/infra/catalog"
	"github.com/ecoquest-app/ecoquest/internal/infra/metrics"
)

// Generator hands out new content. Both methods always succeed; the
// implementations degrade to the catalog internally.
type Generator interface {
	GenerateQuest(ctx context.Context, questType domain.QuestType, difficulty domain.Difficulty) domain.Quest
	GenerateQuiz(ctx context.Context, count int, category domain.QuestType, difficulty domain.Difficulty) []domain.QuizQuestion
}

// ─── Catalog Generator ──────────────────────────────────────────────────────

// CatalogGenerator serves content straight from the built-in library.
// It is the fallback for the remote generator and the whole generator
// when no remote endpoint is configured.
type CatalogGenerator struct {
	rng *rand.Rand
}

// NewCatalogGenerator seeds a catalog generator. A nil-safe seed of the
// current time is used so repeated draws vary.
func NewCatalogGenerator() *CatalogGenerator {
	return &CatalogGenerator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// GenerateQuest instantiates a random catalog challenge matching the
// filters. Empty filters match everything.
func (g *CatalogGenerator) GenerateQuest(_ context.Context, questType domain.QuestType, difficulty domain.Difficulty) domain.Quest {
	template := catalog.RandomChallenge(g.rng, questType, difficulty)
	return template.Instantiate(uuid.NewString(), time.Now())
}

// GenerateQuiz samples questions from the bank.
func (g *CatalogGenerator) GenerateQuiz(_ context.Context, count int, category domain.QuestType, difficulty domain.Difficulty) []domain.QuizQuestion {
	return catalog.SampleQuestions(g.rng, count, category, difficulty)
}

// ─── Remote Generator ───────────────────────────────────────────────────────

// RemoteGenerator asks an external HTTP content service, falling back
// to the catalog on any failure. Generated quests are tagged as
// AI-generated.
type RemoteGenerator struct {
	baseURL  string
	client   *http.Client
	fallback *CatalogGenerator
}

// NewRemoteGenerator builds a remote generator for the given base URL.
func NewRemoteGenerator(baseURL string, timeout time.Duration) *RemoteGenerator {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RemoteGenerator{
		baseURL:  baseURL,
		client:   &http.Client{Timeout: timeout},
		fallback: NewCatalogGenerator(),
	}
}

// New returns the remote generator when a base URL is configured, the
// catalog generator otherwise.
func New(baseURL string, timeout time.Duration) Generator {
	if baseURL == "" {
		return NewCatalogGenerator()
	}
	return NewRemoteGenerator(baseURL, timeout)
}

// GenerateQuest requests one challenge template from the service.
func (g *RemoteGenerator) GenerateQuest(ctx context.Context, questType domain.QuestType, difficulty domain.Difficulty) domain.Quest {
	body := map[string]interface{}{}
	if questType != "" {
		body["type"] = questType
	}
	if difficulty != "" {
		body["difficulty"] = difficulty
	}

	var template domain.QuestTemplate
	if err := g.post(ctx, "/challenge", body, &template); err != nil {
		log.Printf("[generator] challenge request failed, using catalog: %v", err)
		metrics.GeneratorFallbacks.Inc()
		return g.fallback.GenerateQuest(ctx, questType, difficulty)
	}
	if template.Title == "" || template.XPReward <= 0 {
		log.Printf("[generator] challenge response unusable, using catalog")
		metrics.GeneratorFallbacks.Inc()
		return g.fallback.GenerateQuest(ctx, questType, difficulty)
	}

	template.IsAIGenerated = true
	return template.Instantiate(uuid.NewString(), time.Now())
}

// GenerateQuiz requests a question set from the service.
func (g *RemoteGenerator) GenerateQuiz(ctx context.Context, count int, category domain.QuestType, difficulty domain.Difficulty) []domain.QuizQuestion {
	body := map[string]interface{}{"count": count}
	if category != "" {
		body["category"] = category
	}
	if difficulty != "" {
		body["difficulty"] = difficulty
	}

	var questions []domain.QuizQuestion
	if err := g.post(ctx, "/quiz", body, &questions); err != nil {
		log.Printf("[generator] quiz request failed, using catalog: %v", err)
		metrics.GeneratorFallbacks.Inc()
		return g.fallback.GenerateQuiz(ctx, count, category, difficulty)
	}
	if len(questions) == 0 {
		metrics.GeneratorFallbacks.Inc()
		return g.fallback.GenerateQuiz(ctx, count, category, difficulty)
	}
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = uuid.NewString()
		}
	}
	if len(questions) > count && count > 0 {
		questions = questions[:count]
	}
	return questions
}

func (g *RemoteGenerator) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("content service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("content service error %d: %s", resp.StatusCode, string(msg))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
