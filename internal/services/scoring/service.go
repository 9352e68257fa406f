package scoring

import (
	"sort"
	"strings"

	"github.com/vocabquest/vocabquest-go/internal/model"
)

// PointsPerCategory is awarded for each valid category answer
const PointsPerCategory = 10

// Service provides scoring for Category Challenge rounds.
// All methods are pure: identical input always yields identical output.
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// Score computes a player's score for one round. An answer is valid
// iff its trimmed text is non-empty and starts with the round letter,
// case-insensitively. Each valid category is worth PointsPerCategory.
func (s *Service) Score(answers model.CategoryAnswers, letter string) int {
	score := 0
	for _, answer := range []string{answers.Names, answers.Animals, answers.Places, answers.Things} {
		if validAnswer(answer, letter) {
			score += PointsPerCategory
		}
	}
	return score
}

func validAnswer(answer, letter string) bool {
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" || letter == "" {
		return false
	}
	return strings.EqualFold(trimmed[:1], letter[:1])
}

// Standing is one row of a room's final standings
type Standing struct {
	UserID      model.UserID
	DisplayName string
	Score       int
}

// Standings orders players by descending cumulative score.
// Ties break by join order, which the input slice already carries.
func (s *Service) Standings(players []model.Player) []Standing {
	standings := make([]Standing, len(players))
	for i, p := range players {
		standings[i] = Standing{
			UserID:      p.UserID,
			DisplayName: p.DisplayName,
			Score:       p.Score,
		}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})

	return standings
}

// Winner returns the leader's UserID, or empty for an empty room
func (s *Service) Winner(players []model.Player) model.UserID {
	standings := s.Standings(players)
	if len(standings) == 0 {
		return ""
	}
	return standings[0].UserID
}

// Interface for dependency injection
type ServiceInterface interface {
	Score(answers model.CategoryAnswers, letter string) int
	Standings(players []model.Player) []Standing
	Winner(players []model.Player) model.UserID
}

var _ ServiceInterface = (*Service)(nil)
