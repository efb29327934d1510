package scorecard

import (
	"testing"

	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/stretchr/testify/suite"
)

type ScorecardTestSuite struct {
	suite.Suite
	card *Scorecard
}

func (s *ScorecardTestSuite) SetupTest() {
	s.card = New()
}

func TestScorecardTestSuite(t *testing.T) {
	suite.Run(t, new(ScorecardTestSuite))
}

func (s *ScorecardTestSuite) TestNew_AllCategoriesEmpty() {
	for _, c := range models.AllCategories() {
		s.False(s.card.IsFilled(c), c)
	}
	s.Len(s.card.Open(), 13)
	s.Empty(s.card.Scores())
	s.False(s.card.IsComplete())
	s.Equal(0, s.card.Total())
}

func (s *ScorecardTestSuite) TestCommit() {
	s.Require().NoError(s.card.Commit(models.CategoryChance, 22))

	s.True(s.card.IsFilled(models.CategoryChance))
	score, ok := s.card.Score(models.CategoryChance)
	s.True(ok)
	s.Equal(22, score)
	s.Equal(22, s.card.Total())
	s.NotContains(s.card.Open(), models.CategoryChance)
}

func (s *ScorecardTestSuite) TestCommit_ZeroStillFills() {
	s.Require().NoError(s.card.Commit(models.CategoryYahtzee, 0))

	s.True(s.card.IsFilled(models.CategoryYahtzee))
	score, ok := s.card.Score(models.CategoryYahtzee)
	s.True(ok)
	s.Equal(0, score)
}

func (s *ScorecardTestSuite) TestCommit_AlreadyFilled() {
	s.Require().NoError(s.card.Commit(models.CategoryFours, 12))

	err := s.card.Commit(models.CategoryFours, 20)

	s.ErrorIs(err, ErrAlreadyFilled)
	score, _ := s.card.Score(models.CategoryFours)
	s.Equal(12, score)
	s.Equal(12, s.card.Total())
}

func (s *ScorecardTestSuite) TestCommit_UnknownCategory() {
	err := s.card.Commit(models.Category("upper_bonus"), 35)

	s.ErrorIs(err, ErrUnknownCategory)
	s.False(s.card.IsFilled(models.Category("upper_bonus")))
	s.Equal(0, s.card.Total())
}

func (s *ScorecardTestSuite) TestScore_Unfilled() {
	score, ok := s.card.Score(models.CategorySixes)
	s.False(ok)
	s.Equal(0, score)
}

func (s *ScorecardTestSuite) TestIsComplete_AndTotal() {
	scores := map[models.Category]int{
		models.CategoryOnes:          3,
		models.CategoryTwos:          6,
		models.CategoryThrees:        9,
		models.CategoryFours:         12,
		models.CategoryFives:         15,
		models.CategorySixes:         18,
		models.CategoryThreeOfAKind:  21,
		models.CategoryFourOfAKind:   0,
		models.CategoryFullHouse:     25,
		models.CategorySmallStraight: 30,
		models.CategoryLargeStraight: 40,
		models.CategoryYahtzee:       50,
		models.CategoryChance:        23,
	}

	expected := 0
	for i, c := range models.AllCategories() {
		s.False(s.card.IsComplete(), "complete after %d commits", i)
		s.Require().NoError(s.card.Commit(c, scores[c]))
		expected += scores[c]
	}

	s.True(s.card.IsComplete())
	s.Equal(expected, s.card.Total())
	s.Equal(252, s.card.Total())
	s.Empty(s.card.Open())
	s.Equal(scores, s.card.Scores())
}

func (s *ScorecardTestSuite) TestScores_ReturnsCopy() {
	s.Require().NoError(s.card.Commit(models.CategoryOnes, 2))

	scores := s.card.Scores()
	scores[models.CategoryOnes] = 5
	scores[models.CategoryTwos] = 10

	score, _ := s.card.Score(models.CategoryOnes)
	s.Equal(2, score)
	s.False(s.card.IsFilled(models.CategoryTwos))
}

func (s *ScorecardTestSuite) TestOpen_KeepsScorecardOrder() {
	s.Require().NoError(s.card.Commit(models.CategoryTwos, 4))
	s.Require().NoError(s.card.Commit(models.CategoryYahtzee, 0))

	open := s.card.Open()
	s.Len(open, 11)
	s.Equal(models.CategoryOnes, open[0])
	s.Equal(models.CategoryThrees, open[1])
	s.Equal(models.CategoryChance, open[len(open)-1])
}
