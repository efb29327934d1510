package game

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/yahtzee/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/yahtzee/internal/common/uuid/mocks"
	"github.com/KirkDiggler/yahtzee/internal/dice"
	diceMocks "github.com/KirkDiggler/yahtzee/internal/dice/mocks"
	"github.com/KirkDiggler/yahtzee/internal/models"
	resultRepo "github.com/KirkDiggler/yahtzee/internal/repositories/result"
	resultMocks "github.com/KirkDiggler/yahtzee/internal/repositories/result/mocks"
	"github.com/KirkDiggler/yahtzee/internal/scorecard"
	"github.com/KirkDiggler/yahtzee/internal/scoring"
	"github.com/KirkDiggler/yahtzee/internal/turn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockRoller     *diceMocks.MockRoller
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	mockResultRepo *resultMocks.MockRepository
	logger         *slog.Logger
	gameService    *service
	ctx            context.Context

	// Test data
	testTime       time.Time
	testGameID     string
	testPlayerName string
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockResultRepo = resultMocks.NewMockRepository(s.mockCtrl)
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGameID = "test-game-id"
	s.testPlayerName = "Test Player"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		PlayerName:     s.testPlayerName,
		HighScoreLimit: 3,
		ResultRepo:     s.mockResultRepo,
		DiceRoller:     s.mockRoller,
		Clock:          s.mockClock,
		UUIDGenerator:  s.mockUUID,
		Logger:         s.logger,
	})
	s.Require().NoError(err)
	s.gameService = svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

// expectRolls queues the values the roller hands out, in order
func (s *GameServiceTestSuite) expectRolls(values ...int) {
	calls := make([]any, 0, len(values))
	for _, v := range values {
		calls = append(calls, s.mockRoller.EXPECT().Roll(dice.Sides).Return(v))
	}
	gomock.InOrder(calls...)
}

func (s *GameServiceTestSuite) startGame() *StartGameOutput {
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)

	output, err := s.gameService.StartGame(s.ctx, &StartGameInput{})
	s.Require().NoError(err)
	return output
}

// playAllTurns rolls once and scores each category in scorecard order,
// with every die showing five
func (s *GameServiceTestSuite) playAllTurns() *SelectCategoryOutput {
	s.mockRoller.EXPECT().Roll(dice.Sides).Return(5).AnyTimes()

	var last *SelectCategoryOutput
	for _, c := range models.AllCategories() {
		_, err := s.gameService.RollDice(s.ctx, &RollDiceInput{GameID: s.testGameID})
		s.Require().NoError(err)

		last, err = s.gameService.SelectCategory(s.ctx, &SelectCategoryInput{
			GameID:   s.testGameID,
			Category: c,
		})
		s.Require().NoError(err)
	}
	return last
}

// allFivesTotal is the final score of playAllTurns: fives, three and four
// of a kind and chance each take 25, plus the yahtzee
const allFivesTotal = 25*4 + scoring.YahtzeeScore

func (s *GameServiceTestSuite) TestNew_Validation() {
	testCases := []struct {
		name        string
		cfg         *Config
		expectedErr error
	}{
		{"nil config", nil, ErrNilConfig},
		{"nil roller", &Config{Clock: s.mockClock, UUIDGenerator: s.mockUUID}, ErrNilDiceRoller},
		{"nil clock", &Config{DiceRoller: s.mockRoller, UUIDGenerator: s.mockUUID}, ErrNilClock},
		{"nil uuid", &Config{DiceRoller: s.mockRoller, Clock: s.mockClock}, ErrNilUUIDGenerator},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc, err := New(tc.cfg)
			s.Nil(svc)
			s.ErrorIs(err, tc.expectedErr)
		})
	}
}

func (s *GameServiceTestSuite) TestNew_Defaults() {
	svc, err := New(&Config{
		DiceRoller:    s.mockRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)

	s.Equal(defaultPlayerName, svc.playerName)
	s.Equal(resultRepo.DefaultHighScoreLimit, svc.highScoreLimit)
	s.Equal(scoring.Standard{}, svc.rules)
	s.NotNil(svc.logger)
	s.Nil(svc.resultRepo)
}

func (s *GameServiceTestSuite) TestStartGame_HappyPath() {
	output := s.startGame()

	s.Equal(s.testGameID, output.GameID)
	game := output.Game
	s.Equal(s.testGameID, game.ID)
	s.Equal(models.GameStatusActive, game.Status)
	s.Equal(1, game.Turn)
	s.Equal(models.TurnStateAwaitingRoll, game.TurnState)
	s.Equal(turn.MaxRolls, game.RollsRemaining)
	s.Len(game.Dice, dice.Count)
	s.Empty(game.Scores)
	s.Equal(0, game.Total)
	s.Equal(s.testTime, game.CreatedAt)
	s.False(game.IsOver())
}

func (s *GameServiceTestSuite) TestStartGame_NilInputUsesConfiguredPlayer() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)

	output, err := s.gameService.StartGame(s.ctx, nil)

	s.Require().NoError(err)
	s.Equal(s.testPlayerName, s.gameService.games[output.GameID].playerName)
}

func (s *GameServiceTestSuite) TestRollDice_HappyPath() {
	s.startGame()
	s.expectRolls(3, 1, 4, 1, 5)

	output, err := s.gameService.RollDice(s.ctx, &RollDiceInput{GameID: s.testGameID})

	s.Require().NoError(err)
	s.Equal([]int{3, 1, 4, 1, 5}, output.Values)
	s.Equal(turn.MaxRolls-1, output.RollsRemaining)
	s.Equal(models.TurnStateRolled, output.Game.TurnState)
}

func (s *GameServiceTestSuite) TestRollDice_Errors() {
	s.startGame()

	_, err := s.gameService.RollDice(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.gameService.RollDice(s.ctx, &RollDiceInput{GameID: "unknown"})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *GameServiceTestSuite) TestRollDice_FourthRollFails() {
	s.startGame()
	s.expectRolls(
		1, 2, 3, 4, 5,
		2, 3, 4, 5, 6,
		6, 6, 6, 6, 6,
	)
	for i := 0; i < turn.MaxRolls; i++ {
		_, err := s.gameService.RollDice(s.ctx, &RollDiceInput{GameID: s.testGameID})
		s.Require().NoError(err)
	}

	output, err := s.gameService.RollDice(s.ctx, &RollDiceInput{GameID: s.testGameID})

	s.ErrorIs(err, turn.ErrNoRollsRemaining)
	s.Nil(output)

	game, err := s.gameService.GetGame(s.ctx, &GetGameInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.Equal([]int{6, 6, 6, 6, 6}, game.Game.Values())
	s.Equal(0, game.Game.RollsRemaining)
}

func (s *GameServiceTestSuite) TestToggleFreeze_HappyPath() {
	s.startGame()
	s.expectRolls(2, 2, 2, 5, 6)
	_, err := s.gameService.RollDice(s.ctx, &RollDiceInput{GameID: s.testGameID})
	s.Require().NoError(err)

	output, err := s.gameService.ToggleFreeze(s.ctx, &ToggleFreezeInput{
		GameID:   s.testGameID,
		DieIndex: 1,
	})

	s.Require().NoError(err)
	s.True(output.Frozen)
	s.True(output.Game.Dice[1].Frozen)
	s.False(output.Game.Dice[0].Frozen)

	// The frozen die keeps its value across the next roll
	s.expectRolls(3, 3, 3, 3)
	roll, err := s.gameService.RollDice(s.ctx, &RollDiceInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.Equal([]int{3, 2, 3, 3, 3}, roll.Values)
}

func (s *GameServiceTestSuite) TestToggleFreeze_Errors() {
	s.startGame()

	_, err := s.gameService.ToggleFreeze(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.gameService.ToggleFreeze(s.ctx, &ToggleFreezeInput{GameID: s.testGameID, DieIndex: 0})
	s.ErrorIs(err, turn.ErrNotYetRolled)

	s.expectRolls(1, 1, 1, 1, 1)
	_, err = s.gameService.RollDice(s.ctx, &RollDiceInput{GameID: s.testGameID})
	s.Require().NoError(err)

	_, err = s.gameService.ToggleFreeze(s.ctx, &ToggleFreezeInput{GameID: s.testGameID, DieIndex: 5})
	s.ErrorIs(err, dice.ErrOutOfRange)

	_, err = s.gameService.ToggleFreeze(s.ctx, &ToggleFreezeInput{GameID: s.testGameID, DieIndex: -1})
	s.ErrorIs(err, dice.ErrOutOfRange)
}

func (s *GameServiceTestSuite) TestSelectCategory_BeforeRoll() {
	s.startGame()

	output, err := s.gameService.SelectCategory(s.ctx, &SelectCategoryInput{
		GameID:   s.testGameID,
		Category: models.CategoryChance,
	})

	s.ErrorIs(err, turn.ErrNotYetRolled)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestSelectCategory_AdvancesToNextTurn() {
	s.startGame()
	s.expectRolls(1, 2, 3, 4, 5)
	_, err := s.gameService.RollDice(s.ctx, &RollDiceInput{GameID: s.testGameID})
	s.Require().NoError(err)

	output, err := s.gameService.SelectCategory(s.ctx, &SelectCategoryInput{
		GameID:   s.testGameID,
		Category: models.CategoryLargeStraight,
	})

	s.Require().NoError(err)
	s.Equal(scoring.LargeStraightScore, output.Score)
	s.False(output.GameOver)
	s.Equal(0, output.FinalTotal)

	game := output.Game
	s.Equal(2, game.Turn)
	s.Equal(models.TurnStateAwaitingRoll, game.TurnState)
	s.Equal(turn.MaxRolls, game.RollsRemaining)
	s.Equal([]int{0, 0, 0, 0, 0}, game.Values())
	s.Equal(map[models.Category]int{models.CategoryLargeStraight: scoring.LargeStraightScore}, game.Scores)
	s.Equal(scoring.LargeStraightScore, game.Total)
}

func (s *GameServiceTestSuite) TestSelectCategory_SameCategoryTwice() {
	s.startGame()
	s.expectRolls(
		4, 4, 4, 1, 2,
		4, 4, 4, 4, 4,
	)
	_, err := s.gameService.RollDice(s.ctx, &RollDiceInput{GameID: s.testGameID})
	s.Require().NoError(err)
	_, err = s.gameService.SelectCategory(s.ctx, &SelectCategoryInput{
		GameID:   s.testGameID,
		Category: models.CategoryFours,
	})
	s.Require().NoError(err)

	_, err = s.gameService.RollDice(s.ctx, &RollDiceInput{GameID: s.testGameID})
	s.Require().NoError(err)

	output, err := s.gameService.SelectCategory(s.ctx, &SelectCategoryInput{
		GameID:   s.testGameID,
		Category: models.CategoryFours,
	})

	s.ErrorIs(err, turn.ErrCategoryUnavailable)
	s.Nil(output)

	game, err := s.gameService.GetGame(s.ctx, &GetGameInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.Equal(12, game.Game.Scores[models.CategoryFours])
	s.Equal(2, game.Game.Turn)
	s.Equal(models.TurnStateRolled, game.Game.TurnState)
}

func (s *GameServiceTestSuite) TestSelectCategory_Errors() {
	s.startGame()

	_, err := s.gameService.SelectCategory(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.gameService.SelectCategory(s.ctx, &SelectCategoryInput{GameID: "unknown"})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *GameServiceTestSuite) TestFullGame_RecordsResult() {
	s.startGame()

	var saved *models.GameResult
	s.mockResultRepo.EXPECT().
		SaveResult(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *resultRepo.SaveResultInput) error {
			saved = input.Result
			return nil
		})

	output := s.playAllTurns()

	s.True(output.GameOver)
	s.True(output.ResultSaved)
	s.Equal(allFivesTotal, output.FinalTotal)
	s.Equal(models.GameStatusOver, output.Game.Status)
	s.Equal(allFivesTotal, output.Game.FinalTotal)
	s.Equal(13, output.Game.Turn)
	s.True(output.Game.IsOver())

	s.Require().NotNil(saved)
	s.Equal(s.testGameID, saved.ID)
	s.Equal(s.testPlayerName, saved.PlayerName)
	s.Equal(allFivesTotal, saved.Total)
	s.Len(saved.Scores, 13)
	s.Equal(s.testTime, saved.StartedAt)
	s.Equal(s.testTime, saved.CompletedAt)

	total, err := s.gameService.GetFinalTotal(s.ctx, &GetFinalTotalInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.Equal(allFivesTotal, total.Total)

	sum := 0
	for _, score := range output.Game.Scores {
		sum += score
	}
	s.Equal(sum, total.Total)
}

func (s *GameServiceTestSuite) TestFullGame_NoMoreActions() {
	s.startGame()
	s.mockResultRepo.EXPECT().SaveResult(s.ctx, gomock.Any()).Return(nil)
	s.playAllTurns()

	_, err := s.gameService.RollDice(s.ctx, &RollDiceInput{GameID: s.testGameID})
	s.ErrorIs(err, ErrGameNotActive)

	_, err = s.gameService.ToggleFreeze(s.ctx, &ToggleFreezeInput{GameID: s.testGameID})
	s.ErrorIs(err, ErrGameNotActive)

	_, err = s.gameService.SelectCategory(s.ctx, &SelectCategoryInput{
		GameID:   s.testGameID,
		Category: models.CategoryChance,
	})
	s.ErrorIs(err, ErrGameNotActive)

	_, err = s.gameService.QuitGame(s.ctx, &QuitGameInput{GameID: s.testGameID})
	s.ErrorIs(err, ErrGameNotActive)
}

func (s *GameServiceTestSuite) TestFullGame_SaveFailureStillEndsGame() {
	s.startGame()
	s.mockResultRepo.EXPECT().
		SaveResult(s.ctx, gomock.Any()).
		Return(errors.New("redis unavailable"))

	output := s.playAllTurns()

	s.True(output.GameOver)
	s.False(output.ResultSaved)
	s.Equal(allFivesTotal, output.FinalTotal)
}

func (s *GameServiceTestSuite) TestFullGame_WithoutResultRepo() {
	svc, err := New(&Config{
		DiceRoller:    s.mockRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Logger:        s.logger,
	})
	s.Require().NoError(err)
	s.gameService = svc

	s.startGame()
	output := s.playAllTurns()

	s.True(output.GameOver)
	s.False(output.ResultSaved)
}

func (s *GameServiceTestSuite) TestQuitGame() {
	s.startGame()
	s.expectRolls(1, 2, 3, 4, 5)
	_, err := s.gameService.RollDice(s.ctx, &RollDiceInput{GameID: s.testGameID})
	s.Require().NoError(err)

	output, err := s.gameService.QuitGame(s.ctx, &QuitGameInput{GameID: s.testGameID})

	s.Require().NoError(err)
	s.Equal(models.GameStatusQuit, output.Game.Status)
	s.Equal(0, output.Game.FinalTotal)
	s.Equal([]int{0, 0, 0, 0, 0}, output.Game.Values())

	_, err = s.gameService.RollDice(s.ctx, &RollDiceInput{GameID: s.testGameID})
	s.ErrorIs(err, ErrGameNotActive)

	_, err = s.gameService.GetFinalTotal(s.ctx, &GetFinalTotalInput{GameID: s.testGameID})
	s.ErrorIs(err, ErrGameNotOver)

	_, err = s.gameService.QuitGame(s.ctx, &QuitGameInput{GameID: s.testGameID})
	s.ErrorIs(err, ErrGameNotActive)
}

func (s *GameServiceTestSuite) TestQuitGame_Errors() {
	_, err := s.gameService.QuitGame(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.gameService.QuitGame(s.ctx, &QuitGameInput{GameID: "unknown"})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *GameServiceTestSuite) TestGetGame_Potential() {
	s.startGame()

	before, err := s.gameService.GetGame(s.ctx, &GetGameInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.Empty(before.Potential)

	s.expectRolls(1, 2, 3, 4, 5)
	_, err = s.gameService.RollDice(s.ctx, &RollDiceInput{GameID: s.testGameID})
	s.Require().NoError(err)

	after, err := s.gameService.GetGame(s.ctx, &GetGameInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.Len(after.Potential, 13)
	s.Equal(scoring.LargeStraightScore, after.Potential[models.CategoryLargeStraight])
	s.Equal(scoring.SmallStraightScore, after.Potential[models.CategorySmallStraight])
	s.Equal(15, after.Potential[models.CategoryChance])
	s.Equal(0, after.Potential[models.CategoryYahtzee])
}

func (s *GameServiceTestSuite) TestGetGame_Errors() {
	_, err := s.gameService.GetGame(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.gameService.GetGame(s.ctx, &GetGameInput{GameID: "unknown"})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *GameServiceTestSuite) TestGetFinalTotal_NotOver() {
	s.startGame()

	output, err := s.gameService.GetFinalTotal(s.ctx, &GetFinalTotalInput{GameID: s.testGameID})

	s.ErrorIs(err, ErrGameNotOver)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestGetHighScores() {
	results := []*models.GameResult{
		{ID: "best", Total: 280},
		{ID: "second", Total: 201},
	}
	s.mockResultRepo.EXPECT().
		GetHighScores(s.ctx, &resultRepo.GetHighScoresInput{Limit: 3}).
		Return(&resultRepo.GetHighScoresOutput{Results: results}, nil)

	output, err := s.gameService.GetHighScores(s.ctx, &GetHighScoresInput{})

	s.Require().NoError(err)
	s.Require().Len(output.Leaderboard.Entries, 2)
	s.Equal(1, output.Leaderboard.Entries[0].Rank)
	s.Equal("best", output.Leaderboard.Entries[0].Result.ID)
	s.Equal(2, output.Leaderboard.Entries[1].Rank)
}

func (s *GameServiceTestSuite) TestGetHighScores_LimitOverride() {
	s.mockResultRepo.EXPECT().
		GetHighScores(s.ctx, &resultRepo.GetHighScoresInput{Limit: 10}).
		Return(&resultRepo.GetHighScoresOutput{}, nil)

	output, err := s.gameService.GetHighScores(s.ctx, &GetHighScoresInput{Limit: 10})

	s.Require().NoError(err)
	s.Empty(output.Leaderboard.Entries)
}

func (s *GameServiceTestSuite) TestGetHighScores_RepoError() {
	s.mockResultRepo.EXPECT().
		GetHighScores(s.ctx, gomock.Any()).
		Return(nil, errors.New("boom"))

	output, err := s.gameService.GetHighScores(s.ctx, nil)

	s.Error(err)
	s.Nil(output)
	s.Contains(err.Error(), "failed to get high scores")
}

func (s *GameServiceTestSuite) TestGetHighScores_WithoutRepo() {
	s.gameService.resultRepo = nil

	output, err := s.gameService.GetHighScores(s.ctx, nil)

	s.Require().NoError(err)
	s.NotNil(output.Leaderboard)
	s.Empty(output.Leaderboard.Entries)
}

func (s *GameServiceTestSuite) TestEndTurnAndAdvance_RequiresScoredTurn() {
	sess, err := newSession(s.testGameID, s.testPlayerName, s.mockRoller, scoring.Standard{}, s.testTime)
	s.Require().NoError(err)

	s.ErrorIs(sess.endTurnAndAdvance(), ErrTurnInProgress)

	s.expectRolls(6, 6, 6, 6, 6)
	s.Require().NoError(sess.turn.Roll())
	s.ErrorIs(sess.endTurnAndAdvance(), ErrTurnInProgress)
	s.Equal(1, sess.turnNumber)
}

func (s *GameServiceTestSuite) TestEndTurnAndAdvance_CompletesWhenScorecardFull() {
	sess, err := newSession(s.testGameID, s.testPlayerName, s.mockRoller, scoring.Standard{}, s.testTime)
	s.Require().NoError(err)

	// Fill all but one category directly
	for _, c := range models.AllCategories() {
		if c == models.CategoryChance {
			continue
		}
		s.Require().NoError(sess.card.Commit(c, 1))
	}

	s.expectRolls(1, 1, 2, 2, 3)
	s.Require().NoError(sess.turn.Roll())
	score, err := sess.turn.SelectCategory(models.CategoryChance)
	s.Require().NoError(err)
	s.Equal(9, score)

	s.Require().NoError(sess.endTurnAndAdvance())

	s.True(sess.isGameOver())
	total, err := sess.finalTotal()
	s.Require().NoError(err)
	s.Equal(12+9, total)
	s.ErrorIs(sess.endTurnAndAdvance(), ErrGameNotActive)
}

func (s *GameServiceTestSuite) TestSessionOwnsItsScorecard() {
	sess, err := newSession(s.testGameID, s.testPlayerName, s.mockRoller, scoring.Standard{}, s.testTime)
	s.Require().NoError(err)

	s.IsType(&scorecard.Scorecard{}, sess.card)
	s.Len(sess.card.Open(), 13)
	s.Equal(models.GameStatusActive, sess.status)
}
