package dicesession_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	dicesession "github.com/KirkDiggler/rpg-sheet/internal/repositories/dice_session"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

type DiceSessionTestSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	clock *clock.Fixed
	repo  dicesession.Repository
	ctx   context.Context
}

func TestDiceSessionSuite(t *testing.T) {
	suite.Run(t, new(DiceSessionTestSuite))
}

func (s *DiceSessionTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisServer(s.T())
	s.mr = mr
	s.clock = clock.NewFixed(time.Date(2026, time.May, 2, 20, 0, 0, 0, time.UTC))
	repo, err := dicesession.NewRedisRepository(&dicesession.Config{Client: client, Clock: s.clock})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *DiceSessionTestSuite) TestConfigValidation() {
	_, err := dicesession.NewRedisRepository(&dicesession.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *DiceSessionTestSuite) TestAppendCreatesThenExtends() {
	first, err := s.repo.Append(s.ctx, dicesession.AppendInput{
		CharacterID: "psalm",
		Context:     "round_1",
		Rolls:       []dicesession.DiceRoll{{RollID: "roll_1", Notation: "1d8+3", Dice: []int{5}, Modifier: 3, Total: 8}},
	})
	s.Require().NoError(err)
	s.Len(first.Session.Rolls, 1)
	s.Equal(s.clock.Now().Add(15*time.Minute), first.Session.ExpiresAt)
	s.Equal(15*time.Minute, s.mr.TTL("sheet:dice:psalm:round_1"))

	s.clock.Advance(5 * time.Minute)
	second, err := s.repo.Append(s.ctx, dicesession.AppendInput{
		CharacterID: "psalm",
		Context:     "round_1",
		Rolls:       []dicesession.DiceRoll{{RollID: "roll_2", Notation: "2d6", Dice: []int{1, 6}, Total: 7}},
	})
	s.Require().NoError(err)
	s.Len(second.Session.Rolls, 2)
	s.True(first.Session.ExpiresAt.Equal(second.Session.ExpiresAt), "append keeps the original expiry")
	s.Equal(10*time.Minute, s.mr.TTL("sheet:dice:psalm:round_1"))
}

func (s *DiceSessionTestSuite) TestExpiredSessionIsNotFound() {
	_, err := s.repo.Append(s.ctx, dicesession.AppendInput{CharacterID: "ash", Context: "attack", TTL: time.Minute})
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Minute)
	_, err = s.repo.Get(s.ctx, dicesession.GetInput{CharacterID: "ash", Context: "attack"})
	s.True(errors.IsNotFound(err))
	s.False(s.mr.Exists("sheet:dice:ash:attack"))
}

func (s *DiceSessionTestSuite) TestDeleteCountsRolls() {
	_, err := s.repo.Append(s.ctx, dicesession.AppendInput{
		CharacterID: "ash",
		Context:     "attack",
		Rolls:       []dicesession.DiceRoll{{RollID: "a"}, {RollID: "b"}},
	})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, dicesession.DeleteInput{CharacterID: "ash", Context: "attack"})
	s.Require().NoError(err)
	s.Equal(2, out.RollsDeleted)

	out, err = s.repo.Delete(s.ctx, dicesession.DeleteInput{CharacterID: "ash", Context: "attack"})
	s.Require().NoError(err)
	s.Zero(out.RollsDeleted)
}

func (s *DiceSessionTestSuite) TestRequiresKey() {
	_, err := s.repo.Get(s.ctx, dicesession.GetInput{Context: "attack"})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.repo.Append(s.ctx, dicesession.AppendInput{CharacterID: "ash"})
	s.True(errors.IsInvalidArgument(err))
}
