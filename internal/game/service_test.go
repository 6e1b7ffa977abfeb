package game

import (
	"context"
	mrand "math/rand"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/lakeview-games/fishbot/internal/economy"
	"github.com/lakeview-games/fishbot/internal/fish"
	"github.com/lakeview-games/fishbot/internal/logger"
	"github.com/lakeview-games/fishbot/internal/store"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type ServiceSuite struct {
	suite.Suite
	store   *store.SQLiteStore
	tables  *economy.Tables
	table   *fish.Table
	clock   *fakeClock
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	st, err := store.OpenSQLite(filepath.Join(s.T().TempDir(), "fishing.db"))
	s.Require().NoError(err)
	s.store = st

	s.tables = economy.DefaultTables()
	s.table = fish.Default()
	s.clock = &fakeClock{now: time.Unix(1_700_000_000, 0)}

	resolver := economy.NewResolver(s.tables, s.table, mrand.New(mrand.NewSource(1)))
	s.service = New(s.store, s.tables, s.table, resolver, s.clock, logger.Nop(), "block-123")
}

func (s *ServiceSuite) TearDownTest() {
	_ = s.store.Close()
}

func (s *ServiceSuite) initPlayer(id int64) *InitResponse {
	resp, err := s.service.Init(context.Background(), InitRequest{TelegramID: id})
	s.Require().NoError(err)
	return resp
}

func (s *ServiceSuite) TestInitNewPlayer() {
	resp, err := s.service.Init(context.Background(), InitRequest{
		TelegramID: 42,
		FirstName:  "Ann",
	})
	s.Require().NoError(err)

	s.EqualValues(economy.StartingBalance, resp.Balance)
	s.Equal(100, resp.Energy)
	s.Equal(1, resp.RodLevel)
	s.Equal(0, resp.BoatLevel)
	s.Equal(economy.StartingBaitCommon, resp.BaitCommon)
	s.Equal(0, resp.BaitRare)
	s.Require().NotNil(resp.RodPrice)
	s.EqualValues(500, *resp.RodPrice)
	s.Require().NotNil(resp.BoatPrice)
	s.EqualValues(2000, *resp.BoatPrice)
	s.EqualValues(0, resp.OfflineEarned)
	s.Equal("block-123", resp.AdsgramID)
}

func (s *ServiceSuite) TestInitIsIdempotentAndUpdatesNames() {
	s.initPlayer(42)

	resp, err := s.service.Init(context.Background(), InitRequest{
		TelegramID: 42,
		Username:   "angler42",
	})
	s.Require().NoError(err)
	s.EqualValues(economy.StartingBalance, resp.Balance)

	p, err := s.store.GetPlayer(context.Background(), 42)
	s.Require().NoError(err)
	s.Equal("angler42", p.Username)
}

func (s *ServiceSuite) TestInitCreditsOfflineProgress() {
	s.initPlayer(42)

	// hand the player a boat, then come back six hours later
	p, err := s.store.GetPlayer(context.Background(), 42)
	s.Require().NoError(err)
	p.BoatLevel = 1
	s.Require().NoError(s.store.Commit(context.Background(), p, nil))

	s.clock.Advance(6 * time.Hour)
	resp := s.initPlayer(42)

	// level 1: two-hour capacity at 2/s
	s.EqualValues(2*3600*2, resp.OfflineEarned)
	s.EqualValues(economy.StartingBalance+2*3600*2, resp.Balance)
}

func (s *ServiceSuite) TestFishCooldownScenario() {
	s.initPlayer(42)
	s.clock.Advance(time.Hour)

	first, err := s.service.Fish(context.Background(), 42)
	s.Require().NoError(err)
	s.Contains([]string{"miss", "caught"}, first.Status)

	s.clock.Advance(100 * time.Millisecond)
	second, err := s.service.Fish(context.Background(), 42)
	s.Require().NoError(err)

	s.Equal("cooldown", second.Status)
	s.Equal(first.Balance, second.Balance)
	s.Equal(first.Energy, second.Energy)
	s.Equal(first.BaitCommon, second.BaitCommon)
}

func (s *ServiceSuite) TestFishCaughtPersistsRecord() {
	s.initPlayer(42)

	var caught *FishResponse
	for i := 0; i < 400 && caught == nil; i++ {
		s.clock.Advance(time.Second)
		resp, err := s.service.Fish(context.Background(), 42)
		s.Require().NoError(err)
		if resp.Status == "caught" {
			caught = resp
		}
	}
	s.Require().NotNil(caught, "no catch in 400 casts")

	s.NotEmpty(caught.FishID)
	s.NotEmpty(caught.Rarity)

	rows, err := s.store.Leaderboard(context.Background(), store.MetricBalance, time.Time{})
	s.Require().NoError(err)
	s.Require().NotEmpty(rows)
}

func (s *ServiceSuite) TestFishUnknownPlayer() {
	_, err := s.service.Fish(context.Background(), 999)
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *ServiceSuite) TestUpgradeFlow() {
	s.initPlayer(42)

	// 200 starting coins cannot buy the level-2 rod
	resp, err := s.service.Upgrade(context.Background(), 42, "rod")
	s.Require().NoError(err)
	s.False(resp.Success)
	s.EqualValues(economy.StartingBalance, resp.Balance)
	s.Equal(1, resp.RodLevel)

	// an ad reward pays for it
	ad, err := s.service.AdReward(context.Background(), 42)
	s.Require().NoError(err)
	s.True(ad.Success)

	resp, err = s.service.Upgrade(context.Background(), 42, "rod")
	s.Require().NoError(err)
	s.True(resp.Success)
	s.Equal(2, resp.RodLevel)
	s.Require().NotNil(resp.RodPrice)
	s.EqualValues(1500, *resp.RodPrice)
}

func (s *ServiceSuite) TestUpgradeUnknownItem() {
	s.initPlayer(42)

	resp, err := s.service.Upgrade(context.Background(), 42, "submarine")
	s.Require().NoError(err)
	s.False(resp.Success)
	s.EqualValues(economy.StartingBalance, resp.Balance)
}

func (s *ServiceSuite) TestAdReward() {
	s.initPlayer(42)

	resp, err := s.service.AdReward(context.Background(), 42)
	s.Require().NoError(err)

	s.True(resp.Success)
	s.EqualValues(economy.BaseAdReward+economy.AdRewardPerRodLevel, resp.Reward)
	s.EqualValues(economy.StartingBalance+resp.Reward, resp.Balance)
	s.Equal(100, resp.Energy)
}

func (s *ServiceSuite) TestAdRewardUnknownPlayer() {
	resp, err := s.service.AdReward(context.Background(), 999)
	s.Require().NoError(err)
	s.False(resp.Success)
}

func (s *ServiceSuite) TestLeaderboardEmpty() {
	resp := s.service.Leaderboard(context.Background(), "balance", "all")
	s.Empty(resp.Leaderboard)
	s.Zero(resp.Total)
}

func (s *ServiceSuite) TestLeaderboardNamesAndTotals() {
	_, err := s.service.Init(context.Background(), InitRequest{TelegramID: 1, FirstName: "Ann", LastName: "Brook"})
	s.Require().NoError(err)
	_, err = s.service.Init(context.Background(), InitRequest{TelegramID: 2, Username: "bo_the_angler"})
	s.Require().NoError(err)
	s.initPlayer(3)

	now := s.clock.Now()
	seed := []fish.Catch{
		{UserID: 1, FishID: "carp", Weight: 2.5, Reward: 100, CaughtAt: now},
		{UserID: 2, FishID: "tuna", Weight: 50, Reward: 600, CaughtAt: now},
		{UserID: 3, FishID: "minnow", Weight: 0.1, Reward: 10, CaughtAt: now},
	}
	for i := range seed {
		p, err := s.store.GetPlayer(context.Background(), seed[i].UserID)
		s.Require().NoError(err)
		s.Require().NoError(s.store.Commit(context.Background(), p, &seed[i]))
	}

	resp := s.service.Leaderboard(context.Background(), "balance", "all")
	s.Equal(3, resp.Total)
	s.Require().Len(resp.Leaderboard, 3)
	s.Equal("bo_the_angler", resp.Leaderboard[0].Username)
	s.Equal("Ann Brook", resp.Leaderboard[1].Username)
	s.Equal("Fisher", resp.Leaderboard[2].Username)
	s.EqualValues(600, resp.Leaderboard[0].Value)
}

func (s *ServiceSuite) TestLeaderboardDegradesOnStorageFailure() {
	s.initPlayer(42)
	s.Require().NoError(s.store.Close())

	resp := s.service.Leaderboard(context.Background(), "balance", "all")
	s.Empty(resp.Leaderboard)
	s.Zero(resp.Total)
}

// Concurrent duplicate requests for one identifier must not lose
// updates to the balance.
func (s *ServiceSuite) TestConcurrentAdRewardsLoseNoUpdates() {
	s.initPlayer(42)

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := s.service.AdReward(context.Background(), 42)
			s.NoError(err)
		}()
	}
	wg.Wait()

	p, err := s.store.GetPlayer(context.Background(), 42)
	s.Require().NoError(err)
	perAd := s.tables.AdReward(1)
	s.EqualValues(economy.StartingBalance+int64(n)*perAd, p.Balance)
}

// Distinct players are only serialized per key, so their casts run in
// parallel and share the engine's random source.
func (s *ServiceSuite) TestConcurrentFishDistinctPlayers() {
	ids := []int64{1, 2, 3, 4}
	for _, id := range ids {
		s.initPlayer(id)
	}
	s.clock.Advance(time.Hour)

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			resp, err := s.service.Fish(context.Background(), id)
			if s.NoError(err) {
				s.Contains([]string{"miss", "caught"}, resp.Status)
			}
		}(id)
	}
	wg.Wait()
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		row  store.LeaderboardRow
		want string
	}{
		{store.LeaderboardRow{FirstName: "Ann", LastName: "Brook", Username: "ab"}, "Ann Brook"},
		{store.LeaderboardRow{FirstName: "Ann"}, "Ann"},
		{store.LeaderboardRow{Username: "ab"}, "ab"},
		{store.LeaderboardRow{}, "Fisher"},
	}
	for _, c := range cases {
		if got := displayName(c.row); got != c.want {
			t.Errorf("displayName(%+v) = %q, want %q", c.row, got, c.want)
		}
	}
}
