package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kiroween-labs/soul-harvest-vault/internal/config"
	"github.com/kiroween-labs/soul-harvest-vault/internal/db"
	"github.com/kiroween-labs/soul-harvest-vault/internal/db/model"
	"github.com/kiroween-labs/soul-harvest-vault/internal/queue"
	"github.com/kiroween-labs/soul-harvest-vault/internal/rewards"
	"github.com/kiroween-labs/soul-harvest-vault/internal/types"
	"github.com/kiroween-labs/soul-harvest-vault/testutil"
	"github.com/kiroween-labs/soul-harvest-vault/testutil/mocks"
)

const (
	testAssetID       = "soul-token"
	testCharityWallet = "charity-wallet"
	testBoostID       = "reaper-pass"
	// 2024-01-01T00:00:00Z
	testMidnight int64 = 1_704_067_200
)

// ctx passed to the db is wrapped with loggers, so mocks match any context
var anyCtx = mock.Anything

func newTestService(t *testing.T) (*Service, *mocks.DbInterface, *mocks.Publisher) {
	t.Helper()

	dbMock := mocks.NewDbInterface(t)
	publisher := mocks.NewPublisher(t)
	cfg := &config.Config{
		Vault: config.VaultConfig{
			AssetID:           testAssetID,
			BoostCredentialID: testBoostID,
			CharityWallet:     testCharityWallet,
			AssetScale:        100,
			SoulsPerToken:     1,
			BaseAPYBps:        1_000,
		},
		Poller: config.PollerConfig{
			HarvestBatchSize:   2,
			AchievementWorkers: 2,
			RetryAttempts:      3,
			RetryDelay:         time.Millisecond,
		},
	}

	return NewService(cfg, dbMock, publisher), dbMock, publisher
}

func expectTransaction(dbMock *mocks.DbInterface) {
	dbMock.On("WithTransaction", anyCtx, mock.Anything).
		Return(func(ctx context.Context, f func(ctx context.Context) error) error {
			return f(ctx)
		})
}

func notFound(key string) error {
	return &db.NotFoundError{Key: key, Message: key + " not found"}
}

// fixture is a vault with the matching leaderboard entry and global config.
// AssetScale 100 keeps a 1,000,000 tvl in the 8% tier.
type fixture struct {
	vault *model.VaultDocument
	entry *model.LeaderboardEntryDocument
	cfg   *model.VaultConfigDocument
}

func newFixture(t *testing.T, balance uint64, lastAccrual int64) fixture {
	t.Helper()

	owner, err := testutil.RandomAddress()
	require.NoError(t, err)

	vault := model.NewVaultDocument(owner, testAssetID, lastAccrual)
	vault.Balance = balance
	entry := model.NewLeaderboardEntryDocument(owner)
	entry.TVL = balance
	cfg := model.NewVaultConfigDocument("authority", testBoostID, 0, 0, 100)
	cfg.TotalValueLocked = balance

	return fixture{vault: vault, entry: entry, cfg: cfg}
}

func (f fixture) expectLoad(dbMock *mocks.DbInterface) {
	dbMock.On("GetVault", anyCtx, f.vault.Owner, testAssetID).Return(f.vault, nil)
	dbMock.On("GetLeaderboardEntry", anyCtx, f.vault.Owner).Return(f.entry, nil)
	dbMock.On("GetVaultConfig", anyCtx).Return(f.cfg, nil)
}

func (f fixture) expectPersist(dbMock *mocks.DbInterface, balance uint64) {
	dbMock.On("UpdateVault", anyCtx, mock.MatchedBy(func(v *model.VaultDocument) bool {
		return v.ID == f.vault.ID && v.Balance == balance
	})).Return(nil).Once()
	dbMock.On("UpdateLeaderboardEntryTVL", anyCtx, f.vault.Owner, balance).Return(nil).Once()
	dbMock.On("UpdateVaultConfig", anyCtx, mock.MatchedBy(func(c *model.VaultConfigDocument) bool {
		return c.TotalValueLocked == balance
	})).Return(nil).Once()
}

func TestWithdraw(t *testing.T) {
	t.Run("more than the balance", func(t *testing.T) {
		s, dbMock, _ := newTestService(t)
		f := newFixture(t, 500_000, testMidnight)
		expectTransaction(dbMock)
		f.expectLoad(dbMock)

		err := s.Withdraw(t.Context(), f.vault.Owner, testAssetID, 600_000, testMidnight)
		require.ErrorIs(t, err, types.ErrInsufficientBalance)
		assert.Equal(t, uint64(500_000), f.vault.Balance)
		assert.Equal(t, uint64(500_000), f.entry.TVL)
		assert.Equal(t, uint64(500_000), f.cfg.TotalValueLocked)
		dbMock.AssertNotCalled(t, "UpdateVault", anyCtx, mock.Anything)
	})

	t.Run("inactive vault", func(t *testing.T) {
		s, dbMock, publisher := newTestService(t)
		f := newFixture(t, 100, testMidnight)
		f.vault.IsActive = false
		expectTransaction(dbMock)
		f.expectLoad(dbMock)
		f.expectPersist(dbMock, 60)

		rec := model.NewAchievementsDocument(f.vault.Owner, testMidnight)
		dbMock.On("GetAchievements", anyCtx, f.vault.Owner).Return(rec, nil)
		dbMock.On("UpdateAchievements", anyCtx, rec).Return(nil)
		publisher.On("Publish", anyCtx, mock.MatchedBy(func(e *queue.VaultEvent) bool {
			return e.Action == queue.VaultActionWithdraw && e.Amount == 40 && e.Balance == 60
		})).Return(nil)

		now := testMidnight + rewards.SecondsPerDay
		err := s.Withdraw(t.Context(), f.vault.Owner, testAssetID, 40, now)
		require.NoError(t, err)
		assert.Equal(t, now, rec.LastWithdrawalTime)
	})
}

func TestDeposit(t *testing.T) {
	t.Run("zero amount", func(t *testing.T) {
		s, _, _ := newTestService(t)

		err := s.Deposit(t.Context(), "owner", testAssetID, 0, testMidnight)
		require.ErrorIs(t, err, types.ErrInvalidDepositAmount)
	})

	t.Run("credits all three balances", func(t *testing.T) {
		s, dbMock, publisher := newTestService(t)
		f := newFixture(t, 1_000, testMidnight)
		expectTransaction(dbMock)
		f.expectLoad(dbMock)
		f.expectPersist(dbMock, 1_250)
		publisher.On("Publish", anyCtx, mock.AnythingOfType("*queue.VaultEvent")).Return(nil)

		err := s.Deposit(t.Context(), f.vault.Owner, testAssetID, 250, testMidnight)
		require.NoError(t, err)
		assert.Equal(t, f.vault.Balance, f.entry.TVL)
		assert.Equal(t, f.vault.Balance, f.cfg.TotalValueLocked)
	})

	t.Run("publish failure does not fail the deposit", func(t *testing.T) {
		s, dbMock, publisher := newTestService(t)
		f := newFixture(t, 1_000, testMidnight)
		expectTransaction(dbMock)
		f.expectLoad(dbMock)
		f.expectPersist(dbMock, 1_001)
		publisher.On("Publish", anyCtx, mock.Anything).Return(errors.New("channel closed"))

		require.NoError(t, s.Deposit(t.Context(), f.vault.Owner, testAssetID, 1, testMidnight))
	})
}

func TestAccrue(t *testing.T) {
	t.Run("inactive vault", func(t *testing.T) {
		s, dbMock, _ := newTestService(t)
		f := newFixture(t, 1_000_000, testMidnight)
		f.vault.IsActive = false
		expectTransaction(dbMock)
		f.expectLoad(dbMock)

		_, err := s.Accrue(t.Context(), f.vault.Owner, testAssetID, testMidnight+rewards.SecondsPerYear)
		require.ErrorIs(t, err, types.ErrVaultInactive)
	})

	t.Run("same timestamp is a no-op", func(t *testing.T) {
		s, dbMock, _ := newTestService(t)
		f := newFixture(t, 1_000_000, testMidnight)
		expectTransaction(dbMock)
		f.expectLoad(dbMock)

		res, err := s.Accrue(t.Context(), f.vault.Owner, testAssetID, testMidnight)
		require.NoError(t, err)
		assert.Equal(t, &AccrueResult{}, res)
		assert.Equal(t, uint64(1_000_000), f.vault.Balance)
	})

	t.Run("one year boosted at 8%", func(t *testing.T) {
		s, dbMock, publisher := newTestService(t)
		f := newFixture(t, 1_000_000, testMidnight)
		expectTransaction(dbMock)
		f.expectLoad(dbMock)
		f.expectPersist(dbMock, 1_160_000)
		dbMock.On("GetBoostHolding", anyCtx, f.vault.Owner).
			Return(&model.BoostHoldingDocument{Owner: f.vault.Owner, CredentialID: testBoostID, Amount: 1}, nil)

		rec := model.NewAchievementsDocument(f.vault.Owner, testMidnight)
		dbMock.On("GetAchievements", anyCtx, f.vault.Owner).Return(rec, nil)
		dbMock.On("UpdateAchievements", anyCtx, rec).Return(nil)
		publisher.On("Publish", anyCtx, mock.MatchedBy(func(e *queue.VaultEvent) bool {
			return e.Action == queue.VaultActionAccrue && e.Amount == 160_000
		})).Return(nil)

		now := testMidnight + rewards.SecondsPerYear
		res, err := s.Accrue(t.Context(), f.vault.Owner, testAssetID, now)
		require.NoError(t, err)
		assert.Equal(t, &AccrueResult{
			Reward:       160_000,
			SoulsEarned:  160_000,
			RateBps:      rewards.TierModerateAPYBps,
			BoostApplied: true,
		}, res)
		assert.Equal(t, uint64(160_000), f.vault.TotalSoulsHarvested)
		assert.Equal(t, now, f.vault.LastAccrualTime)
		assert.Equal(t, uint64(1), rec.TotalCompounds)
		assert.Equal(t, uint64(160_000), rec.HighestCompound)
	})

	t.Run("counterfeit boost credential", func(t *testing.T) {
		s, dbMock, _ := newTestService(t)
		f := newFixture(t, 1_000_000, testMidnight)
		expectTransaction(dbMock)
		f.expectLoad(dbMock)
		dbMock.On("GetBoostHolding", anyCtx, f.vault.Owner).
			Return(&model.BoostHoldingDocument{Owner: f.vault.Owner, CredentialID: "counterfeit", Amount: 1}, nil)

		_, err := s.Accrue(t.Context(), f.vault.Owner, testAssetID, testMidnight+rewards.SecondsPerDay)
		require.ErrorIs(t, err, types.ErrInvalidMint)
		assert.Equal(t, uint64(1_000_000), f.vault.Balance)
	})
}

func TestHarvestWithTax(t *testing.T) {
	t.Run("splits gross reward", func(t *testing.T) {
		s, dbMock, publisher := newTestService(t)
		f := newFixture(t, 1_000_000, testMidnight)
		expectTransaction(dbMock)
		f.expectLoad(dbMock)
		f.expectPersist(dbMock, 1_137_600)
		dbMock.On("GetBoostHolding", anyCtx, f.vault.Owner).
			Return(&model.BoostHoldingDocument{Owner: f.vault.Owner, CredentialID: testBoostID, Amount: 3}, nil)

		rec := model.NewAchievementsDocument(f.vault.Owner, testMidnight)
		dbMock.On("GetAchievements", anyCtx, f.vault.Owner).Return(rec, nil)
		dbMock.On("UpdateAchievements", anyCtx, rec).Return(nil)
		publisher.On("Publish", anyCtx, mock.MatchedBy(func(e *queue.HarvestEvent) bool {
			return e.Rewards == 160_000 && e.NetReward == 137_600
		})).Return(nil)

		var transfers []CharityTransfer
		transfer := func(_ context.Context, tr CharityTransfer) error {
			transfers = append(transfers, tr)
			return nil
		}

		now := testMidnight + rewards.SecondsPerYear
		res, err := s.HarvestWithTax(t.Context(), f.vault.Owner, testAssetID, now, transfer)
		require.NoError(t, err)
		assert.Equal(t, &HarvestResult{
			Rewards:       160_000,
			SoulTax:       20_800,
			CharityAmount: 1_600,
			NetReward:     137_600,
			SoulsEarned:   160_000,
		}, res)

		require.Len(t, transfers, 1)
		assert.Equal(t, CharityTransfer{
			From:      f.vault.ID,
			To:        testCharityWallet,
			Amount:    1_600,
			Timestamp: now,
		}, transfers[0])

		assert.Equal(t, uint64(20_800), f.cfg.TotalSoulTax)
		assert.Equal(t, uint64(1_600), f.cfg.TotalCharity)
		assert.Equal(t, uint32(1), rec.MidnightHarvestCount)
		assert.Equal(t, uint64(1_600), rec.TotalCharityDonated)
	})

	t.Run("inactive vault", func(t *testing.T) {
		s, dbMock, _ := newTestService(t)
		f := newFixture(t, 1_000_000, testMidnight)
		f.vault.IsActive = false
		expectTransaction(dbMock)
		f.expectLoad(dbMock)

		transferred := false
		transfer := func(context.Context, CharityTransfer) error {
			transferred = true
			return nil
		}

		res, err := s.HarvestWithTax(t.Context(), f.vault.Owner, testAssetID, testMidnight+rewards.SecondsPerYear, transfer)
		require.ErrorIs(t, err, types.ErrVaultInactive)
		assert.Nil(t, res)
		assert.False(t, transferred)
		assert.Equal(t, uint64(1_000_000), f.vault.Balance)
		assert.Zero(t, f.cfg.TotalSoulTax)
		dbMock.AssertNotCalled(t, "UpdateVault", anyCtx, mock.Anything)
		dbMock.AssertNotCalled(t, "SaveTransfer", anyCtx, mock.Anything)
	})

	t.Run("same timestamp is a no-op", func(t *testing.T) {
		s, dbMock, _ := newTestService(t)
		f := newFixture(t, 1_000_000, testMidnight)
		expectTransaction(dbMock)
		f.expectLoad(dbMock)

		for _, now := range []int64{testMidnight, testMidnight - 1} {
			res, err := s.HarvestWithTax(t.Context(), f.vault.Owner, testAssetID, now, nil)
			require.NoError(t, err)
			assert.Equal(t, &HarvestResult{}, res)
		}

		assert.Equal(t, uint64(1_000_000), f.vault.Balance)
		assert.Equal(t, testMidnight, f.vault.LastAccrualTime)
		assert.Zero(t, f.cfg.TotalCharity)
		dbMock.AssertNotCalled(t, "UpdateVault", anyCtx, mock.Anything)
		dbMock.AssertNotCalled(t, "SaveTransfer", anyCtx, mock.Anything)
		dbMock.AssertNotCalled(t, "GetBoostHolding", anyCtx, mock.Anything)
	})

	t.Run("failed charity transfer aborts", func(t *testing.T) {
		s, dbMock, _ := newTestService(t)
		f := newFixture(t, 1_000_000, testMidnight)
		expectTransaction(dbMock)
		f.expectLoad(dbMock)
		dbMock.On("GetBoostHolding", anyCtx, f.vault.Owner).Return(nil, notFound(f.vault.Owner))

		transfer := func(context.Context, CharityTransfer) error {
			return errors.New("charity wallet frozen")
		}

		_, err := s.HarvestWithTax(t.Context(), f.vault.Owner, testAssetID, testMidnight+rewards.SecondsPerYear, transfer)
		require.ErrorContains(t, err, "charity wallet frozen")
		dbMock.AssertNotCalled(t, "UpdateVault", anyCtx, mock.Anything)
	})

	t.Run("default transfer is recorded", func(t *testing.T) {
		s, dbMock, publisher := newTestService(t)
		f := newFixture(t, 1_000_000, testMidnight)
		expectTransaction(dbMock)
		f.expectLoad(dbMock)
		f.expectPersist(dbMock, 1_068_800)
		dbMock.On("GetBoostHolding", anyCtx, f.vault.Owner).Return(nil, notFound(f.vault.Owner))
		dbMock.On("GetAchievements", anyCtx, f.vault.Owner).Return(nil, notFound(f.vault.Owner))
		dbMock.On("SaveTransfer", anyCtx, mock.MatchedBy(func(tr *model.TransferDocument) bool {
			return tr.Kind == model.TransferKindCharity && tr.Amount == 800 && tr.To == testCharityWallet
		})).Return(nil)
		publisher.On("Publish", anyCtx, mock.AnythingOfType("*queue.HarvestEvent")).Return(nil)

		res, err := s.HarvestWithTax(t.Context(), f.vault.Owner, testAssetID, testMidnight+rewards.SecondsPerYear, nil)
		require.NoError(t, err)
		assert.Equal(t, uint64(80_000), res.Rewards)
		assert.Equal(t, uint64(800), res.CharityAmount)
	})
}

func TestCreateVault(t *testing.T) {
	owner, err := testutil.RandomAddress()
	require.NoError(t, err)

	t.Run("zero deposit", func(t *testing.T) {
		s, _, _ := newTestService(t)

		_, err := s.CreateVault(t.Context(), owner, testAssetID, 0, testMidnight)
		require.ErrorIs(t, err, types.ErrInvalidDepositAmount)
	})

	t.Run("invalid owner", func(t *testing.T) {
		s, _, _ := newTestService(t)

		_, err := s.CreateVault(t.Context(), "not-base58-0OIl", testAssetID, 10, testMidnight)
		require.Error(t, err)
	})

	t.Run("first depositor", func(t *testing.T) {
		s, dbMock, publisher := newTestService(t)
		cfg := model.NewVaultConfigDocument("authority", testBoostID, 0, 0, 100)
		expectTransaction(dbMock)
		dbMock.On("GetVaultConfig", anyCtx).Return(cfg, nil)
		dbMock.On("SaveNewLeaderboardEntry", anyCtx, &model.LeaderboardEntryDocument{Owner: owner, TVL: 5_000}).Return(nil)
		dbMock.On("SaveNewVault", anyCtx, mock.MatchedBy(func(v *model.VaultDocument) bool {
			return v.Owner == owner && v.Balance == 5_000 && v.IsActive && v.LastAccrualTime == testMidnight
		})).Return(nil)
		dbMock.On("UpdateVaultConfig", anyCtx, cfg).Return(nil)
		dbMock.On("GetAchievements", anyCtx, owner).Return(nil, notFound(owner))
		dbMock.On("SaveNewAchievements", anyCtx, mock.MatchedBy(func(rec *model.AchievementsDocument) bool {
			return rec.Owner == owner && rec.DepositorOrdinal == 1 && rec.FirstDepositTime == testMidnight
		})).Return(nil)
		publisher.On("Publish", anyCtx, mock.AnythingOfType("*queue.VaultEvent")).Return(nil)

		vault, err := s.CreateVault(t.Context(), owner, testAssetID, 5_000, testMidnight)
		require.NoError(t, err)
		assert.Equal(t, uint64(5_000), vault.Balance)
		assert.Equal(t, uint64(5_000), cfg.TotalValueLocked)
		assert.Equal(t, uint64(1), cfg.TotalDepositors)
	})

	t.Run("second vault for the same owner", func(t *testing.T) {
		s, dbMock, _ := newTestService(t)
		cfg := model.NewVaultConfigDocument("authority", testBoostID, 0, 0, 100)
		expectTransaction(dbMock)
		dbMock.On("GetVaultConfig", anyCtx).Return(cfg, nil)
		dbMock.On("SaveNewLeaderboardEntry", anyCtx, mock.Anything).
			Return(&db.DuplicateKeyError{Key: owner, Message: "leaderboard entry already exists"})

		_, err := s.CreateVault(t.Context(), owner, testAssetID, 5_000, testMidnight)
		require.True(t, db.IsDuplicateKeyError(err))
	})
}

func TestClose(t *testing.T) {
	t.Run("non-zero balance", func(t *testing.T) {
		s, dbMock, _ := newTestService(t)
		f := newFixture(t, 1, testMidnight)
		expectTransaction(dbMock)
		dbMock.On("GetVault", anyCtx, f.vault.Owner, testAssetID).Return(f.vault, nil)

		err := s.Close(t.Context(), f.vault.Owner, testAssetID, testMidnight)
		require.ErrorIs(t, err, types.ErrNonZeroBalance)
	})

	t.Run("empty vault", func(t *testing.T) {
		s, dbMock, publisher := newTestService(t)
		f := newFixture(t, 0, testMidnight)
		expectTransaction(dbMock)
		dbMock.On("GetVault", anyCtx, f.vault.Owner, testAssetID).Return(f.vault, nil)
		dbMock.On("DeleteVault", anyCtx, f.vault.Owner, testAssetID).Return(nil)
		dbMock.On("DeleteLeaderboardEntry", anyCtx, f.vault.Owner).Return(nil)
		publisher.On("Publish", anyCtx, mock.MatchedBy(func(e *queue.VaultEvent) bool {
			return e.Action == queue.VaultActionClosed
		})).Return(nil)

		require.NoError(t, s.Close(t.Context(), f.vault.Owner, testAssetID, testMidnight))
	})
}

func TestCheckAchievements(t *testing.T) {
	s, dbMock, publisher := newTestService(t)
	f := newFixture(t, 1_000, testMidnight)
	rec := model.NewAchievementsDocument(f.vault.Owner, testMidnight)

	expectTransaction(dbMock)
	dbMock.On("GetVault", anyCtx, f.vault.Owner, testAssetID).Return(f.vault, nil)
	dbMock.On("GetVaultConfig", anyCtx).Return(f.cfg, nil)
	dbMock.On("GetAchievements", anyCtx, f.vault.Owner).Return(rec, nil)
	dbMock.On("GetBoostHolding", anyCtx, f.vault.Owner).Return(nil, notFound(f.vault.Owner))
	dbMock.On("UpdateAchievements", anyCtx, rec).Return(nil).Once()
	publisher.On("Publish", anyCtx, mock.AnythingOfType("*queue.AchievementEvent")).Return(nil).Once()

	now := testMidnight + 12*rewards.SecondsPerHour
	res, err := s.CheckAchievements(t.Context(), f.vault.Owner, testAssetID, now)
	require.NoError(t, err)
	assert.Equal(t, []string{
		types.AchievementFirstBlood.String(),
		types.AchievementSoulStarter.String(),
	}, res.NewlyUnlocked)
	assert.Equal(t, uint32(30), res.PointsEarned)
	assert.Equal(t, types.RankGhost.String(), res.RankName)

	t.Run("second pass unlocks nothing", func(t *testing.T) {
		again, err := s.CheckAchievements(t.Context(), f.vault.Owner, testAssetID, now)
		require.NoError(t, err)
		assert.Empty(t, again.NewlyUnlocked)
		assert.Zero(t, again.PointsEarned)
		assert.Equal(t, uint32(30), again.TotalPoints)
	})
}

func TestRankLeaderboard(t *testing.T) {
	s, dbMock, _ := newTestService(t)
	dbMock.On("GetAllLeaderboardEntries", anyCtx).Return([]model.LeaderboardEntryDocument{
		{Owner: "a", TVL: 300},
		{Owner: "b", TVL: 100},
		{Owner: "c", TVL: 300},
	}, nil)
	dbMock.On("UpdateLeaderboardRanks", anyCtx, map[string]uint32{"a": 0, "c": 1, "b": 2}).Return(nil)

	ranked, err := s.RankLeaderboard(t.Context())
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, "b", ranked[2].Owner)
}

func TestAdmin(t *testing.T) {
	authority, err := testutil.RandomAddress()
	require.NoError(t, err)
	recipient, err := testutil.RandomAddress()
	require.NoError(t, err)

	t.Run("initialize", func(t *testing.T) {
		s, dbMock, _ := newTestService(t)
		dbMock.On("SaveVaultConfig", anyCtx, mock.MatchedBy(func(c *model.VaultConfigDocument) bool {
			return c.Authority == authority &&
				c.BoostMultiplierBps == model.DefaultBoostMultiplierBps &&
				c.MaxSupply == model.ReaperMaxSupply &&
				c.AssetScale == 100
		})).Return(nil)

		cfg, err := s.Initialize(t.Context(), authority, testBoostID, 1_000, 1)
		require.NoError(t, err)
		assert.Equal(t, uint16(1_000), cfg.BaseAPYBps)
	})

	t.Run("update rates requires the authority", func(t *testing.T) {
		s, dbMock, _ := newTestService(t)
		expectTransaction(dbMock)
		dbMock.On("GetVaultConfig", anyCtx).Return(model.NewVaultConfigDocument(authority, testBoostID, 0, 0, 0), nil)

		err := s.UpdateRates(t.Context(), recipient, 30_000, 2)
		require.ErrorIs(t, err, types.ErrUnauthorized)
	})

	t.Run("update rates", func(t *testing.T) {
		s, dbMock, _ := newTestService(t)
		cfg := model.NewVaultConfigDocument(authority, testBoostID, 0, 0, 0)
		expectTransaction(dbMock)
		dbMock.On("GetVaultConfig", anyCtx).Return(cfg, nil)
		dbMock.On("UpdateVaultConfig", anyCtx, cfg).Return(nil)

		require.NoError(t, s.UpdateRates(t.Context(), authority, 30_000, 2))
		assert.Equal(t, uint16(30_000), cfg.BoostMultiplierBps)
		assert.Equal(t, uint64(2), cfg.SoulsPerToken)
	})

	t.Run("reserve boost credential", func(t *testing.T) {
		s, dbMock, _ := newTestService(t)
		cfg := model.NewVaultConfigDocument(authority, testBoostID, 0, 0, 0)
		cfg.ReaperSupply = model.ReaperMaxSupply - 1
		expectTransaction(dbMock)
		dbMock.On("GetVaultConfig", anyCtx).Return(cfg, nil)
		dbMock.On("UpdateVaultConfig", anyCtx, cfg).Return(nil).Once()
		dbMock.On("IncrementBoostHolding", anyCtx, recipient, testBoostID, testMidnight).Return(nil).Once()

		supply, err := s.ReserveBoostCredential(t.Context(), authority, recipient, testMidnight)
		require.NoError(t, err)
		assert.Equal(t, model.ReaperMaxSupply, supply)

		_, err = s.ReserveBoostCredential(t.Context(), authority, recipient, testMidnight)
		require.ErrorIs(t, err, types.ErrSupplyExhausted)
		assert.Equal(t, model.ReaperMaxSupply, cfg.ReaperSupply)
	})
}
