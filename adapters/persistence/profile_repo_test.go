package persistence

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/profile-directory/internal/domain/profile"
	"github.com/khoahotran/profile-directory/pkg/apperror"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

type ProfileRepoTestSuite struct {
	suite.Suite
	repo  profile.Repository
	clock time.Time
}

func TestProfileRepo(t *testing.T) {
	suite.Run(t, new(ProfileRepoTestSuite))
}

func (s *ProfileRepoTestSuite) now() time.Time { return s.clock }

func (s *ProfileRepoTestSuite) SetupTest() {
	s.clock = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	seed := []*profile.Profile{
		{ID: 1, Name: "Ava", Age: 25, Location: "Paris", Services: []string{"Dinner"}},
		{ID: 5, Name: "Cleo", Age: 31, Location: "Nice", IsPremium: true},
	}
	s.repo = NewMemoryProfileRepo(seed, logger.NewNop(), WithClock(s.now))
}

func (s *ProfileRepoTestSuite) Test_Seed_StampsTimestampsAndNormalizes() {
	got, err := s.repo.FindByID(context.Background(), 5)
	s.Require().NoError(err)
	s.Equal(s.clock, got.CreatedAt)
	s.Equal(s.clock, got.UpdatedAt)
	s.NotNil(got.Services)
	s.NotNil(got.Images)
}

func (s *ProfileRepoTestSuite) Test_Create_AllocatesAboveMaxSeedID() {
	ctx := context.Background()
	s.clock = s.clock.Add(time.Hour)

	created, err := s.repo.Create(ctx, &profile.Profile{ID: 99, Name: "Bo", Age: 30, Location: "Lyon"})
	s.Require().NoError(err)
	s.Equal(6, created.ID)
	s.Equal(s.clock, created.CreatedAt)
	s.Equal(s.clock, created.UpdatedAt)

	all, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Len(all, 3)
	s.Equal(6, all[2].ID)
}

func (s *ProfileRepoTestSuite) Test_Create_NeverReusesDeletedIDs() {
	ctx := context.Background()
	first, err := s.repo.Create(ctx, &profile.Profile{Name: "Bo", Age: 30, Location: "Lyon"})
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Delete(ctx, first.ID))

	second, err := s.repo.Create(ctx, &profile.Profile{Name: "Di", Age: 40, Location: "Rome"})
	s.Require().NoError(err)
	s.Greater(second.ID, first.ID)
}

func (s *ProfileRepoTestSuite) Test_Create_OnEmptyStoreStartsAtOne() {
	repo := NewMemoryProfileRepo(nil, logger.NewNop())
	created, err := repo.Create(context.Background(), &profile.Profile{Name: "Bo", Age: 30, Location: "Lyon"})
	s.Require().NoError(err)
	s.Equal(1, created.ID)
}

func (s *ProfileRepoTestSuite) Test_Update_KeepsIDAndRefreshesUpdatedAt() {
	ctx := context.Background()
	s.clock = s.clock.Add(time.Minute)

	updated, err := s.repo.Update(ctx, 1, func(p *profile.Profile) {
		p.ID = 42
		p.Location = "Lyon"
	})
	s.Require().NoError(err)
	s.Equal(1, updated.ID)
	s.Equal("Lyon", updated.Location)
	s.Equal(s.clock, updated.UpdatedAt)
	s.True(updated.CreatedAt.Before(updated.UpdatedAt))

	_, err = s.repo.FindByID(ctx, 42)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *ProfileRepoTestSuite) Test_Update_Missing() {
	_, err := s.repo.Update(context.Background(), 404, func(*profile.Profile) {})
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *ProfileRepoTestSuite) Test_Delete_RemovesExactlyOnePreservingOrder() {
	ctx := context.Background()
	_, err := s.repo.Create(ctx, &profile.Profile{Name: "Bo", Age: 30, Location: "Lyon"})
	s.Require().NoError(err)

	s.Require().NoError(s.repo.Delete(ctx, 5))
	s.ErrorIs(s.repo.Delete(ctx, 5), apperror.ErrNotFound)

	all, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(1, all[0].ID)
	s.Equal(6, all[1].ID)
}

func (s *ProfileRepoTestSuite) Test_ReturnedValuesAreCopies() {
	ctx := context.Background()
	got, err := s.repo.FindByID(ctx, 1)
	s.Require().NoError(err)
	got.Name = "Mutated"
	got.Services[0] = "Mutated"

	again, err := s.repo.FindByID(ctx, 1)
	s.Require().NoError(err)
	s.Equal("Ava", again.Name)
	s.Equal("Dinner", again.Services[0])
}

func (s *ProfileRepoTestSuite) Test_Search() {
	premium := true
	got, err := s.repo.Search(context.Background(), profile.SearchFilter{IsPremium: &premium})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("Cleo", got[0].Name)

	none, err := s.repo.Search(context.Background(), profile.SearchFilter{Query: "nobody"})
	s.Require().NoError(err)
	s.NotNil(none)
	s.Empty(none)
}

func (s *ProfileRepoTestSuite) Test_Search_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.repo.Search(ctx, profile.SearchFilter{})
	s.ErrorIs(err, apperror.ErrInternal)
}

func (s *ProfileRepoTestSuite) Test_ConcurrentCreatesGetDistinctIDs() {
	repo := NewMemoryProfileRepo(nil, logger.NewNop())
	const n = 50

	var wg sync.WaitGroup
	ids := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := repo.Create(context.Background(), &profile.Profile{Name: "X", Age: 20, Location: "Y"})
			if err == nil {
				ids <- p.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		s.False(seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	s.Len(seen, n)
}

func (s *ProfileRepoTestSuite) Test_Seed_DuplicateIDKeepsFirst() {
	repo := NewMemoryProfileRepo([]*profile.Profile{
		{ID: 3, Name: "Ava", Age: 25, Location: "Paris"},
		{ID: 3, Name: "Bo", Age: 30, Location: "Lyon"},
		{Name: "Cleo", Age: 31, Location: "Nice"},
	}, logger.NewNop())

	all, err := repo.List(context.Background())
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal("Ava", all[0].Name)
	s.Equal(4, all[1].ID)
}
