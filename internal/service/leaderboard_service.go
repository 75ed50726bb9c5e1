package service

import (
	"fmt"
	"sort"

	"github.com/ndthang/quizhub/internal/dto"
	"github.com/ndthang/quizhub/internal/repository"
	"github.com/rs/zerolog/log"
)

// visibleBandSize is how many top entries the leaderboard shows. The
// requesting user is appended below the band when ranked outside it.
const visibleBandSize = 10

type LeaderboardService interface {
	// Build aggregates the full attempt history into ranked standings and
	// returns the visible band, always surfacing the requesting user.
	Build(requestingUserID uint) ([]dto.LeaderboardEntryDTO, error)
}

type leaderboardService struct {
	attemptRepo repository.AttemptRepository
	userRepo    repository.UserRepository
}

func NewLeaderboardService(attemptRepo repository.AttemptRepository, userRepo repository.UserRepository) LeaderboardService {
	return &leaderboardService{attemptRepo: attemptRepo, userRepo: userRepo}
}

func (s *leaderboardService) Build(requestingUserID uint) ([]dto.LeaderboardEntryDTO, error) {
	attempts, err := s.attemptRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Leaderboard: failed to fetch attempts")
		return nil, fmt.Errorf("error fetching attempts: %w", err)
	}

	totals := make(map[uint]int)
	for _, attempt := range attempts {
		totals[attempt.UserID] += attempt.Score
	}
	if len(totals) == 0 {
		return []dto.LeaderboardEntryDTO{}, nil
	}

	userIDs := make([]uint, 0, len(totals))
	for id := range totals {
		userIDs = append(userIDs, id)
	}
	users, err := s.userRepo.FindByIDs(userIDs)
	if err != nil {
		log.Error().Err(err).Msg("Leaderboard: failed to fetch users")
		return nil, fmt.Errorf("error fetching users: %w", err)
	}

	type standing struct {
		userID     uint
		name       string
		email      string
		totalScore int
	}
	standings := make([]standing, 0, len(users))
	for _, user := range users {
		standings = append(standings, standing{
			userID:     user.ID,
			name:       user.Name,
			email:      user.Email,
			totalScore: totals[user.ID],
		})
	}

	// Highest total first; equal totals rank by ascending user ID so the
	// order is deterministic.
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].totalScore != standings[j].totalScore {
			return standings[i].totalScore > standings[j].totalScore
		}
		return standings[i].userID < standings[j].userID
	})

	result := make([]dto.LeaderboardEntryDTO, 0, visibleBandSize+1)
	requesterRank := 0
	var requesterEntry dto.LeaderboardEntryDTO

	for i, st := range standings {
		entry := dto.LeaderboardEntryDTO{
			Rank:       i + 1,
			Name:       st.name,
			Email:      st.email,
			TotalScore: st.totalScore,
		}
		if st.userID == requestingUserID {
			requesterRank = entry.Rank
			requesterEntry = entry
		}
		if i < visibleBandSize {
			result = append(result, entry)
		}
	}

	// A requester with attempts but ranked below the band rides along as an
	// extra row carrying their true rank. A requester with no attempts has
	// no standing and is simply absent.
	if requesterRank > visibleBandSize {
		result = append(result, requesterEntry)
	}

	return result, nil
}
