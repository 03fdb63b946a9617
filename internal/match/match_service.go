package match

import (
	"fmt"
	"time"
)

// MatchService owns the match lifecycle: creation with its score rows,
// the scheduled -> live -> completed transitions, set advancement, and
// point recording. Every multi-row effect runs inside a transaction so a
// persistence failure leaves the match exactly as it was.
type MatchService struct {
	repo MatchRepository
}

// NewMatchService creates a new MatchService
func NewMatchService(repo MatchRepository) *MatchService {
	return &MatchService{repo: repo}
}

// Create persists the match together with TotalSets zeroed, uncompleted
// score rows in a single transaction.
func (s *MatchService) Create(m *Match) error {
	if m.MaxPoints < 1 {
		m.MaxPoints = 21
	}
	if m.TotalSets < 1 {
		m.TotalSets = 3
	}
	m.Status = StatusScheduled
	m.CurrentSet = 1
	m.ShuttlesUsed = 0

	return s.repo.WithTransaction(func(tx MatchRepository) error {
		if err := tx.CreateMatch(m); err != nil {
			return fmt.Errorf("failed to create match: %w", err)
		}
		for i := 1; i <= m.TotalSets; i++ {
			score := Score{MatchID: m.ID, SetNumber: i}
			if err := tx.CreateScore(&score); err != nil {
				return fmt.Errorf("failed to create score for set %d: %w", i, err)
			}
		}
		return nil
	})
}

// Get returns a match with its score rows.
func (s *MatchService) Get(id uint) (*Match, error) {
	m, err := s.repo.GetMatchByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMatchNotFound
	}
	return m, nil
}

// List returns matches matching the query.
func (s *MatchService) List(q MatchListQuery) ([]Match, error) {
	return s.repo.GetMatches(q)
}

// Start transitions a scheduled match to live and stamps its start time.
func (s *MatchService) Start(id uint) (*Match, error) {
	m, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if m.Status != StatusScheduled {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	err = s.repo.UpdateMatchFields(id, map[string]interface{}{
		"status":      StatusLive,
		"current_set": 1,
		"start_time":  now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start match: %w", err)
	}

	m.Status = StatusLive
	m.CurrentSet = 1
	m.StartTime = &now
	return m, nil
}

// RecordPoint applies one increment or decrement to the given player's
// score in the match's current set. The read-modify-write runs inside a
// transaction with the score row locked, so two concurrent calls are both
// reflected rather than clobbering each other.
func (s *MatchService) RecordPoint(id uint, setNumber, player int, action ScoreAction) (*Score, error) {
	if player != 1 && player != 2 {
		return nil, ErrInvalidPlayer
	}
	if action != ActionIncrement && action != ActionDecrement {
		return nil, ErrInvalidAction
	}

	var out *Score
	err := s.repo.WithTransaction(func(tx MatchRepository) error {
		m, err := tx.GetMatchByID(id)
		if err != nil {
			return err
		}
		if m == nil {
			return ErrMatchNotFound
		}
		if m.Status != StatusLive {
			return ErrInvalidTransition
		}
		if setNumber != m.CurrentSet {
			return ErrSetNotCurrent
		}

		score, err := tx.GetScoreForUpdate(id, setNumber)
		if err != nil {
			return err
		}
		if score == nil {
			return ErrScoreNotFound
		}

		p1, p2, completed, err := ApplyPoint(
			score.Player1Score, score.Player2Score, score.Completed,
			player, action, m.MaxPoints, m.DeuceEnabled,
		)
		if err != nil {
			return err
		}

		score.Player1Score = p1
		score.Player2Score = p2
		score.Completed = completed
		if err := tx.UpdateScore(score); err != nil {
			return fmt.Errorf("failed to update score: %w", err)
		}
		out = score
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AdvanceSet moves a live match to its next set. It deliberately does not
// require the current set to be completed: officials may need to bump the
// set count to recover from scoring mishaps.
func (s *MatchService) AdvanceSet(id uint) (*Match, error) {
	m, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if m.Status != StatusLive {
		return nil, ErrInvalidTransition
	}
	if m.CurrentSet >= m.TotalSets {
		return nil, ErrFinalSetReached
	}

	next := m.CurrentSet + 1
	if err := s.repo.UpdateMatchFields(id, map[string]interface{}{"current_set": next}); err != nil {
		return nil, fmt.Errorf("failed to advance set: %w", err)
	}
	m.CurrentSet = next
	return m, nil
}

// End completes a live match: it force-marks the current set's score row
// as completed with whatever scores it holds, even if no win condition was
// met (the administrative override for prematurely stopped matches), then
// stamps the end time and stores the truncated duration. All three effects
// commit together or not at all; on failure the match stays live and
// unmodified.
func (s *MatchService) End(id uint) (*Match, error) {
	m, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if m.Status != StatusLive {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	duration := ""
	if m.StartTime != nil {
		duration = formatDuration(now.Sub(*m.StartTime))
	}

	err = s.repo.WithTransaction(func(tx MatchRepository) error {
		score, err := tx.GetScoreForUpdate(id, m.CurrentSet)
		if err != nil {
			return err
		}
		if score != nil {
			score.Completed = true
			if err := tx.UpdateScore(score); err != nil {
				return fmt.Errorf("failed to finalize current set: %w", err)
			}
		}
		return tx.UpdateMatchFields(id, map[string]interface{}{
			"status":   StatusCompleted,
			"end_time": now,
			"duration": duration,
		})
	})
	if err != nil {
		return nil, err
	}

	m.Status = StatusCompleted
	m.EndTime = &now
	m.Duration = duration
	return m, nil
}

// Delete removes a match and all of its score rows together.
func (s *MatchService) Delete(id uint) error {
	m, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.repo.WithTransaction(func(tx MatchRepository) error {
		if err := tx.DeleteScores(m.ID); err != nil {
			return fmt.Errorf("failed to delete scores: %w", err)
		}
		if err := tx.DeleteMatch(m.ID); err != nil {
			return fmt.Errorf("failed to delete match: %w", err)
		}
		return nil
	})
}

// formatDuration renders a wall-clock delta as whole hours and whole
// minutes, truncating fractional seconds. Exports rely on this exact
// format, so no rounding.
func formatDuration(d time.Duration) string {
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
