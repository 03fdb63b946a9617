package match

// ApplyPoint computes the next score state for a single set. It is pure:
// given the same inputs it always returns the same outputs, and it never
// touches storage. Deciding what happens after a set completes (advancing,
// ending the match) is the lifecycle service's job, not this function's.
//
// Rules:
//   - a completed set is immutable through this path;
//   - increment is unbounded above, decrement floors at 0;
//   - with deuce enabled a set completes when the leader has reached
//     maxPoints with a lead of at least 2 (no sudden-death cap);
//   - without deuce the set completes as soon as either player reaches
//     maxPoints, whatever the margin.
func ApplyPoint(p1, p2 int, completed bool, player int, action ScoreAction, maxPoints int, deuceEnabled bool) (int, int, bool, error) {
	if completed {
		return p1, p2, completed, ErrSetCompleted
	}
	if player != 1 && player != 2 {
		return p1, p2, completed, ErrInvalidPlayer
	}

	switch action {
	case ActionIncrement:
		if player == 1 {
			p1++
		} else {
			p2++
		}
	case ActionDecrement:
		if player == 1 && p1 > 0 {
			p1--
		} else if player == 2 && p2 > 0 {
			p2--
		}
	default:
		return p1, p2, completed, ErrInvalidAction
	}

	done := false
	if deuceEnabled {
		if (p1 >= maxPoints && p1-p2 >= 2) || (p2 >= maxPoints && p2-p1 >= 2) {
			done = true
		}
	} else {
		if p1 >= maxPoints || p2 >= maxPoints {
			done = true
		}
	}

	return p1, p2, done, nil
}
