package puzzle

// baseScore maps the number of lines cleared in one move to its base point
// value. Simultaneous multi-line clears are worth far more per line than
// repeated singles; eight-plus lines share the top entry.
var baseScore = [...]int{0, 10, 30, 60, 100, 150, 210, 280, 360}

const (
	// missAllowance is how many consecutive non-clearing moves are tolerated
	// before the combo decays. Once the combo has reached shieldCombo the
	// allowance widens to shieldAllowance.
	missAllowance   = 3
	shieldCombo     = 10
	shieldAllowance = 5

	allClearBonus = 300
)

// Progress is the session-scoped scoring state of one player.
type Progress struct {
	Score      int `json:"score"`
	Combo      int `json:"combo"`
	MissStreak int `json:"-"`
}

// MoveScore breaks down the points awarded for a single placement.
type MoveScore struct {
	Placed     int `json:"placed"`
	LineCount  int `json:"lineCount"`
	ClearScore int `json:"clearScore"`
	AllClear   int `json:"allClear"`
	Total      int `json:"total"`
	Combo      int `json:"combo"`
}

// Record applies the scoring rules for one placement: placed cells always
// count; a clearing move grows the combo by lineCount and awards
// base x combo (after the increment), plus the all-clear bonus when the
// board ended up fully empty; a non-clearing move advances the miss streak
// and eventually resets the combo.
func (p *Progress) Record(placed, lineCount int, boardEmpty bool) MoveScore {
	ms := MoveScore{Placed: placed, LineCount: lineCount}
	if lineCount > 0 {
		p.Combo += lineCount
		p.MissStreak = 0
		idx := lineCount
		if idx >= len(baseScore) {
			idx = len(baseScore) - 1
		}
		ms.ClearScore = baseScore[idx] * p.Combo
		if boardEmpty {
			ms.AllClear = allClearBonus
		}
	} else {
		p.MissStreak++
		allowance := missAllowance
		if p.Combo >= shieldCombo {
			allowance = shieldAllowance
		}
		if p.MissStreak > allowance {
			p.Combo = 0
			p.MissStreak = 0
		}
	}
	ms.Combo = p.Combo
	ms.Total = ms.Placed + ms.ClearScore + ms.AllClear
	p.Score += ms.Total
	return ms
}
