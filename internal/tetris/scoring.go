package tetris

import (
	"math"
	"time"
)

// Scoring constants.
const (
	SoftDropPoints = 1  // Per successful soft-drop row
	HardDropPoints = 2  // Per row travelled by a hard drop
	LinesPerLevel  = 10 // Lines needed to advance one level
)

// lineClearPoints is indexed by the number of rows removed in one lock,
// and is multiplied by the level in effect when the rows were removed.
var lineClearPoints = [...]int{0, 100, 300, 500, 800}

// Default gravity timing.
const (
	DefaultBaseFallInterval = 1000 * time.Millisecond
	DefaultMinFallInterval  = 50 * time.Millisecond
)

// LineClearScore returns the points for clearing n rows at once at the given level.
func LineClearScore(n, level int) int {
	if n <= 0 || n >= len(lineClearPoints) {
		return 0
	}
	return lineClearPoints[n] * level
}

// LevelForLines returns the level reached after clearing the given total of lines.
func LevelForLines(lines int) int {
	return lines/LinesPerLevel + 1
}

// FallInterval returns base/sqrt(level), rounded to the millisecond and
// never shorter than floor.
func FallInterval(level int, base, floor time.Duration) time.Duration {
	level = max(level, 1)
	ms := math.Round(float64(base.Milliseconds()) / math.Sqrt(float64(level)))
	interval := time.Duration(ms) * time.Millisecond
	return max(interval, floor)
}

// Progress tracks score, cleared lines, level and the derived fall interval.
// Score and lines only ever grow.
type Progress struct {
	score        int
	lines        int
	level        int
	fallInterval time.Duration

	baseInterval time.Duration
	minInterval  time.Duration
}

// NewProgress starts at level 1 with the given gravity timing.
// Non-positive durations fall back to the defaults.
func NewProgress(base, floor time.Duration) Progress {
	if base <= 0 {
		base = DefaultBaseFallInterval
	}
	if floor <= 0 {
		floor = DefaultMinFallInterval
	}
	p := Progress{
		level:        1,
		baseInterval: base,
		minInterval:  floor,
	}
	p.fallInterval = FallInterval(p.level, base, floor)
	return p
}

// Score returns the accumulated score.
func (p *Progress) Score() int { return p.score }

// Lines returns the total number of cleared lines.
func (p *Progress) Lines() int { return p.lines }

// Level returns the current level.
func (p *Progress) Level() int { return p.level }

// FallInterval returns the time between gravity steps at the current level.
func (p *Progress) FallInterval() time.Duration { return p.fallInterval }

// AddDropPoints awards points for rows travelled by soft or hard drops.
func (p *Progress) AddDropPoints(points int) {
	if points > 0 {
		p.score += points
	}
}

// ApplyClear scores a lock event that removed n rows, using the level in
// effect before the clear, then recomputes the level and fall interval.
// Returns the points awarded and whether the level changed.
func (p *Progress) ApplyClear(n int) (points int, levelUp bool) {
	if n <= 0 {
		return 0, false
	}
	points = LineClearScore(n, p.level)
	p.score += points
	p.lines += n

	level := LevelForLines(p.lines)
	if level != p.level {
		p.level = level
		p.fallInterval = FallInterval(level, p.baseInterval, p.minInterval)
		levelUp = true
	}
	return points, levelUp
}
