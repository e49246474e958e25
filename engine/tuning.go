package engine

// Mode selects one of the suite's game variants. Both variants run on the
// same engine; a mode is a tuning preset plus its own high-score bucket.
type Mode string

const (
	// ModeDash is the lane-runner variant: obstacle-heavy, jump dodges matter.
	ModeDash Mode = "dash"
	// ModeRiver is the collector variant: faster spawns, mostly collectibles.
	ModeRiver Mode = "river"
)

// Tuning holds every gameplay constant the engine reads. The defaults were
// tuned by hand against real players; treat them as behavior, not suggestions.
// All fields are exposed so a config file can override them.
type Tuning struct {
	Lanes   int `yaml:"lanes"`
	PoolCap int `yaml:"pool_cap"`

	// Depth model. Depth runs 0 (spawned, far) to PassedDepth (behind the
	// player). PerFrameScale converts the speed multiplier into depth per tick.
	PerFrameScale float64 `yaml:"per_frame_scale"`
	PassedDepth   float64 `yaml:"passed_depth"`

	// Collision band: objects are judged only while BandLow <= depth < BandHigh.
	BandLow  float64 `yaml:"band_low"`
	BandHigh float64 `yaml:"band_high"`

	// LaneSpread is the lateral distance between adjacent lane centers at the
	// player plane.
	LaneSpread float64 `yaml:"lane_spread"`
	// HorizonPinch is how far lanes converge toward the center at depth 0.
	HorizonPinch float64 `yaml:"horizon_pinch"`

	// ObjectHalfWidth is the collision half-width of a size-1.0 object.
	ObjectHalfWidth float64 `yaml:"object_half_width"`

	JumpDurationMs float64 `yaml:"jump_duration_ms"`
	// Jump progress must lie strictly inside (JumpWindowLow, JumpWindowHigh)
	// for an obstacle overlap to count as a dodge.
	JumpWindowLow  float64 `yaml:"jump_window_low"`
	JumpWindowHigh float64 `yaml:"jump_window_high"`

	InvincibleMs float64 `yaml:"invincible_ms"`
	LivesMax     int     `yaml:"lives_max"`

	StartSpeed float64 `yaml:"start_speed"`
	SpeedStep  float64 `yaml:"speed_step"`
	SpeedCap   float64 `yaml:"speed_cap"`

	StartSpawnMs float64 `yaml:"start_spawn_ms"`
	SpawnStepMs  float64 `yaml:"spawn_step_ms"`
	SpawnFloorMs float64 `yaml:"spawn_floor_ms"`

	StartObstacleProb float64 `yaml:"start_obstacle_prob"`
	ObstacleProbStep  float64 `yaml:"obstacle_prob_step"`
	ObstacleProbCap   float64 `yaml:"obstacle_prob_cap"`

	// StarChance is the odds a collectible spawn is a star instead of a coin.
	StarChance float64 `yaml:"star_chance"`

	LevelThreshold int `yaml:"level_threshold"`
	CoinScore      int `yaml:"coin_score"`
	StarScore      int `yaml:"star_score"`

	ParticleCap int `yaml:"particle_cap"`
	BurstSize   int `yaml:"burst_size"`
}

// DashTuning returns the default tuning for ModeDash.
func DashTuning() Tuning {
	return Tuning{
		Lanes:             3,
		PoolCap:           24,
		PerFrameScale:     0.004,
		PassedDepth:       1.0,
		BandLow:           0.80,
		BandHigh:          0.96,
		LaneSpread:        0.28,
		HorizonPinch:      0.15,
		ObjectHalfWidth:   0.09,
		JumpDurationMs:    800,
		JumpWindowLow:     0.25,
		JumpWindowHigh:    0.75,
		InvincibleMs:      1500,
		LivesMax:          3,
		StartSpeed:        1.0,
		SpeedStep:         0.25,
		SpeedCap:          3.0,
		StartSpawnMs:      1200,
		SpawnStepMs:       100,
		SpawnFloorMs:      400,
		StartObstacleProb: 0.35,
		ObstacleProbStep:  0.05,
		ObstacleProbCap:   0.65,
		StarChance:        0.25,
		LevelThreshold:    500,
		CoinScore:         10,
		StarScore:         25,
		ParticleCap:       256,
		BurstSize:         12,
	}
}

// RiverTuning returns the default tuning for ModeRiver. Spawns come faster
// and skew toward collectibles, but there are fewer lives to lose.
func RiverTuning() Tuning {
	t := DashTuning()
	t.StartSpawnMs = 900
	t.SpawnFloorMs = 350
	t.StartObstacleProb = 0.20
	t.ObstacleProbCap = 0.45
	t.StarChance = 0.35
	t.LivesMax = 2
	t.StartSpeed = 1.2
	return t
}

// TuningFor returns the default tuning for a mode.
func TuningFor(mode Mode) Tuning {
	if mode == ModeRiver {
		return RiverTuning()
	}
	return DashTuning()
}
