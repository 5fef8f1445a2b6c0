package game

import "sync"

// Config tunes CPU behavior at runtime. Depth overrides of zero fall back
// to the per-variant defaults.
type Config struct {
	CPUDepthMedium int  `json:"cpu_depth_medium"`
	CPUDepthHard   int  `json:"cpu_depth_hard"`
	ParallelRoot   bool `json:"parallel_root"`
	LogSearchStats bool `json:"log_search_stats"`
}

func DefaultConfig() Config {
	return Config{
		CPUDepthMedium: 0,
		CPUDepthHard:   0,
		ParallelRoot:   false,
		LogSearchStats: false,
	}
}

func (c Config) depthOverride(difficulty Difficulty) int {
	switch difficulty {
	case DifficultyMedium:
		return c.CPUDepthMedium
	case DifficultyHard:
		return c.CPUDepthHard
	default:
		return 0
	}
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func (s *ConfigStore) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

func (s *ConfigStore) Set(config Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = config
}

var sharedConfig = ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return sharedConfig.Get()
}

func SetConfig(config Config) {
	sharedConfig.Set(config)
}
