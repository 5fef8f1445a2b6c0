package game

import (
	"sync"
	"testing"
)

func TestConfigStoreConcurrentAccess(t *testing.T) {
	store := &ConfigStore{config: DefaultConfig()}
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(depth int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				config := store.Get()
				config.CPUDepthHard = depth
				store.Set(config)
				store.Get()
			}
		}(g + 1)
	}
	wg.Wait()
	if got := store.Get().CPUDepthHard; got < 1 || got > 8 {
		t.Fatalf("config store corrupted: CPUDepthHard = %d", got)
	}
}

func TestDepthOverride(t *testing.T) {
	config := Config{CPUDepthMedium: 2, CPUDepthHard: 7}
	if got := config.depthOverride(DifficultyMedium); got != 2 {
		t.Fatalf("medium override = %d, want 2", got)
	}
	if got := config.depthOverride(DifficultyHard); got != 7 {
		t.Fatalf("hard override = %d, want 7", got)
	}
	if got := config.depthOverride(DifficultyEasy); got != 0 {
		t.Fatalf("easy override = %d, want 0", got)
	}
}

func TestCPUPlayerDepthFollowsConfig(t *testing.T) {
	defer SetConfig(DefaultConfig())

	variant := TicTacToe()
	cpu := NewCPUPlayer(DifficultyHard, variant)
	if cpu.depth != variant.HardDepth {
		t.Fatalf("hard depth = %d, want variant default %d", cpu.depth, variant.HardDepth)
	}

	config := DefaultConfig()
	config.CPUDepthHard = 3
	SetConfig(config)
	cpu = NewCPUPlayer(DifficultyHard, variant)
	if cpu.depth != 3 {
		t.Fatalf("hard depth = %d, want override 3", cpu.depth)
	}
}
