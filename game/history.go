package game

import "github.com/oathompsonjones/MiniGames/board"

type HistoryEntry struct {
	Move      board.Move
	Player    int
	ElapsedMs float64
	IsAi      bool

	// Depth is the search depth a CPU used for this move; zero for humans
	// and the random tier.
	Depth int
}

// MoveHistory is a push-only log of applied moves, kept for display and
// post-game review. The board's own move stack handles undo.
type MoveHistory struct {
	entries []HistoryEntry
}

func (h *MoveHistory) Clear() {
	h.entries = nil
}

func (h *MoveHistory) Push(entry HistoryEntry) {
	h.entries = append(h.entries, entry)
}

func (h MoveHistory) Size() int {
	return len(h.entries)
}

func (h MoveHistory) All() []HistoryEntry {
	return append([]HistoryEntry(nil), h.entries...)
}
