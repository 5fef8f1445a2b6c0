package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/oathompsonjones/MiniGames/board"
	"github.com/oathompsonjones/MiniGames/game"
)

type StatusResponse struct {
	Variant    string            `json:"variant"`
	BoardW     int               `json:"board_width"`
	BoardH     int               `json:"board_height"`
	Board      [][]int           `json:"board"`
	NextPlayer int               `json:"next_player"`
	Winner     int               `json:"winner"`
	Status     string            `json:"status"`
	MoveCount  int               `json:"move_count"`
	History    []historyEntryDTO `json:"history"`
	Message    string            `json:"message"`
}

type historyEntryDTO struct {
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Player    int     `json:"player"`
	ElapsedMs float64 `json:"elapsed_ms"`
	IsAi      bool    `json:"is_ai"`
	Depth     int     `json:"depth"`
}

type moveRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type resetRequest struct {
	Variant     string `json:"variant"`
	Difficulty  string `json:"difficulty"`
	HumanPlayer int    `json:"human_player"`
}

type hintResponse struct {
	X     int     `json:"x"`
	Y     int     `json:"y"`
	Score float64 `json:"score"`
}

func main() {
	controller, err := game.NewController(game.DefaultSettings())
	if err != nil {
		log.Fatalf("[backend] controller init failed: %v", err)
	}
	hub := NewHub()

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go hub.Run(sigCtx.Done())

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/status", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, controllerStatus(controller))
	})

	r.Post("/api/move", func(w http.ResponseWriter, req *http.Request) {
		var body moveRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		ok, reason := controller.ApplyHumanMove(board.Move{X: body.X, Y: body.Y})
		if !ok {
			http.Error(w, reason, http.StatusConflict)
			return
		}
		// Let any CPU turns run before reporting back.
		controller.Play()
		status := controllerStatus(controller)
		hub.BroadcastStatus(status)
		writeJSON(w, status)
	})

	r.Post("/api/reset", func(w http.ResponseWriter, req *http.Request) {
		var body resetRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		settings, err := settingsFromRequest(body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := controller.Reset(settings); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		// A CPU first player moves immediately.
		controller.Play()
		status := controllerStatus(controller)
		hub.BroadcastStatus(status)
		writeJSON(w, status)
	})

	r.Get("/api/hint", func(w http.ResponseWriter, req *http.Request) {
		result := controller.FindOptimalMove()
		writeJSON(w, hintResponse{X: result.Move.X, Y: result.Move.Y, Score: result.Score})
	})

	r.Get("/api/config", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, game.GetConfig())
	})

	r.Post("/api/config", func(w http.ResponseWriter, req *http.Request) {
		var config game.Config
		if err := json.NewDecoder(req.Body).Decode(&config); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		game.SetConfig(config)
		writeJSON(w, game.GetConfig())
	})

	r.Get("/ws", func(w http.ResponseWriter, req *http.Request) {
		serveWS(hub, controller, w, req)
	})

	server := &http.Server{Addr: ":8080", Handler: r}
	serverErr := make(chan error, 1)
	go func() {
		log.Println("[backend] listening on :8080")
		serverErr <- server.ListenAndServe()
	}()

	var runErr error
	select {
	case <-sigCtx.Done():
		log.Printf("[backend] shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("[backend] graceful shutdown failed: %v", err)
			if closeErr := server.Close(); closeErr != nil {
				log.Printf("[backend] forced close failed: %v", closeErr)
			}
		}
		<-serverErr
	case runErr = <-serverErr:
	}
	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		log.Printf("[backend] exiting after server error: %v", runErr)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[backend] response encode failed: %v", err)
	}
}

func controllerStatus(controller *game.Controller) StatusResponse {
	state := controller.State()
	settings := controller.Settings()
	return StatusResponse{
		Variant:    settings.Variant,
		BoardW:     state.Board.Width(),
		BoardH:     state.Board.Height(),
		Board:      boardToGrid(state.Board),
		NextPlayer: state.ToMove,
		Winner:     state.Winner,
		Status:     state.Status.String(),
		MoveCount:  state.MoveCount,
		History:    historyToDTO(controller.History()),
		Message:    state.LastMessage,
	}
}

func boardToGrid(b *board.Board) [][]int {
	grid := make([][]int, b.Height())
	for y := range grid {
		grid[y] = make([]int, b.Width())
		for x := range grid[y] {
			owner, occupied := b.Occupier(board.Move{X: x, Y: y})
			if !occupied {
				owner = board.NoPlayer
			}
			grid[y][x] = owner
		}
	}
	return grid
}

func historyToDTO(history game.MoveHistory) []historyEntryDTO {
	entries := history.All()
	out := make([]historyEntryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, historyEntryDTO{
			X:         entry.Move.X,
			Y:         entry.Move.Y,
			Player:    entry.Player,
			ElapsedMs: entry.ElapsedMs,
			IsAi:      entry.IsAi,
			Depth:     entry.Depth,
		})
	}
	return out
}

func settingsFromRequest(body resetRequest) (game.Settings, error) {
	settings := game.DefaultSettings()
	if body.Variant != "" {
		settings.Variant = body.Variant
	}
	if body.Difficulty != "" {
		difficulty, err := game.ParseDifficulty(body.Difficulty)
		if err != nil {
			return game.Settings{}, err
		}
		settings.Difficulty = difficulty
	}
	if body.HumanPlayer == 1 {
		settings.Player0Type = game.PlayerCPU
		settings.Player1Type = game.PlayerHuman
	}
	return settings, nil
}
