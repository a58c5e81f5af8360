package server

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"minichess/game"
	"minichess/player"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrIllegalMove  = errors.New("illegal move")
	ErrGameOver     = errors.New("game over")
)

// Session is one human-versus-AI game. All mutation of the position goes
// through the session, under its lock; the AI only ever simulates on clones.
type Session struct {
	ID string

	mu          sync.Mutex
	position    *game.Position
	humanColor  game.Color
	ai          *player.Greedy
	moves       int
	finished    bool
	subscribers map[int]func()
	nextSub     int
}

// GameManager tracks live sessions by ID.
type GameManager struct {
	mu    sync.RWMutex
	games map[string]*Session
}

func NewGameManager() *GameManager {
	return &GameManager{games: make(map[string]*Session)}
}

// CreateGame starts a session with the human playing humanColor. When the
// human plays Black the AI makes its first move before the session is
// published.
func (gm *GameManager) CreateGame(humanColor game.Color) *Session {
	s := &Session{
		ID:          uuid.New().String(),
		position:    game.NewPosition(),
		humanColor:  humanColor,
		ai:          player.NewGreedy(humanColor.Other()),
		subscribers: make(map[int]func()),
	}
	if humanColor == game.Black {
		s.playAIMove()
	}

	gm.mu.Lock()
	gm.games[s.ID] = s
	gm.mu.Unlock()
	return s
}

// Get returns the session with the given ID.
func (gm *GameManager) Get(id string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	s, ok := gm.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return s, nil
}

// State returns a snapshot of the session.
func (s *Session) State() stateDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	dto := stateDTO{
		ID:       s.ID,
		ToMove:   s.position.ToMove().String(),
		Human:    s.humanColor.String(),
		Moves:    s.moves,
		Material: s.position.Material(),
		Finished: s.finished,
	}
	for r := 0; r < game.Rows; r++ {
		for c := 0; c < game.Cols; c++ {
			dto.Board[r][c] = toPieceDTO(s.position.Get(game.Square{Row: r, Col: c}))
		}
	}
	return dto
}

// LegalDestinations returns the generated moves starting at from, for the
// side to move. The UI uses this to draw destination hints for a selected
// square.
func (s *Session) LegalDestinations(from game.Square) []moveDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []moveDTO
	for _, mv := range game.GenerateMoves(s.position, s.position.ToMove()) {
		if mv.Start == from {
			out = append(out, toMoveDTO(mv))
		}
	}
	return out
}

// Subscribe registers fn to run every time the game advances, whichever
// surface the move arrived on, and returns a cancel func. fn is called
// outside the session lock, so it may read State.
func (s *Session) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// notify runs the subscriber callbacks. The caller must not hold the session
// lock.
func (s *Session) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// PlayMove applies the human's move when it matches a generated move, then
// lets the AI reply. It returns the applied moves in order, the human's
// first. Subscribers are notified once the exchange is complete.
func (s *Session) PlayMove(dto moveDTO) ([]moveDTO, error) {
	s.mu.Lock()
	applied, err := s.playMoveLocked(dto)
	s.mu.Unlock()

	if err == nil {
		s.notify()
	}
	return applied, err
}

func (s *Session) playMoveLocked(dto moveDTO) ([]moveDTO, error) {
	if s.finished {
		return nil, ErrGameOver
	}
	if s.position.ToMove() != s.humanColor {
		return nil, ErrNotYourTurn
	}

	var chosen *game.Move
	for _, mv := range game.GenerateMoves(s.position, s.humanColor) {
		if mv.Start == dto.From.square() && mv.End == dto.To.square() {
			m := mv
			chosen = &m
			break
		}
	}
	if chosen == nil {
		return nil, ErrIllegalMove
	}

	s.position.Apply(*chosen)
	s.moves++
	applied := []moveDTO{toMoveDTO(*chosen)}

	if reply := s.playAIMove(); reply != nil {
		applied = append(applied, toMoveDTO(*reply))
	}
	if !s.finished && len(game.GenerateMoves(s.position, s.position.ToMove())) == 0 {
		s.finished = true
	}
	return applied, nil
}

// playAIMove asks the AI for a move and applies it. The caller must hold the
// session lock or have sole ownership of the session.
func (s *Session) playAIMove() *game.Move {
	mv := s.ai.ChooseMove(s.position)
	if mv == nil {
		s.finished = true
		return nil
	}
	s.position.Apply(*mv)
	s.moves++
	return mv
}
