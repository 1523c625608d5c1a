package room

import (
	"sync"
	"time"

	"gridplay/internal/game/othello"
	"gridplay/internal/game/puzzle"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Store is the injectable room registry. Mutations are serialized by the
// manager; the store only has to be safe for concurrent map access.
type Store interface {
	GetRoom(id string) (*Room, bool)
	SaveRoom(r *Room)
	DeleteRoom(id string)
	Rooms() []*Room
}

// Manager owns every Room and is the single writer of their state. Each
// operation runs to completion under the room's lock, so a move is never
// partially visible; operations on different rooms do not block each other.
type Manager struct {
	mu        sync.Mutex // guards room creation and eviction
	store     Store
	hub       Broadcaster
	logger    *zap.Logger
	newDealer func() puzzle.Dealer
}

func NewManager(s Store, logger *zap.Logger, newDealer func() puzzle.Dealer) *Manager {
	if newDealer == nil {
		newDealer = func() puzzle.Dealer { return puzzle.NewRandomDealer(0) }
	}
	return &Manager{store: s, logger: logger, newDealer: newDealer}
}

// SetHub wires the transport in after construction (the hub itself needs the
// manager to dispatch client events).
func (m *Manager) SetHub(hub Broadcaster) {
	m.hub = hub
}

// createOrGet returns the room for id, lazily creating it with kind and the
// fixed starting configuration on first sight. A kind mismatch on an existing
// room is an error and mutates nothing.
func (m *Manager) createOrGet(id string, kind Kind) (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.store.GetRoom(id); ok {
		if r.Kind != kind {
			return nil, ErrWrongKind
		}
		return r, nil
	}
	now := time.Now()
	r := &Room{
		ID:        id,
		Kind:      kind,
		Status:    StatusWaiting,
		CreatedAt: now,
		UpdatedAt: now,
	}
	switch kind {
	case KindOthello:
		r.Othello = &OthelloState{Board: othello.NewBoard(), Turn: othello.Black}
	case KindPuzzle:
		r.Puzzle = &PuzzleState{
			Board:    puzzle.NewBoard(puzzle.DuelSize),
			Turn:     SeatBlack,
			Hands:    map[SeatColor]*puzzle.Hand{},
			Progress: map[SeatColor]*puzzle.Progress{},
			Dealer:   m.newDealer(),
		}
	}
	m.store.SaveRoom(r)
	m.logger.Info("room created", zap.String("room", id), zap.String("kind", string(kind)))
	return r, nil
}

// Join seats a connection in the room, creating the room on first join. The
// first seat is black and leaves the room waiting; the second seat is white
// and starts the game. Rejections reach only the offending joiner.
func (m *Manager) Join(kind Kind, roomID, connID, name string) error {
	var r *Room
	for {
		var err error
		r, err = m.createOrGet(roomID, kind)
		if err != nil {
			m.hub.Send(connID, "joinRejected", gin.H{"reason": "wrong game kind"})
			return err
		}
		r.mu.Lock()
		// A concurrent Leave may have evicted the room between the registry
		// lookup and taking the room lock. Seating a connection in an
		// evicted room would strand it, so look the room up again.
		if cur, ok := m.store.GetRoom(roomID); ok && cur == r {
			break
		}
		r.mu.Unlock()
	}
	defer r.mu.Unlock()
	if len(r.Seats) >= len(seatOrder) || r.Status != StatusWaiting {
		// A free seat in an aborted or finished room is not joinable; the
		// session it belonged to is over.
		m.hub.Send(connID, "joinRejected", gin.H{"reason": "room full"})
		return ErrRoomFull
	}
	if name == "" {
		name = "Player"
	}
	color := freeColor(r.Seats)
	r.Seats = append(r.Seats, Seat{ConnID: connID, Name: name, Color: color})
	r.touch()
	m.hub.Send(connID, "seatAssigned", gin.H{"seatColor": color, "roomId": roomID})
	m.logger.Info("player joined",
		zap.String("room", roomID),
		zap.String("color", string(color)),
		zap.String("name", name),
	)

	if len(r.Seats) < len(seatOrder) {
		m.hub.Send(connID, "waitingForOpponent", gin.H{})
		return nil
	}

	r.Status = StatusPlaying
	switch r.Kind {
	case KindOthello:
		m.hub.Broadcast(roomID, "othelloStarted", gin.H{
			"board":     r.Othello.Board,
			"turnOwner": colorOf(r.Othello.Turn),
		})
	case KindPuzzle:
		for _, s := range r.Seats {
			hand := &puzzle.Hand{}
			hand.Refill(r.Puzzle.Dealer, &r.Puzzle.Board)
			r.Puzzle.Hands[s.Color] = hand
			r.Puzzle.Progress[s.Color] = &puzzle.Progress{}
		}
		m.hub.Broadcast(roomID, "puzzleStarted", gin.H{
			"board":     r.Puzzle.Board,
			"turnOwner": r.Puzzle.Turn,
			"hands":     r.Puzzle.Hands,
			"scores":    r.Puzzle.Scores(),
		})
	}
	return nil
}

// OthelloMove validates and applies a stone placement. Anything invalid is
// dropped without surfacing an error to the other participant: the engine is
// the single source of truth, the client's own checks are only hints.
func (m *Manager) OthelloMove(roomID, connID string, row, col int) {
	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Kind != KindOthello || r.Status != StatusPlaying {
		return
	}
	seat := r.seatByConn(connID)
	if seat == nil || discOf(seat.Color) != r.Othello.Turn {
		return
	}
	mover := r.Othello.Turn
	if err := r.Othello.Board.Apply(mover, row, col); err != nil {
		m.logger.Debug("othello move dropped",
			zap.String("room", roomID),
			zap.Int("row", row), zap.Int("col", col),
			zap.Error(err),
		)
		return
	}
	r.touch()

	res := r.Othello.Board.ResolveTurn(mover)
	if res.Finished {
		r.Status = StatusFinished
		black, white := r.Othello.Board.Counts()
		r.Othello.Turn = othello.Empty
		m.hub.Broadcast(roomID, "othelloEnded", gin.H{
			"board":      r.Othello.Board,
			"winner":     colorOf(res.Winner),
			"blackScore": black,
			"whiteScore": white,
		})
		m.logger.Info("othello finished",
			zap.String("room", roomID),
			zap.String("winner", string(colorOf(res.Winner))),
			zap.Int("black", black), zap.Int("white", white),
		)
		return
	}
	r.Othello.Turn = res.Next
	m.hub.Broadcast(roomID, "othelloUpdated", gin.H{
		"board":     r.Othello.Board,
		"turnOwner": colorOf(res.Next),
	})
	if res.Passed {
		m.hub.Broadcast(roomID, "othelloPassNotice", gin.H{
			"message": string(colorOf(mover.Opponent())) + " has no legal move and passes",
		})
	}
}

// PuzzleMove validates and applies a shape placement: stamp the shape, clear
// full lines, score, refill an exhausted hand, then check the opponent for
// stalemate. A stranded opponent loses by forfeit regardless of score.
func (m *Manager) PuzzleMove(roomID, connID string, slot, row, col int) {
	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Kind != KindPuzzle || r.Status != StatusPlaying {
		return
	}
	seat := r.seatByConn(connID)
	if seat == nil || seat.Color != r.Puzzle.Turn {
		return
	}
	hand := r.Puzzle.Hands[seat.Color]
	shape, occupied := hand.Slot(slot)
	if !occupied {
		return
	}
	board := &r.Puzzle.Board
	if !board.CanPlace(shape.Matrix, row, col) {
		m.logger.Debug("puzzle move dropped",
			zap.String("room", roomID),
			zap.String("shape", shape.ID),
			zap.Int("row", row), zap.Int("col", col),
		)
		return
	}

	hand.Take(slot)
	placed := board.Place(shape.Matrix, row, col, ownerOf(seat.Color))
	rows, cols := board.FullLines()
	lineCount := len(rows) + len(cols)
	if lineCount > 0 {
		board.ClearLines(rows, cols)
	}
	ms := r.Puzzle.Progress[seat.Color].Record(placed, lineCount, board.IsEmpty())
	hand.Refill(r.Puzzle.Dealer, board)
	r.touch()

	next := seat.Color.Other()
	if !r.Puzzle.Hands[next].AnyFits(board) {
		r.Status = StatusFinished
		m.hub.Broadcast(roomID, "puzzleEnded", gin.H{
			"winner": seat.Color,
			"reason": "stalemate",
			"board":  r.Puzzle.Board,
			"scores": r.Puzzle.Scores(),
		})
		m.logger.Info("puzzle finished by forfeit",
			zap.String("room", roomID),
			zap.String("winner", string(seat.Color)),
		)
		return
	}
	r.Puzzle.Turn = next
	m.hub.Broadcast(roomID, "puzzleUpdated", gin.H{
		"board":     r.Puzzle.Board,
		"turnOwner": next,
		"hands":     r.Puzzle.Hands,
		"scores":    r.Puzzle.Scores(),
		"lastMove": gin.H{
			"seatColor": seat.Color,
			"shapeId":   shape.ID,
			"row":       row,
			"col":       col,
			"score":     ms,
		},
	})
}

// Leave vacates a seat. A playing room aborts and the remaining participant
// is told its opponent left; the room itself is evicted only once both seats
// are gone, so a finished room stays inspectable until abandoned.
func (m *Manager) Leave(roomID, connID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	seat := r.seatByConn(connID)
	if seat == nil {
		return
	}
	for i := range r.Seats {
		if r.Seats[i].ConnID == connID {
			r.Seats = append(r.Seats[:i], r.Seats[i+1:]...)
			break
		}
	}
	r.touch()
	if r.Status == StatusPlaying {
		r.Status = StatusAborted
		m.hub.Broadcast(roomID, "opponentLeft", gin.H{})
	}
	m.logger.Info("player left", zap.String("room", roomID), zap.Int("seatsLeft", len(r.Seats)))
	if len(r.Seats) == 0 {
		m.store.DeleteRoom(roomID)
		m.logger.Info("room evicted", zap.String("room", roomID))
	}
}

// Summary is the read-only listing shape served over HTTP.
type Summary struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Status    Status    `json:"status"`
	Seats     int       `json:"seats"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m *Manager) List() []Summary {
	rooms := m.store.Rooms()
	out := make([]Summary, 0, len(rooms))
	for _, r := range rooms {
		r.mu.Lock()
		out = append(out, Summary{
			ID:        r.ID,
			Kind:      r.Kind,
			Status:    r.Status,
			Seats:     len(r.Seats),
			CreatedAt: r.CreatedAt,
		})
		r.mu.Unlock()
	}
	return out
}

// Snapshot returns a marshal-ready copy of one room's visible state.
func (m *Manager) Snapshot(roomID string) (gin.H, bool) {
	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := gin.H{
		"id":        r.ID,
		"kind":      r.Kind,
		"status":    r.Status,
		"seats":     append([]Seat(nil), r.Seats...),
		"createdAt": r.CreatedAt,
		"updatedAt": r.UpdatedAt,
	}
	switch r.Kind {
	case KindOthello:
		black, white := r.Othello.Board.Counts()
		snap["board"] = r.Othello.Board
		snap["turnOwner"] = colorOf(r.Othello.Turn)
		snap["blackScore"] = black
		snap["whiteScore"] = white
	case KindPuzzle:
		snap["board"] = r.Puzzle.Board
		snap["turnOwner"] = r.Puzzle.Turn
		snap["scores"] = r.Puzzle.Scores()
	}
	return snap, true
}
