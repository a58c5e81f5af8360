package server

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog/log"

	"minichess/game"
)

// New builds the fiber app exposing the HTTP and websocket driver surface
// around a fresh game manager.
func New() *fiber.App {
	app := fiber.New()
	gm := NewGameManager()

	api := app.Group("/api")
	api.Post("/games", createGame(gm))
	api.Get("/games/:id", getGame(gm))
	api.Get("/games/:id/moves", getMoves(gm))
	api.Post("/games/:id/moves", postMove(gm))

	app.Get("/ws/games/:id", websocket.New(handleConnection(gm)))

	return app
}

func createGame(gm *GameManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		humanColor := game.White
		var body struct {
			Color string `json:"color"`
		}
		if err := c.BodyParser(&body); err == nil && body.Color == "black" {
			humanColor = game.Black
		}

		s := gm.CreateGame(humanColor)
		log.Info().
			Str("game", s.ID).
			Str("human", humanColor.String()).
			Msg("game created")
		return c.JSON(fiber.Map{
			"game_id": s.ID,
			"state":   s.State(),
		})
	}
}

func getGame(gm *GameManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := gm.Get(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.JSON(s.State())
	}
}

func getMoves(gm *GameManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := gm.Get(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		from := game.Square{Row: c.QueryInt("row", -1), Col: c.QueryInt("col", -1)}
		if !from.InBounds() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "row and col must be in [0,8)",
			})
		}
		return c.JSON(fiber.Map{
			"moves": s.LegalDestinations(from),
		})
	}
}

func postMove(gm *GameManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := gm.Get(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		var mv moveDTO
		if err := c.BodyParser(&mv); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "malformed move",
			})
		}

		applied, err := s.PlayMove(mv)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Info().Str("game", s.ID).Int("applied", len(applied)).Msg("moves applied")
		return c.JSON(fiber.Map{
			"applied": applied,
			"state":   s.State(),
		})
	}
}

// handleConnection serves one websocket client: it pushes the current state
// on connect and every time the game advances, whether the move came in over
// this socket, another socket, or the REST surface, and accepts move
// submissions over the same envelope.
func handleConnection(gm *GameManager) func(*websocket.Conn) {
	return func(c *websocket.Conn) {
		defer c.Close()

		s, err := gm.Get(c.Params("id"))
		if err != nil {
			_ = c.WriteJSON(errorMessage(err.Error()))
			return
		}

		// State pushes arrive from whichever goroutine applied a move, while
		// error replies come from this read loop, so writes are serialized.
		var writeMu sync.Mutex
		write := func(msg Message) {
			writeMu.Lock()
			defer writeMu.Unlock()
			if err := c.WriteJSON(msg); err != nil {
				log.Debug().Err(err).Msg("websocket write failed")
			}
		}

		cancel := s.Subscribe(func() { pushState(write, s) })
		defer cancel()
		pushState(write, s)

		for {
			messageType, message, err := c.ReadMessage()
			if err != nil {
				log.Debug().Err(err).Msg("websocket closed")
				return
			}
			if messageType != websocket.TextMessage {
				continue
			}

			var msg Message
			if err := json.Unmarshal(message, &msg); err != nil {
				write(errorMessage("malformed message"))
				continue
			}
			if msg.Type != MessageTypeMove {
				write(errorMessage("unsupported message type"))
				continue
			}

			var mv moveDTO
			if err := json.Unmarshal(msg.Payload, &mv); err != nil {
				write(errorMessage("malformed move"))
				continue
			}
			// The state push rides on the subscription; only failures need a
			// direct reply.
			if _, err := s.PlayMove(mv); err != nil {
				write(errorMessage(err.Error()))
			}
		}
	}
}

func pushState(write func(Message), s *Session) {
	payload, err := json.Marshal(s.State())
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal state")
		return
	}
	write(Message{Type: MessageTypeGameState, Payload: payload})
}

func errorMessage(text string) Message {
	payload, _ := json.Marshal(errorPayload{Error: text})
	return Message{Type: MessageTypeError, Payload: payload}
}
