package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"weatherchat/database/repository"
	"weatherchat/models"
	"weatherchat/services/nlp"
	replyfmt "weatherchat/services/reply"
	"weatherchat/services/session"
	"weatherchat/services/weather"
	"weatherchat/utils"
)

// User-facing wording for collaborator failures. The core never raises;
// these cover the geocoding/forecast boundary.
const (
	placeNotFoundReply      = "I couldn't find that place. Could you check the spelling or try a nearby city?"
	serviceUnavailableReply = "The weather service is unavailable right now. Please try again in a moment."
	coordsLabel             = "your location"
)

// ChatHandler serves the conversational endpoint.
type ChatHandler struct {
	Interpreter nlp.Interpreter
	Weather     weather.Service
	Sessions    session.Store
	// Archive is nil when the conversation archive is disabled.
	Archive repository.ConversationRepository
}

func NewChatHandler(interpreter nlp.Interpreter, weatherSvc weather.Service, sessions session.Store, archive repository.ConversationRepository) *ChatHandler {
	return &ChatHandler{
		Interpreter: interpreter,
		Weather:     weatherSvc,
		Sessions:    sessions,
		Archive:     archive,
	}
}

// Chat handles one conversational turn: interpret the message, resolve the
// place, fetch the forecast and render the reply. Every outcome is a 200
// with a reply string; only malformed JSON is a client error.
func (h *ChatHandler) Chat(c *gin.Context) {
	logger := getLogger(c)

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	lastLocation, err := h.Sessions.LastLocation(c.Request.Context(), sessionID)
	if err != nil {
		logger.Warn("failed to load session location", zap.Error(err))
	}

	parsed := h.Interpreter.Interpret(req.Message, lastLocation, req.Lat, req.Lon)
	if parsed.Error != "" {
		h.respond(c, sessionID, req.Message, parsed, parsed.Error)
		return
	}

	label, bundle, failureReply := h.resolveForecast(c.Request.Context(), logger, parsed)
	if failureReply != "" {
		h.respond(c, sessionID, req.Message, parsed, failureReply)
		return
	}

	text := replyfmt.Format(parsed, bundle, label)
	if err := h.Sessions.SetLastLocation(c.Request.Context(), sessionID, label); err != nil {
		logger.Warn("failed to persist session location", zap.Error(err))
	}
	h.respond(c, sessionID, req.Message, parsed, text)
}

// resolveForecast turns the parsed request into a labeled forecast bundle.
// Explicit coordinates win over geocoding; the extracted label still names
// the reply when one is present.
func (h *ChatHandler) resolveForecast(ctx context.Context, logger *zap.Logger, parsed models.ParsedMessage) (string, *models.ForecastBundle, string) {
	var lat, lon float64
	var label string
	if parsed.Coords != nil {
		lat, lon = parsed.Coords.Lat, parsed.Coords.Lon
		label = parsed.LocationLabel
		if label == "" {
			label = coordsLabel
		}
	} else {
		place, err := h.Weather.Geocode(ctx, parsed.LocationLabel)
		if err != nil {
			if errors.Is(err, weather.ErrPlaceNotFound) {
				return "", nil, placeNotFoundReply
			}
			logger.Warn("geocoding failed", zap.String("query", parsed.LocationLabel), zap.Error(err))
			return "", nil, serviceUnavailableReply
		}
		lat, lon, label = place.Latitude, place.Longitude, place.Name
	}

	bundle, err := h.Weather.Forecast(ctx, lat, lon)
	if err != nil {
		logger.Warn("forecast fetch failed", zap.Error(err))
		return "", nil, serviceUnavailableReply
	}
	return label, bundle, ""
}

// respond sends the reply and archives the turn best-effort.
func (h *ChatHandler) respond(c *gin.Context, sessionID, message string, parsed models.ParsedMessage, text string) {
	if h.Archive != nil {
		turn := models.ConversationTurn{
			ID:        uuid.NewString(),
			SessionID: sessionID,
			Message:   message,
			Intent:    string(parsed.Intent),
			Reply:     text,
			CreatedAt: time.Now().UTC(),
		}
		ctx, cancel := context.WithTimeout(context.Background(), utils.ArchiveWriteTimeout)
		defer cancel()
		if err := h.Archive.SaveTurn(ctx, turn); err != nil {
			getLogger(c).Warn("failed to archive conversation turn", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, models.ChatResponse{Reply: text, SessionID: sessionID})
}

// History returns the most recent archived turns for a session.
func (h *ChatHandler) History(c *gin.Context) {
	if h.Archive == nil {
		utils.JSONError(c, http.StatusNotFound, "Conversation archive disabled", "")
		return
	}
	sessionID := c.Param("sessionID")
	turns, err := h.Archive.RecentTurns(c.Request.Context(), sessionID, 50)
	if err != nil {
		getLogger(c).Error("failed to load conversation history", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load history", "")
		return
	}
	c.JSON(http.StatusOK, turns)
}
