package slot

import (
	"errors"
	dto "fruit_slots/internal/api/dto/slot"
	"fruit_slots/internal/converter"
	"fruit_slots/internal/middleware"
	"fruit_slots/internal/model"
	"fruit_slots/internal/repository"
	"fruit_slots/internal/service"
	"fruit_slots/pkg/req"
	"fruit_slots/pkg/resp"
	"fruit_slots/pkg/token"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Streamer подписывает websocket клиента на кадры сессии.
// snapshot вызывается уже после подписки и отдает текущее представление.
type Streamer interface {
	HandleConnection(w http.ResponseWriter, r *http.Request, sessionID string, snapshot func(deliver func(model.View)) error)
}

type HandlerDeps struct {
	Serv      service.SlotService
	Streamer  Streamer
	SecretKey []byte
	TokenTTL  time.Duration
	Log       *zap.Logger
}

type Handler struct {
	serv      service.SlotService
	streamer  Streamer
	secretKey []byte
	tokenTTL  time.Duration
	log       *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:      deps.Serv,
		streamer:  deps.Streamer,
		secretKey: deps.SecretKey,
		tokenTTL:  deps.TokenTTL,
		log:       deps.Log,
	}
}

// CreateSession открывает игровую сессию и возвращает токен к ней
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.serv.Create(r.Context())
	if err != nil {
		h.log.Error("create session failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "create session failed")
		return
	}

	accessToken, err := token.GenerateAccessToken(view.SessionID, h.secretKey, h.tokenTTL)
	if err != nil {
		h.log.Error("generate access token failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "create session failed")
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, dto.SessionResponse{
		AccessToken: accessToken,
		State:       converter.ToViewResponse(*view),
	})
}

// CloseSession закрывает сессию
func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "session id not found")
		return
	}

	if err := h.serv.Close(r.Context(), id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "session id not found")
		return
	}

	view, err := h.serv.State(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToViewResponse(*view))
}

// Spin крутит барабаны. Ответ приходит после остановки всех барабанов,
// промежуточные кадры идут подписчикам websocket.
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "session id not found")
		return
	}

	result, err := h.serv.Spin(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

func (h *Handler) Bet(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "session id not found")
		return
	}

	payload, err := req.Decode[dto.BetRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.serv.AdjustBet(r.Context(), id, converter.ToBetDirection(payload))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToViewResponse(*view))
}

// Stream подписывает клиента на кадры своей сессии
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "session id not found")
		return
	}

	// Неизвестную сессию отсекаем до апгрейда соединения
	if _, err := h.serv.State(r.Context(), id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.streamer.HandleConnection(w, r, id, func(deliver func(model.View)) error {
		return h.serv.Snapshot(r.Context(), id, deliver)
	})
}

func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrSessionNotFound):
		resp.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSpinInProgress), errors.Is(err, service.ErrInsufficientBalance):
		resp.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidDirection):
		resp.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.Error("slot request failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
