package calendar

import (
	"net/http"
	"strconv"

	"calgrid/infras/otel"
	"calgrid/internal/domains/calendar/model/dto"
	"calgrid/internal/domains/calendar/service"
	"calgrid/shared"
	"calgrid/shared/constant"
	"calgrid/shared/failure"
	"calgrid/shared/validator"
	"calgrid/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryAreaLeft = "area_left"
	queryHeight   = "height"
	paramEventID  = "eventID"
)

type Handler struct {
	service service.Calendar
	otel    otel.Otel
}

func New(service service.Calendar, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/calendar/{date}", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBoard)
		routerGroup.Get("/now", handler.GetNow)
		routerGroup.Get("/events/{eventID}", handler.ClickEvent)
		routerGroup.Post("/gestures", handler.Gesture)
		routerGroup.Post("/slots/click", handler.ClickSlot)
		routerGroup.Post("/slots/action", handler.ChooseSlotAction)
	})
}

// scope reads the salon day a request addresses. The salon comes from the credentials, never the URL.
func scope(request *http.Request) (dto.Scope, error) {
	ctx := request.Context()

	salonID, _ := ctx.Value(constant.ContextKeySalonID).(string)
	if salonID == constant.Empty {
		return dto.Scope{}, failure.SalonScopeMissing
	}

	date := chi.URLParam(request, constant.RequestParamDate)
	if err := validator.ValidateVar(date, "required,datekey"); err != nil {
		return dto.Scope{}, err // nolint:wrapcheck
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return dto.Scope{SalonID: salonID, Date: date, Actor: actor}, nil
}

func queryFloat(request *http.Request, key string) float64 {
	value := request.URL.Query().Get(key)
	if value == constant.Empty {
		return 0
	}

	number, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Debug().Err(err).Str("param", key).Msg("ignoring malformed query number")

		return 0
	}

	return number
}

// GetBoard renders the calendar of a day.
// @Summary Get the day board
// @Description Columns, cells, event blocks and the now line of one salon day.
// @Tags Calendar
// @Produce json
// @Param date path string true "Day, YYYY-MM-DD"
// @Param scroll_left query number false "Horizontal scroll of the grid body"
// @Param area_left query number false "Page x of the scroll area"
// @Param width query number false "Viewport width"
// @Param height query number false "Viewport height"
// @Param week query boolean false "Include the week strip"
// @Success 200 {object} response.Data[dto.BoardResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar/{date} [get]
// @Security BearerAuth
func (handler *Handler) GetBoard(writer http.ResponseWriter, request *http.Request) {
	ctx, scp := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBoard")
	defer scp.End()

	reqScope, err := scope(request)
	if err != nil {
		scp.TraceError(err)
		response.WithError(writer, err)

		return
	}

	req := dto.BoardRequest{
		Scope: reqScope,
		Viewport: dto.Viewport{
			ScrollLeft: queryFloat(request, constant.RequestParamLeft),
			AreaLeft:   queryFloat(request, queryAreaLeft),
			Width:      queryFloat(request, constant.RequestParamWidth),
			Height:     queryFloat(request, queryHeight),
		},
	}

	if week := shared.ConvertStringToBool(request.URL.Query().Get(constant.RequestParamWeek)); week != nil {
		req.Week = *week
	}

	if err := validator.ValidateStruct(&req.Viewport); err != nil {
		scp.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Board(ctx, req)
	if err != nil {
		scp.TraceError(err)
		log.Error().Err(err).Msg("failed to render board")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetNow returns the live clock indicator.
// @Summary Get the now indicator
// @Tags Calendar
// @Produce json
// @Param date path string true "Day, YYYY-MM-DD"
// @Success 200 {object} response.Data[dto.NowResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/calendar/{date}/now [get]
// @Security BearerAuth
func (handler *Handler) GetNow(writer http.ResponseWriter, request *http.Request) {
	ctx, scp := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNow")
	defer scp.End()

	reqScope, err := scope(request)
	if err != nil {
		scp.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Now(ctx, dto.NowRequest{Scope: reqScope})
	if err != nil {
		scp.TraceError(err)
		log.Error().Err(err).Msg("failed to read clock")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ClickEvent reports a tap on an event block.
// @Summary Click an event
// @Tags Calendar
// @Produce json
// @Param date path string true "Day, YYYY-MM-DD"
// @Param eventID path string true "Booking id"
// @Success 200 {object} response.Data[dto.EventResponse]
// @Failure 404 {object} response.Error
// @Router /v1/calendar/{date}/events/{eventID} [get]
// @Security BearerAuth
func (handler *Handler) ClickEvent(writer http.ResponseWriter, request *http.Request) {
	ctx, scp := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClickEvent")
	defer scp.End()

	reqScope, err := scope(request)
	if err != nil {
		scp.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Event(ctx, dto.EventRequest{Scope: reqScope, EventID: chi.URLParam(request, paramEventID)})
	if err != nil {
		scp.TraceError(err)
		log.Error().Err(err).Msg("failed to click event")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Gesture replays a drag or resize and commits the result.
// @Summary Replay a gesture
// @Description A missing release cancels the gesture.
// @Tags Calendar
// @Accept json
// @Produce json
// @Param date path string true "Day, YYYY-MM-DD"
// @Param request body dto.GestureRequest true "Gesture"
// @Success 200 {object} response.Data[dto.GestureResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/calendar/{date}/gestures [post]
// @Security BearerAuth
func (handler *Handler) Gesture(writer http.ResponseWriter, request *http.Request) {
	ctx, scp := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Gesture")
	defer scp.End()

	reqScope, err := scope(request)
	if err != nil {
		scp.TraceError(err)
		response.WithError(writer, err)

		return
	}

	var req dto.GestureRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scp.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	req.Scope = reqScope

	res, err := handler.service.Gesture(ctx, req)
	if err != nil {
		scp.TraceError(err)
		log.Error().Err(err).Msg("failed to apply gesture")

		response.WithError(writer, err)

		return
	}

	scp.AddEvent("gesture " + res.Outcome + " by user " + reqScope.Actor)

	response.WithJSON(writer, http.StatusOK, res)
}

// ClickSlot taps a half-hour cell.
// @Summary Click a cell
// @Tags Calendar
// @Accept json
// @Produce json
// @Param date path string true "Day, YYYY-MM-DD"
// @Param request body dto.SlotClickRequest true "Cell"
// @Success 200 {object} response.Data[dto.SlotClickResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/calendar/{date}/slots/click [post]
// @Security BearerAuth
func (handler *Handler) ClickSlot(writer http.ResponseWriter, request *http.Request) {
	ctx, scp := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClickSlot")
	defer scp.End()

	reqScope, err := scope(request)
	if err != nil {
		scp.TraceError(err)
		response.WithError(writer, err)

		return
	}

	var req dto.SlotClickRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scp.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	req.Scope = reqScope

	res, err := handler.service.SlotClick(ctx, req)
	if err != nil {
		scp.TraceError(err)
		log.Error().Err(err).Msg("failed to click slot")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ChooseSlotAction picks a slot menu entry.
// @Summary Choose a slot action
// @Tags Calendar
// @Accept json
// @Produce json
// @Param date path string true "Day, YYYY-MM-DD"
// @Param request body dto.SlotActionRequest true "Action"
// @Success 201 {object} response.Data[dto.IntentResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/calendar/{date}/slots/action [post]
// @Security BearerAuth
func (handler *Handler) ChooseSlotAction(writer http.ResponseWriter, request *http.Request) {
	ctx, scp := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChooseSlotAction")
	defer scp.End()

	reqScope, err := scope(request)
	if err != nil {
		scp.TraceError(err)
		response.WithError(writer, err)

		return
	}

	var req dto.SlotActionRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scp.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	req.Scope = reqScope

	res, err := handler.service.SlotAction(ctx, req)
	if err != nil {
		scp.TraceError(err)
		log.Error().Err(err).Msg("failed to choose slot action")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}
