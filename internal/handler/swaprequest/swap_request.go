package swaprequest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/skillswap/swap-backend/internal/consts"
	"github.com/skillswap/swap-backend/internal/controller"
	"github.com/skillswap/swap-backend/internal/model"
	"github.com/skillswap/swap-backend/internal/store/swaprequest"
	"github.com/skillswap/swap-backend/internal/utils/config"
	"github.com/skillswap/swap-backend/internal/utils/logger"
	"github.com/skillswap/swap-backend/internal/view"
)

type handler struct {
	controller controller.IController
	logger     *logger.Logger
	appConfig  *config.AppConfig
}

func New(controller controller.IController, logger *logger.Logger, appConfig *config.AppConfig) IHandler {
	return &handler{
		controller: controller,
		logger:     logger,
		appConfig:  appConfig,
	}
}

// Create godoc
// @Summary Create swap request
// @Description Open a new pending swap request towards another user
// @id createSwapRequest
// @Tags SwapRequest
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Swap request parameters"
// @Success 201 {object} view.Response[view.SwapRequest]
// @Failure 400 {object} view.ErrorResponse
// @Failure 409 {object} view.ErrorResponse
// @Router /swap-requests [post]
func (h *handler) Create(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[Create][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, req, "invalid request"))
		return
	}
	if err := validator.New().Struct(req); err != nil {
		h.logger.Error("[Create][Validator]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, req, "invalid request"))
		return
	}

	swapRequest, err := h.controller.CreateSwapRequest(controller.CreateSwapRequestInput{
		InitiatorID:    actorID,
		RecipientID:    req.RecipientID,
		OfferedSkill:   req.OfferedSkill,
		RequestedSkill: req.RequestedSkill,
		Message:        req.Message,
	})
	if err != nil {
		h.respondError(c, "Create", err, "failed to create swap request")
		return
	}

	c.JSON(http.StatusCreated, view.CreateResponse(view.ToSwapRequest(swapRequest, actorID), nil, nil, "swap request sent"))
}

// List godoc
// @Summary List my swap requests
// @Description Page through the caller's incoming and outgoing swap requests
// @id listSwapRequests
// @Tags SwapRequest
// @Produce json
// @Param type query string false "incoming, outgoing or all"
// @Param status query string false "filter by status"
// @Param page query int false "page number"
// @Param limit query int false "page size"
// @Success 200 {object} view.Response[view.SwapRequestPage]
// @Router /swap-requests [get]
func (h *handler) List(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(consts.DefaultPageSize)))

	filter := swaprequest.ListFilter{
		UserID:   actorID,
		Type:     c.DefaultQuery("type", "all"),
		Status:   statusFilter(c.Query("status")),
		Page:     page,
		PageSize: limit,
	}

	requests, total, err := h.controller.ListSwapRequests(filter)
	if err != nil {
		h.respondError(c, "List", err, "failed to list swap requests")
		return
	}

	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = consts.DefaultPageSize
	}
	if pageSize > consts.MaxPageSize {
		pageSize = consts.MaxPageSize
	}
	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)

	c.JSON(http.StatusOK, view.CreateResponse(view.SwapRequestPage{
		Requests:      view.ToSwapRequests(requests, actorID),
		TotalRequests: total,
		TotalPages:    totalPages,
		CurrentPage:   page,
	}, nil, nil, ""))
}

// Get godoc
// @Summary Get swap request
// @Description Fetch one swap request the caller is a party of
// @id getSwapRequest
// @Tags SwapRequest
// @Produce json
// @Param id path int true "Swap request ID"
// @Success 200 {object} view.Response[view.SwapRequest]
// @Failure 403 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /swap-requests/{id} [get]
func (h *handler) Get(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}
	requestID, ok := requestID(c)
	if !ok {
		return
	}

	swapRequest, err := h.controller.GetSwapRequest(requestID, actorID)
	if err != nil {
		h.respondError(c, "Get", err, "failed to get swap request")
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(view.ToSwapRequest(swapRequest, actorID), nil, nil, ""))
}

// Respond godoc
// @Summary Respond to swap request
// @Description Accept or reject a pending swap request sent to the caller
// @id respondToSwapRequest
// @Tags SwapRequest
// @Accept json
// @Produce json
// @Param id path int true "Swap request ID"
// @Param request body RespondRequest true "Decision parameters"
// @Success 200 {object} view.Response[view.SwapRequest]
// @Failure 403 {object} view.ErrorResponse
// @Failure 409 {object} view.ErrorResponse
// @Router /swap-requests/{id}/respond [put]
func (h *handler) Respond(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}
	requestID, ok := requestID(c)
	if !ok {
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[Respond][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, req, "invalid request"))
		return
	}

	swapRequest, err := h.controller.RespondToSwapRequest(requestID, actorID, controller.Decision(req.Decision), req.ResponseMessage)
	if err != nil {
		h.respondError(c, "Respond", err, "failed to respond to swap request")
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(view.ToSwapRequest(swapRequest, actorID), nil, nil, "swap request "+string(swapRequest.Status)))
}

// Cancel godoc
// @Summary Cancel swap request
// @Description Withdraw a pending swap request the caller initiated
// @id cancelSwapRequest
// @Tags SwapRequest
// @Produce json
// @Param id path int true "Swap request ID"
// @Success 200 {object} view.Response[view.SwapRequest]
// @Failure 403 {object} view.ErrorResponse
// @Failure 409 {object} view.ErrorResponse
// @Router /swap-requests/{id}/cancel [put]
func (h *handler) Cancel(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}
	requestID, ok := requestID(c)
	if !ok {
		return
	}

	swapRequest, err := h.controller.CancelSwapRequest(requestID, actorID)
	if err != nil {
		h.respondError(c, "Cancel", err, "failed to cancel swap request")
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(view.ToSwapRequest(swapRequest, actorID), nil, nil, "swap request cancelled"))
}

// Complete godoc
// @Summary Complete swap request
// @Description Mark an accepted swap as carried out
// @id completeSwapRequest
// @Tags SwapRequest
// @Produce json
// @Param id path int true "Swap request ID"
// @Success 200 {object} view.Response[view.SwapRequest]
// @Failure 403 {object} view.ErrorResponse
// @Failure 409 {object} view.ErrorResponse
// @Router /swap-requests/{id}/complete [put]
func (h *handler) Complete(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}
	requestID, ok := requestID(c)
	if !ok {
		return
	}

	swapRequest, err := h.controller.CompleteSwapRequest(requestID, actorID)
	if err != nil {
		h.respondError(c, "Complete", err, "failed to complete swap request")
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(view.ToSwapRequest(swapRequest, actorID), nil, nil, "swap request completed"))
}

// SubmitRating godoc
// @Summary Submit swap rating
// @Description Submit the caller's blind rating for a completed swap
// @id submitSwapRating
// @Tags SwapRequest
// @Accept json
// @Produce json
// @Param id path int true "Swap request ID"
// @Param request body SubmitRatingRequest true "Rating parameters"
// @Success 200 {object} view.Response[view.SwapRequest]
// @Failure 400 {object} view.ErrorResponse
// @Failure 403 {object} view.ErrorResponse
// @Failure 409 {object} view.ErrorResponse
// @Router /swap-requests/{id}/rating [post]
func (h *handler) SubmitRating(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}
	requestID, ok := requestID(c)
	if !ok {
		return
	}

	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[SubmitRating][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, req, "invalid request"))
		return
	}

	swapRequest, err := h.controller.SubmitRating(requestID, actorID, req.Score, req.Comment)
	if err != nil {
		h.respondError(c, "SubmitRating", err, "failed to submit rating")
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(view.ToSwapRequest(swapRequest, actorID), nil, nil, "rating submitted"))
}

func (h *handler) respondError(c *gin.Context, op string, err error, fallback string) {
	var ctrlErr *controller.Error
	if errors.As(err, &ctrlErr) {
		c.JSON(ctrlErr.HTTPStatus(), view.CreateResponse[any](nil, ctrlErr, nil, ""))
		return
	}

	h.logger.Error("["+op+"]", map[string]string{
		"error": err.Error(),
	})
	c.JSON(http.StatusInternalServerError, view.CreateResponse[any](nil, err, nil, fallback))
}

// actor reads the authenticated caller installed by the gateway middleware.
func actor(c *gin.Context) (uint, bool) {
	actorID := c.GetUint(consts.ActorContextKey)
	if actorID == 0 {
		c.JSON(http.StatusUnauthorized, view.CreateResponse[any](nil, nil, nil, "missing user identity"))
		return 0, false
	}
	return actorID, true
}

func requestID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, nil, "invalid swap request id"))
		return 0, false
	}
	return uint(id), true
}

func statusFilter(raw string) model.SwapRequestStatus {
	switch model.SwapRequestStatus(raw) {
	case model.SwapRequestStatusPending,
		model.SwapRequestStatusAccepted,
		model.SwapRequestStatusRejected,
		model.SwapRequestStatusCancelled,
		model.SwapRequestStatusCompleted:
		return model.SwapRequestStatus(raw)
	}
	return ""
}
