package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"togetherly/internal/application/subscription/usecases"
	"togetherly/internal/shared/constants"
	"togetherly/internal/shared/logger"
	"togetherly/internal/shared/utils"
)

// maxWebhookBytes bounds the webhook body read into memory.
const maxWebhookBytes = 1 << 16

type BillingHandler struct {
	checkoutUseCase  createCheckoutSessionUseCase
	webhookUseCase   handleBillingWebhookUseCase
	cancelUseCase    cancelSubscriptionUseCase
	accountUseCase   getAccountUseCase
	reconcileUseCase reconcileSubscriptionsUseCase
	getJobUseCase    getReconcileJobUseCase
	logger           logger.Interface
}

func NewBillingHandler(
	checkoutUC createCheckoutSessionUseCase,
	webhookUC handleBillingWebhookUseCase,
	cancelUC cancelSubscriptionUseCase,
	accountUC getAccountUseCase,
	reconcileUC reconcileSubscriptionsUseCase,
	getJobUC getReconcileJobUseCase,
	logger logger.Interface,
) *BillingHandler {
	return &BillingHandler{
		checkoutUseCase:  checkoutUC,
		webhookUseCase:   webhookUC,
		cancelUseCase:    cancelUC,
		accountUseCase:   accountUC,
		reconcileUseCase: reconcileUC,
		getJobUseCase:    getJobUC,
		logger:           logger,
	}
}

// CreateCheckoutSession godoc
//
//	@Summary	Start a hosted checkout for the paid plan
//	@Tags		billing
//	@Produce	json
//	@Success	200	{object}	utils.APIResponse{data=CheckoutSessionResponse}
//	@Failure	401	{object}	utils.APIResponse
//	@Failure	501	{object}	utils.APIResponse
//	@Router		/api/create-checkout-session [post]
func (h *BillingHandler) CreateCheckoutSession(c *gin.Context) {
	url, err := h.checkoutUseCase.Execute(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", CheckoutSessionResponse{URL: url})
}

// StripeWebhook receives billing events. The raw body is passed through
// untouched because the signature covers the exact bytes.
func (h *BillingHandler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBytes+1))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read request body")
		return
	}
	if len(payload) > maxWebhookBytes {
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "payload too large")
		return
	}

	result, err := h.webhookUseCase.Execute(c.Request.Context(), usecases.HandleBillingWebhookCommand{
		Payload:   payload,
		Signature: c.GetHeader(constants.HeaderStripeSig),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *BillingHandler) CancelSubscription(c *gin.Context) {
	sub, err := h.cancelUseCase.Execute(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "subscription canceled", CancelSubscriptionResponse{
		Status:           string(sub.Status()),
		CurrentPeriodEnd: sub.CurrentPeriodEnd(),
	})
}

// GetAccount godoc
//
//	@Summary	Account and subscription summary for the caller
//	@Tags		billing
//	@Produce	json
//	@Success	200	{object}	utils.APIResponse{data=usecases.AccountView}
//	@Failure	401	{object}	utils.APIResponse
//	@Router		/api/account [get]
func (h *BillingHandler) GetAccount(c *gin.Context) {
	view, err := h.accountUseCase.Execute(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", view)
}

// ReconcileSubscriptions starts a background pass and answers 202 with the
// job id; ?wait=1 runs it inline and returns the result.
func (h *BillingHandler) ReconcileSubscriptions(c *gin.Context) {
	wait, _ := strconv.ParseBool(c.Query("wait"))

	outcome, err := h.reconcileUseCase.Execute(c.Request.Context(), usecases.ReconcileCommand{
		TriggeredBy: usecases.TriggerAdmin,
		Wait:        wait,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("reconcile requested",
		"user_email", c.GetString(constants.ContextKeyUserEmail),
		"wait", wait,
		"job_id", outcome.JobID,
	)

	if outcome.Result != nil {
		utils.SuccessResponse(c, http.StatusOK, "", outcome.Result)
		return
	}
	utils.SuccessResponse(c, http.StatusAccepted, "reconcile started", ReconcileStartedResponse{
		JobID:  outcome.JobID,
		Status: "running",
	})
}

func (h *BillingHandler) GetReconcileJob(c *gin.Context) {
	job, err := h.getJobUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toReconcileJobResponse(job))
}
