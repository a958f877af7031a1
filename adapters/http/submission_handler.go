package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	submissionUC "github.com/khoahotran/profile-directory/internal/application/usecase/submission"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

const (
	MsgContactMissingFields = "Missing required fields: name, email, message"
	MsgBookingMissingFields = "Missing required fields"
)

type SubmissionHandler struct {
	submissionUseCase *submissionUC.SubmissionUseCase
	logger            logger.Logger
}

func NewSubmissionHandler(uc *submissionUC.SubmissionUseCase, log logger.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissionUseCase: uc,
		logger:            log,
	}
}

func (h *SubmissionHandler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := bindBody(c, &req); err != nil {
		c.Error(bindError(err, MsgContactMissingFields))
		return
	}

	output, err := h.submissionUseCase.SubmitContact(c.Request.Context(), submissionUC.SubmitContactInput{Contact: req.ToDomain()})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ContactResponse{
		Message:   "Contact form submitted successfully",
		Timestamp: output.SubmittedAt,
	})
}

func (h *SubmissionHandler) SubmitBooking(c *gin.Context) {
	var req BookingRequest
	if err := bindBody(c, &req); err != nil {
		c.Error(bindError(err, MsgBookingMissingFields))
		return
	}

	output, err := h.submissionUseCase.SubmitBooking(c.Request.Context(), submissionUC.SubmitBookingInput{Booking: req.ToDomain()})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, BookingResponse{
		Message:   "Booking submitted successfully",
		BookingID: output.BookingID,
		Timestamp: output.SubmittedAt,
	})
}
