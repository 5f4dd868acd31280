package handler

import (
	"net/http"

	"music-store-backend/internal/apperr"
	"music-store-backend/internal/dto"
	"music-store-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	contactService service.ContactService
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) SubmitContactForm(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ContactRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	if err := h.contactService.Submit(ctx, &req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ContactResponse{
		Success: true,
		Message: "Your message has been sent successfully. We'll get back to you within 24 hours.",
	})
}
