// README: Booking handlers; submit a booking to the driver or download its receipt.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taxibook/internal/http/middleware"
	"taxibook/internal/i18n"
	"taxibook/internal/modules/booking"
	"taxibook/internal/modules/delivery"
	"taxibook/internal/modules/pricing"
)

type BookingHandler struct {
	booking *booking.Service
	// phone is shown to the customer when nothing could be delivered.
	phone string
}

func NewBookingHandler(svc *booking.Service, phone string) *BookingHandler {
	return &BookingHandler{booking: svc, phone: phone}
}

type bookingReq struct {
	FirstName   string               `json:"first_name"`
	LastName    string               `json:"last_name"`
	Email       string               `json:"email"`
	Phone       string               `json:"phone"`
	CountryCode string               `json:"country_code"`
	Passengers  *int                 `json:"passengers"`
	Luggage     *int                 `json:"luggage"`
	Trip        pricing.QuoteRequest `json:"trip"`
	// Schemes the client can open, e.g. ["whatsapp", "https", "mailto"].
	Schemes []string `json:"schemes"`
}

func (r bookingReq) toRequest() booking.Request {
	out := booking.Request{
		Customer: booking.Customer{
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			Email:       r.Email,
			Phone:       r.Phone,
			CountryCode: r.CountryCode,
		},
		Passengers: 1,
		Trip:       r.Trip,
	}
	if r.Passengers != nil {
		out.Passengers = *r.Passengers
	}
	if r.Luggage != nil {
		out.Luggage = *r.Luggage
	}
	return out
}

type bookingResp struct {
	Reference string          `json:"reference"`
	Message   string          `json:"message"`
	Summary   string          `json:"summary"`
	Booking   booking.Booking `json:"booking"`
	Delivery  delivery.Result `json:"delivery"`
	// Links are the URIs the client should open, in order.
	Links []string `json:"links"`
}

func schemesFrom(c *gin.Context, body []string) []string {
	if len(body) > 0 {
		return body
	}
	if h := c.GetHeader(middleware.SchemesHeader); h != "" {
		return strings.Split(h, ",")
	}
	return nil
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req bookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	links := delivery.NewLinkCollector(schemesFrom(c, req.Schemes)...)
	sub, err := h.booking.Submit(c.Request.Context(), req.toRequest(), links)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	lang := middleware.Lang(c)
	resp := bookingResp{
		Reference: sub.Booking.Reference.Short(),
		Summary:   sub.Summary,
		Booking:   sub.Booking,
		Delivery:  sub.Delivery,
		Links:     links.Links(),
	}
	if !sub.Delivery.Delivered() {
		resp.Message = i18n.T(lang, i18n.BookingDeliveryFailed, map[string]string{"phone": h.phone})
		writeJSON(c, http.StatusBadGateway, resp)
		return
	}
	resp.Message = i18n.T(lang, i18n.BookingBookingSuccess, nil)
	writeJSON(c, http.StatusOK, resp)
}

func (h *BookingHandler) Receipt(c *gin.Context) {
	var req bookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	b, pdf, err := h.booking.Receipt(c.Request.Context(), req.toRequest())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="reservation-`+b.Reference.Short()+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
