// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taxibook/internal/config"
	"taxibook/internal/http/handlers"
	"taxibook/internal/http/middleware"
	"taxibook/internal/modules/booking"
	"taxibook/internal/modules/location"
	"taxibook/internal/modules/pricing"
)

type RouterDeps struct {
	Pricing  *pricing.Service
	Location *location.Service
	Booking  *booking.Service
	Contact  config.ContactConfig
	Origins  []string
	Log      *zap.Logger
}

func NewRouter(d RouterDeps) *gin.Engine {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(d.Log),
		middleware.Recovery(d.Log),
		middleware.CORS(d.Origins),
		middleware.Language(),
	)
	if err := r.SetTrustedProxies(nil); err != nil {
		d.Log.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")

	catalogHandler := handlers.NewCatalogHandler(d.Pricing, d.Location, d.Contact)
	api.GET("/catalog", catalogHandler.Get)
	api.GET("/i18n", catalogHandler.Messages)

	locationHandler := handlers.NewLocationHandler(d.Location)
	places := api.Group("/places")
	places.GET("/autocomplete", locationHandler.Autocomplete)
	places.GET("/suggestions", locationHandler.Suggestions)
	places.GET("/:id", locationHandler.Details)

	quoteHandler := handlers.NewQuoteHandler(d.Pricing, d.Location)
	api.POST("/quotes", quoteHandler.Create)

	bookingHandler := handlers.NewBookingHandler(d.Booking, d.Contact.Phone)
	api.POST("/bookings", bookingHandler.Create)
	api.POST("/bookings/receipt", bookingHandler.Receipt)

	return r
}
