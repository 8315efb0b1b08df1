package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/virtual-teller/src/internal/adapter/http/models"
	"github.com/go-chi/chi/v5"
)

const serviceName = "Virtual Teller"
const serviceVersion = "1.0.0"

type HomeController struct{}

func NewHomeController() *HomeController {
	return &HomeController{}
}

func (c *HomeController) RegisterRoutes(r chi.Router) {
	r.Get("/", c.welcome)
}

func (c *HomeController) welcome(w http.ResponseWriter, r *http.Request) {
	respondOK(w, r, "welcome", http.StatusOK, "Welcome to the Virtual Teller", models.WelcomeResponse{
		Service: serviceName,
		Version: serviceVersion,
	}, time.Now())
}
