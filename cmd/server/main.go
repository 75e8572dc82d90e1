package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/app"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/config"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/controllers"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/middleware"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/routes"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)

	if err := godotenv.Load(); err != nil {
		utils.Logger.Info("No .env file found; using process environment")
	}

	// 1) Config
	cfg := config.LoadConfig()

	// 2) Core application (pool, repositories, services)
	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to initialize app")
	}
	defer application.Close()

	// 3) Controllers
	authCtrl := controllers.NewAuthController(application.Registration, application.Auth)
	propCtrl := controllers.NewPropertyController(application.Properties)
	cardCtrl := controllers.NewCardController(application.Cards)
	bookingCtrl := controllers.NewBookingController(application.Bookings)

	// 4) Router
	router := mux.NewRouter()

	router.HandleFunc(routes.Health, func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	router.HandleFunc(routes.Register, authCtrl.Register).Methods(http.MethodPost)
	router.HandleFunc(routes.LoginRenter, authCtrl.LoginRenter).Methods(http.MethodPost)
	router.HandleFunc(routes.LoginAgent, authCtrl.LoginAgent).Methods(http.MethodPost)
	router.HandleFunc(routes.Logout, authCtrl.Logout).Methods(http.MethodPost)
	router.HandleFunc(routes.Categories, propCtrl.ListCategories).Methods(http.MethodGet)

	renterOnly := middleware.RequireRole(cfg.SessionSecret, middleware.RoleRenter)
	agentOnly := middleware.RequireRole(cfg.SessionSecret, middleware.RoleAgent)

	asRenter := func(h http.HandlerFunc) http.Handler { return renterOnly(h) }
	asAgent := func(h http.HandlerFunc) http.Handler { return agentOnly(h) }

	router.Handle(routes.RenterDashboard, asRenter(authCtrl.Dashboard)).Methods(http.MethodGet)
	router.Handle(routes.PropertySearch, asRenter(propCtrl.Search)).Methods(http.MethodGet)
	router.Handle(routes.PropertyDetail, asRenter(bookingCtrl.PropertyDetail)).Methods(http.MethodGet)
	router.Handle(routes.RenterCards, asRenter(cardCtrl.List)).Methods(http.MethodGet)
	router.Handle(routes.RenterCards, asRenter(cardCtrl.Add)).Methods(http.MethodPost)
	router.Handle(routes.RenterCard, asRenter(cardCtrl.Delete)).Methods(http.MethodDelete)
	router.Handle(routes.RenterBookings, asRenter(bookingCtrl.ListMine)).Methods(http.MethodGet)
	router.Handle(routes.RenterBookings, asRenter(bookingCtrl.Create)).Methods(http.MethodPost)
	router.Handle(routes.RenterBooking, asRenter(bookingCtrl.Cancel)).Methods(http.MethodDelete)

	router.Handle(routes.AgentDashboard, asAgent(authCtrl.Dashboard)).Methods(http.MethodGet)
	router.Handle(routes.AgentProperties, asAgent(propCtrl.ListOwned)).Methods(http.MethodGet)
	router.Handle(routes.AgentProperties, asAgent(propCtrl.Create)).Methods(http.MethodPost)
	router.Handle(routes.AgentProperty, asAgent(propCtrl.Delete)).Methods(http.MethodDelete)
	router.Handle(routes.AgentBookings, asAgent(bookingCtrl.ListForAgent)).Methods(http.MethodGet)

	// 5) CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on :%s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, c.Handler(router)); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}
