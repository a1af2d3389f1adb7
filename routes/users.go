package routes

import (
	"net/http"
	"time"

	"ecocollect/controllers/auth"
	"ecocollect/controllers/users"
	"ecocollect/middleware"

	"github.com/gorilla/mux"
)

// UsersRoutes registers every user-facing route onto the given subrouter.
func UsersRoutes(api *mux.Router) {
	// Login/register limiter: 60 per IP per 5 minutes
	loginLimiter := middleware.NewIPRateLimiter(60, 5*time.Minute)
	// Session limiter: 120 reads, 60 writes per user per minute
	userLimiter := middleware.NewUserRateLimiter(120, 60, 60)

	// Register & Login
	api.Handle("/register", loginLimiter.Middleware(http.HandlerFunc(auth.RegisterHandler))).Methods(http.MethodPost)
	api.Handle("/login", loginLimiter.Middleware(http.HandlerFunc(auth.LoginHandler))).Methods(http.MethodPost)
	api.Handle("/refresh", loginLimiter.Middleware(http.HandlerFunc(auth.RefreshHandler))).Methods(http.MethodPost)
	api.Handle("/logout", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(auth.LogoutHandler)))).Methods(http.MethodPost)
	api.Handle("/logout-all", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(auth.LogoutAllHandler)))).Methods(http.MethodPost)

	// User info
	api.Handle("/users/info", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.UserInfoHandler)))).Methods(http.MethodGet)

	// Collection task board
	api.Handle("/tasks", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.TaskListHandler)))).Methods(http.MethodGet)
	api.Handle("/tasks/{id:[0-9]+}/claim", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.ClaimTaskHandler)))).Methods(http.MethodPost)
	api.Handle("/tasks/{id:[0-9]+}/verify", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.VerifyTaskHandler)))).Methods(http.MethodPost)

	// Waste reports
	api.Handle("/reports", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.CreateReportHandler)))).Methods(http.MethodPost)
	api.Handle("/reports", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.ReportListHandler)))).Methods(http.MethodGet)

	// Rewards & ledger
	api.Handle("/rewards", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.RewardsHandler)))).Methods(http.MethodGet)
	api.Handle("/rewards/redeem", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.RedeemHandler)))).Methods(http.MethodPost)
	api.Handle("/rewards/redeem-all", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.RedeemAllHandler)))).Methods(http.MethodPost)

	// Leaderboard
	api.Handle("/leaderboard", userLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.LeaderboardHandler)))).Methods(http.MethodGet)
}
