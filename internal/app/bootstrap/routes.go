// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	employeesfeature "github.com/dalemusser/taskhub/internal/app/features/employees"
	healthfeature "github.com/dalemusser/taskhub/internal/app/features/health"
	tasksfeature "github.com/dalemusser/taskhub/internal/app/features/tasks"
	employeestore "github.com/dalemusser/taskhub/internal/app/store/employees"
	taskstore "github.com/dalemusser/taskhub/internal/app/store/tasks"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/requestid"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	return newRouter(coreCfg, deps.Database, deps.Gateway, appCfg, logger), nil
}

// newRouter wires stores and feature routers under /api. Every response
// carries an X-Request-ID header. CORS follows the core config's CORS
// section and is a no-op when enable_cors is false.
func newRouter(coreCfg *config.CoreConfig, db *mongo.Database, pinger healthfeature.Pinger, appCfg AppConfig, logger *zap.Logger) chi.Router {
	limits := appCfg.PageLimits()

	tasks := taskstore.New(db,
		taskstore.WithLimits(limits),
		taskstore.WithAssigneeCheckOnUpdate(appCfg.VerifyAssigneeOnUpdate),
	)
	employees := employeestore.New(db, tasks, employeestore.WithLimits(limits))

	r := chi.NewRouter()
	r.Use(requestid.Simple())
	r.Use(middleware.CORSFromConfig(coreCfg))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respond.NotFound(w, req, logger, "Not found")
	})

	r.Route("/api", func(api chi.Router) {
		healthHandler := healthfeature.NewHandler(pinger, logger)
		api.Mount("/health", healthfeature.Routes(healthHandler))

		employeesHandler := employeesfeature.NewHandler(employees, logger)
		api.Mount("/employees", employeesfeature.Routes(employeesHandler))

		tasksHandler := tasksfeature.NewHandler(tasks, logger)
		api.Mount("/tasks", tasksfeature.Routes(tasksHandler))
	})

	return r
}
