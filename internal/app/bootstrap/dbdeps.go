// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/taskhub/internal/app/store/gateway"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
type DBDeps struct {
	Gateway  *gateway.Gateway
	Database *mongo.Database
}
