package get_plans

import "github.com/m04kA/LimpMe-BookingService/internal/service/catalog"

type CatalogService interface {
	Plans() *catalog.PlansResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
