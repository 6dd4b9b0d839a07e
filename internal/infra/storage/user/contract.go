package user

import "github.com/m04kA/LimpMe-BookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
