package recordstore

import (
	"fmt"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
)

// Driver names accepted by STORE_DRIVER.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
)

func checkKind(kind dto.RecordKind) error {
	switch kind {
	case dto.KindArrival, dto.KindDeparture:
		return nil
	}

	return fmt.Errorf("unknown record kind %q", kind)
}

func copyRecords(records []dto.FlightRecord) []dto.FlightRecord {
	out := make([]dto.FlightRecord, len(records))
	copy(out, records)

	return out
}
