package query

import (
	"context"

	"github.com/google/uuid"
)

const getVehicleType = `
SELECT vehicle_type
FROM vehicles
WHERE id = $1
`

func (q *Queries) GetVehicleType(ctx context.Context, db DBTX, id uuid.UUID) (string, error) {
	row := db.QueryRow(ctx, getVehicleType, id)
	var vehicleType string
	err := row.Scan(&vehicleType)
	return vehicleType, err
}
