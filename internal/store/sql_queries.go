package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/fleet-tracker/models"
)

const (
	createUser = `INSERT INTO users (email, hashed_password, role, company_name, full_name, license, is_active)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, email, hashed_password, role, company_name, full_name, license, is_active;`

	findUserByEmail = `SELECT id, email, hashed_password, role, company_name, full_name, license, is_active
    FROM users
    WHERE email = $1;`

	listUsersByRole = `SELECT id, email, hashed_password, role, company_name, full_name, license, is_active
    FROM users
    WHERE role = $1
    ORDER BY id;`

	createShip = `INSERT INTO ships (user_id, name, type, displacement, build_date)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, user_id, name, type, displacement, build_date;`

	listShipsByOwner = `SELECT id, user_id, name, type, displacement, build_date
    FROM ships
    WHERE user_id = $1
    ORDER BY id;`

	updateShip = `UPDATE ships
    SET name = $1, type = $2, displacement = $3, build_date = $4
    WHERE id = $5 AND user_id = $6
    RETURNING id, user_id, name, type, displacement, build_date;`

	deleteShip = `DELETE FROM ships
    WHERE id = $1 AND user_id = $2;`

	createSpot = `INSERT INTO fishing_spots (name, coordinates, depth, fish_type, arrival_time, departure_time)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, name, coordinates, depth, fish_type, arrival_time, departure_time;`

	listSpots = `SELECT id, name, coordinates, depth, fish_type, arrival_time, departure_time
    FROM fishing_spots
    ORDER BY id;`

	getSpot = `SELECT id, name, coordinates, depth, fish_type, arrival_time, departure_time
    FROM fishing_spots
    WHERE id = $1;`

	updateSpotTimes = `UPDATE fishing_spots
    SET arrival_time = COALESCE($1, arrival_time), departure_time = COALESCE($2, departure_time)
    WHERE id = $3
    RETURNING id, name, coordinates, depth, fish_type, arrival_time, departure_time;`

	deleteSpot = `DELETE FROM fishing_spots
    WHERE id = $1;`

	linkSpotVisit = `INSERT INTO user_fishing_spot (user_id, spot_id)
    VALUES ($1, $2)
    ON CONFLICT (user_id, spot_id) DO NOTHING;`

	createRoute = `INSERT INTO routes (ship_id, operator_id, captain_id, code, departure_time, return_time)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, ship_id, operator_id, captain_id, code, departure_time, return_time;`

	getRoute = `SELECT id, ship_id, operator_id, captain_id, code, departure_time, return_time
    FROM routes
    WHERE id = $1;`

	listRoutesByOperator = `SELECT id, ship_id, operator_id, captain_id, code, departure_time, return_time
    FROM routes
    WHERE operator_id = $1
    ORDER BY id;`

	listRoutesByCaptain = `SELECT id, ship_id, operator_id, captain_id, code, departure_time, return_time
    FROM routes
    WHERE captain_id = $1
    ORDER BY id;`

	deleteRoute = `DELETE FROM routes
    WHERE id = $1 AND operator_id = $2;`

	attachFishingSpot = `INSERT INTO route_fishing_spot (route_id, spot_id)
    VALUES ($1, $2)
    ON CONFLICT (route_id, spot_id) DO NOTHING;`

	createCatch = `INSERT INTO catches (user_id, route_id, fish_type, weight)
    VALUES ($1, $2, $3, $4)
    RETURNING id, user_id, route_id, fish_type, weight;`

	createReport = `INSERT INTO reports (fish_type, weight, location, notes, user_id, route_id)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, fish_type, weight, location, notes, status, created_at, user_id, route_id;`

	getReport = `SELECT id, fish_type, weight, location, notes, status, created_at, user_id, route_id
    FROM reports
    WHERE id = $1;`

	listReportsByRoute = `SELECT id, fish_type, weight, location, notes, status, created_at, user_id, route_id
    FROM reports
    WHERE route_id = $1
    ORDER BY id;`

	updateReportStatus = `UPDATE reports
    SET status = $1
    WHERE id = $2
    RETURNING id, fish_type, weight, location, notes, status, created_at, user_id, route_id;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSearchRoutesQuery assembles the route search SELECT from the optional
// filter fields. Zero-valued IDs and nil dates are skipped.
func buildSearchRoutesQuery(filter models.RouteFilter) (string, []any, error) {
	builder := psql.
		Select("id", "ship_id", "operator_id", "captain_id", "code", "departure_time", "return_time").
		From("routes").
		OrderBy("id")

	if filter.ShipID > 0 {
		builder = builder.Where(sq.Eq{"ship_id": filter.ShipID})
	}
	if filter.CaptainID > 0 {
		builder = builder.Where(sq.Eq{"captain_id": filter.CaptainID})
	}
	if filter.DateFrom != nil {
		builder = builder.Where(sq.GtOrEq{"departure_time": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		builder = builder.Where(sq.LtOrEq{"return_time": *filter.DateTo})
	}

	return builder.ToSql()
}

// buildListReportsQuery assembles the report listing SELECT. A zero UserID
// means no ownership scoping (operator view). Limit defaults to 100 when the
// filter carries a non-positive value.
func buildListReportsQuery(filter models.ReportFilter) (string, []any, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = models.DefaultReportLimit
	}

	builder := psql.
		Select("id", "fish_type", "weight", "location", "notes", "status", "created_at", "user_id", "route_id").
		From("reports").
		OrderBy("id").
		Offset(uint64(max(filter.Offset, 0))).
		Limit(uint64(limit))

	if filter.UserID > 0 {
		builder = builder.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.RouteID > 0 {
		builder = builder.Where(sq.Eq{"route_id": filter.RouteID})
	}

	return builder.ToSql()
}

// buildCatchStatisticsQuery aggregates catch weight over routes whose voyage
// window falls inside the optional date bounds.
func buildCatchStatisticsQuery(filter models.CatchStatsFilter) (string, []any, error) {
	builder := psql.
		Select("COALESCE(SUM(c.weight), 0)", "COUNT(c.id)").
		From("catches c").
		Join("routes r ON r.id = c.route_id")

	if filter.DateFrom != nil {
		builder = builder.Where(sq.GtOrEq{"r.departure_time": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		builder = builder.Where(sq.LtOrEq{"r.return_time": *filter.DateTo})
	}

	return builder.ToSql()
}
