// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/fleet-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSearchRoutesQuery_EmptyFilter(t *testing.T) {
	query, args, err := buildSearchRoutesQuery(models.RouteFilter{})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from routes")
	require.Contains(t, q, "order by id")
	require.NotContains(t, q, "where")
	require.Empty(t, args)
}

func Test_buildSearchRoutesQuery_AllFilters(t *testing.T) {
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildSearchRoutesQuery(models.RouteFilter{
		ShipID:    2,
		CaptainID: 9,
		DateFrom:  &from,
		DateTo:    &to,
	})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "ship_id")
	require.Contains(t, q, "captain_id")
	require.Contains(t, q, "departure_time")
	require.Contains(t, q, "return_time")

	// placeholder format should be $N (Postgres)
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$4")

	require.Len(t, args, 4)
	assert.Equal(t, int64(2), args[0])
	assert.Equal(t, int64(9), args[1])
	assert.Equal(t, from, args[2])
	assert.Equal(t, to, args[3])
}

func Test_buildSearchRoutesQuery_PartialFilter(t *testing.T) {
	query, args, err := buildSearchRoutesQuery(models.RouteFilter{CaptainID: 9})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "captain_id")
	require.NotContains(t, q, "ship_id =")
	require.Len(t, args, 1)
	assert.Equal(t, int64(9), args[0])
}

func Test_buildListReportsQuery_DefaultLimit(t *testing.T) {
	query, args, err := buildListReportsQuery(models.ReportFilter{})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "from reports")
	require.Contains(t, q, "limit 100")
	require.Contains(t, q, "offset 0")
	require.NotContains(t, q, "where")
	require.Empty(t, args)
}

func Test_buildListReportsQuery_OwnerScopeAndPagination(t *testing.T) {
	query, args, err := buildListReportsQuery(models.ReportFilter{
		UserID: 9,
		Offset: 20,
		Limit:  10,
	})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "user_id")
	require.Contains(t, q, "limit 10")
	require.Contains(t, q, "offset 20")
	require.Len(t, args, 1)
	assert.Equal(t, int64(9), args[0])
}

func Test_buildListReportsQuery_NegativeOffsetClamped(t *testing.T) {
	query, _, err := buildListReportsQuery(models.ReportFilter{Offset: -5})
	require.NoError(t, err)

	require.Contains(t, strings.ToLower(query), "offset 0")
}

func Test_buildListReportsQuery_RouteFilter(t *testing.T) {
	_, args, err := buildListReportsQuery(models.ReportFilter{RouteID: 3})
	require.NoError(t, err)

	require.Len(t, args, 1)
	assert.Equal(t, int64(3), args[0])
}

func Test_buildCatchStatisticsQuery_NoBounds(t *testing.T) {
	query, args, err := buildCatchStatisticsQuery(models.CatchStatsFilter{})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "sum(c.weight)")
	require.Contains(t, q, "count(c.id)")
	require.Contains(t, q, "join routes r on r.id = c.route_id")
	require.NotContains(t, q, "where")
	require.Empty(t, args)
}

func Test_buildCatchStatisticsQuery_VoyageWindow(t *testing.T) {
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildCatchStatisticsQuery(models.CatchStatsFilter{
		DateFrom: &from,
		DateTo:   &to,
	})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "r.departure_time")
	require.Contains(t, q, "r.return_time")
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$2")

	require.Len(t, args, 2)
	assert.Equal(t, from, args[0])
	assert.Equal(t, to, args[1])
}
