package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"grandplaza/infras/otel/mocks"
	"grandplaza/shared/dto"
	"grandplaza/shared/model"

	"github.com/stretchr/testify/assert"
)

type room struct {
	ID     string `db:"id"`
	Number string `db:"number"`
	Status string `db:"status"`
	model.Metadata
	Transient string
}

type bookingWithRoom struct {
	ID       string    `db:"id"`
	CheckIn  time.Time `db:"check_in"`
	RoomType string    `db:"room_type" table:"rooms" column:"type"`
}

func TestNewRepository_Columns(t *testing.T) {
	repo := NewRepository[room]("room", "rooms", "id", nil, mocks.NewOtel())

	assert.Equal(t,
		[]string{"id", "number", "status", "created_at", "modified_at", "created_by", "modified_by"},
		repo.InsertColumns,
	)
	assert.Equal(t,
		"rooms.id, rooms.number, rooms.status, rooms.created_at, rooms.modified_at, rooms.created_by, rooms.modified_by",
		repo.getSelectQuery(context.Background()),
	)
	assert.Equal(t, "rooms.id, rooms.status", repo.getSelectQuery(context.Background(), "id", "status"))
}

func TestNewRepository_JoinedColumns(t *testing.T) {
	repo := NewRepository[bookingWithRoom]("booking", "bookings", "id", nil, mocks.NewOtel())

	assert.Equal(t, []string{"id", "check_in"}, repo.InsertColumns)
	assert.Equal(t, "bookings.id, bookings.check_in, rooms.type AS room_type", repo.getSelectQuery(context.Background()))
}

func TestRepository_OrderBy(t *testing.T) {
	repo := NewRepository[room]("room", "rooms", "id", nil, mocks.NewOtel())
	bare := NewRepository[bookingWithRoom]("booking", "bookings", "id", nil, mocks.NewOtel())

	tests := []struct {
		name   string
		repo   interface{ orderBy(dto.QueryParams) string }
		params dto.QueryParams
		want   string
	}{
		{
			name:   "known column",
			repo:   &repo,
			params: dto.QueryParams{SortBy: "number", SortDir: dto.SortDirAsc},
			want:   "ORDER BY rooms.number ASC",
		},
		{
			name:   "missing direction defaults to descending",
			repo:   &repo,
			params: dto.QueryParams{SortBy: "number"},
			want:   "ORDER BY rooms.number DESC",
		},
		{
			name:   "unknown column falls back to newest first",
			repo:   &repo,
			params: dto.QueryParams{SortBy: "number; DROP TABLE rooms", SortDir: dto.SortDirAsc},
			want:   "ORDER BY rooms.created_at DESC, rooms.id",
		},
		{
			name:   "no metadata falls back to primary key",
			repo:   &bare,
			params: dto.QueryParams{},
			want:   "ORDER BY bookings.id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.repo.orderBy(tt.params))
		})
	}
}

func TestRepository_BuildWhereClause(t *testing.T) {
	repo := NewRepository[room]("room", "rooms", "id", nil, mocks.NewOtel())

	where, args := repo.BuildWhereClause(context.Background(), dto.FilterGroup{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = repo.BuildWhereClause(context.Background(), dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Value: "available", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "number", Value: "10", Operator: dto.FilterOperatorLike, ArgName: "q_number"},
		},
	})

	assert.Equal(t, ` WHERE (status = :status AND LOWER(number) LIKE LOWER(:q_number) ESCAPE '\') `, where)
	assert.Equal(t, map[string]any{"status": "available", "q_number": "%10%"}, args)
}

func TestRepository_ForUpdateQuery(t *testing.T) {
	repo := NewRepository[room]("room", "rooms", "id", nil, mocks.NewOtel())

	where, _ := repo.BuildWhereClause(context.Background(), dto.FilterGroup{
		Filters: []any{dto.Filter{Field: "id", Value: "R101", Operator: dto.FilterOperatorEq}},
	})
	query := strings.Join(strings.Fields(repo.forUpdateQuery(context.Background(), where, "id", "status")), " ")

	assert.True(t, strings.HasPrefix(query, "SELECT rooms.id, rooms.status FROM rooms WHERE"), query)
	assert.Contains(t, query, "id = :id")
	assert.True(t, strings.HasSuffix(query, "FOR UPDATE OF rooms"), query)
}

func TestRepository_HasColumn(t *testing.T) {
	repo := NewRepository[bookingWithRoom]("booking", "bookings", "id", nil, mocks.NewOtel())

	assert.True(t, repo.hasColumn("check_in"))
	assert.False(t, repo.hasColumn("type"))
	assert.False(t, repo.hasColumn("room_type"))
}
