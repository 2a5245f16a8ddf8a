package service

import (
	"context"
	"fmt"

	"grandplaza/config"
	"grandplaza/infras/otel"
	bookingModel "grandplaza/internal/domains/booking/model"
	bookingRepo "grandplaza/internal/domains/booking/repository"
	guestModel "grandplaza/internal/domains/guest/model"
	guestRepo "grandplaza/internal/domains/guest/repository"
	"grandplaza/internal/domains/report/model"
	roomModel "grandplaza/internal/domains/room/model"
	roomRepo "grandplaza/internal/domains/room/repository"
	"grandplaza/shared"
	"grandplaza/shared/cache"
	"grandplaza/shared/constant"
	gDto "grandplaza/shared/dto"
	"grandplaza/shared/timezone"

	"github.com/rs/zerolog/log"
)

var (
	cacheDashboard = shared.BuildCacheKey(constant.CachePrefixReport, "dashboard")
	cacheCharts    = shared.BuildCacheKey(constant.CachePrefixReport, "charts")
)

type Report interface {
	Dashboard(ctx context.Context) (model.Dashboard, error)
	Charts(ctx context.Context) (model.Charts, error)
}

type serviceImpl struct {
	rooms    roomRepo.Room
	guests   guestRepo.Guest
	bookings bookingRepo.Booking
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	rooms roomRepo.Room,
	guests guestRepo.Guest,
	bookings bookingRepo.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Report {
	return &serviceImpl{
		rooms:    rooms,
		guests:   guests,
		bookings: bookings,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

type snapshot struct {
	rooms    []roomModel.Room
	guests   []guestModel.Guest
	bookings []bookingModel.Booking
}

func (s *serviceImpl) load(ctx context.Context) (snap snapshot, err error) {
	all := gDto.QueryParams{}
	none := gDto.FilterGroup{}

	snap.rooms, err = s.rooms.GetAll(ctx, all, none, roomModel.FieldID, roomModel.FieldNumber, roomModel.FieldType, roomModel.FieldStatus)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms for report")

		return snap, fmt.Errorf("failed to get rooms: %w", err)
	}

	snap.guests, err = s.guests.GetAll(ctx, all, none, guestModel.FieldID, guestModel.FieldVIPStatus)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests for report")

		return snap, fmt.Errorf("failed to get guests: %w", err)
	}

	snap.bookings, err = s.bookings.GetAll(ctx, all, none)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for report")

		return snap, fmt.Errorf("failed to get bookings: %w", err)
	}

	return snap, nil
}

// Dashboard is cached per calendar day since today's check-ins depend on the date.
func (s *serviceImpl) Dashboard(ctx context.Context) (res model.Dashboard, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()
	cacheKey := shared.BuildCacheKey(cacheDashboard, now.Format(constant.DayFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for dashboard")

		return res, nil
	}

	snap, err := s.load(ctx)
	if err != nil {
		return res, err
	}

	res = model.BuildDashboard(snap.rooms, snap.guests, snap.bookings, now)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Charts(ctx context.Context) (res model.Charts, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Charts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()
	cacheKey := shared.BuildCacheKey(cacheCharts, now.Format("2006-01"))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for charts")

		return res, nil
	}

	snap, err := s.load(ctx)
	if err != nil {
		return res, err
	}

	res = model.BuildCharts(snap.rooms, snap.guests, snap.bookings, now)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save report cache")
		}
	}()
}
