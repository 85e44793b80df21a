package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"calgrid/infras/metrics"
	"calgrid/internal/domains/calendar/model"
	salonModel "calgrid/internal/domains/salon/model"
	"calgrid/shared"
	"calgrid/shared/cache"
	"calgrid/shared/constant"
	"calgrid/shared/failure"
	"calgrid/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheCalendarDay     = "calendar:day"
	cacheCalendarVersion = "calendar:version"
	dayVersionWindow     = 24 * time.Hour
)

func dayCacheKey(salonID string, day time.Time, version int64) string {
	return shared.BuildCacheKey(cacheCalendarDay, salonID, day.Format(constant.DateFormat), "v"+strconv.FormatInt(version, 10))
}

func dayVersionKey(salonID string, day time.Time) string {
	return shared.BuildCacheKey(cacheCalendarVersion, salonID, day.Format(constant.DateFormat))
}

// dayVersion reads the invalidation counter of a salon day. A missing counter is version 0.
func (s *serviceImpl) dayVersion(ctx context.Context, salonID string, day time.Time) int64 {
	var version int64

	versionKey := dayVersionKey(salonID, day)

	if err := s.cache.Get(ctx, versionKey, &version); err != nil {
		if !cache.IsMiss(err) {
			log.Warn().Err(err).Str("cacheKey", versionKey).Msg("failed to read calendar day version")
		}

		return 0
	}

	return version
}

// snapshot loads the salon day through the cache. Entries are keyed by the day version, so a
// save that lands after a commit bumped the version is never read.
func (s *serviceImpl) snapshot(ctx context.Context, salonID string, day time.Time) (res model.Snapshot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".snapshot")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := dayCacheKey(salonID, day, s.dayVersion(ctx, salonID, day))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for calendar day")
		s.metrics.Cache(metrics.CacheHit)

		return res, nil
	}

	if !cache.IsMiss(err) {
		log.Warn().Err(err).Str("cacheKey", cacheKey).Msg("failed to read calendar day from cache")
	}

	s.metrics.Cache(metrics.CacheMiss)

	res.Salon, err = s.salon(ctx, salonID)
	if err != nil {
		return res, err
	}

	res.Masters, err = s.staff.ListActive(ctx, salonID)
	if err != nil {
		log.Error().Err(err).Str("salon", salonID).Msg("failed to list masters")

		return res, fmt.Errorf("failed to list masters: %w", err)
	}

	res.Bookings, err = s.bookings.ListDay(ctx, salonID, day)
	if err != nil {
		log.Error().Err(err).Str("salon", salonID).Msg("failed to list bookings")

		return res, fmt.Errorf("failed to list bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save calendar day to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) salon(ctx context.Context, salonID string) (salonModel.Salon, error) {
	salon, err := s.salons.Get(ctx, shared.FilterByID(salonID, salonModel.FieldID, salonModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("salon", salonID).Msg("failed to get salon")

		return salon, fmt.Errorf("failed to get salon: %w", err)
	}

	if salon.ID == constant.Empty {
		return salon, failure.NotFound(msgSalonNotFound) // nolint:wrapcheck
	}

	return salon, nil
}

// avatars resolves the avatar object keys of the snapshot masters. Failures only lose the avatar.
func (s *serviceImpl) avatars(ctx context.Context, snapshot model.Snapshot) map[string]string {
	expires := time.Duration(s.cfg.Calendar.AvatarExpireMin) * time.Minute
	avatars := make(map[string]string, len(snapshot.Masters))

	for _, master := range snapshot.Masters {
		if master.AvatarKey == constant.Empty {
			continue
		}

		url, err := s.s3.ObjectURL(ctx, master.AvatarKey, expires)
		if err != nil {
			log.Warn().Err(err).Str("master", master.ID).Msg("failed to resolve avatar")

			continue
		}

		avatars[master.ID] = url
	}

	return avatars
}

// invalidateDay bumps the day version so the next board reads the committed change.
// Entries of older versions expire with the cache TTL, which the counter must outlive.
func (s *serviceImpl) invalidateDay(ctx context.Context, salonID string, day time.Time) {
	versionKey := dayVersionKey(salonID, day)

	window := dayVersionWindow
	if ttl := 2 * time.Duration(s.cfg.Cache.TTL) * time.Second; ttl > window {
		window = ttl
	}

	version, err := s.cache.Incr(ctx, versionKey, window)
	if err != nil {
		log.Error().Err(err).Str("cacheKey", versionKey).Msg("failed to invalidate calendar day")

		return
	}

	log.Debug().Str("cacheKey", versionKey).Int64("version", version).Msg("calendar day invalidated")
}

// HandleBookingChanged drops the cached days an external booking change touched.
func (s *serviceImpl) HandleBookingChanged(ctx context.Context, event model.BookingChanged) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".HandleBookingChanged")
	defer scope.End()
	defer scope.TraceIfError(err)

	if event.SalonID == constant.Empty {
		return failure.BadRequestFromString("salon_id is required") // nolint:wrapcheck
	}

	if len(event.Dates) == 0 {
		shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheCalendarDay, event.SalonID, constant.Asterix))

		return nil
	}

	for _, date := range event.Dates {
		day, err := timezone.ParseDate(date)
		if err != nil {
			log.Warn().Err(err).Str("salon", event.SalonID).Msg("skipping malformed booking change date")

			continue
		}

		s.invalidateDay(ctx, event.SalonID, day)
	}

	return nil
}
